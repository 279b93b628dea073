// Package cartridge discovers deployable cartridge directories under a project root.
package cartridge

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrRootNotDirectory is returned when the scan root is missing or not a directory.
var ErrRootNotDirectory = errors.New("scan root is not a directory")

// Scanner finds directories holding a marker file.
type Scanner struct {
	// Marker is the package descriptor file name, e.g. ".project".
	Marker string
}

// NewScanner creates a scanner for the given marker file name.
func NewScanner(marker string) *Scanner {
	return &Scanner{Marker: marker}
}

// Scan walks root and returns the slash-separated paths, relative to root, of every
// directory containing the marker file. Directories matching an exclude pattern are
// not entered. The result is sorted and empty (not nil) when nothing is found.
func (s *Scanner) Scan(root string, exclude []string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRootNotDirectory, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootNotDirectory, root)
	}

	for _, pattern := range exclude {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, doublestar.ErrBadPattern)
		}
	}

	cartridges := []string{}
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if rel != "." && excluded(rel, exclude) {
				return fs.SkipDir
			}
			return nil
		}

		if d.Name() == s.Marker {
			cartridges = append(cartridges, filepath.ToSlash(filepath.Dir(rel)))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	sort.Strings(cartridges)
	return cartridges, nil
}

// excluded reports whether the directory at rel matches any pattern. The trailing
// slash form lets "**/node_modules/**" prune node_modules itself.
func excluded(rel string, patterns []string) bool {
	for _, pattern := range patterns {
		if doublestar.MatchUnvalidated(pattern, rel) || doublestar.MatchUnvalidated(pattern, rel+"/") {
			return true
		}
	}
	return false
}
