package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/danieljhkim/davos/internal/util"
)

var (
	// ErrConfigNotFound is returned when the profile document does not exist.
	ErrConfigNotFound = errors.New("configuration not found")
	// ErrMalformedConfig is returned when the profile document cannot be decoded.
	ErrMalformedConfig = errors.New("malformed configuration")
	// ErrWrite matches every *WriteError.
	ErrWrite = errors.New("failed to write configuration")
	// ErrNoActiveProfile is returned when no profile is flagged active.
	ErrNoActiveProfile = errors.New("no active profile")
)

// WriteError reports a failed Save. The previous document is left in place.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write configuration %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrWrite) hold for any WriteError.
func (e *WriteError) Is(target error) bool { return target == ErrWrite }

// profileDoc mirrors Profile on the wire with a nullable config block,
// so a profile object without one can be told apart from an empty one.
type profileDoc struct {
	Active   bool      `json:"active"`
	Name     string    `json:"profile"`
	Settings *Settings `json:"config"`
}

// Store persists a Collection as a single JSON document.
// It performs no invariant checks; callers establish them before Save.
type Store struct {
	path string
}

// NewStore creates a store backed by the document at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the document path.
func (s *Store) Path() string {
	return s.path
}

// Exists reports whether the document is present.
func (s *Store) Exists() bool {
	return util.FileExists(s.path) && !util.DirExists(s.path)
}

// Load reads and decodes the document.
func (s *Store) Load() (Collection, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, s.path)
		}
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}
	return decode(data)
}

func decode(data []byte) (Collection, error) {
	var docs []*profileDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedConfig, err)
	}
	if docs == nil {
		return nil, fmt.Errorf("%w: document is not a list of profiles", ErrMalformedConfig)
	}

	profiles := make(Collection, 0, len(docs))
	for i, doc := range docs {
		if doc == nil || doc.Settings == nil {
			return nil, fmt.Errorf("%w: profile #%d has no config object", ErrMalformedConfig, i+1)
		}
		profiles = append(profiles, Profile{
			Active:   doc.Active,
			Name:     doc.Name,
			Settings: normalizeSettings(*doc.Settings),
		})
	}
	return profiles, nil
}

// Save replaces the document with c.
func (s *Store) Save(c Collection) error {
	data, err := encode(c)
	if err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	if err := util.WriteFileAtomic(s.path, data, 0644); err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	return nil
}

func encode(c Collection) ([]byte, error) {
	docs := make([]profileDoc, len(c))
	for i, p := range c {
		settings := normalizeSettings(p.Settings.Clone())
		docs[i] = profileDoc{Active: p.Active, Name: p.Name, Settings: &settings}
	}

	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal configuration: %w", err)
	}
	return append(data, '\n'), nil
}

// Active loads the document and returns its active profile.
func (s *Store) Active() (Profile, error) {
	profiles, err := s.Load()
	if err != nil {
		return Profile{}, err
	}
	p, ok := profiles.Active()
	if !ok {
		return Profile{}, fmt.Errorf("%w in %s", ErrNoActiveProfile, s.path)
	}
	return p, nil
}

// normalizeSettings replaces absent lists with empty ones so they round-trip as [].
func normalizeSettings(s Settings) Settings {
	if s.Cartridges == nil {
		s.Cartridges = []string{}
	}
	if s.Exclude == nil {
		s.Exclude = []string{}
	}
	return s
}
