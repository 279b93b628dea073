package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// ToolSettingsName is the optional per-project settings file.
	ToolSettingsName = "davos.yaml"
	// DefaultConfigName is the profile document read by the deployment engine.
	DefaultConfigName = "dw.json"
	// DefaultCartridgeMarker is the package descriptor that makes a directory a cartridge.
	DefaultCartridgeMarker = ".project"
	// DefaultCodeVersion is offered when the user leaves the code version empty.
	DefaultCodeVersion = "version1"
)

// DefaultExclude is the exclude set used when scanning before any profile exists.
var DefaultExclude = []string{"**/node_modules/**"}

// ToolSettings holds davos.yaml: knobs for the tool itself, not for a sandbox.
type ToolSettings struct {
	ConfigName      string          `yaml:"config-name"`
	CartridgeMarker string          `yaml:"cartridge-marker"`
	Defaults        ProfileDefaults `yaml:"defaults"`
}

// ProfileDefaults are the prompt defaults for new and edited profiles.
type ProfileDefaults struct {
	CodeVersion string   `yaml:"code-version"`
	Exclude     []string `yaml:"exclude"`
}

// DefaultToolSettings returns the built-in settings.
func DefaultToolSettings() *ToolSettings {
	return &ToolSettings{
		ConfigName:      DefaultConfigName,
		CartridgeMarker: DefaultCartridgeMarker,
		Defaults: ProfileDefaults{
			CodeVersion: DefaultCodeVersion,
			Exclude:     append([]string(nil), DefaultExclude...),
		},
	}
}

// LoadToolSettings reads davos.yaml from workDir.
// A missing file yields the defaults; empty values fall back to defaults.
func LoadToolSettings(workDir string) (*ToolSettings, error) {
	path := ToolSettingsFile(workDir)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultToolSettings(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	var settings ToolSettings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ToolSettingsName, err)
	}
	if err := settings.sanitize(); err != nil {
		return nil, err
	}
	return &settings, nil
}

func (s *ToolSettings) sanitize() error {
	s.ConfigName = strings.TrimSpace(s.ConfigName)
	if s.ConfigName == "" {
		s.ConfigName = DefaultConfigName
	}
	if filepath.Base(s.ConfigName) != s.ConfigName {
		return fmt.Errorf("config-name %q must be a plain file name", s.ConfigName)
	}

	s.CartridgeMarker = strings.TrimSpace(s.CartridgeMarker)
	if s.CartridgeMarker == "" {
		s.CartridgeMarker = DefaultCartridgeMarker
	}

	s.Defaults.CodeVersion = strings.TrimSpace(s.Defaults.CodeVersion)
	if s.Defaults.CodeVersion == "" {
		s.Defaults.CodeVersion = DefaultCodeVersion
	}

	var exclude []string
	for _, pattern := range s.Defaults.Exclude {
		if pattern = strings.TrimSpace(pattern); pattern != "" {
			exclude = append(exclude, pattern)
		}
	}
	if len(exclude) == 0 {
		exclude = append(exclude, DefaultExclude...)
	}
	s.Defaults.Exclude = exclude
	return nil
}
