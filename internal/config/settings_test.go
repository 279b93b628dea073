package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadToolSettings_MissingFile(t *testing.T) {
	got, err := LoadToolSettings(t.TempDir())
	if err != nil {
		t.Fatalf("LoadToolSettings() error: %v", err)
	}

	if !reflect.DeepEqual(got, DefaultToolSettings()) {
		t.Fatalf("LoadToolSettings() = %+v, want defaults", got)
	}
}

func TestLoadToolSettings_ReadsValues(t *testing.T) {
	workDir := t.TempDir()
	raw := `config-name: sandbox.json
cartridge-marker: package.json
defaults:
  code-version: release_2
  exclude:
    - "**/node_modules/**"
    - "**/.git/**"
`
	if err := os.WriteFile(filepath.Join(workDir, ToolSettingsName), []byte(raw), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := LoadToolSettings(workDir)
	if err != nil {
		t.Fatalf("LoadToolSettings() error: %v", err)
	}

	want := &ToolSettings{
		ConfigName:      "sandbox.json",
		CartridgeMarker: "package.json",
		Defaults: ProfileDefaults{
			CodeVersion: "release_2",
			Exclude:     []string{"**/node_modules/**", "**/.git/**"},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("LoadToolSettings() = %+v, want %+v", got, want)
	}
}

func TestLoadToolSettings_EmptyValuesFallBack(t *testing.T) {
	workDir := t.TempDir()
	raw := `config-name: "  "
defaults:
  exclude: [""]
`
	if err := os.WriteFile(filepath.Join(workDir, ToolSettingsName), []byte(raw), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	got, err := LoadToolSettings(workDir)
	if err != nil {
		t.Fatalf("LoadToolSettings() error: %v", err)
	}
	if !reflect.DeepEqual(got, DefaultToolSettings()) {
		t.Fatalf("LoadToolSettings() = %+v, want defaults", got)
	}
}

func TestLoadToolSettings_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"invalid yaml", "config-name: [unterminated"},
		{"config name with directory", "config-name: ../dw.json\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			workDir := t.TempDir()
			if err := os.WriteFile(filepath.Join(workDir, ToolSettingsName), []byte(tt.raw), 0644); err != nil {
				t.Fatalf("write: %v", err)
			}
			if _, err := LoadToolSettings(workDir); err == nil {
				t.Fatalf("LoadToolSettings() expected error")
			}
		})
	}
}
