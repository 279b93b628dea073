package config

import (
	"os"
	"path/filepath"
)

// Paths holds the locations the tool reads and writes, all relative to one working directory.
type Paths struct {
	WorkDir    string // Directory scanned for cartridges and holding the configuration
	ConfigName string // File name of the profile document inside WorkDir
}

// NewPaths creates a new Paths instance
// workDir: base directory (empty string uses the process working directory)
// configName: profile document name (empty string uses DefaultConfigName)
func NewPaths(workDir, configName string) *Paths {
	if workDir == "" {
		workDir = DefaultWorkDir()
	}
	if configName == "" {
		configName = DefaultConfigName
	}
	return &Paths{
		WorkDir:    workDir,
		ConfigName: configName,
	}
}

// DefaultWorkDir returns the process working directory, or "." if it cannot be determined.
func DefaultWorkDir() string {
	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return cwd
}

// ConfigFile returns the profile document path: $WORK_DIR/<config-name>
func (p *Paths) ConfigFile() string {
	return filepath.Join(p.WorkDir, p.ConfigName)
}

// ToolSettingsFile returns the tool settings path for workDir.
func ToolSettingsFile(workDir string) string {
	return filepath.Join(workDir, ToolSettingsName)
}
