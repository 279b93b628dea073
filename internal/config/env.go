package config

import "path/filepath"

// Env bundles the resolved paths and tool settings for one working directory.
type Env struct {
	Paths    *Paths
	Settings *ToolSettings
}

// LoadEnv resolves workDir (empty means the process working directory) and
// reads its davos.yaml.
func LoadEnv(workDir string) (*Env, error) {
	if workDir == "" {
		workDir = DefaultWorkDir()
	}
	if abs, err := filepath.Abs(workDir); err == nil {
		workDir = abs
	}

	settings, err := LoadToolSettings(workDir)
	if err != nil {
		return nil, err
	}
	return &Env{
		Paths:    NewPaths(workDir, settings.ConfigName),
		Settings: settings,
	}, nil
}

// Store returns the profile document store for this environment.
func (e *Env) Store() *Store {
	return NewStore(e.Paths.ConfigFile())
}
