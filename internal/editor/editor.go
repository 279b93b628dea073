// Package editor implements the profile operations: create, insert, edit, list and switch.
//
// Every operation loads the whole document, works on a copy and saves only
// after all checks passed, so a failed operation leaves the document untouched.
package editor

import (
	"context"
	"fmt"
	"strings"

	"github.com/danieljhkim/davos/internal/config"
	"github.com/danieljhkim/davos/internal/prompt"
	"github.com/danieljhkim/davos/internal/util"
)

// Store is the persistence the editor works against.
type Store interface {
	Path() string
	Exists() bool
	Load() (config.Collection, error)
	Save(config.Collection) error
	Active() (config.Profile, error)
}

// Scanner discovers cartridges below a root directory.
type Scanner interface {
	Scan(root string, exclude []string) ([]string, error)
}

// Options wires an Editor.
type Options struct {
	Store    Store
	Scanner  Scanner
	Prompter prompt.Prompter
	WorkDir  string
	Defaults config.ProfileDefaults
}

// Editor runs profile operations against one working directory.
type Editor struct {
	store    Store
	scanner  Scanner
	prompter prompt.Prompter
	workDir  string
	defaults config.ProfileDefaults
}

// Entry is one line of List output.
type Entry struct {
	Name   string
	Active bool
}

// New creates an editor. Zero-valued defaults fall back to the built-in ones.
func New(opts Options) *Editor {
	defaults := opts.Defaults
	if defaults.CodeVersion == "" {
		defaults.CodeVersion = config.DefaultCodeVersion
	}
	if len(defaults.Exclude) == 0 {
		defaults.Exclude = append([]string(nil), config.DefaultExclude...)
	}
	return &Editor{
		store:    opts.Store,
		scanner:  opts.Scanner,
		prompter: opts.Prompter,
		workDir:  opts.WorkDir,
		defaults: defaults,
	}
}

// Create writes a new document holding a single active profile.
func (e *Editor) Create(ctx context.Context) (config.Profile, error) {
	if e.store.Exists() {
		return config.Profile{}, fmt.Errorf("%w: %s", ErrConfigAlreadyExists, e.store.Path())
	}

	found, err := e.scanner.Scan(e.workDir, e.defaults.Exclude)
	if err != nil {
		return config.Profile{}, err
	}
	if len(found) == 0 {
		return config.Profile{}, fmt.Errorf("%w in %s and its subdirectories", ErrNoCartridgesFound, e.workDir)
	}
	util.Log("Found %d cartridge(s) in %s", len(found), e.workDir)

	settings, err := e.promptSettings(ctx)
	if err != nil {
		return config.Profile{}, err
	}
	settings.Cartridges, err = e.scanner.Scan(e.workDir, settings.Exclude)
	if err != nil {
		return config.Profile{}, err
	}
	if len(settings.Cartridges) == 0 {
		return config.Profile{}, fmt.Errorf("%w in %s with exclude %q", ErrNoCartridgesFound, e.workDir, settings.Exclude)
	}

	profiles, err := config.SetActive(config.Collection{config.NewProfile(settings)}, config.DeriveName(settings.Hostname))
	if err != nil {
		return config.Profile{}, err
	}
	if err := e.store.Save(profiles); err != nil {
		return config.Profile{}, err
	}
	return profiles[0], nil
}

// Insert appends a new inactive profile. If the document has no active
// profile yet, the new one becomes active.
func (e *Editor) Insert(ctx context.Context) (config.Profile, error) {
	profiles, err := e.store.Load()
	if err != nil {
		return config.Profile{}, err
	}

	settings, err := e.promptSettings(ctx)
	if err != nil {
		return config.Profile{}, err
	}

	profile := config.NewProfile(settings)
	if profiles.Index(profile.Name) >= 0 {
		return config.Profile{}, fmt.Errorf("%w: %s", ErrDuplicateProfile, profile.Name)
	}

	if profile.Settings.Cartridges, err = e.scan(profile.Settings.Exclude); err != nil {
		return config.Profile{}, err
	}

	profiles = append(profiles.Clone(), profile)
	if profiles, err = ensureActive(profiles, profile.Name); err != nil {
		return config.Profile{}, err
	}
	if err := e.store.Save(profiles); err != nil {
		return config.Profile{}, err
	}
	return profiles[len(profiles)-1], nil
}

// Edit replaces the settings of the profile called name and renames it after
// the new hostname. Its active flag is kept.
func (e *Editor) Edit(ctx context.Context, name string) (config.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return config.Profile{}, ErrMissingProfileArgument
	}

	profiles, err := e.store.Load()
	if err != nil {
		return config.Profile{}, err
	}
	target := profiles.Index(name)
	if target < 0 {
		return config.Profile{}, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}

	settings, err := e.promptSettings(ctx)
	if err != nil {
		return config.Profile{}, err
	}

	newName := config.DeriveName(settings.Hostname)
	if i := profiles.Index(newName); i >= 0 && i != target {
		return config.Profile{}, fmt.Errorf("%w: %s", ErrDuplicateProfile, newName)
	}

	if settings.Cartridges, err = e.scan(settings.Exclude); err != nil {
		return config.Profile{}, err
	}

	profiles = profiles.Clone()
	profiles[target].Name = newName
	profiles[target].Settings = settings
	if profiles, err = ensureActive(profiles, newName); err != nil {
		return config.Profile{}, err
	}
	if err := e.store.Save(profiles); err != nil {
		return config.Profile{}, err
	}
	return profiles[target], nil
}

// List returns every profile name in persisted order, flagging the active one.
func (e *Editor) List() ([]Entry, error) {
	profiles, err := e.store.Load()
	if err != nil {
		return nil, err
	}

	entries := make([]Entry, 0, len(profiles))
	marked := false
	for _, p := range profiles {
		// Only the first flagged profile counts as active, as in Collection.Active.
		isActive := p.Active && !marked
		marked = marked || isActive
		entries = append(entries, Entry{Name: p.Name, Active: isActive})
	}
	return entries, nil
}

// Switch makes the profile called name the only active one.
func (e *Editor) Switch(name string) (config.Profile, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return config.Profile{}, ErrMissingProfileArgument
	}

	profiles, err := e.store.Load()
	if err != nil {
		return config.Profile{}, err
	}
	profiles, err = config.SetActive(profiles, name)
	if err != nil {
		return config.Profile{}, err
	}
	if err := e.store.Save(profiles); err != nil {
		return config.Profile{}, err
	}

	p, _ := profiles.Find(name)
	return p, nil
}

// Active returns the active profile, whose settings drive the deployment engine.
func (e *Editor) Active() (config.Profile, error) {
	return e.store.Active()
}

func (e *Editor) promptSettings(ctx context.Context) (config.Settings, error) {
	fields := prompt.ProfileFields(e.defaults.CodeVersion, e.defaults.Exclude)
	answers, err := e.prompter.Prompt(ctx, fields)
	if err != nil {
		return config.Settings{}, &PromptError{Err: err}
	}

	settings := config.Settings{
		Hostname:    strings.TrimSpace(answers[prompt.FieldHostname]),
		Username:    strings.TrimSpace(answers[prompt.FieldUsername]),
		Password:    answers[prompt.FieldPassword],
		CodeVersion: strings.TrimSpace(answers[prompt.FieldCodeVersion]),
		Exclude:     config.SplitExclude(answers[prompt.FieldExclude]),
	}
	if settings.Hostname == "" || settings.Username == "" || settings.Password == "" {
		return config.Settings{}, &PromptError{Err: fmt.Errorf("hostname, username and password are required")}
	}
	if config.DeriveName(settings.Hostname) == "" {
		return config.Settings{}, &PromptError{Err: fmt.Errorf("hostname %q yields an empty profile name", settings.Hostname)}
	}
	if settings.CodeVersion == "" {
		settings.CodeVersion = e.defaults.CodeVersion
	}
	if len(settings.Exclude) == 0 {
		settings.Exclude = append([]string(nil), e.defaults.Exclude...)
	}
	return settings, nil
}

func (e *Editor) scan(exclude []string) ([]string, error) {
	found, err := e.scanner.Scan(e.workDir, exclude)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		util.Warn("No cartridges found in %s", e.workDir)
	}
	return found, nil
}

// ensureActive restores the exactly-one-active invariant: a document without
// an active profile activates fallback, one with several keeps the first.
func ensureActive(profiles config.Collection, fallback string) (config.Collection, error) {
	switch profiles.ActiveCount() {
	case 1:
		return profiles, nil
	case 0:
		return config.SetActive(profiles, fallback)
	default:
		first, _ := profiles.Active()
		return config.SetActive(profiles, first.Name)
	}
}
