package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrProfileNotFound is returned when no profile carries the requested name.
var ErrProfileNotFound = errors.New("profile not found")

// Settings is the per-profile connection block handed to the deployment engine.
type Settings struct {
	Hostname    string   `json:"hostname"`
	Username    string   `json:"username"`
	Password    string   `json:"password"`
	Cartridges  []string `json:"cartridge"`
	CodeVersion string   `json:"codeVersion"`
	Exclude     []string `json:"exclude"`
}

// Profile is one named entry of the profile document.
type Profile struct {
	Active   bool     `json:"active"`
	Name     string   `json:"profile"`
	Settings Settings `json:"config"`
}

// Collection is the whole profile document, in persisted order.
type Collection []Profile

// DeriveName returns the profile name for a hostname: the text before its first '-'.
func DeriveName(hostname string) string {
	name, _, _ := strings.Cut(hostname, "-")
	return name
}

// SplitExclude splits a space-separated pattern list. Empty fragments are dropped,
// so patterns containing spaces cannot be expressed.
func SplitExclude(s string) []string {
	var patterns []string
	for _, part := range strings.Split(s, " ") {
		if part != "" {
			patterns = append(patterns, part)
		}
	}
	return patterns
}

// NewProfile builds an inactive profile named after its hostname.
func NewProfile(settings Settings) Profile {
	return Profile{
		Name:     DeriveName(settings.Hostname),
		Settings: settings,
	}
}

// Clone returns a deep copy of s.
func (s Settings) Clone() Settings {
	s.Cartridges = cloneStrings(s.Cartridges)
	s.Exclude = cloneStrings(s.Exclude)
	return s
}

// Clone returns a deep copy of c.
func (c Collection) Clone() Collection {
	if c == nil {
		return nil
	}
	out := make(Collection, len(c))
	for i, p := range c {
		p.Settings = p.Settings.Clone()
		out[i] = p
	}
	return out
}

// Index returns the position of the profile called name, or -1.
func (c Collection) Index(name string) int {
	for i := range c {
		if c[i].Name == name {
			return i
		}
	}
	return -1
}

// Find returns the profile called name.
func (c Collection) Find(name string) (Profile, bool) {
	if i := c.Index(name); i >= 0 {
		return c[i], true
	}
	return Profile{}, false
}

// Active returns the first profile flagged active.
func (c Collection) Active() (Profile, bool) {
	for _, p := range c {
		if p.Active {
			return p, true
		}
	}
	return Profile{}, false
}

// ActiveCount returns how many profiles are flagged active.
func (c Collection) ActiveCount() int {
	n := 0
	for _, p := range c {
		if p.Active {
			n++
		}
	}
	return n
}

// SetActive returns a copy of c where the profile called name is the only active one.
// This is the single place active flags are assigned.
func SetActive(c Collection, name string) (Collection, error) {
	i := c.Index(name)
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, name)
	}

	out := c.Clone()
	for j := range out {
		out[j].Active = j == i
	}
	return out, nil
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append(make([]string, 0, len(s)), s...)
}
