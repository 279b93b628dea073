package editor

import (
	"errors"

	"github.com/danieljhkim/davos/internal/config"
)

var (
	// ErrConfigAlreadyExists is returned by Create when a document is present.
	ErrConfigAlreadyExists = errors.New("configuration already exists")
	// ErrNoCartridgesFound is returned by Create when the work dir holds no cartridge.
	ErrNoCartridgesFound = errors.New("no cartridges found")
	// ErrDuplicateProfile is returned when a derived name is already taken.
	ErrDuplicateProfile = errors.New("profile already exists")
	// ErrMissingProfileArgument is returned when edit or switch gets no profile name.
	ErrMissingProfileArgument = errors.New("profile name required")
	// ErrProfileNotFound is returned when no profile matches the requested name.
	ErrProfileNotFound = config.ErrProfileNotFound
	// ErrPrompt matches every *PromptError.
	ErrPrompt = errors.New("prompt failed")
)

// PromptError wraps a failed or cancelled prompt. Nothing was saved.
type PromptError struct {
	Err error
}

func (e *PromptError) Error() string {
	return "prompt failed: " + e.Err.Error()
}

func (e *PromptError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrPrompt) hold for any PromptError.
func (e *PromptError) Is(target error) bool { return target == ErrPrompt }
