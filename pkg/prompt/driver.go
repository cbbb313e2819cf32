// Package prompt abstracts interactive value collection so the CLI can fill
// missing required placeholder values without binding callers to a real
// terminal.
package prompt

import (
	"context"
	"errors"
)

// ErrAborted is returned when the user interrupts a prompt session.
var ErrAborted = errors.New("prompt: aborted")

// InputConfig configures a single text prompt.
type InputConfig struct {
	Message string
	Default string
	Help    string
}

// Driver abstracts the prompt implementation so fill logic can be tested
// without a terminal and callers can swap implementations.
type Driver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
}
