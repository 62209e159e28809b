// Package suggest wraps the external text-generation proxy used for event
// suggestions. It is a capability injected at wiring time; its failures are
// isolated from core record operations.
package suggest

import (
	"context"
	"errors"
	"fmt"
)

// Suggestion is one proposed calendar event.
type Suggestion struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Description string `json:"description,omitempty"`
}

// Suggester produces event suggestions for a set of tags within a year.
type Suggester interface {
	SuggestEvents(ctx context.Context, tags []string, year int) ([]Suggestion, error)
}

// ErrService marks failures of the external suggestion collaborator.
var ErrService = errors.New("suggestion service error")

// Disabled is the no-op Suggester used when no proxy URL is configured.
type Disabled struct{}

func (Disabled) SuggestEvents(context.Context, []string, int) ([]Suggestion, error) {
	return nil, fmt.Errorf("%w: not configured", ErrService)
}
