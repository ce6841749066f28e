package forward

import (
	"errors"
	"strings"

	"github.com/randalmurphal/forward/engine"
)

// Resolution errors
var (
	// ErrTemplateNotFound indicates no candidate resolved to a template.
	// It is the same value as engine.ErrTemplateNotFound.
	ErrTemplateNotFound = engine.ErrTemplateNotFound

	// ErrMisconfiguredComponent indicates the request names a component
	// that is not registered.
	ErrMisconfiguredComponent = errors.New("component not registered")

	// ErrNoRequest indicates the context carries no request.
	ErrNoRequest = errors.New("no request in context")

	// ErrInvalidConfig indicates a configuration value could not be parsed.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// NotFoundError reports a template that none of the candidates provided.
type NotFoundError struct {
	Name  string      // Template name as requested or inferred
	Tried []Candidate // Candidates in the order they were tried
}

func (e *NotFoundError) Error() string {
	if len(e.Tried) == 0 {
		return "template not found: " + e.Name
	}

	paths := make([]string, 0, len(e.Tried))
	for _, c := range e.Tried {
		paths = append(paths, c.Origin.String()+":"+c.Path)
	}
	return "template not found: " + e.Name + " (tried " + strings.Join(paths, ", ") + ")"
}

func (e *NotFoundError) Unwrap() error {
	return ErrTemplateNotFound
}

// ComponentError reports a request whose component cannot be used.
type ComponentError struct {
	Component string // Component name from the request
	Err       error  // Underlying error
}

func (e *ComponentError) Error() string {
	return e.Err.Error() + ": " + e.Component
}

func (e *ComponentError) Unwrap() error {
	return e.Err
}
