package engine

import "errors"

// Template loading errors
var (
	// ErrTemplateNotFound indicates no search directory holds the template.
	ErrTemplateNotFound = errors.New("template not found")
)

// NotFoundError reports a template name that no loader could find.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return "template not found: " + e.Name
}

func (e *NotFoundError) Unwrap() error {
	return ErrTemplateNotFound
}
