package errors

import (
	"errors"

	"github.com/randalmurphal/forward"
)

// IsNotFound checks if an error reports a missing template.
func IsNotFound(err error) bool {
	return err != nil && errors.Is(err, forward.ErrTemplateNotFound)
}

// IsComponentError checks if an error reports an unusable component.
func IsComponentError(err error) bool {
	return err != nil && errors.Is(err, forward.ErrMisconfiguredComponent)
}

// IsConfigError checks if an error reports invalid configuration.
func IsConfigError(err error) bool {
	return err != nil && errors.Is(err, forward.ErrInvalidConfig)
}
