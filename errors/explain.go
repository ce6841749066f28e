package errors

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/randalmurphal/forward"
	"github.com/randalmurphal/forward/engine"
)

// Error wraps an error with developer-facing context and suggestions.
type Error struct {
	// Err is the underlying error
	Err error

	// Message is a readable description of what went wrong
	Message string

	// Suggestion is an actionable hint
	Suggestion string

	// Details provides additional context (optional)
	Details string
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)

	if e.Details != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Details)
	}

	if e.Suggestion != "" {
		sb.WriteString("\n\n")
		sb.WriteString(e.Suggestion)
	}

	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Messenger provides customizable messages.
type Messenger interface {
	// NotFoundMessage returns the message and suggestion for a missing
	// template. locations lists the files that were looked for, in order.
	NotFoundMessage(name string, locations []string) (message, suggestion string)

	// MisconfiguredComponentMessage returns the message and suggestion for a
	// request served by an unregistered component.
	MisconfiguredComponentMessage(component string) (message, suggestion string)

	// InvalidConfigMessage returns the message and suggestion for a bad
	// configuration value.
	InvalidConfigMessage() (message, suggestion string)
}

// DefaultMessenger provides default messages.
type DefaultMessenger struct{}

func (m DefaultMessenger) NotFoundMessage(name string, locations []string) (string, string) {
	msg := "Template " + name + " was not found."
	if len(locations) == 0 {
		return msg, "Add the template to the application's template directory."
	}
	return msg, "Create one of:\n  - " + strings.Join(locations, "\n  - ")
}

func (m DefaultMessenger) MisconfiguredComponentMessage(component string) (string, string) {
	return "Component " + component + " is not registered.",
		"Register the component before serving requests for it."
}

func (m DefaultMessenger) InvalidConfigMessage() (string, string) {
	return "Template configuration is invalid.",
		"Template priority must be Application or Component; legacy lookup must be a boolean."
}

// WrapConfig configures error wrapping behavior.
type WrapConfig struct {
	Messenger Messenger
}

// Option configures WrapConfig.
type Option func(*WrapConfig)

// WithMessenger sets a custom messenger.
func WithMessenger(m Messenger) Option {
	return func(c *WrapConfig) {
		c.Messenger = m
	}
}

func getMessenger(opts []Option) Messenger {
	cfg := &WrapConfig{
		Messenger: DefaultMessenger{},
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg.Messenger
}

// Explain wraps resolution errors with guidance. Other errors, and nil, are
// returned unchanged.
func Explain(err error, opts ...Option) error {
	if err == nil {
		return nil
	}

	messenger := getMessenger(opts)

	var nf *forward.NotFoundError
	if errors.As(err, &nf) {
		msg, suggestion := messenger.NotFoundMessage(nf.Name, Locations(nf.Tried))
		return &Error{
			Err:        err,
			Message:    msg,
			Suggestion: suggestion,
		}
	}

	var ce *forward.ComponentError
	if errors.As(err, &ce) {
		msg, suggestion := messenger.MisconfiguredComponentMessage(ce.Component)
		return &Error{
			Err:        err,
			Message:    msg,
			Suggestion: suggestion,
		}
	}

	if errors.Is(err, forward.ErrInvalidConfig) {
		msg, suggestion := messenger.InvalidConfigMessage()
		return &Error{
			Err:        err,
			Message:    msg,
			Details:    err.Error(),
			Suggestion: suggestion,
		}
	}

	return err
}

// Locations lists the files the candidates would have loaded, in lookup
// order. Candidates whose loader does not expose a search path are skipped.
func Locations(candidates []forward.Candidate) []string {
	var locations []string
	for _, c := range candidates {
		fs, ok := c.Loader.(*engine.FileSystemLoader)
		if !ok {
			continue
		}
		rel := filepath.FromSlash(strings.TrimLeft(c.Path, "/"))
		for _, dir := range fs.SearchPath() {
			locations = append(locations, filepath.Join(dir, rel))
		}
	}
	return locations
}
