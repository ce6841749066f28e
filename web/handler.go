package web

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/randalmurphal/forward"
	ferrors "github.com/randalmurphal/forward/errors"
)

// Bind returns a handler that stores endpoint and component in the request
// context before calling h. An empty component means the application serves
// the route itself.
func Bind(endpoint, component string, h http.Handler) http.Handler {
	req := forward.Request{Endpoint: endpoint, Component: component}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h.ServeHTTP(w, r.WithContext(forward.WithRequest(r.Context(), req)))
	})
}

// DataFunc builds the template data for a request.
type DataFunc func(r *http.Request) any

type handler struct {
	forwarder   *forward.Forwarder
	name        string
	data        DataFunc
	logger      *slog.Logger
	diagnostics bool
}

// Option configures Handler.
type Option func(*handler)

// WithLogger sets the logger for render failures. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(h *handler) {
		h.logger = logger
	}
}

// WithDiagnostics writes explained errors into failed responses instead of
// the bare status text. Meant for development servers.
func WithDiagnostics() Option {
	return func(h *handler) {
		h.diagnostics = true
	}
}

// Handler renders name, or the name inferred from the bound endpoint when
// name is empty. data may be nil. Missing templates answer 404, other
// failures 500.
func Handler(f *forward.Forwarder, name string, data DataFunc, opts ...Option) http.Handler {
	h := &handler{
		forwarder: f,
		name:      name,
		data:      data,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, ok := forward.RequestFromContext(r.Context())
	if !ok {
		h.fail(w, r, req, forward.ErrNoRequest)
		return
	}

	var data any
	if h.data != nil {
		data = h.data(r)
	}

	var buf bytes.Buffer
	if err := h.forwarder.Render(&buf, req, h.name, data); err != nil {
		h.fail(w, r, req, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}

func (h *handler) fail(w http.ResponseWriter, r *http.Request, req forward.Request, err error) {
	status := http.StatusInternalServerError
	if ferrors.IsNotFound(err) {
		status = http.StatusNotFound
	}

	h.logger.LogAttrs(r.Context(), levelFor(status), "render failed",
		slog.String("path", r.URL.Path),
		slog.String("endpoint", req.Endpoint),
		slog.String("component", req.Component),
		slog.Int("status", status),
		slog.String("error", err.Error()))

	body := http.StatusText(status)
	if h.diagnostics {
		body = ferrors.Explain(err).Error()
	}
	http.Error(w, body, status)
}

func levelFor(status int) slog.Level {
	if status >= http.StatusInternalServerError {
		return slog.LevelError
	}
	return slog.LevelWarn
}
