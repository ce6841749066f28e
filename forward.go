package forward

import (
	"bytes"
	"context"
	"io"
	"sync/atomic"

	"github.com/randalmurphal/forward/component"
	"github.com/randalmurphal/forward/engine"
)

// Options configures New.
type Options struct {
	// Config holds the resolution settings. Nil means DefaultConfig(). An
	// empty Extension means DefaultExtension.
	Config *Config

	// SearchPath lists the application's own template directories, in order.
	SearchPath []string

	// Components holds the mounted components. Nil means an empty registry.
	Components *component.Registry

	// Engine renders templates. Nil means a new engine whose default loader
	// searches SearchPath first and then every component in registration
	// order.
	Engine *engine.Environment
}

// Forwarder resolves and renders templates for requests. It is safe for
// concurrent use.
type Forwarder struct {
	cfg        atomic.Pointer[Config]
	appLoader  *engine.FileSystemLoader
	components *component.Registry
	env        *engine.Environment
}

// New creates a Forwarder.
func New(opts Options) *Forwarder {
	f := &Forwarder{
		appLoader:  engine.NewFileSystemLoader(opts.SearchPath...),
		components: opts.Components,
		env:        opts.Engine,
	}

	if f.components == nil {
		f.components = component.NewRegistry()
	}
	if f.env == nil {
		f.env = engine.New(engine.NewChoiceLoader(f.appLoader, f.components))
	}

	cfg := DefaultConfig()
	if opts.Config != nil {
		cfg = *opts.Config
	}
	f.SetConfig(cfg)

	return f
}

// Config returns the current settings.
func (f *Forwarder) Config() Config {
	return *f.cfg.Load()
}

// SetConfig replaces the settings. Resolutions already running keep the
// settings they started with. An empty Extension becomes DefaultExtension.
func (f *Forwarder) SetConfig(cfg Config) {
	if cfg.Extension == "" {
		cfg.Extension = DefaultExtension
	}
	f.cfg.Store(&cfg)
}

// Engine returns the template engine.
func (f *Forwarder) Engine() *engine.Environment {
	return f.env
}

// Components returns the component registry.
func (f *Forwarder) Components() *component.Registry {
	return f.components
}

// SearchPath returns the application's own template directories.
func (f *Forwarder) SearchPath() []string {
	return f.appLoader.SearchPath()
}

// InferName returns explicit, or a name derived from req's endpoint and the
// configured extension.
func (f *Forwarder) InferName(req Request, explicit string) string {
	return InferTemplateName(req.Endpoint, explicit, f.Config().Extension)
}

// Render resolves the template for req and renders it to w. An empty
// explicit name is inferred from the endpoint.
func (f *Forwarder) Render(w io.Writer, req Request, explicit string, data any) error {
	tmpl, err := f.Resolve(req, f.InferName(req, explicit))
	if err != nil {
		return err
	}
	return tmpl.Execute(w, data)
}

// RenderString is Render into a string.
func (f *Forwarder) RenderString(req Request, explicit string, data any) (string, error) {
	var buf bytes.Buffer
	if err := f.Render(&buf, req, explicit, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Forward renders for the request stored in ctx by WithRequest.
func (f *Forwarder) Forward(ctx context.Context, explicit string, data any) (string, error) {
	req, ok := RequestFromContext(ctx)
	if !ok {
		return "", ErrNoRequest
	}
	return f.RenderString(req, explicit, data)
}
