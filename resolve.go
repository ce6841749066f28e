package forward

import (
	"errors"
	"strconv"

	"github.com/randalmurphal/forward/engine"
)

// Origin identifies which namespace a candidate belongs to.
type Origin int

const (
	// OriginApplication marks the application-rooted candidate.
	OriginApplication Origin = iota
	// OriginComponent marks the component-rooted candidate.
	OriginComponent
)

func (o Origin) String() string {
	switch o {
	case OriginApplication:
		return "application"
	case OriginComponent:
		return "component"
	default:
		return "Origin(" + strconv.Itoa(int(o)) + ")"
	}
}

// Candidate is a relative template path paired with the loader it is looked
// up through.
type Candidate struct {
	Origin Origin
	Loader engine.Loader
	Path   string
}

// Candidates returns the candidates for name in the order they are tried.
// It returns nil when req is not served by a component.
func (f *Forwarder) Candidates(req Request, name string) ([]Candidate, error) {
	if req.Component == "" {
		return nil, nil
	}

	c, ok := f.components.Lookup(req.Component)
	if !ok {
		return nil, &ComponentError{Component: req.Component, Err: ErrMisconfiguredComponent}
	}

	cfg := f.Config()
	appPath, componentPath := BuildCandidatePaths(c, name, cfg)

	app := Candidate{Origin: OriginApplication, Loader: f.appLoader, Path: appPath}
	own := Candidate{Origin: OriginComponent, Loader: c.Loader(), Path: componentPath}

	if cfg.Priority == PriorityComponent {
		return []Candidate{own, app}, nil
	}
	return []Candidate{app, own}, nil
}

// Resolve returns the template that renders name for req.
//
// Without a component, name is looked up verbatim through the engine's
// default loader. With one, the application and component candidates are
// tried in priority order and the first that exists wins. Errors other than
// a missing template stop the lookup immediately. The engine's default
// loader is never modified.
func (f *Forwarder) Resolve(req Request, name string) (*engine.Template, error) {
	if req.Component == "" {
		tmpl, err := f.env.GetTemplate(name)
		if errors.Is(err, engine.ErrTemplateNotFound) {
			return nil, &NotFoundError{Name: name}
		}
		return tmpl, err
	}

	candidates, err := f.Candidates(req, name)
	if err != nil {
		return nil, err
	}

	for _, c := range candidates {
		tmpl, err := f.env.GetTemplateFrom(c.Loader, c.Path)
		if err == nil {
			return tmpl, nil
		}
		if !errors.Is(err, engine.ErrTemplateNotFound) {
			return nil, err
		}
	}

	return nil, &NotFoundError{Name: name, Tried: candidates}
}
