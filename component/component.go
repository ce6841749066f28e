package component

import "github.com/randalmurphal/forward/engine"

// Component is a named group of routes whose templates live under their own
// search roots.
type Component struct {
	name   string
	loader *engine.FileSystemLoader
}

// New creates a component whose templates are searched for in roots, in
// order.
func New(name string, roots ...string) *Component {
	return &Component{
		name:   name,
		loader: engine.NewFileSystemLoader(roots...),
	}
}

// Name returns the component name.
func (c *Component) Name() string {
	return c.name
}

// SearchRoots returns the directories searched for the component's templates.
func (c *Component) SearchRoots() []string {
	return c.loader.SearchPath()
}

// Loader returns the loader over the component's search roots.
func (c *Component) Loader() engine.Loader {
	return c.loader
}
