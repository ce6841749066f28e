package forward

import (
	"strings"

	"github.com/randalmurphal/forward/component"
)

// BuildCandidatePaths returns the application and component candidate paths
// for name.
//
// The application path is always namespaced by the component name so an
// application can override a component's template from its own search path.
// The component path is either nested under the component name (legacy
// lookup) or name with the first occurrence of the component name removed.
// Paths are returned as built: "info/show.html" for component "info" yields
// the component path "/show.html", and the loader ignores the leading slash.
func BuildCandidatePaths(c *component.Component, name string, cfg Config) (appPath, componentPath string) {
	appPath = cfg.TemplateFolder + "/" + c.Name() + "/" + name

	if cfg.LegacyLookup {
		componentPath = c.Name() + "/" + name
	} else {
		componentPath = strings.Replace(name, c.Name(), "", 1)
	}

	return appPath, componentPath
}
