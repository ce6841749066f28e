// Package forward picks the template that renders a request when both the
// application and the component serving the request may provide it.
//
// Resolution runs in three steps:
//
//   - Name inference: with no explicit name, the request endpoint
//     "info.show" becomes "info/show.html".
//   - Candidate paths: the application candidate is namespaced under the
//     component name ("<folder>/info/show.html"); the component candidate is
//     relative to the component's own search roots.
//   - Priority lookup: the two candidates are tried in the configured order
//     and the first one that exists wins.
//
// Requests not served by a component skip the last two steps and use the
// engine's default loader.
//
// # Quick Start
//
//	import (
//	    "github.com/randalmurphal/forward"
//	    "github.com/randalmurphal/forward/component"
//	)
//
//	components := component.NewRegistry()
//	if err := components.Register(component.New("info", "info/templates")); err != nil {
//	    return err
//	}
//
//	f := forward.New(forward.Options{
//	    SearchPath: []string{"templates"},
//	    Components: components,
//	})
//
//	req := forward.Request{Endpoint: "info.show", Component: "info"}
//	if err := f.Render(w, req, "", data); err != nil {
//	    return err
//	}
//
// Subpackages:
//
//   - engine: template loaders, parsing, caching and file watching
//   - component: components and the component registry
//   - config: layered configuration (defaults, files, env, flags)
//   - errors: user-facing diagnostics for resolution failures
//   - web: net/http adapter
//   - testutil: template tree fixtures for tests
package forward
