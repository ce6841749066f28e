// Package engine loads and renders HTML templates from ordered search paths.
//
// Core types:
//   - Loader: Finds the file backing a template name
//   - FileSystemLoader: Searches an ordered list of directories
//   - ChoiceLoader: Tries several loaders in order
//   - Environment: Parses, caches and executes templates
//   - Watcher: Clears the template cache when files change
//
// The Environment owns a default loader used by GetTemplate. Callers that
// need a different search path pass the loader explicitly:
//
//	env := engine.New(engine.NewFileSystemLoader("templates"))
//	tmpl, err := env.GetTemplateFrom(
//	    engine.NewFileSystemLoader("blueprints/info/templates"),
//	    "show.html",
//	)
//	if err != nil {
//	    return err
//	}
//	return tmpl.Execute(w, data)
package engine
