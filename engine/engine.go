package engine

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"os"
	"sync"
)

// Template is a parsed template together with the file it came from.
type Template struct {
	Name     string // Name the template was requested by
	Filename string // File that backs the template

	tmpl *template.Template
}

// Execute renders the template to w.
func (t *Template) Execute(w io.Writer, data any) error {
	if err := t.tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("render template %s: %w", t.Name, err)
	}
	return nil
}

// Render renders the template to a string.
func (t *Template) Render(data any) (string, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Environment loads, parses and caches templates.
//
// The default loader is fixed at construction and shared by every caller
// of GetTemplate. Lookups against another search path go through
// GetTemplateFrom.
type Environment struct {
	loader Loader

	cacheMu sync.Mutex
	cache   map[string]*template.Template // Parsed templates keyed by filename
	funcMap template.FuncMap
}

// New creates an environment whose default loader is loader.
func New(loader Loader) *Environment {
	return &Environment{
		loader:  loader,
		cache:   make(map[string]*template.Template),
		funcMap: defaultFuncMap(),
	}
}

// Loader returns the default loader.
func (e *Environment) Loader() Loader {
	return e.loader
}

// AddFunc adds a custom template function. It applies to templates parsed
// after the call.
func (e *Environment) AddFunc(name string, fn any) {
	e.cacheMu.Lock()
	defer e.cacheMu.Unlock()
	e.funcMap[name] = fn
}

// GetTemplate loads name through the default loader.
func (e *Environment) GetTemplate(name string) (*Template, error) {
	return e.GetTemplateFrom(e.Loader(), name)
}

// GetTemplateFrom loads name through loader. The default loader is not
// consulted or modified.
func (e *Environment) GetTemplateFrom(loader Loader, name string) (*Template, error) {
	if loader == nil {
		return nil, &NotFoundError{Name: name}
	}

	filename, err := loader.Find(name)
	if err != nil {
		return nil, err
	}

	tmpl, err := e.parse(name, filename)
	if err != nil {
		return nil, err
	}

	return &Template{Name: name, Filename: filename, tmpl: tmpl}, nil
}

// parse returns the cached template for filename, parsing it on first use.
func (e *Environment) parse(name, filename string) (*template.Template, error) {
	e.cacheMu.Lock()
	defer e.cacheMu.Unlock()

	if tmpl, ok := e.cache[filename]; ok {
		return tmpl, nil
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Name: name}
		}
		return nil, fmt.Errorf("read template %s: %w", name, err)
	}

	tmpl, err := template.New(name).Funcs(e.funcMap).Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", name, err)
	}

	e.cache[filename] = tmpl
	return tmpl, nil
}

// ClearCache drops every parsed template.
func (e *Environment) ClearCache() {
	e.cacheMu.Lock()
	defer e.cacheMu.Unlock()
	e.cache = make(map[string]*template.Template)
}

// Cached reports how many templates are currently cached.
func (e *Environment) Cached() int {
	e.cacheMu.Lock()
	defer e.cacheMu.Unlock()
	return len(e.cache)
}
