// Package component models independently rooted groups of templates.
//
// A Component (called a blueprint in some frameworks) has a name and its own
// template search path. A Registry holds the components an application has
// mounted and can itself act as an engine.Loader that dispatches over them.
package component
