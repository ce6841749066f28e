package engine

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// defaultFuncMap returns default template functions.
func defaultFuncMap() template.FuncMap {
	return template.FuncMap{
		"join":     strings.Join,
		"split":    strings.Split,
		"trim":     strings.TrimSpace,
		"upper":    strings.ToUpper,
		"lower":    strings.ToLower,
		"title":    titleCase,
		"contains": strings.Contains,
		"replace":  strings.ReplaceAll,
		"default":  defaultValue,
		"markdown": renderMarkdown,
	}
}

// titleCase title-cases s. Casers are stateful, so each call gets its own.
func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}

// defaultValue returns the default if value is empty.
func defaultValue(defaultVal, value any) any {
	if value == nil {
		return defaultVal
	}
	if s, ok := value.(string); ok && s == "" {
		return defaultVal
	}
	return value
}

// renderMarkdown converts CommonMark source to HTML. The output is trusted
// as-is, so only feed it content the application controls.
func renderMarkdown(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}
