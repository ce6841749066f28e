// Package testutil provides utilities for testing.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteTemplates writes files below root, creating directories as needed.
// Keys are slash-separated paths relative to root.
func WriteTemplates(t *testing.T, root string, files map[string]string) {
	t.Helper()

	for path, content := range files {
		fullPath := filepath.Join(root, filepath.FromSlash(path))

		if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
			t.Fatalf("failed to create directory for %s: %v", path, err)
		}
		if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write template %s: %v", path, err)
		}
	}
}

// TemplateDir creates a temporary directory holding files.
func TemplateDir(t *testing.T, files map[string]string) string {
	t.Helper()

	dir := t.TempDir()
	WriteTemplates(t, dir, files)
	return dir
}

// Layout is a temporary application with one component.
type Layout struct {
	AppDir       string // application template directory
	ComponentDir string // component template directory
}

// Scenario texts rendered by the templates of NewInfoLayout.
const (
	ScenarioNoComponent         = "Scenario: No component."
	ScenarioNoComponentAuto     = "Scenario: No component auto."
	ScenarioCustomEndpoint      = "Scenario: No component custom endpoint."
	ScenarioComponent           = "Scenario: Component."
	ScenarioComponentAuto       = "Scenario: Component auto."
	ScenarioAppOverride         = "Scenario: Application template overrides component template."
	ScenarioComponentOverride   = "Scenario: Component template overrides application template."
	ScenarioLegacy              = "Scenario: Legacy lookup component."
	ScenarioLegacyComponentWins = "Scenario: Legacy lookup component with component priority."
	ScenarioNamespacedOverride  = "Scenario: Custom folder for application template overriding component template."
)

// NewInfoLayout builds an application with an "info" component covering the
// combinations of priority, legacy lookup and template folder:
//
//	app/no_component.html
//	app/no_component_auto.html
//	app/no_component_custom_endpoint.html
//	app/info/overrided.html
//	app/namespaced/info/overrided.html
//	info/index.html
//	info/auto.html
//	info/overrided.html
//	info/info/index.html
//	info/info/overrided.html
func NewInfoLayout(t *testing.T) Layout {
	t.Helper()

	root := t.TempDir()
	layout := Layout{
		AppDir:       filepath.Join(root, "app"),
		ComponentDir: filepath.Join(root, "info"),
	}

	WriteTemplates(t, layout.AppDir, map[string]string{
		"no_component.html":                 ScenarioNoComponent,
		"no_component_auto.html":            ScenarioNoComponentAuto,
		"no_component_custom_endpoint.html": ScenarioCustomEndpoint,
		"info/overrided.html":               ScenarioAppOverride,
		"namespaced/info/overrided.html":    ScenarioNamespacedOverride,
	})
	WriteTemplates(t, layout.ComponentDir, map[string]string{
		"index.html":          ScenarioComponent,
		"auto.html":           ScenarioComponentAuto,
		"overrided.html":      ScenarioComponentOverride,
		"info/index.html":     ScenarioLegacy,
		"info/overrided.html": ScenarioLegacyComponentWins,
	})

	return layout
}
