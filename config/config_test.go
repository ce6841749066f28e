package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResolver_Defaults(t *testing.T) {
	resolver := NewResolver(ResolverConfig{
		Defaults: map[string]string{
			"template_priority":  "Application",
			"template_extension": "html",
		},
	})

	cfg := resolver.Resolve()

	if got := cfg.Get("template_priority"); got != "Application" {
		t.Errorf("template_priority = %q, want %q", got, "Application")
	}
	if got := cfg.Source("template_priority"); got != SourceDefault {
		t.Errorf("source = %q, want %q", got, SourceDefault)
	}
}

func TestResolver_EnvOverridesDefaults(t *testing.T) {
	t.Setenv("FORWARD_TEMPLATE_FOLDER", "overrides")

	resolver := NewResolver(ResolverConfig{
		EnvPrefix: "FORWARD_",
		Defaults: map[string]string{
			"template_folder": "",
		},
	})

	cfg := resolver.Resolve()

	if got := cfg.Get("template_folder"); got != "overrides" {
		t.Errorf("template_folder = %q, want %q", got, "overrides")
	}
	if got := cfg.Source("template_folder"); got != SourceEnv {
		t.Errorf("source = %q, want %q", got, SourceEnv)
	}
}

func TestResolver_EnvKey(t *testing.T) {
	resolver := NewResolver(ResolverConfig{EnvPrefix: "FORWARD_"})

	if got := resolver.EnvKey("legacy-lookup_method"); got != "FORWARD_LEGACY_LOOKUP_METHOD" {
		t.Errorf("EnvKey() = %q", got)
	}
}

func TestResolver_GlobalConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	os.WriteFile(configPath, []byte("template_extension: jinja\n"), 0644)

	resolver := NewResolverWithPaths(ResolverConfig{
		Defaults: map[string]string{
			"template_extension": "html",
		},
	}, configPath, "")

	cfg := resolver.Resolve()

	if got := cfg.Get("template_extension"); got != "jinja" {
		t.Errorf("template_extension = %q, want %q", got, "jinja")
	}
	if got := cfg.Source("template_extension"); got != SourceGlobal {
		t.Errorf("source = %q, want %q", got, SourceGlobal)
	}
}

func TestResolver_LocalConfigInAppDir(t *testing.T) {
	appDir := t.TempDir()
	os.WriteFile(filepath.Join(appDir, "forward.yaml"),
		[]byte("template_priority: Component\n"), 0644)

	resolver := NewResolver(ResolverConfig{
		AppDir:          appDir,
		LocalConfigName: "forward.yaml",
		Defaults: map[string]string{
			"template_priority": "Application",
		},
	})

	if got := resolver.LocalPath(); got != filepath.Join(appDir, "forward.yaml") {
		t.Errorf("LocalPath() = %q", got)
	}

	cfg := resolver.Resolve()

	if got := cfg.Get("template_priority"); got != "Component" {
		t.Errorf("template_priority = %q, want %q", got, "Component")
	}
	if got := cfg.Source("template_priority"); got != SourceLocal {
		t.Errorf("source = %q, want %q", got, SourceLocal)
	}
}

func TestResolver_JSONCConfig(t *testing.T) {
	tmpDir := t.TempDir()
	localPath := filepath.Join(tmpDir, "forward.jsonc")
	os.WriteFile(localPath, []byte(`{
	// components first
	"template_priority": "Component",
	"legacy_lookup_method": true,
	"retries": 3,
}
`), 0644)

	resolver := NewResolverWithPaths(ResolverConfig{}, "", localPath)
	cfg := resolver.Resolve()

	if got := cfg.Get("template_priority"); got != "Component" {
		t.Errorf("template_priority = %q, want Component", got)
	}
	if got := cfg.Get("legacy_lookup_method"); got != "true" {
		t.Errorf("legacy_lookup_method = %q, want true", got)
	}
	if got := cfg.Get("retries"); got != "3" {
		t.Errorf("retries = %q, want 3", got)
	}
}

func TestResolver_Priority(t *testing.T) {
	tmpDir := t.TempDir()

	globalConfig := filepath.Join(tmpDir, "global.yaml")
	os.WriteFile(globalConfig, []byte("template_folder: global\ntemplate_extension: txt\n"), 0644)

	localConfig := filepath.Join(tmpDir, "local.yaml")
	os.WriteFile(localConfig, []byte("template_folder: local\n"), 0644)

	t.Setenv("TEST_TEMPLATE_FOLDER", "env")

	resolver := NewResolverWithPaths(ResolverConfig{
		EnvPrefix: "TEST_",
		Defaults: map[string]string{
			"template_folder":    "default",
			"template_extension": "html",
		},
	}, globalConfig, localConfig)

	cfg := resolver.Resolve()

	// Env should win
	if got := cfg.Get("template_folder"); got != "env" {
		t.Errorf("template_folder = %q, want %q (env should have highest priority)", got, "env")
	}
	// Global beats default when nothing else sets the key
	if got, src := cfg.GetWithSource("template_extension"); got != "txt" || src != SourceGlobal {
		t.Errorf("template_extension = %q (%s), want txt (global)", got, src)
	}
}

func TestResolver_ResolveWithFlags(t *testing.T) {
	resolver := NewResolver(ResolverConfig{
		Defaults: map[string]string{
			"template_priority": "Application",
			"template_folder":   "",
		},
	})

	cfg := resolver.ResolveWithFlags(map[string]string{
		"template_priority": "Component",
		"template_folder":   "",
	})

	if got := cfg.Get("template_priority"); got != "Component" {
		t.Errorf("template_priority = %q, want %q", got, "Component")
	}
	if got := cfg.Source("template_priority"); got != SourceFlag {
		t.Errorf("source = %q, want %q", got, SourceFlag)
	}
	if got := cfg.Source("template_folder"); got != SourceDefault {
		t.Errorf("empty flag should not override, source = %q", got)
	}
}

func TestResolver_ValidKeys(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	os.WriteFile(configPath, []byte("template_folder: custom\ninvalid_key: value\n"), 0644)

	resolver := NewResolverWithPaths(ResolverConfig{
		ValidKeys: []string{"template_folder", "template_priority"},
	}, configPath, "")

	cfg := resolver.Resolve()

	if got := cfg.Get("template_folder"); got != "custom" {
		t.Errorf("template_folder = %q, want %q", got, "custom")
	}
	if _, ok := cfg.Lookup("invalid_key"); ok {
		t.Error("invalid_key should be ignored")
	}
}

func TestResolver_Aliases(t *testing.T) {
	tmpDir := t.TempDir()

	aliasOnly := filepath.Join(tmpDir, "alias.yaml")
	os.WriteFile(aliasOnly, []byte("blueprints_template_folder: legacy\n"), 0644)

	both := filepath.Join(tmpDir, "both.yaml")
	os.WriteFile(both, []byte("blueprints_template_folder: legacy\ntemplate_folder: current\n"), 0644)

	rc := ResolverConfig{
		Aliases:   map[string]string{"blueprints_template_folder": "template_folder"},
		ValidKeys: []string{"template_folder"},
	}

	cfg := NewResolverWithPaths(rc, "", aliasOnly).Resolve()
	if got := cfg.Get("template_folder"); got != "legacy" {
		t.Errorf("template_folder = %q, want legacy", got)
	}
	if _, ok := cfg.Lookup("blueprints_template_folder"); ok {
		t.Error("alias should not be stored under its own name")
	}

	cfg = NewResolverWithPaths(rc, "", both).Resolve()
	if got := cfg.Get("template_folder"); got != "current" {
		t.Errorf("template_folder = %q, want current name to win", got)
	}
}

func TestResolver_MalformedFileWarns(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	os.WriteFile(configPath, []byte("template_folder: [unclosed\n"), 0644)

	resolver := NewResolverWithPaths(ResolverConfig{
		Defaults: map[string]string{"template_folder": ""},
		Logger:   quietLogger(),
	}, configPath, "")

	cfg := resolver.Resolve()

	if len(resolver.Warnings) != 1 {
		t.Fatalf("got %d warnings, want 1", len(resolver.Warnings))
	}
	if got := cfg.Source("template_folder"); got != SourceDefault {
		t.Errorf("source = %q, want default after parse failure", got)
	}
}

func TestResolved_Keys(t *testing.T) {
	resolver := NewResolver(ResolverConfig{
		Defaults: map[string]string{
			"key2": "value2",
			"key1": "value1",
		},
	})

	cfg := resolver.Resolve()
	keys := cfg.Keys()

	if len(keys) != 2 || keys[0] != "key1" || keys[1] != "key2" {
		t.Errorf("Keys() = %v, want [key1 key2]", keys)
	}
	if got, src := cfg.GetWithSource("key1"); got != "value1" || src != SourceDefault {
		t.Errorf("key1 = %q (%s), want value1 (default)", got, src)
	}
}

func TestResolver_EnvAliases(t *testing.T) {
	rc := ResolverConfig{
		EnvPrefix: "FORWARD_",
		Defaults:  map[string]string{"template_folder": ""},
		Aliases:   map[string]string{"blueprints_template_folder": "template_folder"},
		ValidKeys: []string{"template_folder"},
	}

	t.Run("alias only", func(t *testing.T) {
		t.Setenv("FORWARD_TEMPLATE_FOLDER", "")
		t.Setenv("FORWARD_BLUEPRINTS_TEMPLATE_FOLDER", "legacy")

		cfg := NewResolver(rc).Resolve()

		if got, src := cfg.GetWithSource("template_folder"); got != "legacy" || src != SourceEnv {
			t.Errorf("template_folder = %q (%s), want legacy (env)", got, src)
		}
		if _, ok := cfg.Lookup("blueprints_template_folder"); ok {
			t.Error("alias should not be stored under its own name")
		}
	})

	t.Run("current name wins", func(t *testing.T) {
		t.Setenv("FORWARD_BLUEPRINTS_TEMPLATE_FOLDER", "legacy")
		t.Setenv("FORWARD_TEMPLATE_FOLDER", "current")

		cfg := NewResolver(rc).Resolve()

		if got := cfg.Get("template_folder"); got != "current" {
			t.Errorf("template_folder = %q, want current", got)
		}
	})

	t.Run("alias beats file", func(t *testing.T) {
		localPath := filepath.Join(t.TempDir(), "forward.yaml")
		os.WriteFile(localPath, []byte("template_folder: from-file\n"), 0644)
		t.Setenv("FORWARD_TEMPLATE_FOLDER", "")
		t.Setenv("FORWARD_BLUEPRINTS_TEMPLATE_FOLDER", "legacy")

		cfg := NewResolverWithPaths(rc, "", localPath).Resolve()

		if got := cfg.Get("template_folder"); got != "legacy" {
			t.Errorf("template_folder = %q, want env alias over file", got)
		}
	})
}

func TestResolver_BoolValues(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")
	os.WriteFile(configPath, []byte("legacy_lookup_method: true\n"), 0644)

	resolver := NewResolverWithPaths(ResolverConfig{
		Defaults: map[string]string{
			"legacy_lookup_method": "false",
		},
	}, configPath, "")

	cfg := resolver.Resolve()

	if got := cfg.Get("legacy_lookup_method"); got != "true" {
		t.Errorf("legacy_lookup_method = %q, want %q", got, "true")
	}
}
