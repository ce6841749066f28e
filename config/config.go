package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// ResolverConfig configures the layered config resolver.
type ResolverConfig struct {
	// EnvPrefix is prepended to key names for environment variable lookup.
	// For example, with EnvPrefix "FORWARD_", key "template_folder" maps to
	// FORWARD_TEMPLATE_FOLDER.
	EnvPrefix string

	// GlobalConfigDir is the name of the directory under ~/.config/
	// where the global config is stored.
	// For example, "forward" results in ~/.config/forward/config.yaml.
	GlobalConfigDir string

	// GlobalConfigFile is the filename for global config.
	// Defaults to "config.yaml" if empty.
	GlobalConfigFile string

	// AppDir is the application root. The local config file is looked up
	// there.
	AppDir string

	// LocalConfigName is the filename for local config in AppDir.
	// For example, "forward.yaml" or "forward.jsonc".
	LocalConfigName string

	// Defaults provides the default values for configuration keys.
	Defaults map[string]string

	// Aliases maps deprecated key names to their current name. A value set
	// under an alias is stored under the current name unless the current
	// name is also set in the same file.
	Aliases map[string]string

	// ValidKeys lists keys that can be set in config files.
	// If nil, all keys are valid.
	ValidKeys []string

	// Logger receives warnings. Defaults to slog.Default().
	Logger *slog.Logger
}

func (c ResolverConfig) globalConfigFile() string {
	if c.GlobalConfigFile != "" {
		return c.GlobalConfigFile
	}
	return "config.yaml"
}

// Resolver handles layered configuration resolution.
type Resolver struct {
	config     ResolverConfig
	globalPath string
	localPath  string

	// Warnings collects non-fatal issues during resolution.
	Warnings []string
}

// NewResolver creates a new configuration resolver.
func NewResolver(cfg ResolverConfig) *Resolver {
	resolver := &Resolver{
		config: cfg,
	}

	if cfg.Logger == nil {
		resolver.config.Logger = slog.Default()
	}

	if cfg.LocalConfigName != "" {
		dir := cfg.AppDir
		if dir == "" {
			dir = "."
		}
		resolver.localPath = filepath.Join(dir, cfg.LocalConfigName)
	}

	if cfg.GlobalConfigDir != "" {
		if home, err := os.UserHomeDir(); err == nil {
			resolver.globalPath = filepath.Join(
				home, ".config", cfg.GlobalConfigDir, cfg.globalConfigFile(),
			)
		}
	}

	return resolver
}

// NewResolverWithPaths creates a resolver with explicit global and local paths.
// This is useful for testing or when paths are known ahead of time.
func NewResolverWithPaths(cfg ResolverConfig, globalPath, localPath string) *Resolver {
	resolver := &Resolver{
		config:     cfg,
		globalPath: globalPath,
		localPath:  localPath,
	}

	if cfg.Logger == nil {
		resolver.config.Logger = slog.Default()
	}

	return resolver
}

// warn records a warning and logs it.
func (r *Resolver) warn(msg string, args ...any) {
	r.Warnings = append(r.Warnings, msg)
	r.config.Logger.Warn(msg, args...)
}

// Resolved holds the final merged configuration.
type Resolved struct {
	values  map[string]string
	sources map[string]Source
}

// Get returns the value for a key, or empty string if not set.
func (c *Resolved) Get(key string) string {
	return c.values[key]
}

// Lookup returns the value for a key and whether it is set.
func (c *Resolved) Lookup(key string) (string, bool) {
	v, ok := c.values[key]
	return v, ok
}

// Source returns the source of a key's value.
func (c *Resolved) Source(key string) Source {
	return c.sources[key]
}

// GetWithSource returns both the value and its source.
func (c *Resolved) GetWithSource(key string) (string, Source) {
	return c.values[key], c.sources[key]
}

// Keys returns all configuration keys, sorted.
func (c *Resolved) Keys() []string {
	keys := make([]string, 0, len(c.values))
	for k := range c.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Resolve builds the final config by merging all sources.
// Priority (highest to lowest): env > local > global > defaults.
func (r *Resolver) Resolve() *Resolved {
	cfg := &Resolved{
		values:  make(map[string]string),
		sources: make(map[string]Source),
	}

	r.applyDefaults(cfg)
	r.applyFile(cfg, r.globalPath, SourceGlobal)
	r.applyFile(cfg, r.localPath, SourceLocal)
	r.applyEnv(cfg)

	return cfg
}

// ResolveWithFlags resolves config and applies flag overrides. Empty flag
// values are ignored.
func (r *Resolver) ResolveWithFlags(flags map[string]string) *Resolved {
	cfg := r.Resolve()

	for key, value := range flags {
		if value != "" {
			cfg.values[r.canonical(key)] = value
			cfg.sources[r.canonical(key)] = SourceFlag
		}
	}

	return cfg
}

func (r *Resolver) applyDefaults(cfg *Resolved) {
	for key, value := range r.config.Defaults {
		cfg.values[key] = value
		cfg.sources[key] = SourceDefault
	}
}

func (r *Resolver) applyFile(cfg *Resolved, path string, source Source) {
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return // File doesn't exist - not an error
	}

	parsed, err := parseFile(path, data)
	if err != nil {
		r.warn("could not parse config file",
			slog.String("path", path),
			slog.String("error", err.Error()))
		return
	}

	// Aliases first so the current key name wins within one file.
	for _, aliasFirst := range []bool{true, false} {
		for key, value := range parsed {
			_, isAlias := r.config.Aliases[key]
			if isAlias != aliasFirst {
				continue
			}
			key = r.canonical(key)
			if len(r.config.ValidKeys) > 0 && !contains(r.config.ValidKeys, key) {
				continue
			}
			if strVal := toString(value); strVal != "" {
				cfg.values[key] = strVal
				cfg.sources[key] = source
			}
		}
	}
}

func (r *Resolver) applyEnv(cfg *Resolved) {
	if r.config.EnvPrefix == "" {
		return
	}

	allKeys := make(map[string]bool)
	for k := range r.config.Defaults {
		allKeys[k] = true
	}
	for k := range cfg.values {
		allKeys[k] = true
	}

	// Aliases first so the current key name wins.
	aliases := make([]string, 0, len(r.config.Aliases))
	for alias := range r.config.Aliases {
		aliases = append(aliases, alias)
	}
	sort.Strings(aliases)
	for _, alias := range aliases {
		key := r.canonical(alias)
		if len(r.config.ValidKeys) > 0 && !contains(r.config.ValidKeys, key) {
			continue
		}
		if value := os.Getenv(r.EnvKey(alias)); value != "" {
			cfg.values[key] = value
			cfg.sources[key] = SourceEnv
		}
	}

	for key := range allKeys {
		if value := os.Getenv(r.EnvKey(key)); value != "" {
			cfg.values[key] = value
			cfg.sources[key] = SourceEnv
		}
	}
}

// EnvKey returns the environment variable name for key.
func (r *Resolver) EnvKey(key string) string {
	return r.config.EnvPrefix + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

// canonical maps a deprecated key name to its current name.
func (r *Resolver) canonical(key string) string {
	if current, ok := r.config.Aliases[key]; ok {
		return current
	}
	return key
}

// GlobalPath returns the path to the global config file.
func (r *Resolver) GlobalPath() string {
	return r.globalPath
}

// LocalPath returns the path to the local config file.
func (r *Resolver) LocalPath() string {
	return r.localPath
}

// parseFile decodes a config file. Files ending in .json or .jsonc may
// contain comments and trailing commas; anything else is read as YAML.
func parseFile(path string, data []byte) (map[string]interface{}, error) {
	var parsed map[string]interface{}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		if err := json.Unmarshal(jsonc.ToJSON(data), &parsed); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &parsed); err != nil {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	}

	return parsed, nil
}

// Helper functions

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

func toString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int, int64, float64:
		return fmt.Sprintf("%v", val)
	default:
		return ""
	}
}
