package forward

import (
	"fmt"
	"strconv"

	"golang.org/x/text/cases"

	"github.com/randalmurphal/forward/config"
)

// Priority decides which candidate is tried first.
type Priority int

const (
	// PriorityApplication tries the application's override first.
	PriorityApplication Priority = iota
	// PriorityComponent tries the component's own template first.
	PriorityComponent
)

// String returns the configuration spelling of p.
func (p Priority) String() string {
	switch p {
	case PriorityApplication:
		return "Application"
	case PriorityComponent:
		return "Component"
	default:
		return "Priority(" + strconv.Itoa(int(p)) + ")"
	}
}

// ParsePriority parses "Application" or "Component", ignoring case.
// "Blueprint" is accepted as another name for "Component".
func ParsePriority(s string) (Priority, error) {
	switch cases.Fold().String(s) {
	case "application":
		return PriorityApplication, nil
	case "component", "blueprint":
		return PriorityComponent, nil
	default:
		return 0, fmt.Errorf("%w: template priority %q", ErrInvalidConfig, s)
	}
}

// Config holds the resolution settings.
type Config struct {
	// TemplateFolder is the folder, inside the application's search path,
	// that holds per-component overrides.
	TemplateFolder string

	// Priority decides whether the application or the component candidate
	// is tried first.
	Priority Priority

	// Extension is appended to inferred template names. Empty means
	// DefaultExtension.
	Extension string

	// LegacyLookup looks component templates up under a subfolder named after
	// the component instead of stripping the component name.
	LegacyLookup bool
}

// DefaultExtension is the extension of inferred template names when none
// is configured.
const DefaultExtension = "html"

// DefaultConfig returns the default settings.
func DefaultConfig() Config {
	return Config{
		Priority:  PriorityApplication,
		Extension: DefaultExtension,
	}
}

// Configuration keys. The environment variable for a key is the prefix
// followed by the upper-cased key, e.g. FORWARD_TEMPLATE_FOLDER.
const (
	KeyTemplateFolder   = "template_folder"
	KeyTemplatePriority = "template_priority"
	KeyTemplateExt      = "template_extension"
	KeyLegacyLookup     = "legacy_lookup_method"

	// DefaultEnvPrefix is the default environment variable prefix.
	DefaultEnvPrefix = "FORWARD_"
)

// ConfigDefaults returns the default value of every configuration key.
func ConfigDefaults() map[string]string {
	return map[string]string{
		KeyTemplateFolder:   "",
		KeyTemplatePriority: PriorityApplication.String(),
		KeyTemplateExt:      DefaultExtension,
		KeyLegacyLookup:     "false",
	}
}

// NewConfigResolver returns a config.Resolver that knows the forward keys.
// rc supplies the file locations; an empty EnvPrefix becomes
// DefaultEnvPrefix.
func NewConfigResolver(rc config.ResolverConfig) *config.Resolver {
	if rc.EnvPrefix == "" {
		rc.EnvPrefix = DefaultEnvPrefix
	}
	rc.Defaults = ConfigDefaults()
	rc.ValidKeys = []string{KeyTemplateFolder, KeyTemplatePriority, KeyTemplateExt, KeyLegacyLookup}
	rc.Aliases = map[string]string{
		"blueprints_template_folder": KeyTemplateFolder,
	}
	return config.NewResolver(rc)
}

// LoadConfig builds a Config from resolved values. Keys that are not set
// keep their defaults.
func LoadConfig(resolved *config.Resolved) (Config, error) {
	cfg := DefaultConfig()

	if v, ok := resolved.Lookup(KeyTemplateFolder); ok {
		cfg.TemplateFolder = v
	}

	if v, ok := resolved.Lookup(KeyTemplatePriority); ok && v != "" {
		p, err := ParsePriority(v)
		if err != nil {
			return Config{}, err
		}
		cfg.Priority = p
	}

	if v, ok := resolved.Lookup(KeyTemplateExt); ok && v != "" {
		cfg.Extension = v
	}

	if v, ok := resolved.Lookup(KeyLegacyLookup); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %s %q", ErrInvalidConfig, KeyLegacyLookup, v)
		}
		cfg.LegacyLookup = b
	}

	return cfg, nil
}
