// Package config provides layered configuration resolution.
//
// Values are merged with clear precedence:
//  1. Flags passed to ResolveWithFlags (highest priority)
//  2. Environment variables
//  3. Local config (a file in the application directory)
//  4. Global config (e.g., ~/.config/forward/config.yaml)
//  5. Built-in defaults (lowest priority)
//
// # Basic Usage
//
//	resolver := config.NewResolver(config.ResolverConfig{
//	    EnvPrefix:       "FORWARD_",
//	    AppDir:          "/srv/app",
//	    LocalConfigName: "forward.yaml",
//	    Defaults: map[string]string{
//	        "template_priority": "Application",
//	    },
//	})
//
//	cfg := resolver.Resolve()
//	fmt.Println(cfg.Get("template_priority"))    // "Application"
//	fmt.Println(cfg.Source("template_priority")) // "default"
//
// # File Formats
//
// Files ending in .json or .jsonc are decoded as JSON and may contain
// comments and trailing commas. Every other file is decoded as YAML.
//
// # Environment Variables
//
// Environment variables are detected for every known key using the
// configured prefix:
//
//	# With EnvPrefix: "FORWARD_"
//	FORWARD_TEMPLATE_FOLDER=overrides    # sets "template_folder"
//	FORWARD_LEGACY_LOOKUP_METHOD=true    # sets "legacy_lookup_method"
//
// # Aliases
//
// Deprecated key names can be mapped to their replacement with
// ResolverConfig.Aliases; files using the old name keep working.
package config
