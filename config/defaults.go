package config

import (
	"slices"

	"github.com/spf13/viper"

	"github.com/teranos/idlgen/model"
)

// DefaultDebounceMS is the watch-mode quiet period before a re-run
const DefaultDebounceMS = 300

// SetDefaults configures default values for all configuration options
func SetDefaults(v *viper.Viper) {
	// Model defaults
	v.SetDefault("model.path", "")
	v.SetDefault("model.primitive_types", slices.Clone(model.DefaultPrimitiveTypes))

	// Resolver defaults
	v.SetDefault("resolver.indirect_stereotypes", model.DefaultLoadOptions().IndirectStereotypes)

	// Lint defaults
	v.SetDefault("lint.enabled", true)
	v.SetDefault("lint.reserved_names", []string{})
	v.SetDefault("lint.abbreviations", []string{})

	// Output defaults
	v.SetDefault("output.format", FormatText)
	v.SetDefault("output.path", "") // stdout

	// Check defaults
	v.SetDefault("check.baseline", "idlgen.plan.yaml")

	// Log defaults
	v.SetDefault("log.json", false)

	// Watch defaults
	v.SetDefault("watch.debounce_ms", DefaultDebounceMS)
}

// Default returns the configuration with every default applied
func Default() *Config {
	v := viper.New()
	SetDefaults(v)
	cfg, err := LoadWithViper(v)
	if err != nil {
		// Defaults always decode
		panic(err)
	}
	return cfg
}
