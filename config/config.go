package config

import (
	"github.com/teranos/idlgen/model"
	"github.com/teranos/idlgen/validate"
)

// FileName is the project configuration file searched for from the working directory upward
const FileName = "idlgen.toml"

// EnvPrefix prefixes environment overrides, e.g. IDLGEN_OUTPUT_FORMAT=json
const EnvPrefix = "IDLGEN"

// Output formats
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Config represents the idlgen configuration
type Config struct {
	Model    ModelConfig    `mapstructure:"model" toml:"model"`
	Resolver ResolverConfig `mapstructure:"resolver" toml:"resolver"`
	Lint     LintConfig     `mapstructure:"lint" toml:"lint"`
	Output   OutputConfig   `mapstructure:"output" toml:"output"`
	Check    CheckConfig    `mapstructure:"check" toml:"check"`
	Log      LogConfig      `mapstructure:"log" toml:"log"`
	Watch    WatchConfig    `mapstructure:"watch" toml:"watch"`
}

// ModelConfig configures where the model snapshot comes from
type ModelConfig struct {
	Path           string   `mapstructure:"path" toml:"path"`                       // Snapshot file (.yaml, .json, .toml)
	PrimitiveTypes []string `mapstructure:"primitive_types" toml:"primitive_types"` // Types that never produce an edge
}

// ResolverConfig configures edge classification
type ResolverConfig struct {
	IndirectStereotypes []string `mapstructure:"indirect_stereotypes" toml:"indirect_stereotypes"` // Attribute stereotypes marking pointer-like references
}

// LintConfig configures the model rules run before resolving
type LintConfig struct {
	Enabled       bool              `mapstructure:"enabled" toml:"enabled"`
	Severity      map[string]string `mapstructure:"severity" toml:"severity,omitempty"`   // Rule name -> error, warning, info or off
	ReservedNames []string          `mapstructure:"reserved_names" toml:"reserved_names"` // Added to the IDL keywords
	Abbreviations []string          `mapstructure:"abbreviations" toml:"abbreviations"`   // Allowed in capitals in type names
}

// OutputConfig configures how the plan is written
type OutputConfig struct {
	Format string `mapstructure:"format" toml:"format"` // text, json or yaml
	Path   string `mapstructure:"path" toml:"path"`     // Empty = stdout
}

// CheckConfig configures drift checking
type CheckConfig struct {
	Baseline string `mapstructure:"baseline" toml:"baseline"`
}

// LogConfig configures logging
type LogConfig struct {
	JSON bool `mapstructure:"json" toml:"json"`
}

// WatchConfig configures watch mode
type WatchConfig struct {
	DebounceMS int `mapstructure:"debounce_ms" toml:"debounce_ms"`
}

// LoadOptions translates the model and resolver settings for model.LoadFile
func (c *Config) LoadOptions() model.LoadOptions {
	opts := model.DefaultLoadOptions()
	if len(c.Model.PrimitiveTypes) > 0 {
		opts.PrimitiveTypes = c.Model.PrimitiveTypes
	}
	if c.Resolver.IndirectStereotypes != nil {
		opts.IndirectStereotypes = c.Resolver.IndirectStereotypes
	}
	return opts
}

// RuleOptions translates the lint settings for validate.Run.
// Severities are checked by Validate; unknown values are skipped here.
func (c *Config) RuleOptions() validate.Options {
	opts := validate.Options{
		Severity:      make(map[string]validate.Severity, len(c.Lint.Severity)),
		ReservedNames: c.Lint.ReservedNames,
		Abbreviations: c.Lint.Abbreviations,
	}
	for rule, value := range c.Lint.Severity {
		if s, err := validate.ParseSeverity(value); err == nil {
			opts.Severity[rule] = s
		}
	}
	return opts
}
