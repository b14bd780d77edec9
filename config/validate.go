package config

import (
	"slices"

	"github.com/teranos/idlgen/errors"
	"github.com/teranos/idlgen/validate"
)

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	formats := []string{FormatText, FormatJSON, FormatYAML}
	if !slices.Contains(formats, c.Output.Format) {
		return errors.Newf("output.format must be one of %v, got %q", formats, c.Output.Format)
	}

	// Debounce: 0 = re-run on every event, negative = invalid
	if c.Watch.DebounceMS < 0 {
		return errors.Newf("watch.debounce_ms must be >= 0, got %d", c.Watch.DebounceMS)
	}

	for _, p := range c.Model.PrimitiveTypes {
		if p == "" {
			return errors.New("model.primitive_types cannot contain an empty name")
		}
	}
	for _, s := range c.Resolver.IndirectStereotypes {
		if s == "" {
			return errors.New("resolver.indirect_stereotypes cannot contain an empty name")
		}
	}

	for rule, value := range c.Lint.Severity {
		if _, ok := validate.LookupRule(rule); !ok {
			return errors.Newf("lint.severity names unknown rule %q", rule)
		}
		if _, err := validate.ParseSeverity(value); err != nil {
			return errors.Wrapf(err, "lint.severity.%s", rule)
		}
	}

	return nil
}
