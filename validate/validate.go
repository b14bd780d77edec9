// Package validate checks a model snapshot against naming and modeling rules
// before it is resolved.
//
// Every rule has a name, a scope (module, type or attribute) and a default
// severity. Options.Severity overrides the default per rule name; a rule set
// to "off" is skipped. Only error findings fail a run.
package validate

import (
	"fmt"
	"slices"

	"github.com/teranos/idlgen/errors"
	"github.com/teranos/idlgen/model"
)

// ErrRuleViolation marks a snapshot rejected by an error-severity rule
var ErrRuleViolation = errors.New("model rule violation")

// Options configures a Run
type Options struct {
	// Severity overrides rule defaults by rule name
	Severity map[string]Severity
	// ReservedNames are added to the built-in IDL keywords
	ReservedNames []string
	// Abbreviations may appear in capitals inside camel case names
	Abbreviations []string
}

// Finding is one rule violation
type Finding struct {
	Rule     string   `json:"rule" yaml:"rule"`
	Severity Severity `json:"severity" yaml:"severity"`
	Subject  string   `json:"subject" yaml:"subject"`
	Message  string   `json:"message" yaml:"message"`
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s [%s]", f.Subject, f.Message, f.Rule)
}

// Report holds the findings of one Run in model order
type Report struct {
	Findings []Finding `json:"findings" yaml:"findings"`
}

// Count returns the number of findings with severity s
func (r *Report) Count(s Severity) int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == s {
			n++
		}
	}
	return n
}

// Sorted returns the findings most severe first, model order within a severity
func (r *Report) Sorted() []Finding {
	sorted := slices.Clone(r.Findings)
	slices.SortStableFunc(sorted, func(a, b Finding) int {
		return a.Severity.rank() - b.Severity.rank()
	})
	return sorted
}

// Err returns an error wrapping ErrRuleViolation when any finding has error
// severity, with one hint per violated rule.
func (r *Report) Err() error {
	var failed []Finding
	for _, f := range r.Findings {
		if f.Severity == SeverityError {
			failed = append(failed, f)
		}
	}
	if len(failed) == 0 {
		return nil
	}

	err := errors.Wrapf(ErrRuleViolation, "%s", failed[0])
	if len(failed) > 1 {
		err = errors.WithMessagef(err, "%d rule violations, first", len(failed))
		err = errors.WithDetailf(err, "%d more violations; run idlgen lint for the full list", len(failed)-1)
	}
	hinted := make(map[string]bool)
	for _, f := range failed {
		if hinted[f.Rule] {
			continue
		}
		hinted[f.Rule] = true
		if rule, ok := LookupRule(f.Rule); ok && rule.Hint != "" {
			err = errors.WithHint(err, rule.Hint)
		}
	}
	return err
}

type checker struct {
	opts     Options
	snapshot *model.Snapshot
	reserved map[string]bool
	report   *Report
}

// Run checks snapshot against every rule that is not off
func Run(snapshot *model.Snapshot, opts Options) *Report {
	c := &checker{
		opts:     opts,
		snapshot: snapshot,
		reserved: make(map[string]bool),
		report:   &Report{},
	}
	for _, name := range ReservedNames {
		c.reserved[name] = true
	}
	for _, name := range opts.ReservedNames {
		c.reserved[name] = true
	}

	var walk func(modules []*model.Module, parent string)
	walk = func(modules []*model.Module, parent string) {
		for _, m := range modules {
			path := m.Name
			if parent != "" {
				path = parent + model.Separator + m.Name
			}
			c.apply(ScopeModule, path, subject{module: m})
			for _, n := range m.Types {
				c.apply(ScopeType, n.FullName(), subject{module: m, node: n})
				for i := range n.Attributes {
					a := &n.Attributes[i]
					c.apply(ScopeAttribute, n.FullName()+"."+a.Name, subject{module: m, node: n, attr: a})
				}
			}
			walk(m.Modules, path)
		}
	}
	walk(snapshot.Modules, "")
	return c.report
}

func (c *checker) apply(scope Scope, name string, s subject) {
	for _, rule := range Rules {
		if rule.Scope != scope {
			continue
		}
		severity := c.severity(rule)
		if severity == SeverityOff {
			continue
		}
		for _, msg := range rule.check(c, s) {
			c.report.Findings = append(c.report.Findings, Finding{
				Rule:     rule.Name,
				Severity: severity,
				Subject:  name,
				Message:  msg,
			})
		}
	}
}

func (c *checker) severity(rule Rule) Severity {
	if s, ok := c.opts.Severity[rule.Name]; ok {
		return s
	}
	return rule.Default
}
