package validate

import (
	"fmt"
	"slices"
	"strings"

	"github.com/teranos/idlgen/model"
)

// Scope is the part of the model a rule looks at
type Scope string

const (
	ScopeModule    Scope = "module"
	ScopeType      Scope = "type"
	ScopeAttribute Scope = "attribute"
)

// Rule is one named check over the model.
// check returns a message per violation, nothing when the subject passes.
type Rule struct {
	Name    string
	Scope   Scope
	Default Severity
	Hint    string
	check   func(c *checker, s subject) []string
}

// subject is what a rule inspects: a module, a type, or one attribute of a type
type subject struct {
	module *model.Module
	node   *model.TypeNode
	attr   *model.Attribute
}

// Rules is the registry, in the order findings are reported per subject
var Rules = []Rule{
	{
		Name:    "module_name_case",
		Scope:   ScopeModule,
		Default: SeverityWarning,
		Hint:    "module names are lower snake case, e.g. core_types",
		check: func(_ *checker, s subject) []string {
			if !isLowerSnakeCase(s.module.Name) {
				return []string{"module name has wrong case, expected lower snake case"}
			}
			return nil
		},
	},
	{
		Name:    "module_notes",
		Scope:   ScopeModule,
		Default: SeverityOff,
		Hint:    "describe every module, type and attribute in its notes",
		check: func(_ *checker, s subject) []string {
			return missingNotes("module", s.module.Notes)
		},
	},
	{
		Name:    "type_reserved_name",
		Scope:   ScopeType,
		Default: SeverityError,
		Hint:    "rename the type; IDL keywords cannot be used as identifiers",
		check: func(c *checker, s subject) []string {
			if c.reserved[s.node.Name] {
				return []string{fmt.Sprintf("type name %q is a reserved word", s.node.Name)}
			}
			return nil
		},
	},
	{
		Name:    "type_name_case",
		Scope:   ScopeType,
		Default: SeverityWarning,
		Hint:    "type names are upper camel case; list acronyms in validate.abbreviations",
		check: func(c *checker, s subject) []string {
			if !isCamelCase(s.node.Name, c.opts.Abbreviations) {
				return []string{"type name has wrong case, expected camel case"}
			}
			return nil
		},
	},
	{
		Name:    "type_kind_members",
		Scope:   ScopeType,
		Default: SeverityError,
		Hint:    "a typedef aliases exactly one type, a map type holds one map attribute, enum literals have no type",
		check:   checkKindMembers,
	},
	{
		Name:    "type_duplicate_attribute",
		Scope:   ScopeType,
		Default: SeverityError,
		Hint:    "attribute names must be unique within a type",
		check: func(_ *checker, s subject) []string {
			var msgs []string
			seen := make(map[string]bool, len(s.node.Attributes))
			for _, a := range s.node.Attributes {
				if seen[a.Name] {
					msgs = append(msgs, fmt.Sprintf("attribute %q declared more than once", a.Name))
				}
				seen[a.Name] = true
			}
			return msgs
		},
	},
	{
		Name:    "enum_literal_prefix",
		Scope:   ScopeType,
		Default: SeverityWarning,
		Hint:    "prefix enum literals with the enum name so they stay unique in the module",
		check: func(_ *checker, s subject) []string {
			if s.node.Kind != model.KindEnum {
				return nil
			}
			var msgs []string
			for _, a := range s.node.Attributes {
				if !strings.HasPrefix(a.Name, s.node.Name) {
					msgs = append(msgs, fmt.Sprintf("enum literal %q lacks the %s prefix", a.Name, s.node.Name))
				}
			}
			return msgs
		},
	},
	{
		Name:    "type_notes",
		Scope:   ScopeType,
		Default: SeverityOff,
		Hint:    "describe every module, type and attribute in its notes",
		check: func(_ *checker, s subject) []string {
			return missingNotes("type", s.node.Notes)
		},
	},
	{
		Name:    "attribute_reserved_name",
		Scope:   ScopeAttribute,
		Default: SeverityError,
		Hint:    "rename the attribute; IDL keywords cannot be used as identifiers",
		check: func(c *checker, s subject) []string {
			if c.reserved[s.attr.Name] {
				return []string{fmt.Sprintf("attribute name %q is a reserved word", s.attr.Name)}
			}
			return nil
		},
	},
	{
		Name:    "attribute_name_case",
		Scope:   ScopeAttribute,
		Default: SeverityWarning,
		Hint:    "attribute names are lower snake case, e.g. created_at",
		check: func(_ *checker, s subject) []string {
			// Enum literals follow enum_literal_prefix instead
			if s.node.Kind == model.KindEnum {
				return nil
			}
			if !isLowerSnakeCase(s.attr.Name) {
				return []string{"attribute name has wrong case, expected snake case"}
			}
			return nil
		},
	},
	{
		Name:    "attribute_map_key",
		Scope:   ScopeAttribute,
		Default: SeverityWarning,
		Hint:    "map keys must be primitive, an enum or a typedef of either",
		check: func(c *checker, s subject) []string {
			if !s.attr.Map || s.attr.KeyType == "" {
				return nil
			}
			// Unknown keys are reported by the resolver
			key, ok := c.snapshot.Lookup(s.attr.KeyType)
			if !ok || key.Kind == model.KindEnum || key.Kind == model.KindTypedef {
				return nil
			}
			return []string{fmt.Sprintf("map key %s is a %s", key.ID, key.Kind)}
		},
	},
	{
		Name:    "attribute_notes",
		Scope:   ScopeAttribute,
		Default: SeverityOff,
		Hint:    "describe every module, type and attribute in its notes",
		check: func(_ *checker, s subject) []string {
			return missingNotes("attribute", s.attr.Notes)
		},
	},
}

// LookupRule returns the registered rule called name
func LookupRule(name string) (Rule, bool) {
	i := slices.IndexFunc(Rules, func(r Rule) bool { return r.Name == name })
	if i < 0 {
		return Rule{}, false
	}
	return Rules[i], true
}

func checkKindMembers(_ *checker, s subject) []string {
	n := s.node
	switch n.Kind {
	case model.KindTypedef:
		if len(n.Attributes) != 1 {
			return []string{fmt.Sprintf("typedef has %d members, expected 1", len(n.Attributes))}
		}
	case model.KindMap:
		if len(n.Attributes) != 1 || !n.Attributes[0].Map {
			return []string{"map type must hold exactly one map attribute"}
		}
	case model.KindEnum:
		var msgs []string
		for _, a := range n.Attributes {
			if len(a.References()) > 0 {
				msgs = append(msgs, fmt.Sprintf("enum literal %q references a type", a.Name))
			}
		}
		return msgs
	}
	return nil
}

func missingNotes(what, notes string) []string {
	if strings.TrimSpace(notes) == "" {
		return []string{what + " has no notes"}
	}
	return nil
}
