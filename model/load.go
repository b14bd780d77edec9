package model

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"gopkg.in/yaml.v3"

	"github.com/teranos/idlgen/errors"
)

// DefaultFormat is assumed when a snapshot file omits its format version
const DefaultFormat = "1.0"

// SupportedFormats is the semver constraint snapshot files must satisfy
const SupportedFormats = "^1.0"

// DefaultPrimitiveTypes are attribute types that never produce an edge
var DefaultPrimitiveTypes = []string{
	"short",
	"unsigned short",
	"long",
	"unsigned long",
	"long long",
	"unsigned long long",
	"float",
	"double",
	"long double",
	"char",
	"wchar",
	"boolean",
	"octet",
	"string",
	"wstring",
}

// LoadOptions controls how raw attribute descriptors are interpreted
type LoadOptions struct {
	// PrimitiveTypes are type names treated as primitive markers
	PrimitiveTypes []string
	// IndirectStereotypes mark an attribute as an indirect reference
	IndirectStereotypes []string
}

// DefaultLoadOptions returns options with the built-in primitive list
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		PrimitiveTypes:      slices.Clone(DefaultPrimitiveTypes),
		IndirectStereotypes: []string{"ptr", "external"},
	}
}

type fileSnapshot struct {
	Format  string       `yaml:"format" json:"format" toml:"format"`
	Modules []fileModule `yaml:"modules" json:"modules" toml:"modules"`
}

type fileModule struct {
	Name    string       `yaml:"name" json:"name" toml:"name"`
	Notes   string       `yaml:"notes" json:"notes" toml:"notes"`
	Types   []fileType   `yaml:"types" json:"types" toml:"types"`
	Modules []fileModule `yaml:"modules" json:"modules" toml:"modules"`
}

type fileType struct {
	ID         string          `yaml:"id" json:"id" toml:"id"`
	Name       string          `yaml:"name" json:"name" toml:"name"`
	Kind       string          `yaml:"kind" json:"kind" toml:"kind"`
	Notes      string          `yaml:"notes" json:"notes" toml:"notes"`
	Attributes []fileAttribute `yaml:"attributes" json:"attributes" toml:"attributes"`
}

type fileAttribute struct {
	Name        string   `yaml:"name" json:"name" toml:"name"`
	Type        string   `yaml:"type" json:"type" toml:"type"`
	Key         string   `yaml:"key" json:"key" toml:"key"`
	Optional    bool     `yaml:"optional" json:"optional" toml:"optional"`
	Collection  bool     `yaml:"collection" json:"collection" toml:"collection"`
	Map         bool     `yaml:"map" json:"map" toml:"map"`
	Stereotypes []string `yaml:"stereotypes" json:"stereotypes" toml:"stereotypes"`
	Notes       string   `yaml:"notes" json:"notes" toml:"notes"`
}

// LoadFile reads a snapshot from a YAML, JSON or TOML file
func LoadFile(path string, opts LoadOptions) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read model %s", path)
	}

	var raw fileSnapshot
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&raw)
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&raw)
	case ".toml":
		var meta toml.MetaData
		meta, err = toml.Decode(string(data), &raw)
		if err == nil {
			if undecoded := meta.Undecoded(); len(undecoded) > 0 {
				err = errors.Newf("unknown key %q", undecoded[0].String())
			}
		}
	default:
		return nil, errors.WithHint(
			errors.Wrapf(errors.ErrUnsupportedFormat, "model file extension %q", ext),
			"use .yaml, .yml, .json or .toml")
	}
	if err != nil {
		return nil, errors.Wrapf(errors.Wrap(errors.ErrInvalidInput, err.Error()), "failed to decode model %s", path)
	}

	snapshot, err := decode(raw, opts)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid model %s", path)
	}
	return snapshot, nil
}

// checkFormat verifies the snapshot format version against SupportedFormats
func checkFormat(format string) error {
	version, err := semver.NewVersion(format)
	if err != nil {
		return errors.NewInvalidInputError("invalid format version %q: %v", format, err)
	}
	constraint, err := semver.NewConstraint(SupportedFormats)
	if err != nil {
		return errors.Wrap(err, "invalid supported format constraint")
	}
	if !constraint.Check(version) {
		return errors.WithHintf(
			errors.Wrapf(errors.ErrUnsupportedFormat, "format %s", format),
			"this build reads model formats %s", SupportedFormats)
	}
	return nil
}

// decode converts the raw file structure into a Snapshot.
// Kinds are parsed once here; namespaces come from module nesting.
func decode(raw fileSnapshot, opts LoadOptions) (*Snapshot, error) {
	format := raw.Format
	if format == "" {
		format = DefaultFormat
	}
	if err := checkFormat(format); err != nil {
		return nil, err
	}

	primitives := make(map[string]bool, len(opts.PrimitiveTypes))
	for _, p := range opts.PrimitiveTypes {
		primitives[p] = true
	}

	snapshot := &Snapshot{Format: format}
	ids := make(map[string]bool)

	var convert func(fm fileModule, parent []string) (*Module, error)
	convert = func(fm fileModule, parent []string) (*Module, error) {
		if fm.Name == "" {
			return nil, errors.NewInvalidInputError("module under %q has no name", strings.Join(parent, Separator))
		}
		namespace := append(slices.Clone(parent), fm.Name)
		module := &Module{Name: fm.Name, Notes: fm.Notes}

		for _, ft := range fm.Types {
			node, err := convertType(ft, namespace, primitives, opts.IndirectStereotypes)
			if err != nil {
				return nil, err
			}
			ids[node.ID] = true
			module.Types = append(module.Types, node)
		}
		for _, child := range fm.Modules {
			sub, err := convert(child, namespace)
			if err != nil {
				return nil, err
			}
			module.Modules = append(module.Modules, sub)
		}
		return module, nil
	}

	for _, fm := range raw.Modules {
		module, err := convert(fm, nil)
		if err != nil {
			return nil, err
		}
		snapshot.Modules = append(snapshot.Modules, module)
	}

	qualifyReferences(snapshot, ids)
	return snapshot, nil
}

func convertType(ft fileType, namespace []string, primitives map[string]bool, indirect []string) (*TypeNode, error) {
	if ft.Name == "" {
		return nil, errors.NewInvalidInputError("type in module %q has no name", strings.Join(namespace, Separator))
	}
	kind, err := ParseKind(ft.Kind)
	if err != nil {
		return nil, errors.Wrapf(err, "type %s", ft.Name)
	}

	node := &TypeNode{
		ID:        ft.ID,
		Name:      ft.Name,
		Kind:      kind,
		Namespace: namespace,
		Notes:     ft.Notes,
	}
	if node.ID == "" {
		node.ID = node.FullName()
	}

	for _, fa := range ft.Attributes {
		attr := Attribute{
			Name:       fa.Name,
			Type:       fa.Type,
			Optional:   fa.Optional,
			Collection: fa.Collection,
			Map:        fa.Map,
			Primitive:  fa.Type == "" || primitives[fa.Type],
			Notes:      fa.Notes,
		}
		if fa.Map && fa.Key != "" && !primitives[fa.Key] {
			attr.KeyType = fa.Key
		}
		for _, s := range fa.Stereotypes {
			if slices.Contains(indirect, s) {
				attr.Indirect = true
			}
		}
		node.Attributes = append(node.Attributes, attr)
	}
	return node, nil
}

// qualifyReferences rewrites unqualified attribute types to the ID of the
// same-named type in the referencing module, when one exists. The local
// type wins over an explicit global ID of the same spelling. References
// that still match nothing are left for the resolver to report.
func qualifyReferences(snapshot *Snapshot, ids map[string]bool) {
	qualify := func(ref string, module string) string {
		if ref == "" || strings.Contains(ref, Separator) {
			return ref
		}
		if candidate := module + Separator + ref; ids[candidate] {
			return candidate
		}
		return ref
	}
	for _, node := range snapshot.Nodes() {
		module := node.Module()
		for i := range node.Attributes {
			attr := &node.Attributes[i]
			if !attr.Primitive {
				attr.Type = qualify(attr.Type, module)
			}
			attr.KeyType = qualify(attr.KeyType, module)
		}
	}
}
