// Package model holds the in-memory type graph handed to the resolver.
//
// A Snapshot is a tree of modules, each owning type nodes. Nodes reference
// each other by ID through their attributes. The resolver only reads the
// graph; the two derived facts it computes are written back through
// SetDerived, once per node.
package model

import (
	"strings"

	"github.com/teranos/idlgen/errors"
)

// Separator joins namespace segments into module paths and qualified IDs
const Separator = "::"

// Attribute describes one member of a type node.
type Attribute struct {
	Name string
	// Type is the referenced type ID. Ignored when Primitive is set.
	Type string
	// KeyType is the referenced key type ID of a map attribute, empty when
	// the key is primitive. Primitive does not apply to it.
	KeyType string
	// Primitive marks Type as a primitive marker
	Primitive  bool
	Optional   bool
	Collection bool
	Map        bool
	// Indirect marks an explicitly annotated pointer-like reference
	Indirect bool
	Notes    string
}

// References returns the type IDs this attribute points at: the value
// type unless it is primitive, then the key type of a map.
func (a Attribute) References() []string {
	var refs []string
	if !a.Primitive && a.Type != "" {
		refs = append(refs, a.Type)
	}
	if a.Map && a.KeyType != "" {
		refs = append(refs, a.KeyType)
	}
	return refs
}

// TypeNode is one declarable type.
type TypeNode struct {
	ID         string
	Name       string
	Kind       Kind
	Namespace  []string
	Attributes []Attribute
	Notes      string

	// Derived facts, written once through SetDerived
	ForwardDeclaration bool
	Rank               int
	derived            bool
}

// Module returns the owning module path, e.g. "core::data"
func (n *TypeNode) Module() string {
	return strings.Join(n.Namespace, Separator)
}

// FullName returns the module-qualified type name
func (n *TypeNode) FullName() string {
	if len(n.Namespace) == 0 {
		return n.Name
	}
	return n.Module() + Separator + n.Name
}

// SetDerived records the forward-declaration flag and emission rank.
// It fails if the node already carries derived facts.
func (n *TypeNode) SetDerived(forward bool, rank int) error {
	if n.derived {
		return errors.Newf("derived facts already applied to %s", n.ID)
	}
	n.ForwardDeclaration = forward
	n.Rank = rank
	n.derived = true
	return nil
}

// HasDerived reports whether SetDerived has been called
func (n *TypeNode) HasDerived() bool {
	return n.derived
}

// Module is a declaration unit. Forward declarations are scoped to it.
type Module struct {
	Name    string
	Notes   string
	Types   []*TypeNode
	Modules []*Module
}

// Snapshot is the caller's current model: an ordered forest of modules.
type Snapshot struct {
	Format  string
	Modules []*Module
}

// Nodes flattens the snapshot depth-first: a module's types come before
// its sub-modules. This is the stable input order used for tie-breaking.
func (s *Snapshot) Nodes() []*TypeNode {
	var nodes []*TypeNode
	var walk func(modules []*Module)
	walk = func(modules []*Module) {
		for _, m := range modules {
			nodes = append(nodes, m.Types...)
			walk(m.Modules)
		}
	}
	walk(s.Modules)
	return nodes
}

// Lookup returns the node with the given ID
func (s *Snapshot) Lookup(id string) (*TypeNode, bool) {
	for _, n := range s.Nodes() {
		if n.ID == id {
			return n, true
		}
	}
	return nil, false
}
