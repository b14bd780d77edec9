// Package plan turns a resolved declaration order into an emission plan:
// consecutive blocks of declarations sharing a module, with the forward
// declarations each block needs listed up front.
package plan

import (
	"github.com/teranos/idlgen/errors"
	"github.com/teranos/idlgen/model"
	"github.com/teranos/idlgen/resolver"
)

// Declaration is one type in emission order
type Declaration struct {
	ID      string     `json:"id" yaml:"id"`
	Name    string     `json:"name" yaml:"name"`
	Kind    model.Kind `json:"kind" yaml:"kind"`
	Rank    int        `json:"rank" yaml:"rank"`
	Forward bool       `json:"forward,omitempty" yaml:"forward,omitempty"`
}

// Counts tallies declarations per kind
type Counts struct {
	Structs  int `json:"structs" yaml:"structs"`
	Unions   int `json:"unions" yaml:"unions"`
	Typedefs int `json:"typedefs" yaml:"typedefs"`
	Enums    int `json:"enums" yaml:"enums"`
	Maps     int `json:"maps" yaml:"maps"`
}

// Add counts one declaration of kind k
func (c *Counts) Add(k model.Kind) {
	switch k {
	case model.KindStruct:
		c.Structs++
	case model.KindUnion:
		c.Unions++
	case model.KindTypedef:
		c.Typedefs++
	case model.KindEnum:
		c.Enums++
	case model.KindMap:
		c.Maps++
	}
}

// Total is the sum over all kinds
func (c Counts) Total() int {
	return c.Structs + c.Unions + c.Typedefs + c.Enums + c.Maps
}

// Block is a run of consecutive declarations in one module.
// A module may appear in several blocks when the order leaves and re-enters it.
type Block struct {
	Module       string        `json:"module" yaml:"module"`
	Forward      []string      `json:"forward,omitempty" yaml:"forward,omitempty"`
	Declarations []Declaration `json:"declarations" yaml:"declarations"`
	Counts       Counts        `json:"counts" yaml:"counts"`
}

// Plan is the full emission plan
type Plan struct {
	Blocks []Block `json:"blocks" yaml:"blocks"`
	Counts Counts  `json:"counts" yaml:"counts"`
}

// Declarations returns every declaration in emission order
func (p *Plan) Declarations() []Declaration {
	var out []Declaration
	for _, b := range p.Blocks {
		out = append(out, b.Declarations...)
	}
	return out
}

// Build groups the resolved order into module blocks.
// Every id in the order must name one of nodes.
func Build(nodes []*model.TypeNode, result *resolver.Result) (*Plan, error) {
	byID := make(map[string]*model.TypeNode, len(nodes))
	for _, n := range nodes {
		byID[n.ID] = n
	}

	p := &Plan{}
	var current *Block
	for rank, id := range result.Order {
		n, ok := byID[id]
		if !ok {
			return nil, errors.Newf("ordered type %s is not among the given nodes", id)
		}

		module := n.Module()
		if current == nil || current.Module != module {
			p.Blocks = append(p.Blocks, Block{Module: module})
			current = &p.Blocks[len(p.Blocks)-1]
		}

		forward := result.ForwardDeclarations[id]
		if forward {
			current.Forward = append(current.Forward, id)
		}
		current.Declarations = append(current.Declarations, Declaration{
			ID:      id,
			Name:    n.Name,
			Kind:    n.Kind,
			Rank:    rank,
			Forward: forward,
		})
		current.Counts.Add(n.Kind)
		p.Counts.Add(n.Kind)
	}
	return p, nil
}

// ModuleOrder lists modules by their first appearance in the emission order
func ModuleOrder(nodes []*model.TypeNode, result *resolver.Result) []string {
	moduleOf := make(map[string]string, len(nodes))
	for _, n := range nodes {
		moduleOf[n.ID] = n.Module()
	}

	seen := make(map[string]bool)
	var modules []string
	for _, id := range result.Order {
		module, ok := moduleOf[id]
		if !ok || seen[module] {
			continue
		}
		seen[module] = true
		modules = append(modules, module)
	}
	return modules
}
