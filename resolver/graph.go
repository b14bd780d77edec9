package resolver

import (
	"github.com/teranos/idlgen/model"
)

// Graph is the classified dependency graph over one node set.
// Nodes keep the caller's input order; Edges are ordered by source input
// position, then by first appearance among the source's attributes.
type Graph struct {
	Nodes []*model.TypeNode
	Edges []Edge

	index map[string]int
}

// Index returns the input position of id
func (g *Graph) Index(id string) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// Node returns the node with the given id
func (g *Graph) Node(id string) *model.TypeNode {
	if i, ok := g.index[id]; ok {
		return g.Nodes[i]
	}
	return nil
}

// HardEdges returns only the Hard edges
func (g *Graph) HardEdges() []Edge {
	var hard []Edge
	for _, e := range g.Edges {
		if e.Kind == Hard {
			hard = append(hard, e)
		}
	}
	return hard
}

// BuildGraph classifies every attribute reference of nodes into edges.
// Several attributes of one node referencing the same target collapse into
// a single edge, Hard if any of them is Hard.
func BuildGraph(nodes []*model.TypeNode) (*Graph, error) {
	g := &Graph{
		Nodes: nodes,
		index: make(map[string]int, len(nodes)),
	}

	for i, n := range nodes {
		if _, dup := g.index[n.ID]; dup {
			return nil, &GraphConstructionError{Reason: DuplicateID, Node: n.ID}
		}
		if !n.Kind.Valid() {
			return nil, &GraphConstructionError{Reason: InvalidKind, Node: n.ID}
		}
		g.index[n.ID] = i
	}

	for _, n := range nodes {
		// position of each target within this node's edges
		seen := make(map[string]int)
		var edges []Edge

		for _, attr := range n.Attributes {
			kind := Classify(n.Kind, attr)
			for _, target := range attr.References() {
				if _, ok := g.index[target]; !ok {
					return nil, &GraphConstructionError{
						Reason:    DanglingReference,
						Node:      n.ID,
						Target:    target,
						Attribute: attr.Name,
					}
				}
				if target == n.ID && kind == Hard {
					return nil, &GraphConstructionError{
						Reason:    HardSelfReference,
						Node:      n.ID,
						Attribute: attr.Name,
					}
				}

				if pos, ok := seen[target]; ok {
					if kind == Hard {
						edges[pos].Kind = Hard
					}
					continue
				}
				seen[target] = len(edges)
				edges = append(edges, Edge{Source: n.ID, Target: target, Kind: kind})
			}
		}
		g.Edges = append(g.Edges, edges...)
	}

	return g, nil
}
