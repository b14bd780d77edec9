package resolver

import (
	"slices"

	graphlib "github.com/dominikbraun/graph"

	"github.com/teranos/idlgen/errors"
)

// Components is a partition of the graph's nodes into strongly connected
// components. Component indices are ordered by the smallest input position
// among their members; members are listed in input order.
type Components struct {
	Members [][]string

	of map[string]int
}

// Of returns the component index of id
func (c *Components) Of(id string) int {
	i, ok := c.of[id]
	if !ok {
		return -1
	}
	return i
}

// Same reports whether a and b share a component
func (c *Components) Same(a, b string) bool {
	ia, ok := c.of[a]
	if !ok {
		return false
	}
	ib, ok := c.of[b]
	return ok && ia == ib
}

// Recursive reports whether component i has more than one member
func (c *Components) Recursive(i int) bool {
	return i >= 0 && i < len(c.Members) && len(c.Members[i]) > 1
}

// RecursiveCount returns the number of components with more than one member
func (c *Components) RecursiveCount() int {
	count := 0
	for i := range c.Members {
		if c.Recursive(i) {
			count++
		}
	}
	return count
}

// newLibraryGraph builds a dominikbraun/graph view of the given edges over
// all nodes of g. Edge kinds travel as the "kind" attribute.
func newLibraryGraph(g *Graph, edges []Edge) (graphlib.Graph[string, string], error) {
	lg := graphlib.New(graphlib.StringHash, graphlib.Directed())
	for _, n := range g.Nodes {
		if err := lg.AddVertex(n.ID); err != nil {
			return nil, errors.Wrapf(err, "add vertex %s", n.ID)
		}
	}
	for _, e := range edges {
		if err := lg.AddEdge(e.Source, e.Target, graphlib.EdgeAttribute("kind", e.Kind.String())); err != nil {
			return nil, errors.Wrapf(err, "add edge %s -> %s", e.Source, e.Target)
		}
	}
	return lg, nil
}

// DetectComponents partitions the nodes into strongly connected components
// over all edges, ignoring their kind.
func DetectComponents(g *Graph) (*Components, error) {
	return componentsOver(g, g.Edges)
}

func componentsOver(g *Graph, edges []Edge) (*Components, error) {
	lg, err := newLibraryGraph(g, edges)
	if err != nil {
		return nil, err
	}
	sccs, err := graphlib.StronglyConnectedComponents(lg)
	if err != nil {
		return nil, errors.Wrap(err, "strongly connected components")
	}

	// The library reports components in traversal order; normalise so the
	// partition and its numbering only depend on input order.
	for _, scc := range sccs {
		slices.SortFunc(scc, func(a, b string) int {
			return g.index[a] - g.index[b]
		})
	}
	slices.SortFunc(sccs, func(a, b []string) int {
		return g.index[a[0]] - g.index[b[0]]
	})

	c := &Components{
		Members: sccs,
		of:      make(map[string]int, len(g.Nodes)),
	}
	for i, members := range sccs {
		for _, id := range members {
			c.of[id] = i
		}
	}
	if len(c.of) != len(g.Nodes) {
		return nil, errors.WithAssertionFailure(&InternalInvariantError{
			Emitted: len(c.of),
			Total:   len(g.Nodes),
			Stuck:   missingFrom(g, c.of),
		})
	}
	return c, nil
}

func missingFrom(g *Graph, present map[string]int) []string {
	var missing []string
	for _, n := range g.Nodes {
		if _, ok := present[n.ID]; !ok {
			missing = append(missing, n.ID)
		}
	}
	return missing
}
