package resolver

// MarkForwardDeclarations flags every member of a recursive component that
// another member of the same component embeds by value. The returned map
// holds an entry for every node.
func MarkForwardDeclarations(g *Graph, c *Components) map[string]bool {
	flags := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		flags[n.ID] = false
	}

	for _, e := range g.Edges {
		if e.Kind != Hard || e.Source == e.Target {
			continue
		}
		if !c.Same(e.Source, e.Target) || !c.Recursive(c.Of(e.Target)) {
			continue
		}
		flags[e.Target] = true
	}
	return flags
}
