package resolver

import (
	"github.com/teranos/idlgen/errors"
)

// ValidateCycles accepts a partition only if every recursive component
// lives in a single module, and no set of types embeds each other purely
// by value.
func ValidateCycles(g *Graph, c *Components) error {
	var crossModule [][]CycleMember
	for i, members := range c.Members {
		if !c.Recursive(i) {
			continue
		}
		modules := make(map[string]bool)
		for _, id := range members {
			modules[g.Node(id).Module()] = true
		}
		if len(modules) < 2 {
			continue
		}

		cycle := make([]CycleMember, 0, len(members))
		for _, id := range members {
			n := g.Node(id)
			cycle = append(cycle, CycleMember{ID: n.ID, Name: n.Name, Module: n.Module()})
		}
		crossModule = append(crossModule, cycle)
	}
	if len(crossModule) > 0 {
		return errors.WithHint(&CrossModuleCycleError{Cycles: crossModule},
			"move the types of each cycle into one module, or restructure the model to remove the cycle")
	}

	return validateValueCycles(g)
}

// validateValueCycles rejects cycles made only of Hard edges. Such types
// would have infinite size and forward declarations cannot help.
// Sequence keeps every Hard edge, so it could never emit these nodes.
// Accepting them here would turn bad input into an InternalInvariantError
// later on; it is reported as a GraphConstructionError instead.
func validateValueCycles(g *Graph) error {
	hard, err := componentsOver(g, g.HardEdges())
	if err != nil {
		return err
	}
	for i, members := range hard.Members {
		if hard.Recursive(i) {
			return errors.WithHint(&GraphConstructionError{
				Reason:  ValueCycle,
				Node:    members[0],
				Members: members,
			}, "make one of the attributes optional, a sequence or an indirect reference")
		}
	}
	return nil
}
