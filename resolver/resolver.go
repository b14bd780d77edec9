// Package resolver orders type declarations so the emitted definitions compile.
//
// # Pipeline
//
// Resolve runs five stages, each consuming only the previous stage's output:
//  1. BuildGraph classifies every attribute reference as a Hard edge (value
//     embedding, the target's layout is needed) or a Soft edge (a forward
//     name is enough: union branches, optionals, collections, maps and
//     indirect references).
//  2. DetectComponents partitions the nodes into strongly connected
//     components, ignoring edge kinds.
//  3. ValidateCycles rejects recursive components spanning more than one
//     module, and cycles made only of value embeddings.
//  4. MarkForwardDeclarations flags members that a sibling in their
//     component embeds by value.
//  5. Sequence emits one total order with Kahn's algorithm, dropping Soft
//     edges inside a component and breaking ties by input order.
//
// Resolve does not touch the nodes it is given. Result.Apply writes the
// derived facts back, once.
package resolver

import (
	"go.uber.org/zap"

	"github.com/teranos/idlgen/errors"
	"github.com/teranos/idlgen/logger"
	"github.com/teranos/idlgen/model"
)

// Options configures a Resolve call
type Options struct {
	// Logger receives per-stage statistics at debug level (nil = global logger)
	Logger *zap.SugaredLogger
}

// Result is the outcome of a successful resolution, indexed by node id.
type Result struct {
	// Order is the emission order
	Order []string
	// ForwardDeclarations has an entry for every node
	ForwardDeclarations map[string]bool
	// Ranks maps node id to its position in Order
	Ranks map[string]int
	// Components is the accepted partition
	Components *Components
	// Edges are the classified dependencies
	Edges []Edge
}

// Forward returns the ids needing a forward declaration, in emission order
func (r *Result) Forward() []string {
	var ids []string
	for _, id := range r.Order {
		if r.ForwardDeclarations[id] {
			ids = append(ids, id)
		}
	}
	return ids
}

// Apply writes the forward-declaration flag and rank onto each node.
// Every node must belong to this result, appear once and carry no derived
// facts yet; nothing is written unless all of them qualify.
func (r *Result) Apply(nodes []*model.TypeNode) error {
	seen := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		if seen[n.ID] {
			return errors.Newf("node %s given twice", n.ID)
		}
		seen[n.ID] = true
		if _, ok := r.Ranks[n.ID]; !ok {
			return errors.Newf("node %s is not part of this result", n.ID)
		}
		if n.HasDerived() {
			return errors.Newf("derived facts already applied to %s", n.ID)
		}
	}
	for _, n := range nodes {
		if err := n.SetDerived(r.ForwardDeclarations[n.ID], r.Ranks[n.ID]); err != nil {
			return err
		}
	}
	return nil
}

// Resolve computes the emission order and forward-declaration flags for
// nodes. Nodes must be given in a stable order; it is the tie-break.
func Resolve(nodes []*model.TypeNode, opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Named("resolver")
	}

	g, err := BuildGraph(nodes)
	if err != nil {
		if hint := constructionHint(err); hint != "" {
			err = errors.WithHint(err, hint)
		}
		return nil, err
	}
	log.Debugw("Dependency graph built",
		logger.FieldNodes, len(g.Nodes),
		logger.FieldEdges, len(g.Edges),
		"hard_edges", len(g.HardEdges()))

	components, err := DetectComponents(g)
	if err != nil {
		return nil, err
	}
	log.Debugw("Components detected",
		"components", len(components.Members),
		"recursive", components.RecursiveCount())

	if err := ValidateCycles(g, components); err != nil {
		return nil, err
	}

	forward := MarkForwardDeclarations(g, components)

	order, err := Sequence(g, components)
	if err != nil {
		return nil, err
	}

	ranks := make(map[string]int, len(order))
	for i, id := range order {
		ranks[id] = i
	}

	result := &Result{
		Order:               order,
		ForwardDeclarations: forward,
		Ranks:               ranks,
		Components:          components,
		Edges:               g.Edges,
	}
	log.Debugw("Declaration order resolved",
		logger.FieldNodes, len(order),
		"forward_declarations", len(result.Forward()))
	return result, nil
}

func constructionHint(err error) string {
	var construction *GraphConstructionError
	if !errors.As(err, &construction) {
		return ""
	}
	switch construction.Reason {
	case DanglingReference:
		return "check the attribute type, or add the referenced type to the model"
	case HardSelfReference:
		return "make the attribute optional, a sequence or an indirect reference"
	case DuplicateID:
		return "type ids must be unique across all modules"
	default:
		return ""
	}
}
