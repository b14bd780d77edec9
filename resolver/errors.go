package resolver

import (
	"fmt"
	"strings"

	"github.com/teranos/idlgen/errors"
)

// Sentinel errors for each failure kind. Structured errors match them with errors.Is.
var (
	ErrGraphConstruction = errors.New("graph construction error")
	ErrCrossModuleCycle  = errors.New("cross-module cycle")
	ErrInternalInvariant = errors.New("internal invariant violated")
)

// ErrorKind classifies a resolver failure
type ErrorKind int

const (
	ErrorKindNone ErrorKind = iota
	ErrorKindGraphConstruction
	ErrorKindCrossModuleCycle
	ErrorKindInternalInvariant
)

func (k ErrorKind) String() string {
	switch k {
	case ErrorKindGraphConstruction:
		return "GraphConstructionError"
	case ErrorKindCrossModuleCycle:
		return "CrossModuleCycleError"
	case ErrorKindInternalInvariant:
		return "InternalInvariantError"
	default:
		return "None"
	}
}

// KindOf returns the kind of a resolver error, ErrorKindNone for anything else
func KindOf(err error) ErrorKind {
	var construction *GraphConstructionError
	var cycle *CrossModuleCycleError
	var invariant *InternalInvariantError
	switch {
	case err == nil:
		return ErrorKindNone
	case errors.As(err, &construction):
		return ErrorKindGraphConstruction
	case errors.As(err, &cycle):
		return ErrorKindCrossModuleCycle
	case errors.As(err, &invariant):
		return ErrorKindInternalInvariant
	default:
		return ErrorKindNone
	}
}

// ConstructionReason says why the graph could not be built
type ConstructionReason int

const (
	DanglingReference ConstructionReason = iota + 1
	HardSelfReference
	DuplicateID
	InvalidKind
	ValueCycle
)

func (r ConstructionReason) String() string {
	switch r {
	case DanglingReference:
		return "dangling reference"
	case HardSelfReference:
		return "type embeds itself by value"
	case DuplicateID:
		return "duplicate type id"
	case InvalidKind:
		return "invalid type kind"
	case ValueCycle:
		return "types embed each other by value"
	default:
		return "unknown"
	}
}

// GraphConstructionError reports input that cannot form a valid dependency graph.
type GraphConstructionError struct {
	Reason ConstructionReason
	// Node is the referencing (or offending) node id
	Node string
	// Target is the referenced id, set for DanglingReference
	Target string
	// Attribute is the attribute that produced the reference, when known
	Attribute string
	// Members lists the nodes of a value cycle
	Members []string
}

func (e *GraphConstructionError) Error() string {
	switch e.Reason {
	case DanglingReference:
		return fmt.Sprintf("%s: %s references unknown type %q (attribute %q)", e.Reason, e.Node, e.Target, e.Attribute)
	case HardSelfReference:
		return fmt.Sprintf("%s: %s (attribute %q)", e.Reason, e.Node, e.Attribute)
	case ValueCycle:
		return fmt.Sprintf("%s: %s", e.Reason, strings.Join(e.Members, " -> "))
	default:
		return fmt.Sprintf("%s: %s", e.Reason, e.Node)
	}
}

// Is matches ErrGraphConstruction
func (e *GraphConstructionError) Is(target error) bool {
	return target == ErrGraphConstruction
}

// CycleMember is one implicated type of a cross-module cycle
type CycleMember struct {
	ID     string `json:"id" yaml:"id"`
	Name   string `json:"name" yaml:"name"`
	Module string `json:"module" yaml:"module"`
}

// CrossModuleCycleError reports recursive components that span modules.
// Each entry of Cycles is one component, members in input order.
type CrossModuleCycleError struct {
	Cycles [][]CycleMember
}

func (e *CrossModuleCycleError) Error() string {
	parts := make([]string, 0, len(e.Cycles))
	for _, cycle := range e.Cycles {
		names := make([]string, 0, len(cycle))
		for _, m := range cycle {
			names = append(names, fmt.Sprintf("%s (module %s)", m.Name, m.Module))
		}
		parts = append(parts, strings.Join(names, " <-> "))
	}
	return "cross-module circular dependency detected: " + strings.Join(parts, "; ") +
		". Circular dependencies are only supported within the same module"
}

// Is matches ErrCrossModuleCycle
func (e *CrossModuleCycleError) Is(target error) bool {
	return target == ErrCrossModuleCycle
}

// Members returns every implicated member across all reported cycles
func (e *CrossModuleCycleError) Members() []CycleMember {
	var all []CycleMember
	for _, cycle := range e.Cycles {
		all = append(all, cycle...)
	}
	return all
}

// InternalInvariantError means the sequencer could not emit every node.
// It signals a defect in the resolver, never a problem with the input.
type InternalInvariantError struct {
	Emitted int
	Total   int
	// Stuck lists the node ids never emitted, in input order
	Stuck []string
}

func (e *InternalInvariantError) Error() string {
	return fmt.Sprintf("sequencer emitted %d of %d nodes, stuck: %s",
		e.Emitted, e.Total, strings.Join(e.Stuck, ", "))
}

// Is matches ErrInternalInvariant
func (e *InternalInvariantError) Is(target error) bool {
	return target == ErrInternalInvariant
}
