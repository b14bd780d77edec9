package resolver

import (
	"github.com/teranos/idlgen/model"
)

// EdgeKind says whether a dependency needs the target's full definition.
type EdgeKind int

const (
	// Soft edges are satisfied by a forward name (indirect, boxed or collection storage)
	Soft EdgeKind = iota + 1
	// Hard edges need the target's full layout (value embedding)
	Hard
)

func (k EdgeKind) String() string {
	switch k {
	case Soft:
		return "soft"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// Edge is a dependency from Source on Target
type Edge struct {
	Source string
	Target string
	Kind   EdgeKind
}

// Classify decides the edge kind contributed by one attribute of a node of
// kind owner. It is the single place that maps attribute shapes onto edge
// kinds.
func Classify(owner model.Kind, attr model.Attribute) EdgeKind {
	switch owner {
	case model.KindUnion:
		// The active branch is stored boxed, a name is enough
		return Soft
	case model.KindStruct, model.KindTypedef, model.KindEnum, model.KindMap:
		if attr.Optional || attr.Collection || attr.Map || attr.Indirect {
			return Soft
		}
		return Hard
	default:
		return Hard
	}
}
