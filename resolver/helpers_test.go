package resolver

import (
	"strings"

	"github.com/teranos/idlgen/model"
)

// node builds a type node; module is a "::" separated path
func node(id string, kind model.Kind, module string, attrs ...model.Attribute) *model.TypeNode {
	return &model.TypeNode{
		ID:         id,
		Name:       id,
		Kind:       kind,
		Namespace:  strings.Split(module, model.Separator),
		Attributes: attrs,
	}
}

// embed is a plain by-value reference
func embed(target string) model.Attribute {
	return model.Attribute{Name: "m_" + strings.ToLower(target), Type: target}
}

func sequenceOf(target string) model.Attribute {
	a := embed(target)
	a.Collection = true
	return a
}

func optional(target string) model.Attribute {
	a := embed(target)
	a.Optional = true
	return a
}

func primitive(name string) model.Attribute {
	return model.Attribute{Name: name, Type: "long", Primitive: true}
}

func ids(nodes []*model.TypeNode) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		out[i] = n.ID
	}
	return out
}

func position(order []string, id string) int {
	for i, o := range order {
		if o == id {
			return i
		}
	}
	return -1
}
