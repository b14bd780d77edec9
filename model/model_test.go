package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributeReferences(t *testing.T) {
	assert.Nil(t, Attribute{Type: "long", Primitive: true}.References())
	assert.Nil(t, Attribute{}.References())
	assert.Equal(t, []string{"core::A"}, Attribute{Type: "core::A"}.References())
	assert.Equal(t, []string{"core::V", "core::K"},
		Attribute{Type: "core::V", KeyType: "core::K", Map: true}.References())
	// A primitive value does not hide the key
	assert.Equal(t, []string{"core::K"},
		Attribute{Type: "long", Primitive: true, KeyType: "core::K", Map: true}.References())
	// KeyType only counts on map attributes
	assert.Equal(t, []string{"core::V"}, Attribute{Type: "core::V", KeyType: "core::K"}.References())
}

func TestTypeNodeNames(t *testing.T) {
	n := &TypeNode{ID: "1", Name: "Message", Namespace: []string{"core", "msg"}}
	assert.Equal(t, "core::msg", n.Module())
	assert.Equal(t, "core::msg::Message", n.FullName())

	bare := &TypeNode{ID: "2", Name: "Root"}
	assert.Equal(t, "", bare.Module())
	assert.Equal(t, "Root", bare.FullName())
}

func TestSetDerivedOnce(t *testing.T) {
	n := &TypeNode{ID: "core::A"}
	require.False(t, n.HasDerived())

	require.NoError(t, n.SetDerived(true, 3))
	assert.True(t, n.ForwardDeclaration)
	assert.Equal(t, 3, n.Rank)
	assert.True(t, n.HasDerived())

	err := n.SetDerived(false, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "core::A")
	// The first write stays
	assert.True(t, n.ForwardDeclaration)
	assert.Equal(t, 3, n.Rank)
}

func TestSnapshotNodesOrder(t *testing.T) {
	a := &TypeNode{ID: "a"}
	b := &TypeNode{ID: "b"}
	c := &TypeNode{ID: "c"}
	d := &TypeNode{ID: "d"}
	s := &Snapshot{Modules: []*Module{
		{
			Name:  "core",
			Types: []*TypeNode{a},
			Modules: []*Module{
				{Name: "data", Types: []*TypeNode{b, c}},
			},
		},
		{Name: "msg", Types: []*TypeNode{d}},
	}}

	assert.Equal(t, []*TypeNode{a, b, c, d}, s.Nodes())

	got, ok := s.Lookup("c")
	require.True(t, ok)
	assert.Same(t, c, got)

	_, ok = s.Lookup("missing")
	assert.False(t, ok)
}
