package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teranos/idlgen/errors"
	"github.com/teranos/idlgen/model"
)

func TestBuildGraphEdges(t *testing.T) {
	nodes := []*model.TypeNode{
		node("A", model.KindStruct, "core", primitive("x"), embed("B"), sequenceOf("C")),
		node("B", model.KindStruct, "core"),
		node("C", model.KindUnion, "core", embed("A")),
	}

	g, err := BuildGraph(nodes)
	require.NoError(t, err)

	assert.Equal(t, []Edge{
		{Source: "A", Target: "B", Kind: Hard},
		{Source: "A", Target: "C", Kind: Soft},
		{Source: "C", Target: "A", Kind: Soft},
	}, g.Edges)
	assert.Equal(t, []Edge{{Source: "A", Target: "B", Kind: Hard}}, g.HardEdges())

	i, ok := g.Index("C")
	require.True(t, ok)
	assert.Equal(t, 2, i)
	assert.Same(t, nodes[1], g.Node("B"))
	assert.Nil(t, g.Node("Z"))
}

func TestBuildGraphHardWins(t *testing.T) {
	// Soft first, then Hard: the collapsed edge is Hard
	nodes := []*model.TypeNode{
		node("A", model.KindStruct, "core", optional("B"), sequenceOf("B"), embed("B")),
		node("B", model.KindStruct, "core"),
	}

	g, err := BuildGraph(nodes)
	require.NoError(t, err)
	assert.Equal(t, []Edge{{Source: "A", Target: "B", Kind: Hard}}, g.Edges)
}

func TestBuildGraphMapKey(t *testing.T) {
	nodes := []*model.TypeNode{
		node("Index", model.KindStruct, "core",
			model.Attribute{Name: "byKey", Type: "Value", KeyType: "Key", Map: true}),
		node("Key", model.KindEnum, "core"),
		node("Value", model.KindStruct, "core"),
	}

	g, err := BuildGraph(nodes)
	require.NoError(t, err)
	assert.Equal(t, []Edge{
		{Source: "Index", Target: "Value", Kind: Soft},
		{Source: "Index", Target: "Key", Kind: Soft},
	}, g.Edges)
}

func TestBuildGraphMapKeyWithPrimitiveValue(t *testing.T) {
	byColor := model.Attribute{Name: "by_color", Type: "long", Primitive: true, KeyType: "Color", Map: true}

	g, err := BuildGraph([]*model.TypeNode{
		node("Table", model.KindStruct, "core", byColor),
		node("Color", model.KindEnum, "core"),
	})
	require.NoError(t, err)
	assert.Equal(t, []Edge{{Source: "Table", Target: "Color", Kind: Soft}}, g.Edges)

	byGhost := model.Attribute{Name: "by_ghost", Type: "long", Primitive: true, KeyType: "Ghost", Map: true}
	_, err = BuildGraph([]*model.TypeNode{
		node("Table", model.KindStruct, "core", byColor, byGhost),
		node("Color", model.KindEnum, "core"),
	})
	var construction *GraphConstructionError
	require.True(t, errors.As(err, &construction))
	assert.Equal(t, DanglingReference, construction.Reason)
	assert.Equal(t, "Ghost", construction.Target)
}

func TestBuildGraphDanglingReference(t *testing.T) {
	nodes := []*model.TypeNode{
		node("A", model.KindStruct, "core", embed("Ghost")),
	}

	_, err := BuildGraph(nodes)
	require.Error(t, err)

	var construction *GraphConstructionError
	require.True(t, errors.As(err, &construction))
	assert.Equal(t, DanglingReference, construction.Reason)
	assert.Equal(t, "A", construction.Node)
	assert.Equal(t, "Ghost", construction.Target)
	assert.Contains(t, err.Error(), `"Ghost"`)
	assert.Contains(t, err.Error(), "A")
	assert.True(t, errors.Is(err, ErrGraphConstruction))
}

func TestBuildGraphSelfReference(t *testing.T) {
	t.Run("hard self edge is rejected", func(t *testing.T) {
		_, err := BuildGraph([]*model.TypeNode{
			node("A", model.KindStruct, "core", sequenceOf("A"), embed("A")),
		})
		var construction *GraphConstructionError
		require.True(t, errors.As(err, &construction))
		assert.Equal(t, HardSelfReference, construction.Reason)
		assert.Equal(t, "A", construction.Node)
	})

	t.Run("soft self edge is accepted", func(t *testing.T) {
		g, err := BuildGraph([]*model.TypeNode{
			node("Tree", model.KindStruct, "core", sequenceOf("Tree"), optional("Tree")),
		})
		require.NoError(t, err)
		assert.Equal(t, []Edge{{Source: "Tree", Target: "Tree", Kind: Soft}}, g.Edges)
	})

	t.Run("union self edge is soft", func(t *testing.T) {
		_, err := BuildGraph([]*model.TypeNode{
			node("Expr", model.KindUnion, "core", embed("Expr")),
		})
		require.NoError(t, err)
	})
}

func TestBuildGraphInvalidNodes(t *testing.T) {
	_, err := BuildGraph([]*model.TypeNode{
		node("A", model.KindStruct, "core"),
		node("A", model.KindEnum, "data"),
	})
	var construction *GraphConstructionError
	require.True(t, errors.As(err, &construction))
	assert.Equal(t, DuplicateID, construction.Reason)

	_, err = BuildGraph([]*model.TypeNode{
		node("A", model.KindUnknown, "core"),
	})
	require.True(t, errors.As(err, &construction))
	assert.Equal(t, InvalidKind, construction.Reason)
}

func TestBuildGraphEmpty(t *testing.T) {
	g, err := BuildGraph(nil)
	require.NoError(t, err)
	assert.Empty(t, g.Nodes)
	assert.Empty(t, g.Edges)
}
