package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/teranos/idlgen/model"
)

func planOf(decls ...Declaration) *Plan {
	return &Plan{Blocks: []Block{{Module: "core", Declarations: decls}}}
}

func TestCompare(t *testing.T) {
	baseline := planOf(
		Declaration{ID: "A", Kind: model.KindStruct, Rank: 0},
		Declaration{ID: "B", Kind: model.KindUnion, Rank: 1, Forward: true},
		Declaration{ID: "C", Kind: model.KindEnum, Rank: 2},
	)

	tests := []struct {
		name string
		got  *Plan
		want []string
	}{
		{
			name: "identical",
			got:  baseline,
		},
		{
			name: "same declarations in different blocks",
			got: &Plan{Blocks: []Block{
				{Module: "core", Declarations: []Declaration{{ID: "A", Kind: model.KindStruct, Rank: 0}}},
				{Module: "core", Declarations: []Declaration{
					{ID: "B", Kind: model.KindUnion, Rank: 1, Forward: true},
					{ID: "C", Kind: model.KindEnum, Rank: 2},
				}},
			}},
		},
		{
			name: "moved and flag dropped",
			got: planOf(
				Declaration{ID: "B", Kind: model.KindUnion, Rank: 0},
				Declaration{ID: "A", Kind: model.KindStruct, Rank: 1},
				Declaration{ID: "C", Kind: model.KindEnum, Rank: 2},
			),
			want: []string{
				"A: rank 1, baseline 0",
				"B: rank 0, baseline 1",
				"B: forward declaration false, baseline true",
			},
		},
		{
			name: "missing and extra",
			got: planOf(
				Declaration{ID: "A", Kind: model.KindStruct, Rank: 0},
				Declaration{ID: "B", Kind: model.KindUnion, Rank: 1, Forward: true},
				Declaration{ID: "D", Kind: model.KindMap, Rank: 2},
			),
			want: []string{"C: missing", "D: not in baseline"},
		},
		{
			name: "kind changed",
			got: planOf(
				Declaration{ID: "A", Kind: model.KindTypedef, Rank: 0},
				Declaration{ID: "B", Kind: model.KindUnion, Rank: 1, Forward: true},
				Declaration{ID: "C", Kind: model.KindEnum, Rank: 2},
			),
			want: []string{"A: kind typedef, baseline struct"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff := Compare(baseline, tt.got)
			assert.Equal(t, len(tt.want) == 0, diff.UpToDate)
			assert.Equal(t, tt.want, diff.Differences)
		})
	}
}
