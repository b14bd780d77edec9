package plan

import (
	"fmt"
	"sort"
)

// Diff holds the result of comparing a plan against a baseline
type Diff struct {
	UpToDate    bool     `json:"up_to_date" yaml:"up_to_date"`
	Differences []string `json:"differences,omitempty" yaml:"differences,omitempty"`
}

// Compare reports how got differs from want.
// Differences are listed in want's emission order, followed by types only got has.
func Compare(want, got *Plan) *Diff {
	wantDecls := want.Declarations()
	gotDecls := got.Declarations()

	gotByID := make(map[string]Declaration, len(gotDecls))
	for _, d := range gotDecls {
		gotByID[d.ID] = d
	}

	var diffs []string
	wantIDs := make(map[string]bool, len(wantDecls))
	for _, w := range wantDecls {
		wantIDs[w.ID] = true
		g, ok := gotByID[w.ID]
		if !ok {
			diffs = append(diffs, fmt.Sprintf("%s: missing", w.ID))
			continue
		}
		if w.Rank != g.Rank {
			diffs = append(diffs, fmt.Sprintf("%s: rank %d, baseline %d", w.ID, g.Rank, w.Rank))
		}
		if w.Forward != g.Forward {
			diffs = append(diffs, fmt.Sprintf("%s: forward declaration %t, baseline %t", w.ID, g.Forward, w.Forward))
		}
		if w.Kind != g.Kind {
			diffs = append(diffs, fmt.Sprintf("%s: kind %s, baseline %s", w.ID, g.Kind, w.Kind))
		}
	}

	var extra []Declaration
	for _, g := range gotDecls {
		if !wantIDs[g.ID] {
			extra = append(extra, g)
		}
	}
	sort.SliceStable(extra, func(i, j int) bool { return extra[i].Rank < extra[j].Rank })
	for _, g := range extra {
		diffs = append(diffs, fmt.Sprintf("%s: not in baseline", g.ID))
	}

	return &Diff{
		UpToDate:    len(diffs) == 0,
		Differences: diffs,
	}
}
