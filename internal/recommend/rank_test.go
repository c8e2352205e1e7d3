package recommend

import (
	"reflect"
	"testing"
)

func TestCombinedScore(t *testing.T) {
	t.Parallel()

	w := DefaultWeights()
	tests := []struct {
		name       string
		similarity float64
		skillMatch float64
		compatible bool
		penalty    int
		want       int
	}{
		{name: "all signals", similarity: 0.5, skillMatch: 50, compatible: true, want: 58},
		{name: "perfect", similarity: 1, skillMatch: 100, compatible: true, want: 100},
		{name: "nothing", want: 0},
		{name: "penalty below zero clamps to zero", penalty: 30, want: 0},
		{name: "penalty subtracted before clamp", similarity: 1, skillMatch: 100, penalty: 30, want: 55},
		{name: "bonus only", compatible: true, want: 15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := CombinedScore(w, tt.similarity, tt.skillMatch, tt.compatible, tt.penalty)
			if got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func indices(scored []Breakdown) []int {
	out := make([]int, 0, len(scored))
	for _, b := range scored {
		out = append(out, b.Index)
	}
	return out
}

func TestRankFloorIsStrict(t *testing.T) {
	t.Parallel()

	ranked := Rank([]Breakdown{
		{Index: 0, Combined: 10},
		{Index: 1, Combined: 11},
		{Index: 2, Combined: 0},
	}, DefaultMinScore, 5)

	if got := indices(ranked); !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("expected only the job scoring 11, got %v", got)
	}
}

func TestRankStableTies(t *testing.T) {
	t.Parallel()

	ranked := Rank([]Breakdown{
		{Index: 0, Combined: 50},
		{Index: 1, Combined: 70},
		{Index: 2, Combined: 50},
		{Index: 3, Combined: 70},
		{Index: 4, Combined: 60},
	}, DefaultMinScore, 10)

	if got := indices(ranked); !reflect.DeepEqual(got, []int{1, 3, 4, 0, 2}) {
		t.Fatalf("unexpected order: %v", got)
	}
}

func TestRankLimit(t *testing.T) {
	t.Parallel()

	scored := []Breakdown{{Index: 0, Combined: 40}, {Index: 1, Combined: 80}, {Index: 2, Combined: 60}}

	if got := indices(Rank(scored, DefaultMinScore, 2)); !reflect.DeepEqual(got, []int{1, 2}) {
		t.Fatalf("unexpected truncated order: %v", got)
	}
	if got := Rank(scored, DefaultMinScore, 0); len(got) != 0 {
		t.Fatalf("zero limit must give no results, got %v", got)
	}
	if got := Rank(scored, DefaultMinScore, -3); len(got) != 0 {
		t.Fatalf("negative limit must give no results, got %v", got)
	}
}
