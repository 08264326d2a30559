package board

import (
	"slices"
	"testing"
)

func loaded(values ...uint8) *Registry {
	reg := NewRegistry()
	reg.Load(values)
	return reg
}

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name    string
		values  []uint8
		ids     IDs
		cleared IDs
		delta   int
	}{
		{"pair to ten", []uint8{4, 6, 3}, IDs{0, 1}, IDs{0, 1}, 2},
		{"over ten", []uint8{5, 5, 5}, IDs{0, 1, 2}, nil, 0},
		{"cleared cell rides along", []uint8{0, 9, 1}, IDs{0, 1, 2}, IDs{1, 2}, 2},
		{"empty selection", []uint8{4, 6}, nil, nil, 0},
		{"unknown ids ignored", []uint8{7, 3}, IDs{0, 1, 500}, IDs{0, 1}, 2},
		{"under ten", []uint8{1, 2, 3}, IDs{0, 1, 2}, nil, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reg := loaded(tc.values...)
			got := Evaluate(tc.ids, reg)
			if !slices.Equal(got.Cleared, tc.cleared) {
				t.Fatalf("Cleared = %v, want %v", got.Cleared, tc.cleared)
			}
			if got.ScoreDelta != tc.delta {
				t.Fatalf("ScoreDelta = %d, want %d", got.ScoreDelta, tc.delta)
			}
			if got.Qualified() != (reg.Sum(tc.ids) == Target) {
				t.Fatalf("Qualified = %v for sum %d", got.Qualified(), reg.Sum(tc.ids))
			}
		})
	}
}

func TestEvaluateDoesNotMutate(t *testing.T) {
	reg := loaded(4, 6, 3)
	before := values(reg)
	a := Evaluate(IDs{0, 1}, reg)
	b := Evaluate(IDs{0, 1}, reg)
	if !slices.Equal(before, values(reg)) {
		t.Fatal("Evaluate mutated the registry")
	}
	if a.Sum != b.Sum || !slices.Equal(a.Cleared, b.Cleared) || a.ScoreDelta != b.ScoreDelta {
		t.Fatalf("Evaluate not repeatable: %+v vs %+v", a, b)
	}
}

func TestApply(t *testing.T) {
	reg := loaded(0, 9, 1, 5)
	out := Evaluate(IDs{0, 1, 2}, reg)
	if got := Apply(out, reg); got != 2 {
		t.Fatalf("Apply = %d, want 2", got)
	}
	if got := values(reg)[:4]; !slices.Equal(got, []uint8{0, 0, 0, 5}) {
		t.Fatalf("values after Apply = %v", got)
	}
	if got := Apply(Evaluate(IDs{3}, reg), reg); got != 0 {
		t.Fatalf("non-qualifying Apply = %d", got)
	}
	if reg.Sum(IDs{3}) != 5 {
		t.Fatal("non-qualifying Apply touched the registry")
	}
}
