package board

import (
	"slices"
	"testing"

	"tens/internal/core"
)

func TestCreateGridInvariants(t *testing.T) {
	reg := NewRegistry()
	for _, seed := range []int64{1, 2, 99} {
		reg.CreateGrid(core.NewRNG(seed))
		cells := reg.Cells()
		if len(cells) != Size {
			t.Fatalf("seed %d: got %d cells, want %d", seed, len(cells), Size)
		}
		for i, c := range cells {
			if c.ID != CellID(i) {
				t.Fatalf("seed %d: cell %d has id %d", seed, i, c.ID)
			}
			if c.Value < 1 || c.Value > MaxDigit {
				t.Fatalf("seed %d: cell %d value %d out of range", seed, i, c.Value)
			}
		}
	}
}

func TestCreateGridRestartsIDs(t *testing.T) {
	reg := NewRegistry()
	reg.CreateGrid(core.NewRNG(3))
	reg.Clear(NewIDs(0, 1, 2))
	reg.CreateGrid(core.NewRNG(4))
	if reg.Len() != Size {
		t.Fatalf("regenerated grid has %d cells", reg.Len())
	}
	first := reg.Cells()[0]
	if first.ID != 0 || !first.Active() {
		t.Fatalf("first cell after regeneration = %+v", first)
	}
}

func TestSumMatchesValues(t *testing.T) {
	reg := NewRegistry()
	reg.CreateGrid(core.NewRNG(11))

	all := make(IDs, 0, Size)
	want := 0
	for _, c := range reg.Cells() {
		all = append(all, c.ID)
		want += int(c.Value)
	}
	if got := reg.Sum(all); got != want {
		t.Fatalf("Sum(all) = %d, want %d", got, want)
	}

	subset := NewIDs(3, 14, 15, 92)
	reg.Clear(subset)
	if got := reg.Sum(subset); got != 0 {
		t.Fatalf("Sum after Clear = %d, want 0", got)
	}
}

func TestSumToleratesUnknownAndDuplicateIDs(t *testing.T) {
	reg := NewRegistry()
	reg.Load([]uint8{4, 6, 3})
	ids := IDs{0, 0, 1, -5, 100, 4000}
	if got := reg.Sum(ids); got != 10 {
		t.Fatalf("Sum(%v) = %d, want 10", ids, got)
	}
}

// values returns the row-major values of reg.
func values(reg *Registry) []uint8 {
	cells := reg.Cells()
	out := make([]uint8, len(cells))
	for i, c := range cells {
		out[i] = c.Value
	}
	return out
}

func TestClearIsIdempotent(t *testing.T) {
	reg := NewRegistry()
	reg.Load([]uint8{4, 6, 3})
	reg.Clear(NewIDs(0, 999))
	reg.Clear(NewIDs(0))
	want := []uint8{0, 6, 3}
	if got := values(reg)[:3]; !slices.Equal(got, want) {
		t.Fatalf("values after clear = %v, want %v", got, want)
	}
	if reg.Active() != 2 {
		t.Fatalf("active = %d, want 2", reg.Active())
	}
}

func TestLoadClamps(t *testing.T) {
	reg := NewRegistry()
	reg.Load([]uint8{12})
	if v, _ := reg.Value(0); v != MaxDigit {
		t.Fatalf("value = %d, want clamp to %d", v, MaxDigit)
	}
	if v, ok := reg.Value(1); !ok || v != 0 {
		t.Fatalf("missing trailing value should load as cleared, got %d %v", v, ok)
	}
}

func TestAt(t *testing.T) {
	reg := NewRegistry()
	reg.CreateGrid(core.NewRNG(5))
	id, ok := reg.At(4, 7)
	if !ok || id != 47 {
		t.Fatalf("At(4,7) = %d,%v", id, ok)
	}
	if _, ok := reg.At(10, 0); ok {
		t.Fatal("At outside grid reported ok")
	}
}

func TestNewIDs(t *testing.T) {
	got := NewIDs(5, 1, 5, 3)
	if !slices.Equal(got, IDs{1, 3, 5}) {
		t.Fatalf("NewIDs = %v", got)
	}
	if !got.Contains(3) || got.Contains(4) {
		t.Fatal("Contains disagrees with contents")
	}
}
