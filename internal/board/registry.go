// Package board holds the cells of a Tens grid and the pure rules that act on
// them: hit-testing a drag rectangle and deciding whether a selection clears.
package board

import (
	"slices"

	"tens/internal/core"
)

const (
	// Rows is the number of grid rows.
	Rows = 10
	// Cols is the number of grid columns.
	Cols = 10
	// Size is the number of cells in one generation.
	Size = Rows * Cols
	// MaxDigit is the largest value a fresh cell can carry.
	MaxDigit = 9
	// Target is the sum a selection must reach to clear.
	Target = 10
)

// CellID identifies a cell within one grid generation.
type CellID int

// Cell is the render-facing view of one grid slot. Value 0 marks a cleared cell.
type Cell struct {
	ID    CellID
	Value uint8
}

// Active reports whether the cell still takes part in play.
func (c Cell) Active() bool { return c.Value != 0 }

// IDs is a set of cell ids kept sorted and free of duplicates.
type IDs []CellID

// NewIDs builds a set from arbitrary ids.
func NewIDs(ids ...CellID) IDs {
	out := slices.Clone(ids)
	slices.Sort(out)
	return slices.Compact(out)
}

// Contains reports whether id is in the set.
func (s IDs) Contains(id CellID) bool {
	_, ok := slices.BinarySearch(s, id)
	return ok
}

// Registry owns the cells of the current generation.
type Registry struct {
	grid   *core.ByteGrid
	ids    []CellID
	nextID CellID
}

// NewRegistry returns an empty registry. Call CreateGrid to populate it.
func NewRegistry() *Registry {
	return &Registry{grid: core.NewByteGrid(Cols, Rows)}
}

// CreateGrid replaces every cell with a fresh one. Ids restart at 0 and values
// are drawn independently from [1, MaxDigit].
func (r *Registry) CreateGrid(rng *core.RNG) {
	r.nextID = 0
	r.ids = r.ids[:0]
	core.FillDigits(rng, r.grid.Cells(), MaxDigit)
	for range r.grid.Cells() {
		r.ids = append(r.ids, r.nextID)
		r.nextID++
	}
}

// Load replaces the grid with the given values, in row-major order. Missing
// trailing values are treated as cleared and values above MaxDigit are clamped.
// It exists for tests and replays that need a known board.
func (r *Registry) Load(values []uint8) {
	r.nextID = 0
	r.ids = r.ids[:0]
	cells := r.grid.Cells()
	for i := range cells {
		v := uint8(0)
		if i < len(values) {
			v = min(values[i], MaxDigit)
		}
		cells[i] = v
		r.ids = append(r.ids, r.nextID)
		r.nextID++
	}
}

// Len returns the number of cells in the current generation.
func (r *Registry) Len() int { return len(r.ids) }

func (r *Registry) index(id CellID) (int, bool) {
	i := int(id)
	if !r.grid.InBounds(i) || i >= len(r.ids) || r.ids[i] != id {
		return 0, false
	}
	return i, true
}

// Value returns the current value of id. Unknown ids report false.
func (r *Registry) Value(id CellID) (uint8, bool) {
	i, ok := r.index(id)
	if !ok {
		return 0, false
	}
	return r.grid.Cells()[i], true
}

// At returns the id at row, col.
func (r *Registry) At(row, col int) (CellID, bool) {
	if row < 0 || row >= r.grid.H || col < 0 || col >= r.grid.W {
		return 0, false
	}
	i := r.grid.Index(col, row)
	if i >= len(r.ids) {
		return 0, false
	}
	return r.ids[i], true
}

// Sum adds up the values of ids. Unknown ids contribute nothing and duplicate
// ids are counted once.
func (r *Registry) Sum(ids IDs) int {
	var seen [Size]bool
	cells := r.grid.Cells()
	total := 0
	for _, id := range ids {
		i, ok := r.index(id)
		if !ok || seen[i] {
			continue
		}
		seen[i] = true
		total += int(cells[i])
	}
	return total
}

// Clear empties every named cell. Unknown and already cleared ids are no-ops.
func (r *Registry) Clear(ids IDs) {
	cells := r.grid.Cells()
	for _, id := range ids {
		if i, ok := r.index(id); ok {
			cells[i] = 0
		}
	}
}

// Active returns how many cells are still in play.
func (r *Registry) Active() int {
	n := 0
	for _, v := range r.grid.Cells() {
		if v != 0 {
			n++
		}
	}
	return n
}

// Cells returns a copy of every cell in id order.
func (r *Registry) Cells() []Cell {
	out := make([]Cell, len(r.ids))
	cells := r.grid.Cells()
	for i, id := range r.ids {
		out[i] = Cell{ID: id, Value: cells[i]}
	}
	return out
}
