package board

import "tens/internal/core"

// LayoutProvider reports where a cell currently sits on screen. A cell without
// a known rectangle reports false and is left out of hit-testing.
type LayoutProvider interface {
	Rect(id CellID) (core.Rect, bool)
}

// LayoutFunc adapts a plain function to LayoutProvider.
type LayoutFunc func(id CellID) (core.Rect, bool)

// Rect implements LayoutProvider.
func (f LayoutFunc) Rect(id CellID) (core.Rect, bool) { return f(id) }

// Select returns the active cells whose layout rectangle intersects drag.
// drag must already be normalized. A drag without area selects nothing, and
// neither do cleared cells or cells the layout cannot place.
func Select(drag core.Rect, reg *Registry, layout LayoutProvider) IDs {
	if drag.Empty() || reg == nil || layout == nil {
		return nil
	}
	var out IDs
	for _, c := range reg.Cells() {
		if !c.Active() {
			continue
		}
		rect, ok := layout.Rect(c.ID)
		if !ok {
			continue
		}
		if drag.Intersects(rect) {
			out = append(out, c.ID)
		}
	}
	return out
}
