package board

// Outcome is the effect of evaluating a selection. It is computed before any
// cell is touched.
type Outcome struct {
	// Sum is the selection total as it stood at evaluation time.
	Sum int
	// Cleared lists the active cells to empty. It is empty unless Sum == Target.
	Cleared IDs
	// ScoreDelta is the number of cells turned from active to cleared.
	ScoreDelta int
}

// Qualified reports whether the selection clears anything.
func (o Outcome) Qualified() bool { return len(o.Cleared) > 0 }

// Evaluate applies the sum-of-ten rule to ids without mutating reg.
func Evaluate(ids IDs, reg *Registry) Outcome {
	if reg == nil {
		return Outcome{}
	}
	out := Outcome{Sum: reg.Sum(ids)}
	if out.Sum != Target {
		return out
	}
	for _, id := range NewIDs(ids...) {
		if v, ok := reg.Value(id); ok && v != 0 {
			out.Cleared = append(out.Cleared, id)
		}
	}
	out.ScoreDelta = len(out.Cleared)
	return out
}

// Apply clears the outcome's cells and returns the score earned.
func Apply(o Outcome, reg *Registry) int {
	if reg == nil || !o.Qualified() {
		return 0
	}
	reg.Clear(o.Cleared)
	return o.ScoreDelta
}
