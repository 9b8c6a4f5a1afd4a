package descriptor

import "math"

// Record holds the descriptor value(s) for one grid point. Which fields
// are present is determined solely by the problem's direction.
type Record struct {
	LFwd   float64
	LBwd   float64
	HasFwd bool
	HasBwd bool
}

// Total sums the present branch values; the usual scalar rendered when a
// field is plotted.
func (r Record) Total() float64 {
	sum := 0.0
	if r.HasFwd {
		sum += r.LFwd
	}
	if r.HasBwd {
		sum += r.LBwd
	}
	return sum
}

func (r Record) Finite() bool {
	if r.HasFwd && (math.IsNaN(r.LFwd) || math.IsInf(r.LFwd, 0)) {
		return false
	}
	if r.HasBwd && (math.IsNaN(r.LBwd) || math.IsInf(r.LBwd, 0)) {
		return false
	}
	return true
}

// merge folds another record's present branches into r. Absent branches
// are left untouched, so a forward half-record and a backward half-record
// combine into a complete pair.
func (r Record) merge(in Record) Record {
	if in.HasFwd {
		r.LFwd = in.LFwd
		r.HasFwd = true
	}
	if in.HasBwd {
		r.LBwd = in.LBwd
		r.HasBwd = true
	}
	return r
}

// Field is the assembled descriptor field, index-aligned with the grid
// the problem was built from.
type Field struct {
	Direction Direction
	Records   []Record
}

func (f *Field) Len() int { return len(f.Records) }

// Totals returns the per-record Total values in grid order.
func (f *Field) Totals() []float64 {
	out := make([]float64, len(f.Records))
	for i, r := range f.Records {
		out[i] = r.Total()
	}
	return out
}
