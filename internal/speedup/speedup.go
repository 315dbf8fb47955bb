// internal/speedup/speedup.go
// Package speedup derives parallel speedup curves from benchmark tables.
package speedup

import (
	"math"
	"sort"
)

// CheckSchema returns a *SchemaError when any required column is absent.
func CheckSchema(t Table) error {
	var missing []string
	for _, col := range RequiredColumns {
		if !t.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return &SchemaError{Table: t.Name, Missing: missing}
}

// Baseline returns the first sequential row of the table.
func Baseline(t Table) (Row, error) {
	for _, r := range t.Rows {
		if r.Method == SequentialMethod {
			return r, nil
		}
	}
	return Row{}, &NoBaselineError{Table: t.Name}
}

// CheckTimes rejects zero, negative and NaN times.
func CheckTimes(t Table) error {
	for i, r := range t.Rows {
		if r.Time <= 0 || math.IsNaN(r.Time) || math.IsInf(r.Time, 0) {
			return &InvalidTimeError{Table: t.Name, Index: i, Method: r.Method, NbProc: r.NbProc, Time: r.Time}
		}
	}
	return nil
}

// Compute maps every non-sequential method to its speedup curve, ordered by
// ascending process count. The baseline is the first sequential row; rows
// sharing a process count are kept as-is.
func Compute(t Table) (map[string][]Point, error) {
	if err := CheckSchema(t); err != nil {
		return nil, err
	}
	base, err := Baseline(t)
	if err != nil {
		return nil, err
	}
	if err := CheckTimes(t); err != nil {
		return nil, err
	}

	out := make(map[string][]Point)
	for _, method := range t.ParallelMethods() {
		rows := rowsFor(t, method)
		points := make([]Point, 0, len(rows))
		for _, r := range rows {
			points = append(points, Point{
				Method:  method,
				NbProc:  r.NbProc,
				Speedup: base.Time / r.Time,
			})
		}
		out[method] = points
	}
	return out, nil
}

// TimeSeries maps every non-sequential method to its timings ordered by
// ascending process count.
func TimeSeries(t Table) (map[string][]TimePoint, error) {
	if err := CheckSchema(t); err != nil {
		return nil, err
	}
	out := make(map[string][]TimePoint)
	for _, method := range t.ParallelMethods() {
		rows := rowsFor(t, method)
		points := make([]TimePoint, 0, len(rows))
		for _, r := range rows {
			points = append(points, TimePoint{Method: method, NbProc: r.NbProc, Time: r.Time})
		}
		out[method] = points
	}
	return out, nil
}

// ProcRange returns the smallest parallel process count (1 when the table has
// no parallel rows) and the largest process count over all rows.
func ProcRange(t Table) (lo, hi int) {
	lo = -1
	for _, r := range t.Rows {
		if r.NbProc > hi {
			hi = r.NbProc
		}
		if r.Method == SequentialMethod {
			continue
		}
		if lo < 0 || r.NbProc < lo {
			lo = r.NbProc
		}
	}
	if lo < 0 {
		lo = 1
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

func rowsFor(t Table, method string) []Row {
	var rows []Row
	for _, r := range t.Rows {
		if r.Method == method {
			rows = append(rows, r)
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].NbProc < rows[j].NbProc
	})
	return rows
}
