// internal/speedup/types.go
package speedup

import "strconv"

const (
	// ColumnMethod names the column holding the implementation label.
	ColumnMethod = "method"
	// ColumnNbProc names the column holding the process count.
	ColumnNbProc = "nb_proc"
	// ColumnTime names the column holding the measured wall time.
	ColumnTime = "time"

	// SequentialMethod is the method label of the baseline run.
	SequentialMethod = "sequential"
)

// RequiredColumns lists the columns every benchmark table must carry.
var RequiredColumns = []string{ColumnMethod, ColumnNbProc, ColumnTime}

// Row is a single benchmark measurement.
type Row struct {
	Method string            `json:"method"`
	NbProc int               `json:"nb_proc"`
	Time   float64           `json:"time"`
	Extra  map[string]string `json:"extra,omitempty"`
}

// Table is the ordered set of rows read from one benchmark file.
type Table struct {
	Name    string   `json:"name"`
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Point is one speedup sample of a parallel method.
type Point struct {
	Method  string  `json:"method"`
	NbProc  int     `json:"nb_proc"`
	Speedup float64 `json:"speedup"`
}

// TimePoint is one raw timing sample of a parallel method.
type TimePoint struct {
	Method string  `json:"method"`
	NbProc int     `json:"nb_proc"`
	Time   float64 `json:"time"`
}

// HasColumn reports whether the table header contains name.
func (t Table) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// Methods returns the distinct method labels in order of first appearance.
func (t Table) Methods() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, r := range t.Rows {
		if _, ok := seen[r.Method]; ok {
			continue
		}
		seen[r.Method] = struct{}{}
		out = append(out, r.Method)
	}
	return out
}

// ParallelMethods returns Methods without the sequential baseline.
func (t Table) ParallelMethods() []string {
	var out []string
	for _, m := range t.Methods() {
		if m != SequentialMethod {
			out = append(out, m)
		}
	}
	return out
}

// Value returns the textual value of column for this row.
func (r Row) Value(column string) string {
	switch column {
	case ColumnMethod:
		return r.Method
	case ColumnNbProc:
		return strconv.Itoa(r.NbProc)
	case ColumnTime:
		return strconv.FormatFloat(r.Time, 'g', -1, 64)
	}
	return r.Extra[column]
}
