// internal/speedup/partition.go
package speedup

// Group is the slice of a table sharing one value of a grouping column.
type Group struct {
	Column string
	Value  string
	Table  Table
}

// Partition splits t by the value of column so that each group is computed
// against its own sequential baseline. Groups keep first-appearance order.
// An empty column yields the whole table as a single group.
func Partition(t Table, column string) ([]Group, error) {
	if column == "" {
		return []Group{{Table: t}}, nil
	}
	if !t.HasColumn(column) {
		return nil, &SchemaError{Table: t.Name, Missing: []string{column}}
	}

	index := make(map[string]int)
	var groups []Group
	for _, r := range t.Rows {
		value := r.Value(column)
		i, ok := index[value]
		if !ok {
			i = len(groups)
			index[value] = i
			groups = append(groups, Group{
				Column: column,
				Value:  value,
				Table:  Table{Name: t.Name, Columns: t.Columns},
			})
		}
		groups[i].Table.Rows = append(groups[i].Table.Rows, r)
	}
	if len(groups) == 0 {
		groups = append(groups, Group{Column: column, Table: t})
	}
	return groups, nil
}
