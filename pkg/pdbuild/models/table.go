// Package models defines the in-memory table model shared by every stage of
// the database build: tagged cell values, named tables, and collections of
// tables keyed by registry name.
package models

// Table is a named, ordered set of columns with rows of tagged values. Rows
// have no identity beyond position; their order is insertion order.
type Table struct {
	// Name is the registry name of the table (not the export file name).
	Name string
	// Columns holds the column names in declaration order.
	Columns []string
	// Rows holds one value per column per row.
	Rows [][]Value
}

// NumRows returns the number of data rows.
func (t Table) NumRows() int {
	return len(t.Rows)
}

// NumCols returns the number of columns.
func (t Table) NumCols() int {
	return len(t.Columns)
}

// Clone returns a deep copy of the table. Stage transformations operate on
// copies so that a loaded collection is never mutated in place.
func (t Table) Clone() Table {
	out := Table{
		Name:    t.Name,
		Columns: append([]string(nil), t.Columns...),
		Rows:    make([][]Value, len(t.Rows)),
	}
	for i, row := range t.Rows {
		out.Rows[i] = append([]Value(nil), row...)
	}
	return out
}

// SameColumns reports whether the other table declares the same column names
// in the same order.
func (t Table) SameColumns(other Table) bool {
	if len(t.Columns) != len(other.Columns) {
		return false
	}
	for i, c := range t.Columns {
		if other.Columns[i] != c {
			return false
		}
	}
	return true
}

// Collection maps registry table name to table. One collection exists per
// source workbook, plus one merged result per run.
type Collection map[string]Table
