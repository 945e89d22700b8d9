// Package valueobject contains immutable domain value types.
package valueobject

// Table is a flat tabular rendering of a collection, ready to be encoded for download.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// Len returns the number of data rows.
func (t Table) Len() int {
	return len(t.Rows)
}
