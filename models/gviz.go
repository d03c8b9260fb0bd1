// models/gviz.go
package models

// SheetCell is a single cell of a gviz table response. V is the raw
// value (string, float64, bool or nil after JSON decoding); F is the
// formatted display value when the sheet applies number/date formats.
type SheetCell struct {
	V interface{} `json:"v"`
	F string      `json:"f,omitempty"`
}

// SheetRow is an ordered sequence of cells. Empty trailing cells come
// back as null, so entries may be nil.
type SheetRow struct {
	C []*SheetCell `json:"c"`
}

// SheetTable is the decoded table structure of one gviz response.
// It is produced once per fetch and discarded after normalization.
type SheetTable struct {
	Rows []SheetRow `json:"rows"`
}

// Cell returns the cell at index i of the row, or nil if the row is
// too short or the cell is empty.
func (r SheetRow) Cell(i int) *SheetCell {
	if i < 0 || i >= len(r.C) {
		return nil
	}
	return r.C[i]
}
