// Package table holds the canonical in-memory representation of an annotated
// table: the document model the enrichment pipeline builds requests from and
// merges service responses into, plus the backend-update payload composed
// from it.
//
// A Document is exclusively owned by the pipeline invocation that received
// it. Merge and restructure operations deep-copy and return a new value
// rather than mutating a structure that outlives the call, so a failed merge
// never leaves a partially annotated table behind.
package table

import (
	"github.com/semtui/semt/pkg/constants"
)

// Meta is the table-level metadata record, including the aggregate counters
// that must stay consistent with the per-cell annotations.
type Meta struct {
	ID                  string  `json:"id"`
	DatasetID           string  `json:"idDataset"`
	Name                string  `json:"name"`
	NCols               int     `json:"nCols"`
	NRows               int     `json:"nRows"`
	NCells              int     `json:"nCells"`
	NCellsReconciliated int     `json:"nCellsReconciliated"`
	LastModifiedDate    string  `json:"lastModifiedDate"`
	MinMetaScore        float64 `json:"minMetaScore"`
	MaxMetaScore        float64 `json:"maxMetaScore"`
}

// Document is the canonical representation of a table: metadata plus ordered
// column and row maps. Column and row ids are stable identifiers chosen by
// the backend and are never mutated by any transformation.
type Document struct {
	Table   Meta     `json:"table"`
	Columns *Columns `json:"columns"`
	Rows    *Rows    `json:"rows"`
}

// NewDocument creates an empty document with the given metadata.
func NewDocument(meta Meta) *Document {
	return &Document{
		Table:   meta,
		Columns: NewColumns(),
		Rows:    NewRows(),
	}
}

// Copy returns a deep copy of the document.
func (d *Document) Copy() *Document {
	if d == nil {
		return nil
	}
	return &Document{
		Table:   d.Table,
		Columns: d.Columns.Copy(),
		Rows:    d.Rows.Copy(),
	}
}

// Cell returns the cell at (rowID, columnID), or nil when either is unknown.
func (d *Document) Cell(rowID, columnID string) *Cell {
	row, ok := d.Rows.Get(rowID)
	if !ok {
		return nil
	}
	return row.Cell(columnID)
}

// AnnotatedCellCount returns the number of cells whose annotation is set and
// positive.
func (d *Document) AnnotatedCellCount() int {
	n := 0
	for _, row := range d.Rows.All() {
		for _, cell := range row.Cells {
			if cell.Annotated() {
				n++
			}
		}
	}
	return n
}

// RecomputeStats refreshes the aggregate counters from the per-cell
// annotations: nCellsReconciliated becomes the annotated-cell count, and the
// metadata score bounds become the min/max of annotated cells' lowest scores,
// falling back to the (0, 1) defaults when no cell is annotated.
func (d *Document) RecomputeStats() {
	n := 0
	minScore := float64(constants.DefaultMinMetaScore)
	maxScore := float64(constants.DefaultMaxMetaScore)
	first := true

	for _, row := range d.Rows.All() {
		for _, cell := range row.Cells {
			if !cell.Annotated() {
				continue
			}
			n++
			score := cell.Annotation.LowestScore
			if first {
				minScore, maxScore = score, score
				first = false
				continue
			}
			if score < minScore {
				minScore = score
			}
			if score > maxScore {
				maxScore = score
			}
		}
	}

	d.Table.NCellsReconciliated = n
	d.Table.MinMetaScore = minScore
	d.Table.MaxMetaScore = maxScore
}
