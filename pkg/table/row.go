package table

import (
	"strings"

	"github.com/semtui/semt/pkg/constants"
)

// Cell is a single table cell: its display label plus the entity candidates
// and annotation produced by reconciliation.
type Cell struct {
	ID         string      `json:"id"`
	Label      string      `json:"label"`
	Metadata   []Entity    `json:"metadata"`
	Annotation *Annotation `json:"annotationMeta,omitempty"`
}

// Annotated reports whether the cell carries a positive annotation.
func (c *Cell) Annotated() bool {
	return c != nil && c.Annotation != nil && c.Annotation.Annotated
}

// Copy returns a deep copy of the cell.
func (c *Cell) Copy() *Cell {
	if c == nil {
		return nil
	}
	out := *c
	out.Metadata = CopyEntities(c.Metadata)
	if c.Annotation != nil {
		ann := *c.Annotation
		out.Annotation = &ann
	}
	return &out
}

// Row is a table row: a backend-assigned id (of the form r<N>) and its cells
// keyed by column id.
type Row struct {
	ID    string           `json:"id"`
	Cells map[string]*Cell `json:"cells"`
}

// NewRow creates an empty row with the given id.
func NewRow(id string) *Row {
	return &Row{ID: id, Cells: map[string]*Cell{}}
}

// Cell returns the cell for the given column id, or nil.
func (r *Row) Cell(columnID string) *Cell {
	if r == nil {
		return nil
	}
	return r.Cells[columnID]
}

// SetCell stores a cell under the given column id, assigning the canonical
// cell id.
func (r *Row) SetCell(columnID string, cell *Cell) {
	cell.ID = CellID(r.ID, columnID)
	r.Cells[columnID] = cell
}

// Copy returns a deep copy of the row.
func (r *Row) Copy() *Row {
	if r == nil {
		return nil
	}
	out := &Row{ID: r.ID, Cells: make(map[string]*Cell, len(r.Cells))}
	for k, c := range r.Cells {
		out.Cells[k] = c.Copy()
	}
	return out
}

// CellID joins a row id and a column id into the backend's cell id form,
// "{row}${column}".
func CellID(rowID, columnID string) string {
	return rowID + constants.CellIDSeparator + columnID
}

// SplitCellID splits a cell id into its row and column parts. ok is false
// when the id does not contain exactly one separator.
func SplitCellID(id string) (rowID, columnID string, ok bool) {
	parts := strings.Split(id, constants.CellIDSeparator)
	if len(parts) != 2 {
		return "", "", false
	}
	return parts[0], parts[1], true
}
