package table

import (
	"github.com/semtui/semt/pkg/constants"
)

// ColumnIndex is the backend's normalized column index: the ordered column
// map plus its ids in declaration order.
type ColumnIndex struct {
	ByID   *Columns `json:"byId"`
	AllIDs []string `json:"allIds"`
}

// RowIndex is the backend's normalized row index.
type RowIndex struct {
	ByID   *Rows    `json:"byId"`
	AllIDs []string `json:"allIds"`
}

// BackendPayload is the update payload the persistence backend expects:
// the table metadata with freshly recomputed aggregates, and the columns and
// rows keyed by id with their order preserved in allIds.
type BackendPayload struct {
	TableInstance Meta        `json:"tableInstance"`
	Columns       ColumnIndex `json:"columns"`
	Rows          RowIndex    `json:"rows"`
}

// Compose assembles the backend-update payload from a document. The
// reconciled-cell count and metadata score bounds are recomputed from the
// per-cell annotations here, never trusted from the incoming metadata, so
// the payload can be composed from any document regardless of which pipeline
// produced it.
func Compose(doc *Document) *BackendPayload {
	instance := doc.Table

	n := 0
	first := true
	var minScore, maxScore float64
	for _, row := range doc.Rows.All() {
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
	if first {
		minScore = constants.DefaultMinMetaScore
		maxScore = constants.DefaultMaxMetaScore
	}

	instance.NCellsReconciliated = n
	instance.MinMetaScore = minScore
	instance.MaxMetaScore = maxScore

	return &BackendPayload{
		TableInstance: instance,
		Columns: ColumnIndex{
			ByID:   doc.Columns,
			AllIDs: doc.Columns.IDs(),
		},
		Rows: RowIndex{
			ByID:   doc.Rows,
			AllIDs: doc.Rows.IDs(),
		},
	}
}
