package reconcile

import (
	"github.com/semtui/semt/pkg/constants"
	"github.com/semtui/semt/pkg/table"
)

// Restructure normalizes merged reconciliation metadata into the nested
// shape the backend persists. For every reconciliated column it wraps the
// metadata entries in a single unmatched placeholder whose entity list
// carries the reshaped entries, recomputes the column's score bounds from
// the true per-cell scores (superseding the sentinel written by Merge), and
// drops the kind marker. Cell metadata under those columns is reshaped entry
// by entry, preserving order and length.
//
// The pass is idempotent: applying it to its own output yields an identical
// document, since reshaping re-derives the same name and URI values and
// already-wrapped column metadata is detected and rebuilt from its entity
// list.
func Restructure(doc *table.Document, service Service) *table.Document {
	out := doc.Copy()

	reconciled := map[string]bool{}
	for _, col := range out.Columns.All() {
		if col.Status == table.StatusReconciliated {
			reconciled[col.ID] = true
		}
	}

	for id := range reconciled {
		col, _ := out.Columns.Get(id)

		entities := columnEntities(col.Metadata)
		reshaped := make([]table.Entity, 0, len(entities))
		for _, e := range entities {
			reshaped = append(reshaped, reshapeEntity(e, false))
		}
		col.Metadata = []table.ColumnMetadata{{
			ID:     constants.UnmatchedEntityID,
			Match:  true,
			Score:  0,
			Name:   table.EntityName{},
			Entity: reshaped,
		}}

		var scores []float64
		for _, row := range out.Rows.All() {
			cell := row.Cell(id)
			if cell != nil && len(cell.Metadata) > 0 {
				scores = append(scores, cell.Metadata[0].Score)
			}
		}
		lowest, highest := 0.0, 0.0
		for i, s := range scores {
			if i == 0 || s < lowest {
				lowest = s
			}
			if i == 0 || s > highest {
				highest = s
			}
		}
		col.Annotation = &table.Annotation{
			Annotated:    true,
			Match:        table.Match{Value: true, Reason: service.String()},
			LowestScore:  lowest,
			HighestScore: highest,
		}
		col.Kind = ""
	}

	for _, row := range out.Rows.All() {
		for columnID, cell := range row.Cells {
			if !reconciled[columnID] {
				continue
			}
			for i, e := range cell.Metadata {
				cell.Metadata[i] = reshapeEntity(e, true)
			}
			if cell.Annotation != nil {
				cell.Annotation.Match = table.Match{Value: true, Reason: service.String()}
				if len(cell.Metadata) > 0 {
					score := cell.Metadata[0].Score
					cell.Annotation.LowestScore = score
					cell.Annotation.HighestScore = score
				}
			}
		}
	}

	return out
}

// Apply merges a reconciliation response and immediately restructures the
// result. Merge alone leaves a sentinel column annotation that only the
// restructuring pass replaces with true score bounds, so the two steps run
// as one operation.
func Apply(doc *table.Document, resp Response, columnID string, service Service) (*table.Document, error) {
	merged, err := Merge(doc, resp, columnID, service)
	if err != nil {
		return nil, err
	}
	return Restructure(merged, service), nil
}

// columnEntities flattens column metadata into raw entities. Already
// restructured metadata is a single placeholder wrapper; its entity list is
// the source of truth then.
func columnEntities(metadata []table.ColumnMetadata) []table.Entity {
	if len(metadata) == 1 && metadata[0].ID == constants.UnmatchedEntityID && metadata[0].Entity != nil {
		return metadata[0].Entity
	}
	out := make([]table.Entity, 0, len(metadata))
	for _, m := range metadata {
		out = append(out, table.Entity{
			ID:    m.ID,
			Name:  m.Name,
			Score: m.Score,
			Match: m.Match,
			Types: m.Types,
		})
	}
	return out
}

// reshapeEntity rebuilds an entity in the backend shape, deriving the name
// URI from the id. Reapplied to its own output it yields the same value.
func reshapeEntity(e table.Entity, keepFeature bool) table.Entity {
	out := table.Entity{
		ID: e.ID,
		Name: table.EntityName{
			Value: e.Name.Value,
			URI:   table.DeriveURI(e.ID),
		},
		Score: e.Score,
		Match: e.Match,
		Types: append([]table.EntityType(nil), e.Types...),
	}
	if keepFeature {
		out.Feature = append([]table.Feature(nil), e.Feature...)
		if out.Feature == nil {
			out.Feature = []table.Feature{}
		}
	}
	return out
}
