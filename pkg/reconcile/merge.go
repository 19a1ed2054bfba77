package reconcile

import (
	"fmt"
	"time"

	"github.com/semtui/semt/pkg/constants"
	"github.com/semtui/semt/pkg/errors"
	"github.com/semtui/semt/pkg/table"
)

// timeNow is swapped out in tests for deterministic timestamps.
var timeNow = time.Now

// Merge folds a reconciliation response into a copy of the document and
// returns it. The input document is never mutated, so a malformed response
// aborts the merge without leaving a partially annotated table behind.
//
// The response must contain the column summary item (id equal to columnID);
// every other item annotates one cell. nCellsReconciliated is set to the
// number of cell items processed, not incremented onto the prior value.
func Merge(doc *table.Document, resp Response, columnID string, service Service) (*table.Document, error) {
	col, ok := doc.Columns.Get(columnID)
	if !ok {
		return nil, errors.NewValidationError("column", columnID, "column not found in table")
	}

	var summary *ResponseItem
	for i := range resp {
		if resp[i].ID == columnID {
			summary = &resp[i]
			break
		}
	}
	if summary == nil {
		return nil, errors.NewResponseError(service.String(), columnID, "column summary item missing from response")
	}

	out := doc.Copy()

	merged := col.Copy()
	merged.Status = table.StatusReconciliated
	merged.Kind = table.KindEntity
	merged.Context = map[string]table.Context{
		constants.GeoRSSContextKey: {
			URI:           constants.GeoRSSContextURI,
			Total:         len(resp) - 1,
			Reconciliated: len(resp) - 1,
		},
	}
	merged.Annotation = &table.Annotation{
		Annotated:    true,
		Match:        table.Match{Value: true},
		LowestScore:  1,
		HighestScore: 1,
	}
	merged.Metadata = columnMetadataFromEntities(summary.Metadata)
	out.Columns.Set(merged)

	annotated := 0
	for _, item := range resp {
		if item.ID == columnID {
			continue
		}

		rowID, cellColumnID, ok := table.SplitCellID(item.ID)
		if !ok {
			return nil, errors.NewResponseError(service.String(), item.ID, "item id is not a row$column cell id")
		}
		row, ok := out.Rows.Get(rowID)
		if !ok {
			return nil, errors.NewResponseError(service.String(), item.ID, fmt.Sprintf("unknown row %q", rowID))
		}
		cell := row.Cell(cellColumnID)
		if cell == nil {
			return nil, errors.NewResponseError(service.String(), item.ID, fmt.Sprintf("unknown cell column %q", cellColumnID))
		}
		if len(item.Metadata) == 0 {
			return nil, errors.NewResponseError(service.String(), item.ID, "cell item carries no candidate entities")
		}

		best := item.Metadata[0]
		cell.Metadata = []table.Entity{best}
		cell.Annotation = &table.Annotation{
			Annotated:    true,
			Match:        table.Match{Value: best.Match},
			LowestScore:  best.Score,
			HighestScore: best.Score,
		}
		annotated++
	}

	out.Table.NCellsReconciliated = annotated
	out.Table.LastModifiedDate = timeNow().UTC().Format(constants.TimestampFormat)

	return out, nil
}

func columnMetadataFromEntities(entities []table.Entity) []table.ColumnMetadata {
	out := make([]table.ColumnMetadata, 0, len(entities))
	for _, e := range entities {
		out = append(out, table.ColumnMetadata{
			ID:    e.ID,
			Name:  e.Name,
			Score: e.Score,
			Match: e.Match,
			Types: append([]table.EntityType(nil), e.Types...),
		})
	}
	return out
}
