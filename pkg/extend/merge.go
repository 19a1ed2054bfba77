package extend

import (
	"fmt"

	"github.com/semtui/semt/pkg/errors"
	"github.com/semtui/semt/pkg/table"
)

// Merge adds the derived columns of an extension response to a copy of the
// document and returns it. The input document is never mutated, so a
// response row that does not exist in the table aborts the merge without
// leaving a half-extended table behind.
func Merge(doc *table.Document, resp *Response, extender Extender) (*table.Document, error) {
	out := doc.Copy()

	for _, columnID := range resp.Columns.IDs() {
		data, _ := resp.Columns.Get(columnID)

		out.Columns.Set(&table.Column{
			ID:       columnID,
			Label:    data.Label,
			Status:   table.StatusExtended,
			Kind:     table.KindExtended,
			Context:  map[string]table.Context{},
			Metadata: []table.ColumnMetadata{},
		})

		for rowID, cellData := range data.Cells {
			row, ok := out.Rows.Get(rowID)
			if !ok {
				return nil, errors.NewResponseError(extender.String(), table.CellID(rowID, columnID),
					fmt.Sprintf("unknown row %q", rowID))
			}
			row.SetCell(columnID, &table.Cell{
				Label:    cellData.Label,
				Metadata: table.CopyEntities(cellData.Metadata),
			})
		}
	}

	out.Table.NCols = out.Columns.Len()
	out.Table.NCells = out.Columns.Len() * out.Rows.Len()

	return out, nil
}
