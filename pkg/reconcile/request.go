package reconcile

import (
	"encoding/json"
	"fmt"

	"github.com/semtui/semt/pkg/errors"
	"github.com/semtui/semt/pkg/table"
)

// Item is one entry of a reconciliation request: either the column summary
// (id and label both the column id) or a cell (id "{row}${column}", label the
// cell value).
type Item struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Part is an auxiliary context value for a two-part service. It marshals as
// the positional triple [value, [], column] the services expect.
type Part struct {
	Value  string
	Column string
}

// MarshalJSON implements json.Marshaler.
func (p Part) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{p.Value, []any{}, p.Column})
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Part) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 3 {
		return fmt.Errorf("expected 3-element part, got %d", len(raw))
	}
	if err := json.Unmarshal(raw[0], &p.Value); err != nil {
		return err
	}
	return json.Unmarshal(raw[2], &p.Column)
}

// Request is the payload posted to a reconciliation service.
type Request struct {
	ServiceID  string          `json:"serviceId"`
	Items      []Item          `json:"items"`
	SecondPart map[string]Part `json:"secondPart"`
	ThirdPart  map[string]Part `json:"thirdPart"`
}

// BuildRequest builds the reconciliation payload for one column. Item 0 is
// the column summary; the remaining items carry one cell per row in table
// order. For two-part services, optionalColumns must name exactly two
// auxiliary columns whose values fill the secondPart and thirdPart maps;
// missing auxiliary cell values default to the empty string.
func BuildRequest(doc *table.Document, columnID string, service Service, optionalColumns []string) (*Request, error) {
	if !doc.Columns.Has(columnID) {
		return nil, errors.NewValidationError("column", columnID, "column not found in table")
	}
	if service.TwoPart() && len(optionalColumns) != 2 {
		return nil, errors.NewConfigError("optionalColumns",
			fmt.Sprintf("service %s requires exactly two auxiliary columns, got %d", service, len(optionalColumns)))
	}

	req := &Request{
		ServiceID:  service.String(),
		Items:      []Item{{ID: columnID, Label: columnID}},
		SecondPart: map[string]Part{},
		ThirdPart:  map[string]Part{},
	}

	for _, row := range doc.Rows.All() {
		label := ""
		if cell := row.Cell(columnID); cell != nil {
			label = cell.Label
		}
		req.Items = append(req.Items, Item{
			ID:    table.CellID(row.ID, columnID),
			Label: label,
		})

		if service.TwoPart() {
			req.SecondPart[row.ID] = Part{Value: cellLabel(row, optionalColumns[0]), Column: optionalColumns[0]}
			req.ThirdPart[row.ID] = Part{Value: cellLabel(row, optionalColumns[1]), Column: optionalColumns[1]}
		}
	}

	return req, nil
}

func cellLabel(row *table.Row, columnID string) string {
	if cell := row.Cell(columnID); cell != nil {
		return cell.Label
	}
	return ""
}
