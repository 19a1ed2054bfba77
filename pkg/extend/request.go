package extend

import (
	"encoding/json"
	"fmt"

	"github.com/semtui/semt/pkg/errors"
	"github.com/semtui/semt/pkg/table"
)

// CellRef is a row's source-cell reference in a reconciled-column request.
// It marshals as the positional triple [label, metadata, column].
type CellRef struct {
	Label    string
	Metadata []table.Entity
	Column   string
}

// MarshalJSON implements json.Marshaler.
func (c CellRef) MarshalJSON() ([]byte, error) {
	metadata := c.Metadata
	if metadata == nil {
		metadata = []table.Entity{}
	}
	return json.Marshal([]any{c.Label, metadata, c.Column})
}

// UnmarshalJSON implements json.Unmarshaler.
func (c *CellRef) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 3 {
		return fmt.Errorf("expected 3-element cell reference, got %d", len(raw))
	}
	if err := json.Unmarshal(raw[0], &c.Label); err != nil {
		return err
	}
	if err := json.Unmarshal(raw[1], &c.Metadata); err != nil {
		return err
	}
	return json.Unmarshal(raw[2], &c.Column)
}

// DateRef is a row's date-cell reference in a time-indexed request. It
// marshals as the positional triple [label, [], column].
type DateRef struct {
	Label  string
	Column string
}

// MarshalJSON implements json.Marshaler.
func (d DateRef) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{d.Label, []any{}, d.Column})
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *DateRef) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if len(raw) != 3 {
		return fmt.Errorf("expected 3-element date reference, got %d", len(raw))
	}
	if err := json.Unmarshal(raw[0], &d.Label); err != nil {
		return err
	}
	return json.Unmarshal(raw[2], &d.Column)
}

// Request is the payload posted to the extension endpoint. The populated
// fields depend on the extender: ReconciledColumn fills Column and Property,
// MeteoOpenMeteo fills Dates, DecimalFormat and WeatherParams. Items maps
// the source column id to the resolved entity id per row for both.
type Request struct {
	ServiceID     string                       `json:"serviceId"`
	Column        map[string]CellRef           `json:"column,omitempty"`
	Property      []string                     `json:"property,omitempty"`
	Dates         map[string]DateRef           `json:"dates,omitempty"`
	DecimalFormat []string                     `json:"decimalFormat,omitempty"`
	WeatherParams []string                     `json:"weatherParams,omitempty"`
	Items         map[string]map[string]string `json:"items"`
}

// BuildRequest builds the extension payload for one reconciled column.
//
// For ReconciledColumn, every row contributes a Column entry, but only rows
// whose source cell holds resolved entities appear in Items. For
// MeteoOpenMeteo, params must name the date column and decimal format, and
// every row's source cell must hold resolved entities.
func BuildRequest(doc *table.Document, columnID string, extender Extender, properties []string, params Params) (*Request, error) {
	if !doc.Columns.Has(columnID) {
		return nil, errors.NewValidationError("column", columnID, "column not found in table")
	}

	switch extender {
	case ReconciledColumn:
		return buildReconciledRequest(doc, columnID, properties)
	case MeteoOpenMeteo:
		return buildMeteoRequest(doc, columnID, properties, params)
	default:
		return nil, errors.NewUnsupportedServiceError(extender.String())
	}
}

func buildReconciledRequest(doc *table.Document, columnID string, properties []string) (*Request, error) {
	req := &Request{
		ServiceID: ReconciledColumn.String(),
		Column:    map[string]CellRef{},
		Property:  properties,
		Items:     map[string]map[string]string{columnID: {}},
	}

	for _, row := range doc.Rows.All() {
		cell := row.Cell(columnID)
		if cell == nil {
			return nil, errors.NewValidationError("column", columnID,
				fmt.Sprintf("row %s has no cell for the column", row.ID))
		}
		req.Column[row.ID] = CellRef{
			Label:    cell.Label,
			Metadata: cell.Metadata,
			Column:   columnID,
		}
		if len(cell.Metadata) > 0 {
			req.Items[columnID][row.ID] = cell.Metadata[0].ID
		}
	}

	return req, nil
}

func buildMeteoRequest(doc *table.Document, columnID string, properties []string, params Params) (*Request, error) {
	if params.DateColumn == "" {
		return nil, errors.NewConfigError("date_column_name", "required for the meteoPropertiesOpenMeteo extender")
	}
	if params.DecimalFormat == "" {
		return nil, errors.NewConfigError("decimal_format", "required for the meteoPropertiesOpenMeteo extender")
	}
	if !doc.Columns.Has(params.DateColumn) {
		return nil, errors.NewValidationError("date_column_name", params.DateColumn, "column not found in table")
	}

	req := &Request{
		ServiceID:     MeteoOpenMeteo.String(),
		Dates:         map[string]DateRef{},
		DecimalFormat: []string{params.DecimalFormat},
		WeatherParams: properties,
		Items:         map[string]map[string]string{columnID: {}},
	}

	for _, row := range doc.Rows.All() {
		cell := row.Cell(columnID)
		if cell == nil || len(cell.Metadata) == 0 {
			return nil, errors.NewValidationError("column", columnID,
				fmt.Sprintf("row %s carries no resolved entity for the column", row.ID))
		}
		req.Items[columnID][row.ID] = cell.Metadata[0].ID

		dateLabel := ""
		if dateCell := row.Cell(params.DateColumn); dateCell != nil {
			dateLabel = dateCell.Label
		}
		req.Dates[row.ID] = DateRef{Label: dateLabel, Column: params.DateColumn}
	}

	return req, nil
}
