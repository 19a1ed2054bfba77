package reconcile

import "github.com/semtui/semt/pkg/table"

// ResponseItem is one entry of a reconciliation service's response: the
// column summary (id equal to the column id) or a cell result (id of the
// form "{row}${column}") with its candidate entities.
type ResponseItem struct {
	ID       string         `json:"id"`
	Metadata []table.Entity `json:"metadata"`
}

// Response is the full service response, one item per submitted request item
// that resolved.
type Response []ResponseItem
