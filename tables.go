package semt

import (
	"bytes"
	"context"
	"fmt"
	"net/url"

	"github.com/semtui/semt/internal/transport"
	"github.com/semtui/semt/pkg/errors"
	"github.com/semtui/semt/pkg/table"
)

// TableInfo is one table record from a dataset's listing.
type TableInfo struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	NCols               int    `json:"nCols"`
	NRows               int    `json:"nRows"`
	NCells              int    `json:"nCells"`
	NCellsReconciliated int    `json:"nCellsReconciliated"`
	LastModifiedDate    string `json:"lastModifiedDate"`
}

// Tables lists the tables in a dataset.
func (c *Client) Tables(ctx context.Context, datasetID string) ([]TableInfo, error) {
	var out collection[TableInfo]
	if err := c.transport.GetJSON(ctx, fmt.Sprintf("api/dataset/%s/table", datasetID), nil, &out); err != nil {
		return nil, err
	}
	return out.Collection, nil
}

// Table fetches a table as a full document, ready for the annotation
// pipeline.
func (c *Client) Table(ctx context.Context, datasetID, tableID string) (*table.Document, error) {
	var doc table.Document
	if err := c.transport.GetJSON(ctx, fmt.Sprintf("api/dataset/%s/table/%s", datasetID, tableID), nil, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// AddTable uploads a grid as a new CSV table in a dataset and returns the
// new table's id.
func (c *Client) AddTable(ctx context.Context, datasetID, name string, grid *table.Grid) (string, error) {
	data, err := grid.EncodeCSV()
	if err != nil {
		return "", err
	}

	var out struct {
		Tables []TableInfo `json:"tables"`
	}
	err = c.transport.PostMultipart(ctx, fmt.Sprintf("api/dataset/%s/table/", datasetID),
		map[string]string{"name": name},
		[]transport.MultipartField{{Name: "file", Filename: name + ".csv", Content: data}},
		&out)
	if err != nil {
		return "", err
	}
	if len(out.Tables) == 0 {
		return "", &errors.APIError{
			Endpoint: "api/dataset/" + datasetID + "/table/",
			Message:  "upload response carries no table id",
		}
	}

	c.logger.Info().
		Str("dataset", datasetID).
		Str("table", out.Tables[0].ID).
		Str("name", name).
		Msg("table uploaded")
	return out.Tables[0].ID, nil
}

// DeleteTable removes a table from a dataset.
func (c *Client) DeleteTable(ctx context.Context, datasetID, tableID string) error {
	return c.transport.Delete(ctx, fmt.Sprintf("api/dataset/%s/table/%s", datasetID, tableID), nil, nil)
}

// ExportCSV downloads a table in CSV form.
func (c *Client) ExportCSV(ctx context.Context, datasetID, tableID string) (*table.Grid, error) {
	data, err := c.transport.GetRaw(ctx, fmt.Sprintf("api/dataset/%s/table/%s/export", datasetID, tableID),
		url.Values{"format": {"csv"}}, "text/csv")
	if err != nil {
		return nil, err
	}
	return table.ParseCSV(bytes.NewReader(data))
}

// ExportW3C downloads a table in the backend's W3C JSON form and parses it
// into a grid.
func (c *Client) ExportW3C(ctx context.Context, datasetID, tableID string) (*table.Grid, error) {
	data, err := c.transport.GetRaw(ctx, fmt.Sprintf("api/dataset/%s/table/%s/export", datasetID, tableID),
		url.Values{"format": {"w3c"}}, "")
	if err != nil {
		return nil, err
	}
	return table.ParseW3C(data)
}

// PushTable writes a composed backend payload over a table.
func (c *Client) PushTable(ctx context.Context, datasetID, tableID string, payload *table.BackendPayload) error {
	path := fmt.Sprintf("api/dataset/%s/table/%s", datasetID, tableID)
	if err := c.transport.PutJSON(ctx, path, payload, nil); err != nil {
		return err
	}
	c.logger.Info().
		Str("dataset", datasetID).
		Str("table", tableID).
		Int("reconciliated", payload.TableInstance.NCellsReconciliated).
		Msg("table pushed")
	return nil
}
