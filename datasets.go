package semt

import (
	"context"
	"fmt"
)

// Dataset is one dataset record from the backend's listing.
type Dataset struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	NTables          int    `json:"nTables"`
	LastModifiedDate string `json:"lastModifiedDate"`
}

// collection is the backend's list envelope.
type collection[T any] struct {
	Collection []T `json:"collection"`
}

// Datasets lists all datasets visible to the signed-in user.
func (c *Client) Datasets(ctx context.Context) ([]Dataset, error) {
	var out collection[Dataset]
	if err := c.transport.GetJSON(ctx, "api/dataset", nil, &out); err != nil {
		return nil, err
	}
	return out.Collection, nil
}

// DeleteDataset removes a dataset and every table in it.
func (c *Client) DeleteDataset(ctx context.Context, datasetID string) error {
	return c.transport.Delete(ctx, fmt.Sprintf("api/dataset/%s", datasetID), nil, nil)
}
