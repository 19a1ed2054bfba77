package semt

import (
	"context"

	"github.com/semtui/semt/pkg/constants"
	"github.com/semtui/semt/pkg/services"
)

// Reconciliators lists the reconciliation services the backend exposes.
func (c *Client) Reconciliators(ctx context.Context) ([]services.Service, error) {
	var out []services.Service
	if err := c.transport.GetJSON(ctx, constants.ReconciliatorsListPath, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Extenders lists the extension services the backend exposes.
func (c *Client) Extenders(ctx context.Context) ([]services.Service, error) {
	var out []services.Service
	if err := c.transport.GetJSON(ctx, constants.ExtendersListPath, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
