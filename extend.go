package semt

import (
	"context"

	"github.com/google/uuid"

	"github.com/semtui/semt/pkg/constants"
	"github.com/semtui/semt/pkg/extend"
	"github.com/semtui/semt/pkg/table"
)

// ExtendColumn enriches a reconciled column with derived property columns
// from an extension service and returns the extended document with its
// backend payload. The input document is left untouched.
func (c *Client) ExtendColumn(ctx context.Context, doc *table.Document, columnID string, extender extend.Extender, properties []string, params extend.Params) (*Result, error) {
	log := c.logger.With().
		Str("operation", uuid.NewString()).
		Str("service", extender.String()).
		Str("column", columnID).
		Logger()

	req, err := extend.BuildRequest(doc, columnID, extender, properties, params)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("properties", len(properties)).Msg("extension request built")

	var resp extend.Response
	if err := c.transport.PostJSON(ctx, constants.ExtendersPath, req, &resp); err != nil {
		return nil, err
	}
	log.Debug().Int("columns", len(resp.Columns.IDs())).Msg("extension response received")

	extended, err := extend.Merge(doc, &resp, extender)
	if err != nil {
		return nil, err
	}

	payload := table.Compose(extended)
	log.Info().
		Int("columns", len(resp.Columns.IDs())).
		Msg("column extended")

	return &Result{Document: extended, Payload: payload}, nil
}
