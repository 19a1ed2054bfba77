package semt

import (
	"context"

	"github.com/google/uuid"

	"github.com/semtui/semt/pkg/constants"
	"github.com/semtui/semt/pkg/reconcile"
	"github.com/semtui/semt/pkg/table"
)

// Result is the outcome of a reconcile or extend operation: the annotated
// document and the backend-update payload composed from it.
type Result struct {
	Document *table.Document
	Payload  *table.BackendPayload
}

// Reconcile resolves one column of a document against a reconciliation
// service and returns the annotated document with its backend payload. The
// input document is left untouched; on any failure no partial annotation
// escapes.
//
// Two-part services need the two auxiliary location columns named in
// optionalColumns.
func (c *Client) Reconcile(ctx context.Context, doc *table.Document, columnID string, service reconcile.Service, optionalColumns []string) (*Result, error) {
	log := c.logger.With().
		Str("operation", uuid.NewString()).
		Str("service", service.String()).
		Str("column", columnID).
		Logger()

	req, err := reconcile.BuildRequest(doc, columnID, service, optionalColumns)
	if err != nil {
		return nil, err
	}
	log.Debug().Int("items", len(req.Items)).Msg("reconciliation request built")

	var resp reconcile.Response
	if err := c.transport.PostJSON(ctx, constants.ReconciliatorsPath+service.String(), req, &resp); err != nil {
		return nil, err
	}
	log.Debug().Int("results", len(resp)).Msg("reconciliation response received")

	annotated, err := reconcile.Apply(doc, resp, columnID, service)
	if err != nil {
		return nil, err
	}

	payload := table.Compose(annotated)
	log.Info().
		Int("reconciliated", payload.TableInstance.NCellsReconciliated).
		Msg("column reconciled")

	return &Result{Document: annotated, Payload: payload}, nil
}
