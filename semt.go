// Package semt is a Go client for the SemTUI semantic table enrichment
// backend. It signs in, moves tables in and out of datasets, and drives the
// annotation pipeline: reconciling columns against external knowledge bases,
// extending reconciled columns with derived properties, and composing the
// update payload the backend persists.
//
// Basic usage:
//
//	client, err := semt.New("https://semtui.example.org",
//		semt.WithCredentials("user", "secret"))
//	if err != nil {
//		return err
//	}
//	result, err := client.Reconcile(ctx, doc, "City", reconcile.Geonames, nil)
//
// The pure payload transformations live in pkg/table, pkg/reconcile and
// pkg/extend and are usable without a Client.
package semt
