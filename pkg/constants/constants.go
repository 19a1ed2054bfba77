// Package constants provides shared constants used throughout the semt
// codebase. This includes timeouts, backend API paths, and the wire-format
// markers used by the annotation pipeline.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to the backend
	DefaultHTTPTimeout = 30 * time.Second

	// UploadTimeout is the timeout for table uploads (multipart CSV)
	UploadTimeout = 2 * time.Minute

	// ExportTimeout is the timeout for table export downloads
	ExportTimeout = 2 * time.Minute
)

// Backend API paths, relative to the base URL
const (
	// APIPrefix is prepended to every backend endpoint
	APIPrefix = "api/"

	// SignInPath is the authentication endpoint
	SignInPath = "auth/signin"

	// ReconciliatorsListPath lists the available reconciliation services
	ReconciliatorsListPath = "api/reconciliators/list"

	// ReconciliatorsPath is the prefix reconciliation requests are posted under
	ReconciliatorsPath = "api/reconciliators/"

	// ExtendersListPath lists the available extension services
	ExtendersListPath = "api/extenders/list"

	// ExtendersPath is the endpoint extension requests are posted to
	ExtendersPath = "api/extenders"
)

// Annotation constants define the wire-format markers used when composing
// annotated tables.
const (
	// CellIDSeparator joins a row id and a column id into a cell id
	CellIDSeparator = "$"

	// GeoRSSPrefix marks entity ids that carry coordinates
	GeoRSSPrefix = "georss:"

	// MapsPlaceURL is the link prefix substituted for GeoRSSPrefix when
	// deriving an entity URI
	MapsPlaceURL = "https://www.google.com/maps/place/"

	// GeoRSSContextURI is the fixed context descriptor URI written onto
	// reconciled columns
	GeoRSSContextURI = "http://www.google.com/maps/place/"

	// GeoRSSContextKey is the context map key for the geospatial descriptor
	GeoRSSContextKey = "georss"

	// UnmatchedEntityID is the placeholder entity id prepended to a
	// reconciled column's metadata during restructuring
	UnmatchedEntityID = "None:"

	// TimestampFormat is the backend's last-modified timestamp layout,
	// ISO-8601 with milliseconds in UTC
	TimestampFormat = "2006-01-02T15:04:05.000Z"
)

// Score bound defaults used when a table has no annotated cells. The
// asymmetric defaults keep an empty score range from reading as contradictory.
const (
	// DefaultMinMetaScore is the minimum metadata score for unannotated tables
	DefaultMinMetaScore = 0

	// DefaultMaxMetaScore is the maximum metadata score for unannotated tables
	DefaultMaxMetaScore = 1
)
