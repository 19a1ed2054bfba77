// Package reconcile builds reconciliation requests from a table document,
// merges service responses back as cell annotations, and restructures the
// merged metadata into the shape the backend persists.
package reconcile

import (
	"github.com/semtui/semt/pkg/errors"
)

// Service identifies a supported reconciliation service. The set is closed:
// unknown ids fail at parse time instead of silently producing a payload the
// service cannot interpret.
type Service string

// Supported reconciliation services.
const (
	// GeocodingHERE resolves place names to coordinates via the HERE API.
	// Requires two auxiliary location columns.
	GeocodingHERE Service = "geocodingHere"

	// GeocodingGeonames resolves place names to coordinates via GeoNames.
	// Requires two auxiliary location columns.
	GeocodingGeonames Service = "geocodingGeonames"

	// Geonames resolves place names to GeoNames entities directly.
	Geonames Service = "geonames"
)

// ParseService validates a service id string.
func ParseService(id string) (Service, error) {
	switch Service(id) {
	case GeocodingHERE, GeocodingGeonames, Geonames:
		return Service(id), nil
	default:
		return "", errors.NewUnsupportedServiceError(id)
	}
}

// String returns the service's wire id.
func (s Service) String() string {
	return string(s)
}

// TwoPart reports whether the service requires the two auxiliary geographic
// context columns carried in the secondPart and thirdPart request maps.
func (s Service) TwoPart() bool {
	return s == GeocodingHERE || s == GeocodingGeonames
}
