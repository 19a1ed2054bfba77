// Package extend builds extension requests from a table document and merges
// extension-service responses back as new derived columns.
package extend

import (
	"github.com/semtui/semt/pkg/errors"
)

// Extender identifies a supported extension service. The set is closed:
// unknown ids fail at parse time.
type Extender string

// Supported extension services.
const (
	// ReconciledColumn copies properties of the entities a reconciled
	// column resolved to into new columns.
	ReconciledColumn Extender = "reconciledColumnExt"

	// MeteoOpenMeteo fetches weather observations per location and date
	// from the Open-Meteo archive.
	MeteoOpenMeteo Extender = "meteoPropertiesOpenMeteo"
)

// ParseExtender validates an extender id string.
func ParseExtender(id string) (Extender, error) {
	switch Extender(id) {
	case ReconciledColumn, MeteoOpenMeteo:
		return Extender(id), nil
	default:
		return "", errors.NewUnsupportedServiceError(id)
	}
}

// String returns the extender's wire id.
func (e Extender) String() string {
	return string(e)
}

// Params carries the extender-specific parameters beyond the property list.
// MeteoOpenMeteo requires both fields; ReconciledColumn ignores them.
type Params struct {
	// DateColumn names the column holding the observation date for each row.
	DateColumn string

	// DecimalFormat selects the decimal separator of returned values, for
	// example "comma".
	DecimalFormat string
}
