package table

import (
	"encoding/json"

	"github.com/semtui/semt/pkg/constants"
)

// EntityName is an entity's display name. Enrichment services send it as a
// bare string; the backend persists it as {value, uri}. It unmarshals from
// either form and always marshals as the object form.
type EntityName struct {
	Value string `json:"value"`
	URI   string `json:"uri"`
}

// UnmarshalJSON accepts both the wire string form and the backend object form.
func (n *EntityName) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		n.Value = s
		n.URI = ""
		return nil
	}

	type plain EntityName
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*n = EntityName(p)
	return nil
}

// EntityType is a knowledge-base type attached to an entity.
type EntityType struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Feature is a service-specific matching feature attached to an entity.
type Feature struct {
	ID    string  `json:"id"`
	Value float64 `json:"value"`
}

// Entity is a single resolution candidate for a cell: an opaque external
// identifier (a KB URI or a georss coordinate id), a display name, a
// confidence score and a match decision.
type Entity struct {
	ID      string       `json:"id"`
	Name    EntityName   `json:"name"`
	Score   float64      `json:"score"`
	Match   bool         `json:"match"`
	Types   []EntityType `json:"type,omitempty"`
	Feature []Feature    `json:"feature,omitempty"`
}

// URI derives the entity's link from its id: georss-prefixed ids map onto a
// maps link, anything else has no derivable URI.
func (e Entity) URI() string {
	return DeriveURI(e.ID)
}

// DeriveURI substitutes the georss marker for the maps link prefix. Ids
// without the marker yield an empty URI.
func DeriveURI(id string) string {
	if len(id) >= len(constants.GeoRSSPrefix) && id[:len(constants.GeoRSSPrefix)] == constants.GeoRSSPrefix {
		return constants.MapsPlaceURL + id[len(constants.GeoRSSPrefix):]
	}
	return ""
}

// Match is an annotation's match decision. The reason field is only set by
// the restructuring pass.
type Match struct {
	Value  bool   `json:"value"`
	Reason string `json:"reason,omitempty"`
}

// Annotation records whether and how a cell or column was resolved.
type Annotation struct {
	Annotated    bool    `json:"annotated"`
	Match        Match   `json:"match"`
	LowestScore  float64 `json:"lowestScore"`
	HighestScore float64 `json:"highestScore"`
}
