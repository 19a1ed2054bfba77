// Package services describes the reconciliation and extension services the
// backend exposes: the wire types its list endpoints return, helpers to
// summarize them, and an embedded snapshot of the known catalog for offline
// inspection.
package services

// Param is one form parameter of a service, as the backend's list endpoints
// describe it.
type Param struct {
	ID          string   `json:"id" yaml:"id"`
	Label       string   `json:"label" yaml:"label"`
	Description string   `json:"description" yaml:"description"`
	InfoText    string   `json:"infoText" yaml:"infoText"`
	Rules       []string `json:"rules" yaml:"rules"`
}

// Mandatory reports whether the parameter is required.
func (p Param) Mandatory() bool {
	for _, r := range p.Rules {
		if r == "required" {
			return true
		}
	}
	return false
}

// Service is one reconciliator or extender record.
type Service struct {
	ID          string  `json:"id" yaml:"id"`
	Name        string  `json:"name" yaml:"name"`
	RelativeURL string  `json:"relativeUrl" yaml:"relativeUrl"`
	Description string  `json:"description" yaml:"description"`
	FormParams  []Param `json:"formParams" yaml:"formParams"`
}

// Params splits a service's form parameters into mandatory and optional.
func (s Service) Params() (mandatory, optional []Param) {
	for _, p := range s.FormParams {
		if p.Mandatory() {
			mandatory = append(mandatory, p)
		} else {
			optional = append(optional, p)
		}
	}
	return mandatory, optional
}

// Summary is the condensed service record shown in listings.
type Summary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	RelativeURL string `json:"relativeUrl"`
}

// Clean condenses a service list to its identifying fields.
func Clean(list []Service) []Summary {
	out := make([]Summary, 0, len(list))
	for _, s := range list {
		out = append(out, Summary{ID: s.ID, Name: s.Name, RelativeURL: s.RelativeURL})
	}
	return out
}

// Find returns the service with the given id from a list.
func Find(list []Service, id string) (Service, bool) {
	for _, s := range list {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}
