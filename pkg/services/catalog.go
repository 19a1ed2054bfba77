package services

import (
	"embed"

	"github.com/goccy/go-yaml"

	"github.com/semtui/semt/pkg/errors"
)

//go:embed catalog/*.yaml
var catalogFS embed.FS

// Catalog groups the known services by family.
type Catalog struct {
	Reconciliators []Service `yaml:"reconciliators"`
	Extenders      []Service `yaml:"extenders"`
}

// Embedded loads the catalog snapshot compiled into the binary. It reflects
// the services known at release time; the backend's list endpoints remain
// the source of truth for a live deployment.
func Embedded() (*Catalog, error) {
	data, err := catalogFS.ReadFile("catalog/services.yaml")
	if err != nil {
		return nil, errors.WrapParse("yaml", "embedded catalog", err)
	}
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, errors.WrapParse("yaml", "embedded catalog", err)
	}
	return &c, nil
}
