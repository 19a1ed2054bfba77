package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedCatalog(t *testing.T) {
	catalog, err := Embedded()
	require.NoError(t, err)

	ids := func(list []Service) []string {
		out := make([]string, 0, len(list))
		for _, s := range list {
			out = append(out, s.ID)
		}
		return out
	}

	assert.ElementsMatch(t, []string{"geocodingHere", "geocodingGeonames", "geonames"}, ids(catalog.Reconciliators))
	assert.ElementsMatch(t, []string{"reconciledColumnExt", "meteoPropertiesOpenMeteo"}, ids(catalog.Extenders))
}

func TestParamsSplit(t *testing.T) {
	catalog, err := Embedded()
	require.NoError(t, err)

	meteo, ok := Find(catalog.Extenders, "meteoPropertiesOpenMeteo")
	require.True(t, ok)

	mandatory, optional := meteo.Params()
	mandatoryIDs := make([]string, 0, len(mandatory))
	for _, p := range mandatory {
		mandatoryIDs = append(mandatoryIDs, p.ID)
	}
	assert.ElementsMatch(t, []string{"dates", "weatherParams"}, mandatoryIDs)
	require.Len(t, optional, 1)
	assert.Equal(t, "decimalFormat", optional[0].ID)
}

func TestClean(t *testing.T) {
	list := []Service{
		{ID: "a", Name: "A", RelativeURL: "/a", Description: "long text", FormParams: []Param{{ID: "p"}}},
	}

	summaries := Clean(list)
	require.Len(t, summaries, 1)
	assert.Equal(t, Summary{ID: "a", Name: "A", RelativeURL: "/a"}, summaries[0])
}

func TestFind(t *testing.T) {
	list := []Service{{ID: "a"}, {ID: "b"}}

	_, ok := Find(list, "b")
	assert.True(t, ok)
	_, ok = Find(list, "z")
	assert.False(t, ok)
}
