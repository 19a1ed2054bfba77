package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semtui/semt/pkg/constants"
	"github.com/semtui/semt/pkg/table"
)

func geocodedDocument(t *testing.T) *table.Document {
	t.Helper()
	fixedTime(t)

	resp := Response{
		{ID: "City", Metadata: []table.Entity{{
			ID:    "georss:48.85,2.35",
			Name:  table.EntityName{Value: "Paris"},
			Score: 0.95,
			Match: true,
		}}},
		{ID: "r0$City", Metadata: []table.Entity{{
			ID:    "georss:48.85,2.35",
			Name:  table.EntityName{Value: "Paris"},
			Score: 0.95,
			Match: true,
		}}},
		{ID: "r1$City", Metadata: []table.Entity{{
			ID:    "Q220",
			Name:  table.EntityName{Value: "Rome"},
			Score: 0.40,
			Match: false,
		}}},
	}

	out, err := Merge(cityDocument(t), resp, "City", GeocodingHERE)
	require.NoError(t, err)
	return out
}

func TestRestructureWrapsColumnMetadata(t *testing.T) {
	out := Restructure(geocodedDocument(t), GeocodingHERE)

	col, _ := out.Columns.Get("City")
	require.Len(t, col.Metadata, 1)

	wrapper := col.Metadata[0]
	assert.Equal(t, constants.UnmatchedEntityID, wrapper.ID)
	assert.True(t, wrapper.Match)
	assert.Equal(t, 0.0, wrapper.Score)
	assert.Equal(t, table.EntityName{}, wrapper.Name)

	require.Len(t, wrapper.Entity, 1)
	entity := wrapper.Entity[0]
	assert.Equal(t, "georss:48.85,2.35", entity.ID)
	assert.Equal(t, "Paris", entity.Name.Value)
	assert.Equal(t, "https://www.google.com/maps/place/48.85,2.35", entity.Name.URI)
}

func TestRestructureURIOnlyForGeoRSS(t *testing.T) {
	out := Restructure(geocodedDocument(t), GeocodingHERE)

	r1 := out.Cell("r1", "City")
	require.Len(t, r1.Metadata, 1)
	assert.Empty(t, r1.Metadata[0].Name.URI)

	r0 := out.Cell("r0", "City")
	require.Len(t, r0.Metadata, 1)
	assert.Equal(t, "https://www.google.com/maps/place/48.85,2.35", r0.Metadata[0].Name.URI)
}

func TestRestructureRecomputesColumnScores(t *testing.T) {
	out := Restructure(geocodedDocument(t), GeocodingHERE)

	col, _ := out.Columns.Get("City")
	require.NotNil(t, col.Annotation)
	assert.Equal(t, 0.40, col.Annotation.LowestScore)
	assert.Equal(t, 0.95, col.Annotation.HighestScore)
	assert.Equal(t, table.Match{Value: true, Reason: "geocodingHere"}, col.Annotation.Match)
	assert.Empty(t, col.Kind)
}

func TestRestructureUpdatesCellAnnotations(t *testing.T) {
	out := Restructure(geocodedDocument(t), GeocodingHERE)

	r1 := out.Cell("r1", "City")
	require.NotNil(t, r1.Annotation)
	assert.Equal(t, table.Match{Value: true, Reason: "geocodingHere"}, r1.Annotation.Match)
	assert.Equal(t, 0.40, r1.Annotation.LowestScore)
	assert.Equal(t, 0.40, r1.Annotation.HighestScore)
}

func TestRestructureIsIdempotent(t *testing.T) {
	once := Restructure(geocodedDocument(t), GeocodingHERE)
	twice := Restructure(once, GeocodingHERE)

	onceCol, _ := once.Columns.Get("City")
	twiceCol, _ := twice.Columns.Get("City")
	assert.Equal(t, onceCol, twiceCol)

	assert.Equal(t, once.Cell("r0", "City"), twice.Cell("r0", "City"))
	assert.Equal(t, once.Cell("r1", "City"), twice.Cell("r1", "City"))
}

func TestApplyRunsMergeAndRestructure(t *testing.T) {
	fixedTime(t)

	out, err := Apply(cityDocument(t), parisResponse(), "City", Geonames)
	require.NoError(t, err)

	col, _ := out.Columns.Get("City")
	assert.Equal(t, 0.95, col.Annotation.HighestScore)
	assert.Equal(t, "geonames", col.Annotation.Match.Reason)
	assert.Equal(t, 1, out.Table.NCellsReconciliated)
}

func TestApplyAbortsOnMalformedResponse(t *testing.T) {
	doc := cityDocument(t)

	_, err := Apply(doc, Response{{ID: "r0$City"}}, "City", Geonames)
	require.Error(t, err)
	assert.Nil(t, doc.Cell("r0", "City").Annotation)
}
