package table

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityNameUnmarshalWireString(t *testing.T) {
	var e Entity
	require.NoError(t, json.Unmarshal([]byte(`{"id":"Q90","name":"Paris","score":0.95,"match":true}`), &e))

	assert.Equal(t, "Paris", e.Name.Value)
	assert.Empty(t, e.Name.URI)
	assert.Equal(t, 0.95, e.Score)
}

func TestEntityNameUnmarshalBackendObject(t *testing.T) {
	var e Entity
	require.NoError(t, json.Unmarshal([]byte(`{"id":"georss:1,2","name":{"value":"Paris","uri":"https://www.google.com/maps/place/1,2"}}`), &e))

	assert.Equal(t, "Paris", e.Name.Value)
	assert.Equal(t, "https://www.google.com/maps/place/1,2", e.Name.URI)
}

func TestDeriveURI(t *testing.T) {
	assert.Equal(t, "https://www.google.com/maps/place/48.85,2.35", DeriveURI("georss:48.85,2.35"))
	assert.Empty(t, DeriveURI("Q90"))
	assert.Empty(t, DeriveURI(""))
}

func TestSplitCellID(t *testing.T) {
	rowID, columnID, ok := SplitCellID("r0$City")
	require.True(t, ok)
	assert.Equal(t, "r0", rowID)
	assert.Equal(t, "City", columnID)

	_, _, ok = SplitCellID("r0-City")
	assert.False(t, ok)

	_, _, ok = SplitCellID("r0$City$extra")
	assert.False(t, ok)
}

func TestCellAnnotated(t *testing.T) {
	var nilCell *Cell
	assert.False(t, nilCell.Annotated())
	assert.False(t, (&Cell{}).Annotated())
	assert.False(t, (&Cell{Annotation: &Annotation{}}).Annotated())
	assert.True(t, (&Cell{Annotation: &Annotation{Annotated: true}}).Annotated())
}
