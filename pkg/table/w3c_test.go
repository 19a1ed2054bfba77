package table

import (
	"archive/zip"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semtui/semt/pkg/errors"
)

func TestParseW3C(t *testing.T) {
	data := []byte(`[
		{"th1": {"label": "Country"}, "th0": {"label": "City"}},
		{"City": {"label": "Paris"}, "Country": {"label": "France"}},
		{"City": {"label": "Rome"}, "Country": {"label": "Italy"}}
	]`)

	grid, err := ParseW3C(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"City", "Country"}, grid.Headers)
	require.Len(t, grid.Rows, 2)
	assert.Equal(t, []string{"Paris", "France"}, grid.Rows[0])
	assert.Equal(t, []string{"Rome", "Italy"}, grid.Rows[1])
}

func TestParseW3CHeaderOrderIsNumeric(t *testing.T) {
	data := []byte(`[
		{"th10": {"label": "K"}, "th2": {"label": "B"}, "th0": {"label": "A"}}
	]`)

	grid, err := ParseW3C(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "K"}, grid.Headers)
}

func TestParseW3CRejectsBadInput(t *testing.T) {
	_, err := ParseW3C([]byte(`not json`))
	assert.Error(t, err)

	_, err = ParseW3C([]byte(`[]`))
	assert.Error(t, err)

	_, err = ParseW3C([]byte(`[{"City": {"label": "no headers"}}]`))
	var parseErr *errors.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestGridCSVRoundTrip(t *testing.T) {
	grid := NewGrid("City", "Country")
	grid.Append("Paris", "France")
	grid.Append("Rome", "Italy")

	data, err := grid.EncodeCSV()
	require.NoError(t, err)

	parsed, err := ParseCSV(strings.NewReader(string(data)))
	require.NoError(t, err)
	assert.Equal(t, grid.Headers, parsed.Headers)
	assert.Equal(t, grid.Rows, parsed.Rows)
}

func TestGridZipCSV(t *testing.T) {
	grid := NewGrid("City")
	grid.Append("Paris")

	data, err := grid.ZipCSV("cities.csv")
	require.NoError(t, err)

	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	require.Len(t, r.File, 1)
	assert.Equal(t, "cities.csv", r.File[0].Name)

	f, err := r.File[0].Open()
	require.NoError(t, err)
	defer f.Close()
	content, err := io.ReadAll(f)
	require.NoError(t, err)
	assert.Equal(t, "City\nParis\n", string(content))
}

func TestGridAppendPadsShortRows(t *testing.T) {
	grid := NewGrid("a", "b", "c")
	grid.Append("1")
	assert.Equal(t, []string{"1", "", ""}, grid.Rows[0])
}
