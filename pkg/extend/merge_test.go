package extend

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semtui/semt/pkg/errors"
	"github.com/semtui/semt/pkg/table"
)

func weatherResponse(t *testing.T, rows map[string]string) *Response {
	t.Helper()

	resp := &Response{}
	col := ResponseColumn{Label: "precipitation_sum", Cells: map[string]ResponseCell{}}
	for rowID, label := range rows {
		col.Cells[rowID] = ResponseCell{Label: label}
	}
	resp.Columns.Set("City_precipitation_sum", col)
	return resp
}

func TestMergeAddsExtendedColumn(t *testing.T) {
	doc := reconciledDocument(t)
	resp := weatherResponse(t, map[string]string{"r0": "4.2", "r1": "0.0"})

	out, err := Merge(doc, resp, MeteoOpenMeteo)
	require.NoError(t, err)

	col, ok := out.Columns.Get("City_precipitation_sum")
	require.True(t, ok)
	assert.Equal(t, "precipitation_sum", col.Label)
	assert.Equal(t, table.StatusExtended, col.Status)
	assert.Equal(t, table.KindExtended, col.Kind)
	assert.Nil(t, col.Annotation)

	cell := out.Cell("r0", "City_precipitation_sum")
	require.NotNil(t, cell)
	assert.Equal(t, "4.2", cell.Label)
	assert.Equal(t, "r0$City_precipitation_sum", cell.ID)
}

func TestMergeDoesNotMutateInput(t *testing.T) {
	doc := reconciledDocument(t)
	resp := weatherResponse(t, map[string]string{"r0": "4.2"})

	_, err := Merge(doc, resp, MeteoOpenMeteo)
	require.NoError(t, err)

	assert.False(t, doc.Columns.Has("City_precipitation_sum"))
	assert.Nil(t, doc.Cell("r0", "City_precipitation_sum"))
}

func TestMergeUnknownRow(t *testing.T) {
	doc := reconciledDocument(t)
	resp := weatherResponse(t, map[string]string{"r9": "4.2"})

	_, err := Merge(doc, resp, MeteoOpenMeteo)
	assert.True(t, errors.IsMalformedResponse(err))
}

func TestMergeRecomputesShape(t *testing.T) {
	doc := reconciledDocument(t)
	resp := weatherResponse(t, map[string]string{"r0": "4.2", "r1": "0.0"})

	out, err := Merge(doc, resp, MeteoOpenMeteo)
	require.NoError(t, err)

	assert.Equal(t, 3, out.Table.NCols)
	assert.Equal(t, 6, out.Table.NCells)
}

func TestResponseColumnsPreserveWireOrder(t *testing.T) {
	payload := []byte(`{"columns": {
		"zeta": {"label": "zeta", "cells": {}},
		"alpha": {"label": "alpha", "cells": {}},
		"mid": {"label": "mid", "cells": {}}
	}}`)

	var resp Response
	require.NoError(t, json.Unmarshal(payload, &resp))
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, resp.Columns.IDs())
}

func TestMergeCopiesCellMetadata(t *testing.T) {
	doc := reconciledDocument(t)
	resp := &Response{}
	resp.Columns.Set("City_name", ResponseColumn{
		Label: "name",
		Cells: map[string]ResponseCell{
			"r0": {Label: "Paris", Metadata: []table.Entity{{ID: "Q90", Match: true}}},
		},
	})

	out, err := Merge(doc, resp, ReconciledColumn)
	require.NoError(t, err)

	cell := out.Cell("r0", "City_name")
	require.Len(t, cell.Metadata, 1)
	assert.Equal(t, "Q90", cell.Metadata[0].ID)

	cell.Metadata[0].ID = "mutated"
	assert.Equal(t, "Q90", resp.Columns.byID["City_name"].Cells["r0"].Metadata[0].ID)
}
