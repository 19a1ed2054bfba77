package extend

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/semtui/semt/pkg/errors"
	"github.com/semtui/semt/pkg/table"
)

// reconciledDocument returns a table whose City column is resolved for r0
// but not for r1.
func reconciledDocument(t *testing.T) *table.Document {
	t.Helper()

	doc := table.NewDocument(table.Meta{
		ID:        "tab_1",
		DatasetID: "ds_1",
		Name:      "cities",
		NCols:     2,
		NRows:     2,
		NCells:    4,
	})
	doc.Columns.Set(table.NewColumn("City"))
	doc.Columns.Set(table.NewColumn("Date"))

	r0 := table.NewRow("r0")
	r0.SetCell("City", &table.Cell{
		Label: "Paris",
		Metadata: []table.Entity{{
			ID:    "georss:48.85,2.35",
			Name:  table.EntityName{Value: "Paris"},
			Score: 0.95,
			Match: true,
		}},
	})
	r0.SetCell("Date", &table.Cell{Label: "2024-05-17"})
	doc.Rows.Set(r0)

	r1 := table.NewRow("r1")
	r1.SetCell("City", &table.Cell{Label: "NoMatch"})
	r1.SetCell("Date", &table.Cell{Label: "2024-05-18"})
	doc.Rows.Set(r1)

	return doc
}

func TestParseExtender(t *testing.T) {
	for _, id := range []string{"reconciledColumnExt", "meteoPropertiesOpenMeteo"} {
		ext, err := ParseExtender(id)
		require.NoError(t, err)
		assert.Equal(t, id, ext.String())
	}

	_, err := ParseExtender("wikidataPropertySPARQL")
	assert.True(t, errors.IsUnsupportedService(err))
}

func TestBuildReconciledRequestOmitsUnresolvedRows(t *testing.T) {
	doc := reconciledDocument(t)

	req, err := BuildRequest(doc, "City", ReconciledColumn, []string{"id", "name"}, Params{})
	require.NoError(t, err)

	items := req.Items["City"]
	assert.Equal(t, "georss:48.85,2.35", items["r0"])
	_, hasR1 := items["r1"]
	assert.False(t, hasR1)

	assert.Len(t, req.Column, 2)
	assert.Equal(t, "NoMatch", req.Column["r1"].Label)
	assert.Equal(t, []string{"id", "name"}, req.Property)
}

func TestCellRefWireFormat(t *testing.T) {
	data, err := json.Marshal(CellRef{Label: "NoMatch", Column: "City"})
	require.NoError(t, err)
	assert.JSONEq(t, `["NoMatch", [], "City"]`, string(data))
}

func TestBuildMeteoRequest(t *testing.T) {
	doc := reconciledDocument(t)

	// r1 has no resolved entity, which the meteo extender cannot tolerate.
	_, err := BuildRequest(doc, "City", MeteoOpenMeteo,
		[]string{"precipitation_sum"},
		Params{DateColumn: "Date", DecimalFormat: "comma"})
	assert.True(t, errors.IsConfig(err))

	r1, _ := doc.Rows.Get("r1")
	r1.Cell("City").Metadata = []table.Entity{{ID: "georss:41.89,12.48"}}

	req, err := BuildRequest(doc, "City", MeteoOpenMeteo,
		[]string{"precipitation_sum", "precipitation_hours"},
		Params{DateColumn: "Date", DecimalFormat: "comma"})
	require.NoError(t, err)

	assert.Equal(t, []string{"comma"}, req.DecimalFormat)
	assert.Equal(t, []string{"precipitation_sum", "precipitation_hours"}, req.WeatherParams)
	assert.Equal(t, DateRef{Label: "2024-05-17", Column: "Date"}, req.Dates["r0"])
	assert.Equal(t, "georss:41.89,12.48", req.Items["City"]["r1"])
}

func TestBuildMeteoRequestRequiresParams(t *testing.T) {
	doc := reconciledDocument(t)

	_, err := BuildRequest(doc, "City", MeteoOpenMeteo, nil, Params{DecimalFormat: "comma"})
	assert.True(t, errors.IsConfig(err))

	_, err = BuildRequest(doc, "City", MeteoOpenMeteo, nil, Params{DateColumn: "Date"})
	assert.True(t, errors.IsConfig(err))
}

func TestBuildRequestUnknownColumn(t *testing.T) {
	_, err := BuildRequest(reconciledDocument(t), "Missing", ReconciledColumn, nil, Params{})
	assert.True(t, errors.IsConfig(err))
}
