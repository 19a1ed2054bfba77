package table

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"io"

	"github.com/semtui/semt/pkg/errors"
)

// EncodeCSV renders the grid as CSV, headers first.
func (g *Grid) EncodeCSV() ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(g.Headers); err != nil {
		return nil, err
	}
	for _, row := range g.Rows {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ParseCSV reads a CSV document into a grid. The first record becomes the
// headers; short records are padded to the header width.
func ParseCSV(r io.Reader) (*Grid, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.WrapParse("csv", "table data", err)
	}
	if len(records) == 0 {
		return nil, errors.NewParseError("csv", "table data", "no header record", nil)
	}

	grid := NewGrid(records[0]...)
	for _, record := range records[1:] {
		grid.Append(record...)
	}
	return grid, nil
}

// ZipCSV packages the grid as a single CSV entry inside a zip archive, the
// format the backend accepts for compressed uploads.
func (g *Grid) ZipCSV(filename string) ([]byte, error) {
	data, err := g.EncodeCSV()
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	entry, err := w.Create(filename)
	if err != nil {
		return nil, err
	}
	if _, err := entry.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
