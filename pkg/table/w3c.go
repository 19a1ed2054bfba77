package table

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/semtui/semt/pkg/errors"
)

// Grid is a plain rectangular view of a table: ordered headers plus string
// rows. It is what the backend's W3C JSON export parses into, and the input
// shape for CSV uploads and the modify helpers.
type Grid struct {
	Headers []string
	Rows    [][]string
}

// NewGrid creates a grid with the given headers.
func NewGrid(headers ...string) *Grid {
	return &Grid{Headers: append([]string(nil), headers...)}
}

// ColumnIndex returns the position of a header, or -1.
func (g *Grid) ColumnIndex(header string) int {
	for i, h := range g.Headers {
		if h == header {
			return i
		}
	}
	return -1
}

// Append adds a row. Short rows are padded with empty strings.
func (g *Grid) Append(row ...string) {
	for len(row) < len(g.Headers) {
		row = append(row, "")
	}
	g.Rows = append(g.Rows, row)
}

// w3cValue is one labeled value of the W3C export format.
type w3cValue struct {
	Label string `json:"label"`
}

// ParseW3C parses the backend's W3C JSON export into a Grid. The export is a
// list of objects: the first carries the header labels under th<N> keys, the
// rest carry one value per column keyed by column label.
func ParseW3C(data []byte) (*Grid, error) {
	var items []map[string]w3cValue
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, errors.WrapParse("json", "w3c export", err)
	}
	if len(items) == 0 {
		return nil, errors.NewParseError("json", "w3c export", "empty export", nil)
	}

	headerKeys := make([]string, 0, len(items[0]))
	for key := range items[0] {
		if strings.HasPrefix(key, "th") {
			headerKeys = append(headerKeys, key)
		}
	}
	if len(headerKeys) == 0 {
		return nil, errors.NewParseError("json", "w3c export", "no th header keys in first item", nil)
	}

	// th keys carry a numeric position: th0, th1, ...
	sort.Slice(headerKeys, func(i, j int) bool {
		a, _ := strconv.Atoi(strings.TrimPrefix(headerKeys[i], "th"))
		b, _ := strconv.Atoi(strings.TrimPrefix(headerKeys[j], "th"))
		return a < b
	})

	grid := &Grid{Headers: make([]string, 0, len(headerKeys))}
	for _, key := range headerKeys {
		grid.Headers = append(grid.Headers, items[0][key].Label)
	}

	for _, item := range items[1:] {
		row := make([]string, 0, len(grid.Headers))
		for _, header := range grid.Headers {
			row = append(row, item[header].Label)
		}
		grid.Rows = append(grid.Rows, row)
	}

	return grid, nil
}
