// Package modify offers small grid transformations applied before upload:
// date normalization, case folding, row filtering and column reshuffling.
// Modifiers take a grid and return a new one; the input is never mutated.
package modify

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/semtui/semt/pkg/errors"
	"github.com/semtui/semt/pkg/table"
)

// Modifier transforms a grid.
type Modifier func(*table.Grid) (*table.Grid, error)

// dateLayouts are the input formats ISODate accepts, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02T15:04:05",
	"02/01/2006",
	"01/02/2006",
	"02-01-2006",
	"2006/01/02",
	"January 2, 2006",
	"2 January 2006",
}

// ISODate converts a date column to ISO 8601 (YYYY-MM-DD) form. Values that
// match none of the accepted layouts fail the whole transformation.
func ISODate(column string) Modifier {
	return func(g *table.Grid) (*table.Grid, error) {
		idx := g.ColumnIndex(column)
		if idx < 0 {
			return nil, errors.NewValidationError("column", column, "column not found in grid")
		}
		out := copyGrid(g)
		for i, row := range out.Rows {
			value, err := parseDate(row[idx])
			if err != nil {
				return nil, errors.NewValidationError(column, out.Rows[i][idx], "unrecognized date format")
			}
			out.Rows[i][idx] = value.Format("2006-01-02")
		}
		return out, nil
	}
}

// LowerCase folds a column's values to lower case using Unicode case rules.
func LowerCase(column string) Modifier {
	caser := cases.Lower(language.Und)
	return func(g *table.Grid) (*table.Grid, error) {
		idx := g.ColumnIndex(column)
		if idx < 0 {
			return nil, errors.NewValidationError("column", column, "column not found in grid")
		}
		out := copyGrid(g)
		for i := range out.Rows {
			out.Rows[i][idx] = caser.String(out.Rows[i][idx])
		}
		return out, nil
	}
}

// DropEmpty removes rows with at least one empty value.
func DropEmpty() Modifier {
	return func(g *table.Grid) (*table.Grid, error) {
		out := table.NewGrid(g.Headers...)
		for _, row := range g.Rows {
			keep := true
			for _, v := range row {
				if v == "" {
					keep = false
					break
				}
			}
			if keep {
				out.Append(row...)
			}
		}
		return out, nil
	}
}

// RenameColumns renames headers according to the mapping. Headers absent
// from the mapping keep their name; mapping keys absent from the grid fail.
func RenameColumns(mapping map[string]string) Modifier {
	return func(g *table.Grid) (*table.Grid, error) {
		for old := range mapping {
			if g.ColumnIndex(old) < 0 {
				return nil, errors.NewValidationError("column", old, "column not found in grid")
			}
		}
		out := copyGrid(g)
		for i, h := range out.Headers {
			if renamed, ok := mapping[h]; ok {
				out.Headers[i] = renamed
			}
		}
		return out, nil
	}
}

// ReorderColumns rearranges the grid to the given header order, which must
// name every existing column exactly once.
func ReorderColumns(order []string) Modifier {
	return func(g *table.Grid) (*table.Grid, error) {
		if len(order) != len(g.Headers) {
			return nil, errors.NewValidationError("order", order, "order must name every column")
		}
		indices := make([]int, len(order))
		for i, h := range order {
			idx := g.ColumnIndex(h)
			if idx < 0 {
				return nil, errors.NewValidationError("column", h, "column not found in grid")
			}
			indices[i] = idx
		}

		out := table.NewGrid(order...)
		for _, row := range g.Rows {
			reordered := make([]string, len(indices))
			for i, idx := range indices {
				reordered[i] = row[idx]
			}
			out.Rows = append(out.Rows, reordered)
		}
		return out, nil
	}
}

// Apply runs modifiers in sequence, stopping at the first failure.
func Apply(g *table.Grid, modifiers ...Modifier) (*table.Grid, error) {
	out := g
	for _, m := range modifiers {
		var err error
		if out, err = m(out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func parseDate(value string) (time.Time, error) {
	var err error
	for _, layout := range dateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

func copyGrid(g *table.Grid) *table.Grid {
	out := table.NewGrid(g.Headers...)
	out.Rows = make([][]string, len(g.Rows))
	for i, row := range g.Rows {
		out.Rows[i] = append([]string(nil), row...)
	}
	return out
}
