package table

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// orderedMap is a string-keyed map that remembers insertion order. The
// backend's allIds lists mirror JSON object order, so column and row maps
// must survive a JSON round trip without reordering, which a plain Go map
// cannot do.
type orderedMap[T any] struct {
	ids  []string
	byID map[string]T
}

func newOrderedMap[T any]() orderedMap[T] {
	return orderedMap[T]{byID: map[string]T{}}
}

func (m *orderedMap[T]) len() int {
	return len(m.ids)
}

func (m *orderedMap[T]) get(id string) (T, bool) {
	v, ok := m.byID[id]
	return v, ok
}

// set stores a value, appending the key to the order only when it is new.
func (m *orderedMap[T]) set(id string, v T) {
	if m.byID == nil {
		m.byID = map[string]T{}
	}
	if _, exists := m.byID[id]; !exists {
		m.ids = append(m.ids, id)
	}
	m.byID[id] = v
}

func (m *orderedMap[T]) keys() []string {
	return append([]string(nil), m.ids...)
}

func (m *orderedMap[T]) marshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range m.ids {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(m.byID[id])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// unmarshalJSON reads the object with a token decoder so key order is
// preserved.
func (m *orderedMap[T]) unmarshalJSON(data []byte) error {
	*m = newOrderedMap[T]()

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected JSON object, got %v", tok)
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected string key, got %v", keyTok)
		}
		var v T
		if err := dec.Decode(&v); err != nil {
			return err
		}
		m.set(key, v)
	}

	_, err = dec.Token() // closing brace
	return err
}

// Columns is the ordered column map of a document, keyed by column id.
type Columns struct {
	m orderedMap[*Column]
}

// NewColumns creates an empty column map.
func NewColumns() *Columns {
	return &Columns{m: newOrderedMap[*Column]()}
}

// Len returns the number of columns.
func (c *Columns) Len() int { return c.m.len() }

// Get returns the column with the given id.
func (c *Columns) Get(id string) (*Column, bool) { return c.m.get(id) }

// Has reports whether a column with the given id exists.
func (c *Columns) Has(id string) bool {
	_, ok := c.m.get(id)
	return ok
}

// Set stores a column under its id, preserving declaration order for new ids.
func (c *Columns) Set(col *Column) { c.m.set(col.ID, col) }

// IDs returns the column ids in declaration order.
func (c *Columns) IDs() []string { return c.m.keys() }

// All returns the columns in declaration order.
func (c *Columns) All() []*Column {
	out := make([]*Column, 0, c.m.len())
	for _, id := range c.m.ids {
		out = append(out, c.m.byID[id])
	}
	return out
}

// Copy returns a deep copy of the column map.
func (c *Columns) Copy() *Columns {
	out := NewColumns()
	for _, id := range c.m.ids {
		out.m.set(id, c.m.byID[id].Copy())
	}
	return out
}

// MarshalJSON implements json.Marshaler preserving declaration order.
func (c *Columns) MarshalJSON() ([]byte, error) { return c.m.marshalJSON() }

// UnmarshalJSON implements json.Unmarshaler preserving declaration order.
func (c *Columns) UnmarshalJSON(data []byte) error { return c.m.unmarshalJSON(data) }

// Rows is the ordered row map of a document, keyed by row id.
type Rows struct {
	m orderedMap[*Row]
}

// NewRows creates an empty row map.
func NewRows() *Rows {
	return &Rows{m: newOrderedMap[*Row]()}
}

// Len returns the number of rows.
func (r *Rows) Len() int { return r.m.len() }

// Get returns the row with the given id.
func (r *Rows) Get(id string) (*Row, bool) { return r.m.get(id) }

// Has reports whether a row with the given id exists.
func (r *Rows) Has(id string) bool {
	_, ok := r.m.get(id)
	return ok
}

// Set stores a row under its id, preserving insertion order for new ids.
func (r *Rows) Set(row *Row) { r.m.set(row.ID, row) }

// IDs returns the row ids in table order.
func (r *Rows) IDs() []string { return r.m.keys() }

// All returns the rows in table order.
func (r *Rows) All() []*Row {
	out := make([]*Row, 0, r.m.len())
	for _, id := range r.m.ids {
		out = append(out, r.m.byID[id])
	}
	return out
}

// Copy returns a deep copy of the row map.
func (r *Rows) Copy() *Rows {
	out := NewRows()
	for _, id := range r.m.ids {
		out.m.set(id, r.m.byID[id].Copy())
	}
	return out
}

// MarshalJSON implements json.Marshaler preserving insertion order.
func (r *Rows) MarshalJSON() ([]byte, error) { return r.m.marshalJSON() }

// UnmarshalJSON implements json.Unmarshaler preserving insertion order.
func (r *Rows) UnmarshalJSON(data []byte) error { return r.m.unmarshalJSON(data) }
