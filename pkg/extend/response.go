package extend

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/semtui/semt/pkg/table"
)

// ResponseCell is one returned value: a display label plus entity metadata
// copied verbatim into the new cell.
type ResponseCell struct {
	Label    string         `json:"label"`
	Metadata []table.Entity `json:"metadata"`
}

// ResponseColumn is one derived column of an extension response.
type ResponseColumn struct {
	Label string                  `json:"label"`
	Cells map[string]ResponseCell `json:"cells"`
}

// ResponseColumns holds the derived columns in the order the service sent
// them. The merge appends columns in this order, so it must survive JSON
// decoding.
type ResponseColumns struct {
	ids  []string
	byID map[string]ResponseColumn
}

// IDs returns the column ids in wire order.
func (c *ResponseColumns) IDs() []string {
	return append([]string(nil), c.ids...)
}

// Get returns the column with the given id.
func (c *ResponseColumns) Get(id string) (ResponseColumn, bool) {
	col, ok := c.byID[id]
	return col, ok
}

// Set appends or replaces a column, keeping wire order for new ids.
func (c *ResponseColumns) Set(id string, col ResponseColumn) {
	if c.byID == nil {
		c.byID = map[string]ResponseColumn{}
	}
	if _, exists := c.byID[id]; !exists {
		c.ids = append(c.ids, id)
	}
	c.byID[id] = col
}

// UnmarshalJSON implements json.Unmarshaler preserving key order.
func (c *ResponseColumns) UnmarshalJSON(data []byte) error {
	*c = ResponseColumns{byID: map[string]ResponseColumn{}}

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
		var col ResponseColumn
		if err := dec.Decode(&col); err != nil {
			return err
		}
		c.Set(key, col)
	}

	_, err = dec.Token()
	return err
}

// MarshalJSON implements json.Marshaler preserving wire order.
func (c *ResponseColumns) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, id := range c.ids {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(id)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(c.byID[id])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Response is the extension service's reply: the derived columns keyed by
// their new column id.
type Response struct {
	Columns ResponseColumns `json:"columns"`
}
