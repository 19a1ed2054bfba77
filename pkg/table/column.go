package table

// ColumnStatus describes how far a column has progressed through the
// enrichment pipeline.
type ColumnStatus string

// Column statuses
const (
	StatusEmpty         ColumnStatus = "empty"
	StatusExtended      ColumnStatus = "extended"
	StatusReconciliated ColumnStatus = "reconciliated"
)

// Column kinds. Kind is only meaningful before the restructuring pass, which
// removes it.
const (
	KindEntity   = "entity"
	KindExtended = "extended"
)

// Context is service-specific side information attached to a reconciled
// column, such as the geocoding link template and reconciliation totals.
type Context struct {
	URI           string `json:"uri"`
	Total         int    `json:"total"`
	Reconciliated int    `json:"reconciliated"`
}

// ColumnMetadata is one entry of a column's metadata list. Before
// restructuring it holds a raw service entity; after restructuring the list
// collapses to a single unmatched placeholder whose Entity field carries the
// reshaped entity list.
type ColumnMetadata struct {
	ID     string       `json:"id"`
	Name   EntityName   `json:"name"`
	Score  float64      `json:"score"`
	Match  bool         `json:"match"`
	Types  []EntityType `json:"type,omitempty"`
	Entity []Entity     `json:"entity,omitempty"`
}

// Column is a table column with its enrichment state.
type Column struct {
	ID         string             `json:"id"`
	Label      string             `json:"label"`
	Status     ColumnStatus       `json:"status"`
	Kind       string             `json:"kind,omitempty"`
	Context    map[string]Context `json:"context"`
	Metadata   []ColumnMetadata   `json:"metadata"`
	Annotation *Annotation        `json:"annotationMeta,omitempty"`
}

// NewColumn creates an empty column with the given id. Label defaults to the
// id, matching how the backend names freshly imported columns.
func NewColumn(id string) *Column {
	return &Column{
		ID:       id,
		Label:    id,
		Status:   StatusEmpty,
		Context:  map[string]Context{},
		Metadata: []ColumnMetadata{},
	}
}

// Copy returns a deep copy of the column.
func (c *Column) Copy() *Column {
	if c == nil {
		return nil
	}
	out := *c
	out.Context = make(map[string]Context, len(c.Context))
	for k, v := range c.Context {
		out.Context[k] = v
	}
	out.Metadata = copyColumnMetadata(c.Metadata)
	if c.Annotation != nil {
		ann := *c.Annotation
		out.Annotation = &ann
	}
	return &out
}

func copyColumnMetadata(in []ColumnMetadata) []ColumnMetadata {
	if in == nil {
		return nil
	}
	out := make([]ColumnMetadata, len(in))
	for i, m := range in {
		out[i] = m
		out[i].Types = append([]EntityType(nil), m.Types...)
		out[i].Entity = CopyEntities(m.Entity)
	}
	return out
}

// CopyEntities returns a deep copy of an entity list.
func CopyEntities(in []Entity) []Entity {
	if in == nil {
		return nil
	}
	out := make([]Entity, len(in))
	for i, e := range in {
		out[i] = e
		out[i].Types = append([]EntityType(nil), e.Types...)
		out[i].Feature = append([]Feature(nil), e.Feature...)
	}
	return out
}
