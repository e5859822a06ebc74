package extract

import "encoding/json"

// Record is one structured row produced from a candidate element. Fields
// hold string or int values keyed by the schema's field names. Index is the
// zero-based position of the candidate within the source document, counted
// before any validity filtering.
type Record struct {
	Fields map[string]any
	Index  int
}

// NewRecord creates an empty record at the given candidate position.
func NewRecord(index int) *Record {
	return &Record{
		Fields: make(map[string]any),
		Index:  index,
	}
}

// Set sets a field value.
func (r *Record) Set(key string, value any) {
	r.Fields[key] = value
}

// GetString retrieves a field value as a string. Missing or non-string
// fields yield "".
func (r *Record) GetString(key string) string {
	v, ok := r.Fields[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

// GetInt retrieves a field value as an int. Missing or non-int fields
// yield 0.
func (r *Record) GetInt(key string) int {
	v, ok := r.Fields[key]
	if !ok {
		return 0
	}
	n, ok := v.(int)
	if !ok {
		return 0
	}
	return n
}

// ToMap returns a flat copy of the record fields, suitable for export.
func (r *Record) ToMap() map[string]any {
	out := make(map[string]any, len(r.Fields))
	for k, v := range r.Fields {
		out[k] = v
	}
	return out
}

// ToJSON serializes the record fields to JSON bytes.
func (r *Record) ToJSON() ([]byte, error) {
	return json.Marshal(r.Fields)
}
