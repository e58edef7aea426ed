package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"google.golang.org/protobuf/types/known/structpb"
)

// JSON is an opaque JSON value: null, bool, number, string, list or object.
// It keeps the compact text it was built from, so numbers survive storage and
// transport digit for digit. Value exposes a structpb.Value view for callers
// that need to inspect the kind. The zero value is JSON null.
type JSON struct {
	raw []byte
}

// NewJSON builds a JSON value from plain Go data (maps, slices, strings,
// numbers, bool, nil) as accepted by structpb.NewValue. Integers keep their
// exact value.
func NewJSON(v any) (JSON, error) {
	if _, err := structpb.NewValue(v); err != nil {
		return JSON{}, fmt.Errorf("unsupported json value: %w", err)
	}
	b, err := json.Marshal(v)
	if err != nil {
		return JSON{}, fmt.Errorf("unsupported json value: %w", err)
	}
	return JSON{raw: b}, nil
}

// MustJSON is NewJSON for literals known to be valid.
func MustJSON(v any) JSON {
	j, err := NewJSON(v)
	if err != nil {
		panic(err)
	}
	return j
}

// EmptyObject returns {}.
func EmptyObject() JSON {
	return JSON{raw: []byte("{}")}
}

// ParseJSON decodes JSON text.
func ParseJSON(text []byte) (JSON, error) {
	var j JSON
	if err := j.UnmarshalJSON(text); err != nil {
		return JSON{}, err
	}
	return j, nil
}

func (j JSON) text() []byte {
	if len(j.raw) == 0 {
		return []byte("null")
	}
	return j.raw
}

// Value is a structpb view of j. Numbers in the view are float64, so it is
// for inspection only; it is never nil.
func (j JSON) Value() *structpb.Value {
	var raw any
	if err := json.Unmarshal(j.text(), &raw); err != nil {
		return structpb.NewNullValue()
	}
	pv, err := structpb.NewValue(raw)
	if err != nil {
		return structpb.NewNullValue()
	}
	return pv
}

// IsNull reports whether j is JSON null.
func (j JSON) IsNull() bool {
	return j.text()[0] == 'n'
}

// IsObject reports whether j is a JSON object.
func (j JSON) IsObject() bool {
	return j.text()[0] == '{'
}

// Interface converts j back to plain Go data. Numbers become float64.
func (j JSON) Interface() any {
	return j.Value().AsInterface()
}

// MarshalJSON returns the stored text unchanged.
func (j JSON) MarshalJSON() ([]byte, error) {
	return j.text(), nil
}

// UnmarshalJSON accepts any single JSON value and keeps its compact text.
func (j *JSON) UnmarshalJSON(b []byte) error {
	if !json.Valid(b) {
		return errors.New("malformed json")
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, b); err != nil {
		return fmt.Errorf("malformed json: %w", err)
	}
	j.raw = buf.Bytes()
	return nil
}

// String returns the compact JSON text of j.
func (j JSON) String() string {
	return string(j.text())
}
