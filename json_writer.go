package dashboard

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// jsonObjectWriter builds a JSON object whose properties keep the order they
// are written in. The zero value is an empty object.
//
// The first error is kept and returned by MarshalJSON, following calls do
// nothing.
type jsonObjectWriter struct {
	buf bytes.Buffer
	err error
}

func (w *jsonObjectWriter) property(key string, raw []byte) {
	if w.buf.Len() > 0 {
		w.buf.WriteByte(',')
	}
	k, _ := json.Marshal(key)
	w.buf.Write(k)
	w.buf.WriteByte(':')
	w.buf.Write(raw)
}

// Append writes key with the JSON encoding of value.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	raw, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("cannot encode property %q: %w", key, err)
		return w
	}
	w.property(key, raw)
	return w
}

// Optional is Append, skipped for the zero value of any type.
func (w *jsonObjectWriter) Optional(key string, value any) *jsonObjectWriter {
	if v := reflect.ValueOf(value); !v.IsValid() || v.IsZero() {
		return w
	}
	return w.Append(key, value)
}

// EmbedFrom writes all the properties of v, that must encode as a JSON object.
func (w *jsonObjectWriter) EmbedFrom(v any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	raw, err := json.Marshal(v)
	if err != nil {
		w.err = fmt.Errorf("cannot encode embedded value: %w", err)
		return w
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) < 2 || raw[0] != '{' || raw[len(raw)-1] != '}' {
		w.err = fmt.Errorf("cannot embed %s: not a json object", raw)
		return w
	}
	if inner := bytes.TrimSpace(raw[1 : len(raw)-1]); len(inner) > 0 {
		if w.buf.Len() > 0 {
			w.buf.WriteByte(',')
		}
		w.buf.Write(inner)
	}
	return w
}

// MarshalJSON returns the object written so far.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	out := make([]byte, 0, w.buf.Len()+2)
	out = append(out, '{')
	out = append(out, w.buf.Bytes()...)
	return append(out, '}'), nil
}
