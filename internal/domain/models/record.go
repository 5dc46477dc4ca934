package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Record is one raw report row: a JSON object whose key names vary across
// upstream producers. Key order is preserved exactly as received, because
// field resolution falls back to scanning entries in their native order.
type Record struct {
	keys   []string
	values map[string]any
}

// NewRecord builds a record from ordered key/value pairs. Intended for
// tests and fixtures; duplicate keys keep the first position and the last
// value, matching JSON object semantics.
func NewRecord(pairs ...any) Record {
	if len(pairs)%2 != 0 {
		panic("models.NewRecord: odd number of arguments")
	}
	r := Record{values: make(map[string]any, len(pairs)/2)}
	for i := 0; i < len(pairs); i += 2 {
		k, ok := pairs[i].(string)
		if !ok {
			panic("models.NewRecord: key must be a string")
		}
		r.set(k, pairs[i+1])
	}
	return r
}

func (r *Record) set(key string, v any) {
	if r.values == nil {
		r.values = make(map[string]any)
	}
	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.values[key] = v
}

// Get returns the value for an exact key.
func (r Record) Get(key string) (any, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Keys returns the record's keys in insertion order. Callers must not
// mutate the returned slice.
func (r Record) Keys() []string { return r.keys }

// Len returns the number of entries.
func (r Record) Len() int { return len(r.keys) }

// UnmarshalJSON decodes a JSON object via the token stream so that entry
// order survives the round trip. Numbers decode as float64, everything
// else as the usual encoding/json interface mapping.
func (r *Record) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("record decode: %w", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("record decode: expected object, got %v", tok)
	}

	r.keys = nil
	r.values = make(map[string]any)

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("record decode key: %w", err)
		}
		key := tok.(string)

		var v any
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("record decode value %q: %w", key, err)
		}
		r.set(key, v)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("record decode: %w", err)
	}
	return nil
}

// MarshalJSON re-emits the object with its original key order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range r.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(r.values[k])
		if err != nil {
			return nil, fmt.Errorf("record encode %q: %w", k, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
