// Package record implements the flat, ordered key/value record a flattened
// form submission is reduced to before it is posted to the remote platform.
package record

import (
	"net/url"
	"sort"
	"strconv"
)

// Value is a resolved record value: a plain string, an int flag, a sequence
// of strings (multiselect, flat list fields), or a sequence of string rows
// keyed by column name (multi-column list fields).
type Value any

// Row is one row of a multi-column list value.
type Row = map[string]string

// Record is an insertion-ordered mapping from resolved labels (or synthetic
// positional keys) to resolved values. Overwriting an existing key keeps its
// original position; merging follows the host platform's array-merge rules so
// the posted payload matches what the original integration produced.
type Record struct {
	keys   []string
	values map[string]Value
	next   int
}

// New returns an empty record.
func New() *Record {
	return &Record{values: make(map[string]Value)}
}

// Set stores value under key, last write wins. A key set twice keeps the
// position of its first insertion.
func (r *Record) Set(key string, value Value) {
	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
		if n, err := strconv.Atoi(key); err == nil && n >= r.next {
			r.next = n + 1
		}
	}
	r.values[key] = value
}

// Append stores value under the next synthetic positional key, mirroring the
// host platform's `array[] = value` behavior for label-less inputs.
func (r *Record) Append(value Value) {
	key := strconv.Itoa(r.next)
	r.next++
	r.keys = append(r.keys, key)
	r.values[key] = value
}

// Get returns the value stored under key.
func (r *Record) Get(key string) (Value, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Len returns the number of entries.
func (r *Record) Len() int {
	return len(r.keys)
}

// Keys returns the record keys in insertion order.
func (r *Record) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Values returns the record values in insertion order.
func (r *Record) Values() []Value {
	out := make([]Value, 0, len(r.keys))
	for _, key := range r.keys {
		out = append(out, r.values[key])
	}
	return out
}

// Merge folds other into r using array-merge semantics: string keys
// overwrite, positional (all-digit) keys are appended with fresh indexes.
// Collisions are silently last-write-wins; callers that care about the
// footgun observe it through tests, not runtime checks.
func (r *Record) Merge(other *Record) {
	if other == nil {
		return
	}
	for _, key := range other.keys {
		value := other.values[key]
		if isPositionalKey(key) {
			r.Append(value)
			continue
		}
		r.Set(key, value)
	}
}

func isPositionalKey(key string) bool {
	if key == "" {
		return false
	}
	for _, c := range key {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// Encode serializes the record into url.Values the way PHP's
// http_build_query would: scalar values map directly, sequences expand to
// `key[0]`, `key[1]`, … and rows to `key[0][column]`. Row columns are sorted
// for deterministic output.
func (r *Record) Encode() url.Values {
	vals := url.Values{}
	for _, key := range r.keys {
		encodeValue(vals, key, r.values[key])
	}
	return vals
}

func encodeValue(vals url.Values, key string, value Value) {
	switch v := value.(type) {
	case string:
		vals.Set(key, v)
	case int:
		vals.Set(key, strconv.Itoa(v))
	case []string:
		for i, item := range v {
			vals.Set(key+"["+strconv.Itoa(i)+"]", item)
		}
	case []Row:
		for i, row := range v {
			cols := make([]string, 0, len(row))
			for col := range row {
				cols = append(cols, col)
			}
			sort.Strings(cols)
			for _, col := range cols {
				vals.Set(key+"["+strconv.Itoa(i)+"]["+col+"]", row[col])
			}
		}
	default:
		// Unknown value shapes should not reach the wire; drop them rather
		// than guess an encoding.
	}
}
