package models

import (
	"errors"
	"fmt"
)

// Field names held by every Record
const (
	FieldA = "data_a"
	FieldB = "data_b"
)

// Fields lists the record's fields in display order.
var Fields = []string{FieldA, FieldB}

// ErrUnknownField is returned when a field name is not part of the record.
var ErrUnknownField = errors.New("unknown field")

// Record is the flat key/value document shared by every view.
// Keys other than the known fields are kept so they survive a save.
type Record map[string]string

// NewRecord returns the default record with every field empty.
func NewRecord() Record {
	r := make(Record, len(Fields))
	r.Normalize()
	return r
}

// Normalize adds any missing field with an empty value.
func (r Record) Normalize() {
	for _, name := range Fields {
		if _, ok := r[name]; !ok {
			r[name] = ""
		}
	}
}

// Get returns the value of a field, or "" when unset.
func (r Record) Get(name string) string {
	return r[name]
}

func (r Record) Set(name, value string) error {
	if !IsField(name) {
		return fmt.Errorf("set %q: %w", name, ErrUnknownField)
	}
	r[name] = value
	return nil
}

// Clone copies the record so callers can hand it across boundaries.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

func IsField(name string) bool {
	for _, f := range Fields {
		if f == name {
			return true
		}
	}
	return false
}
