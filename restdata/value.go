// Copyright 2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"bytes"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// Kind identifies which alternative of the JSON sum type a Value
// holds.
type Kind int

const (
	// Absent is the zero Value: no JSON document at all, as from an
	// empty response body.  It is distinct from Null.
	Absent Kind = iota
	Null
	Bool
	Number
	String
	Array
	Object
)

var kindNames = []string{"absent", "null", "bool", "number", "string", "array", "object"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}

// Value is an untyped JSON value, carried as its raw encoding.  The
// zero Value is Absent.  Values are immutable.
type Value struct {
	raw []byte
}

// Field is one member of a JSON object, with its value rendered as
// display text.
type Field struct {
	Label string
	Value string
}

// Parse converts text to a Value.  Text that is empty or only
// whitespace yields an Absent value and no error; otherwise the text
// must be a single well-formed JSON document.
func Parse(text string) (Value, error) {
	return ParseBytes([]byte(text))
}

// ParseBytes is Parse for a byte slice.  The slice is copied.
func ParseBytes(text []byte) (Value, error) {
	trimmed := bytes.TrimSpace(text)
	if len(trimmed) == 0 {
		return Value{}, nil
	}
	if !gjson.ValidBytes(trimmed) {
		var scratch interface{}
		err := Unmarshal(trimmed, &scratch)
		return Value{}, ErrInvalidJSON{Err: err}
	}
	raw := make([]byte, len(trimmed))
	copy(raw, trimmed)
	return Value{raw: raw}, nil
}

// ValueOf encodes an arbitrary Go object as a Value.
func ValueOf(in interface{}) (Value, error) {
	raw, err := Marshal(in)
	if err != nil {
		return Value{}, err
	}
	return Value{raw: raw}, nil
}

// TextValue wraps a plain string as a JSON string Value.
func TextValue(s string) Value {
	return Value{raw: gjson.AppendJSONString(nil, s)}
}

// IsAbsent returns true if there is no JSON value at all.
func (v Value) IsAbsent() bool {
	return len(v.raw) == 0
}

// Raw returns the JSON encoding of v, or nil if v is Absent.  The
// caller must not modify the result.
func (v Value) Raw() []byte {
	return v.raw
}

// Kind returns which kind of JSON value v holds.
func (v Value) Kind() Kind {
	if v.IsAbsent() {
		return Absent
	}
	r := gjson.ParseBytes(v.raw)
	switch r.Type {
	case gjson.Null:
		return Null
	case gjson.False, gjson.True:
		return Bool
	case gjson.Number:
		return Number
	case gjson.String:
		return String
	}
	if r.IsArray() {
		return Array
	}
	return Object
}

// Get extracts a nested value using gjson path syntax, for instance
// "next_cursor" or "events.0.id".  A missing path yields Absent.
func (v Value) Get(path string) Value {
	if v.IsAbsent() {
		return Value{}
	}
	r := gjson.GetBytes(v.raw, path)
	if !r.Exists() {
		return Value{}
	}
	return Value{raw: []byte(r.Raw)}
}

// Text renders v as display text: the contents of a string, nothing
// for Absent, and the compact JSON encoding of anything else.
func (v Value) Text() string {
	switch v.Kind() {
	case Absent:
		return ""
	case String:
		return gjson.ParseBytes(v.raw).Str
	}
	return string(pretty.Ugly(v.raw))
}

// Fields lists the members of a JSON object in document order.  Any
// other kind of value has no fields.
func (v Value) Fields() []Field {
	if v.Kind() != Object {
		return nil
	}
	var fields []Field
	gjson.ParseBytes(v.raw).ForEach(func(key, value gjson.Result) bool {
		fields = append(fields, Field{
			Label: key.String(),
			Value: Value{raw: []byte(value.Raw)}.Text(),
		})
		return true
	})
	return fields
}

// Decode decodes v into a typed structure, which must be of pointer
// type.  Returns ErrAbsent if v is Absent.
func (v Value) Decode(out interface{}) error {
	if v.IsAbsent() {
		return ErrAbsent
	}
	return Unmarshal(v.raw, out)
}

// MarshalJSON returns v's own encoding; Absent encodes as null.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.IsAbsent() {
		return []byte("null"), nil
	}
	return v.raw, nil
}

// UnmarshalJSON stores a copy of the encoded value.
func (v *Value) UnmarshalJSON(in []byte) error {
	parsed, err := ParseBytes(in)
	if err == nil {
		*v = parsed
	}
	return err
}

// Pretty renders a value for display.  Absent renders as nothing and
// a string renders as its contents; anything else is indented JSON
// with two spaces per level.
func Pretty(v Value) string {
	switch v.Kind() {
	case Absent:
		return ""
	case String:
		return v.Text()
	}
	out := pretty.PrettyOptions(v.raw, &pretty.Options{Indent: "  "})
	return strings.TrimRight(string(out), "\n")
}
