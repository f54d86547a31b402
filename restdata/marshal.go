// Copyright 2015-2026 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restdata

import (
	"io"
	"reflect"

	"github.com/ugorji/go/codec"
)

// jsonHandle returns the codec settings used for every JSON encoding
// and decoding in this package.  Maps decode as string-keyed maps so
// the results can be handed to mapstructure or re-encoded unchanged,
// and map keys encode in sorted order.
func jsonHandle() *codec.JsonHandle {
	h := &codec.JsonHandle{}
	h.MapType = reflect.TypeOf(map[string]interface{}(nil))
	h.Canonical = true
	return h
}

// Marshal produces the JSON encoding of an arbitrary Go object.  A
// Value is passed through as its own raw encoding.
func Marshal(in interface{}) ([]byte, error) {
	if v, isValue := in.(Value); isValue {
		if v.IsAbsent() {
			return []byte("null"), nil
		}
		return v.Raw(), nil
	}
	var out []byte
	encoder := codec.NewEncoderBytes(&out, jsonHandle())
	err := encoder.Encode(in)
	return out, err
}

// Unmarshal decodes a JSON encoding into out, which must be of
// pointer type.
func Unmarshal(in []byte, out interface{}) error {
	decoder := codec.NewDecoderBytes(in, jsonHandle())
	return decoder.Decode(out)
}

// Decode reads one JSON object from a reader, such as an HTTP request
// body, into out, which must be of pointer type.
func Decode(r io.Reader, out interface{}) error {
	decoder := codec.NewDecoder(r, jsonHandle())
	return decoder.Decode(out)
}
