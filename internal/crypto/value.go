// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"reflect"
	"strconv"
)

// Kind discriminates the shape of a [Value].
type Kind uint8

const (
	// KindNull is an absent value (JSON null). The zero [Value] is null.
	KindNull Kind = iota

	// KindScalar is a leaf: a string, a number or a boolean.
	KindScalar

	// KindSequence is an ordered list of values.
	KindSequence

	// KindMapping is a set of string keys mapped to values.
	KindMapping
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindScalar:
		return "scalar"
	case KindSequence:
		return "sequence"
	case KindMapping:
		return "mapping"
	default:
		return "kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a structured record as it flows through the field cipher: a
// tagged variant over null, scalar, sequence and mapping. The shape is fixed
// when the value is built, so the ciphers never inspect dynamic Go types.
//
// Scalars hold exactly one of string, [json.Number] or bool. Numbers are
// kept as their JSON text so large integers survive a round trip unchanged.
//
// Values are immutable once built; the slices and maps returned by
// [Value.Items] and [Value.Fields] must not be modified by callers.
type Value struct {
	kind   Kind
	scalar any
	items  []Value
	fields map[string]Value
}

// Null returns the null value.
func Null() Value {
	return Value{}
}

// String returns a string scalar.
func String(s string) Value {
	return Value{kind: KindScalar, scalar: s}
}

// Number returns a numeric scalar holding n verbatim.
func Number(n json.Number) Value {
	return Value{kind: KindScalar, scalar: n}
}

// Int returns a numeric scalar for an integer.
func Int(i int64) Value {
	return Number(json.Number(strconv.FormatInt(i, 10)))
}

// Bool returns a boolean scalar.
func Bool(b bool) Value {
	return Value{kind: KindScalar, scalar: b}
}

// Sequence returns an ordered sequence of items.
func Sequence(items ...Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return Value{kind: KindSequence, items: cp}
}

// Mapping returns a mapping holding a copy of fields.
func Mapping(fields map[string]Value) Value {
	cp := make(map[string]Value, len(fields))
	for k, v := range fields {
		cp[k] = v
	}
	return Value{kind: KindMapping, fields: cp}
}

// FromAny converts a plain Go tree into a [Value]. It accepts what
// [encoding/json] produces when decoding into any (nil, string, bool,
// float64, [json.Number], []any, map[string]any) plus the integer and float
// kinds, typed slices and string-keyed maps of those.
//
// Returns [ErrUnsupportedValue] for anything else, including NaN and
// infinite floats which have no JSON form.
func FromAny(v any) (Value, error) {
	switch t := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t, nil
	case string:
		return String(t), nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t), nil
	case float64:
		return fromFloat(t)
	case float32:
		return fromFloat(float64(t))
	case int:
		return Int(int64(t)), nil
	case int8:
		return Int(int64(t)), nil
	case int16:
		return Int(int64(t)), nil
	case int32:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case uint:
		return Number(json.Number(strconv.FormatUint(uint64(t), 10))), nil
	case uint8:
		return Int(int64(t)), nil
	case uint16:
		return Int(int64(t)), nil
	case uint32:
		return Int(int64(t)), nil
	case uint64:
		return Number(json.Number(strconv.FormatUint(t, 10))), nil
	case []any:
		items := make([]Value, 0, len(t))
		for i, item := range t {
			converted, err := FromAny(item)
			if err != nil {
				return Value{}, fmt.Errorf("[%d]: %w", i, err)
			}
			items = append(items, converted)
		}
		return Value{kind: KindSequence, items: items}, nil
	case map[string]any:
		fields := make(map[string]Value, len(t))
		for k, item := range t {
			converted, err := FromAny(item)
			if err != nil {
				return Value{}, fmt.Errorf("%s: %w", k, err)
			}
			fields[k] = converted
		}
		return Value{kind: KindMapping, fields: fields}, nil
	}

	return fromReflect(reflect.ValueOf(v))
}

// fromReflect handles typed slices and maps such as []string or
// map[string]int that the type switch in FromAny does not list.
func fromReflect(rv reflect.Value) (Value, error) {
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Null(), nil
		}
		items := make([]Value, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			converted, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return Value{}, fmt.Errorf("[%d]: %w", i, err)
			}
			items = append(items, converted)
		}
		return Value{kind: KindSequence, items: items}, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		if rv.IsNil() {
			return Null(), nil
		}
		fields := make(map[string]Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			converted, err := FromAny(iter.Value().Interface())
			if err != nil {
				return Value{}, fmt.Errorf("%s: %w", iter.Key().String(), err)
			}
			fields[iter.Key().String()] = converted
		}
		return Value{kind: KindMapping, fields: fields}, nil
	case reflect.Pointer:
		if rv.IsNil() {
			return Null(), nil
		}
		return FromAny(rv.Elem().Interface())
	}

	return Value{}, fmt.Errorf("%w: %s", ErrUnsupportedValue, rv.Type())
}

func fromFloat(f float64) (Value, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}, fmt.Errorf("%w: %v", ErrUnsupportedValue, f)
	}
	// json.Marshal yields the shortest text that parses back to f,
	// formatted the same way JSON.stringify does.
	b, err := json.Marshal(f)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %v", ErrUnsupportedValue, err)
	}
	return Number(json.Number(b)), nil
}

// Kind reports the shape of v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// Str returns the string held by a string scalar.
func (v Value) Str() (string, bool) {
	s, ok := v.scalar.(string)
	return s, ok
}

// Num returns the number held by a numeric scalar.
func (v Value) Num() (json.Number, bool) {
	n, ok := v.scalar.(json.Number)
	return n, ok
}

// Boolean returns the bool held by a boolean scalar.
func (v Value) Boolean() (bool, bool) {
	b, ok := v.scalar.(bool)
	return b, ok
}

// Text returns the text form of any scalar: a string as is, a number as its
// JSON text, a bool as "true" or "false". Decrypted fields that were
// strings before encryption but read as JSON (a phone number, a postal code)
// come back as numbers; Text recovers their original text.
func (v Value) Text() (string, bool) {
	switch s := v.scalar.(type) {
	case string:
		return s, true
	case json.Number:
		return string(s), true
	case bool:
		return strconv.FormatBool(s), true
	default:
		return "", false
	}
}

// Items returns the elements of a sequence, or nil for other kinds.
func (v Value) Items() []Value {
	return v.items
}

// Fields returns the entries of a mapping, or nil for other kinds.
func (v Value) Fields() map[string]Value {
	return v.fields
}

// Field returns the value stored under key in a mapping.
func (v Value) Field(key string) (Value, bool) {
	f, ok := v.fields[key]
	return f, ok
}

// Len returns the number of items of a sequence or entries of a mapping.
func (v Value) Len() int {
	switch v.kind {
	case KindSequence:
		return len(v.items)
	case KindMapping:
		return len(v.fields)
	default:
		return 0
	}
}

// Any converts v back into a plain Go tree made of nil, string,
// [json.Number], bool, []any and map[string]any.
func (v Value) Any() any {
	switch v.kind {
	case KindScalar:
		return v.scalar
	case KindSequence:
		out := make([]any, len(v.items))
		for i, item := range v.items {
			out[i] = item.Any()
		}
		return out
	case KindMapping:
		out := make(map[string]any, len(v.fields))
		for k, item := range v.fields {
			out[k] = item.Any()
		}
		return out
	default:
		return nil
	}
}

// Equal reports whether v and other have the same shape and leaves.
// Numbers compare by their JSON text.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}

	switch v.kind {
	case KindNull:
		return true
	case KindScalar:
		return v.scalar == other.scalar
	case KindSequence:
		if len(v.items) != len(other.items) {
			return false
		}
		for i := range v.items {
			if !v.items[i].Equal(other.items[i]) {
				return false
			}
		}
		return true
	case KindMapping:
		if len(v.fields) != len(other.fields) {
			return false
		}
		for k, item := range v.fields {
			o, ok := other.fields[k]
			if !ok || !item.Equal(o) {
				return false
			}
		}
		return true
	}

	return false
}

// MarshalJSON implements [json.Marshaler].
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Any())
}

// UnmarshalJSON implements [json.Unmarshaler]. Numbers are decoded as
// [json.Number].
func (v *Value) UnmarshalJSON(b []byte) error {
	parsed, err := parseJSON(b)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// parseJSON decodes exactly one JSON document into a [Value]. Trailing
// data after the document is an error.
func parseJSON(b []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return Value{}, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Value{}, errTrailingData
	}

	return FromAny(raw)
}
