// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gflags

import (
	"cmp"
	"fmt"
	"math"
	"strconv"
)

// Kind identifies which payload a Value holds.
type Kind uint8

// Kinds are ordered; Compare orders values of different kinds by Kind.
const (
	KindInvalid Kind = iota
	KindBool
	KindInt32
	KindInt64
	KindUint64
	KindDouble
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt32:
		return "int32"
	case KindInt64:
		return "int64"
	case KindUint64:
		return "uint64"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	default:
		return "invalid"
	}
}

// Type is the set of native Go types a flag may hold.
type Type interface {
	bool | int32 | int64 | uint64 | float64 | string
}

// Value holds exactly one of bool, int32, int64, uint64, float64 or string.
// The zero Value is invalid.
type Value struct {
	kind Kind
	b    bool
	i    int64
	u    uint64
	f    float64
	s    string
}

func BoolValue(b bool) Value      { return Value{kind: KindBool, b: b} }
func Int32Value(i int32) Value    { return Value{kind: KindInt32, i: int64(i)} }
func Int64Value(i int64) Value    { return Value{kind: KindInt64, i: i} }
func Uint64Value(u uint64) Value  { return Value{kind: KindUint64, u: u} }
func DoubleValue(f float64) Value { return Value{kind: KindDouble, f: f} }
func StringValue(s string) Value  { return Value{kind: KindString, s: s} }

// ValueOf wraps a native value.
func ValueOf[T Type](v T) Value {
	switch x := any(v).(type) {
	case bool:
		return BoolValue(x)
	case int32:
		return Int32Value(x)
	case int64:
		return Int64Value(x)
	case uint64:
		return Uint64Value(x)
	case float64:
		return DoubleValue(x)
	case string:
		return StringValue(x)
	}
	panic("unreachable")
}

// KindFor returns the Kind that holds values of type T.
func KindFor[T Type]() Kind {
	var zero T
	return ValueOf(zero).kind
}

// Get unwraps v as a T. It returns ErrVariantMismatch when v does not hold a T.
func Get[T Type](v Value) (T, error) {
	var zero T
	if v.kind != KindFor[T]() {
		return zero, ErrVariantMismatch
	}
	return v.Interface().(T), nil
}

// Kind returns the kind of payload v holds.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v holds a payload.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

func (v Value) AsBool() (bool, error) {
	if v.kind != KindBool {
		return false, ErrVariantMismatch
	}
	return v.b, nil
}

func (v Value) AsInt32() (int32, error) {
	if v.kind != KindInt32 {
		return 0, ErrVariantMismatch
	}
	return int32(v.i), nil
}

func (v Value) AsInt64() (int64, error) {
	if v.kind != KindInt64 {
		return 0, ErrVariantMismatch
	}
	return v.i, nil
}

func (v Value) AsUint64() (uint64, error) {
	if v.kind != KindUint64 {
		return 0, ErrVariantMismatch
	}
	return v.u, nil
}

func (v Value) AsDouble() (float64, error) {
	if v.kind != KindDouble {
		return 0, ErrVariantMismatch
	}
	return v.f, nil
}

func (v Value) AsString() (string, error) {
	if v.kind != KindString {
		return "", ErrVariantMismatch
	}
	return v.s, nil
}

// Interface returns the payload as its native Go type, or nil for the zero
// Value.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt32:
		return int32(v.i)
	case KindInt64:
		return v.i
	case KindUint64:
		return v.u
	case KindDouble:
		return v.f
	case KindString:
		return v.s
	default:
		return nil
	}
}

// Equal reports whether v and o hold the same kind and payload. Like float64
// comparison, a NaN double is not equal to itself.
func (v Value) Equal(o Value) bool {
	c, ok := v.Compare(o)
	return ok && c == 0
}

// Compare orders v and o: first by Kind, then by payload. The second result
// is false when the values are unordered, which only happens when a double
// is NaN.
func (v Value) Compare(o Value) (int, bool) {
	if v.kind != o.kind {
		return cmp.Compare(v.kind, o.kind), true
	}
	switch v.kind {
	case KindBool:
		switch {
		case v.b == o.b:
			return 0, true
		case !v.b:
			return -1, true
		default:
			return 1, true
		}
	case KindInt32, KindInt64:
		return cmp.Compare(v.i, o.i), true
	case KindUint64:
		return cmp.Compare(v.u, o.u), true
	case KindDouble:
		if math.IsNaN(v.f) || math.IsNaN(o.f) {
			return 0, false
		}
		return cmp.Compare(v.f, o.f), true
	case KindString:
		return cmp.Compare(v.s, o.s), true
	default:
		return 0, true
	}
}

// String renders v the way it appears in help text and diagnostics.
func (v Value) String() string {
	return Render(v)
}

// Render returns the textual form of v. Strings are double-quoted with Go
// escaping; every other kind renders as its literal.
func Render(v Value) string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt32, KindInt64:
		return strconv.FormatInt(v.i, 10)
	case KindUint64:
		return strconv.FormatUint(v.u, 10)
	case KindDouble:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.s)
	default:
		return "<invalid>"
	}
}

// parseValue parses text as a literal of the given kind.
func parseValue(kind Kind, text string) (Value, error) {
	switch kind {
	case KindBool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return Value{}, err
		}
		return BoolValue(b), nil
	case KindInt32:
		i, err := strconv.ParseInt(text, 10, 32)
		if err != nil {
			return Value{}, err
		}
		return Int32Value(int32(i)), nil
	case KindInt64:
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Value{}, err
		}
		return Int64Value(i), nil
	case KindUint64:
		u, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return Value{}, err
		}
		return Uint64Value(u), nil
	case KindDouble:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Value{}, err
		}
		return DoubleValue(f), nil
	case KindString:
		return StringValue(text), nil
	default:
		return Value{}, fmt.Errorf("cannot parse into %v", kind)
	}
}
