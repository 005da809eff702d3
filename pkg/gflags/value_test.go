// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gflags

import (
	"errors"
	"math"
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		v    Value
		want string
	}{
		{BoolValue(true), "true"},
		{BoolValue(false), "false"},
		{Int32Value(-7), "-7"},
		{Int64Value(1 << 40), "1099511627776"},
		{Uint64Value(math.MaxUint64), "18446744073709551615"},
		{DoubleValue(0.25), "0.25"},
		{DoubleValue(3), "3"},
		{StringValue("hi"), `"hi"`},
		{StringValue(""), `""`},
		{StringValue("a\"b\n"), `"a\"b\n"`},
		{Value{}, "<invalid>"},
	}
	for _, tt := range tests {
		if got := Render(tt.v); got != tt.want {
			t.Errorf("Render(%#v) = %q, want %q", tt.v.Interface(), got, tt.want)
		}
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestValueAccessors(t *testing.T) {
	v := Int32Value(5)
	if got, err := v.AsInt32(); err != nil || got != 5 {
		t.Errorf("AsInt32() = %v, %v; want 5, nil", got, err)
	}
	if _, err := v.AsInt64(); !errors.Is(err, ErrVariantMismatch) {
		t.Errorf("AsInt64() error = %v, want ErrVariantMismatch", err)
	}
	if _, err := v.AsBool(); !errors.Is(err, ErrVariantMismatch) {
		t.Errorf("AsBool() error = %v, want ErrVariantMismatch", err)
	}
	if _, err := v.AsString(); !errors.Is(err, ErrVariantMismatch) {
		t.Errorf("AsString() error = %v, want ErrVariantMismatch", err)
	}
	if got, err := StringValue("x").AsString(); err != nil || got != "x" {
		t.Errorf("AsString() = %q, %v; want \"x\", nil", got, err)
	}
	if got, err := Uint64Value(9).AsUint64(); err != nil || got != 9 {
		t.Errorf("AsUint64() = %v, %v; want 9, nil", got, err)
	}
	if got, err := DoubleValue(1.5).AsDouble(); err != nil || got != 1.5 {
		t.Errorf("AsDouble() = %v, %v; want 1.5, nil", got, err)
	}
	if KindOf(ErrVariantMismatch) != VariantMismatch {
		t.Errorf("KindOf(ErrVariantMismatch) = %v, want VariantMismatch", KindOf(ErrVariantMismatch))
	}
}

func TestGet(t *testing.T) {
	if got, err := Get[int64](Int64Value(-3)); err != nil || got != -3 {
		t.Errorf("Get[int64] = %v, %v; want -3, nil", got, err)
	}
	if got, err := Get[bool](BoolValue(true)); err != nil || !got {
		t.Errorf("Get[bool] = %v, %v; want true, nil", got, err)
	}
	if _, err := Get[int64](Int32Value(3)); !errors.Is(err, ErrVariantMismatch) {
		t.Errorf("Get[int64](int32) error = %v, want ErrVariantMismatch", err)
	}
	if _, err := Get[string](Value{}); !errors.Is(err, ErrVariantMismatch) {
		t.Errorf("Get[string](invalid) error = %v, want ErrVariantMismatch", err)
	}
}

func TestValueOf(t *testing.T) {
	tests := []struct {
		v    Value
		kind Kind
	}{
		{ValueOf(true), KindBool},
		{ValueOf(int32(1)), KindInt32},
		{ValueOf(int64(1)), KindInt64},
		{ValueOf(uint64(1)), KindUint64},
		{ValueOf(1.0), KindDouble},
		{ValueOf("s"), KindString},
	}
	for _, tt := range tests {
		if tt.v.Kind() != tt.kind {
			t.Errorf("Kind() = %v, want %v", tt.v.Kind(), tt.kind)
		}
	}
	if KindFor[uint64]() != KindUint64 {
		t.Errorf("KindFor[uint64]() = %v, want uint64", KindFor[uint64]())
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Value
		want   int
		wantOK bool
	}{
		{"equal ints", Int32Value(2), Int32Value(2), 0, true},
		{"less ints", Int64Value(-1), Int64Value(1), -1, true},
		{"bools", BoolValue(false), BoolValue(true), -1, true},
		{"strings", StringValue("b"), StringValue("a"), 1, true},
		{"uint", Uint64Value(math.MaxUint64), Uint64Value(0), 1, true},
		{"kinds", BoolValue(true), StringValue(""), -1, true},
		{"int32 vs int64", Int32Value(1), Int64Value(1), -1, true},
		{"nan", DoubleValue(math.NaN()), DoubleValue(1), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.Compare(tt.b)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Compare() = %d, %v; want %d, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}

	if !DoubleValue(1.5).Equal(DoubleValue(1.5)) {
		t.Error("1.5 != 1.5")
	}
	nan := DoubleValue(math.NaN())
	if nan.Equal(nan) {
		t.Error("NaN == NaN")
	}
	if Int32Value(1).Equal(Int64Value(1)) {
		t.Error("int32(1) == int64(1)")
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		kind    Kind
		text    string
		want    Value
		wantErr bool
	}{
		{KindInt32, "5", Int32Value(5), false},
		{KindInt32, "-5", Int32Value(-5), false},
		{KindInt32, "2147483648", Value{}, true},
		{KindInt32, "abc", Value{}, true},
		{KindInt64, "2147483648", Int64Value(2147483648), false},
		{KindUint64, "18446744073709551615", Uint64Value(math.MaxUint64), false},
		{KindUint64, "-1", Value{}, true},
		{KindDouble, "-0.25", DoubleValue(-0.25), false},
		{KindDouble, "x", Value{}, true},
		{KindString, "", StringValue(""), false},
		{KindBool, "true", BoolValue(true), false},
		{KindInvalid, "1", Value{}, true},
	}
	for _, tt := range tests {
		got, err := parseValue(tt.kind, tt.text)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseValue(%v, %q) error = %v, wantErr %v", tt.kind, tt.text, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !got.Equal(tt.want) {
			t.Errorf("parseValue(%v, %q) = %v, want %v", tt.kind, tt.text, got, tt.want)
		}
	}
}
