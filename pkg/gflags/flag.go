// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gflags

import "fmt"

// Descriptor is the declaration of one flag plus the value resolved for it
// by the most recent successful Parse. The name, description and default
// never change after New.
type Descriptor struct {
	name        string
	description string
	def         Value
	boolean     bool

	parsed    Value
	hasParsed bool
}

// New returns a descriptor for a flag. It does not register it. The default
// fixes the flag's type; a boolean default makes a boolean flag, which also
// accepts --no{name}.
func New(name, description string, def Value) *Descriptor {
	return &Descriptor{
		name:        name,
		description: description,
		def:         def,
		boolean:     def.Kind() == KindBool,
	}
}

func (d *Descriptor) Name() string        { return d.name }
func (d *Descriptor) Description() string { return d.description }
func (d *Descriptor) Default() Value      { return d.def }
func (d *Descriptor) Kind() Kind          { return d.def.Kind() }

// IsBool reports whether the flag is a boolean flag.
func (d *Descriptor) IsBool() bool { return d.boolean }

// Parsed returns the value set on the command line, if any.
func (d *Descriptor) Parsed() (Value, bool) {
	return d.parsed, d.hasParsed
}

// Value returns the parsed value, or the default when the flag was not set.
func (d *Descriptor) Value() Value {
	if d.hasParsed {
		return d.parsed
	}
	return d.def
}

// Help returns the help block for the flag:
//
//	--{name}={default}
//		{description}
func (d *Descriptor) Help() string {
	return fmt.Sprintf("--%s=%s\n\t%s", d.name, Render(d.def), d.description)
}

// negation is the name of the option that sets a boolean flag to false.
func (d *Descriptor) negation() string {
	return negatePrefix + d.name
}

func (d *Descriptor) set(v Value) {
	d.parsed, d.hasParsed = v, true
}

func (d *Descriptor) reset() {
	d.parsed, d.hasParsed = Value{}, false
}

// Flag is a typed handle on a registered descriptor.
type Flag[T Type] struct {
	d *Descriptor
}

// Declare creates a flag of type T and registers it with r. It panics if
// registration fails, since a bad declaration is a programming error.
func Declare[T Type](r *Registry, name string, def T, description string) *Flag[T] {
	d := New(name, description, ValueOf(def))
	if err := r.Register(d); err != nil {
		panic(err)
	}
	return &Flag[T]{d: d}
}

// Get returns the parsed value, or the default when the flag was not set.
func (f *Flag[T]) Get() T {
	v, err := Get[T](f.d.Value())
	if err != nil {
		// Declare fixes the descriptor kind to T.
		panic(err)
	}
	return v
}

// IsSet reports whether the last parse set the flag.
func (f *Flag[T]) IsSet() bool {
	_, ok := f.d.Parsed()
	return ok
}

func (f *Flag[T]) Name() string { return f.d.Name() }

// Descriptor returns the underlying descriptor.
func (f *Flag[T]) Descriptor() *Descriptor { return f.d }

func (r *Registry) Bool(name string, def bool, description string) *Flag[bool] {
	return Declare(r, name, def, description)
}

func (r *Registry) Int32(name string, def int32, description string) *Flag[int32] {
	return Declare(r, name, def, description)
}

func (r *Registry) Int64(name string, def int64, description string) *Flag[int64] {
	return Declare(r, name, def, description)
}

func (r *Registry) Uint64(name string, def uint64, description string) *Flag[uint64] {
	return Declare(r, name, def, description)
}

func (r *Registry) Double(name string, def float64, description string) *Flag[float64] {
	return Declare(r, name, def, description)
}

func (r *Registry) String(name string, def string, description string) *Flag[string] {
	return Declare(r, name, def, description)
}

// Bool declares a boolean flag on CommandLine.
func Bool(name string, def bool, description string) *Flag[bool] {
	return CommandLine.Bool(name, def, description)
}

// Int32 declares an int32 flag on CommandLine.
func Int32(name string, def int32, description string) *Flag[int32] {
	return CommandLine.Int32(name, def, description)
}

// Int64 declares an int64 flag on CommandLine.
func Int64(name string, def int64, description string) *Flag[int64] {
	return CommandLine.Int64(name, def, description)
}

// Uint64 declares a uint64 flag on CommandLine.
func Uint64(name string, def uint64, description string) *Flag[uint64] {
	return CommandLine.Uint64(name, def, description)
}

// Double declares a float64 flag on CommandLine.
func Double(name string, def float64, description string) *Flag[float64] {
	return CommandLine.Double(name, def, description)
}

// String declares a string flag on CommandLine.
func String(name string, def string, description string) *Flag[string] {
	return CommandLine.String(name, def, description)
}
