// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gflags

import (
	"fmt"
	"iter"
	"strings"

	"tailscale.com/util/mak"
)

// Option names the parser defines itself.
const (
	helpName      = "help"
	helpShort     = "h"
	versionName   = "version"
	versionShort  = "V"
	negatePrefix  = "no"
	negateHelpFmt = "Sets %s to false."
)

// Registry is an ordered, append-only collection of flag descriptors. The
// zero value is an empty registry ready to use. A Registry is not safe for
// concurrent use; declare every flag before parsing.
type Registry struct {
	flags []*Descriptor
	// names maps every option name a flag occupies (including the
	// negation of boolean flags) to the flag that owns it.
	names map[string]*Descriptor
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// CommandLine is the process-wide registry used by the package-level
// declaration functions and Parse.
var CommandLine = NewRegistry()

// Register appends d. It fails if d has an invalid name or default, or if
// any option name d needs is already taken by another flag or by the
// built-in help and version options.
func (r *Registry) Register(d *Descriptor) error {
	if err := validName(d.name); err != nil {
		return err
	}
	if !d.def.IsValid() {
		return fmt.Errorf("%w: flag %s has no default value", ErrInvalidDefault, d.name)
	}
	for _, n := range optionNames(d) {
		if n == helpName || n == versionName {
			return fmt.Errorf("%w: %s is reserved", ErrDuplicateName, n)
		}
		if owner, ok := r.names[n]; ok {
			if owner.name == d.name {
				return fmt.Errorf("%w: %s", ErrDuplicateName, d.name)
			}
			return fmt.Errorf("%w: %s conflicts with flag %s", ErrDuplicateName, n, owner.name)
		}
	}
	for _, n := range optionNames(d) {
		mak.Set(&r.names, n, d)
	}
	r.flags = append(r.flags, d)
	return nil
}

// optionNames returns the long options d occupies.
func optionNames(d *Descriptor) []string {
	if d.boolean {
		return []string{d.name, d.negation()}
	}
	return []string{d.name}
}

func validName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("%w: empty name", ErrInvalidName)
	case strings.HasPrefix(name, "-"):
		return fmt.Errorf("%w: %q starts with a dash", ErrInvalidName, name)
	case strings.ContainsAny(name, "= \t\n"):
		return fmt.Errorf("%w: %q contains '=' or whitespace", ErrInvalidName, name)
	}
	return nil
}

// All returns the registered descriptors in registration order. The
// sequence can be ranged over any number of times; each pass sees the
// flags registered so far.
func (r *Registry) All() iter.Seq[*Descriptor] {
	return func(yield func(*Descriptor) bool) {
		for _, d := range r.flags {
			if !yield(d) {
				return
			}
		}
	}
}

// Lookup returns the flag registered under name. Negation names are not
// flags and are not found.
func (r *Registry) Lookup(name string) (*Descriptor, bool) {
	d, ok := r.names[name]
	if !ok || d.name != name {
		return nil, false
	}
	return d, true
}

// Len returns the number of registered flags.
func (r *Registry) Len() int {
	return len(r.flags)
}

// Register appends d to CommandLine.
func Register(d *Descriptor) error {
	return CommandLine.Register(d)
}

// All returns the flags registered on CommandLine.
func All() iter.Seq[*Descriptor] {
	return CommandLine.All()
}

// Lookup returns the flag registered on CommandLine under name.
func Lookup(name string) (*Descriptor, bool) {
	return CommandLine.Lookup(name)
}
