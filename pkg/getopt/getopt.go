// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package getopt

import (
	"fmt"
	"strings"

	"tailscale.com/util/mak"
	"tailscale.com/util/set"
)

// HasArg reports whether an option takes a value.
type HasArg int

const (
	// No options never take a value; "--name=x" is an error.
	No HasArg = iota
	// Yes options require a value, attached or in the next token.
	Yes
)

// Option is a single entry of the schema.
type Option struct {
	Short       string // Optional one-letter alias (e.g. "h" for help)
	Long        string
	HasArg      HasArg
	Description string
}

// Name returns the canonical name of the option: the long name if there is
// one, the short name otherwise.
func (o Option) Name() string {
	if o.Long != "" {
		return o.Long
	}
	return o.Short
}

// Options is an ordered option schema. The zero value is an empty schema
// ready to use.
type Options struct {
	opts  []Option
	long  map[string]int
	short map[string]int
}

// New returns an empty schema.
func New() *Options {
	return &Options{}
}

// Flag adds an option that takes no value.
func (o *Options) Flag(short, long, description string) *Options {
	return o.add(Option{Short: short, Long: long, HasArg: No, Description: description})
}

// Opt adds an option that requires a value.
func (o *Options) Opt(short, long, description string) *Options {
	return o.add(Option{Short: short, Long: long, HasArg: Yes, Description: description})
}

// add panics on a malformed or conflicting option since that is a
// programming error in the caller, not a user error.
func (o *Options) add(opt Option) *Options {
	if opt.Short == "" && opt.Long == "" {
		panic("getopt: option needs a short or long name")
	}
	if len(opt.Short) > 1 {
		panic(fmt.Sprintf("getopt: short option %q is longer than one character", opt.Short))
	}
	if _, dup := o.long[opt.Long]; dup && opt.Long != "" {
		panic(fmt.Sprintf("getopt: option --%s defined twice", opt.Long))
	}
	if _, dup := o.short[opt.Short]; dup && opt.Short != "" {
		panic(fmt.Sprintf("getopt: option -%s defined twice", opt.Short))
	}
	idx := len(o.opts)
	o.opts = append(o.opts, opt)
	if opt.Long != "" {
		mak.Set(&o.long, opt.Long, idx)
	}
	if opt.Short != "" {
		mak.Set(&o.short, opt.Short, idx)
	}
	return o
}

// All returns a copy of the schema in the order options were added.
func (o *Options) All() []Option {
	return append([]Option(nil), o.opts...)
}

// Lookup finds an option by its long name, or by its short name when no
// long option has that name.
func (o *Options) Lookup(name string) (Option, bool) {
	if idx, ok := o.long[name]; ok {
		return o.opts[idx], true
	}
	if idx, ok := o.short[name]; ok {
		return o.opts[idx], true
	}
	return Option{}, false
}

// lookupToken resolves the name found in a token. A single dash followed by
// one letter means a short option when one is defined; every other form
// means a long option.
func (o *Options) lookupToken(name string, singleDash bool) (Option, bool) {
	if singleDash && len(name) == 1 {
		if idx, ok := o.short[name]; ok {
			return o.opts[idx], true
		}
	}
	idx, ok := o.long[name]
	if !ok {
		return Option{}, false
	}
	return o.opts[idx], true
}

// Occurrence is one recognized option on the command line.
type Occurrence struct {
	// Name is the canonical option name (see Option.Name).
	Name string
	// Given is the name as written, without dashes.
	Given string
	// Value is the option's value, if HasValue.
	Value    string
	HasValue bool
	// Index is the position of the option token in the parsed args.
	Index int
}

// Matches is the result of a successful Parse.
type Matches struct {
	// Occurrences lists recognized options in command-line order.
	Occurrences []Occurrence
	// Free contains the non-option arguments, including everything after "--".
	Free []string

	byName map[string]int
}

// Present reports whether the option with the given canonical name was
// passed.
func (m *Matches) Present(name string) bool {
	_, ok := m.byName[name]
	return ok
}

// Get returns the occurrence of the named option.
func (m *Matches) Get(name string) (Occurrence, bool) {
	idx, ok := m.byName[name]
	if !ok {
		return Occurrence{}, false
	}
	return m.Occurrences[idx], true
}

// Value returns the value passed to the named option.
func (m *Matches) Value(name string) (string, bool) {
	occ, ok := m.Get(name)
	if !ok || !occ.HasValue {
		return "", false
	}
	return occ.Value, true
}

// Parse matches args (without the program name) against the schema.
func (o *Options) Parse(args []string) (*Matches, error) {
	m := &Matches{Free: []string{}}
	var fails failures
	seen := make(set.Set[string])

	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			m.Free = append(m.Free, args[i+1:]...)
			break
		}

		if len(arg) < 2 || arg[0] != '-' {
			m.Free = append(m.Free, arg)
			continue
		}

		pos := i
		body := arg[1:]
		singleDash := true
		if strings.HasPrefix(body, "-") {
			body = body[1:]
			singleDash = false
		}
		given, value, hasValue := strings.Cut(body, "=")

		opt, ok := o.lookupToken(given, singleDash)
		if !ok {
			fails.record(UnrecognizedOption, given)
			continue
		}

		name := opt.Name()
		if seen.Contains(name) {
			fails.record(OptionDuplicated, given)
		}
		seen.Add(name)

		switch opt.HasArg {
		case No:
			if hasValue {
				fails.record(UnexpectedArgument, given)
			}
		case Yes:
			if !hasValue {
				if i+1 < len(args) && consumable(args[i+1]) {
					value, hasValue = args[i+1], true
					i++
				} else {
					fails.record(ArgumentMissing, given)
				}
			}
		}

		if _, dup := m.byName[name]; !dup {
			mak.Set(&m.byName, name, len(m.Occurrences))
		}
		m.Occurrences = append(m.Occurrences, Occurrence{
			Name:     name,
			Given:    given,
			Value:    value,
			HasValue: hasValue,
			Index:    pos,
		})
	}

	if f := fails.first(); f != nil {
		return nil, f
	}
	return m, nil
}

// consumable reports whether a token may be taken as the value of the
// preceding option.
func consumable(next string) bool {
	return !strings.HasPrefix(next, "-") || next == "-" || isNumeric(next)
}

// isNumeric checks if a string is a number (e.g., "10", "-10", "3.14", "-3.14")
func isNumeric(s string) bool {
	if len(s) == 0 {
		return false
	}

	start := 0
	if s[0] == '-' || s[0] == '+' {
		if len(s) == 1 {
			return false
		}
		start = 1
	}

	hasDigit := false
	hasDot := false

	for i := start; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			hasDigit = true
		} else if s[i] == '.' {
			if hasDot {
				return false
			}
			hasDot = true
		} else {
			return false
		}
	}

	return hasDigit
}
