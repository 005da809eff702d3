// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package getopt

import "fmt"

// FailKind classifies why a command line could not be matched.
type FailKind int

// Kinds are listed in reporting priority.
const (
	UnrecognizedOption FailKind = iota + 1
	OptionDuplicated
	UnexpectedArgument
	ArgumentMissing
)

func (k FailKind) String() string {
	switch k {
	case UnrecognizedOption:
		return "unrecognized option"
	case OptionDuplicated:
		return "option duplicated"
	case UnexpectedArgument:
		return "unexpected argument"
	case ArgumentMissing:
		return "argument missing"
	default:
		return fmt.Sprintf("FailKind(%d)", int(k))
	}
}

// Fail is returned by Parse when the command line does not match the schema.
type Fail struct {
	Kind FailKind
	// Name is the option name as written, without dashes.
	Name string
}

func (f *Fail) Error() string {
	switch f.Kind {
	case UnrecognizedOption:
		return fmt.Sprintf("unrecognized option: %s", f.Name)
	case OptionDuplicated:
		return fmt.Sprintf("option %s given more than once", f.Name)
	case UnexpectedArgument:
		return fmt.Sprintf("option %s does not take an argument", f.Name)
	case ArgumentMissing:
		return fmt.Sprintf("option %s requires an argument", f.Name)
	default:
		return fmt.Sprintf("%v: %s", f.Kind, f.Name)
	}
}

// failures keeps the first failure of each kind.
type failures [ArgumentMissing + 1]*Fail

func (fs *failures) record(kind FailKind, name string) {
	if fs[kind] == nil {
		fs[kind] = &Fail{Kind: kind, Name: name}
	}
}

func (fs *failures) first() *Fail {
	for _, f := range fs {
		if f != nil {
			return f
		}
	}
	return nil
}
