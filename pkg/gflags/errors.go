// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gflags

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/yeetrun/gflags/pkg/getopt"
)

// Sentinel errors
var (
	// ErrHelp is wrapped by the *UsageRequest returned when --help or -h is passed.
	ErrHelp = errors.New("help requested")

	// ErrVersion is wrapped by the *UsageRequest returned when --version or -V is passed.
	ErrVersion = errors.New("version requested")

	// ErrVariantMismatch is returned when a Value is read as a type it does not hold.
	ErrVariantMismatch = errors.New("flag value variant mismatch")

	// Registration errors, wrapped with the offending flag name.
	ErrDuplicateName  = errors.New("flag name already registered")
	ErrInvalidName    = errors.New("invalid flag name")
	ErrInvalidDefault = errors.New("invalid flag default")
	ErrInvalidVersion = errors.New("invalid program version")
)

// ErrorKind classifies parse failures.
type ErrorKind int

const (
	UnrecognizedFlag ErrorKind = iota + 1
	DuplicateFlag
	UnexpectedArgument
	MissingArgument
	TypeConversionFailure
	VariantMismatch
)

func (k ErrorKind) String() string {
	switch k {
	case UnrecognizedFlag:
		return "UnrecognizedFlag"
	case DuplicateFlag:
		return "DuplicateFlag"
	case UnexpectedArgument:
		return "UnexpectedArgument"
	case MissingArgument:
		return "MissingArgument"
	case TypeConversionFailure:
		return "TypeConversionFailure"
	case VariantMismatch:
		return "VariantMismatch"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ParseError is returned by Parse when the command line cannot be resolved.
// Its message is the one-line diagnostic shown to the user.
type ParseError struct {
	Kind ErrorKind
	Flag string // The flag name as passed, without dashes
	// Value is the offending text for TypeConversionFailure.
	Value string
	// Want is the kind the value should have parsed as, for TypeConversionFailure.
	Want Kind
	Err  error // Underlying tokenizer or strconv error, if any
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnrecognizedFlag:
		return fmt.Sprintf("unregistered flag %s passed", e.Flag)
	case DuplicateFlag:
		return fmt.Sprintf("flag %s was passed multiple times", e.Flag)
	case UnexpectedArgument:
		return fmt.Sprintf("flag %s does not expect a value", e.Flag)
	case MissingArgument:
		return fmt.Sprintf("flag %s requires a value", e.Flag)
	case TypeConversionFailure:
		return fmt.Sprintf("flag %s expects a %v value, got %s", e.Flag, e.Want, strconv.Quote(e.Value))
	case VariantMismatch:
		return ErrVariantMismatch.Error()
	default:
		return fmt.Sprintf("internal error: %v", e.Err)
	}
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// KindOf returns the ErrorKind of err, or 0 when err is not a *ParseError.
func KindOf(err error) ErrorKind {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	if errors.Is(err, ErrVariantMismatch) {
		return VariantMismatch
	}
	return 0
}

// fromFail maps a tokenizer failure onto the flag error taxonomy.
func fromFail(f *getopt.Fail) *ParseError {
	pe := &ParseError{Flag: f.Name, Err: f}
	switch f.Kind {
	case getopt.UnrecognizedOption:
		pe.Kind = UnrecognizedFlag
	case getopt.OptionDuplicated:
		pe.Kind = DuplicateFlag
	case getopt.UnexpectedArgument:
		pe.Kind = UnexpectedArgument
	case getopt.ArgumentMissing:
		pe.Kind = MissingArgument
	}
	return pe
}

// UsageRequest is returned by Parse when help or version output was asked
// for. Text is the complete output; callers print it and exit successfully.
type UsageRequest struct {
	Text string
	Err  error // ErrHelp or ErrVersion
}

func (u *UsageRequest) Error() string {
	return u.Err.Error()
}

func (u *UsageRequest) Unwrap() error {
	return u.Err
}
