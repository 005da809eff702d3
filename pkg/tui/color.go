// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tui

import (
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// isTerminal is swapped out in tests.
var isTerminal = term.IsTerminal

// fder is implemented by *os.File.
type fder interface {
	Fd() uintptr
}

type Colorizer struct {
	Enabled bool
}

// NewColorizer returns a Colorizer that is enabled only when w is a
// terminal, NO_COLOR is unset and TERM names a real terminal.
func NewColorizer(w io.Writer) Colorizer {
	f, ok := w.(fder)
	if !ok {
		return Colorizer{}
	}
	if os.Getenv("NO_COLOR") != "" {
		return Colorizer{}
	}
	termName := os.Getenv("TERM")
	if termName == "" || termName == "dumb" {
		return Colorizer{}
	}
	if !isTerminal(int(f.Fd())) {
		return Colorizer{}
	}
	return Colorizer{Enabled: true}
}

// Wrap returns text in the given color when c is enabled.
func (c Colorizer) Wrap(attr color.Attribute, text string) string {
	if !c.Enabled {
		return text
	}
	col := color.New(attr)
	// color decides on its own from os.Stdout; c already decided for w.
	col.EnableColor()
	return col.Sprint(text)
}
