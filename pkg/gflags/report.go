// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gflags

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/yeetrun/gflags/pkg/tui"
)

// ExitCode returns the process exit status for an error returned by Parse:
// 0 for success and for help or version requests, 1 for everything else.
func ExitCode(err error) int {
	if err == nil || errors.Is(err, ErrHelp) || errors.Is(err, ErrVersion) {
		return 0
	}
	return 1
}

// Report writes what the user should see for err to w and returns the exit
// status. Help and version requests print their text. Other errors print a
// one-line diagnostic, in red when w is a color terminal.
func Report(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	var u *UsageRequest
	if errors.As(err, &u) {
		io.WriteString(w, u.Text)
		return ExitCode(err)
	}
	c := tui.NewColorizer(w)
	fmt.Fprintln(w, c.Wrap(color.FgRed, err.Error()))
	return ExitCode(err)
}

// ParseOrExit parses args and returns the result. When Parse fails it
// reports to stderr and exits the process with the matching status.
func (p *Parser) ParseOrExit(args []string) *Result {
	res, err := p.Parse(args)
	if err != nil {
		os.Exit(Report(os.Stderr, err))
	}
	return res
}

// Parse parses os.Args against CommandLine, exiting the process on help,
// version or error. It panics if version is not a semantic version.
func Parse(version string) *Result {
	p, err := NewParser(CommandLine, Config{Version: version})
	if err != nil {
		panic(err)
	}
	return p.ParseOrExit(os.Args)
}
