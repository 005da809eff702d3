// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gflags

import (
	"fmt"
	"strings"

	"github.com/yeetrun/gflags/pkg/getopt"
)

// Usage returns the help output: one block per option in schema order,
// then a blank line and the version line.
func (p *Parser) Usage(program string) string {
	var b strings.Builder
	for _, opt := range p.schema(program).All() {
		b.WriteString(p.optionHelp(opt))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(p.VersionLine(program))
	b.WriteString("\n")
	return b.String()
}

// VersionLine returns "{program} version {version}".
func (p *Parser) VersionLine(program string) string {
	return fmt.Sprintf("%s version %s", program, p.cfg.Version)
}

func (p *Parser) optionHelp(opt getopt.Option) string {
	if d, ok := p.reg.Lookup(opt.Long); ok {
		return d.Help()
	}
	names := "--" + opt.Long
	if opt.Short != "" {
		names = "-" + opt.Short + ", " + names
	}
	return names + "\n\t" + opt.Description
}
