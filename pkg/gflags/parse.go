// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gflags

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/Masterminds/semver/v3"
	"github.com/yeetrun/gflags/pkg/getopt"
)

// Config contains the program metadata used for help and version output.
type Config struct {
	// Program is the name printed in help and version output. When empty,
	// the first element of the parsed args is used.
	Program string
	// Version is printed by --version. When set it must be a semantic version.
	Version string
	// Logger receives debug records about schema building and value
	// resolution. Nil discards them.
	Logger *slog.Logger
}

// Parser resolves a command line against the flags of a Registry.
type Parser struct {
	reg    *Registry
	cfg    Config
	logger *slog.Logger
}

// NewParser returns a parser for the flags in r.
func NewParser(r *Registry, cfg Config) (*Parser, error) {
	if cfg.Version != "" {
		if _, err := semver.NewVersion(cfg.Version); err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrInvalidVersion, cfg.Version, err)
		}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Parser{reg: r, cfg: cfg, logger: logger}, nil
}

// Result holds the flags resolved by a successful Parse.
type Result struct {
	Program string
	// Values contains the flags set on the command line. Flags that were
	// not passed are absent; their descriptors report the default.
	Values map[string]Value
	// Args contains the non-flag arguments, including everything after "--".
	Args []string
}

// Lookup returns the value the command line set for the named flag.
func (r *Result) Lookup(name string) (Value, bool) {
	v, ok := r.Values[name]
	return v, ok
}

// Parse resolves args, whose first element is the program name.
//
// If -h or --help appears before "--", Parse returns a *UsageRequest
// wrapping ErrHelp regardless of any other argument. Otherwise a malformed
// command line yields a *ParseError, and -V or --version yields a
// *UsageRequest wrapping ErrVersion. On success every descriptor's parsed
// value is replaced: flags on the command line get their value, the rest
// are unset. On error no descriptor is modified.
func (p *Parser) Parse(args []string) (*Result, error) {
	program := p.program(args)
	var rest []string
	if len(args) > 0 {
		rest = args[1:]
	}

	if helpRequested(rest) {
		return nil, &UsageRequest{Text: p.Usage(program), Err: ErrHelp}
	}

	opts := p.schema(program)
	p.logger.Debug("built option schema", "program", program, "flags", p.reg.Len(), "options", len(opts.All()))

	m, err := opts.Parse(rest)
	if err != nil {
		var f *getopt.Fail
		if errors.As(err, &f) {
			return nil, fromFail(f)
		}
		return nil, err
	}
	if err := p.checkNegations(m); err != nil {
		return nil, err
	}

	if m.Present(versionName) {
		return nil, &UsageRequest{Text: p.VersionLine(program) + "\n", Err: ErrVersion}
	}

	values, err := p.resolve(m)
	if err != nil {
		return nil, err
	}
	for d := range p.reg.All() {
		d.reset()
		if v, ok := values[d.name]; ok {
			d.set(v)
		}
	}
	return &Result{Program: program, Values: values, Args: m.Free}, nil
}

func (p *Parser) program(args []string) string {
	if p.cfg.Program != "" {
		return p.cfg.Program
	}
	if len(args) > 0 {
		return args[0]
	}
	return ""
}

// helpRequested reports whether a help option appears before "--".
func helpRequested(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--":
			return false
		case "-" + helpShort, "-" + helpName, "--" + helpName:
			return true
		}
	}
	return false
}

// schema builds the option schema in registration order, followed by the
// built-in help and version options.
func (p *Parser) schema(program string) *getopt.Options {
	opts := getopt.New()
	for d := range p.reg.All() {
		if d.boolean {
			opts.Flag("", d.name, d.description)
			opts.Flag("", d.negation(), fmt.Sprintf(negateHelpFmt, d.name))
			continue
		}
		opts.Opt("", d.name, d.description)
	}
	opts.Flag(helpShort, helpName, "Shows the help.")
	opts.Flag(versionShort, versionName, fmt.Sprintf("Shows the version of %s.", program))
	return opts
}

// checkNegations rejects a boolean flag passed both as --name and --noname.
func (p *Parser) checkNegations(m *getopt.Matches) error {
	for d := range p.reg.All() {
		if d.boolean && m.Present(d.name) && m.Present(d.negation()) {
			return &ParseError{Kind: DuplicateFlag, Flag: d.name}
		}
	}
	return nil
}

// resolve coerces every matched option into its flag's value.
func (p *Parser) resolve(m *getopt.Matches) (map[string]Value, error) {
	values := make(map[string]Value)
	for _, occ := range m.Occurrences {
		d, ok := p.reg.names[occ.Name]
		if !ok {
			// help and version
			continue
		}
		var v Value
		if d.boolean {
			v = BoolValue(occ.Name == d.name)
		} else {
			var err error
			v, err = parseValue(d.Kind(), occ.Value)
			if err != nil {
				return nil, &ParseError{
					Kind:  TypeConversionFailure,
					Flag:  occ.Given,
					Value: occ.Value,
					Want:  d.Kind(),
					Err:   err,
				}
			}
		}
		values[d.name] = v
		p.logger.Debug("resolved flag", "flag", d.name, "value", v)
	}
	return values, nil
}
