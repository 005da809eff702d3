// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The flagdump command declares one flag of every type, parses its command
// line and prints the resolved flags.
//
//	flagdump --format=json --count 3 --nocolor -- extra args
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/shayne/yargs"
	"github.com/yeetrun/gflags/pkg/flagfmt"
	"github.com/yeetrun/gflags/pkg/gflags"
	"tailscale.com/util/must"
)

const (
	version   = "0.1.0"
	envPrefix = "FLAGDUMP"
)

// launcherFlags are removed from the command line before gflags sees it, so
// they never show up in the dump.
type launcherFlags struct {
	Format  string `flag:"format" help:"Output format (text|json|yaml|toml|env)"`
	EnvFile string `flag:"env-file" help:"Also write the set flags to this env file"`
	Debug   bool   `flag:"debug" help:"Log parser decisions to stderr"`
}

func declare(r *gflags.Registry) {
	r.Bool("color", true, "Colorizes the output.")
	r.Int32("count", 1, "How many times to repeat.")
	r.Int64("offset", -1, "Starting offset, or -1 for the end.")
	r.Uint64("limit", 1<<20, "Upper bound on bytes read.")
	r.Double("ratio", 0.5, "Sampling ratio between 0 and 1.")
	r.String("label", "dump", "Label printed in the header.")
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	program := "flagdump"
	if len(args) > 0 {
		program, args = args[0], args[1:]
	}

	known, err := yargs.ParseKnownFlags[launcherFlags](args, yargs.KnownFlagsOptions{})
	if err != nil {
		fmt.Fprintf(stderr, "failed to parse launcher flags: %v\n", err)
		return 1
	}
	format := flagfmt.Text
	if known.Flags.Format != "" {
		format, err = flagfmt.ParseFormat(known.Flags.Format)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
	}
	logger := slog.New(slog.DiscardHandler)
	if known.Flags.Debug {
		logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	reg := gflags.NewRegistry()
	declare(reg)
	p := must.Get(gflags.NewParser(reg, gflags.Config{Version: version, Logger: logger}))
	res, err := p.Parse(append([]string{program}, known.RemainingArgs...))
	if err != nil {
		return gflags.Report(stderr, err)
	}

	entries := flagfmt.Snapshot(reg)
	if known.Flags.EnvFile != "" {
		if err := flagfmt.WriteEnvFile(known.Flags.EnvFile, envPrefix, entries); err != nil {
			fmt.Fprintf(stderr, "failed to write %s: %v\n", known.Flags.EnvFile, err)
			return 1
		}
	}
	if err := flagfmt.Encode(stdout, format, entries); err != nil {
		fmt.Fprintf(stderr, "failed to write %s: %v\n", format, err)
		return 1
	}
	if format == flagfmt.Text && len(res.Args) > 0 {
		fmt.Fprintf(stdout, "\nargs: %q\n", res.Args)
	}
	return 0
}
