// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gflags implements typed, self-registering command-line flags with
// long-only matching.
//
// A flag is declared against a Registry with a name, a typed default and a
// description. The default fixes the flag's type, which is one of bool,
// int32, int64, uint64, float64 or string. Boolean flags are set with
// --name and cleared with --noname; every other flag takes a value as
// --name=value or --name value.
//
//	reg := gflags.NewRegistry()
//	verbose := reg.Bool("verbose", false, "Prints more output.")
//	count := reg.Int32("count", 1, "How many times to run.")
//
//	p, err := gflags.NewParser(reg, gflags.Config{Version: "1.0.0"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	res := p.ParseOrExit(os.Args)
//	fmt.Println(verbose.Get(), count.Get(), res.Args)
//
// Parse never exits the process. It returns a *ParseError for a malformed
// command line and a *UsageRequest when help or version output was asked
// for; Report and ParseOrExit turn those into output and an exit status.
//
// Programs that prefer a process-wide registry can use the package-level
// Bool, Int32, Int64, Uint64, Double and String functions, which declare on
// CommandLine, and then call Parse.
package gflags
