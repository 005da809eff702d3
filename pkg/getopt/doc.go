// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package getopt splits a command line into recognized options, their string
// values and free arguments, according to a schema of options.
//
// Matching is "long only": an option is written as --name or -name. A
// single-dash token with a one-letter name is looked up as a short alias
// first. Short options are never bundled, so -hV is the long option "hV".
//
// Accepted forms:
//   - Options without a value: --name, -name, -n
//   - Options with a value (equals): --name=value, -name=value
//   - Options with a value (space): --name value, --name -5
//
// When an option takes a value and none is attached with "=", the next token
// is consumed unless it looks like an option itself. Tokens that look like
// numbers ("-5", "-0.25") and the lone "-" are always consumable. A bare "--"
// ends option parsing; every token after it is a free argument.
//
// Parse never stops at the first problem. It scans the whole command line and
// then reports one failure, choosing by kind in the order UnrecognizedOption,
// OptionDuplicated, UnexpectedArgument, ArgumentMissing, and by position
// within a kind.
//
//	opts := getopt.New().
//	    Flag("v", "verbose", "Prints more output.").
//	    Opt("", "output", "Where to write.")
//	m, err := opts.Parse(os.Args[1:])
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if out, ok := m.Value("output"); ok {
//	    fmt.Println(out)
//	}
package getopt
