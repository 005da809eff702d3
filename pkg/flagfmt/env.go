// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flagfmt

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// WriteEnvFile writes the set flags in entries to an environment file named
// name, one KEY=value line each.
func WriteEnvFile(name, prefix string, entries []Entry) error {
	f, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("failed to create file: %v", err)
	}
	defer f.Close()
	if err := encodeEnv(f, prefix, entries); err != nil {
		return fmt.Errorf("failed to marshal env: %v", err)
	}
	return f.Close()
}

// encodeEnv skips flags left at their default, so sourcing the output on
// top of another environment only overrides what the command line changed.
func encodeEnv(w io.Writer, prefix string, entries []Entry) error {
	for _, e := range entries {
		if !e.Set {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s=%v\n", EnvName(prefix, e.Name), e.Value); err != nil {
			return err
		}
	}
	return nil
}

// EnvName returns the variable name for a flag: prefix and name joined by
// an underscore, upper-cased, with dashes and dots turned into underscores.
func EnvName(prefix, flag string) string {
	name := flag
	if prefix != "" {
		name = prefix + "_" + flag
	}
	return strings.ToUpper(strings.NewReplacer("-", "_", ".", "_").Replace(name))
}
