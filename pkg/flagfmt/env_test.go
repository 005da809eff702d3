// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package flagfmt

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestEnvName(t *testing.T) {
	tests := []struct {
		prefix, flag, want string
	}{
		{"", "count", "COUNT"},
		{"app", "rpc-port", "APP_RPC_PORT"},
		{"", "log.level", "LOG_LEVEL"},
	}
	for _, tt := range tests {
		if got := EnvName(tt.prefix, tt.flag); got != tt.want {
			t.Errorf("EnvName(%q, %q) = %q, want %q", tt.prefix, tt.flag, got, tt.want)
		}
	}
}

func TestEncodeEnv(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, Env, Snapshot(parsedRegistry(t))); err != nil {
		t.Fatal(err)
	}
	if want := "COUNT=3\n"; buf.String() != want {
		t.Errorf("env = %q, want %q", buf.String(), want)
	}
}

func TestWriteEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flags.env")
	entries := []Entry{
		{Name: "name", Kind: "string", Value: "bob", Default: "", Set: true},
		{Name: "dry-run", Kind: "bool", Value: false, Default: true, Set: true},
		{Name: "ratio", Kind: "double", Value: 0.5, Default: 0.5},
	}
	if err := WriteEnvFile(path, "app", entries); err != nil {
		t.Fatal(err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := "APP_NAME=bob\nAPP_DRY_RUN=false\n"; string(got) != want {
		t.Errorf("env file = %q, want %q", got, want)
	}
}
