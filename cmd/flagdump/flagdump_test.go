// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunJSON(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"flagdump", "--format", "json", "--count", "3", "--nocolor", "--label=x"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}

	var doc struct {
		Flags []struct {
			Name  string `json:"name"`
			Value any    `json:"value"`
			Set   bool   `json:"set"`
		} `json:"flags"`
	}
	if err := json.Unmarshal(stdout.Bytes(), &doc); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, stdout.String())
	}
	got := make(map[string]any)
	var order []string
	for _, f := range doc.Flags {
		order = append(order, f.Name)
		if f.Set {
			got[f.Name] = f.Value
		}
	}
	if want := "color count offset limit ratio label"; strings.Join(order, " ") != want {
		t.Errorf("flag order = %q, want %q", strings.Join(order, " "), want)
	}
	if got["count"] != 3.0 || got["color"] != false || got["label"] != "x" || len(got) != 3 {
		t.Errorf("set flags = %v", got)
	}
}

func TestRunText(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"flagdump", "--ratio=0.25", "--", "a", "--b"}, &stdout, &stderr); code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}
	out := stdout.String()
	if !strings.HasPrefix(out, "FLAG") {
		t.Errorf("text output has no header:\n%s", out)
	}
	if !strings.Contains(out, `args: ["a" "--b"]`) {
		t.Errorf("text output is missing free args:\n%s", out)
	}
}

func TestRunEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flags.env")
	var stdout, stderr bytes.Buffer
	code := run([]string{"flagdump", "--env-file", path, "--format=env", "--offset", "-8"}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr.String())
	}
	if want := "OFFSET=-8\n"; stdout.String() != want {
		t.Errorf("stdout = %q, want %q", stdout.String(), want)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if want := "FLAGDUMP_OFFSET=-8\n"; string(got) != want {
		t.Errorf("env file = %q, want %q", got, want)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{"unknown flag", []string{"flagdump", "--bogus"}, 1, "unregistered flag bogus passed"},
		{"bad value", []string{"flagdump", "--count=many"}, 1, `flag count expects a int32 value, got "many"`},
		{"bad format", []string{"flagdump", "--format=xml"}, 1, "unknown output format"},
		{"help", []string{"flagdump", "--bogus", "-h"}, 0, "--limit=1048576"},
		{"version", []string{"flagdump", "-V"}, 0, "flagdump version 0.1.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != tt.wantCode {
				t.Errorf("run() = %d, want %d", code, tt.wantCode)
			}
			if !strings.Contains(stderr.String(), tt.wantErr) {
				t.Errorf("stderr = %q, want it to contain %q", stderr.String(), tt.wantErr)
			}
			if stdout.Len() != 0 {
				t.Errorf("stdout = %q, want empty", stdout.String())
			}
		})
	}
}
