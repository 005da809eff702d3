// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package flagfmt prints the resolved flags of a registry as a table, in a
// structured encoding, or as environment variable assignments.
package flagfmt

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/gflags/pkg/gflags"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
	Env  Format = "env"
)

// Formats lists the supported formats.
var Formats = []Format{Text, JSON, YAML, TOML, Env}

var ErrUnknownFormat = errors.New("unknown output format")

// ParseFormat returns the format named s, ignoring case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w %q", ErrUnknownFormat, s)
}

// Entry is the state of one flag after parsing.
type Entry struct {
	Name    string `json:"name" yaml:"name" toml:"name"`
	Kind    string `json:"kind" yaml:"kind" toml:"kind"`
	Value   any    `json:"value" yaml:"value" toml:"value"`
	Default any    `json:"default" yaml:"default" toml:"default"`
	Set     bool   `json:"set" yaml:"set" toml:"set"`
}

// Snapshot returns one entry per flag in r, in registration order.
func Snapshot(r *gflags.Registry) []Entry {
	var entries []Entry
	for d := range r.All() {
		_, set := d.Parsed()
		entries = append(entries, Entry{
			Name:    d.Name(),
			Kind:    d.Kind().String(),
			Value:   d.Value().Interface(),
			Default: d.Default().Interface(),
			Set:     set,
		})
	}
	return entries
}

type document struct {
	Flags []Entry `json:"flags" yaml:"flags" toml:"flag"`
}

// Encode writes entries to w in the given format.
func Encode(w io.Writer, f Format, entries []Entry) error {
	switch f {
	case Text:
		return encodeText(w, entries)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(document{Flags: nonNil(entries)})
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(document{Flags: nonNil(entries)}); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case TOML:
		if err := toml.NewEncoder(w).Encode(document{Flags: tomlSafe(entries)}); err != nil {
			return fmt.Errorf("failed to encode toml: %w", err)
		}
		return nil
	case Env:
		return encodeEnv(w, "", entries)
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, string(f))
	}
}

func encodeText(w io.Writer, entries []Entry) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "FLAG\tTYPE\tVALUE\tDEFAULT\tSET")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%t\n", e.Name, e.Kind, render(e.Value), render(e.Default), e.Set)
	}
	return tw.Flush()
}

// render formats a payload the way help text does.
func render(v any) string {
	switch x := v.(type) {
	case bool:
		return gflags.Render(gflags.ValueOf(x))
	case int32:
		return gflags.Render(gflags.ValueOf(x))
	case int64:
		return gflags.Render(gflags.ValueOf(x))
	case uint64:
		return gflags.Render(gflags.ValueOf(x))
	case float64:
		return gflags.Render(gflags.ValueOf(x))
	case string:
		return gflags.Render(gflags.ValueOf(x))
	default:
		return fmt.Sprint(v)
	}
}

func nonNil(entries []Entry) []Entry {
	if entries == nil {
		return []Entry{}
	}
	return entries
}

// tomlSafe replaces uint64 payloads that do not fit a TOML integer, which is
// a signed 64-bit value, with their decimal string.
func tomlSafe(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		e.Value = tomlValue(e.Value)
		e.Default = tomlValue(e.Default)
		out[i] = e
	}
	return out
}

func tomlValue(v any) any {
	if u, ok := v.(uint64); ok && u > math.MaxInt64 {
		return strconv.FormatUint(u, 10)
	}
	return v
}
