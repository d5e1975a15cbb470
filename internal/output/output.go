// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package output renders search results for the CLI.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/yt-url/internal/search"
)

// Format selects how a result is written.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ParseFormat validates s as a Format. Matching is case-insensitive; the
// empty string selects FormatText.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "":
		return FormatText, nil
	case FormatText, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or yaml)", s)
	}
}

// Write renders r to w. Text output is the bare watch URL.
func Write(w io.Writer, f Format, r search.Result) error {
	switch f {
	case FormatText, "":
		_, err := fmt.Fprintln(w, r.URL)
		return err
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
}
