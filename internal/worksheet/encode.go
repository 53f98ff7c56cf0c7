package worksheet

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format selects the worksheet encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatXLSX Format = "xlsx"
)

// Formats lists the supported encodings.
func Formats() []Format {
	return []Format{FormatText, FormatJSON, FormatYAML, FormatXLSX}
}

// ParseFormat accepts a format name, case-insensitively. "yml" is an alias
// for yaml.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text", "txt":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "xlsx", "excel":
		return FormatXLSX, nil
	}
	return "", fmt.Errorf("unknown format %q (want text, json, yaml or xlsx)", s)
}

// Encode writes ws to w. JSON output is checked against the worksheet
// schema before anything is written.
func Encode(w io.Writer, ws *Worksheet, f Format) error {
	switch f {
	case FormatText:
		_, err := io.WriteString(w, ws.text())
		return err

	case FormatJSON:
		raw, err := json.MarshalIndent(ws, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal worksheet: %w", err)
		}
		if err := Validate(raw); err != nil {
			return err
		}
		raw = append(raw, '\n')
		_, err = w.Write(raw)
		return err

	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(ws); err != nil {
			return fmt.Errorf("encode worksheet yaml: %w", err)
		}
		return enc.Close()

	case FormatXLSX:
		return writeXLSX(w, ws)
	}
	return fmt.Errorf("unknown format %q", f)
}

// Decode reads a worksheet in JSON, YAML or XLSX. JSON input must satisfy
// the worksheet schema.
func Decode(r io.Reader, f Format) (*Worksheet, error) {
	if f == FormatXLSX {
		return readXLSX(r)
	}

	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read worksheet: %w", err)
	}

	var ws Worksheet
	switch f {
	case FormatJSON:
		if err := Validate(raw); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(raw, &ws); err != nil {
			return nil, fmt.Errorf("parse worksheet json: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(raw, &ws); err != nil {
			return nil, fmt.Errorf("parse worksheet yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("cannot decode %q worksheets", f)
	}
	return &ws, nil
}
