package quiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is the encoding of a quiz document.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// FormatFromPath infers the document format from a file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported quiz file extension %q", filepath.Ext(path))
	}
}

// UnmarshalJSON fills in the default weight of 1 when the document omits it.
func (tw *TraitWeight) UnmarshalJSON(data []byte) error {
	type alias TraitWeight
	aux := struct {
		Weight *float64 `json:"weight"`
		*alias
	}{alias: (*alias)(tw)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	tw.Weight = 1
	if aux.Weight != nil {
		tw.Weight = *aux.Weight
	}
	return nil
}

// Load reads, validates and decodes the quiz document at path.
func Load(path string) (*Quiz, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read quiz: %w", err)
	}
	q, err := Decode(data, format)
	if err != nil {
		var inv *ErrInvalidQuiz
		if errors.As(err, &inv) {
			inv.Source = path
		}
		return nil, err
	}
	return q, nil
}

// Decode validates a quiz document against the quiz schema, decodes it
// and runs structural validation. All validation failures are returned as
// *ErrInvalidQuiz.
func Decode(data []byte, format Format) (*Quiz, error) {
	doc, err := parseDocument(data, format)
	if err != nil {
		return nil, &ErrInvalidQuiz{Err: err}
	}
	if err := validateDocument(doc); err != nil {
		return nil, &ErrInvalidQuiz{Err: err}
	}

	canonical, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("re-encode quiz document: %w", err)
	}
	var q Quiz
	if err := json.Unmarshal(canonical, &q); err != nil {
		return nil, &ErrInvalidQuiz{Err: fmt.Errorf("decode: %w", err)}
	}

	if err := Validate(&q); err != nil {
		return nil, &ErrInvalidQuiz{Err: err}
	}
	return &q, nil
}

// parseDocument returns the document as a generic JSON value. YAML input is
// round-tripped through JSON so numbers and maps match what the schema
// validator expects.
func parseDocument(data []byte, format Format) (any, error) {
	switch format {
	case FormatJSON:
		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
		return doc, nil
	case FormatYAML:
		var node any
		if err := yaml.Unmarshal(data, &node); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
		b, err := json.Marshal(node)
		if err != nil {
			return nil, fmt.Errorf("convert YAML: %w", err)
		}
		var doc any
		if err := json.Unmarshal(b, &doc); err != nil {
			return nil, fmt.Errorf("convert YAML: %w", err)
		}
		return doc, nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
