// SPDX-License-Identifier: EPL-2.0

package manifest

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
)

// Manifest describes an external resampler engine: how to reach it, which
// output formats it supports and which flags it understands.
type Manifest struct {
	Name    string `json:"name"`
	Version string `json:"version"`
	Vendor  string `json:"vendor,omitempty"`
	License string `json:"license,omitempty"`
	Entry   Entry  `json:"entry"`
	Audio   Audio  `json:"audio"`
	Flags   []Flag `json:"flags,omitempty"`
}

// Entry locates the engine binary and how to invoke it.
type Entry struct {
	// Type is one of "dll", "cli" or "ipc".
	Type string `json:"type"`
	// Path points at the engine binary, relative to the manifest.
	Path string `json:"path"`
	// Symbol names the entry point inside a dll. Optional.
	Symbol string `json:"symbol,omitempty"`
}

// Audio lists the output formats the engine can produce.
type Audio struct {
	Rates     []int `json:"rates"`
	Channels  []int `json:"channels"`
	Streaming bool  `json:"streaming,omitempty"`
}

// Flag describes one engine option.
type Flag struct {
	Key string `json:"key"`
	// Type is one of "float", "int", "bool", "string" or "enum".
	Type string `json:"type"`
	Desc string `json:"desc"`
	// Range holds [min, max] for numeric flags. Optional.
	Range []float64 `json:"range,omitempty"`
	// Values lists the accepted strings of an enum flag.
	Values []string `json:"values,omitempty"`
	// Default holds the default value in string form.
	Default string `json:"default,omitempty"`
}

type flagDoc struct {
	Key     string          `json:"key"`
	Type    string          `json:"type"`
	Desc    string          `json:"desc"`
	Range   []float64       `json:"range"`
	Values  []string        `json:"values"`
	Default json.RawMessage `json:"default"`
}

// UnmarshalJSON accepts defaults written as JSON strings, numbers or
// booleans. Numbers are rendered with six decimal places and booleans as
// "true"/"false"; defaults of any other shape are dropped.
func (f *Flag) UnmarshalJSON(data []byte) error {
	var doc flagDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}

	f.Key = doc.Key
	f.Type = doc.Type
	f.Desc = doc.Desc
	f.Range = doc.Range
	f.Values = doc.Values
	f.Default = normalizeDefault(doc.Default)
	return nil
}

func normalizeDefault(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return fmt.Sprintf("%.6f", n)
	}

	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		if b {
			return "true"
		}
		return "false"
	}
	return ""
}

// Parse decodes and validates a manifest document. Malformed JSON is
// reported as ErrInvalidJSON; well-formed JSON that violates the schema
// as ErrInvalidManifest.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		var syntax *json.SyntaxError
		if errors.As(err, &syntax) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Load reads and parses the manifest file at path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}
	return m, nil
}

// Validate checks m against the manifest schema and reports the first
// violation found, wrapping ErrInvalidManifest.
func (m *Manifest) Validate() error {
	if m.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidManifest)
	}
	if m.Version == "" {
		return fmt.Errorf("%w: version is required", ErrInvalidManifest)
	}

	switch m.Entry.Type {
	case "dll", "cli", "ipc":
	default:
		return fmt.Errorf("%w: entry type %q (want dll, cli or ipc)", ErrInvalidManifest, m.Entry.Type)
	}
	if m.Entry.Path == "" {
		return fmt.Errorf("%w: entry path is required", ErrInvalidManifest)
	}

	if len(m.Audio.Rates) == 0 {
		return fmt.Errorf("%w: audio rates must not be empty", ErrInvalidManifest)
	}
	for _, r := range m.Audio.Rates {
		if r <= 0 || r > 192000 {
			return fmt.Errorf("%w: audio rate %d out of range", ErrInvalidManifest, r)
		}
	}
	if len(m.Audio.Channels) == 0 {
		return fmt.Errorf("%w: audio channels must not be empty", ErrInvalidManifest)
	}
	for _, c := range m.Audio.Channels {
		if c < 1 || c > 8 {
			return fmt.Errorf("%w: audio channel count %d out of range", ErrInvalidManifest, c)
		}
	}

	for i := range m.Flags {
		if err := m.Flags[i].validate(); err != nil {
			return fmt.Errorf("flag %d: %w", i, err)
		}
	}
	return nil
}

func (f *Flag) validate() error {
	if f.Key == "" {
		return fmt.Errorf("%w: flag key is required", ErrInvalidManifest)
	}
	switch f.Type {
	case "float", "int", "bool", "string", "enum":
	default:
		return fmt.Errorf("%w: flag type %q (want float, int, bool, string or enum)", ErrInvalidManifest, f.Type)
	}
	if f.Desc == "" {
		return fmt.Errorf("%w: flag desc is required", ErrInvalidManifest)
	}

	switch f.Type {
	case "float", "int":
		// Range is optional on numeric flags and ignored everywhere else.
		if f.Range != nil {
			if len(f.Range) != 2 {
				return fmt.Errorf("%w: range must hold [min, max]", ErrInvalidManifest)
			}
			if f.Range[0] >= f.Range[1] {
				return fmt.Errorf("%w: range min %g not below max %g", ErrInvalidManifest, f.Range[0], f.Range[1])
			}
		}
	case "enum":
		if len(f.Values) == 0 {
			return fmt.Errorf("%w: enum flag needs values", ErrInvalidManifest)
		}
		for _, v := range f.Values {
			if v == "" {
				return fmt.Errorf("%w: enum values must not be empty", ErrInvalidManifest)
			}
		}
	}
	return nil
}

// Supports reports whether the engine advertises the given output format.
func (m *Manifest) Supports(rate, channels int) bool {
	return slices.Contains(m.Audio.Rates, rate) &&
		slices.Contains(m.Audio.Channels, channels)
}

// FindFlag returns the descriptor for key, or nil when the engine does
// not advertise such a flag.
func (m *Manifest) FindFlag(key string) *Flag {
	for i := range m.Flags {
		if m.Flags[i].Key == key {
			return &m.Flags[i]
		}
	}
	return nil
}
