// SPDX-License-Identifier: EPL-2.0

package flagmap

import (
	"fmt"
	"strconv"
	"strings"
)

// KV is one flag as a key/value pair. Legacy flag strings and mapper
// output both use this shape.
type KV struct {
	Key   string
	Value string
}

// Kind selects how a rule transforms its source value.
type Kind string

const (
	// Copy passes the source value through unchanged.
	Copy Kind = "copy"
	// Scale reads the source as a float in [0, 1] and maps it linearly
	// onto [ScaleMin, ScaleMax].
	Scale Kind = "scale"
	// Map looks the source value up in the rule's Map table.
	Map Kind = "map"
	// Constant emits the rule's Value whenever the source is present.
	Constant Kind = "constant"
)

// KindOf maps a transform kind name onto its Kind. Unknown names fall
// back to Copy.
func KindOf(name string) Kind {
	switch name {
	case "scale":
		return Scale
	case "map":
		return Map
	case "constant":
		return Constant
	default:
		return Copy
	}
}

// Rule translates one legacy flag into one engine flag.
type Rule struct {
	// Source names the legacy flag to read.
	Source string
	// Target names the engine flag to write.
	Target string
	// Default is emitted when the source flag is absent. Empty means no
	// default.
	Default string

	Kind     Kind
	ScaleMin float64
	ScaleMax float64
	Map      map[string]string
	Value    string
}

// transform applies the rule's kind to a present source value. ok
// reports whether an output value was produced.
func (r *Rule) transform(input string) (out, warning string, ok bool) {
	switch r.Kind {
	case Scale:
		val, err := strconv.ParseFloat(input, 64)
		if err != nil {
			return "", "scale: invalid number format", false
		}
		scaled := r.ScaleMin + (r.ScaleMax-r.ScaleMin)*val
		return fmt.Sprintf("%.6g", scaled), "", true

	case Map:
		if v, found := r.Map[input]; found {
			return v, "", true
		}
		return "", fmt.Sprintf("map: value %q not found in mapping", input), false

	case Constant:
		if r.Value == "" {
			return "", "", false
		}
		return r.Value, "", true

	default:
		return input, "", true
	}
}

// Mapper holds an ordered rule set for one engine.
type Mapper struct {
	Engine  string
	Version string
	Rules   []Rule
}

// Result holds the outcome of a mapping run.
type Result struct {
	// Flags are the translated key/value pairs in rule order.
	Flags []KV
	// Warnings describe source values no rule could translate.
	Warnings []string
}

// Apply runs every rule in order against the legacy flags. Rules whose
// source flag is present transform its value; rules whose source is
// absent fall back to their default or produce nothing. The first
// legacy entry with a matching key wins when keys repeat.
func (m *Mapper) Apply(legacy []KV) Result {
	var res Result
	for i := range m.Rules {
		rule := &m.Rules[i]
		input, found := lookup(legacy, rule.Source)

		switch {
		case found:
			out, warning, ok := rule.transform(input)
			if ok {
				res.Flags = append(res.Flags, KV{Key: rule.Target, Value: out})
			}
			if warning != "" {
				res.Warnings = append(res.Warnings, warning)
			}
		case rule.Default != "":
			res.Flags = append(res.Flags, KV{Key: rule.Target, Value: rule.Default})
		}
	}
	return res
}

func lookup(kvs []KV, key string) (string, bool) {
	for _, kv := range kvs {
		if kv.Key == key {
			return kv.Value, true
		}
	}
	return "", false
}

// ParseLegacy splits a legacy flag string of the form "g=50;t=-20" into
// ordered key/value pairs. Segments without an equals sign are dropped,
// values keep everything after the first equals sign, and only leading
// spaces and tabs are trimmed.
func ParseLegacy(s string) []KV {
	if s == "" {
		return nil
	}

	var kvs []KV
	for _, seg := range strings.Split(s, ";") {
		eq := strings.IndexByte(seg, '=')
		if eq < 0 {
			continue
		}
		kvs = append(kvs, KV{
			Key:   strings.TrimLeft(seg[:eq], " \t"),
			Value: strings.TrimLeft(seg[eq+1:], " \t"),
		})
	}
	return kvs
}
