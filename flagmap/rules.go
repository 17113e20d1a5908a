// SPDX-License-Identifier: EPL-2.0

package flagmap

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrInvalidRules indicates a rule document that is not valid JSON.
var ErrInvalidRules = errors.New("invalid flag rules")

// Rule documents nest their fields: the source and target flags are
// objects carrying a name, and the transform carries its parameters.
type ruleDoc struct {
	Source struct {
		Name string `json:"name"`
	} `json:"source"`
	Target struct {
		Name    string          `json:"name"`
		Default json.RawMessage `json:"default"`
	} `json:"target"`
	Transform *struct {
		Kind  string            `json:"kind"`
		Scale []float64         `json:"scale"`
		Map   map[string]string `json:"map"`
		Value string            `json:"value"`
	} `json:"transform"`
}

type mapperDoc struct {
	Engine  string    `json:"engine"`
	Version string    `json:"version"`
	Rules   []ruleDoc `json:"rules"`
}

// Parse decodes a rule document. Rules without a source or target name
// are dropped rather than rejected.
func Parse(data []byte) (*Mapper, error) {
	var doc mapperDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRules, err)
	}

	m := &Mapper{Engine: doc.Engine, Version: doc.Version}
	for i := range doc.Rules {
		rd := &doc.Rules[i]
		if rd.Source.Name == "" || rd.Target.Name == "" {
			continue
		}
		m.Rules = append(m.Rules, rd.rule())
	}
	return m, nil
}

// Load reads and parses the rule document at path.
func Load(path string) (*Mapper, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read flag rules: %w", err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("flag rules %s: %w", path, err)
	}
	return m, nil
}

func (rd *ruleDoc) rule() Rule {
	r := Rule{
		Source:  rd.Source.Name,
		Target:  rd.Target.Name,
		Default: defaultString(rd.Target.Default),
		Kind:    Copy,
	}
	if rd.Transform == nil {
		return r
	}

	r.Kind = KindOf(rd.Transform.Kind)
	switch r.Kind {
	case Scale:
		if len(rd.Transform.Scale) >= 2 {
			r.ScaleMin = rd.Transform.Scale[0]
			r.ScaleMax = rd.Transform.Scale[1]
		}
	case Map:
		r.Map = rd.Transform.Map
	case Constant:
		r.Value = rd.Transform.Value
	}
	return r
}

// defaultString renders a default written as a JSON string or number.
// Numbers use the same compact form scaled values are formatted with.
func defaultString(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return fmt.Sprintf("%.6g", n)
	}
	return ""
}
