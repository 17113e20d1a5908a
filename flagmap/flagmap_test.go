// SPDX-License-Identifier: EPL-2.0

package flagmap

import (
	"slices"
	"testing"
)

func TestParseLegacy(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  []KV
	}{
		{"basic", "g=50;t=-20", []KV{{"g", "50"}, {"t", "-20"}}},
		{"single", "g=1", []KV{{"g", "1"}}},
		{"empty", "", nil},
		{"empty segment skipped", "g=50;;t=1", []KV{{"g", "50"}, {"t", "1"}}},
		{"segment without equals dropped", "noeq;x=1", []KV{{"x", "1"}}},
		{"value keeps later equals", "a=1=2", []KV{{"a", "1=2"}}},
		{"empty value kept", "g=", []KV{{"g", ""}}},
		{"leading whitespace trimmed", "\tg= 50", []KV{{"g", "50"}}},
		{"trailing whitespace kept", "g =50 ", []KV{{"g ", "50 "}}},
		{"duplicate keys kept in order", "g=1;g=2", []KV{{"g", "1"}, {"g", "2"}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := ParseLegacy(tc.input); !slices.Equal(got, tc.want) {
				t.Errorf("ParseLegacy(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestMapper_Apply_Copy(t *testing.T) {
	t.Parallel()

	m := &Mapper{Rules: []Rule{{Source: "g", Target: "gender", Kind: Copy}}}

	res := m.Apply([]KV{{"g", "0.7"}})
	if want := []KV{{"gender", "0.7"}}; !slices.Equal(res.Flags, want) {
		t.Errorf("Flags = %v, want %v", res.Flags, want)
	}
	if len(res.Warnings) != 0 {
		t.Errorf("Warnings = %v", res.Warnings)
	}
}

func TestMapper_Apply_Scale(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		min, max float64
		input    string
		want     string
	}{
		{"midpoint", 0, 127, "0.5", "63.5"},
		{"low end", 0, 127, "0", "0"},
		{"high end", 0, 127, "1", "127"},
		{"signed interval", -100, 100, "0.75", "50"},
		{"above one is not clamped", 0, 100, "2", "200"},
		{"below zero is not clamped", 0, 100, "-0.5", "-50"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			m := &Mapper{Rules: []Rule{{
				Source: "v", Target: "velocity",
				Kind: Scale, ScaleMin: tc.min, ScaleMax: tc.max,
			}}}

			res := m.Apply([]KV{{"v", tc.input}})
			if want := []KV{{"velocity", tc.want}}; !slices.Equal(res.Flags, want) {
				t.Errorf("Flags = %v, want %v", res.Flags, want)
			}
		})
	}
}

func TestMapper_Apply_ScaleRejectsNonNumbers(t *testing.T) {
	t.Parallel()

	m := &Mapper{Rules: []Rule{{
		Source: "v", Target: "velocity",
		Kind: Scale, ScaleMin: 0, ScaleMax: 127,
	}}}

	for _, input := range []string{"abc", "1.2.3", "50 ", ""} {
		res := m.Apply([]KV{{"v", input}})
		if len(res.Flags) != 0 {
			t.Errorf("Apply(v=%q) Flags = %v, want none", input, res.Flags)
		}
		if len(res.Warnings) != 1 || res.Warnings[0] != "scale: invalid number format" {
			t.Errorf("Apply(v=%q) Warnings = %v", input, res.Warnings)
		}
	}
}

func TestMapper_Apply_Map(t *testing.T) {
	t.Parallel()

	m := &Mapper{Rules: []Rule{{
		Source: "mode", Target: "mode",
		Kind: Map, Map: map[string]string{"0": "legato", "1": "staccato"},
	}}}

	res := m.Apply([]KV{{"mode", "1"}})
	if want := []KV{{"mode", "staccato"}}; !slices.Equal(res.Flags, want) {
		t.Errorf("Flags = %v, want %v", res.Flags, want)
	}
}

func TestMapper_Apply_MapMissWarns(t *testing.T) {
	t.Parallel()

	m := &Mapper{Rules: []Rule{{
		Source: "mode", Target: "mode",
		Kind: Map, Map: map[string]string{"0": "legato"},
	}}}

	res := m.Apply([]KV{{"mode", "9"}})
	if len(res.Flags) != 0 {
		t.Errorf("Flags = %v, want none", res.Flags)
	}
	if want := `map: value "9" not found in mapping`; len(res.Warnings) != 1 || res.Warnings[0] != want {
		t.Errorf("Warnings = %v, want [%s]", res.Warnings, want)
	}
}

func TestMapper_Apply_Constant(t *testing.T) {
	t.Parallel()

	rule := Rule{Source: "compat", Target: "engine", Kind: Constant, Value: "world"}

	m := &Mapper{Rules: []Rule{rule}}
	res := m.Apply([]KV{{"compat", "on"}})
	if want := []KV{{"engine", "world"}}; !slices.Equal(res.Flags, want) {
		t.Errorf("Flags = %v, want %v", res.Flags, want)
	}

	// The constant only fires when the source flag is present.
	if res := m.Apply(nil); len(res.Flags) != 0 {
		t.Errorf("Flags without source = %v, want none", res.Flags)
	}

	// An empty constant produces nothing, silently.
	empty := &Mapper{Rules: []Rule{{Source: "compat", Target: "engine", Kind: Constant}}}
	res = empty.Apply([]KV{{"compat", "on"}})
	if len(res.Flags) != 0 || len(res.Warnings) != 0 {
		t.Errorf("empty constant: Flags = %v, Warnings = %v", res.Flags, res.Warnings)
	}
}

func TestMapper_Apply_DefaultWhenSourceAbsent(t *testing.T) {
	t.Parallel()

	m := &Mapper{Rules: []Rule{
		{Source: "v", Target: "velocity", Kind: Copy, Default: "100"},
		{Source: "g", Target: "gender", Kind: Copy},
	}}

	res := m.Apply(nil)
	if want := []KV{{"velocity", "100"}}; !slices.Equal(res.Flags, want) {
		t.Errorf("Flags = %v, want %v", res.Flags, want)
	}
}

func TestMapper_Apply_KeepsRuleOrder(t *testing.T) {
	t.Parallel()

	m := &Mapper{Rules: []Rule{
		{Source: "z", Target: "zulu", Kind: Copy},
		{Source: "a", Target: "alpha", Kind: Copy},
		{Source: "m", Target: "mike", Kind: Copy},
	}}

	res := m.Apply([]KV{{"a", "1"}, {"m", "2"}, {"z", "3"}})
	want := []KV{{"zulu", "3"}, {"alpha", "1"}, {"mike", "2"}}
	if !slices.Equal(res.Flags, want) {
		t.Errorf("Flags = %v, want %v", res.Flags, want)
	}
}

func TestMapper_Apply_FirstMatchWins(t *testing.T) {
	t.Parallel()

	m := &Mapper{Rules: []Rule{{Source: "g", Target: "gender", Kind: Copy}}}

	res := m.Apply([]KV{{"g", "1"}, {"g", "2"}})
	if want := []KV{{"gender", "1"}}; !slices.Equal(res.Flags, want) {
		t.Errorf("Flags = %v, want %v", res.Flags, want)
	}
}

func TestMapper_Apply_UnknownKindCopies(t *testing.T) {
	t.Parallel()

	m := &Mapper{Rules: []Rule{{Source: "g", Target: "gender", Kind: Kind("fancy")}}}

	res := m.Apply([]KV{{"g", "0.3"}})
	if want := []KV{{"gender", "0.3"}}; !slices.Equal(res.Flags, want) {
		t.Errorf("Flags = %v, want %v", res.Flags, want)
	}
}

func TestMapper_Apply_MixedRun(t *testing.T) {
	t.Parallel()

	m := &Mapper{
		Engine: "worldline",
		Rules: []Rule{
			{Source: "v", Target: "velocity", Kind: Scale, ScaleMin: 0, ScaleMax: 127, Default: "100"},
			{Source: "mode", Target: "mode", Kind: Map, Map: map[string]string{"0": "legato"}},
			{Source: "g", Target: "gender", Kind: Copy},
			{Source: "compat", Target: "engine", Kind: Constant, Value: "world"},
		},
	}

	res := m.Apply(ParseLegacy("v=0.5;mode=9;compat=on"))

	want := []KV{{"velocity", "63.5"}, {"engine", "world"}}
	if !slices.Equal(res.Flags, want) {
		t.Errorf("Flags = %v, want %v", res.Flags, want)
	}
	if len(res.Warnings) != 1 {
		t.Errorf("Warnings = %v, want one map miss", res.Warnings)
	}
}

func TestKindOf(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		want Kind
	}{
		{"copy", Copy},
		{"scale", Scale},
		{"map", Map},
		{"constant", Constant},
		{"", Copy},
		{"unknown", Copy},
	}
	for _, tc := range cases {
		if got := KindOf(tc.name); got != tc.want {
			t.Errorf("KindOf(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}
