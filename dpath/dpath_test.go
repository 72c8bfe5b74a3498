package dpath

import (
	"reflect"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "a", want: []string{"a"}},
		{in: "a.b.c", want: []string{"a", "b", "c"}},
		{in: "store.food", want: []string{"store", "food"}},
		{in: `"eu.west"`, want: []string{"eu.west"}},
		{in: `totals."eu.west".net`, want: []string{"totals", "eu.west", "net"}},
		{in: `"a\"b".c`, want: []string{`a"b`, "c"}},
		{in: `"a\\b"`, want: []string{`a\b`}},
		{in: `""`, want: []string{""}},
	}
	for _, tc := range tests {
		got, err := Parse(tc.in)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", tc.in, err)
			continue
		}
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"",
		".a",
		"a.",
		"a..b",
		`"a`,
		`"a"x`,
		`"a".`,
	} {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q): expected error", in)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	tests := []struct {
		segs []string
		want string
	}{
		{segs: []string{"a", "b"}, want: "a.b"},
		{segs: []string{"eu.west", "net"}, want: `"eu.west".net`},
		{segs: []string{`a"b`}, want: `"a\"b"`},
	}
	for _, tc := range tests {
		got := String(tc.segs)
		if got != tc.want {
			t.Errorf("String(%v) = %q, want %q", tc.segs, got, tc.want)
			continue
		}
		back, err := Parse(got)
		if err != nil {
			t.Errorf("Parse(%q): unexpected error: %v", got, err)
			continue
		}
		if !reflect.DeepEqual(back, tc.segs) {
			t.Errorf("Parse(String(%v)) = %v", tc.segs, back)
		}
	}
}
