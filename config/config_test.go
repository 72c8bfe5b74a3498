package config

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var cmpOpts = cmp.AllowUnexported(OptInt{})

func TestDefault(t *testing.T) {
	c := Default()
	if !c.NumberFormat.OK() || c.NumberFormat.N() != 2 {
		t.Errorf("default numberFormat = %s, want 2", c.NumberFormat)
	}
	if c.Round.OK() {
		t.Errorf("default round = %s, want off", c.Round)
	}
	if c.Prefix != "" || c.Suffix != "" {
		t.Errorf("default prefix/suffix = %q/%q, want empty", c.Prefix, c.Suffix)
	}
}

func TestNew(t *testing.T) {
	c := New(NoNumberFormat(), Round(1), Prefix("$"), Suffix(" USD"))
	want := &Config{
		Round:  Int(1),
		Prefix: "$",
		Suffix: " USD",
	}
	if d := cmp.Diff(want, c, cmpOpts); d != "" {
		t.Errorf("unexpected config (-want +got):\n%s", d)
	}
}

func TestFromYAML(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want *Config
	}{
		{
			name: "empty doc keeps defaults",
			doc:  "",
			want: Default(),
		},
		{
			name: "numberFormat off",
			doc:  "numberFormat: false\nround: 1\n",
			want: &Config{Round: Int(1)},
		},
		{
			name: "partial keeps absent defaults",
			doc:  "prefix: \"$\"\n",
			want: &Config{NumberFormat: Int(2), Prefix: "$"},
		},
		{
			name: "full",
			doc:  "numberFormat: 3\nround: false\nprefix: \"$\"\nsuffix: \" USD\"\n",
			want: &Config{NumberFormat: Int(3), Prefix: "$", Suffix: " USD"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FromYAML([]byte(tc.doc))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d := cmp.Diff(tc.want, got, cmpOpts); d != "" {
				t.Errorf("unexpected config (-want +got):\n%s", d)
			}
		})
	}
}

func TestFromYAMLErrors(t *testing.T) {
	for _, doc := range []string{
		"numberFormat: abc\n",
		"numberFormat: true\n",
		"round: [1]\n",
	} {
		if _, err := FromYAML([]byte(doc)); err == nil {
			t.Errorf("FromYAML(%q): expected error", doc)
		}
	}
}

func TestYAMLRoundTrip(t *testing.T) {
	c := New(NoNumberFormat(), Round(3), Prefix("€"))
	d, err := c.YAML()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	back, err := FromYAML(d)
	if err != nil {
		t.Fatalf("unexpected error decoding %q: %v", d, err)
	}
	if diff := cmp.Diff(c, back, cmpOpts); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestClone(t *testing.T) {
	if c := (*Config)(nil).Clone(); !c.NumberFormat.OK() {
		t.Errorf("nil clone should be default")
	}
	c := New(Prefix("$"))
	cp := c.Clone()
	cp.Prefix = "£"
	if c.Prefix != "$" {
		t.Errorf("clone shares storage with original")
	}
}
