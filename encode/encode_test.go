package encode

import (
	"bytes"
	"testing"

	"github.com/tallyfmt/rollup/config"
	"github.com/tallyfmt/rollup/tree"
)

// builds {store: {food: 30, wine: 15}, misc: 5} with totals as an
// accumulator would maintain them.
func report(cfg *config.Config) *tree.Node {
	root := tree.New(cfg)
	store := tree.New(cfg)
	store.Set("food", float64(30))
	store.Set("wine", float64(15))
	store.AddTotal(45)
	root.Set("store", store)
	root.Set("misc", float64(5))
	root.AddTotal(50)
	return root
}

func TestEncode(t *testing.T) {
	root := report(config.New(config.Prefix("$")))
	tests := []struct {
		name string
		opts []EncodeOption
		want string
	}{
		{
			name: "formatted",
			want: "store: $45.00\n  food: $30.00\n  wine: $15.00\nmisc: $5.00\n",
		},
		{
			name: "raw",
			opts: []EncodeOption{Raw(true)},
			want: "store: 45\n  food: 30\n  wine: 15\nmisc: 5\n",
		},
		{
			name: "no totals",
			opts: []EncodeOption{Raw(true), NoTotals(true)},
			want: "store:\n  food: 30\n  wine: 15\nmisc: 5\n",
		},
		{
			name: "indent",
			opts: []EncodeOption{Raw(true), Indent(4)},
			want: "store: 45\n    food: 30\n    wine: 15\nmisc: 5\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			buf := bytes.NewBuffer(nil)
			if err := Encode(root, buf, tc.opts...); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := buf.String(); got != tc.want {
				t.Errorf("Encode() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMustString(t *testing.T) {
	root := report(nil)
	want := "store: 45.00\n  food: 30.00\n  wine: 15.00\nmisc: 5.00\n"
	if got := MustString(root); got != want {
		t.Errorf("MustString() = %q, want %q", got, want)
	}
}

func TestEncodeEmpty(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(tree.New(nil), buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Encode(empty) = %q, want empty", buf.String())
	}
}

func TestAutoColors(t *testing.T) {
	if c := AutoColors(bytes.NewBuffer(nil)); c != nil {
		t.Errorf("AutoColors(buffer) = %v, want nil", c)
	}
	// Colorize(nil) keeps plain output
	root := report(nil)
	plain := MustString(root)
	if got := MustString(root, Colorize(nil)); got != plain {
		t.Errorf("Colorize(nil) changed output")
	}
}
