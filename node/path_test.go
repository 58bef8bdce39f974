package node

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParsePath(t *testing.T) {
	tests := []struct {
		in   string
		want []Segment
		err  bool
	}{
		{in: "", want: nil},
		{in: "$", want: nil},
		{in: "a", want: []Segment{{Key: "a"}}},
		{in: "a.b[0]", want: []Segment{{Key: "a"}, {Key: "b"}, {Index: 0, IsIndex: true}}},
		{in: "[2].X", want: []Segment{{Index: 2, IsIndex: true}, {Key: "X"}}},
		{in: `"a.b"[1]`, want: []Segment{{Key: "a.b"}, {Index: 1, IsIndex: true}}},
		{in: `x."y z"`, want: []Segment{{Key: "x"}, {Key: "y z"}}},
		{in: "a.", err: true},
		{in: "a[", err: true},
		{in: "a[-1]", err: true},
		{in: "a[x]", err: true},
		{in: "[0]b", err: true},
		{in: "a..b", err: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePath(tt.in)
			if tt.err {
				if !errors.Is(err, ErrPath) {
					t.Errorf("expected path error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
			if tt.in != "$" {
				if back := FormatPath(got); back != tt.in {
					t.Errorf("FormatPath = %q, want %q", back, tt.in)
				}
			}
		})
	}
}

func TestNodePath(t *testing.T) {
	root := FromKeyVals([]KeyVal{
		{Key: "Objs", Val: FromSlice([]*Node{
			sample(),
		})},
		{Key: "odd key", Val: NewMap()},
	})
	x, err := root.GetPath("Objs[0].Translate.X")
	if err != nil {
		t.Fatal(err)
	}
	if got := x.Path(); got != "Objs[0].Translate.X" {
		t.Errorf("Path() = %q", got)
	}
	if got := FormatPath(x.Segments()); got != "Objs[0].Translate.X" {
		t.Errorf("Segments() = %q", got)
	}
	odd := root.Get("odd key")
	if got := odd.Path(); got != `"odd key"` {
		t.Errorf("quoted path = %q", got)
	}
	if back, err := root.GetPath(odd.Path()); err != nil || back != odd {
		t.Errorf("GetPath(%q) = %v, %v", odd.Path(), back, err)
	}
	for _, bad := range []string{"Objs[1]", "Objs.X", "Objs[0].Nope", "Objs[0].Name.X"} {
		if _, err := root.GetPath(bad); !errors.Is(err, ErrPath) {
			t.Errorf("GetPath(%q): %v", bad, err)
		}
	}
}
