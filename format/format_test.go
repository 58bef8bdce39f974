package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		got, err := ParseFormat(f.String())
		if err != nil || got != f {
			t.Errorf("%s: got %v %v", f, got, err)
		}
	}
	if f, err := ParseFormat("YML"); err != nil || f != YAMLFormat {
		t.Errorf("YML: got %v %v", f, err)
	}
	if _, err := ParseFormat("tony"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("got %v", err)
	}
}

func TestFromPath(t *testing.T) {
	tests := []struct {
		path string
		want Format
		err  bool
	}{
		{"a/b.yaml", YAMLFormat, false},
		{"b.YML", YAMLFormat, false},
		{"objflow.json", JSONFormat, false},
		{"course.ir.json", IRFormat, false},
		{"course.byml", 0, true},
		{"noext", 0, true},
	}
	for _, tt := range tests {
		got, err := FromPath(tt.path)
		if tt.err {
			if !errors.Is(err, ErrBadFormat) {
				t.Errorf("%s: got %v", tt.path, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("%s: got %v %v, want %v", tt.path, got, err, tt.want)
		}
	}
}

func TestTextRoundTrip(t *testing.T) {
	var f Format
	if err := f.UnmarshalText([]byte("ir")); err != nil || f != IRFormat {
		t.Errorf("got %v %v", f, err)
	}
	if _, err := Format(9).MarshalText(); err == nil {
		t.Error("expected error")
	}
}
