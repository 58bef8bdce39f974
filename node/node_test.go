package node

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMapMutation(t *testing.T) {
	m := NewMap()
	for _, k := range []string{"b", "a", "c"} {
		if err := m.Set(k, FromString(k)); err != nil {
			t.Fatal(err)
		}
	}
	if err := m.Set("a", FromInt32(1)); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"b", "a", "c"}, m.Keys()); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if got := m.Get("a"); got.Kind != Int32Kind || got.ParentField != "a" || got.ParentIndex != 1 {
		t.Errorf("replaced value %+v", got)
	}
	old, err := m.Delete("b")
	if err != nil {
		t.Fatal(err)
	}
	if old.Parent != nil {
		t.Errorf("deleted value still attached")
	}
	if got := m.Get("c").ParentIndex; got != 1 {
		t.Errorf("renumbered index %d, want 1", got)
	}
	if _, err := m.Delete("zz"); !errors.Is(err, ErrPath) {
		t.Errorf("delete missing key: %v", err)
	}
	if err := FromString("x").Set("a", Null()); !errors.Is(err, ErrNotMap) {
		t.Errorf("set on string: %v", err)
	}
}

func TestSequenceMutation(t *testing.T) {
	s := FromSlice([]*Node{FromInt32(0), FromInt32(1), FromInt32(2)})
	if err := s.Insert(1, FromInt32(9)); err != nil {
		t.Fatal(err)
	}
	got := []int64{}
	for i, v := range s.Values {
		if v.ParentIndex != i {
			t.Errorf("element %d has ParentIndex %d", i, v.ParentIndex)
		}
		got = append(got, v.Int)
	}
	if diff := cmp.Diff([]int64{0, 9, 1, 2}, got); diff != "" {
		t.Errorf("values (-want +got):\n%s", diff)
	}
	if _, err := s.RemoveIndex(0); err != nil {
		t.Fatal(err)
	}
	if s.Index(0).Int != 9 || s.Index(0).ParentIndex != 0 {
		t.Errorf("after remove: %+v", s.Index(0))
	}
	if err := s.SetIndex(5, Null()); !errors.Is(err, ErrRange) {
		t.Errorf("set out of range: %v", err)
	}
	if err := s.Insert(-1, Null()); !errors.Is(err, ErrRange) {
		t.Errorf("insert out of range: %v", err)
	}
}

func TestOwnership(t *testing.T) {
	root := sample()
	tr := root.Get("Translate")
	if err := tr.Set("Self", root); !errors.Is(err, ErrCycle) {
		t.Errorf("cycle: %v", err)
	}
	if err := tr.Set("Self", tr); !errors.Is(err, ErrCycle) {
		t.Errorf("self cycle: %v", err)
	}
	other := NewMap()
	if err := other.Set("T", tr); !errors.Is(err, ErrShared) {
		t.Errorf("shared: %v", err)
	}
	if err := other.Set("T", tr.Clone()); err != nil {
		t.Errorf("clone insert: %v", err)
	}
	args := root.Get("Args")
	if err := args.Append(args.Index(0)); !errors.Is(err, ErrShared) {
		t.Errorf("duplicate element: %v", err)
	}
	if err := args.SetIndex(0, args.Index(0)); err != nil {
		t.Errorf("set same element: %v", err)
	}
}

func TestReplace(t *testing.T) {
	root := sample()
	tr := root.Get("Translate")
	tr.Replace(FromSlice([]*Node{FromInt32(1)}))
	if root.Get("Translate") != tr || tr.Kind != SequenceKind {
		t.Fatalf("replace changed identity or kind")
	}
	if tr.Index(0).Parent != tr {
		t.Errorf("replaced children not adopted")
	}
	if tr.Path() != "Translate" {
		t.Errorf("path %q", tr.Path())
	}
}

func TestFromNumber(t *testing.T) {
	tests := []struct {
		kind Kind
		v    float64
		ok   bool
	}{
		{Int32Kind, 3, true},
		{Int32Kind, 3.5, false},
		{Int32Kind, 1 << 31, false},
		{UInt32Kind, -1, false},
		{UInt32Kind, 1 << 31, true},
		{Int64Kind, 1 << 40, true},
		{Float32Kind, 0.5, true},
		{Float64Kind, 1e300, true},
		{Float32Kind, 1e300, false},
		{StringKind, 1, false},
	}
	for _, tt := range tests {
		n, err := FromNumber(tt.kind, tt.v)
		if (err == nil) != tt.ok {
			t.Errorf("FromNumber(%s, %v) err = %v", tt.kind, tt.v, err)
			continue
		}
		if err == nil && n.Kind != tt.kind {
			t.Errorf("FromNumber(%s, %v) kind %s", tt.kind, tt.v, n.Kind)
		}
	}
}

func TestScalarText(t *testing.T) {
	tests := []struct {
		n    *Node
		want string
	}{
		{FromString("x y"), "x y"},
		{FromBool(false), "false"},
		{FromInt32(-4), "-4"},
		{FromUint64(1 << 63), "9223372036854775808"},
		{FromFloat32(0.1), "0.1"},
		{FromFloat64(0.1), "0.1"},
		{NewMap(), ""},
	}
	for _, tt := range tests {
		if got := tt.n.ScalarText(); got != tt.want {
			t.Errorf("%s: %q, want %q", tt.n.Kind, got, tt.want)
		}
	}
}

func TestKind(t *testing.T) {
	for _, k := range Kinds() {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var kk Kind
		if err := kk.UnmarshalText(d); err != nil || kk != k {
			t.Errorf("%s: got %s, %v", k, kk, err)
		}
	}
	if k, err := ParseKind("u32"); err != nil || k != UInt32Kind {
		t.Errorf("ParseKind(u32) = %s, %v", k, err)
	}
	if _, err := ParseKind("quaternion"); !errors.Is(err, ErrKind) {
		t.Errorf("ParseKind(bad): %v", err)
	}
}
