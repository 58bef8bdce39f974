package clipboard

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/signadot/nodedit/node"
)

func TestRender(t *testing.T) {
	v := Vec3{1, 2.5, -3}
	tests := []struct {
		p    Payload
		kind Kind
		want string
	}{
		{nil, NotSetKind, "Not set"},
		{NotSet{}, NotSetKind, "Not set"},
		{Position{v}, PositionKind, "Position - {1,2.5,-3}"},
		{Rotation{Vec3{0, 90, 0}}, RotationKind, "Rotation - {0,90,0}"},
		{Scale{Vec3{1, 1, 1}}, ScaleKind, "Scale - {1,1,1}"},
		{NewIntArray([]int32{1, 2}), IntArrayKind, "Args[]"},
		{NewObjects(node.NewMap(), node.NewMap(), node.NewMap()), ObjectsKind, "Object[3]"},
		{Transform{Pos: v, Rot: Vec3{}, Scale: Vec3{1, 1, 1}}, TransformKind,
			"Transform - Pos {1,2.5,-3}, Rot {0,0,0}, Scale {1,1,1}"},
	}
	for _, tt := range tests {
		if got := Render(tt.p); got != tt.want {
			t.Errorf("got %q, want %q", got, tt.want)
		}
		if tt.p != nil && tt.p.Kind() != tt.kind {
			t.Errorf("%q: kind %s, want %s", tt.want, tt.p.Kind(), tt.kind)
		}
	}
}

func TestLastWriterWins(t *testing.T) {
	b := &Board{}
	if b.Current().Kind() != NotSetKind || b.Render() != "Not set" {
		t.Fatalf("fresh board holds %v", b.Current())
	}
	if err := b.Copy(Position{Vec3{1, 2, 3}}); err != nil {
		t.Fatal(err)
	}
	if err := b.Copy(Scale{Vec3{4, 5, 6}}); err != nil {
		t.Fatal(err)
	}
	got, ok := b.Current().(Scale)
	if !ok {
		t.Fatalf("got %T", b.Current())
	}
	if got.Vec3 != (Vec3{4, 5, 6}) {
		t.Errorf("got %v", got.Vec3)
	}
}

func TestMirror(t *testing.T) {
	var mirrored []string
	boom := errors.New("boom")
	b := &Board{Mirror: func(s string) error {
		mirrored = append(mirrored, s)
		if len(mirrored) > 1 {
			return boom
		}
		return nil
	}}
	if err := b.Copy(NewIntArray(nil)); err != nil {
		t.Fatal(err)
	}
	if err := b.Copy(Rotation{}); !errors.Is(err, boom) {
		t.Errorf("got %v", err)
	}
	if b.Current().Kind() != RotationKind {
		t.Errorf("payload not replaced: %s", b.Current().Kind())
	}
	if diff := cmp.Diff([]string{"Args[]", "Rotation - {0,0,0}"}, mirrored); diff != "" {
		t.Error(diff)
	}
}

func TestDefaultBoard(t *testing.T) {
	old := Default
	t.Cleanup(func() { Default = old })
	Default = &Board{}
	if err := Copy(Position{Vec3{1, 0, 0}}); err != nil {
		t.Fatal(err)
	}
	if Current().Kind() != PositionKind {
		t.Errorf("got %s", Current().Kind())
	}
}

func TestObjectsAreClones(t *testing.T) {
	obj := node.FromKeyVals([]node.KeyVal{{Key: "ObjId", Val: node.FromInt32(1)}})
	p := NewObjects(obj)
	if err := obj.Set("ObjId", node.FromInt32(2)); err != nil {
		t.Fatal(err)
	}
	if got := p.Items[0].Get("ObjId").Int; got != 1 {
		t.Errorf("payload changed with the tree: %d", got)
	}
	if p.Items[0].Parent != nil {
		t.Error("payload item is attached")
	}

	vs := []int32{1, 2}
	a := NewIntArray(vs)
	vs[0] = 9
	if a.Values[0] != 1 {
		t.Error("int array aliases its input")
	}
}

func TestVec3Node(t *testing.T) {
	n := node.FromKeyVals([]node.KeyVal{
		{Key: "X", Val: node.FromFloat32(1.5)},
		{Key: "Y", Val: node.FromInt32(2)},
		{Key: "Z", Val: node.FromFloat64(-3).WithTag("deg")},
	})
	v, err := Vec3FromNode(n)
	if err != nil {
		t.Fatal(err)
	}
	if v != (Vec3{1.5, 2, -3}) {
		t.Errorf("got %v", v)
	}
	if err := (Vec3{0.5, 4, 7}).ApplyTo(n); err != nil {
		t.Fatal(err)
	}
	want := node.FromKeyVals([]node.KeyVal{
		{Key: "X", Val: node.FromFloat32(0.5)},
		{Key: "Y", Val: node.FromInt32(4)},
		{Key: "Z", Val: node.FromFloat64(7)},
	})
	if !node.Equal(n, want) {
		t.Errorf("got %v", n.Any())
	}
	if n.Get("Z").Tag != "deg" {
		t.Errorf("tag lost: %q", n.Get("Z").Tag)
	}

	before := n.Clone()
	if err := (Vec3{1, 2.5, 3}).ApplyTo(n); !errors.Is(err, ErrPayloadKindMismatch) {
		t.Errorf("got %v", err)
	}
	if !node.Equal(n, before) {
		t.Error("failed apply wrote components")
	}

	if _, err := Vec3FromNode(node.FromKeyVals([]node.KeyVal{{Key: "X", Val: node.FromString("1")}})); !errors.Is(err, ErrPayloadKindMismatch) {
		t.Errorf("got %v", err)
	}
	if err := (Vec3{}).ApplyTo(node.NewSequence()); !errors.Is(err, ErrPayloadKindMismatch) {
		t.Errorf("got %v", err)
	}
	if !IsVectorNode((Vec3{1, 2, 3}).Node()) {
		t.Error("Node is not a vector")
	}
}

func TestVec3Float32Render(t *testing.T) {
	n := node.FromKeyVals([]node.KeyVal{
		{Key: "X", Val: node.FromFloat32(1.1)},
		{Key: "Y", Val: node.FromFloat32(0)},
		{Key: "Z", Val: node.FromFloat64(0.1)},
	})
	v, err := Vec3FromNode(n)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := (Position{Vec3: v}).String(), "Position - {1.1,0,0.1}"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	dst := n.Clone()
	if err := v.ApplyTo(dst); err != nil {
		t.Fatal(err)
	}
	if !node.Equal(dst, n) {
		t.Errorf("round trip changed the vector: %v", dst.Any())
	}
}
