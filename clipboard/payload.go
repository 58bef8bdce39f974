package clipboard

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/signadot/nodedit/node"
)

// ErrPayloadKindMismatch is wrapped by callers pasting a payload onto a
// target it does not fit.
var ErrPayloadKindMismatch = errors.New("clipboard payload does not fit target")

type Kind int

const (
	NotSetKind Kind = iota
	PositionKind
	RotationKind
	ScaleKind
	IntArrayKind
	ObjectsKind
	TransformKind
)

var kindNames = []string{
	NotSetKind:    "NotSet",
	PositionKind:  "Position",
	RotationKind:  "Rotation",
	ScaleKind:     "Scale",
	IntArrayKind:  "IntArray",
	ObjectsKind:   "Objects",
	TransformKind: "Transform",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// IsVector reports whether payloads of kind k carry a single Vec3.
func (k Kind) IsVector() bool {
	return k == PositionKind || k == RotationKind || k == ScaleKind
}

// Payload is what was last copied. String is its one line rendering.
type Payload interface {
	Kind() Kind
	String() string
}

type NotSet struct{}

type Position struct{ Vec3 }

type Rotation struct{ Vec3 }

type Scale struct{ Vec3 }

// IntArray is a copied object argument list.
type IntArray struct {
	Values []int32
}

// Objects is a copied selection of object nodes. The items are clones
// owned by the payload.
type Objects struct {
	Items []*node.Node
}

type Transform struct {
	Pos, Rot, Scale Vec3
}

func (NotSet) Kind() Kind    { return NotSetKind }
func (Position) Kind() Kind  { return PositionKind }
func (Rotation) Kind() Kind  { return RotationKind }
func (Scale) Kind() Kind     { return ScaleKind }
func (IntArray) Kind() Kind  { return IntArrayKind }
func (Objects) Kind() Kind   { return ObjectsKind }
func (Transform) Kind() Kind { return TransformKind }

func (NotSet) String() string     { return "Not set" }
func (p Position) String() string { return "Position - " + p.Vec3.String() }
func (p Rotation) String() string { return "Rotation - " + p.Vec3.String() }
func (p Scale) String() string    { return "Scale - " + p.Vec3.String() }
func (IntArray) String() string   { return "Args[]" }

func (p Objects) String() string {
	return fmt.Sprintf("Object[%d]", len(p.Items))
}

func (p Transform) String() string {
	return fmt.Sprintf("Transform - Pos %s, Rot %s, Scale %s", p.Pos, p.Rot, p.Scale)
}

// NewIntArray copies vs into an IntArray.
func NewIntArray(vs []int32) IntArray {
	return IntArray{Values: append([]int32(nil), vs...)}
}

// NewObjects clones items into an Objects payload, so later edits of the
// tree cannot reach the copied values.
func NewObjects(items ...*node.Node) Objects {
	res := Objects{Items: make([]*node.Node, len(items))}
	for i, it := range items {
		res.Items[i] = it.Clone()
	}
	return res
}

// VectorOf returns the vector of a Position, Rotation or Scale payload.
func VectorOf(p Payload) (Vec3, bool) {
	switch x := p.(type) {
	case Position:
		return x.Vec3, true
	case Rotation:
		return x.Vec3, true
	case Scale:
		return x.Vec3, true
	}
	return Vec3{}, false
}

// Render is the one line summary of p. A nil payload renders as NotSet.
func Render(p Payload) string {
	if p == nil {
		return NotSet{}.String()
	}
	return p.String()
}
