package clipboard

import (
	"fmt"
	"math"
	"strconv"

	"github.com/signadot/nodedit/node"
)

// Vec3 is a position, rotation or scale.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) String() string {
	return "{" + ftoa(v.X) + "," + ftoa(v.Y) + "," + ftoa(v.Z) + "}"
}

func ftoa(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Vec3FromNode reads a map with numeric X, Y and Z fields. Float32
// components are read as the shortest decimal naming them, so that 1.1
// stays 1.1 rather than 1.100000023841858.
func Vec3FromNode(n *node.Node) (Vec3, error) {
	var res Vec3
	for _, c := range []struct {
		key string
		dst *float64
	}{{"X", &res.X}, {"Y", &res.Y}, {"Z", &res.Z}} {
		comp := n.Get(c.key)
		f, ok := comp.Number()
		if !ok {
			return Vec3{}, fmt.Errorf("%w: %s is not a numeric vector", ErrPayloadKindMismatch, pathOf(n))
		}
		if comp.Kind == node.Float32Kind {
			f = widen32(f)
		}
		*c.dst = f
	}
	return res, nil
}

func widen32(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return f
	}
	res, err := strconv.ParseFloat(strconv.FormatFloat(f, 'g', -1, 32), 64)
	if err != nil || math.Abs(res) > math.MaxFloat32 {
		return f
	}
	return res
}

// Node builds an X, Y, Z map of Float32 components.
func (v Vec3) Node() *node.Node {
	return node.FromKeyVals([]node.KeyVal{
		{Key: "X", Val: node.FromFloat32(float32(v.X))},
		{Key: "Y", Val: node.FromFloat32(float32(v.Y))},
		{Key: "Z", Val: node.FromFloat32(float32(v.Z))},
	})
}

// ApplyTo writes v into the X, Y and Z fields of dst, keeping the kind of
// each existing component. Nothing is written unless every component
// fits.
func (v Vec3) ApplyTo(dst *node.Node) error {
	if !dst.IsMap() {
		return fmt.Errorf("%w: %s is not a map", ErrPayloadKindMismatch, pathOf(dst))
	}
	keys := []string{"X", "Y", "Z"}
	comps := []float64{v.X, v.Y, v.Z}
	vals := make([]*node.Node, 3)
	for i, k := range keys {
		kind, tag := node.Float32Kind, ""
		if cur := dst.Get(k); cur != nil {
			tag = cur.Tag
			if cur.Kind.IsNumber() {
				kind = cur.Kind
			}
		}
		n, err := node.FromNumber(kind, comps[i])
		if err != nil {
			return fmt.Errorf("%w: %s.%s: %w", ErrPayloadKindMismatch, pathOf(dst), k, err)
		}
		n.Tag = tag
		vals[i] = n
	}
	for i, k := range keys {
		if err := dst.Set(k, vals[i]); err != nil {
			return err
		}
	}
	return nil
}

func pathOf(n *node.Node) string {
	if p := n.Path(); p != "" {
		return p
	}
	return "$"
}

// IsVectorNode reports whether n is a map with numeric X, Y and Z fields.
func IsVectorNode(n *node.Node) bool {
	_, err := Vec3FromNode(n)
	return err == nil
}
