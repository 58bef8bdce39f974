package patch

import (
	"math"
	"strconv"

	"github.com/signadot/nodedit/node"
)

// Reconcile carries what JSON loses from old over to nw, its patched
// version, and returns the result. Paths present in both trees get
//
//   - old's numeric kind, when nw's number fits it exactly
//   - old's leaf, when nw holds the leaf's text
//   - old's tag, when the kinds match
//
// and maps keep old's key order, with new keys after the old ones.
// Sequences are matched by index. nw's nodes are reused.
func Reconcile(old, nw *node.Node) *node.Node {
	if old == nil || nw == nil {
		return nw
	}
	switch {
	case old.IsMap() && nw.IsMap():
		kvs := make([]node.KeyVal, 0, nw.Len())
		for i, f := range old.Fields {
			if v := nw.Get(f); v != nil {
				kvs = append(kvs, node.KeyVal{Key: f, Val: Reconcile(old.Values[i], v)})
			}
		}
		for i, f := range nw.Fields {
			if !old.Has(f) {
				kvs = append(kvs, node.KeyVal{Key: f, Val: nw.Values[i]})
			}
		}
		return node.FromKeyVals(kvs).WithTag(old.Tag)
	case old.IsSequence() && nw.IsSequence():
		vs := make([]*node.Node, len(nw.Values))
		for i, v := range nw.Values {
			if i < len(old.Values) {
				v = Reconcile(old.Values[i], v)
			}
			vs[i] = v
		}
		return node.FromSlice(vs).WithTag(old.Tag)
	case old.Kind == node.LeafKind && nw.Kind == node.StringKind:
		if nw.String == old.ScalarText() {
			return old.Clone()
		}
		return nw
	case old.Kind.IsNumber() && nw.Kind.IsNumber() && old.Kind != nw.Kind:
		if c, ok := convert(old.Kind, nw); ok {
			nw = c
		}
	}
	if old.Kind == nw.Kind {
		nw.Tag = old.Tag
	}
	return nw
}

// convert rebuilds the number n with kind k if that is exact.
func convert(k node.Kind, n *node.Node) (*node.Node, bool) {
	if k.IsInteger() && n.Kind.IsInteger() {
		neg := n.Kind.IsSigned() && n.Int < 0
		switch {
		case k.IsSigned() && !n.Kind.IsSigned():
			if n.Uint > math.MaxInt64 {
				return nil, false
			}
			return fromInt(k, int64(n.Uint))
		case k.IsSigned():
			return fromInt(k, n.Int)
		case neg:
			return nil, false
		case n.Kind.IsSigned():
			return fromUint(k, uint64(n.Int))
		default:
			return fromUint(k, n.Uint)
		}
	}
	f, ok := n.Number()
	if !ok {
		return nil, false
	}
	res, err := node.FromNumber(k, f)
	if err != nil {
		return nil, false
	}
	if k == node.Float32Kind && n.Kind == node.Float64Kind && !shortest32(f) {
		return nil, false
	}
	return res, true
}

// shortest32 reports whether f has the same shortest text as a float32 and
// as a float64, as a Float32 written out as JSON and read back does.
func shortest32(f float64) bool {
	return strconv.FormatFloat(float64(float32(f)), 'g', -1, 32) == strconv.FormatFloat(f, 'g', -1, 64)
}

func fromInt(k node.Kind, i int64) (*node.Node, bool) {
	if k == node.Int32Kind {
		if i < math.MinInt32 || i > math.MaxInt32 {
			return nil, false
		}
		return node.FromInt32(int32(i)), true
	}
	return node.FromInt64(i), true
}

func fromUint(k node.Kind, u uint64) (*node.Node, bool) {
	if k == node.UInt32Kind {
		if u > math.MaxUint32 {
			return nil, false
		}
		return node.FromUint32(uint32(u)), true
	}
	return node.FromUint64(u), true
}
