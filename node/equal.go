package node

import (
	"math"
	"reflect"
)

// Equal reports whether a and b are structurally equal.
//
// Equality is defined over the capability a node exposes rather than its
// concrete type: any two maps are comparable and any two sequences are
// comparable regardless of Tag. Scalars are only equal to scalars of the
// same Kind holding the same value, so Int32 5, Int64 5 and String "5" are
// pairwise unequal. A nil *Node is the same as a Null node. Floats compare
// as numbers, so NaN is unequal to everything.
func Equal(a, b *Node) bool {
	return equal(a, b, false)
}

// Same is Equal except that NaN floats are the same as NaN floats of the
// same kind. It tells whether a tree has changed.
func Same(a, b *Node) bool {
	return equal(a, b, true)
}

func equal(a, b *Node, nan bool) bool {
	if a == b {
		return true
	}
	if a.IsNull() || b.IsNull() {
		return a.IsNull() && b.IsNull()
	}
	if !interchangeable(a, b) {
		return false
	}
	switch a.Kind {
	case MapKind:
		return equalMaps(a, b, nan)
	case SequenceKind:
		return equalSequences(a, b, nan)
	case LeafKind:
		return equalLeaves(a.Leaf, b.Leaf)
	}
	return equalScalars(a, b, nan)
}

// interchangeable compares kinds only; Tag names the concrete container
// type and never takes part.
func interchangeable(a, b *Node) bool {
	return a.Kind == b.Kind
}

func equalMaps(a, b *Node, nan bool) bool {
	if len(a.Values) != len(b.Values) {
		return false
	}
	for i, key := range a.Fields {
		j := b.indexOf(key)
		if j < 0 {
			return false
		}
		av, bv := a.Values[i], b.Values[j]
		if av.IsNull() != bv.IsNull() {
			return false
		}
		if av.IsNull() {
			continue
		}
		if !equal(av, bv, nan) {
			return false
		}
	}
	return true
}

func equalSequences(a, b *Node, nan bool) bool {
	if len(a.Values) != len(b.Values) {
		return false
	}
	for i := range a.Values {
		if !equal(a.Values[i], b.Values[i], nan) {
			return false
		}
	}
	return true
}

func equalScalars(a, b *Node, nan bool) bool {
	switch a.Kind {
	case StringKind:
		return a.String == b.String
	case BoolKind:
		return a.Bool == b.Bool
	case Int32Kind, Int64Kind:
		return a.Int == b.Int
	case UInt32Kind, UInt64Kind:
		return a.Uint == b.Uint
	case Float32Kind, Float64Kind:
		if nan && math.IsNaN(a.Float) && math.IsNaN(b.Float) {
			return true
		}
		return a.Float == b.Float
	}
	return false
}

func equalLeaves(a, b Leaf) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.LeafType() != b.LeafType() {
		return false
	}
	if eq, ok := a.(LeafEqualer); ok {
		return eq.EqualLeaf(b)
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	if ta.Comparable() {
		return a == b
	}
	return reflect.DeepEqual(a, b)
}
