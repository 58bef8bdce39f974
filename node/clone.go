package node

import (
	"reflect"

	"github.com/jinzhu/copier"
)

// Clone returns a deep copy of n. See Node.Clone.
func Clone(n *Node) *Node {
	if n == nil {
		return nil
	}
	return n.Clone()
}

// Clone returns a deep copy of y which shares nothing with y. The copy is
// detached: its Parent is nil.
func (y *Node) Clone() *Node {
	res := &Node{}
	y.CloneTo(res)
	res.Parent = nil
	res.ParentIndex = 0
	res.ParentField = ""
	return res
}

// CloneTo deep copies y into dst, keeping dst's position in its parent.
func (y *Node) CloneTo(dst *Node) *Node {
	dst.Kind = y.Kind
	dst.Tag = y.Tag
	dst.String = y.String
	dst.Bool = y.Bool
	dst.Int = y.Int
	dst.Uint = y.Uint
	dst.Float = y.Float
	dst.Leaf = nil
	if y.Leaf != nil {
		dst.Leaf = cloneLeaf(y.Leaf)
	}
	dst.Fields = nil
	if y.Fields != nil {
		dst.Fields = make([]string, len(y.Fields))
		copy(dst.Fields, y.Fields)
	}
	dst.Values = nil
	if y.Values != nil {
		dst.Values = make([]*Node, len(y.Values))
	}
	for i, yv := range y.Values {
		dstI := &Node{}
		if yv == nil {
			dstI.Kind = NullKind
		} else {
			yv.CloneTo(dstI)
		}
		field := ""
		if y.Kind == MapKind {
			field = y.Fields[i]
		}
		dst.adopt(dstI, i, field)
		dst.Values[i] = dstI
	}
	return dst
}

func cloneLeaf(l Leaf) Leaf {
	if c, ok := l.(Cloner); ok {
		return c.CloneLeaf()
	}
	t := reflect.TypeOf(l)
	opt := copier.Option{DeepCopy: true}
	if t.Kind() == reflect.Pointer {
		if reflect.ValueOf(l).IsNil() {
			return l
		}
		dst := reflect.New(t.Elem())
		if err := copier.CopyWithOption(dst.Interface(), l, opt); err != nil {
			return l
		}
		if res, ok := dst.Interface().(Leaf); ok {
			return res
		}
		return l
	}
	dst := reflect.New(t)
	if err := copier.CopyWithOption(dst.Interface(), l, opt); err != nil {
		return l
	}
	if res, ok := dst.Elem().Interface().(Leaf); ok {
		return res
	}
	return l
}
