package editor

import (
	"fmt"
	"math"

	"github.com/signadot/nodedit/clipboard"
	"github.com/signadot/nodedit/inspect"
	"github.com/signadot/nodedit/node"
)

func (d *Document) object(path string) (*node.Node, error) {
	n, err := d.lookup(path)
	if err != nil {
		return nil, err
	}
	if !n.IsMap() {
		return nil, wrongKind(n, "map")
	}
	return n, nil
}

func (d *Document) vec(obj *node.Node, key string) (clipboard.Vec3, error) {
	v := obj.Get(key)
	if v == nil {
		return clipboard.Vec3{}, fmt.Errorf("%w: %s has no %s", node.ErrPath, pathOf(obj), key)
	}
	return clipboard.Vec3FromNode(v)
}

// CopyPosition copies the Translate vector of the object at path.
func (d *Document) CopyPosition(path string) error {
	return d.copyVector(path, TranslateKey, func(v clipboard.Vec3) clipboard.Payload {
		return clipboard.Position{Vec3: v}
	})
}

// CopyRotation copies the Rotate vector of the object at path.
func (d *Document) CopyRotation(path string) error {
	return d.copyVector(path, RotateKey, func(v clipboard.Vec3) clipboard.Payload {
		return clipboard.Rotation{Vec3: v}
	})
}

// CopyScale copies the Scale vector of the object at path.
func (d *Document) CopyScale(path string) error {
	return d.copyVector(path, ScaleKey, func(v clipboard.Vec3) clipboard.Payload {
		return clipboard.Scale{Vec3: v}
	})
}

func (d *Document) copyVector(path, key string, mk func(clipboard.Vec3) clipboard.Payload) error {
	obj, err := d.object(path)
	if err != nil {
		return err
	}
	v, err := d.vec(obj, key)
	if err != nil {
		return err
	}
	return d.copy(mk(v))
}

// CopyTransform copies the Translate, Rotate and Scale vectors of the
// object at path.
func (d *Document) CopyTransform(path string) error {
	obj, err := d.object(path)
	if err != nil {
		return err
	}
	var t clipboard.Transform
	for _, c := range []struct {
		key string
		dst *clipboard.Vec3
	}{
		{TranslateKey, &t.Pos},
		{RotateKey, &t.Rot},
		{ScaleKey, &t.Scale},
	} {
		v, err := d.vec(obj, c.key)
		if err != nil {
			return err
		}
		*c.dst = v
	}
	return d.copy(t)
}

// CopyArgs copies the Args sequence of the object at path, whose elements
// must be integers fitting 32 bits.
func (d *Document) CopyArgs(path string) error {
	obj, err := d.object(path)
	if err != nil {
		return err
	}
	args := obj.Get(ArgsKey)
	if !args.IsSequence() {
		return fmt.Errorf("%w: %s.%s is not a sequence", clipboard.ErrPayloadKindMismatch, pathOf(obj), ArgsKey)
	}
	vs := make([]int32, len(args.Values))
	for i, a := range args.Values {
		v, ok := int32Of(a)
		if !ok {
			return fmt.Errorf("%w: %s is %s %s", clipboard.ErrPayloadKindMismatch, pathOf(a), a.Kind, a.ScalarText())
		}
		vs[i] = v
	}
	return d.copy(clipboard.NewIntArray(vs))
}

func int32Of(n *node.Node) (int32, bool) {
	switch {
	case n.Kind.IsSigned() && n.Kind.IsInteger():
		if n.Int < math.MinInt32 || n.Int > math.MaxInt32 {
			return 0, false
		}
		return int32(n.Int), true
	case n.Kind.IsInteger():
		if n.Uint > math.MaxInt32 {
			return 0, false
		}
		return int32(n.Uint), true
	}
	return 0, false
}

// CopyObjects copies the nodes at paths.
func (d *Document) CopyObjects(paths ...string) error {
	items := make([]*node.Node, len(paths))
	for i, p := range paths {
		n, err := d.lookup(p)
		if err != nil {
			return err
		}
		items[i] = n
	}
	return d.copy(clipboard.NewObjects(items...))
}

func (d *Document) copy(p clipboard.Payload) error {
	err := d.spec.Board.Copy(p)
	d.log.Debug("copy", "payload", p.String())
	if err != nil {
		d.log.Warn("clipboard mirror", "error", err)
	}
	return err
}

// Paste writes the live payload into the node at path as one edit:
//
//   - Position, Rotation and Scale go to the Translate, Rotate or Scale
//     vector of an object, or to the vector at path itself
//   - Transform goes to all three vectors of an object
//   - Args[] replaces the Args of an object
//   - Object[n] appends copies of the objects to a sequence
//
// A payload not fitting the target fails with
// clipboard.ErrPayloadKindMismatch and leaves the tree unchanged.
func (d *Document) Paste(path string) error {
	dst, err := d.lookup(path)
	if err != nil {
		return err
	}
	p := d.spec.Board.Current()
	name := "paste " + p.Kind().String() + " to " + pathOf(dst)
	switch p := p.(type) {
	case clipboard.Position:
		return d.pasteVector(name, dst, TranslateKey, p.Vec3)
	case clipboard.Rotation:
		return d.pasteVector(name, dst, RotateKey, p.Vec3)
	case clipboard.Scale:
		return d.pasteVector(name, dst, ScaleKey, p.Vec3)
	case clipboard.Transform:
		return d.pasteTransform(name, dst, p)
	case clipboard.IntArray:
		if !dst.IsMap() {
			return mismatch(p, dst)
		}
		if d.insp.ReadOnlyKey(ArgsKey) {
			return fmt.Errorf("%w: %s.%s", inspect.ErrReadOnly, pathOf(dst), ArgsKey)
		}
		args := node.NewSequence()
		for _, v := range p.Values {
			args.Append(node.FromInt32(v))
		}
		if cur := dst.Get(ArgsKey); cur != nil {
			args.Tag = cur.Tag
			segs := cur.Segments()
			if err := dst.Set(ArgsKey, args); err != nil {
				return err
			}
			d.record(name, segs, cur)
			return nil
		}
		done := d.recordShape(name, dst)
		if err := dst.Set(ArgsKey, args); err != nil {
			return err
		}
		done()
		return nil
	case clipboard.Objects:
		if !dst.IsSequence() {
			return mismatch(p, dst)
		}
		done := d.recordShape(name, dst)
		for _, item := range p.Items {
			if err := dst.Append(item.Clone()); err != nil {
				return err
			}
		}
		done()
		return nil
	}
	return mismatch(p, dst)
}

func mismatch(p clipboard.Payload, dst *node.Node) error {
	return fmt.Errorf("%w: cannot paste %s to %s (%s)", clipboard.ErrPayloadKindMismatch, p.Kind(), pathOf(dst), dst.Kind)
}

// vectorTarget is the vector a vector payload pastes to: dst itself if it
// is a vector, else its key field.
func vectorTarget(dst *node.Node, key string) *node.Node {
	if clipboard.IsVectorNode(dst) {
		return dst
	}
	if v := dst.Get(key); clipboard.IsVectorNode(v) {
		return v
	}
	return nil
}

func (d *Document) pasteVector(name string, dst *node.Node, key string, v clipboard.Vec3) error {
	target := vectorTarget(dst, key)
	if target == nil {
		return fmt.Errorf("%w: %s has no %s vector", clipboard.ErrPayloadKindMismatch, pathOf(dst), key)
	}
	if err := d.writable(target); err != nil {
		return err
	}
	old := target.Clone()
	if err := v.ApplyTo(target); err != nil {
		return err
	}
	d.record(name, target.Segments(), old)
	return nil
}

func (d *Document) pasteTransform(name string, dst *node.Node, t clipboard.Transform) error {
	if !dst.IsMap() {
		return fmt.Errorf("%w: %s is not an object", clipboard.ErrPayloadKindMismatch, pathOf(dst))
	}
	for _, key := range []string{TranslateKey, RotateKey, ScaleKey} {
		if d.insp.ReadOnlyKey(key) {
			return fmt.Errorf("%w: %s.%s", inspect.ErrReadOnly, pathOf(dst), key)
		}
	}
	obj := dst.Clone()
	for _, c := range []struct {
		key string
		v   clipboard.Vec3
	}{
		{TranslateKey, t.Pos},
		{RotateKey, t.Rot},
		{ScaleKey, t.Scale},
	} {
		target := obj.Get(c.key)
		if !clipboard.IsVectorNode(target) {
			return fmt.Errorf("%w: %s has no %s vector", clipboard.ErrPayloadKindMismatch, pathOf(dst), c.key)
		}
		if err := c.v.ApplyTo(target); err != nil {
			return err
		}
	}
	segs := dst.Segments()
	old, err := d.setAt(segs, obj)
	if err != nil {
		return err
	}
	d.record(name, segs, old)
	return nil
}
