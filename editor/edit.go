package editor

import (
	"fmt"
	"math"
	"strconv"

	"github.com/google/uuid"

	"github.com/signadot/nodedit/inspect"
	"github.com/signadot/nodedit/libdiff"
	"github.com/signadot/nodedit/node"
	"github.com/signadot/nodedit/patch"
)

// Props exposes the properties of the map or sequence at path.
func (d *Document) Props(path string) ([]*inspect.Handle, error) {
	n, err := d.lookup(path)
	if err != nil {
		return nil, err
	}
	return d.insp.Expose(n)
}

// Prop returns the property key of the container at path. Sequence
// elements may be named by index or by "Item i".
func (d *Document) Prop(path, key string) (*inspect.Handle, error) {
	hs, err := d.Props(path)
	if err != nil {
		return nil, err
	}
	if _, err := strconv.Atoi(key); err == nil {
		key = "Item " + key
	}
	h := inspect.Find(hs, key)
	if h == nil {
		return nil, fmt.Errorf("%w: %s: no property %q", node.ErrPath, path, key)
	}
	return h, nil
}

// SetText parses text with the converter of the property and stores the
// result.
func (d *Document) SetText(path, key, text string) error {
	h, err := d.Prop(path, key)
	if err != nil {
		return err
	}
	return h.SetText(text)
}

// SetNode replaces the node at path with v, which may be of any kind. An
// empty path replaces the root.
func (d *Document) SetNode(path string, v *node.Node) error {
	segs, err := node.ParsePath(path)
	if err != nil {
		return err
	}
	if len(segs) > 0 {
		if _, err := d.root.Lookup(segs); err != nil {
			return err
		}
		last := segs[len(segs)-1]
		if !last.IsIndex && d.insp.ReadOnlyKey(last.Key) {
			return fmt.Errorf("%w: %s", inspect.ErrReadOnly, last.Key)
		}
	}
	old, err := d.setAt(segs, v)
	if err != nil {
		return err
	}
	d.record("set "+pathOf(v), segs, old)
	return nil
}

// Delete removes the node at path from its container.
func (d *Document) Delete(path string) error {
	n, err := d.lookup(path)
	if err != nil {
		return err
	}
	parent := n.Parent
	if parent == nil {
		return fmt.Errorf("%w: cannot delete the root", node.ErrPath)
	}
	if err := d.writable(n); err != nil {
		return err
	}
	done := d.recordShape("delete "+pathOf(n), parent)
	if parent.IsSequence() {
		_, err = parent.RemoveIndex(n.ParentIndex)
	} else {
		_, err = parent.Delete(n.ParentField)
	}
	if err != nil {
		return err
	}
	done()
	return nil
}

// AddProp adds the property key with value v to the map at path. Keys the
// map already has are not replaced.
func (d *Document) AddProp(path, key string, v *node.Node) error {
	m, err := d.lookup(path)
	if err != nil {
		return err
	}
	if !m.IsMap() {
		return wrongKind(m, "map")
	}
	if key == "" {
		return fmt.Errorf("%w: empty key", node.ErrPath)
	}
	if m.Has(key) {
		return fmt.Errorf("%w: %s has %q", ErrExists, pathOf(m), key)
	}
	if d.insp.ReadOnlyKey(key) {
		return fmt.Errorf("%w: %s", inspect.ErrReadOnly, key)
	}
	if v == nil {
		v = node.Null()
	}
	segs := append(m.Segments(), node.Segment{Key: key})
	done := d.recordShape("add "+node.FormatPath(segs), m)
	if err := m.Set(key, v); err != nil {
		return err
	}
	done()
	return nil
}

// Append adds v to the end of the sequence at path.
func (d *Document) Append(path string, v *node.Node) error {
	seq, err := d.lookup(path)
	if err != nil {
		return err
	}
	if !seq.IsSequence() {
		return wrongKind(seq, "sequence")
	}
	done := d.recordShape("append "+pathOf(seq), seq)
	if err := seq.Append(v); err != nil {
		return err
	}
	done()
	return nil
}

// Duplicate inserts a copy of the element at path right after it and
// returns the copy. The copy gets a fresh instance id when the element
// has one.
func (d *Document) Duplicate(path string) (*node.Node, error) {
	n, err := d.lookup(path)
	if err != nil {
		return nil, err
	}
	seq := n.Parent
	if seq == nil || !seq.IsSequence() {
		return nil, fmt.Errorf("%w: %s is not a sequence element", node.ErrPath, pathOf(n))
	}
	dup := n.Clone()
	if err := d.renumber(seq, dup); err != nil {
		return nil, err
	}
	done := d.recordShape("duplicate "+pathOf(n), seq)
	if err := seq.Insert(n.ParentIndex+1, dup); err != nil {
		return nil, err
	}
	done()
	return dup, nil
}

// renumber gives dup a new instance id unique among the elements of seq.
func (d *Document) renumber(seq, dup *node.Node) error {
	key := d.spec.Config.InstanceKey
	cur := dup.Get(key)
	if key == "" || cur == nil {
		return nil
	}
	var v *node.Node
	switch {
	case cur.Kind == node.StringKind:
		v = node.FromString(uuid.NewString())
	case cur.Kind.IsInteger():
		top := math.Inf(-1)
		for _, x := range seq.Values {
			if f, ok := x.Get(key).Number(); ok && f > top {
				top = f
			}
		}
		nv, err := node.FromNumber(cur.Kind, top+1)
		if err != nil {
			return fmt.Errorf("no free %s: %w", key, err)
		}
		v = nv
	default:
		return nil
	}
	v.Tag = cur.Tag
	return dup.Set(key, v)
}

// ApplyPatch applies a JSON patch, or a JSON merge patch if merge is true,
// to the tree as one edit.
func (d *Document) ApplyPatch(p []byte, merge bool) error {
	var (
		res *node.Node
		err error
	)
	name := "patch"
	if merge {
		name = "merge patch"
		res, err = patch.Merge(d.root, p)
	} else {
		res, err = patch.Apply(d.root, p)
	}
	if err != nil {
		return err
	}
	old, err := d.setAt(nil, res)
	if err != nil {
		return err
	}
	d.record(name, nil, old)
	return nil
}

// Changes lists the differences between the saved tree and the current
// one.
func (d *Document) Changes() []libdiff.Change {
	return libdiff.Diff(d.saved, d.root)
}
