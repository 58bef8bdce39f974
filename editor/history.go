package editor

import (
	"fmt"

	"github.com/signadot/nodedit/debug"
	"github.com/signadot/nodedit/inspect"
	"github.com/signadot/nodedit/node"
	"github.com/signadot/nodedit/undo"
)

// snapshot is the detached value last held by the slot at segs, the root
// if segs is empty.
type snapshot struct {
	segs []node.Segment
	val  *node.Node
}

func (d *Document) action(name string, s *snapshot) *undo.Action {
	return &undo.Action{Name: name, Inverse: d.inverse, Arg: s}
}

func (d *Document) inverse(arg any) error {
	opp, err := d.restore(arg.(*snapshot))
	if err != nil {
		return err
	}
	d.opposite = opp
	return nil
}

// record logs an edit which replaced old in the slot at segs. It must be
// called once per edit, after the edit succeeded.
func (d *Document) record(name string, segs []node.Segment, old *node.Node) {
	if debug.Editor() {
		debug.Logf("record %q at %q\n", name, node.FormatPath(segs))
	}
	d.undo.PushAction(d.action(name, &snapshot{segs: segs, val: old}))
	d.redo.Clear()
	d.log.Debug("edit", "action", name)
}

// recordShape snapshots the container n before an edit changing its
// shape, returning a function recording the edit.
func (d *Document) recordShape(name string, n *node.Node) func() {
	s := &snapshot{segs: n.Segments(), val: n.Clone()}
	return func() {
		d.record(name, s.segs, s.val)
	}
}

// restore puts s.val back in place, returning the snapshot of what it
// displaced.
func (d *Document) restore(s *snapshot) (*snapshot, error) {
	old, err := d.setAt(s.segs, s.val)
	if err != nil {
		return nil, err
	}
	return &snapshot{segs: s.segs, val: old}, nil
}

// setAt stores the detached node v in the existing slot at segs and
// returns the detached node it held.
func (d *Document) setAt(segs []node.Segment, v *node.Node) (*node.Node, error) {
	if len(segs) == 0 {
		old := d.root
		d.root = v
		return old, nil
	}
	parent, err := d.root.Lookup(segs[:len(segs)-1])
	if err != nil {
		return nil, err
	}
	last := segs[len(segs)-1]
	old := parent.Child(last)
	if old == nil {
		_, err := d.root.Lookup(segs)
		return nil, err
	}
	if last.IsIndex {
		err = parent.SetIndex(last.Index, v)
	} else {
		err = parent.Set(last.Key, v)
	}
	if err != nil {
		return nil, err
	}
	return old, nil
}

// checkSet refuses writes through handles exposed from containers which
// an undo or redo has since swapped out of the tree.
func (d *Document) checkSet(h *inspect.Handle) error {
	if h.Parent().Root() != d.root {
		return fmt.Errorf("%w: %s", inspect.ErrDetached, h.Key())
	}
	return nil
}

func (d *Document) onSet(h *inspect.Handle, old, _ *node.Node) {
	segs := append(h.Parent().Segments(), h.Segment())
	if old == nil {
		old = node.Null()
	}
	d.record("set "+node.FormatPath(segs), segs, old)
}

// Undo reverts the most recent edit and returns its name.
func (d *Document) Undo() (string, error) {
	a, err := d.undo.Undo()
	if err != nil {
		return "", err
	}
	d.redo.PushAction(d.action(a.Name, d.opposite))
	d.log.Debug("undo", "action", a.Name)
	return a.Name, nil
}

// Redo re-applies the most recently undone edit and returns its name.
// Redo is only possible until the next edit.
func (d *Document) Redo() (string, error) {
	a, err := d.redo.Undo()
	if err != nil {
		return "", err
	}
	d.undo.PushAction(d.action(a.Name, d.opposite))
	d.log.Debug("redo", "action", a.Name)
	return a.Name, nil
}

// History lists the names of the undoable edits, oldest first.
func (d *Document) History() []string {
	return d.undo.Names()
}

// RedoHistory lists the names of the redoable edits, the next one last.
func (d *Document) RedoHistory() []string {
	return d.redo.Names()
}
