package inspect

import (
	"fmt"
	"strconv"

	"github.com/signadot/nodedit/node"
)

// Handle is a live view of one child slot of a map (addressed by key) or
// sequence (addressed by index). Handles read and write the tree on every
// call and are cheap to regenerate, so they are never kept across edits.
type Handle struct {
	key    string
	label  string
	index  int
	parent *node.Node
	get    func() *node.Node
	set    func(*node.Node) error
	insp   *Inspector
}

func newMapHandle(in *Inspector, parent *node.Node, i int, key string, readOnly bool) *Handle {
	h := &Handle{
		key:    key,
		label:  key,
		index:  i,
		parent: parent,
		insp:   in,
		get:    func() *node.Node { return parent.Get(key) },
	}
	if !readOnly {
		h.set = func(v *node.Node) error { return parent.Set(key, v) }
	}
	return h
}

func newSequenceHandle(in *Inspector, parent *node.Node, i int, readOnly bool) *Handle {
	key := "Item " + strconv.Itoa(i)
	h := &Handle{
		key:    key,
		label:  key + " :",
		index:  i,
		parent: parent,
		insp:   in,
		get:    func() *node.Node { return parent.Index(i) },
	}
	if !readOnly {
		h.set = func(v *node.Node) error { return parent.SetIndex(i, v) }
	}
	return h
}

// Key is the map key, or "Item i" for sequence elements.
func (h *Handle) Key() string { return h.key }

// Label is the display label: the map key, or "Item i :".
func (h *Handle) Label() string { return h.label }

// Index is the position of the slot in its parent.
func (h *Handle) Index() int { return h.index }

func (h *Handle) Parent() *node.Node { return h.parent }

// Segment addresses the slot from its parent.
func (h *Handle) Segment() node.Segment {
	if h.parent.IsSequence() {
		return node.Segment{Index: h.index, IsIndex: true}
	}
	return node.Segment{Key: h.key}
}

// Get returns the current value. A slot which no longer exists reads as
// Null.
func (h *Handle) Get() *node.Node {
	v := h.get()
	if v == nil {
		return node.Null()
	}
	return v
}

func (h *Handle) Kind() node.Kind {
	return h.Get().Kind
}

// Converter resolves the converter for the current value.
func (h *Handle) Converter() Converter {
	return Resolve(h.insp.registry(), h.Get())
}

// Text is the display text of the current value.
func (h *Handle) Text() string {
	v := h.Get()
	return Resolve(h.insp.registry(), v).Format(v)
}

func (h *Handle) ReadOnly() bool {
	return h.set == nil
}

// Set replaces the value in the slot with v, which may be of any kind.
func (h *Handle) Set(v *node.Node) error {
	if h.set == nil {
		return fmt.Errorf("%w: %s", ErrReadOnly, h.key)
	}
	if h.insp != nil && h.insp.Check != nil {
		if err := h.insp.Check(h); err != nil {
			return err
		}
	}
	old := h.get()
	if err := h.set(v); err != nil {
		return err
	}
	if h.insp != nil && h.insp.OnSet != nil {
		h.insp.OnSet(h, old, v)
	}
	return nil
}

// SetText converts text with the current value's converter and writes the
// result. Nothing is written if the conversion fails.
func (h *Handle) SetText(text string) error {
	if h.set == nil {
		return fmt.Errorf("%w: %s", ErrReadOnly, h.key)
	}
	cur := h.Get()
	conv := h.Converter()
	if !conv.CanParse() {
		return fmt.Errorf("%s: %w", h.key, noParse(conv))
	}
	v, err := conv.Parse(text)
	if err != nil {
		return fmt.Errorf("%s: %w", h.key, err)
	}
	if v.Kind == cur.Kind {
		v.Tag = cur.Tag
	}
	return h.Set(v)
}

// Children exposes the properties of the current value if its converter
// is expandable.
func (h *Handle) Children() ([]*Handle, error) {
	v := h.Get()
	if !Resolve(h.insp.registry(), v).Expandable() {
		return nil, fmt.Errorf("%w: %s is %s", ErrNotInspectable, h.key, v.Kind)
	}
	return h.insp.Expose(v)
}
