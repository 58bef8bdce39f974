package inspect

import (
	"fmt"
	"slices"

	"github.com/signadot/nodedit/debug"
	"github.com/signadot/nodedit/node"
)

// Inspector exposes maps and sequences as lists of property handles.
type Inspector struct {
	// Registry holds converters for concrete types. Nil means
	// DefaultRegistry.
	Registry *Registry
	// ReadOnlyKeys are map keys exposed without a setter.
	ReadOnlyKeys []string
	// ReadOnly exposes every property without a setter.
	ReadOnly bool
	// Check is called before every write through a handle. A non-nil
	// error fails the write.
	Check func(h *Handle) error
	// OnSet is called after every successful write through a handle with
	// the replaced value (nil if the slot was empty) and the new value.
	// It is the single mutation point of the inspector.
	OnSet func(h *Handle, old, new *node.Node)
}

func (in *Inspector) registry() *Registry {
	if in == nil || in.Registry == nil {
		return DefaultRegistry
	}
	return in.Registry
}

// ReadOnlyKey reports whether the map key key is exposed without a
// setter.
func (in *Inspector) ReadOnlyKey(key string) bool {
	if in == nil {
		return false
	}
	return in.ReadOnly || slices.Contains(in.ReadOnlyKeys, key)
}

// Expose returns one handle per child of n in order. n must be a map or a
// sequence.
func (in *Inspector) Expose(n *node.Node) ([]*Handle, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: nil", ErrNotInspectable)
	}
	if debug.Inspect() {
		debug.Logf("expose %s %q (%d children)\n", n.Kind, n.Path(), n.Len())
	}
	switch n.Kind {
	case node.MapKind:
		res := make([]*Handle, len(n.Fields))
		for i, key := range n.Fields {
			res[i] = newMapHandle(in, n, i, key, in.ReadOnlyKey(key))
		}
		return res, nil
	case node.SequenceKind:
		res := make([]*Handle, len(n.Values))
		for i := range n.Values {
			res[i] = newSequenceHandle(in, n, i, in != nil && in.ReadOnly)
		}
		return res, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotInspectable, n.Kind)
}

// Expose exposes n with a zero Inspector over DefaultRegistry.
func Expose(n *node.Node) ([]*Handle, error) {
	return (&Inspector{}).Expose(n)
}

// Find returns the handle for key (or "Item i") among hs.
func Find(hs []*Handle, key string) *Handle {
	for _, h := range hs {
		if h.key == key {
			return h
		}
	}
	return nil
}
