package node

// Leaf is a scalar value whose concrete type is defined outside this
// package, for example a typed reference or a packed color. LeafType names
// the concrete type and is the key used by converter registries.
type Leaf interface {
	LeafType() string
}

// Cloner is implemented by leaves that need their own copy semantics.
// Clone uses it in preference to a generic deep copy.
type Cloner interface {
	CloneLeaf() Leaf
}

// LeafEqualer is implemented by leaves with their own notion of equality.
type LeafEqualer interface {
	EqualLeaf(Leaf) bool
}

// LeafHasher is implemented by leaves which can contribute to Hash. Leaves
// which don't are hashed by LeafType alone.
type LeafHasher interface {
	HashLeaf() uint64
}

// TypeName is the name under which converters for y are registered: the
// leaf type for leaves, otherwise the node's tag.
func (y *Node) TypeName() string {
	if y == nil {
		return ""
	}
	if y.Kind == LeafKind && y.Leaf != nil {
		return y.Leaf.LeafType()
	}
	return y.Tag
}
