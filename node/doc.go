// Package node provides the dynamic node tree edited by nodedit.
//
// # Overview
//
// Game data files in the BYAML family carry a tree whose shape is only
// known once the file is loaded: maps from string keys to values, ordered
// lists, and typed scalars. A Node is one element of such a tree. It is a
// tagged union selected by Kind:
//
//   - NullKind: null
//   - StringKind, BoolKind: string and boolean scalars
//   - Int32Kind, UInt32Kind, Int64Kind, UInt64Kind: integers
//   - Float32Kind, Float64Kind: floating point numbers
//   - LeafKind: a scalar of an externally defined type (see Leaf)
//   - MapKind: insertion ordered string keyed map
//   - SequenceKind: ordered list
//
// # Creating Nodes
//
//	obj := node.FromKeyVals([]node.KeyVal{
//	    {Key: "UnitConfigName", Val: node.FromString("Kuribo")},
//	    {Key: "Translate", Val: node.FromKeyVals([]node.KeyVal{
//	        {Key: "X", Val: node.FromFloat32(1)},
//	        {Key: "Y", Val: node.FromFloat32(0)},
//	        {Key: "Z", Val: node.FromFloat32(-3)},
//	    })},
//	})
//
// # Ownership
//
// A container owns its children exclusively and the tree is acyclic. The
// mutation methods (Set, SetIndex, Insert, Append, Delete, RemoveIndex)
// maintain Parent links and refuse values that would create a cycle
// (ErrCycle) or be owned twice (ErrShared). Use Clone to place a copy of a
// subtree elsewhere.
//
// # Tags
//
// Tag names the concrete type of a node when the source format has several
// representations of the same capability, for example a links map next to
// a plain map. Tags select converters (see package inspect) and are ignored
// by Equal and Hash.
//
// # Comparison, Cloning and Hashing
//
//	node.Equal(a, b)    // structural, kind-sensitive, key-order-insensitive
//	c := node.Clone(a) // deep copy
//	h := a.Hash()      // consistent with Equal
//
// # Paths
//
// Kinded paths address nodes from a root: "Objs[2].Translate.X". Keys
// containing path syntax are quoted: `"a.b"[0]`.
//
//	x, err := root.GetPath("Objs[2].Translate.X")
//
// # JSON
//
// MarshalJSON and UnmarshalJSON give a lossless JSON form which keeps
// every scalar kind.
//
// # Thread Safety
//
// Nodes are not safe for concurrent use. The editor drives all mutation
// from a single goroutine.
package node
