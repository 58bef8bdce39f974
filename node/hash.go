package node

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var seed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the node consistent with Equal and Same:
// equal trees hash the same within one process. Map entries are combined
// order-independently and tags are not hashed.
func (y *Node) Hash() uint64 {
	var h maphash.Hash
	h.SetSeed(seed)
	if y.IsNull() {
		h.WriteByte(byte(NullKind))
		return h.Sum64()
	}
	h.WriteByte(byte(y.Kind))

	var b [8]byte
	switch y.Kind {
	case StringKind:
		h.WriteString(y.String)
	case BoolKind:
		if y.Bool {
			h.WriteByte(1)
		} else {
			h.WriteByte(0)
		}
	case Int32Kind, Int64Kind:
		binary.LittleEndian.PutUint64(b[:], uint64(y.Int))
		h.Write(b[:])
	case UInt32Kind, UInt64Kind:
		binary.LittleEndian.PutUint64(b[:], y.Uint)
		h.Write(b[:])
	case Float32Kind, Float64Kind:
		f := y.Float
		switch {
		case f == 0:
			// -0 == 0
			f = 0
		case math.IsNaN(f):
			f = math.NaN()
		}
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(f))
		h.Write(b[:])
	case LeafKind:
		if y.Leaf != nil {
			h.WriteString(y.Leaf.LeafType())
			if lh, ok := y.Leaf.(LeafHasher); ok {
				binary.LittleEndian.PutUint64(b[:], lh.HashLeaf())
				h.Write(b[:])
			}
		}
	case SequenceKind:
		for _, v := range y.Values {
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			h.Write(b[:])
		}
	case MapKind:
		var sum uint64
		for i, v := range y.Values {
			var eh maphash.Hash
			eh.SetSeed(seed)
			eh.WriteString(y.Fields[i])
			binary.LittleEndian.PutUint64(b[:], v.Hash())
			eh.Write(b[:])
			sum += eh.Sum64()
		}
		binary.LittleEndian.PutUint64(b[:], sum)
		h.Write(b[:])
		binary.LittleEndian.PutUint64(b[:], uint64(len(y.Values)))
		h.Write(b[:])
	}
	return h.Sum64()
}
