package node

import (
	"fmt"
	"iter"
	"math"
	"strconv"
)

// Node is one element of a tree. The Kind field selects which of the other
// fields hold the value:
//
//   - StringKind: String
//   - BoolKind: Bool
//   - Int32Kind, Int64Kind: Int
//   - UInt32Kind, UInt64Kind: Uint
//   - Float32Kind, Float64Kind: Float (Float32 values are stored widened)
//   - LeafKind: Leaf
//   - MapKind: Fields[i] is the key of Values[i]
//   - SequenceKind: Values
//
// Containers own their children exclusively, so a child's Parent is always
// the container holding it.
type Node struct {
	Kind        Kind
	Tag         string
	Parent      *Node
	ParentIndex int
	ParentField string

	Fields []string
	Values []*Node

	String string
	Bool   bool
	Int    int64
	Uint   uint64
	Float  float64
	Leaf   Leaf
}

func Null() *Node {
	return &Node{Kind: NullKind}
}

func FromString(v string) *Node {
	return &Node{Kind: StringKind, String: v}
}

func FromBool(v bool) *Node {
	return &Node{Kind: BoolKind, Bool: v}
}

func FromInt32(v int32) *Node {
	return &Node{Kind: Int32Kind, Int: int64(v)}
}

func FromUint32(v uint32) *Node {
	return &Node{Kind: UInt32Kind, Uint: uint64(v)}
}

func FromInt64(v int64) *Node {
	return &Node{Kind: Int64Kind, Int: v}
}

func FromUint64(v uint64) *Node {
	return &Node{Kind: UInt64Kind, Uint: v}
}

func FromFloat32(v float32) *Node {
	return &Node{Kind: Float32Kind, Float: float64(v)}
}

func FromFloat64(v float64) *Node {
	return &Node{Kind: Float64Kind, Float: v}
}

func FromLeaf(v Leaf) *Node {
	if v == nil {
		return Null()
	}
	return &Node{Kind: LeafKind, Leaf: v}
}

func NewMap() *Node {
	return &Node{Kind: MapKind}
}

func NewSequence() *Node {
	return &Node{Kind: SequenceKind}
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds a map keeping the order of kvs. A repeated key
// replaces the earlier value in place.
func FromKeyVals(kvs []KeyVal) *Node {
	res := NewMap()
	for _, kv := range kvs {
		res.put(kv.Key, kv.Val)
	}
	return res
}

func FromSlice(vs []*Node) *Node {
	res := NewSequence()
	res.Values = make([]*Node, 0, len(vs))
	for _, v := range vs {
		res.adopt(v, len(res.Values), "")
		res.Values = append(res.Values, v)
	}
	return res
}

func (y *Node) WithTag(tag string) *Node {
	y.Tag = tag
	return y
}

func (y *Node) IsNull() bool {
	return y == nil || y.Kind == NullKind
}

func (y *Node) IsMap() bool {
	return y != nil && y.Kind == MapKind
}

func (y *Node) IsSequence() bool {
	return y != nil && y.Kind == SequenceKind
}

func (y *Node) IsScalar() bool {
	return y != nil && y.Kind.IsScalar()
}

// Len is the number of children of a container, 0 otherwise.
func (y *Node) Len() int {
	if y == nil || !y.Kind.IsContainer() {
		return 0
	}
	return len(y.Values)
}

func (y *Node) Keys() []string {
	if !y.IsMap() {
		return nil
	}
	res := make([]string, len(y.Fields))
	copy(res, y.Fields)
	return res
}

func (y *Node) indexOf(key string) int {
	for i, f := range y.Fields {
		if f == key {
			return i
		}
	}
	return -1
}

// Has reports whether a map holds key.
func (y *Node) Has(key string) bool {
	return y.IsMap() && y.indexOf(key) >= 0
}

// Get returns the value under key or nil if y is not a map or lacks key.
func (y *Node) Get(key string) *Node {
	if !y.IsMap() {
		return nil
	}
	if i := y.indexOf(key); i >= 0 {
		return y.Values[i]
	}
	return nil
}

// Index returns the i'th child of a container or nil.
func (y *Node) Index(i int) *Node {
	if y == nil || !y.Kind.IsContainer() || i < 0 || i >= len(y.Values) {
		return nil
	}
	return y.Values[i]
}

// Entries iterates the children of a container in order, yielding the
// key (maps) or the decimal index (sequences).
func (y *Node) Entries() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		if y == nil {
			return
		}
		switch y.Kind {
		case MapKind:
			for i, v := range y.Values {
				if !yield(y.Fields[i], v) {
					return
				}
			}
		case SequenceKind:
			for i, v := range y.Values {
				if !yield(strconv.Itoa(i), v) {
					return
				}
			}
		}
	}
}

// Set stores v under key, replacing an existing value in place or
// appending a new key at the end.
func (y *Node) Set(key string, v *Node) error {
	if !y.IsMap() {
		return fmt.Errorf("%w: set %q on %s", ErrNotMap, key, y.kindString())
	}
	if v == nil {
		v = Null()
	}
	if err := y.checkOwn(v, y.Get(key)); err != nil {
		return err
	}
	y.put(key, v)
	return nil
}

// Delete removes key from a map, returning the removed value.
func (y *Node) Delete(key string) (*Node, error) {
	if !y.IsMap() {
		return nil, fmt.Errorf("%w: delete %q on %s", ErrNotMap, key, y.kindString())
	}
	i := y.indexOf(key)
	if i < 0 {
		return nil, fmt.Errorf("%w: no key %q", ErrPath, key)
	}
	old := y.Values[i]
	y.Fields = append(y.Fields[:i], y.Fields[i+1:]...)
	y.Values = append(y.Values[:i], y.Values[i+1:]...)
	y.renumber(i)
	old.detach()
	return old, nil
}

// SetIndex replaces the i'th element of a sequence.
func (y *Node) SetIndex(i int, v *Node) error {
	if !y.IsSequence() {
		return fmt.Errorf("%w: set index %d on %s", ErrNotSeq, i, y.kindString())
	}
	if i < 0 || i >= len(y.Values) {
		return fmt.Errorf("%w: %d (len %d)", ErrRange, i, len(y.Values))
	}
	if v == nil {
		v = Null()
	}
	if err := y.checkOwn(v, y.Values[i]); err != nil {
		return err
	}
	if y.Values[i] != v {
		y.Values[i].detach()
	}
	y.adopt(v, i, "")
	y.Values[i] = v
	return nil
}

func (y *Node) Append(v *Node) error {
	return y.Insert(y.Len(), v)
}

// Insert places v at index i of a sequence, shifting later elements.
func (y *Node) Insert(i int, v *Node) error {
	if !y.IsSequence() {
		return fmt.Errorf("%w: insert on %s", ErrNotSeq, y.kindString())
	}
	if i < 0 || i > len(y.Values) {
		return fmt.Errorf("%w: %d (len %d)", ErrRange, i, len(y.Values))
	}
	if v == nil {
		v = Null()
	}
	if err := y.checkOwn(v, nil); err != nil {
		return err
	}
	y.Values = append(y.Values, nil)
	copy(y.Values[i+1:], y.Values[i:])
	y.Values[i] = v
	y.adopt(v, i, "")
	y.renumber(i + 1)
	return nil
}

// RemoveIndex removes and returns the i'th element of a sequence.
func (y *Node) RemoveIndex(i int) (*Node, error) {
	if !y.IsSequence() {
		return nil, fmt.Errorf("%w: remove on %s", ErrNotSeq, y.kindString())
	}
	if i < 0 || i >= len(y.Values) {
		return nil, fmt.Errorf("%w: %d (len %d)", ErrRange, i, len(y.Values))
	}
	old := y.Values[i]
	y.Values = append(y.Values[:i], y.Values[i+1:]...)
	y.renumber(i)
	old.detach()
	return old, nil
}

// Replace overwrites y's value with that of v, keeping y's position in
// its parent. v's children move to y.
func (y *Node) Replace(v *Node) {
	parent, idx, field := y.Parent, y.ParentIndex, y.ParentField
	*y = *v
	y.Parent, y.ParentIndex, y.ParentField = parent, idx, field
	for i, c := range y.Values {
		c.Parent = y
		c.ParentIndex = i
	}
}

func (y *Node) put(key string, v *Node) {
	if v == nil {
		v = Null()
	}
	if i := y.indexOf(key); i >= 0 {
		if y.Values[i] != v {
			y.Values[i].detach()
		}
		y.adopt(v, i, key)
		y.Values[i] = v
		return
	}
	y.adopt(v, len(y.Values), key)
	y.Fields = append(y.Fields, key)
	y.Values = append(y.Values, v)
}

func (y *Node) adopt(v *Node, i int, field string) {
	v.Parent = y
	v.ParentIndex = i
	v.ParentField = field
}

func (y *Node) detach() {
	if y == nil {
		return
	}
	y.Parent = nil
	y.ParentIndex = 0
	y.ParentField = ""
}

func (y *Node) renumber(from int) {
	for i := from; i < len(y.Values); i++ {
		y.Values[i].ParentIndex = i
	}
}

// checkOwn enforces the acyclic, exclusively owned tree shape: v may only
// be placed into the slot currently holding cur if it has no other owner.
func (y *Node) checkOwn(v, cur *Node) error {
	for p := y; p != nil; p = p.Parent {
		if p == v {
			return ErrCycle
		}
	}
	if v.Parent != nil && v != cur {
		return fmt.Errorf("%w: %s", ErrShared, v.Path())
	}
	return nil
}

func (y *Node) kindString() string {
	if y == nil {
		return "nil"
	}
	return y.Kind.String()
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// Visit walks the tree depth first, calling f before (isPost false) and
// after (isPost true) the children. Children are only visited when the
// pre call returns true.
func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

// ScalarText is the culture-invariant text of a scalar value. Containers
// and nulls give "".
func (y *Node) ScalarText() string {
	if y == nil {
		return ""
	}
	switch y.Kind {
	case StringKind:
		return y.String
	case BoolKind:
		return strconv.FormatBool(y.Bool)
	case Int32Kind, Int64Kind:
		return strconv.FormatInt(y.Int, 10)
	case UInt32Kind, UInt64Kind:
		return strconv.FormatUint(y.Uint, 10)
	case Float32Kind:
		return strconv.FormatFloat(y.Float, 'g', -1, 32)
	case Float64Kind:
		return strconv.FormatFloat(y.Float, 'g', -1, 64)
	case LeafKind:
		if s, ok := y.Leaf.(fmt.Stringer); ok {
			return s.String()
		}
		return fmt.Sprint(y.Leaf)
	}
	return ""
}

// Number returns the value of a numeric scalar as a float64.
func (y *Node) Number() (float64, bool) {
	if y == nil {
		return 0, false
	}
	switch y.Kind {
	case Int32Kind, Int64Kind:
		return float64(y.Int), true
	case UInt32Kind, UInt64Kind:
		return float64(y.Uint), true
	case Float32Kind, Float64Kind:
		return y.Float, true
	}
	return 0, false
}

// Any converts the tree to plain Go values: map[string]any, []any, string,
// bool, int64, uint64, float64, the leaf value or nil. Map key order is
// lost.
func (y *Node) Any() any {
	if y == nil {
		return nil
	}
	switch y.Kind {
	case StringKind:
		return y.String
	case BoolKind:
		return y.Bool
	case Int32Kind, Int64Kind:
		return y.Int
	case UInt32Kind, UInt64Kind:
		return y.Uint
	case Float32Kind, Float64Kind:
		return y.Float
	case LeafKind:
		return y.Leaf
	case MapKind:
		res := make(map[string]any, len(y.Values))
		for i, v := range y.Values {
			res[y.Fields[i]] = v.Any()
		}
		return res
	case SequenceKind:
		res := make([]any, len(y.Values))
		for i, v := range y.Values {
			res[i] = v.Any()
		}
		return res
	}
	return nil
}

// FromNumber builds a numeric node of kind k from f, failing if f does not
// fit k exactly.
func FromNumber(k Kind, f float64) (*Node, error) {
	switch k {
	case Float32Kind:
		if !math.IsInf(f, 0) && !math.IsNaN(f) && math.Abs(f) > math.MaxFloat32 {
			return nil, fmt.Errorf("%w: %v overflows %s", ErrKind, f, k)
		}
		return FromFloat32(float32(f)), nil
	case Float64Kind:
		return FromFloat64(f), nil
	}
	if !k.IsInteger() {
		return nil, fmt.Errorf("%w: %s is not numeric", ErrKind, k)
	}
	if f != math.Trunc(f) {
		return nil, fmt.Errorf("%w: %v is not an integer", ErrKind, f)
	}
	switch k {
	case Int32Kind:
		if f < math.MinInt32 || f > math.MaxInt32 {
			return nil, fmt.Errorf("%w: %v overflows %s", ErrKind, f, k)
		}
		return FromInt32(int32(f)), nil
	case UInt32Kind:
		if f < 0 || f > math.MaxUint32 {
			return nil, fmt.Errorf("%w: %v overflows %s", ErrKind, f, k)
		}
		return FromUint32(uint32(f)), nil
	case Int64Kind:
		if f < math.MinInt64 || f >= math.MaxInt64 {
			return nil, fmt.Errorf("%w: %v overflows %s", ErrKind, f, k)
		}
		return FromInt64(int64(f)), nil
	default:
		if f < 0 || f >= math.MaxUint64 {
			return nil, fmt.Errorf("%w: %v overflows %s", ErrKind, f, k)
		}
		return FromUint64(uint64(f)), nil
	}
}
