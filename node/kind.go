package node

import (
	"fmt"
	"strings"
)

// Kind is the variant tag of a Node.
type Kind int

const (
	NullKind Kind = iota
	StringKind
	BoolKind
	Int32Kind
	UInt32Kind
	Int64Kind
	UInt64Kind
	Float32Kind
	Float64Kind
	LeafKind
	MapKind
	SequenceKind
)

var kindNames = map[Kind]string{
	NullKind:     "Null",
	StringKind:   "String",
	BoolKind:     "Bool",
	Int32Kind:    "Int32",
	UInt32Kind:   "UInt32",
	Int64Kind:    "Int64",
	UInt64Kind:   "UInt64",
	Float32Kind:  "Float32",
	Float64Kind:  "Float64",
	LeafKind:     "Leaf",
	MapKind:      "Map",
	SequenceKind: "Sequence",
}

// short names, as used by YAML kind tags (!u32 etc).
var kindShort = map[Kind]string{
	StringKind:  "str",
	BoolKind:    "bool",
	Int32Kind:   "i32",
	UInt32Kind:  "u32",
	Int64Kind:   "i64",
	UInt64Kind:  "u64",
	Float32Kind: "f32",
	Float64Kind: "f64",
}

func (k Kind) String() string {
	s, ok := kindNames[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

// Short returns the short scalar name of k ("i32", "f64", ...) or "" if k
// has none.
func (k Kind) Short() string {
	return kindShort[k]
}

func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrKind, int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, err := ParseKind(string(d))
	if err != nil {
		return err
	}
	*k = kk
	return nil
}

// ParseKind accepts both the long ("UInt32") and short ("u32") names,
// case-insensitively.
func ParseKind(v string) (Kind, error) {
	lv := strings.ToLower(v)
	for k, s := range kindNames {
		if strings.ToLower(s) == lv {
			return k, nil
		}
	}
	for k, s := range kindShort {
		if s == lv {
			return k, nil
		}
	}
	return NullKind, fmt.Errorf("%w: %q", ErrKind, v)
}

func Kinds() []Kind {
	return []Kind{
		NullKind,
		StringKind,
		BoolKind,
		Int32Kind,
		UInt32Kind,
		Int64Kind,
		UInt64Kind,
		Float32Kind,
		Float64Kind,
		LeafKind,
		MapKind,
		SequenceKind,
	}
}

// IsScalar reports whether k is one of the built-in scalar kinds.
func (k Kind) IsScalar() bool {
	switch k {
	case StringKind, BoolKind, Int32Kind, UInt32Kind, Int64Kind, UInt64Kind, Float32Kind, Float64Kind:
		return true
	}
	return false
}

func (k Kind) IsInteger() bool {
	switch k {
	case Int32Kind, UInt32Kind, Int64Kind, UInt64Kind:
		return true
	}
	return false
}

func (k Kind) IsSigned() bool {
	return k == Int32Kind || k == Int64Kind
}

func (k Kind) IsFloat() bool {
	return k == Float32Kind || k == Float64Kind
}

func (k Kind) IsNumber() bool {
	return k.IsInteger() || k.IsFloat()
}

// BitSize is the storage width of numeric kinds, 0 otherwise.
func (k Kind) BitSize() int {
	switch k {
	case Int32Kind, UInt32Kind, Float32Kind:
		return 32
	case Int64Kind, UInt64Kind, Float64Kind:
		return 64
	}
	return 0
}

func (k Kind) IsContainer() bool {
	return k == MapKind || k == SequenceKind
}
