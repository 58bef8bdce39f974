package inspect

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/nodedit/node"
)

// Converter formats a property value for display and, if CanParse,
// converts edited text back into a node.
type Converter interface {
	Name() string
	Format(v *node.Node) string
	CanParse() bool
	Parse(text string) (*node.Node, error)
	// Expandable converters expose their value's children as nested
	// properties.
	Expandable() bool
}

// NullConverter shows null values. Nulls are replaced by setting a whole
// node, never from text.
type NullConverter struct{}

func (NullConverter) Name() string             { return "null" }
func (NullConverter) Format(*node.Node) string { return "<Null>" }
func (NullConverter) CanParse() bool           { return false }
func (NullConverter) Expandable() bool         { return false }
func (c NullConverter) Parse(string) (*node.Node, error) {
	return nil, noParse(c)
}

// MapConverter shows any map which has no more specific converter.
type MapConverter struct{}

func (MapConverter) Name() string             { return "map" }
func (MapConverter) Format(*node.Node) string { return "<Dictionary node>" }
func (MapConverter) CanParse() bool           { return false }
func (MapConverter) Expandable() bool         { return true }
func (c MapConverter) Parse(string) (*node.Node, error) {
	return nil, noParse(c)
}

// SequenceConverter shows sequences.
type SequenceConverter struct{}

func (SequenceConverter) Name() string             { return "sequence" }
func (SequenceConverter) Format(*node.Node) string { return "<Array node>" }
func (SequenceConverter) CanParse() bool           { return false }
func (SequenceConverter) Expandable() bool         { return true }
func (c SequenceConverter) Parse(string) (*node.Node, error) {
	return nil, noParse(c)
}

// LeafConverter shows leaves of a type nobody registered a converter for.
type LeafConverter struct{}

func (LeafConverter) Name() string               { return "leaf" }
func (LeafConverter) Format(v *node.Node) string { return v.ScalarText() }
func (LeafConverter) CanParse() bool             { return false }
func (LeafConverter) Expandable() bool           { return false }
func (c LeafConverter) Parse(string) (*node.Node, error) {
	return nil, noParse(c)
}

func noParse(c Converter) error {
	return fmt.Errorf("%w: %s values cannot be converted from text", ErrParse, c.Name())
}

// ScalarConverter converts the built-in scalar kinds using their
// culture-invariant decimal forms. Numeric text which does not fit the kind
// exactly is rejected rather than truncated.
type ScalarConverter struct {
	Kind node.Kind
}

func (c ScalarConverter) Name() string {
	return strings.ToLower(c.Kind.String())
}

func (c ScalarConverter) Format(v *node.Node) string {
	return v.ScalarText()
}

func (c ScalarConverter) CanParse() bool {
	return c.Kind.IsScalar()
}

func (c ScalarConverter) Expandable() bool {
	return false
}

func (c ScalarConverter) Parse(text string) (*node.Node, error) {
	if c.Kind == node.StringKind {
		return node.FromString(text), nil
	}
	t := strings.TrimSpace(text)
	switch c.Kind {
	case node.BoolKind:
		switch strings.ToLower(t) {
		case "true":
			return node.FromBool(true), nil
		case "false":
			return node.FromBool(false), nil
		}
		return nil, c.parseErr(text, nil)
	case node.Int32Kind, node.Int64Kind:
		i, err := strconv.ParseInt(t, 10, c.Kind.BitSize())
		if err != nil {
			return nil, c.parseErr(text, err)
		}
		if c.Kind == node.Int32Kind {
			return node.FromInt32(int32(i)), nil
		}
		return node.FromInt64(i), nil
	case node.UInt32Kind, node.UInt64Kind:
		u, err := strconv.ParseUint(t, 10, c.Kind.BitSize())
		if err != nil {
			return nil, c.parseErr(text, err)
		}
		if c.Kind == node.UInt32Kind {
			return node.FromUint32(uint32(u)), nil
		}
		return node.FromUint64(u), nil
	case node.Float32Kind, node.Float64Kind:
		if isHex(t) {
			return nil, c.parseErr(text, nil)
		}
		f, err := strconv.ParseFloat(t, c.Kind.BitSize())
		if err != nil {
			return nil, c.parseErr(text, err)
		}
		if c.Kind == node.Float32Kind {
			return node.FromFloat32(float32(f)), nil
		}
		return node.FromFloat64(f), nil
	}
	return nil, noParse(c)
}

// isHex reports whether t has a hexadecimal prefix, which ParseFloat
// accepts but property text does not.
func isHex(t string) bool {
	t = strings.TrimLeft(t, "+-")
	return len(t) > 1 && t[0] == '0' && (t[1] == 'x' || t[1] == 'X')
}

func (c ScalarConverter) parseErr(text string, err error) error {
	if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
		return fmt.Errorf("%w: %q is out of range for %s", ErrParse, text, c.Kind)
	}
	return fmt.Errorf("%w: %q is not a valid %s", ErrParse, text, c.Kind)
}
