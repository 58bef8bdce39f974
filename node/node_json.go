package node

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"sync"
)

// The JSON form of a node is lossless: every scalar keeps its kind.
//
//	{"kind":"Map","fields":["X"],"values":[{"kind":"Float32","float":1.5}]}
type nodeBase struct {
	Kind   Kind     `json:"kind"`
	Tag    string   `json:"tag,omitempty"`
	Fields []string `json:"fields,omitempty"`
	Values []*Node  `json:"values,omitempty"`

	Int      *int64          `json:"int,omitempty"`
	Uint     *uint64         `json:"uint,omitempty"`
	Float    *float64        `json:"float,omitempty"`
	Number   string          `json:"number,omitempty"`
	LeafType string          `json:"leafType,omitempty"`
	Leaf     json.RawMessage `json:"leaf,omitempty"`
}

// LeafDecoder rebuilds a leaf from the JSON produced by marshalling it.
type LeafDecoder func(json.RawMessage) (Leaf, error)

var (
	leafDecodersMu sync.RWMutex
	leafDecoders   = map[string]LeafDecoder{}
)

// RegisterLeafDecoder makes leaves of type name decodable from JSON.
func RegisterLeafDecoder(name string, d LeafDecoder) {
	leafDecodersMu.Lock()
	defer leafDecodersMu.Unlock()
	leafDecoders[name] = d
}

func (y *Node) MarshalJSON() ([]byte, error) {
	base := &nodeBase{
		Kind:   y.Kind,
		Tag:    y.Tag,
		Fields: y.Fields,
		Values: y.Values,
	}
	switch y.Kind {
	case StringKind:
		type C struct {
			nodeBase
			String string `json:"string"`
		}
		return json.Marshal(C{nodeBase: *base, String: y.String})
	case BoolKind:
		type C struct {
			nodeBase
			Bool bool `json:"bool"`
		}
		return json.Marshal(C{nodeBase: *base, Bool: y.Bool})
	case Int32Kind, Int64Kind:
		i := y.Int
		base.Int = &i
	case UInt32Kind, UInt64Kind:
		u := y.Uint
		base.Uint = &u
	case Float32Kind, Float64Kind:
		if math.IsNaN(y.Float) || math.IsInf(y.Float, 0) {
			base.Number = strconv.FormatFloat(y.Float, 'g', -1, 64)
		} else {
			f := y.Float
			base.Float = &f
		}
	case LeafKind:
		d, err := json.Marshal(y.Leaf)
		if err != nil {
			return nil, fmt.Errorf("%w: leaf %s: %w", ErrJSON, y.TypeName(), err)
		}
		base.LeafType = y.TypeName()
		base.Leaf = d
	}
	return json.Marshal(base)
}

func (y *Node) UnmarshalJSON(d []byte) error {
	type C struct {
		nodeBase
		String string `json:"string"`
		Bool   bool   `json:"bool"`
	}
	tmp := &C{}
	if err := json.Unmarshal(d, tmp); err != nil {
		return err
	}
	*y = Node{Kind: tmp.Kind, Tag: tmp.Tag}
	switch y.Kind {
	case NullKind:
	case StringKind:
		y.String = tmp.String
	case BoolKind:
		y.Bool = tmp.Bool
	case Int32Kind, Int64Kind:
		if tmp.Int == nil {
			return fmt.Errorf("%w: %s without int", ErrJSON, y.Kind)
		}
		y.Int = *tmp.Int
		if y.Kind == Int32Kind && (y.Int < math.MinInt32 || y.Int > math.MaxInt32) {
			return fmt.Errorf("%w: %d overflows %s", ErrJSON, y.Int, y.Kind)
		}
	case UInt32Kind, UInt64Kind:
		if tmp.Uint == nil {
			return fmt.Errorf("%w: %s without uint", ErrJSON, y.Kind)
		}
		y.Uint = *tmp.Uint
		if y.Kind == UInt32Kind && y.Uint > math.MaxUint32 {
			return fmt.Errorf("%w: %d overflows %s", ErrJSON, y.Uint, y.Kind)
		}
	case Float32Kind, Float64Kind:
		switch {
		case tmp.Float != nil:
			y.Float = *tmp.Float
		case tmp.Number != "":
			f, err := strconv.ParseFloat(tmp.Number, 64)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrJSON, err)
			}
			y.Float = f
		default:
			return fmt.Errorf("%w: %s without float", ErrJSON, y.Kind)
		}
		if y.Kind == Float32Kind {
			y.Float = float64(float32(y.Float))
		}
	case LeafKind:
		leafDecodersMu.RLock()
		dec, ok := leafDecoders[tmp.LeafType]
		leafDecodersMu.RUnlock()
		if !ok {
			return fmt.Errorf("%w: no decoder for leaf type %q", ErrJSON, tmp.LeafType)
		}
		l, err := dec(tmp.Leaf)
		if err != nil {
			return fmt.Errorf("%w: leaf %s: %w", ErrJSON, tmp.LeafType, err)
		}
		y.Leaf = l
	case MapKind:
		if len(tmp.Fields) != len(tmp.Values) {
			return fmt.Errorf("%w: %d fields for %d values", ErrJSON, len(tmp.Fields), len(tmp.Values))
		}
		seen := make(map[string]bool, len(tmp.Fields))
		for i, f := range tmp.Fields {
			if seen[f] {
				return fmt.Errorf("%w: duplicate key %q", ErrJSON, f)
			}
			seen[f] = true
			v := tmp.Values[i]
			if v == nil {
				v = Null()
			}
			y.put(f, v)
		}
	case SequenceKind:
		y.Values = make([]*Node, 0, len(tmp.Values))
		for _, v := range tmp.Values {
			if v == nil {
				v = Null()
			}
			y.adopt(v, len(y.Values), "")
			y.Values = append(y.Values, v)
		}
	default:
		return fmt.Errorf("%w: unexpected kind %s", ErrJSON, y.Kind)
	}
	return nil
}
