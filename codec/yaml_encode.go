package codec

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/signadot/nodedit/debug"
	"github.com/signadot/nodedit/node"
)

// YAML reads and writes block style YAML.
type YAML struct{}

func (YAML) Decode(d []byte) (*node.Node, error) {
	return decodeYAML(d)
}

func (YAML) Encode(n *node.Node) ([]byte, error) {
	v, err := toYAML(n)
	if err != nil {
		return nil, err
	}
	d, err := yaml.MarshalWithOptions(v, yaml.Indent(2), yaml.IndentSequence(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return d, nil
}

// JSON reads JSON (with the YAML decoder) and writes it with the YAML
// encoder's JSON style.
type JSON struct{}

func (JSON) Decode(d []byte) (*node.Node, error) {
	return decodeYAML(d)
}

func (JSON) Encode(n *node.Node) ([]byte, error) {
	v, err := toJSON(n)
	if err != nil {
		return nil, err
	}
	d, err := yaml.MarshalWithOptions(v, yaml.JSON())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return d, nil
}

// rawYAML is emitted as is by the encoder.
type rawYAML string

func (r rawYAML) MarshalYAML() ([]byte, error) {
	return []byte(r), nil
}

func toYAML(n *node.Node) (any, error) {
	if n == nil {
		return nil, nil
	}
	switch n.Kind {
	case node.MapKind, node.SequenceKind:
		var inner any
		if n.Kind == node.MapKind {
			ms := make(yaml.MapSlice, len(n.Fields))
			for i, f := range n.Fields {
				v, err := toYAML(n.Values[i])
				if err != nil {
					return nil, err
				}
				ms[i] = yaml.MapItem{Key: f, Value: v}
			}
			inner = ms
		} else {
			vs := make([]any, len(n.Values))
			for i, e := range n.Values {
				v, err := toYAML(e)
				if err != nil {
					return nil, err
				}
				vs[i] = v
			}
			inner = vs
		}
		if n.Tag == "" {
			return inner, nil
		}
		// a tag has nowhere to go on a block collection, so tagged
		// collections are written in flow style.
		d, err := yaml.MarshalWithOptions(inner, yaml.Flow(true))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrEncode, n.Path(), err)
		}
		return rawYAML("!" + n.Tag + " " + strings.TrimSpace(string(d))), nil
	case node.LeafKind:
		return rawYAML("!" + n.TypeName() + " " + strconv.Quote(n.ScalarText())), nil
	}
	text, kindTag := scalarYAML(n)
	tag := n.Tag
	if kindTag != "" {
		if tag != "" && debug.Codec() {
			debug.Logf("%s: tag %q dropped for kind %s\n", n.Path(), tag, n.Kind)
		}
		tag = kindTag
	}
	if tag == "" {
		if n.Kind == node.StringKind {
			return n.String, nil
		}
		return rawYAML(text), nil
	}
	if n.Kind == node.NullKind {
		return rawYAML("!" + tag), nil
	}
	return rawYAML("!" + tag + " " + text), nil
}

// scalarYAML gives the YAML text of a scalar and the kind tag it needs to
// decode back to the same kind, if any.
func scalarYAML(n *node.Node) (string, string) {
	switch n.Kind {
	case node.NullKind:
		return "null", ""
	case node.StringKind:
		return strconv.Quote(n.String), ""
	case node.BoolKind:
		return strconv.FormatBool(n.Bool), ""
	case node.Int32Kind:
		return n.ScalarText(), ""
	case node.Int64Kind:
		if n.Int >= math.MinInt32 && n.Int <= math.MaxInt32 {
			return n.ScalarText(), n.Kind.Short()
		}
		return n.ScalarText(), ""
	case node.UInt64Kind:
		if n.Uint <= math.MaxInt64 {
			return n.ScalarText(), n.Kind.Short()
		}
		return n.ScalarText(), ""
	case node.UInt32Kind:
		return n.ScalarText(), n.Kind.Short()
	case node.Float32Kind:
		return floatText(n.Float, 32), n.Kind.Short()
	case node.Float64Kind:
		return floatText(n.Float, 64), ""
	}
	return n.ScalarText(), ""
}

// floatText always has a '.' (or is an infinity or NaN) so that it decodes
// as a float.
func floatText(f float64, bits int) string {
	switch {
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	case math.IsNaN(f):
		return ".nan"
	}
	s := strconv.FormatFloat(f, 'g', -1, bits)
	if strings.Contains(s, ".") {
		return s
	}
	if i := strings.IndexByte(s, 'e'); i >= 0 {
		return s[:i] + ".0" + s[i:]
	}
	return s + ".0"
}

func toJSON(n *node.Node) (any, error) {
	if n == nil {
		return nil, nil
	}
	switch n.Kind {
	case node.NullKind:
		return nil, nil
	case node.StringKind:
		return n.String, nil
	case node.BoolKind:
		return n.Bool, nil
	case node.Int32Kind, node.Int64Kind:
		return n.Int, nil
	case node.UInt32Kind, node.UInt64Kind:
		return n.Uint, nil
	case node.Float32Kind, node.Float64Kind:
		if math.IsInf(n.Float, 0) || math.IsNaN(n.Float) {
			return nil, fmt.Errorf("%w: %s: %s has no JSON form", ErrEncode, n.Path(), n.ScalarText())
		}
		// the shortest text of a Float32 reads back as the same float64
		f, _ := strconv.ParseFloat(n.ScalarText(), 64)
		return f, nil
	case node.LeafKind:
		return n.ScalarText(), nil
	case node.MapKind:
		ms := make(yaml.MapSlice, len(n.Fields))
		for i, f := range n.Fields {
			v, err := toJSON(n.Values[i])
			if err != nil {
				return nil, err
			}
			ms[i] = yaml.MapItem{Key: f, Value: v}
		}
		return ms, nil
	case node.SequenceKind:
		vs := make([]any, len(n.Values))
		for i, e := range n.Values {
			v, err := toJSON(e)
			if err != nil {
				return nil, err
			}
			vs[i] = v
		}
		return vs, nil
	}
	return nil, fmt.Errorf("%w: unexpected kind %s", ErrEncode, n.Kind)
}
