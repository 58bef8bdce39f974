package codec

import (
	"fmt"
	"math"
	"strings"

	"github.com/goccy/go-yaml/ast"
	"github.com/goccy/go-yaml/parser"

	"github.com/signadot/nodedit/inspect"
	"github.com/signadot/nodedit/node"
)

// kindTags maps the short kind names used as YAML tags to their kinds.
var kindTags = func() map[string]node.Kind {
	res := map[string]node.Kind{}
	for _, k := range node.Kinds() {
		if s := k.Short(); s != "" {
			res[s] = k
		}
	}
	return res
}()

type yamlDecoder struct {
	anchors map[string]*node.Node
}

func decodeYAML(d []byte) (*node.Node, error) {
	f, err := parser.ParseBytes(d, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	var bodies []ast.Node
	for _, doc := range f.Docs {
		if doc != nil && doc.Body != nil {
			bodies = append(bodies, doc.Body)
		}
	}
	switch len(bodies) {
	case 0:
		return node.Null(), nil
	case 1:
	default:
		return nil, fmt.Errorf("%w: %d documents, want 1", ErrDecode, len(bodies))
	}
	dec := &yamlDecoder{anchors: map[string]*node.Node{}}
	return dec.node(bodies[0])
}

func (d *yamlDecoder) node(n ast.Node) (*node.Node, error) {
	switch x := n.(type) {
	case nil:
		return node.Null(), nil
	case *ast.NullNode:
		return node.Null(), nil
	case *ast.BoolNode:
		return node.FromBool(x.Value), nil
	case *ast.StringNode:
		return node.FromString(x.Value), nil
	case *ast.LiteralNode:
		if x.Value == nil {
			return node.FromString(""), nil
		}
		return node.FromString(x.Value.Value), nil
	case *ast.IntegerNode:
		return intNode(x.Value)
	case *ast.FloatNode:
		return node.FromFloat64(x.Value), nil
	case *ast.InfinityNode:
		return node.FromFloat64(x.Value), nil
	case *ast.NanNode:
		return node.FromFloat64(math.NaN()), nil
	case *ast.MappingNode:
		return d.mapping(x.Values)
	case *ast.MappingValueNode:
		return d.mapping([]*ast.MappingValueNode{x})
	case *ast.SequenceNode:
		res := node.NewSequence()
		for _, e := range x.Values {
			v, err := d.node(e)
			if err != nil {
				return nil, err
			}
			if err := res.Append(v); err != nil {
				return nil, err
			}
		}
		return res, nil
	case *ast.TagNode:
		return d.tagged(x)
	case *ast.AnchorNode:
		v, err := d.node(x.Value)
		if err != nil {
			return nil, err
		}
		d.anchors[tokenText(x.Name)] = v
		return v, nil
	case *ast.AliasNode:
		name := tokenText(x.Value)
		v, ok := d.anchors[name]
		if !ok {
			return nil, fmt.Errorf("%w: unknown alias %q", ErrDecode, name)
		}
		return v.Clone(), nil
	}
	return nil, fmt.Errorf("%w: unsupported %s at %s", ErrDecode, n.Type(), position(n))
}

func intNode(v any) (*node.Node, error) {
	switch i := v.(type) {
	case int64:
		if i >= math.MinInt32 && i <= math.MaxInt32 {
			return node.FromInt32(int32(i)), nil
		}
		return node.FromInt64(i), nil
	case uint64:
		if i <= math.MaxInt32 {
			return node.FromInt32(int32(i)), nil
		}
		if i <= math.MaxInt64 {
			return node.FromInt64(int64(i)), nil
		}
		return node.FromUint64(i), nil
	case int:
		return intNode(int64(i))
	case uint:
		return intNode(uint64(i))
	}
	return nil, fmt.Errorf("%w: unexpected integer %T", ErrDecode, v)
}

func (d *yamlDecoder) mapping(mvs []*ast.MappingValueNode) (*node.Node, error) {
	res := node.NewMap()
	explicit := map[string]bool{}
	for _, mv := range mvs {
		if _, ok := mv.Key.(*ast.MergeKeyNode); ok {
			if err := d.merge(res, explicit, mv.Value); err != nil {
				return nil, err
			}
			continue
		}
		key, err := d.key(mv.Key)
		if err != nil {
			return nil, err
		}
		if explicit[key] {
			return nil, fmt.Errorf("%w: duplicate key %q at %s", ErrDecode, key, position(mv))
		}
		explicit[key] = true
		v, err := d.node(mv.Value)
		if err != nil {
			return nil, err
		}
		if err := res.Set(key, v); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// merge handles "<<" keys: fields of the merged maps are added unless the
// mapping sets them itself.
func (d *yamlDecoder) merge(dst *node.Node, explicit map[string]bool, src ast.Node) error {
	v, err := d.node(src)
	if err != nil {
		return err
	}
	srcs := []*node.Node{v}
	if v.IsSequence() {
		srcs = v.Values
	}
	for _, m := range srcs {
		if !m.IsMap() {
			return fmt.Errorf("%w: merge of %s at %s", ErrDecode, m.Kind, position(src))
		}
		for i, f := range m.Fields {
			if explicit[f] || dst.Has(f) {
				continue
			}
			if err := dst.Set(f, m.Values[i].Clone()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (d *yamlDecoder) key(k ast.Node) (string, error) {
	switch x := k.(type) {
	case *ast.StringNode:
		return x.Value, nil
	case *ast.NullNode, *ast.BoolNode, *ast.IntegerNode, *ast.FloatNode, *ast.InfinityNode, *ast.NanNode:
		return tokenText(x), nil
	}
	v, err := d.node(k)
	if err != nil {
		return "", err
	}
	if !v.IsScalar() {
		return "", fmt.Errorf("%w: %s key at %s", ErrDecode, v.Kind, position(k))
	}
	return v.ScalarText(), nil
}

func (d *yamlDecoder) tagged(x *ast.TagNode) (*node.Node, error) {
	tag := ""
	if x.Start != nil {
		tag = x.Start.Value
	}
	v, err := d.node(x.Value)
	if err != nil {
		return nil, err
	}
	switch tag {
	case "!!str", "!!int", "!!float", "!!bool", "!!null", "!!map", "!!seq":
		if tag == "!!str" && v.IsScalar() && v.Kind != node.StringKind {
			return node.FromString(tokenText(x.Value)), nil
		}
		return v, nil
	}
	name := strings.TrimPrefix(tag, "!")
	k, ok := kindTags[name]
	if !ok {
		v.Tag = name
		return v, nil
	}
	if v.Kind == k {
		return v, nil
	}
	if k == node.StringKind {
		return node.FromString(tokenText(x.Value)), nil
	}
	res, err := inspect.ScalarConverter{Kind: k}.Parse(tokenText(x.Value))
	if err == nil {
		return res, nil
	}
	// .inf and .nan tagged as f32
	if f, ok := v.Number(); ok && k.IsFloat() {
		return node.FromNumber(k, f)
	}
	return nil, fmt.Errorf("%w: at %s: %w", ErrDecode, position(x), err)
}

func tokenText(n ast.Node) string {
	if n == nil {
		return ""
	}
	if s, ok := n.(*ast.StringNode); ok {
		return s.Value
	}
	if tk := n.GetToken(); tk != nil {
		return tk.Value
	}
	return n.String()
}

func position(n ast.Node) string {
	if n == nil {
		return "?"
	}
	tk := n.GetToken()
	if tk == nil || tk.Position == nil {
		return "?"
	}
	return fmt.Sprintf("%d:%d", tk.Position.Line, tk.Position.Column)
}
