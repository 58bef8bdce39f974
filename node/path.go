package node

import (
	"fmt"
	"strconv"
	"strings"
)

// Segment is one step of a path: a map key or a sequence index.
type Segment struct {
	Key     string
	Index   int
	IsIndex bool
}

func (s Segment) String() string {
	if s.IsIndex {
		return "[" + strconv.Itoa(s.Index) + "]"
	}
	return quoteField(s.Key)
}

// Path returns the kinded path of y from its root: map keys are joined
// with '.', sequence indices are written "[i]".
//
// Examples:
//   - root → ""
//   - map field "a" → "a"
//   - sequence element 0 → "[0]"
//   - mixed → "Objs[3].Translate.X"
func (y *Node) Path() string {
	if y == nil || y.Parent == nil {
		return ""
	}
	prefix := y.Parent.Path()
	switch y.Parent.Kind {
	case MapKind:
		f := quoteField(y.ParentField)
		if prefix == "" {
			return f
		}
		return prefix + "." + f
	case SequenceKind:
		return prefix + "[" + strconv.Itoa(y.ParentIndex) + "]"
	default:
		panic("parent but not in container")
	}
}

// Segments returns the path of y as segments.
func (y *Node) Segments() []Segment {
	var res []Segment
	for x := y; x != nil && x.Parent != nil; x = x.Parent {
		if x.Parent.Kind == SequenceKind {
			res = append(res, Segment{Index: x.ParentIndex, IsIndex: true})
		} else {
			res = append(res, Segment{Key: x.ParentField})
		}
	}
	for i, j := 0, len(res)-1; i < j; i, j = i+1, j-1 {
		res[i], res[j] = res[j], res[i]
	}
	return res
}

func quoteField(f string) string {
	if f == "" || strings.ContainsAny(f, ".[]\"\\ \t\n") {
		return strconv.Quote(f)
	}
	return f
}

// FormatPath is the inverse of ParsePath.
func FormatPath(segs []Segment) string {
	var b strings.Builder
	for i, s := range segs {
		if !s.IsIndex && i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s.String())
	}
	return b.String()
}

// ParsePath parses a kinded path such as `a.b[0]."c d"`. The empty string
// and "$" denote the root.
func ParsePath(p string) ([]Segment, error) {
	p = strings.TrimPrefix(p, "$")
	var res []Segment
	i := 0
	for i < len(p) {
		switch c := p[i]; {
		case c == '[':
			end := strings.IndexByte(p[i:], ']')
			if end < 0 {
				return nil, fmt.Errorf("%w: unterminated index in %q", ErrPath, p)
			}
			n, err := strconv.Atoi(p[i+1 : i+end])
			if err != nil || n < 0 {
				return nil, fmt.Errorf("%w: bad index %q in %q", ErrPath, p[i+1:i+end], p)
			}
			res = append(res, Segment{Index: n, IsIndex: true})
			i += end + 1
		case c == '.':
			if i+1 >= len(p) {
				return nil, fmt.Errorf("%w: trailing '.' in %q", ErrPath, p)
			}
			i++
			key, n, err := parseField(p[i:])
			if err != nil {
				return nil, fmt.Errorf("%w in %q", err, p)
			}
			res = append(res, Segment{Key: key})
			i += n
		case i == 0:
			key, n, err := parseField(p)
			if err != nil {
				return nil, fmt.Errorf("%w in %q", err, p)
			}
			res = append(res, Segment{Key: key})
			i += n
		default:
			return nil, fmt.Errorf("%w: unexpected %q at %d in %q", ErrPath, c, i, p)
		}
	}
	return res, nil
}

func parseField(s string) (string, int, error) {
	if strings.HasPrefix(s, "\"") {
		q, err := strconv.QuotedPrefix(s)
		if err != nil {
			return "", 0, fmt.Errorf("%w: bad quoted field", ErrPath)
		}
		key, err := strconv.Unquote(q)
		if err != nil {
			return "", 0, fmt.Errorf("%w: bad quoted field", ErrPath)
		}
		return key, len(q), nil
	}
	end := strings.IndexAny(s, ".[")
	if end < 0 {
		end = len(s)
	}
	if end == 0 {
		return "", 0, fmt.Errorf("%w: empty field", ErrPath)
	}
	return s[:end], end, nil
}

// Child returns the child of y addressed by seg or nil.
func (y *Node) Child(seg Segment) *Node {
	if seg.IsIndex {
		if !y.IsSequence() {
			return nil
		}
		return y.Index(seg.Index)
	}
	return y.Get(seg.Key)
}

// Lookup follows segs from y.
func (y *Node) Lookup(segs []Segment) (*Node, error) {
	res := y
	for i, seg := range segs {
		next := res.Child(seg)
		if next == nil {
			switch {
			case seg.IsIndex && res.IsSequence():
				return nil, fmt.Errorf("%w: %s: index %d out of range (len %d)", ErrPath, FormatPath(segs[:i+1]), seg.Index, res.Len())
			case seg.IsIndex:
				return nil, fmt.Errorf("%w: %s: expected sequence, got %s", ErrPath, FormatPath(segs[:i+1]), res.kindString())
			case res.IsMap():
				return nil, fmt.Errorf("%w: %s: no such key", ErrPath, FormatPath(segs[:i+1]))
			default:
				return nil, fmt.Errorf("%w: %s: expected map, got %s", ErrPath, FormatPath(segs[:i+1]), res.kindString())
			}
		}
		res = next
	}
	return res, nil
}

// GetPath navigates from y using a kinded path string.
func (y *Node) GetPath(p string) (*Node, error) {
	segs, err := ParsePath(p)
	if err != nil {
		return nil, err
	}
	return y.Lookup(segs)
}
