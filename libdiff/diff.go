package libdiff

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/nodedit/node"
)

// Diff lists the changes turning from into to, in document order.
func Diff(from, to *node.Node) []Change {
	d := &differ{dmp: diffpatch.New()}
	d.node(nil, from, to)
	return d.res
}

type differ struct {
	dmp *diffpatch.DiffMatchPatch
	res []Change
}

func (d *differ) add(path []node.Segment, op Op, from, to *node.Node) {
	d.res = append(d.res, Change{Path: node.FormatPath(path), Op: op, From: from, To: to})
}

func child(path []node.Segment, seg node.Segment) []node.Segment {
	res := make([]node.Segment, len(path)+1)
	copy(res, path)
	res[len(path)] = seg
	return res
}

func (d *differ) node(path []node.Segment, from, to *node.Node) {
	if from == nil {
		from = node.Null()
	}
	if to == nil {
		to = node.Null()
	}
	switch {
	case from.IsMap() && to.IsMap():
		d.mapping(path, from, to)
	case from.IsSequence() && to.IsSequence():
		d.sequence(path, from, to)
	case !node.Same(from, to):
		d.add(path, Replace, from, to)
	}
}

// mapping aligns the field names of from and to. A field deleted in one
// place and inserted in another has only moved, and is compared in place.
func (d *differ) mapping(path []node.Segment, from, to *node.Node) {
	runes := map[string]rune{}
	fromRunes := fieldRunes(runes, from)
	toRunes := fieldRunes(runes, to)
	diffs := d.dmp.DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range n {
				if f := from.Fields[fi]; !to.Has(f) {
					d.add(child(path, node.Segment{Key: f}), Delete, from.Values[fi], nil)
				}
				fi++
			}
		case diffpatch.DiffEqual:
			for range n {
				d.node(child(path, node.Segment{Key: to.Fields[ti]}), from.Values[fi], to.Values[ti])
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				f := to.Fields[ti]
				seg := child(path, node.Segment{Key: f})
				if old := from.Get(f); old != nil {
					d.node(seg, old, to.Values[ti])
				} else {
					d.add(seg, Insert, nil, to.Values[ti])
				}
				ti++
			}
		}
	}
}

func fieldRunes(m map[string]rune, n *node.Node) []rune {
	rs := make([]rune, len(n.Fields))
	for i, f := range n.Fields {
		r, ok := m[f]
		if !ok {
			r = rune(len(m))
			m[f] = r
		}
		rs[i] = r
	}
	return rs
}

// sequence aligns elements by summary. Deleted elements directly followed
// by inserted ones are paired up as replacements.
func (d *differ) sequence(path []node.Segment, from, to *node.Node) {
	runes := map[string]rune{}
	fromRunes := summaryRunes(runes, from)
	toRunes := summaryRunes(runes, to)
	diffs := d.dmp.DiffMainRunes(fromRunes, toRunes, false)
	fi, ti := 0, 0
	var pending []int
	flush := func() {
		for _, i := range pending {
			d.add(child(path, node.Segment{Index: i, IsIndex: true}), Delete, from.Values[i], nil)
		}
		pending = pending[:0]
	}
	for i := range diffs {
		diff := &diffs[i]
		n := len([]rune(diff.Text))
		switch diff.Type {
		case diffpatch.DiffDelete:
			for range n {
				pending = append(pending, fi)
				fi++
			}
		case diffpatch.DiffEqual:
			flush()
			for range n {
				d.node(child(path, node.Segment{Index: ti, IsIndex: true}), from.Values[fi], to.Values[ti])
				fi++
				ti++
			}
		case diffpatch.DiffInsert:
			for range n {
				seg := child(path, node.Segment{Index: ti, IsIndex: true})
				if len(pending) > 0 {
					old := from.Values[pending[0]]
					pending = pending[1:]
					d.node(seg, old, to.Values[ti])
				} else {
					d.add(seg, Insert, nil, to.Values[ti])
				}
				ti++
			}
		}
	}
	flush()
}

func summaryRunes(m map[string]rune, n *node.Node) []rune {
	rs := make([]rune, len(n.Values))
	for i, v := range n.Values {
		sum := summary(v)
		r, ok := m[sum]
		if !ok {
			r = rune(len(m))
			m[sum] = r
		}
		rs[i] = r
	}
	return rs
}

// summary identifies scalars by kind and value. Containers and multi-line
// strings only by kind, so that edited ones are aligned and compared.
func summary(n *node.Node) string {
	switch n.Kind {
	case node.NullKind, node.MapKind, node.SequenceKind:
		return n.Kind.String()
	case node.StringKind:
		if strings.Contains(n.String, "\n") {
			return n.Kind.String() + "/m"
		}
		return n.Kind.String() + "-" + n.String
	case node.LeafKind:
		return n.Kind.String() + "-" + n.TypeName() + "-" + n.ScalarText()
	}
	return n.Kind.String() + "-" + n.ScalarText()
}
