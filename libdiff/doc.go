// Package libdiff computes the structural differences between two node
// trees.
//
// # Usage
//
//	for _, c := range libdiff.Diff(saved, current) {
//		fmt.Println(c)
//	}
//
// Map fields and sequence elements are aligned with rune diffs from
// github.com/sergi/go-diff: every distinct field name, or every distinct
// element summary, is mapped to a rune and the two rune strings are
// diffed. Aligned pairs are compared recursively, so a change deep in a
// tree is reported at its own path rather than as a replacement of the
// whole container.
//
// Map key order and tags are not compared, as with node.Same, and NaN
// floats are unchanged.
package libdiff
