// Package patch applies RFC 6902 JSON patches and RFC 7386 merge patches
// to node trees.
//
// Patching goes through JSON, which only knows one number type, loses map
// key order and has no tags. Reconcile repairs what it can from the
// document before the patch.
package patch

import (
	"errors"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/nodedit/codec"
	"github.com/signadot/nodedit/debug"
	"github.com/signadot/nodedit/node"
)

var ErrPatch = errors.New("patch error")

// Apply applies the JSON patch in patchJSON to doc, returning a new tree.
// doc is not modified.
func Apply(doc *node.Node, patchJSON []byte) (*node.Node, error) {
	ops, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if debug.Patch() {
		debug.Logf("json patch of %d ops on %q\n", len(ops), doc.Path())
	}
	return through(doc, ops.Apply)
}

// Merge applies the merge patch in mergeJSON to doc, returning a new tree.
func Merge(doc *node.Node, mergeJSON []byte) (*node.Node, error) {
	if debug.Patch() {
		debug.Logf("merge patch on %q\n", doc.Path())
	}
	return through(doc, func(d []byte) ([]byte, error) {
		return jsonpatch.MergePatch(d, mergeJSON)
	})
}

// MergePatchFor creates the merge patch turning from into to.
func MergePatchFor(from, to *node.Node) ([]byte, error) {
	fd, err := codec.JSON{}.Encode(from)
	if err != nil {
		return nil, err
	}
	td, err := codec.JSON{}.Encode(to)
	if err != nil {
		return nil, err
	}
	res, err := jsonpatch.CreateMergePatch(fd, td)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	return res, nil
}

func through(doc *node.Node, f func([]byte) ([]byte, error)) (*node.Node, error) {
	d, err := codec.JSON{}.Encode(doc)
	if err != nil {
		return nil, err
	}
	out, err := f(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	res, err := codec.JSON{}.Decode(out)
	if err != nil {
		return nil, err
	}
	return Reconcile(doc, res), nil
}
