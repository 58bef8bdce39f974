// Package inspect bridges node trees and property editors.
//
// An Inspector turns a map or sequence node into an ordered list of
// Handles, one per child. Each handle reads and writes the live tree and
// picks a Converter for the child's current value:
//
//   - null: NullConverter, shown as "<Null>"
//   - a converter registered for the value's tag or leaf type
//   - maps with exactly X, Y and Z: VectorConverter, shown as "(x, y, z)"
//   - other maps: MapConverter, "<Dictionary node>"
//   - sequences: SequenceConverter, "<Array node>", children "Item i :"
//   - scalars: ScalarConverter of the value's kind
//
// Writes through a handle validate before writing: a SetText whose text
// does not parse leaves the tree unchanged and returns an error wrapping
// ErrParse. Inspector.OnSet observes every write and is where an editor
// records undo information.
package inspect
