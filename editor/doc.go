// Package editor is an editable node tree document: the property
// inspector, the undo log and the clipboard wired together over one tree.
//
// Every edit is recorded as one undo action whose argument is a detached
// snapshot of what the edit replaced: either the edited slot's old value
// or, for edits changing the shape of a container, a clone of the whole
// container. Undoing an action swaps its snapshot back into the tree, and
// the value it displaces becomes the snapshot of the matching redo action.
//
// A Document is not safe for concurrent use.
package editor
