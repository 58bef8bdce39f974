// Package shell interprets one line commands over an editor document.
//
// Commands take paths in the form accepted by node.ParsePath, with "" or
// "$" naming the root:
//
//	ls Objs
//	props Objs[0].Translate
//	set Objs[0].Translate X 12.5
//	copy pos Objs[0]
//	paste Objs[3]
//	undo
//
// Run "help" for the full list.
package shell
