// Package format names the file formats node trees are stored in.
//
// # Usage
//
//	f, err := format.ParseFormat("yaml")
//
//	// choose by file name
//	f, err = format.FromPath("course/objects.json")
//
// YAML and JSON are the user facing formats. The IR format is the node
// package's lossless JSON form, which keeps kinds, tags and leaf values.
package format
