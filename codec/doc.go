// Package codec reads and writes node trees.
//
// YAML is decoded from the github.com/goccy/go-yaml AST so that key order,
// tags and anchors survive. Scalars decode to the default kinds (strings,
// bools, Int32 when an integer fits, else Int64, else UInt64, and Float64)
// unless they carry one of the kind tags
//
//	!str !bool !i32 !u32 !i64 !u64 !f32 !f64
//
// which the encoder emits for every scalar whose kind would not otherwise
// round trip. Any other tag is kept in the node's Tag. Aliases decode as
// clones of their anchored value.
//
// JSON is read with the YAML decoder and written with the encoder's JSON
// style; kinds and tags do not survive JSON. The IR format is the node
// package's JSON form, which is lossless.
package codec
