package inspect

import "errors"

var (
	// ErrNotInspectable is returned when exposing a node which is neither
	// a map nor a sequence.
	ErrNotInspectable = errors.New("node is not inspectable")
	// ErrReadOnly is returned when writing through a handle without a
	// setter.
	ErrReadOnly = errors.New("property is read-only")
	// ErrDetached is returned when writing through a handle whose parent
	// is no longer part of the edited tree.
	ErrDetached = errors.New("property is detached")
	// ErrParse is returned when text does not convert to the property's
	// kind, or the property's converter does not convert from text.
	ErrParse = errors.New("parse error")
)
