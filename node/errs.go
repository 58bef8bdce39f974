package node

import "errors"

var (
	ErrKind   = errors.New("bad kind")
	ErrCycle  = errors.New("node is an ancestor of its destination")
	ErrShared = errors.New("node is already owned by another container")
	ErrPath   = errors.New("path error")
	ErrRange  = errors.New("index out of range")
	ErrNotMap = errors.New("not a map")
	ErrNotSeq = errors.New("not a sequence")
	ErrJSON   = errors.New("node json error")
)
