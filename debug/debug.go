package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Inspect bool
	Undo    bool
	Codec   bool
	Patch   bool
	Query   bool
	Editor  bool
	Module  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Inspect = boolEnv("NODEDIT_DEBUG_INSPECT")
	d.Undo = boolEnv("NODEDIT_DEBUG_UNDO")
	d.Codec = boolEnv("NODEDIT_DEBUG_CODEC")
	d.Patch = boolEnv("NODEDIT_DEBUG_PATCH")
	d.Query = boolEnv("NODEDIT_DEBUG_QUERY")
	d.Editor = boolEnv("NODEDIT_DEBUG_EDITOR")
	d.Module = boolEnv("NODEDIT_DEBUG_MODULE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Inspect() bool {
	return d.Inspect
}
func Undo() bool {
	return d.Undo
}
func Codec() bool {
	return d.Codec
}
func Patch() bool {
	return d.Patch
}
func Query() bool {
	return d.Query
}
func Editor() bool {
	return d.Editor
}
func Module() bool {
	return d.Module
}
