package gamemodule

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/nodedit/inspect"
	"github.com/signadot/nodedit/node"
)

// ObjIDTag is the type name of object id properties, which modules with
// an object table show and edit by name.
const ObjIDTag = "objid"

// ObjIDConverter shows an object id as the name of the object, or as the
// number if the module does not know it. It parses names and numbers.
type ObjIDConverter struct {
	Module Module
}

func (ObjIDConverter) Name() string     { return ObjIDTag }
func (ObjIDConverter) CanParse() bool   { return true }
func (ObjIDConverter) Expandable() bool { return false }

func (c ObjIDConverter) Format(v *node.Node) string {
	f, ok := v.Number()
	if !ok || f != math.Trunc(f) {
		return v.ScalarText()
	}
	if name := c.Module.ResolveObjectName(int(f)); name != UndefinedName {
		return name
	}
	return v.ScalarText()
}

func (c ObjIDConverter) Parse(text string) (*node.Node, error) {
	t := strings.TrimSpace(text)
	if i, err := strconv.ParseInt(t, 10, 32); err == nil {
		return node.FromInt32(int32(i)), nil
	}
	id := c.Module.ResolveObjectID(t)
	if id == 0 || id < math.MinInt32 || id > math.MaxInt32 {
		return nil, fmt.Errorf("%w: %q is not an object of %s", inspect.ErrParse, text, c.Module.Name())
	}
	return node.FromInt32(int32(id)), nil
}

// RegisterConverters registers an ObjIDConverter over t.
func (t *Table) RegisterConverters(reg *inspect.Registry) {
	reg.Register(ObjIDTag, func() inspect.Converter {
		return ObjIDConverter{Module: t}
	})
}
