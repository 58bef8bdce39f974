package editor

import (
	"github.com/expr-lang/expr"

	"github.com/signadot/nodedit/gamemodule"
	"github.com/signadot/nodedit/query"
)

// Find returns the map nodes matching the query src. Besides the
// functions of package query, src may call name(id) and id(name) to
// resolve object names with the document's module.
func (d *Document) Find(src string) ([]query.Match, error) {
	mod := d.spec.Module
	q, err := query.Compile(src,
		expr.Function("name", func(params ...any) (any, error) {
			id, ok := intOf(params[0])
			if !ok {
				return gamemodule.UndefinedName, nil
			}
			return mod.ResolveObjectName(id), nil
		},
			new(func(any) string)),
		expr.Function("id", func(params ...any) (any, error) {
			s, _ := params[0].(string)
			return mod.ResolveObjectID(s), nil
		},
			new(func(string) int)),
	)
	if err != nil {
		return nil, err
	}
	res := query.Find(d.root, q)
	d.log.Debug("find", "query", src, "matches", len(res))
	return res, nil
}

func intOf(v any) (int, bool) {
	switch x := v.(type) {
	case int:
		return x, true
	case int64:
		return int(x), true
	case uint64:
		return int(x), true
	case float64:
		if x == float64(int(x)) {
			return int(x), true
		}
	}
	return 0, false
}

// Label names the object at objPath: its name field if it has one, else
// the module's name for its id field.
func (d *Document) Label(objPath string) (string, error) {
	obj, err := d.object(objPath)
	if err != nil {
		return "", err
	}
	cfg := d.spec.Config
	if n := obj.Get(cfg.NameKey); n != nil && n.ScalarText() != "" {
		return n.ScalarText(), nil
	}
	if id := obj.Get(cfg.IDKey); id != nil {
		if f, ok := id.Number(); ok {
			if i, ok := intOf(f); ok {
				return d.spec.Module.ResolveObjectName(i), nil
			}
		}
	}
	return gamemodule.UndefinedName, nil
}
