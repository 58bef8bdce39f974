package gamemodule

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"slices"

	"github.com/golang/groupcache/lru"
	"golang.org/x/text/cases"

	"github.com/signadot/nodedit/codec"
	"github.com/signadot/nodedit/debug"
	"github.com/signadot/nodedit/node"
)

// DefaultModelCacheSize is the number of model lookups a Table remembers
// by default.
const DefaultModelCacheSize = 256

type Spec struct {
	// Name names the module, "objflow" if empty.
	Name string
	// GameFolder is the root of the game files.
	GameFolder string
	// FS holds the game files, os.DirFS(GameFolder) if nil.
	FS fs.FS
	// ModelCacheSize bounds the cache of model lookups.
	ModelCacheSize int
	// ReservedKeys are reported by the module's ReservedKeys.
	ReservedKeys []string

	Log *slog.Logger
}

// Table is a Module built from an objflow list, a sequence of maps
//
//	- ObjId: 1001
//	  ResName: [Coin, CoinShadow]
//
// naming each object id after its first resource. Lookups of model files
// are cached. A Table is not safe for concurrent use.
type Table struct {
	spec   Spec
	fsys   fs.FS
	names  map[int]string
	ids    map[string]int
	order  []int
	fold   cases.Caser
	models *lru.Cache
	log    *slog.Logger
}

// LoadTable builds a table from the objflow tree. Entries without a
// ResName are skipped. When an id or a name occurs twice the first entry
// wins.
func LoadTable(spec Spec, objflow *node.Node) (*Table, error) {
	if !objflow.IsSequence() {
		return nil, fmt.Errorf("%w: %s, not a sequence", ErrObjFlow, objflow.Kind)
	}
	t := newTable(spec)
	for i, e := range objflow.Values {
		id, ok := integer(e.Get("ObjId"))
		if !ok {
			return nil, fmt.Errorf("%w: [%d] has no integer ObjId", ErrObjFlow, i)
		}
		res := e.Get("ResName")
		if !res.IsSequence() || res.Len() == 0 || res.Index(0).Kind != node.StringKind {
			t.log.Warn("objflow entry without ResName", "index", i, "id", id)
			continue
		}
		t.add(id, res.Index(0).String)
	}
	if debug.Module() {
		debug.Logf("%s: %d objects from %d objflow entries\n", t.Name(), len(t.names), objflow.Len())
	}
	return t, nil
}

// OpenTable loads the objflow file at objflowPath.
func OpenTable(spec Spec, objflowPath string) (*Table, error) {
	n, err := codec.LoadTree(objflowPath)
	if err != nil {
		return nil, err
	}
	t, err := LoadTable(spec, n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", objflowPath, err)
	}
	return t, nil
}

func newTable(spec Spec) *Table {
	if spec.Name == "" {
		spec.Name = "objflow"
	}
	if spec.ModelCacheSize <= 0 {
		spec.ModelCacheSize = DefaultModelCacheSize
	}
	log := spec.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	fsys := spec.FS
	if fsys == nil && spec.GameFolder != "" {
		fsys = os.DirFS(spec.GameFolder)
	}
	return &Table{
		spec:   spec,
		fsys:   fsys,
		names:  map[int]string{},
		ids:    map[string]int{},
		fold:   cases.Fold(),
		models: lru.New(spec.ModelCacheSize),
		log:    log.With("module", spec.Name),
	}
}

func (t *Table) add(id int, name string) {
	if old, ok := t.names[id]; ok {
		t.log.Warn("duplicate objflow id", "id", id, "name", name, "kept", old)
		return
	}
	t.names[id] = name
	t.order = append(t.order, id)
	key := t.fold.String(name)
	if _, ok := t.ids[key]; !ok {
		t.ids[key] = id
	}
}

func integer(n *node.Node) (int, bool) {
	if n == nil {
		return 0, false
	}
	switch n.Kind {
	case node.Int32Kind, node.Int64Kind:
		return int(n.Int), true
	case node.UInt32Kind, node.UInt64Kind:
		return int(n.Uint), true
	}
	return 0, false
}

func (t *Table) Name() string {
	return t.spec.Name
}

func (t *Table) ResolveObjectName(id int) string {
	if name, ok := t.names[id]; ok {
		return name
	}
	return UndefinedName
}

func (t *Table) ResolveObjectID(name string) int {
	return t.ids[t.fold.String(name)]
}

// ResolveModelPath returns <GameFolder>/MapObj/<name>/<name>.bfres if
// that file exists.
func (t *Table) ResolveModelPath(objName string) (string, bool) {
	if t.fsys == nil || objName == "" || objName == UndefinedName {
		return "", false
	}
	if v, ok := t.models.Get(objName); ok {
		p := v.(string)
		return p, p != ""
	}
	rel := path.Join("MapObj", objName, objName+".bfres")
	p := ""
	if fs.ValidPath(rel) {
		if fi, err := fs.Stat(t.fsys, rel); err == nil && !fi.IsDir() {
			p = filepath.Join(t.spec.GameFolder, filepath.FromSlash(rel))
		}
	}
	if debug.Module() {
		debug.Logf("model of %q: %q\n", objName, p)
	}
	t.models.Add(objName, p)
	return p, p != ""
}

func (t *Table) ReservedKeys() []string {
	return slices.Clone(t.spec.ReservedKeys)
}

// IDs lists the known ids in objflow order.
func (t *Table) IDs() []int {
	return slices.Clone(t.order)
}

func (t *Table) Len() int {
	return len(t.names)
}
