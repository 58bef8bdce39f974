package editor

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/signadot/nodedit/clipboard"
	"github.com/signadot/nodedit/codec"
	"github.com/signadot/nodedit/config"
	"github.com/signadot/nodedit/gamemodule"
	"github.com/signadot/nodedit/inspect"
	"github.com/signadot/nodedit/node"
	"github.com/signadot/nodedit/undo"
)

// Object fields read and written by copy and paste.
const (
	TranslateKey = "Translate"
	RotateKey    = "Rotate"
	ScaleKey     = "Scale"
	ArgsKey      = "Args"
)

var (
	ErrNoPath = errors.New("document has no path")
	// ErrExists is returned when adding a property a map already has.
	ErrExists = errors.New("property exists")
)

type Spec struct {
	// Config defaults to config.Default().
	Config *config.Config
	// Module labels objects. Defaults to gamemodule.None.
	Module gamemodule.Module
	// Registry holds property converters. Defaults to
	// inspect.DefaultRegistry. The document inspects with a copy to which
	// Module adds its converters.
	Registry *inspect.Registry
	// Board is the clipboard. Defaults to clipboard.Default.
	Board *clipboard.Board

	Log *slog.Logger
}

type Document struct {
	spec  Spec
	root  *node.Node
	path  string
	saved *node.Node
	// hash of saved
	savedHash uint64

	insp     *inspect.Inspector
	undo     *undo.Log
	redo     *undo.Log
	opposite *snapshot
	log      *slog.Logger
}

// Open loads the tree at path.
func Open(spec Spec, path string) (*Document, error) {
	tree, err := codec.LoadTree(path)
	if err != nil {
		return nil, err
	}
	return New(spec, tree, path), nil
}

// New makes a document editing tree, which is considered saved at path.
// path may be empty for documents which have not been saved.
func New(spec Spec, tree *node.Node, path string) *Document {
	if spec.Config == nil {
		spec.Config = config.Default()
	}
	if spec.Module == nil {
		spec.Module = gamemodule.None{}
	}
	if spec.Board == nil {
		spec.Board = clipboard.Default
	}
	log := spec.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if tree == nil {
		tree = node.Null()
	}
	d := &Document{
		spec: spec,
		root: tree,
		path: path,
		undo: undo.New(spec.Config.MaxUndo),
		redo: undo.New(spec.Config.MaxUndo),
		log:  log,
	}
	reg := spec.Registry
	if reg == nil {
		reg = inspect.DefaultRegistry
	}
	reg = reg.Clone()
	spec.Module.RegisterConverters(reg)
	d.insp = &inspect.Inspector{
		Registry:     reg,
		ReadOnlyKeys: slices.Concat(spec.Config.ReadOnlyKeys, spec.Module.ReservedKeys()),
		Check:        d.checkSet,
		OnSet:        d.onSet,
	}
	d.markSaved()
	return d
}

// ModuleFor opens the game module named by cfg, or returns
// gamemodule.None if cfg names no objflow file.
func ModuleFor(cfg *config.Config, log *slog.Logger) (gamemodule.Module, error) {
	p := cfg.ObjFlowPath()
	if p == "" {
		return gamemodule.None{}, nil
	}
	return gamemodule.OpenTable(gamemodule.Spec{
		GameFolder:     cfg.GameFolder,
		ModelCacheSize: cfg.ModelCacheSize,
		ReservedKeys:   cfg.ReadOnlyKeys,
		Log:            log,
	}, p)
}

func (d *Document) Root() *node.Node {
	return d.root
}

// Path is where the document was loaded from or last saved to.
func (d *Document) Path() string {
	return d.path
}

func (d *Document) Config() *config.Config {
	return d.spec.Config
}

func (d *Document) Module() gamemodule.Module {
	return d.spec.Module
}

func (d *Document) Board() *clipboard.Board {
	return d.spec.Board
}

func (d *Document) markSaved() {
	d.saved = d.root.Clone()
	d.savedHash = d.saved.Hash()
}

// Dirty reports whether the tree differs from the saved one.
func (d *Document) Dirty() bool {
	if d.root.Hash() != d.savedHash {
		return true
	}
	return !node.Same(d.root, d.saved)
}

// Saved returns a copy of the tree as last saved.
func (d *Document) Saved() *node.Node {
	return d.saved.Clone()
}

// Save writes the tree to path, or to the document's path if path is
// empty, and makes path the document's path.
func (d *Document) Save(path string) error {
	if path == "" {
		path = d.path
	}
	if path == "" {
		return ErrNoPath
	}
	if err := codec.SaveTree(path, d.root); err != nil {
		return err
	}
	d.path = path
	d.markSaved()
	d.log.Info("saved", "path", path)
	return nil
}

// lookup resolves a path in the tree.
func (d *Document) lookup(path string) (*node.Node, error) {
	segs, err := node.ParsePath(path)
	if err != nil {
		return nil, err
	}
	return d.root.Lookup(segs)
}

// Get returns the node at path.
func (d *Document) Get(path string) (*node.Node, error) {
	return d.lookup(path)
}

func pathOf(n *node.Node) string {
	if p := n.Path(); p != "" {
		return p
	}
	return "$"
}

// writable fails if n is held under a read-only key.
func (d *Document) writable(n *node.Node) error {
	p := n.Parent
	switch {
	case p == nil:
		return nil
	case p.IsMap() && d.insp.ReadOnlyKey(n.ParentField):
	case p.IsSequence() && d.insp.ReadOnly:
	default:
		return nil
	}
	return fmt.Errorf("%w: %s", inspect.ErrReadOnly, pathOf(n))
}

func wrongKind(n *node.Node, want string) error {
	return fmt.Errorf("%w: %s is %s, not %s", node.ErrKind, pathOf(n), n.Kind, want)
}
