package editor

import (
	"errors"
	"math"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"

	"github.com/signadot/nodedit/clipboard"
	"github.com/signadot/nodedit/config"
	"github.com/signadot/nodedit/gamemodule"
	"github.com/signadot/nodedit/inspect"
	"github.com/signadot/nodedit/node"
	"github.com/signadot/nodedit/undo"
)

func kv(k string, v *node.Node) node.KeyVal {
	return node.KeyVal{Key: k, Val: v}
}

func vec(x, y, z float32) *node.Node {
	return node.FromKeyVals([]node.KeyVal{
		kv("X", node.FromFloat32(x)),
		kv("Y", node.FromFloat32(y)),
		kv("Z", node.FromFloat32(z)),
	})
}

func obj(id, inst int32, name string, x float32) *node.Node {
	return node.FromKeyVals([]node.KeyVal{
		kv("ObjId", node.FromInt32(id)),
		kv("UnitIdNum", node.FromInt32(inst)),
		kv("UnitConfigName", node.FromString(name)),
		kv("Translate", vec(x, 0, 0)),
		kv("Rotate", vec(0, 90, 0)),
		kv("Scale", vec(1, 1, 1)),
		kv("Args", node.FromSlice([]*node.Node{node.FromInt32(1), node.FromInt32(-1)})),
	})
}

func course() *node.Node {
	return node.FromKeyVals([]node.KeyVal{
		kv("Objs", node.FromSlice([]*node.Node{
			obj(1001, 7, "Coin", 10),
			obj(1002, 3, "ItemBox", 20),
		})),
		kv("Path", node.FromSlice(nil)),
	})
}

func newDoc() *Document {
	return New(Spec{Board: &clipboard.Board{}}, course(), "")
}

func get(t *testing.T, d *Document, path string) *node.Node {
	t.Helper()
	n, err := d.Get(path)
	if err != nil {
		t.Fatal(err)
	}
	return n
}

func TestSetUndoRedo(t *testing.T) {
	d := newDoc()
	if d.Dirty() {
		t.Fatal("new document is dirty")
	}
	if err := d.SetText("Objs[0].Translate", "X", "5.5"); err != nil {
		t.Fatal(err)
	}
	x := get(t, d, "Objs[0].Translate.X")
	if x.Kind != node.Float32Kind || x.Float != 5.5 {
		t.Errorf("got %s %v", x.Kind, x.Float)
	}
	if !d.Dirty() {
		t.Error("not dirty after set")
	}
	if diff := cmp.Diff([]string{"set Objs[0].Translate.X"}, d.History()); diff != "" {
		t.Error(diff)
	}
	name, err := d.Undo()
	if err != nil {
		t.Fatal(err)
	}
	if name != "set Objs[0].Translate.X" {
		t.Errorf("undo %q", name)
	}
	if !node.Equal(d.Root(), course()) || d.Dirty() {
		t.Error("undo did not restore the tree")
	}
	if _, err := d.Redo(); err != nil {
		t.Fatal(err)
	}
	if x := get(t, d, "Objs[0].Translate.X"); x.Float != 5.5 {
		t.Errorf("redo gave %v", x.Float)
	}
	if !d.Dirty() {
		t.Error("not dirty after redo")
	}
	if _, err := d.Redo(); !errors.Is(err, undo.ErrEmpty) {
		t.Errorf("redo past end: %v", err)
	}
	if _, err := d.Undo(); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Undo(); !errors.Is(err, undo.ErrEmpty) {
		t.Errorf("undo past start: %v", err)
	}
}

func TestSetItem(t *testing.T) {
	d := newDoc()
	for _, key := range []string{"1", "Item 1"} {
		if err := d.SetText("Objs[0].Args", key, "9"); err != nil {
			t.Fatal(err)
		}
	}
	if a := get(t, d, "Objs[0].Args[1]"); a.Kind != node.Int32Kind || a.Int != 9 {
		t.Errorf("got %s %d", a.Kind, a.Int)
	}
	if err := d.SetText("Objs[0].Args", "5", "1"); !errors.Is(err, node.ErrPath) {
		t.Errorf("missing item: %v", err)
	}
	if err := d.SetText("Objs[0]", "ObjId", "x"); !errors.Is(err, inspect.ErrParse) {
		t.Errorf("bad text: %v", err)
	}
	if len(d.History()) != 2 {
		t.Errorf("history %v", d.History())
	}
}

func TestEditClearsRedo(t *testing.T) {
	d := newDoc()
	d.SetText("Objs[0]", "UnitConfigName", "A")
	d.Undo()
	if len(d.RedoHistory()) != 1 {
		t.Fatalf("redo %v", d.RedoHistory())
	}
	d.SetText("Objs[0]", "UnitConfigName", "B")
	if len(d.RedoHistory()) != 0 {
		t.Errorf("redo %v after edit", d.RedoHistory())
	}
}

func TestReadOnlyKeys(t *testing.T) {
	cfg := config.Default()
	cfg.ReadOnlyKeys = []string{"ObjId"}
	d := New(Spec{Config: cfg, Board: &clipboard.Board{}}, course(), "")
	if err := d.SetText("Objs[0]", "ObjId", "1"); !errors.Is(err, inspect.ErrReadOnly) {
		t.Errorf("SetText: %v", err)
	}
	if err := d.SetNode("Objs[0].ObjId", node.FromInt32(1)); !errors.Is(err, inspect.ErrReadOnly) {
		t.Errorf("SetNode: %v", err)
	}
	if d.Dirty() {
		t.Error("read only write changed the tree")
	}
}

func TestStructuralUndo(t *testing.T) {
	tests := []struct {
		name string
		edit func(d *Document) error
		len  int
	}{
		{"delete", func(d *Document) error { return d.Delete("Objs[0]") }, 1},
		{"append", func(d *Document) error { return d.Append("Objs", obj(1, 1, "X", 0)) }, 3},
		{"duplicate", func(d *Document) error { _, err := d.Duplicate("Objs[0]"); return err }, 3},
		{"set", func(d *Document) error { return d.SetNode("Objs", node.FromSlice(nil)) }, 0},
		{"delete key", func(d *Document) error { return d.Delete("Path") }, 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := newDoc()
			if err := tc.edit(d); err != nil {
				t.Fatal(err)
			}
			if n := get(t, d, "Objs").Len(); n != tc.len {
				t.Errorf("len %d, want %d", n, tc.len)
			}
			after := d.Root().Clone()
			if _, err := d.Undo(); err != nil {
				t.Fatal(err)
			}
			if d.Dirty() {
				t.Errorf("undo left changes %v", d.Changes())
			}
			if _, err := d.Redo(); err != nil {
				t.Fatal(err)
			}
			if !node.Equal(d.Root(), after) {
				t.Error("redo did not restore the edit")
			}
		})
	}
}

func TestDeleteErrors(t *testing.T) {
	d := newDoc()
	if err := d.Delete(""); !errors.Is(err, node.ErrPath) {
		t.Errorf("delete root: %v", err)
	}
	if err := d.Delete("Objs[5]"); !errors.Is(err, node.ErrPath) {
		t.Errorf("delete missing: %v", err)
	}
	if err := d.Append("Objs[0]", node.Null()); !errors.Is(err, node.ErrKind) {
		t.Errorf("append to map: %v", err)
	}
	if len(d.History()) != 0 {
		t.Errorf("history %v", d.History())
	}
}

func TestDuplicate(t *testing.T) {
	d := newDoc()
	dup, err := d.Duplicate("Objs[0]")
	if err != nil {
		t.Fatal(err)
	}
	if dup.Path() != "Objs[1]" {
		t.Errorf("duplicate at %s", dup.Path())
	}
	if inst := dup.Get("UnitIdNum"); inst.Kind != node.Int32Kind || inst.Int != 8 {
		t.Errorf("instance id %s %d", inst.Kind, inst.Int)
	}
	if get(t, d, "Objs[0].UnitIdNum").Int != 7 {
		t.Error("source changed")
	}
	if get(t, d, "Objs[2].UnitConfigName").String != "ItemBox" {
		t.Error("later element not shifted")
	}

	cfg := config.Default()
	cfg.InstanceKey = "UnitConfigName"
	d = New(Spec{Config: cfg, Board: &clipboard.Board{}}, course(), "")
	dup, err = d.Duplicate("Objs[1]")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := uuid.Parse(dup.Get("UnitConfigName").String); err != nil {
		t.Errorf("string instance id: %v", err)
	}
	if _, err := d.Duplicate("Objs"); !errors.Is(err, node.ErrPath) {
		t.Errorf("duplicate non element: %v", err)
	}
}

func TestPasteVector(t *testing.T) {
	d := newDoc()
	if err := d.CopyPosition("Objs[0]"); err != nil {
		t.Fatal(err)
	}
	if got := d.Board().Render(); got != "Position - {10,0,0}" {
		t.Errorf("clipboard %q", got)
	}
	if err := d.Paste("Objs[1]"); err != nil {
		t.Fatal(err)
	}
	if !node.Equal(get(t, d, "Objs[1].Translate"), vec(10, 0, 0)) {
		t.Error("position not pasted")
	}
	if err := d.CopyRotation("Objs[0]"); err != nil {
		t.Fatal(err)
	}
	if err := d.Paste("Objs[1].Scale"); err != nil {
		t.Fatal(err)
	}
	if !node.Equal(get(t, d, "Objs[1].Scale"), vec(0, 90, 0)) {
		t.Error("rotation not pasted onto vector")
	}
	if len(d.History()) != 2 {
		t.Errorf("history %v", d.History())
	}
	d.Undo()
	d.Undo()
	if d.Dirty() {
		t.Errorf("undo left changes %v", d.Changes())
	}
}

func TestPasteMismatch(t *testing.T) {
	tests := []struct {
		name    string
		payload clipboard.Payload
		target  string
	}{
		{"not set", clipboard.NotSet{}, "Objs[0]"},
		{"position to sequence", clipboard.Position{}, "Objs"},
		{"scale to scalar", clipboard.Scale{}, "Objs[0].ObjId"},
		{"transform to sequence", clipboard.Transform{}, "Objs"},
		{"transform without vectors", clipboard.Transform{}, "Objs[0].Translate"},
		{"args to sequence", clipboard.NewIntArray([]int32{1}), "Path"},
		{"objects to map", clipboard.NewObjects(obj(1, 1, "A", 0)), "Objs[0]"},
		{"vector out of range", clipboard.Position{Vec3: clipboard.Vec3{X: 1e300}}, "Objs[0]"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d := newDoc()
			d.Board().Copy(tc.payload)
			err := d.Paste(tc.target)
			if !errors.Is(err, clipboard.ErrPayloadKindMismatch) {
				t.Errorf("got %v", err)
			}
			if d.Dirty() || len(d.History()) != 0 {
				t.Errorf("tree changed: %v", d.Changes())
			}
		})
	}
}

func TestPasteTransform(t *testing.T) {
	d := newDoc()
	if err := d.CopyTransform("Objs[1]"); err != nil {
		t.Fatal(err)
	}
	if err := d.Paste("Objs[0]"); err != nil {
		t.Fatal(err)
	}
	for _, k := range []string{"Translate", "Rotate", "Scale"} {
		if !node.Equal(get(t, d, "Objs[0]."+k), get(t, d, "Objs[1]."+k)) {
			t.Errorf("%s not pasted", k)
		}
	}
	if get(t, d, "Objs[0].ObjId").Int != 1001 {
		t.Error("object id changed")
	}
	if len(d.History()) != 1 {
		t.Errorf("history %v", d.History())
	}
	d.Undo()
	if d.Dirty() {
		t.Errorf("undo left changes %v", d.Changes())
	}
}

func TestPasteArgs(t *testing.T) {
	d := newDoc()
	d.SetNode("Objs[1].Args", node.FromSlice([]*node.Node{node.FromInt64(4), node.FromUint32(5)}))
	if err := d.CopyArgs("Objs[1]"); err != nil {
		t.Fatal(err)
	}
	if err := d.Paste("Objs[0]"); err != nil {
		t.Fatal(err)
	}
	want := node.FromSlice([]*node.Node{node.FromInt32(4), node.FromInt32(5)})
	if !node.Equal(get(t, d, "Objs[0].Args"), want) {
		t.Error("args not pasted")
	}
	d.Delete("Objs[1].Args")
	if err := d.Paste("Objs[1]"); err != nil {
		t.Fatal(err)
	}
	if !node.Equal(get(t, d, "Objs[1].Args"), want) {
		t.Error("args not added")
	}
	d.SetNode("Objs[1].Args", node.FromSlice([]*node.Node{node.FromInt64(1 << 40)}))
	if err := d.CopyArgs("Objs[1]"); !errors.Is(err, clipboard.ErrPayloadKindMismatch) {
		t.Errorf("wide arg: %v", err)
	}
	if err := d.CopyArgs("Objs"); !errors.Is(err, node.ErrKind) {
		t.Errorf("args of sequence: %v", err)
	}
}

func TestPasteObjects(t *testing.T) {
	d := newDoc()
	if err := d.CopyObjects("Objs[0]", "Objs[1]"); err != nil {
		t.Fatal(err)
	}
	if got := d.Board().Render(); got != "Object[2]" {
		t.Errorf("clipboard %q", got)
	}
	d.SetText("Objs[0]", "UnitConfigName", "Changed")
	if err := d.Paste("Path"); err != nil {
		t.Fatal(err)
	}
	if err := d.Paste("Path"); err != nil {
		t.Fatal(err)
	}
	p := get(t, d, "Path")
	if p.Len() != 4 {
		t.Fatalf("len %d", p.Len())
	}
	if !node.Equal(p.Index(0), course().Get("Objs").Index(0)) {
		t.Error("pasted object is not the copied one")
	}
	if p.Index(0) == p.Index(2) {
		t.Error("pastes share nodes")
	}
	d.Undo()
	if get(t, d, "Path").Len() != 2 {
		t.Error("paste is not one undo action")
	}
}

func TestMirror(t *testing.T) {
	var got string
	d := New(Spec{Board: &clipboard.Board{Mirror: func(s string) error {
		got = s
		return errors.New("no clipboard")
	}}}, course(), "")
	if err := d.CopyScale("Objs[0]"); err == nil {
		t.Error("mirror error dropped")
	}
	if got != "Scale - {1,1,1}" {
		t.Errorf("mirrored %q", got)
	}
	if d.Board().Current().Kind() != clipboard.ScaleKind {
		t.Error("payload not copied")
	}
}

func TestApplyPatch(t *testing.T) {
	d := newDoc()
	p := `[{"op": "replace", "path": "/Objs/0/Translate/X", "value": 3}, {"op": "remove", "path": "/Path"}]`
	if err := d.ApplyPatch([]byte(p), false); err != nil {
		t.Fatal(err)
	}
	if x := get(t, d, "Objs[0].Translate.X"); x.Kind != node.Float32Kind || x.Float != 3 {
		t.Errorf("got %s %v", x.Kind, x.Float)
	}
	if d.Root().Has("Path") {
		t.Error("Path not removed")
	}
	if diff := cmp.Diff([]string{"patch"}, d.History()); diff != "" {
		t.Error(diff)
	}
	d.Undo()
	if d.Dirty() {
		t.Errorf("undo left changes %v", d.Changes())
	}
	if err := d.ApplyPatch([]byte(`{"Path": null}`), true); err != nil {
		t.Fatal(err)
	}
	if d.Root().Has("Path") {
		t.Error("merge patch did not remove Path")
	}
	if err := d.ApplyPatch([]byte(`[{"op": "remove", "path": "/nope"}]`), false); err == nil {
		t.Error("bad patch applied")
	}
}

func TestSave(t *testing.T) {
	d := newDoc()
	if err := d.Save(""); !errors.Is(err, ErrNoPath) {
		t.Errorf("save without path: %v", err)
	}
	path := filepath.Join(t.TempDir(), "course.yaml")
	d.SetText("Objs[0]", "UnitConfigName", "Saved")
	if err := d.Save(path); err != nil {
		t.Fatal(err)
	}
	if d.Dirty() || d.Path() != path {
		t.Errorf("dirty %v path %q", d.Dirty(), d.Path())
	}
	re, err := Open(Spec{}, path)
	if err != nil {
		t.Fatal(err)
	}
	if !node.Equal(re.Root(), d.Root()) {
		t.Error("reopened tree differs")
	}
	d.Undo()
	if !d.Dirty() {
		t.Error("undo past save is not dirty")
	}
	if len(d.Changes()) != 1 {
		t.Errorf("changes %v", d.Changes())
	}
}

func TestFindLabel(t *testing.T) {
	tab, err := gamemodule.LoadTable(gamemodule.Spec{}, node.FromSlice([]*node.Node{
		node.FromKeyVals([]node.KeyVal{
			kv("ObjId", node.FromInt32(1002)),
			kv("ResName", node.FromSlice([]*node.Node{node.FromString("ItemBox")})),
		}),
	}))
	if err != nil {
		t.Fatal(err)
	}
	tree := course()
	tree.Get("Objs").Index(1).Delete("UnitConfigName")
	d := New(Spec{Module: tab, Board: &clipboard.Board{}}, tree, "")

	for path, want := range map[string]string{
		"Objs[0]": "Coin",
		"Objs[1]": "ItemBox",
		"":        gamemodule.UndefinedName,
	} {
		got, err := d.Label(path)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("%q: got %q want %q", path, got, want)
		}
	}
	if _, err := d.Label("Objs"); !errors.Is(err, node.ErrKind) {
		t.Errorf("label of sequence: %v", err)
	}

	ms, err := d.Find(`name(ObjId) == "ItemBox" || ObjId == id("coin")`)
	if err != nil {
		t.Fatal(err)
	}
	var paths []string
	for _, m := range ms {
		paths = append(paths, m.Path)
	}
	if diff := cmp.Diff([]string{"Objs[1]"}, paths); diff != "" {
		t.Error(diff)
	}
	if _, err := d.Find(`ObjId +`); err == nil {
		t.Error("bad query compiled")
	}
}

func TestDetachedHandle(t *testing.T) {
	d := newDoc()
	h, err := d.Prop("Objs[0]", "UnitIdNum")
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Delete("Objs[0].Args"); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Undo(); err != nil {
		t.Fatal(err)
	}
	if err := h.SetText("99"); !errors.Is(err, inspect.ErrDetached) {
		t.Errorf("write through detached handle: %v", err)
	}
	if got := get(t, d, "Objs[0].UnitIdNum").Int; got != 7 {
		t.Errorf("got %d", got)
	}
	if len(d.History()) != 0 || len(d.RedoHistory()) != 1 {
		t.Errorf("history %v redo %v", d.History(), d.RedoHistory())
	}

	h, err = d.Prop("Objs[0]", "UnitIdNum")
	if err != nil {
		t.Fatal(err)
	}
	if err := h.SetText("99"); err != nil {
		t.Fatal(err)
	}
	name, err := d.Undo()
	if err != nil {
		t.Fatal(err)
	}
	if name != "set Objs[0].UnitIdNum" {
		t.Errorf("undid %q", name)
	}
	if d.Dirty() {
		t.Errorf("undo left changes %v", d.Changes())
	}
}

func TestDirtyNaN(t *testing.T) {
	tree := node.FromKeyVals([]node.KeyVal{
		kv("F", node.FromFloat64(math.NaN())),
		kv("V", vec(float32(math.NaN()), 0, 0)),
	})
	d := New(Spec{Board: &clipboard.Board{}}, tree, "")
	if d.Dirty() {
		t.Error("new document is dirty")
	}
	if cs := d.Changes(); len(cs) != 0 {
		t.Errorf("changes %v", cs)
	}
	if err := d.SetText("", "F", "1"); err != nil {
		t.Fatal(err)
	}
	if !d.Dirty() || len(d.Changes()) != 1 {
		t.Errorf("dirty %v changes %v", d.Dirty(), d.Changes())
	}
	if _, err := d.Undo(); err != nil {
		t.Fatal(err)
	}
	if d.Dirty() {
		t.Errorf("undo left changes %v", d.Changes())
	}
}

func TestReadOnlyEdits(t *testing.T) {
	tests := []struct {
		name string
		edit func(d *Document) error
	}{
		{"delete", func(d *Document) error { return d.Delete("Objs[0].UnitConfigName") }},
		{"delete vector", func(d *Document) error { return d.Delete("Objs[0].Translate") }},
		{"paste position to object", func(d *Document) error {
			if err := d.CopyPosition("Objs[1]"); err != nil {
				return err
			}
			return d.Paste("Objs[0]")
		}},
		{"paste position to vector", func(d *Document) error {
			if err := d.CopyPosition("Objs[1]"); err != nil {
				return err
			}
			return d.Paste("Objs[0].Translate")
		}},
		{"paste transform", func(d *Document) error {
			if err := d.CopyTransform("Objs[1]"); err != nil {
				return err
			}
			return d.Paste("Objs[0]")
		}},
		{"paste args", func(d *Document) error {
			if err := d.CopyArgs("Objs[1]"); err != nil {
				return err
			}
			return d.Paste("Objs[0]")
		}},
		{"add", func(d *Document) error { return d.AddProp("", "Translate", vec(1, 2, 3)) }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.ReadOnlyKeys = []string{"UnitConfigName", "Translate", "Args"}
			d := New(Spec{Config: cfg, Board: &clipboard.Board{}}, course(), "")
			if err := tc.edit(d); !errors.Is(err, inspect.ErrReadOnly) {
				t.Errorf("got %v", err)
			}
			if d.Dirty() {
				t.Errorf("read only edit changed the tree: %v", d.Changes())
			}
			if len(d.History()) != 0 {
				t.Errorf("history %v", d.History())
			}
		})
	}

	cfg := config.Default()
	cfg.ReadOnlyKeys = []string{"Translate"}
	d := New(Spec{Config: cfg, Board: &clipboard.Board{}}, course(), "")
	if err := d.CopyRotation("Objs[1]"); err != nil {
		t.Fatal(err)
	}
	if err := d.Paste("Objs[0]"); err != nil {
		t.Errorf("paste rotation next to a read only vector: %v", err)
	}
}

func TestAddProp(t *testing.T) {
	d := newDoc()
	if err := d.AddProp("Objs[0]", "NewProp", node.FromInt32(1)); err != nil {
		t.Fatal(err)
	}
	if n := get(t, d, "Objs[0].NewProp"); n.Kind != node.Int32Kind || n.Int != 1 {
		t.Errorf("got %s %s", n.Kind, n.ScalarText())
	}
	keys := get(t, d, "Objs[0]").Keys()
	if keys[len(keys)-1] != "NewProp" {
		t.Errorf("keys %v", keys)
	}

	tests := []struct {
		name      string
		path, key string
		want      error
	}{
		{"exists", "Objs[0]", "NewProp", ErrExists},
		{"exists before", "Objs[0]", "ObjId", ErrExists},
		{"sequence", "Objs", "x", node.ErrKind},
		{"empty key", "Objs[0]", "", node.ErrPath},
		{"missing", "Objs[9]", "x", node.ErrPath},
	}
	for _, tc := range tests {
		if err := d.AddProp(tc.path, tc.key, node.FromInt32(2)); !errors.Is(err, tc.want) {
			t.Errorf("%s: got %v want %v", tc.name, err, tc.want)
		}
	}
	if got := get(t, d, "Objs[0].NewProp").Int; got != 1 {
		t.Errorf("existing key replaced with %d", got)
	}
	if diff := cmp.Diff([]string{"add Objs[0].NewProp"}, d.History()); diff != "" {
		t.Error(diff)
	}

	if _, err := d.Undo(); err != nil {
		t.Fatal(err)
	}
	if get(t, d, "Objs[0]").Has("NewProp") {
		t.Error("undo kept NewProp")
	}
	if d.Dirty() {
		t.Errorf("undo left changes %v", d.Changes())
	}
	if _, err := d.Redo(); err != nil {
		t.Fatal(err)
	}
	if !get(t, d, "Objs[0]").Has("NewProp") {
		t.Error("redo lost NewProp")
	}

	if err := d.AddProp("", "Empty", nil); err != nil {
		t.Fatal(err)
	}
	if !get(t, d, "Empty").IsNull() {
		t.Error("nil value not stored as null")
	}
}

func TestModuleConverters(t *testing.T) {
	tab, err := gamemodule.LoadTable(gamemodule.Spec{}, node.FromSlice([]*node.Node{
		node.FromKeyVals([]node.KeyVal{
			kv("ObjId", node.FromInt32(1001)),
			kv("ResName", node.FromSlice([]*node.Node{node.FromString("Coin")})),
		}),
		node.FromKeyVals([]node.KeyVal{
			kv("ObjId", node.FromInt32(1002)),
			kv("ResName", node.FromSlice([]*node.Node{node.FromString("ItemBox")})),
		}),
	}))
	if err != nil {
		t.Fatal(err)
	}
	tree := course()
	tree.Get("Objs").Index(0).Get("ObjId").Tag = gamemodule.ObjIDTag
	d := New(Spec{Module: tab, Board: &clipboard.Board{}}, tree, "")

	h, err := d.Prop("Objs[0]", "ObjId")
	if err != nil {
		t.Fatal(err)
	}
	if got := h.Text(); got != "Coin" {
		t.Errorf("text %q", got)
	}
	if err := h.SetText("ItemBox"); err != nil {
		t.Fatal(err)
	}
	n := get(t, d, "Objs[0].ObjId")
	if n.Int != 1002 || n.Tag != gamemodule.ObjIDTag {
		t.Errorf("got %d !%s", n.Int, n.Tag)
	}
	if _, ok := inspect.DefaultRegistry.Lookup(gamemodule.ObjIDTag); ok {
		t.Error("module converter leaked into the default registry")
	}
}
