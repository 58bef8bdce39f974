package shell

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/signadot/nodedit/codec"
	"github.com/signadot/nodedit/debug"
	"github.com/signadot/nodedit/editor"
	"github.com/signadot/nodedit/libdiff"
	"github.com/signadot/nodedit/node"
)

var (
	ErrUsage   = errors.New("usage")
	ErrUnknown = errors.New("unknown command")
)

// Session runs commands against Doc, writing their output to Out.
type Session struct {
	Doc    *editor.Document
	Out    io.Writer
	Colors *Colors
}

type command struct {
	name string
	args string
	desc string
	// nargs is the number of space separated arguments before the
	// remainder of the line, which is passed as the last argument.
	// -1 splits the whole line.
	nargs int
	run   func(s *Session, args []string) error
}

var commands []*command

func init() {
	commands = []*command{
		{name: "ls", args: "[path]", desc: "list children with summaries", nargs: -1, run: (*Session).ls},
		{name: "props", args: "[path]", desc: "show properties", nargs: -1, run: (*Session).props},
		{name: "set", args: "path key text", desc: "set a property from text", nargs: 2, run: (*Session).set},
		{name: "add", args: "path key [yaml]", desc: "add a property to a map", nargs: 2, run: (*Session).add},
		{name: "del", args: "path [key]", desc: "delete a node", nargs: -1, run: (*Session).del},
		{name: "dup", args: "path [index]", desc: "duplicate a sequence element", nargs: -1, run: (*Session).dup},
		{name: "undo", desc: "undo the last edit", nargs: -1, run: (*Session).undo},
		{name: "redo", desc: "redo the last undone edit", nargs: -1, run: (*Session).redo},
		{name: "history", desc: "list undoable edits", nargs: -1, run: (*Session).history},
		{name: "copy", args: "pos|rot|scale|transform|args path | objs path...", desc: "copy to the clipboard", nargs: -1, run: (*Session).copy},
		{name: "paste", args: "path", desc: "paste the clipboard", nargs: -1, run: (*Session).paste},
		{name: "clip", desc: "show the clipboard", nargs: -1, run: (*Session).clip},
		{name: "find", args: "expr", desc: "find objects matching expr", nargs: 0, run: (*Session).find},
		{name: "patch", args: "json", desc: "apply a JSON patch", nargs: 0, run: (*Session).patch},
		{name: "merge", args: "json", desc: "apply a JSON merge patch", nargs: 0, run: (*Session).merge},
		{name: "diff", desc: "show unsaved changes", nargs: -1, run: (*Session).diff},
		{name: "dirty", desc: "tell whether there are unsaved changes", nargs: -1, run: (*Session).dirty},
		{name: "save", args: "[path]", desc: "save the document", nargs: -1, run: (*Session).save},
		{name: "name", args: "id", desc: "resolve an object id", nargs: -1, run: (*Session).name},
		{name: "id", args: "name", desc: "resolve an object name", nargs: -1, run: (*Session).id},
		{name: "help", desc: "show this help", nargs: -1, run: (*Session).help},
	}
}

func lookupCommand(name string) *command {
	i := slices.IndexFunc(commands, func(c *command) bool { return c.name == name })
	if i < 0 {
		return nil
	}
	return commands[i]
}

// Exec runs one command line. Blank lines and lines starting with '#' do
// nothing.
func (s *Session) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || line[0] == '#' {
		return nil
	}
	name, rest, _ := strings.Cut(line, " ")
	cmd := lookupCommand(name)
	if cmd == nil {
		return fmt.Errorf("%w: %q", ErrUnknown, name)
	}
	if debug.Editor() {
		debug.Logf("shell %s %q\n", name, rest)
	}
	return cmd.run(s, split(rest, cmd.nargs))
}

func split(s string, n int) []string {
	if n < 0 {
		return strings.Fields(s)
	}
	var res []string
	for range n {
		s = strings.TrimLeft(s, " \t")
		f, rest, _ := strings.Cut(s, " ")
		if f == "" {
			return res
		}
		res = append(res, f)
		s = rest
	}
	if s = strings.TrimSpace(s); s != "" {
		res = append(res, s)
	}
	return res
}

func usage(name string) error {
	c := lookupCommand(name)
	return fmt.Errorf("%w: %s %s", ErrUsage, c.name, c.args)
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.Out, format, args...)
}

func optPath(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// join addresses key under path: an index if key is a number, else a map
// key.
func join(path, key string) (string, error) {
	segs, err := node.ParsePath(path)
	if err != nil {
		return "", err
	}
	if i, err := strconv.Atoi(key); err == nil {
		segs = append(segs, node.Segment{Index: i, IsIndex: true})
	} else {
		segs = append(segs, node.Segment{Key: key})
	}
	return node.FormatPath(segs), nil
}

func (s *Session) ls(args []string) error {
	if len(args) > 1 {
		return usage("ls")
	}
	n, err := s.Doc.Get(optPath(args))
	if err != nil {
		return err
	}
	if !n.Kind.IsContainer() {
		s.printf("%s\n", s.Colors.Color(ValueColor, libdiff.Summary(n)))
		return nil
	}
	for k, v := range n.Entries() {
		if n.IsSequence() {
			k = "[" + k + "]"
		}
		s.printf("%s %s\n", s.Colors.Color(KeyColor, k), libdiff.Summary(v))
	}
	return nil
}

func (s *Session) props(args []string) error {
	if len(args) > 1 {
		return usage("props")
	}
	hs, err := s.Doc.Props(optPath(args))
	if err != nil {
		return err
	}
	for _, h := range hs {
		ro := ""
		if h.ReadOnly() {
			ro = " " + s.Colors.Color(ReadOnlyColor, "(read only)")
		}
		s.printf("%s %s %s%s\n",
			s.Colors.Color(KeyColor, h.Label()),
			s.Colors.Color(ValueColor, h.Text()),
			s.Colors.Color(KindColor, "<"+h.Converter().Name()+">"),
			ro)
	}
	return nil
}

func (s *Session) set(args []string) error {
	switch len(args) {
	case 2:
		args = append(args, "")
	case 3:
	default:
		return usage("set")
	}
	return s.Doc.SetText(args[0], args[1], args[2])
}

func (s *Session) add(args []string) error {
	if len(args) < 2 {
		return usage("add")
	}
	v := node.Null()
	if len(args) == 3 {
		n, err := codec.YAML{}.Decode([]byte(args[2]))
		if err != nil {
			return err
		}
		v = n
	}
	return s.Doc.AddProp(args[0], args[1], v)
}

// target reads "path [key]" arguments.
func target(name string, args []string) (string, error) {
	switch len(args) {
	case 1:
		return args[0], nil
	case 2:
		return join(args[0], args[1])
	}
	return "", usage(name)
}

func (s *Session) del(args []string) error {
	p, err := target("del", args)
	if err != nil {
		return err
	}
	return s.Doc.Delete(p)
}

func (s *Session) dup(args []string) error {
	p, err := target("dup", args)
	if err != nil {
		return err
	}
	n, err := s.Doc.Duplicate(p)
	if err != nil {
		return err
	}
	s.printf("%s\n", s.Colors.Color(PathColor, n.Path()))
	return nil
}

func (s *Session) undo(args []string) error {
	if len(args) != 0 {
		return usage("undo")
	}
	name, err := s.Doc.Undo()
	if err != nil {
		return err
	}
	s.printf("undid %s\n", name)
	return nil
}

func (s *Session) redo(args []string) error {
	if len(args) != 0 {
		return usage("redo")
	}
	name, err := s.Doc.Redo()
	if err != nil {
		return err
	}
	s.printf("redid %s\n", name)
	return nil
}

func (s *Session) history(args []string) error {
	for _, name := range s.Doc.History() {
		s.printf("%s\n", name)
	}
	return nil
}

func (s *Session) copy(args []string) error {
	if len(args) < 2 {
		return usage("copy")
	}
	what, paths := args[0], args[1:]
	if what == "objs" {
		return s.copied(s.Doc.CopyObjects(paths...))
	}
	if len(paths) != 1 {
		return usage("copy")
	}
	var f func(string) error
	switch what {
	case "pos":
		f = s.Doc.CopyPosition
	case "rot":
		f = s.Doc.CopyRotation
	case "scale":
		f = s.Doc.CopyScale
	case "transform":
		f = s.Doc.CopyTransform
	case "args":
		f = s.Doc.CopyArgs
	default:
		return usage("copy")
	}
	return s.copied(f(paths[0]))
}

func (s *Session) copied(err error) error {
	if err != nil {
		return err
	}
	return s.clip(nil)
}

func (s *Session) paste(args []string) error {
	if len(args) != 1 {
		return usage("paste")
	}
	return s.Doc.Paste(args[0])
}

func (s *Session) clip(_ []string) error {
	s.printf("%s\n", s.Doc.Board().Render())
	return nil
}

func (s *Session) find(args []string) error {
	if len(args) != 1 {
		return usage("find")
	}
	ms, err := s.Doc.Find(args[0])
	if err != nil {
		return err
	}
	for _, m := range ms {
		label, _ := s.Doc.Label(m.Path)
		s.printf("%s %s\n", s.Colors.Color(PathColor, m.Path), label)
	}
	return nil
}

func (s *Session) patch(args []string) error {
	if len(args) != 1 {
		return usage("patch")
	}
	return s.Doc.ApplyPatch([]byte(args[0]), false)
}

func (s *Session) merge(args []string) error {
	if len(args) != 1 {
		return usage("merge")
	}
	return s.Doc.ApplyPatch([]byte(args[0]), true)
}

func (s *Session) diff(_ []string) error {
	for _, c := range s.Doc.Changes() {
		s.printf("%s\n", s.Colors.Change(c))
	}
	return nil
}

func (s *Session) dirty(_ []string) error {
	if s.Doc.Dirty() {
		s.printf("dirty\n")
	} else {
		s.printf("clean\n")
	}
	return nil
}

func (s *Session) save(args []string) error {
	if len(args) > 1 {
		return usage("save")
	}
	if err := s.Doc.Save(optPath(args)); err != nil {
		return err
	}
	s.printf("saved %s\n", s.Doc.Path())
	return nil
}

func (s *Session) name(args []string) error {
	if len(args) != 1 {
		return usage("name")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%w: %q is not an id", ErrUsage, args[0])
	}
	s.printf("%s\n", s.Doc.Module().ResolveObjectName(id))
	return nil
}

func (s *Session) id(args []string) error {
	if len(args) != 1 {
		return usage("id")
	}
	s.printf("%d\n", s.Doc.Module().ResolveObjectID(args[0]))
	return nil
}

func (s *Session) help(_ []string) error {
	for _, c := range commands {
		s.printf("%-40s %s\n", strings.TrimSpace(c.name+" "+c.args), c.desc)
	}
	return nil
}
