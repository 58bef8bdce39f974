package libdiff

import (
	"fmt"
	"strconv"

	"github.com/signadot/nodedit/node"
)

type Op int

const (
	Insert Op = iota
	Delete
	Replace
)

func (o Op) String() string {
	switch o {
	case Insert:
		return "insert"
	case Delete:
		return "delete"
	case Replace:
		return "replace"
	}
	return "Op(" + strconv.Itoa(int(o)) + ")"
}

// Sign is the one character marker of o used in rendered changes.
func (o Op) Sign() string {
	switch o {
	case Insert:
		return "+"
	case Delete:
		return "-"
	}
	return "~"
}

// Change is one difference. From is nil for inserts and To is nil for
// deletes. The path addresses the new tree, except that the last segment
// of a Delete names the removed key or old index.
type Change struct {
	Path string
	Op   Op
	From *node.Node
	To   *node.Node
}

func (c Change) String() string {
	p := c.Path
	if p == "" {
		p = "$"
	}
	switch c.Op {
	case Insert:
		return fmt.Sprintf("+ %s: %s", p, Summary(c.To))
	case Delete:
		return fmt.Sprintf("- %s: %s", p, Summary(c.From))
	}
	return fmt.Sprintf("~ %s: %s -> %s", p, Summary(c.From), Summary(c.To))
}

// Summary is a short one line rendering of n.
func Summary(n *node.Node) string {
	switch {
	case n.IsNull():
		return "null"
	case n.IsMap():
		return fmt.Sprintf("{%d fields}", n.Len())
	case n.IsSequence():
		return fmt.Sprintf("[%d items]", n.Len())
	case n.Kind == node.StringKind:
		return strconv.Quote(n.String)
	}
	return n.ScalarText() + " (" + n.Kind.Short() + ")"
}
