package shell

import (
	"strings"

	"github.com/fatih/color"

	"github.com/signadot/nodedit/libdiff"
)

type ColorAttr int

const (
	KeyColor ColorAttr = iota
	KindColor
	ValueColor
	ReadOnlyColor
	PathColor
	InsertColor
	DeleteColor
	ReplaceColor
)

// Colors maps attributes to formatting functions. A nil *Colors formats
// nothing.
type Colors struct {
	Map map[ColorAttr]func(string, ...any) string
}

func NewColors() *Colors {
	c := &Colors{Map: map[ColorAttr]func(string, ...any) string{
		KeyColor:      color.RGB(128, 168, 196).SprintfFunc(),
		KindColor:     color.RGB(74, 92, 138).SprintfFunc(),
		ValueColor:    color.RGB(128, 216, 236).SprintfFunc(),
		ReadOnlyColor: color.RGB(96, 96, 96).SprintfFunc(),
		PathColor:     color.RGB(196, 96, 16).SprintfFunc(),
		InsertColor:   color.GreenString,
		DeleteColor:   color.RedString,
		ReplaceColor:  color.YellowString,
	}}
	for k, f := range c.Map {
		c.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return c
}

func (c *Colors) Color(a ColorAttr, s string) string {
	if c == nil {
		return s
	}
	f := c.Map[a]
	if f == nil {
		return s
	}
	return f(s)
}

func (c *Colors) Change(ch libdiff.Change) string {
	switch ch.Op {
	case libdiff.Insert:
		return c.Color(InsertColor, ch.String())
	case libdiff.Delete:
		return c.Color(DeleteColor, ch.String())
	}
	return c.Color(ReplaceColor, ch.String())
}
