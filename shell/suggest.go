package shell

import (
	"strconv"
	"strings"

	"github.com/c-bata/go-prompt"

	"github.com/signadot/nodedit/node"
)

var copyKinds = []prompt.Suggest{
	{Text: "pos", Description: "Translate vector"},
	{Text: "rot", Description: "Rotate vector"},
	{Text: "scale", Description: "Scale vector"},
	{Text: "transform", Description: "all three vectors"},
	{Text: "args", Description: "Args integers"},
	{Text: "objs", Description: "whole nodes"},
}

// Complete suggests completions for the prompt document d.
func (s *Session) Complete(d prompt.Document) []prompt.Suggest {
	return s.Suggest(d.TextBeforeCursor())
}

// Suggest suggests completions of the last word of text: command names
// for the first word, then paths into the document.
func (s *Session) Suggest(text string) []prompt.Suggest {
	words := strings.Fields(text)
	if strings.HasSuffix(text, " ") || len(words) == 0 {
		words = append(words, "")
	}
	last := words[len(words)-1]
	if len(words) == 1 {
		res := make([]prompt.Suggest, len(commands))
		for i, c := range commands {
			res[i] = prompt.Suggest{Text: c.name, Description: c.desc}
		}
		return prompt.FilterHasPrefix(res, last, true)
	}
	if words[0] == "copy" && len(words) == 2 {
		return prompt.FilterHasPrefix(copyKinds, last, true)
	}
	return prompt.FilterHasPrefix(s.children(last), last, false)
}

// children suggests the paths of the children of the container path
// being typed.
func (s *Session) children(partial string) []prompt.Suggest {
	parent := ""
	if i := strings.LastIndexAny(partial, ".["); i >= 0 {
		parent = partial[:i]
	}
	n, err := s.Doc.Get(parent)
	if err != nil {
		return nil
	}
	var res []prompt.Suggest
	for k, v := range n.Entries() {
		var p string
		if n.IsSequence() {
			i, _ := strconv.Atoi(k)
			p = node.FormatPath(append(parentSegs(parent), node.Segment{Index: i, IsIndex: true}))
		} else {
			p = node.FormatPath(append(parentSegs(parent), node.Segment{Key: k}))
		}
		res = append(res, prompt.Suggest{Text: p, Description: v.Kind.String()})
	}
	return res
}

func parentSegs(p string) []node.Segment {
	segs, _ := node.ParsePath(p)
	return segs
}
