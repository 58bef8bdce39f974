package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/nodedit/clipboard"
	"github.com/signadot/nodedit/editor"
	"github.com/signadot/nodedit/shell"
)

// openDoc opens file as an editor document.
func openDoc(cfg *MainConfig, cc *cli.Context, file string, board *clipboard.Board) (*editor.Document, error) {
	spec, err := cfg.editorSpec(board)
	if err != nil {
		return nil, err
	}
	y, _, err := getObjFile(cfg, cc, file)
	if err != nil {
		return nil, err
	}
	path := file
	if file == "-" {
		path = ""
	}
	return editor.New(spec, y, path), nil
}

func props(cfg *PropsConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Props.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: props requires a path and a file", cli.ErrUsage)
	}
	doc, err := openDoc(cfg.MainConfig, cc, args[1], &clipboard.Board{})
	if err != nil {
		return err
	}
	s := &shell.Session{Doc: doc, Out: cc.Out, Colors: cfg.colors(cc.Out)}
	return s.Exec("props " + args[0])
}
