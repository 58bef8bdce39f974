package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/nodedit/clipboard"
	"github.com/signadot/nodedit/shell"
)

func find(cfg *FindConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Find.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: find requires an expression", cli.ErrUsage)
	}
	files := args[1:]
	if len(files) == 0 {
		files = []string{"-"}
	}
	for _, file := range files {
		doc, err := openDoc(cfg.MainConfig, cc, file, &clipboard.Board{})
		if err != nil {
			return err
		}
		s := &shell.Session{Doc: doc, Out: cc.Out, Colors: cfg.colors(cc.Out)}
		if len(files) > 1 {
			fmt.Fprintf(cc.Out, "# %s\n", file)
		}
		if err := s.Exec("find " + args[0]); err != nil {
			return err
		}
	}
	return nil
}
