package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/nodedit/clipboard"
)

func set(cfg *SetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Set.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 4 {
		return fmt.Errorf("%w: set requires a path, a key, a text and a file", cli.ErrUsage)
	}
	file := args[3]
	if cfg.Write && file == "-" {
		return fmt.Errorf("%w: cannot write back to stdin", cli.ErrUsage)
	}
	doc, err := openDoc(cfg.MainConfig, cc, file, &clipboard.Board{})
	if err != nil {
		return err
	}
	if err := doc.SetText(args[0], args[1], args[2]); err != nil {
		return err
	}
	if cfg.Write {
		return doc.Save("")
	}
	return putObj(cfg.MainConfig, cc.Out, doc.Root(), cfg.inFormat(file))
}
