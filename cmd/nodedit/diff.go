package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/nodedit/libdiff"
	"github.com/signadot/nodedit/patch"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	y1, _, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return err
	}
	y2, _, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	if cfg.Reverse {
		y1, y2 = y2, y1
	}
	if cfg.Merge {
		d, err := patch.MergePatchFor(y1, y2)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cc.Out, "%s\n", d)
		return err
	}
	changes := libdiff.Diff(y1, y2)
	colors := cfg.colors(cc.Out)
	for _, c := range changes {
		if _, err := fmt.Fprintln(cc.Out, colors.Change(c)); err != nil {
			return err
		}
	}
	if len(changes) != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
