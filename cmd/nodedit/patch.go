package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/nodedit/patch"
)

func patchCmd(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 arguments, a patch, and a file to which to apply it", cli.ErrUsage)
	}
	p := []byte(args[0])
	if !cfg.String {
		p, err = os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
	}
	target, fmat, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return err
	}
	apply := patch.Apply
	if cfg.Merge {
		apply = patch.Merge
	}
	res, err := apply(target, p)
	if err != nil {
		return fmt.Errorf("error patching %s: %w", args[1], err)
	}
	return putObj(cfg.MainConfig, cc.Out, res, fmat)
}
