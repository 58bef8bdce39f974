package main

import (
	"fmt"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	for i, file := range args {
		y, fmat, err := getObjFile(cfg.MainConfig, cc, file)
		if err != nil {
			return err
		}
		if err := putObj(cfg.MainConfig, cc.Out, y, fmat); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if i < len(args)-1 {
			if _, err := cc.Out.Write([]byte("---\n")); err != nil {
				return err
			}
		}
	}
	return nil
}
