package main

import (
	"fmt"
	"strconv"

	"github.com/scott-cotton/cli"

	"github.com/signadot/nodedit/editor"
	"github.com/signadot/nodedit/gamemodule"
)

// names resolves each argument, an id or a name, or lists the whole
// objflow table when there are none.
func names(cfg *NamesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Names.Parse(cc, args)
	if err != nil {
		return err
	}
	mod, err := editor.ModuleFor(cfg.Config, cfg.Log)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		tab, ok := mod.(*gamemodule.Table)
		if !ok {
			return fmt.Errorf("%w: no objflow file configured", cli.ErrUsage)
		}
		for _, id := range tab.IDs() {
			fmt.Fprintf(cc.Out, "%d\t%s\n", id, tab.ResolveObjectName(id))
		}
		return nil
	}
	for _, a := range args {
		if id, err := strconv.Atoi(a); err == nil {
			fmt.Fprintf(cc.Out, "%d\t%s\n", id, mod.ResolveObjectName(id))
			continue
		}
		id := mod.ResolveObjectID(a)
		line := fmt.Sprintf("%d\t%s", id, a)
		if p, ok := mod.ResolveModelPath(a); ok {
			line += "\t" + p
		}
		fmt.Fprintln(cc.Out, line)
	}
	return nil
}
