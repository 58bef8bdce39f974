package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "I",
			Aliases:     []string{"ifmt"},
			Description: "input format: yaml/y, json/j, ir/i",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.InFormat), "(format)"),
		}, &cli.Opt{
			Name:        "O",
			Aliases:     []string{"ofmt"},
			Description: "output format: yaml/y, json/j, ir/i",
			Type:        cli.NamedFuncOpt(cfg.fmtFunc(&cfg.OutFormat), "(format)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "nodedit").
		WithSynopsis("nodedit [opts] command [opts]").
		WithDescription("nodedit inspects and edits game data trees.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return nodeditMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			PropsCommand(cfg),
			SetCommand(cfg),
			DiffCommand(cfg),
			FindCommand(cfg),
			PatchCommand(cfg),
			NamesCommand(cfg),
			ShellCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.View, "view").
		WithAliases("v").
		WithSynopsis("view [files]").
		WithDescription("view documents, converting between formats with -O").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
}

func PropsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PropsConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Props, "props").
		WithAliases("pr").
		WithSynopsis("props <path> <file>").
		WithDescription("show the properties of a node as the editor inspector does").
		WithRun(func(cc *cli.Context, args []string) error {
			return props(cfg, cc, args)
		})
}

func SetCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SetConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Set, "set").
		WithAliases("s").
		WithOpts(opts...).
		WithSynopsis("set [-w] <path> <key> <text> <file>").
		WithDescription("set a property from text, keeping its kind").
		WithRun(func(cc *cli.Context, args []string) error {
			return set(cfg, cc, args)
		})
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Diff, "diff").
		WithAliases("d", "di").
		WithOpts(opts...).
		WithSynopsis("diff [-merge] a b").
		WithDescription("diff documents, or print a JSON merge patch from a to b").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
}

func FindCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FindConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Find, "find").
		WithAliases("f").
		WithSynopsis("find <expr> [files]").
		WithDescription(findDescription).
		WithRun(func(cc *cli.Context, args []string) error {
			return find(cfg, cc, args)
		})
}

const findDescription = `find objects matching an expression.

The expression is evaluated against every map in the document with the
map's fields as variables, for example

  nodedit find 'ObjId == 1001 && Translate.X > 0' course.yaml

_path, _key and _len hold the map's path, key and size, present(f) tells
whether a field exists, and name(id) and id(name) resolve object names
when the configuration names an objflow file.`

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p", "pa").
		WithOpts(opts...).
		WithSynopsis("patch [-m] [-s] <patch> <file>").
		WithDescription("apply a JSON patch, or a JSON merge patch with -m").
		WithRun(func(cc *cli.Context, args []string) error {
			return patchCmd(cfg, cc, args)
		})
}

func NamesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &NamesConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Names, "names").
		WithAliases("n").
		WithSynopsis("names [ids or names]").
		WithDescription("resolve object ids and names with the configured objflow file").
		WithRun(func(cc *cli.Context, args []string) error {
			return names(cfg, cc, args)
		})
}

func ShellCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ShellConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	return cli.NewCommandAt(&cfg.Shell, "shell").
		WithAliases("sh").
		WithOpts(opts...).
		WithSynopsis("shell [-sysclip] [-gops] <file>").
		WithDescription("edit a document interactively").
		WithRun(func(cc *cli.Context, args []string) error {
			return shellMain(cfg, cc, args)
		})
}
