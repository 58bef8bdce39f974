package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	"github.com/signadot/nodedit/clipboard"
	"github.com/signadot/nodedit/codec"
	"github.com/signadot/nodedit/config"
	"github.com/signadot/nodedit/editor"
	"github.com/signadot/nodedit/format"
	"github.com/signadot/nodedit/shell"
)

type MainConfig struct {
	ConfigFile string `cli:"name=config desc='configuration file (yaml or toml)'"`
	Color      bool   `cli:"name=color desc='output with color'"`
	Verbose    bool   `cli:"name=v desc='log debug messages'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	// loaded by nodeditMain
	Config *config.Config
	Log    *slog.Logger

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

// inFormat is the format of the input at path: -I, else the suffix of
// path, else the configured format.
func (cfg *MainConfig) inFormat(path string) format.Format {
	if cfg.InFormat != nil {
		return *cfg.InFormat
	}
	if f, err := format.FromPath(path); err == nil {
		return f
	}
	return cfg.Config.Format
}

// outCodec encodes output: -O, else the format of the input.
func (cfg *MainConfig) outCodec(in format.Format) (codec.Codec, error) {
	if cfg.OutFormat != nil {
		in = *cfg.OutFormat
	}
	return codec.For(in)
}

func (cfg *MainConfig) colors(w io.Writer) *shell.Colors {
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		if !cfg.Color {
			return nil
		}
		color.NoColor = false
		return shell.NewColors()
	}
	switch cfg.Config.Color {
	case "always":
		color.NoColor = false
		return shell.NewColors()
	case "never":
		return nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return nil
	}
	if isatty.IsTerminal(f.Fd()) {
		return shell.NewColors()
	}
	return nil
}

// editorSpec builds the editor collaborators from the configuration.
func (cfg *MainConfig) editorSpec(board *clipboard.Board) (editor.Spec, error) {
	mod, err := editor.ModuleFor(cfg.Config, cfg.Log)
	if err != nil {
		return editor.Spec{}, err
	}
	return editor.Spec{
		Config: cfg.Config,
		Module: mod,
		Board:  board,
		Log:    cfg.Log,
	}, nil
}

type ViewConfig struct {
	*MainConfig
	View *cli.Command
}

type PropsConfig struct {
	*MainConfig
	Props *cli.Command
}

type SetConfig struct {
	*MainConfig
	Write bool `cli:"name=w desc='write the result back to the file'"`

	Set *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Merge   bool `cli:"name=merge desc='output a JSON merge patch'"`

	Diff *cli.Command
}

type FindConfig struct {
	*MainConfig
	Find *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge  bool `cli:"name=m desc='patch is a JSON merge patch'"`
	String bool `cli:"name=s desc='patch arg as string'"`

	Patch *cli.Command
}

type NamesConfig struct {
	*MainConfig
	Names *cli.Command
}

type ShellConfig struct {
	*MainConfig
	SysClip bool `cli:"name=sysclip desc='mirror copies to the system clipboard'"`
	Gops    bool `cli:"name=gops desc='start a gops agent'"`

	Shell *cli.Command
}
