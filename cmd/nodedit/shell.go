package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/c-bata/go-prompt"
	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"

	nclip "github.com/signadot/nodedit/clipboard"
	"github.com/signadot/nodedit/shell"
)

func shellMain(cfg *ShellConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Shell.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 1 || args[0] == "-" {
		return fmt.Errorf("%w: shell requires a file", cli.ErrUsage)
	}
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			fmt.Fprintf(cc.Out, "gops agent failed: %v\n", err)
		}
		defer agent.Close()
	}
	board := &nclip.Board{}
	if cfg.SysClip {
		board.Mirror = clipboard.WriteAll
	}
	doc, err := openDoc(cfg.MainConfig, cc, args[0], board)
	if err != nil {
		return err
	}
	s := &shell.Session{Doc: doc, Out: cc.Out, Colors: cfg.colors(cc.Out)}
	p := prompt.New(
		func(line string) {
			if isQuit(line) {
				return
			}
			if err := s.Exec(line); err != nil {
				fmt.Fprintf(cc.Out, "error: %v\n", err)
			}
		},
		s.Complete,
		prompt.OptionPrefix("nodedit> "),
		prompt.OptionTitle("nodedit "+args[0]),
		prompt.OptionPrefixTextColor(prompt.Blue),
		prompt.OptionSetExitCheckerOnInput(func(in string, breakline bool) bool {
			return breakline && isQuit(in)
		}),
	)
	p.Run()
	if doc.Dirty() {
		cfg.Log.Warn("unsaved changes", "path", doc.Path(), "changes", len(doc.Changes()))
	}
	return nil
}

func isQuit(line string) bool {
	switch strings.TrimSpace(line) {
	case "quit", "exit":
		return true
	}
	return false
}
