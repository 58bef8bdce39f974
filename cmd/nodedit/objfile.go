package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/nodedit/codec"
	"github.com/signadot/nodedit/format"
	"github.com/signadot/nodedit/node"
)

// getObjFile decodes the document at path, "-" meaning standard input.
func getObjFile(cfg *MainConfig, cc *cli.Context, path string) (*node.Node, format.Format, error) {
	var r io.Reader
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, 0, err
		}
		defer f.Close()
		r = f
	} else {
		r = cc.In
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, 0, fmt.Errorf("error reading %q: %w", path, err)
	}
	fmat := cfg.inFormat(path)
	c, err := codec.For(fmat)
	if err != nil {
		return nil, 0, err
	}
	y, err := c.Decode(d)
	if err != nil {
		return nil, 0, fmt.Errorf("error decoding %s: %w", path, err)
	}
	return y, fmat, nil
}

func putObj(cfg *MainConfig, w io.Writer, y *node.Node, in format.Format) error {
	c, err := cfg.outCodec(in)
	if err != nil {
		return err
	}
	d, err := c.Encode(y)
	if err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	_, err = w.Write(d)
	return err
}
