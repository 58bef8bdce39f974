package codec

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/signadot/nodedit/debug"
	"github.com/signadot/nodedit/format"
	"github.com/signadot/nodedit/node"
)

var (
	ErrDecode = errors.New("decode error")
	ErrEncode = errors.New("encode error")
)

// Codec converts between node trees and one file format.
type Codec interface {
	Decode(d []byte) (*node.Node, error)
	Encode(n *node.Node) ([]byte, error)
}

// For returns the codec of f.
func For(f format.Format) (Codec, error) {
	switch f {
	case format.YAMLFormat:
		return YAML{}, nil
	case format.JSONFormat:
		return JSON{}, nil
	case format.IRFormat:
		return IR{}, nil
	}
	return nil, fmt.Errorf("%w: %d", format.ErrBadFormat, int(f))
}

// ForPath returns the codec for the suffix of path.
func ForPath(path string) (Codec, error) {
	f, err := format.FromPath(path)
	if err != nil {
		return nil, err
	}
	return For(f)
}

// LoadTree reads the tree stored at path, choosing the format by suffix.
func LoadTree(path string) (*node.Node, error) {
	c, err := ForPath(path)
	if err != nil {
		return nil, err
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	n, err := c.Decode(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if debug.Codec() {
		debug.Logf("loaded %s (%d bytes)\n", path, len(d))
	}
	return n, nil
}

// SaveTree writes n to path, choosing the format by suffix. The file is
// written next to path under a temporary name and renamed into place.
func SaveTree(path string, n *node.Node) error {
	c, err := ForPath(path)
	if err != nil {
		return err
	}
	d, err := c.Encode(n)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return writeFile(path, d)
}

func writeFile(path string, d []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()
	if _, err := f.Write(d); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	if debug.Codec() {
		debug.Logf("saved %s (%d bytes)\n", path, len(d))
	}
	return nil
}
