package codec

import (
	"encoding/json"
	"fmt"

	"github.com/signadot/nodedit/node"
)

// IR is the lossless JSON form of node trees.
type IR struct{}

func (IR) Decode(d []byte) (*node.Node, error) {
	n := &node.Node{}
	if err := json.Unmarshal(d, n); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return n, nil
}

func (IR) Encode(n *node.Node) ([]byte, error) {
	d, err := json.MarshalIndent(n, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncode, err)
	}
	return append(d, '\n'), nil
}
