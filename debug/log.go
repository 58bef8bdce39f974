package debug

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/signadot/nodedit/node"
)

// Logf writes a debug message to stderr. Node and plain JSON-like
// arguments are rendered as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *node.Node:
			if x == nil {
				args[i] = "<nil node>"
				continue
			}
			d, err := json.MarshalIndent(x.Any(), "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("[raw node] %s %s", x.Kind, x.Path())
				continue
			}
			args[i] = string(d)
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
