package inspect

import (
	"github.com/shopspring/decimal"

	"github.com/signadot/nodedit/node"
)

// VectorConverter shows maps holding exactly the keys X, Y and Z as
// "(x, y, z)" with each component rounded to two decimals. Components are
// edited as nested properties.
type VectorConverter struct{}

func (VectorConverter) Name() string     { return "vector" }
func (VectorConverter) CanParse() bool   { return false }
func (VectorConverter) Expandable() bool { return true }

func (c VectorConverter) Parse(string) (*node.Node, error) {
	return nil, noParse(c)
}

func (VectorConverter) Format(v *node.Node) string {
	return "(" + round2(v.Get("X")) + ", " + round2(v.Get("Y")) + ", " + round2(v.Get("Z")) + ")"
}

// round2 rounds half away from zero on the shortest decimal form of the
// component, so a Float32 1.005 shows as 1.01.
func round2(c *node.Node) string {
	if c == nil || !c.Kind.IsNumber() {
		return Resolve(nil, c).Format(c)
	}
	d, err := decimal.NewFromString(c.ScalarText())
	if err != nil {
		// NaN and infinities
		return c.ScalarText()
	}
	return d.Round(2).String()
}

// IsVector reports whether v is a map with exactly the keys X, Y and Z.
func IsVector(v *node.Node) bool {
	return v.IsMap() && v.Len() == 3 && v.Has("X") && v.Has("Y") && v.Has("Z")
}
