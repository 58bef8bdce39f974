// Package query finds map nodes matching boolean expressions written in
// the github.com/expr-lang/expr language.
//
// An expression is evaluated once per map node with the node's fields as
// variables, so that
//
//	ObjId == 1001 && Translate.X > 0
//
// finds objects by id and position. Fields hold plain Go values (see
// node.Node.Any). These variables are also defined:
//
//	_path  the node's path
//	_key   the node's key (or index) in its parent
//	_len   the number of fields
//
// Fields which a node lacks are nil; present(Field) tests for them.
package query

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/signadot/nodedit/debug"
	"github.com/signadot/nodedit/node"
)

var ErrQuery = errors.New("query error")

type Query struct {
	src string
	prg *vm.Program
}

// Compile compiles src, which must produce a bool. opts add functions or
// other expr options.
func Compile(src string, opts ...expr.Option) (*Query, error) {
	all := append([]expr.Option{
		expr.AsBool(),
		expr.AllowUndefinedVariables(),
		expr.Function("present", func(params ...any) (any, error) {
			return params[0] != nil, nil
		},
			new(func(any) bool)),
	}, opts...)
	prg, err := expr.Compile(src, all...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	return &Query{src: src, prg: prg}, nil
}

func (q *Query) String() string {
	return q.src
}

// Env is the variable environment q sees for n.
func Env(n *node.Node) map[string]any {
	env := make(map[string]any, n.Len()+3)
	for i, f := range n.Fields {
		env[f] = n.Values[i].Any()
	}
	env["_path"] = n.Path()
	env["_len"] = n.Len()
	key := ""
	if p := n.Parent; p != nil {
		if p.IsSequence() {
			key = strconv.Itoa(n.ParentIndex)
		} else {
			key = n.ParentField
		}
	}
	env["_key"] = key
	return env
}

// Match evaluates q on the map node n.
func (q *Query) Match(n *node.Node) (bool, error) {
	if !n.IsMap() {
		return false, fmt.Errorf("%w: %s is %s, not a map", ErrQuery, pathOf(n), n.Kind)
	}
	res, err := expr.Run(q.prg, Env(n))
	if err != nil {
		return false, fmt.Errorf("%w: %s: %w", ErrQuery, pathOf(n), err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q gave %T", ErrQuery, q.src, res)
	}
	return b, nil
}

type Match struct {
	Path string
	Node *node.Node
}

// Find returns the map nodes under root (root included) matching q, in
// document order. Nodes on which q fails to evaluate, for example by
// comparing a string field with a number, do not match.
func Find(root *node.Node, q *Query) []Match {
	var res []Match
	root.Visit(func(y *node.Node, isPost bool) (bool, error) {
		if isPost || !y.IsMap() {
			return !isPost, nil
		}
		ok, err := q.Match(y)
		if err != nil {
			if debug.Query() {
				debug.Logf("%v\n", err)
			}
			return true, nil
		}
		if ok {
			res = append(res, Match{Path: y.Path(), Node: y})
		}
		return true, nil
	})
	return res
}

func pathOf(n *node.Node) string {
	if p := n.Path(); p != "" {
		return p
	}
	return "$"
}
