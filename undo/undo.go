// Package undo provides a bounded log of reversible actions.
//
// A Log is a deque: Push appends at the back and evicts from the front once
// the log holds more than MaxItems actions, while Pop and Undo take from
// the back. Redo is not modelled here; callers which offer it re-apply a
// forward action of their own.
package undo

import (
	"errors"
	"fmt"

	"github.com/emirpasic/gods/lists/doublylinkedlist"

	"github.com/signadot/nodedit/debug"
)

// DefaultMaxItems is the capacity of a log created with a non-positive
// maximum.
const DefaultMaxItems = 50

// ErrEmpty is returned by Pop, Peek and Undo on an empty log.
var ErrEmpty = errors.New("undo log is empty")

// Action reverses exactly one recorded mutation by calling Inverse with
// Arg. Arg is captured when the action is pushed, so anything the inverse
// needs from before the mutation must be cloned into it by the caller.
type Action struct {
	Name    string
	Inverse func(arg any) error
	Arg     any
}

// Invoke performs the undo.
func (a *Action) Invoke() error {
	if a.Inverse == nil {
		return fmt.Errorf("undo %q: no inverse", a.Name)
	}
	if err := a.Inverse(a.Arg); err != nil {
		return fmt.Errorf("undo %q: %w", a.Name, err)
	}
	return nil
}

func (a *Action) String() string {
	return a.Name
}

// Log is a bounded stack of actions, most recent last. It is not safe for
// concurrent use.
type Log struct {
	max  int
	list *doublylinkedlist.List
}

// New makes a log holding at most max actions. A max <= 0 means
// DefaultMaxItems.
func New(max int) *Log {
	if max <= 0 {
		max = DefaultMaxItems
	}
	return &Log{max: max, list: doublylinkedlist.New()}
}

// MaxItems is the capacity of the log.
func (l *Log) MaxItems() int {
	return l.max
}

// SetMaxItems changes the capacity, evicting the oldest actions if the log
// holds more than max. A max <= 0 means DefaultMaxItems.
func (l *Log) SetMaxItems(max int) {
	if max <= 0 {
		max = DefaultMaxItems
	}
	l.max = max
	l.evict()
}

// Push records an action whose inverse will be called with arg.
func (l *Log) Push(name string, inverse func(arg any) error, arg any) *Action {
	a := &Action{Name: name, Inverse: inverse, Arg: arg}
	l.PushAction(a)
	return a
}

// PushAction records a.
func (l *Log) PushAction(a *Action) {
	l.list.Append(a)
	l.evict()
}

func (l *Log) evict() {
	for l.list.Size() > l.max {
		if debug.Undo() {
			if v, ok := l.list.Get(0); ok {
				debug.Logf("undo: evict %s\n", v.(*Action))
			}
		}
		l.list.Remove(0)
	}
}

// Peek returns the most recent action without removing it.
func (l *Log) Peek() (*Action, error) {
	v, ok := l.list.Get(l.list.Size() - 1)
	if !ok {
		return nil, ErrEmpty
	}
	return v.(*Action), nil
}

// Pop removes and returns the most recent action.
func (l *Log) Pop() (*Action, error) {
	a, err := l.Peek()
	if err != nil {
		return nil, err
	}
	l.list.Remove(l.list.Size() - 1)
	return a, nil
}

// Undo pops the most recent action and invokes it. The action is returned
// even when its inverse fails; it is not pushed back.
func (l *Log) Undo() (*Action, error) {
	a, err := l.Pop()
	if err != nil {
		return nil, err
	}
	return a, a.Invoke()
}

func (l *Log) Len() int {
	return l.list.Size()
}

func (l *Log) Clear() {
	l.list.Clear()
}

// Actions lists the logged actions, oldest first.
func (l *Log) Actions() []*Action {
	res := make([]*Action, 0, l.list.Size())
	it := l.list.Iterator()
	for it.Next() {
		res = append(res, it.Value().(*Action))
	}
	return res
}

// Names lists the names of the logged actions, oldest first.
func (l *Log) Names() []string {
	as := l.Actions()
	res := make([]string, len(as))
	for i, a := range as {
		res[i] = a.Name
	}
	return res
}
