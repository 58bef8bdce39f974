// Package gamemodule resolves game specific object names, ids and model
// files for the editor, which uses them to label nodes.
package gamemodule

import (
	"errors"

	"github.com/signadot/nodedit/inspect"
)

// UndefinedName is the name of ids a module does not know.
const UndefinedName = "Undefined"

var ErrObjFlow = errors.New("bad objflow")

// Module is the game capability consumed by the editor.
type Module interface {
	Name() string
	// ResolveObjectName returns the name of id, or UndefinedName.
	ResolveObjectName(id int) string
	// ResolveObjectID returns the id of name, ignoring case, or 0.
	ResolveObjectID(name string) int
	// ResolveModelPath returns the model file of the named object, if the
	// game has one.
	ResolveModelPath(objName string) (string, bool)
	// ReservedKeys are object fields the editor must not let users edit.
	ReservedKeys() []string
	// RegisterConverters adds the module's property converters to reg.
	RegisterConverters(reg *inspect.Registry)
}

// None is the module used when no game is configured.
type None struct{}

func (None) Name() string                           { return "none" }
func (None) ResolveObjectName(int) string           { return UndefinedName }
func (None) ResolveObjectID(string) int             { return 0 }
func (None) ResolveModelPath(string) (string, bool) { return "", false }
func (None) ReservedKeys() []string                 { return nil }
func (None) RegisterConverters(*inspect.Registry)   {}
