package inspect

import (
	"maps"
	"sort"

	"github.com/signadot/nodedit/node"
)

// ConverterFunc makes a fresh converter for one property.
type ConverterFunc func() Converter

// Registry maps concrete type names (node tags and leaf types) to
// converters. It is filled by game modules and other collaborators before
// use; the inspector only reads it.
type Registry struct {
	m map[string]ConverterFunc
}

func NewRegistry() *Registry {
	return &Registry{m: map[string]ConverterFunc{}}
}

// DefaultRegistry is used by Expose and by inspectors without a registry.
var DefaultRegistry = NewRegistry()

// Register installs f for typeName, replacing any earlier registration.
func (r *Registry) Register(typeName string, f ConverterFunc) {
	r.m[typeName] = f
}

// Clone returns a registry with the same registrations as r. A nil r
// clones to an empty registry.
func (r *Registry) Clone() *Registry {
	res := NewRegistry()
	if r != nil {
		maps.Copy(res.m, r.m)
	}
	return res
}

func (r *Registry) Lookup(typeName string) (ConverterFunc, bool) {
	if r == nil {
		return nil, false
	}
	f, ok := r.m[typeName]
	return f, ok
}

// Names lists the registered type names in sorted order.
func (r *Registry) Names() []string {
	res := make([]string, 0, len(r.m))
	for k := range r.m {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}

// Resolve picks the converter for v:
//
//  1. null values get a NullConverter
//  2. a converter registered for v's type name
//  3. maps with exactly X, Y and Z get a VectorConverter
//  4. other maps get a MapConverter, sequences a SequenceConverter
//  5. scalars get a ScalarConverter of their kind
//
// A nil registry skips step 2.
func Resolve(reg *Registry, v *node.Node) Converter {
	if v.IsNull() {
		return NullConverter{}
	}
	if name := v.TypeName(); name != "" {
		if f, ok := reg.Lookup(name); ok {
			return f()
		}
	}
	switch v.Kind {
	case node.MapKind:
		if IsVector(v) {
			return VectorConverter{}
		}
		return MapConverter{}
	case node.SequenceKind:
		return SequenceConverter{}
	case node.LeafKind:
		return LeafConverter{}
	}
	return ScalarConverter{Kind: v.Kind}
}
