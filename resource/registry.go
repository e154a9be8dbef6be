package resource

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/terrasynth/terrasynth/suggest"
)

// A Registry maintains the set of supported resource types.
//
// The zero value is an empty registry, ready for use. Not safe for
// concurrent registration; register all types on startup.
type Registry struct {
	types map[string]reflect.Type
}

// Register adds a resource definition. The definition must be a pointer to
// a struct; panics otherwise. Registering a type name twice overwrites the
// previous definition.
func (r *Registry) Register(def Definition) {
	t := reflect.TypeOf(def)
	if t.Kind() != reflect.Ptr || t.Elem().Kind() != reflect.Struct {
		panic(fmt.Sprintf("resource: definition must be a pointer to a struct, got %T", def))
	}
	if r.types == nil {
		r.types = make(map[string]reflect.Type)
	}
	r.types[def.Type()] = t.Elem()
}

// New creates a blank instance of a registered type.
//
// Returns a NotSupportedError if the type has not been registered, carrying
// a suggestion for a close match if one exists.
func (r *Registry) New(typename string) (Definition, error) {
	t, ok := r.types[typename]
	if !ok {
		return nil, NotSupportedError{
			Type:       typename,
			Suggestion: suggest.String(typename, r.Types()),
		}
	}
	return reflect.New(t).Interface().(Definition), nil
}

// Types returns the registered type names, lexicographically sorted.
func (r *Registry) Types() []string {
	tt := make([]string, 0, len(r.types))
	for k := range r.types {
		tt = append(tt, k)
	}
	sort.Strings(tt)
	return tt
}
