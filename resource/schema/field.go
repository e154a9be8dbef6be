package schema

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/terrasynth/terrasynth/ctyext"
)

// A Field is a single attribute extracted from a resource struct.
type Field struct {
	Name      string       // Attribute name (snake_case).
	Index     int          // Field index in the parent struct.
	Type      reflect.Type // Go type of the field.
	Required  bool         // Set from func:"input,required".
	Default   string       // Default literal from the default tag.
	Validate  string       // Validation rules from the validate tag.
	Conflicts []string     // Attribute names from the conflicts tag.

	dir string // "input" or "output"
}

// Input returns true if the field is an input attribute.
func (f Field) Input() bool { return f.dir == "input" }

// Output returns true if the field is an output attribute.
func (f Field) Output() bool { return f.dir == "output" }

// A FieldSet contains the extracted fields of a resource type, keyed by
// attribute name.
type FieldSet map[string]Field

// Inputs returns the input attributes of the set.
func (ff FieldSet) Inputs() FieldSet { return ff.filter("input") }

// Outputs returns the output attributes of the set.
func (ff FieldSet) Outputs() FieldSet { return ff.filter("output") }

func (ff FieldSet) filter(dir string) FieldSet {
	out := make(FieldSet, len(ff))
	for k, f := range ff {
		if f.dir == dir {
			out[k] = f
		}
	}
	return out
}

// Names returns the attribute names in the set, lexicographically sorted.
func (ff FieldSet) Names() []string {
	names := make([]string, 0, len(ff))
	for k := range ff {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

var fieldCache sync.Map // reflect.Type -> FieldSet

// Fields extracts the attribute fields from a resource struct type. Fields
// without a func tag are ignored. Results are cached per type.
//
// Panics if target is not a struct or a pointer to a struct, if a func tag
// has an unsupported value, or if a tagged field is unexported. Schemas are
// static; these are programmer errors.
func Fields(target reflect.Type) FieldSet {
	t := target
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		panic(fmt.Sprintf("schema: target must be a struct, not %s", target.Kind()))
	}
	if cached, ok := fieldCache.Load(t); ok {
		return cached.(FieldSet)
	}

	fields := make(FieldSet, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		tag, ok := f.Tag.Lookup("func")
		if !ok {
			continue
		}
		if f.PkgPath != "" {
			panic(fmt.Sprintf("schema: unexported field %s.%s has func tag", t, f.Name))
		}
		field := Field{
			Index:    i,
			Type:     f.Type,
			Validate: f.Tag.Get("validate"),
			Default:  f.Tag.Get("default"),
		}
		if c := f.Tag.Get("conflicts"); c != "" {
			field.Conflicts = strings.Fields(c)
		}
		switch tag {
		case "input":
			field.dir = "input"
		case "input,required":
			field.dir = "input"
			field.Required = true
		case "output":
			field.dir = "output"
		default:
			panic(fmt.Sprintf("schema: unsupported func tag %q on %s.%s", tag, t, f.Name))
		}
		field.Name = ctyext.SnakeCase(f)
		fields[field.Name] = field
	}

	fieldCache.Store(t, fields)
	return fields
}
