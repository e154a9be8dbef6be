package resource

import (
	"github.com/pkg/errors"
	"github.com/terrasynth/terrasynth/resource/schema"
	"github.com/terrasynth/terrasynth/synth"
)

// Synth runs the full pipeline for one resource definition: apply defaults,
// validate, encode into the session, build the reference.
//
// The returned reference exposes interpolation strings for chaining the
// resource into other definitions. Synth returns an error if the name is
// empty, attributes fail validation, or the session already holds a resource
// with the same type and name.
func Synth(s *synth.Session, def Definition, name string) (*Reference, error) {
	if name == "" {
		return nil, errors.New("resource has no name")
	}
	if err := schema.ApplyDefaults(def); err != nil {
		return nil, ValidationError{Type: def.Type(), Name: name, Err: err}
	}
	if err := schema.Validate(def); err != nil {
		return nil, ValidationError{Type: def.Type(), Name: name, Err: err}
	}
	if v, ok := def.(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, ValidationError{Type: def.Type(), Name: name, Err: err}
		}
	}

	fn := func(b *synth.Block) {
		b.Fail(Encode(def, b))
	}

	var err error
	if _, ok := def.(DataSource); ok {
		err = s.Data(def.Type(), name, fn)
	} else {
		err = s.Resource(def.Type(), name, fn)
	}
	if err != nil {
		return nil, err
	}

	ref := NewReference(def, name)
	return &ref, nil
}
