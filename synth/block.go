package synth

import (
	"encoding/json"
	"reflect"

	"github.com/pkg/errors"
	"github.com/terrasynth/terrasynth/ctyext"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
	"go.uber.org/multierr"
)

// A Block is a node in the document under construction. Attributes and nested
// blocks are added with Set and Block. Conversion errors are collected on the
// block and surfaced when the block is closed, so callers do not need to
// check an error on every attribute.
type Block struct {
	attrs    map[string]cty.Value
	blocks   map[string][]*Block
	repeated map[string]bool
	err      error
}

func newBlock() *Block {
	return &Block{
		attrs:    make(map[string]cty.Value),
		blocks:   make(map[string][]*Block),
		repeated: make(map[string]bool),
	}
}

// Set writes an attribute on the block. Pointers are dereferenced and nil
// pointers are skipped, leaving the attribute unset. Structs become objects
// with snake_case attribute names.
//
// Setting the same key twice overwrites the previous value.
func (b *Block) Set(key string, value interface{}) {
	if value == nil {
		return
	}
	ty := ctyext.ImpliedType(reflect.TypeOf(value), ctyext.SnakeCase)
	val, err := ctyext.ToCtyValue(value, ty, ctyext.SnakeCase)
	if err != nil {
		b.err = multierr.Append(b.err, errors.Wrapf(err, "set %s", key))
		return
	}
	if val.IsNull() {
		return
	}
	b.attrs[key] = val
}

// Map writes a map attribute, such as resource tags. Empty maps are
// skipped.
func (b *Block) Map(key string, m map[string]string) {
	if len(m) == 0 {
		return
	}
	b.Set(key, m)
}

// SetValue writes an attribute that is already a cty value. Null values are
// skipped.
func (b *Block) SetValue(key string, value cty.Value) {
	if value == cty.NilVal || value.IsNull() {
		return
	}
	b.attrs[key] = value
}

// Block adds a nested block. A block added once marshals as a JSON object;
// calling Block with the same name multiple times appends, and repeated
// blocks marshal as a JSON array.
func (b *Block) Block(name string, fn func(*Block)) {
	b.add(name, fn)
	if len(b.blocks[name]) > 1 {
		b.repeated[name] = true
	}
}

// List adds a nested block to a repeated block list. A list marshals as a
// JSON array regardless of how many elements it holds, so list-typed
// attributes keep a stable shape.
func (b *Block) List(name string, fn func(*Block)) {
	b.add(name, fn)
	b.repeated[name] = true
}

func (b *Block) add(name string, fn func(*Block)) {
	nested := newBlock()
	fn(nested)
	if nested.err != nil {
		b.err = multierr.Append(b.err, errors.Wrapf(nested.err, "block %s", name))
		return
	}
	b.blocks[name] = append(b.blocks[name], nested)
}

// Fail records an error on the block. A failed block aborts registration of
// the enclosing resource.
func (b *Block) Fail(err error) {
	if err != nil {
		b.err = multierr.Append(b.err, err)
	}
}

// Err returns the accumulated errors from building the block.
func (b *Block) Err() error { return b.err }

func (b *Block) empty() bool {
	return len(b.attrs) == 0 && len(b.blocks) == 0
}

// MarshalJSON marshals the block into the Terraform JSON shape. Output is
// deterministic; keys are sorted by the JSON encoder.
func (b *Block) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(b.attrs)+len(b.blocks))
	for k, v := range b.attrs {
		j, err := ctyjson.Marshal(v, v.Type())
		if err != nil {
			return nil, errors.Wrapf(err, "marshal %s", k)
		}
		out[k] = j
	}
	for name, bb := range b.blocks {
		var v interface{} = bb
		if len(bb) == 1 && !b.repeated[name] {
			v = bb[0]
		}
		j, err := json.Marshal(v)
		if err != nil {
			return nil, errors.Wrapf(err, "marshal block %s", name)
		}
		out[name] = j
	}
	return json.Marshal(out)
}
