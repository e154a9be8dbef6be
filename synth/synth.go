package synth

import (
	"bytes"
	"encoding/json"

	"github.com/segmentio/ksuid"
	"go.uber.org/zap"
)

// Kind is the top level document key a block is placed under.
type Kind string

// Block kinds.
const (
	KindResource Kind = "resource"
	KindData     Kind = "data"
)

// A Session accumulates synthesized blocks into a single Terraform JSON
// document. The zero value is not usable; create sessions with New.
//
// Resource and data block names must be unique per type within a session.
//
// Not safe for concurrent use.
type Session struct {
	id     string
	logger *zap.Logger

	blocks    map[Kind]map[string]map[string]*Block
	providers map[string]*Block
	outputs   map[string]*Block
	terraform *Block
}

// An Option configures a session.
type Option func(*Session)

// WithLogger sets the logger used by the session. The default logger is a
// nop.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Session) { s.logger = logger }
}

// New creates an empty synthesis session with a unique id.
func New(opts ...Option) *Session {
	s := &Session{
		id:     ksuid.New().String(),
		logger: zap.NewNop(),
		blocks: map[Kind]map[string]map[string]*Block{
			KindResource: {},
			KindData:     {},
		},
		providers: make(map[string]*Block),
		outputs:   make(map[string]*Block),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// ID returns the unique id for the session.
func (s *Session) ID() string { return s.id }

// Resource synthesizes a resource block. The function is called with a new
// block for the resource body.
//
// Returns a DuplicateError if a resource with the same type and name was
// already synthesized in this session.
func (s *Session) Resource(typename, name string, fn func(*Block)) error {
	return s.add(KindResource, typename, name, fn)
}

// Data synthesizes a data source block.
func (s *Session) Data(typename, name string, fn func(*Block)) error {
	return s.add(KindData, typename, name, fn)
}

func (s *Session) add(kind Kind, typename, name string, fn func(*Block)) error {
	byType := s.blocks[kind]
	if _, ok := byType[typename][name]; ok {
		return DuplicateError{Kind: kind, Type: typename, Name: name}
	}
	b := newBlock()
	fn(b)
	if err := b.Err(); err != nil {
		return SynthError{Kind: kind, Type: typename, Name: name, Err: err}
	}
	if byType[typename] == nil {
		byType[typename] = make(map[string]*Block)
	}
	byType[typename][name] = b
	s.logger.Debug("Synthesized block",
		zap.String("session", s.id),
		zap.String("kind", string(kind)),
		zap.String("type", typename),
		zap.String("name", name),
	)
	return nil
}

// Provider sets provider configuration. Calling Provider again with the same
// name replaces the previous configuration.
func (s *Session) Provider(name string, fn func(*Block)) error {
	b := newBlock()
	fn(b)
	if err := b.Err(); err != nil {
		return err
	}
	s.providers[name] = b
	return nil
}

// Output adds a root output value to the document.
func (s *Session) Output(name string, value interface{}) error {
	b := newBlock()
	b.Set("value", value)
	if err := b.Err(); err != nil {
		return err
	}
	s.outputs[name] = b
	return nil
}

// Terraform sets the terraform settings block (required_version, backend).
func (s *Session) Terraform(fn func(*Block)) error {
	b := newBlock()
	fn(b)
	if err := b.Err(); err != nil {
		return err
	}
	s.terraform = b
	return nil
}

// Len returns the number of resource and data blocks in the session.
func (s *Session) Len() int {
	n := 0
	for _, byType := range s.blocks {
		for _, byName := range byType {
			n += len(byName)
		}
	}
	return n
}

// Empty returns true if nothing has been synthesized.
func (s *Session) Empty() bool {
	return s.Len() == 0 &&
		len(s.providers) == 0 &&
		len(s.outputs) == 0 &&
		s.terraform == nil
}

// MarshalJSON marshals the accumulated document as Terraform JSON.
func (s *Session) MarshalJSON() ([]byte, error) {
	doc := make(map[string]interface{}, 5)
	for kind, byType := range s.blocks {
		if len(byType) > 0 {
			doc[string(kind)] = byType
		}
	}
	if len(s.providers) > 0 {
		doc["provider"] = s.providers
	}
	if len(s.outputs) > 0 {
		doc["output"] = s.outputs
	}
	if s.terraform != nil && !s.terraform.empty() {
		doc["terraform"] = s.terraform
	}
	return json.Marshal(doc)
}

// Document marshals the accumulated document as indented Terraform JSON,
// suitable for writing to a .tf.json file.
func (s *Session) Document() ([]byte, error) {
	b, err := s.MarshalJSON()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, b, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
