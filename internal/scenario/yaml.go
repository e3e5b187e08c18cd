package scenario

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// document is the on-disk YAML layout:
//
//	name: tutorial
//	ops:
//	  - insert: 10
//	  - remove: 20
//	  - print: true
type document struct {
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	Ops         []opDoc `yaml:"ops"`
}

// opDoc decodes a single-key mapping such as {insert: 10}.
type opDoc Op

func (d *opDoc) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return &ParseError{Line: n.Line, Message: "each op must be a single-key mapping, e.g. {insert: 10}"}
	}

	key, val := n.Content[0], n.Content[1]
	kind, err := ParseKind(key.Value)
	if err != nil {
		return &ParseError{Line: key.Line, Message: err.Error(), Err: err}
	}

	if !kind.HasValue() {
		var on bool
		if val.ShortTag() != "!!bool" || val.Decode(&on) != nil || !on {
			return &ParseError{Line: val.Line, Message: fmt.Sprintf("%s takes true, e.g. {%s: true}, got %q", kind, kind, val.Value)}
		}
		*d = opDoc{Kind: kind}
		return nil
	}

	if val.ShortTag() == "!!null" {
		return &ParseError{Line: val.Line, Message: fmt.Sprintf("%s needs an integer, got nothing", kind)}
	}
	var v int
	if err := val.Decode(&v); err != nil {
		return &ParseError{Line: val.Line, Message: fmt.Sprintf("%s needs an integer, got %q", kind, val.Value), Err: err}
	}
	*d = opDoc{Kind: kind, Value: v}
	return nil
}

// ParseYAML decodes a YAML scenario. Unknown top-level fields are rejected.
func ParseYAML(content []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Message: ErrEmpty.Error(), Err: ErrEmpty}
		}
		var pe *ParseError
		if errors.As(err, &pe) {
			return nil, pe
		}
		return nil, &ParseError{Message: fmt.Sprintf("invalid YAML: %v", err), Err: err}
	}

	if len(doc.Ops) == 0 {
		return nil, &ParseError{Message: ErrEmpty.Error(), Err: ErrEmpty}
	}

	s := &Scenario{
		Name:        doc.Name,
		Description: doc.Description,
		Ops:         make([]Op, len(doc.Ops)),
	}
	for i, o := range doc.Ops {
		s.Ops[i] = Op(o)
	}
	return s, nil
}
