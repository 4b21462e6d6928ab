// Package openapi discovers, parses and filters the OpenAPI documents a
// build produces, extracting the schemas that describe persistable entities.
package openapi

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Document is the subset of an OpenAPI 3.x document the generator reads.
type Document struct {
	OpenAPI    string     `json:"openapi" yaml:"openapi"`
	Info       Info       `json:"info" yaml:"info"`
	Components Components `json:"components" yaml:"components"`
}

// Info carries the document's identifying metadata.
type Info struct {
	Title   string `json:"title" yaml:"title"`
	Version string `json:"version" yaml:"version"`
}

// Components holds the document's reusable schema definitions.
type Components struct {
	Schemas SchemaMap `json:"schemas" yaml:"schemas"`
}

// Schema is a named object-type definition, candidate for becoming a table.
type Schema struct {
	Type       string      `json:"type" yaml:"type"`
	Properties PropertyMap `json:"properties" yaml:"properties"`
	Required   []string    `json:"required" yaml:"required"`
}

// Property describes one schema property. IsPrimaryKey marks a synthetic
// UUID identifier that renders as the dialect's generated primary key.
type Property struct {
	Type         string `json:"type" yaml:"type"`
	Format       string `json:"format" yaml:"format"`
	IsPrimaryKey bool   `json:"isPrimaryKey" yaml:"isPrimaryKey"`
}

// SchemaMap preserves the document order of components.schemas. Go maps
// randomize iteration, which would make multi-table output nondeterministic.
type SchemaMap struct {
	names   []string
	schemas map[string]*Schema
}

// Names returns schema names in document order.
func (m *SchemaMap) Names() []string { return m.names }

// Get returns the schema registered under name.
func (m *SchemaMap) Get(name string) (*Schema, bool) {
	s, ok := m.schemas[name]
	return s, ok
}

// Len returns the number of schemas.
func (m *SchemaMap) Len() int { return len(m.names) }

func (m *SchemaMap) set(name string, s *Schema) {
	if m.schemas == nil {
		m.schemas = make(map[string]*Schema)
	}
	if _, exists := m.schemas[name]; !exists {
		m.names = append(m.names, name)
	}
	m.schemas[name] = s
}

// UnmarshalJSON decodes the schemas object token by token so that the
// source order of keys survives parsing.
func (m *SchemaMap) UnmarshalJSON(data []byte) error {
	return decodeOrdered(data, func(name string, dec *json.Decoder) error {
		var s Schema
		if err := dec.Decode(&s); err != nil {
			return fmt.Errorf("schema %q: %w", name, err)
		}
		m.set(name, &s)
		return nil
	})
}

// UnmarshalYAML walks the mapping node pairwise; yaml.Node keeps source order.
func (m *SchemaMap) UnmarshalYAML(node *yaml.Node) error {
	return decodeOrderedYAML(node, func(name string, value *yaml.Node) error {
		var s Schema
		if err := value.Decode(&s); err != nil {
			return fmt.Errorf("schema %q: %w", name, err)
		}
		m.set(name, &s)
		return nil
	})
}

// PropertyMap preserves the document order of a schema's properties so that
// generated column order matches the source document.
type PropertyMap struct {
	names []string
	props map[string]Property
}

// Names returns property names in document order.
func (m *PropertyMap) Names() []string { return m.names }

// Get returns the property registered under name.
func (m *PropertyMap) Get(name string) (Property, bool) {
	p, ok := m.props[name]
	return p, ok
}

// Len returns the number of properties.
func (m *PropertyMap) Len() int { return len(m.names) }

func (m *PropertyMap) set(name string, p Property) {
	if m.props == nil {
		m.props = make(map[string]Property)
	}
	if _, exists := m.props[name]; !exists {
		m.names = append(m.names, name)
	}
	m.props[name] = p
}

func (m *PropertyMap) UnmarshalJSON(data []byte) error {
	return decodeOrdered(data, func(name string, dec *json.Decoder) error {
		var p Property
		if err := dec.Decode(&p); err != nil {
			return fmt.Errorf("property %q: %w", name, err)
		}
		m.set(name, p)
		return nil
	})
}

func (m *PropertyMap) UnmarshalYAML(node *yaml.Node) error {
	return decodeOrderedYAML(node, func(name string, value *yaml.Node) error {
		var p Property
		if err := value.Decode(&p); err != nil {
			return fmt.Errorf("property %q: %w", name, err)
		}
		m.set(name, p)
		return nil
	})
}

// decodeOrdered streams a JSON object and hands each key to fn with the
// decoder positioned at the key's value. A JSON null decodes to an empty map.
func decodeOrdered(data []byte, fn func(name string, dec *json.Decoder) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("expected object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("expected object key, got %v", keyTok)
		}
		if err := fn(name, dec); err != nil {
			return err
		}
	}
	_, err = dec.Token()
	return err
}

func decodeOrderedYAML(node *yaml.Node, fn func(name string, value *yaml.Node) error) error {
	if node.Kind == 0 || node.Tag == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("expected mapping node at line %d", node.Line)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if err := fn(node.Content[i].Value, node.Content[i+1]); err != nil {
			return err
		}
	}
	return nil
}
