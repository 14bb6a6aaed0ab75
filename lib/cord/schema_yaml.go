// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package cord

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// schemaDescriptor is the YAML shape of one Schema node: exactly one
// of its fields is meaningful, selected by Kind. A schema descriptor
// is not deployment configuration — there is no environment-override
// merging or ${VAR} expansion, and its file is the single source of
// truth for the shape it describes.
type schemaDescriptor struct {
	Kind     string              `yaml:"kind"`
	Width    int                 `yaml:"width,omitempty"`
	Elem     *schemaDescriptor   `yaml:"elem,omitempty"`
	Fields   []fieldDescriptor   `yaml:"fields,omitempty"`
	Variants []variantDescriptor `yaml:"variants,omitempty"`
}

type fieldDescriptor struct {
	Name   string           `yaml:"name,omitempty"`
	Schema schemaDescriptor `yaml:"schema"`
}

type variantDescriptor struct {
	Name    string            `yaml:"name"`
	Payload *schemaDescriptor `yaml:"payload,omitempty"`
}

// LoadSchemaFile reads and parses a YAML schema descriptor from path.
func LoadSchemaFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema file %s: %w", path, err)
	}
	return ParseSchemaYAML(data)
}

// ParseSchemaYAML parses a YAML schema descriptor into a [Schema] tree,
// validating it as it goes. The descriptor's shape follows [Schema]
// directly: a "kind" string selects the node type ("unit", "bool",
// "uint", "int", "bytes", "string", "timestamp", "optional", "tuple",
// "seq", "set", "struct", "enum"), with "width" required for
// uint/int, "elem" required for optional/seq/set, "fields" required
// for struct (and read for tuple, where an empty list is accepted), and
// "variants" required for enum.
func ParseSchemaYAML(data []byte) (*Schema, error) {
	var descriptor schemaDescriptor
	if err := yaml.Unmarshal(data, &descriptor); err != nil {
		return nil, fmt.Errorf("parsing schema YAML: %w", err)
	}
	return descriptorToSchema(&descriptor)
}

func descriptorToSchema(d *schemaDescriptor) (*Schema, error) {
	switch d.Kind {
	case "unit":
		return Unit(), nil
	case "bool":
		return Bool(), nil
	case "bytes":
		return Bytes(), nil
	case "string":
		return String(), nil
	case "timestamp":
		return Timestamp(), nil

	case "uint", "int":
		if err := validateWidth(d.Width); err != nil {
			return nil, fmt.Errorf("schema kind %q: %w", d.Kind, err)
		}
		if d.Kind == "uint" {
			return Uint(d.Width), nil
		}
		return Int(d.Width), nil

	case "optional", "seq", "set":
		if d.Elem == nil {
			return nil, fmt.Errorf("schema kind %q requires an \"elem\" node", d.Kind)
		}
		elem, err := descriptorToSchema(d.Elem)
		if err != nil {
			return nil, fmt.Errorf("schema kind %q: %w", d.Kind, err)
		}
		switch d.Kind {
		case "optional":
			return Optional(elem), nil
		case "seq":
			return Seq(elem), nil
		default:
			return SetOf(elem), nil
		}

	case "tuple":
		elems := make([]*Schema, len(d.Fields))
		for i, field := range d.Fields {
			elem, err := descriptorToSchema(&field.Schema)
			if err != nil {
				return nil, fmt.Errorf("tuple element %d: %w", i, err)
			}
			elems[i] = elem
		}
		return Tuple(elems...), nil

	case "struct":
		if len(d.Fields) == 0 {
			return nil, fmt.Errorf("schema kind \"struct\" requires at least one field")
		}
		fields := make([]Field, len(d.Fields))
		for i, field := range d.Fields {
			if field.Name == "" {
				return nil, fmt.Errorf("struct field %d has no name", i)
			}
			elem, err := descriptorToSchema(&field.Schema)
			if err != nil {
				return nil, fmt.Errorf("struct field %q: %w", field.Name, err)
			}
			fields[i] = Field{Name: field.Name, Schema: elem}
		}
		return Struct(fields...), nil

	case "enum":
		if len(d.Variants) == 0 {
			return nil, fmt.Errorf("schema kind \"enum\" requires at least one variant")
		}
		variants := make([]Variant, len(d.Variants))
		for i, variant := range d.Variants {
			if variant.Name == "" {
				return nil, fmt.Errorf("enum variant %d has no name", i)
			}
			var payload *Schema
			if variant.Payload != nil {
				p, err := descriptorToSchema(variant.Payload)
				if err != nil {
					return nil, fmt.Errorf("enum variant %q payload: %w", variant.Name, err)
				}
				payload = p
			}
			variants[i] = Variant{Name: variant.Name, Payload: payload}
		}
		return Enum(variants...), nil

	case "":
		return nil, fmt.Errorf("schema node is missing a \"kind\"")

	default:
		return nil, fmt.Errorf("unknown schema kind %q", d.Kind)
	}
}

func validateWidth(width int) error {
	switch width {
	case 8, 16, 32, 64, 128:
		return nil
	default:
		return fmt.Errorf("width must be one of 8, 16, 32, 64, 128, got %d", width)
	}
}
