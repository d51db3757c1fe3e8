package shape

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var scalarKinds = map[string]Kind{
	"bottom":   KindBottom,
	"any":      KindAny,
	"null":     KindNull,
	"bool":     KindBool,
	"string":   KindString,
	"integer":  KindInteger,
	"floating": KindFloating,
}

var compositeKeywords = map[Kind]string{
	KindTuple:    "tuple",
	KindVec:      "vec",
	KindStruct:   "struct",
	KindMap:      "map",
	KindOpaque:   "opaque",
	KindOptional: "optional",
}

// Keyword returns the descriptor keyword for k, as accepted by Parse.
func (k Kind) Keyword() string {
	for name, kind := range scalarKinds {
		if kind == k {
			return name
		}
	}

	if name, ok := compositeKeywords[k]; ok {
		return name
	}

	return k.String()
}

// LoadFile loads a shape descriptor from the given path.
func LoadFile(path string) (Shape, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Shape{}, fmt.Errorf("failed to read shape file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes a YAML (or JSON) shape descriptor.
//
// Scalars name primitive kinds ("string", "integer", ...). Composite shapes are
// single-key mappings:
//
//	struct:
//	  id: integer
//	  name: {optional: string}
//	  tags: {vec: string}
//	  pair: {tuple: [string, integer]}
//	  attrs: {map: floating}
//	  created: {opaque: Date}
func Parse(data []byte) (Shape, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Shape{}, errors.New("empty shape descriptor")
	}

	var s Shape

	err := yaml.Unmarshal(data, &s)
	if err != nil {
		return Shape{}, fmt.Errorf("failed to parse shape descriptor: %w", err)
	}

	return s, nil
}

// UnmarshalYAML implements custom YAML unmarshaling for Shape.
func (s *Shape) UnmarshalYAML(node *yaml.Node) error {
	decoded, err := decodeNode(node)
	if err != nil {
		return err
	}

	*s = decoded

	return nil
}

func decodeNode(node *yaml.Node) (Shape, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) != 1 {
			return Shape{}, errors.New("empty shape document")
		}

		return decodeNode(node.Content[0])

	case yaml.ScalarNode:
		kind, ok := scalarKinds[node.Value]
		if !ok {
			return Shape{}, fmt.Errorf("line %d: unknown shape %q", node.Line, node.Value)
		}

		return Shape{Kind: kind}, nil

	case yaml.MappingNode:
		if len(node.Content) != 2 {
			return Shape{}, fmt.Errorf("line %d: composite shape must have exactly one key", node.Line)
		}

		return decodeComposite(node.Content[0].Value, node.Content[1])

	default:
		return Shape{}, fmt.Errorf("line %d: expected scalar or mapping, got %v", node.Line, node.Kind)
	}
}

func decodeComposite(key string, value *yaml.Node) (Shape, error) {
	switch key {
	case "optional", "vec", "map":
		inner, err := decodeNode(value)
		if err != nil {
			return Shape{}, fmt.Errorf("%s: %w", key, err)
		}

		switch key {
		case "optional":
			return Optional(inner), nil
		case "vec":
			return Vec(inner), nil
		default:
			return Map(inner), nil
		}

	case "tuple":
		if value.Kind != yaml.SequenceNode {
			return Shape{}, fmt.Errorf("line %d: tuple expects a sequence", value.Line)
		}

		elems := make([]Shape, 0, len(value.Content))

		for i, n := range value.Content {
			elem, err := decodeNode(n)
			if err != nil {
				return Shape{}, fmt.Errorf("tuple[%d]: %w", i, err)
			}

			elems = append(elems, elem)
		}

		return Tuple(elems...), nil

	case "struct":
		if value.Kind != yaml.MappingNode {
			return Shape{}, fmt.Errorf("line %d: struct expects a mapping", value.Line)
		}

		fields := make([]Field, 0, len(value.Content)/2)

		for i := 0; i+1 < len(value.Content); i += 2 {
			name := value.Content[i].Value

			if _, dup := findField(fields, name); dup {
				return Shape{}, fmt.Errorf("line %d: duplicate field %q", value.Content[i].Line, name)
			}

			fieldShape, err := decodeNode(value.Content[i+1])
			if err != nil {
				return Shape{}, fmt.Errorf("struct.%s: %w", name, err)
			}

			fields = append(fields, Field{Name: name, Shape: fieldShape})
		}

		return Struct(fields...), nil

	case "opaque":
		if value.Kind != yaml.ScalarNode || value.Value == "" {
			return Shape{}, fmt.Errorf("line %d: opaque expects a type name", value.Line)
		}

		return Opaque(value.Value), nil

	default:
		return Shape{}, fmt.Errorf("unknown composite shape %q", key)
	}
}
