package document

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tree is the root of a parsed document. It exists so the node types
// can be decoded through the yaml.Unmarshaler machinery.
type Tree struct {
	Root Node
}

// LoadFile loads and parses a YAML document from the given path.
func LoadFile(path string) (Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a document tree and returns its root
// node.
func Parse(data []byte) (Node, error) {
	var t Tree

	err := yaml.Unmarshal(data, &t)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document YAML: %w", err)
	}

	return t.Root, nil
}

// UnmarshalYAML implements custom YAML unmarshaling for Tree.
func (t *Tree) UnmarshalYAML(node *yaml.Node) error {
	root, err := decode(node)
	if err != nil {
		return err
	}

	t.Root = root

	return nil
}

// decode converts a yaml.Node into a document node by shape.
func decode(node *yaml.Node) (Node, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) != 1 {
			return nil, fmt.Errorf("expected a single document, got %d", len(node.Content))
		}

		return decode(node.Content[0])

	case yaml.ScalarNode:
		return decodeScalar(node)

	case yaml.SequenceNode:
		seq := make(Sequence, 0, len(node.Content))

		for _, item := range node.Content {
			n, err := decode(item)
			if err != nil {
				return nil, err
			}

			seq = append(seq, n)
		}

		return seq, nil

	case yaml.MappingNode:
		// Content holds alternating key/value nodes, so a single-key
		// map has exactly two entries.
		if len(node.Content) != 2 {
			return nil, fmt.Errorf("line %d: expected a single-key map, got %d keys",
				node.Line, len(node.Content)/2)
		}

		var key string

		err := node.Content[0].Decode(&key)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid map key: %w", node.Line, err)
		}

		value, err := decode(node.Content[1])
		if err != nil {
			return nil, err
		}

		return Mapping{Key: key, Value: value}, nil

	case yaml.AliasNode:
		return decode(node.Alias)

	default:
		return nil, fmt.Errorf("line %d: unsupported node kind %v", node.Line, node.Kind)
	}
}

// decodeScalar resolves the scalar type from the YAML short tag.
func decodeScalar(node *yaml.Node) (Node, error) {
	switch node.ShortTag() {
	case "!!str":
		var v string

		err := node.Decode(&v)
		if err != nil {
			return nil, err
		}

		return Str(v), nil

	case "!!int":
		var v int64

		err := node.Decode(&v)
		if err != nil {
			return nil, err
		}

		return Int(v), nil

	case "!!float":
		var v float64

		err := node.Decode(&v)
		if err != nil {
			return nil, err
		}

		return Float(v), nil

	case "!!bool":
		var v bool

		err := node.Decode(&v)
		if err != nil {
			return nil, err
		}

		return Bool(v), nil

	default:
		return nil, fmt.Errorf("line %d: unsupported scalar %q (tag %s)",
			node.Line, node.Value, node.ShortTag())
	}
}
