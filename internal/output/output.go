// Package output renders a cco.Value as JSON or YAML, preserving the
// Value Tree's ordered objects the way the underlying encoders
// (encoding/json, gopkg.in/yaml.v3) cannot do on their own for a plain
// map.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/denfren/cco/internal/cco"
)

// Format selects the rendering produced by Render.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Render serializes v as format, with indent spaces of indentation.
func Render(v cco.Value, format Format, indent int) ([]byte, error) {
	switch format {
	case FormatJSON:
		return MarshalJSON(v, indent)
	case FormatYAML:
		return MarshalYAML(v, indent)
	default:
		return nil, fmt.Errorf("output: unknown format %q", format)
	}
}

// MarshalJSON renders v as indented JSON, writing ordered objects as
// they appear in the Value Tree rather than the sorted-key order
// encoding/json would otherwise impose on a map.
func MarshalJSON(v cco.Value, indent int) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, v, indent, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeJSON(buf *bytes.Buffer, v cco.Value, indent, depth int) error {
	pad := func(d int) {
		for i := 0; i < indent*d; i++ {
			buf.WriteByte(' ')
		}
	}

	switch t := v.(type) {
	case nil:
		return fmt.Errorf("output: cannot render a nil value")

	case cco.ObjectValue:
		if len(t.Keys) == 0 {
			buf.WriteString("{}")
			return nil
		}
		buf.WriteString("{\n")
		for i, key := range t.Keys {
			pad(depth + 1)
			keyJSON, err := json.Marshal(key)
			if err != nil {
				return err
			}
			buf.Write(keyJSON)
			buf.WriteString(": ")
			field, _ := t.Get(key)
			if err := writeJSON(buf, field, indent, depth+1); err != nil {
				return err
			}
			if i < len(t.Keys)-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		pad(depth)
		buf.WriteByte('}')
		return nil

	case cco.ArrayValue:
		if len(t) == 0 {
			buf.WriteString("[]")
			return nil
		}
		buf.WriteString("[\n")
		for i, elem := range t {
			pad(depth + 1)
			if err := writeJSON(buf, elem, indent, depth+1); err != nil {
				return err
			}
			if i < len(t)-1 {
				buf.WriteByte(',')
			}
			buf.WriteByte('\n')
		}
		pad(depth)
		buf.WriteByte(']')
		return nil

	case cco.BoolValue, cco.IntValue, cco.FloatValue, cco.StringValue:
		leaf, err := json.Marshal(scalarOf(t))
		if err != nil {
			return err
		}
		buf.Write(leaf)
		return nil

	default:
		return fmt.Errorf("output: unrenderable value type %T", v)
	}
}

// scalarOf unwraps a leaf cco.Value into a plain Go value encoding/json
// already knows how to marshal.
func scalarOf(v cco.Value) interface{} {
	switch t := v.(type) {
	case cco.BoolValue:
		return bool(t)
	case cco.IntValue:
		return int64(t)
	case cco.FloatValue:
		return float64(t)
	case cco.StringValue:
		return string(t)
	default:
		return nil
	}
}

// MarshalYAML renders v as YAML, built as a yaml.Node tree so object key
// order survives encoding the way a plain map[string]interface{} cannot
// (grounded on awsqed-config-formatter's structural use of yaml.Node,
// here to preserve order rather than to reorder/format an existing
// document).
func MarshalYAML(v cco.Value, indent int) ([]byte, error) {
	node, err := yamlNodeOf(v)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(node); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func yamlNodeOf(v cco.Value) (*yaml.Node, error) {
	switch t := v.(type) {
	case nil:
		return nil, fmt.Errorf("output: cannot render a nil value")

	case cco.ObjectValue:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range t.Keys {
			keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key}
			field, _ := t.Get(key)
			valNode, err := yamlNodeOf(field)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, keyNode, valNode)
		}
		return node, nil

	case cco.ArrayValue:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, elem := range t {
			elemNode, err := yamlNodeOf(elem)
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, elemNode)
		}
		return node, nil

	case cco.BoolValue, cco.IntValue, cco.FloatValue, cco.StringValue:
		var scalar yaml.Node
		if err := scalar.Encode(scalarOf(t)); err != nil {
			return nil, err
		}
		return &scalar, nil

	default:
		return nil, fmt.Errorf("output: unrenderable value type %T", v)
	}
}
