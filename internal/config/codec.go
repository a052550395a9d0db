package config

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// The ConfigMap crosses two process boundaries unmodified: submitting
// client to cluster master, master to each worker. Both encodings below
// preserve insertion order so a round trip reproduces the same document
// byte for byte.

// MarshalYAML encodes the map as an ordered YAML mapping.
func (c *ConfigMap) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range c.keys {
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}
		valNode := &yaml.Node{}
		if err := valNode.Encode(c.values[k]); err != nil {
			return nil, fmt.Errorf("encode value for key %q: %w", k, err)
		}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

// UnmarshalYAML decodes a YAML mapping, keeping document order. The
// decoded map is open.
func (c *ConfigMap) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("config document must be a mapping, got %s", node.Tag)
	}
	*c = ConfigMap{values: make(map[string]interface{})}
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		var value interface{}
		if err := node.Content[i+1].Decode(&value); err != nil {
			return fmt.Errorf("decode value for key %q: %w", key, err)
		}
		c.Set(key, value)
	}
	return nil
}

// MarshalJSON encodes the map as a JSON object in insertion order.
func (c *ConfigMap) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range c.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(c.values[k])
		if err != nil {
			return nil, fmt.Errorf("encode value for key %q: %w", k, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object with the token stream so that key
// order survives. Numbers decode as float64, which every numeric
// validator accepts. The decoded map is open.
func (c *ConfigMap) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("config document must be a JSON object, got %v", tok)
	}
	*c = ConfigMap{values: make(map[string]interface{})}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key := tok.(string)
		var value interface{}
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("decode value for key %q: %w", key, err)
		}
		c.Set(key, value)
	}
	_, err = dec.Token() // closing brace
	return err
}
