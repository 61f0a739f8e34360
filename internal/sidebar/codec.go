package sidebar

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// MarshalYAML emits the sidebar as a mapping in declaration order.
func (c Config) MarshalYAML() (any, error) {
	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, e := range c {
		groups := &yaml.Node{}
		if err := groups.Encode(normalizeGroups(e.Groups)); err != nil {
			return nil, fmt.Errorf("encode sidebar %q: %w", e.Prefix, err)
		}
		root.Content = append(root.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Prefix},
			groups,
		)
	}
	return root, nil
}

// UnmarshalYAML decodes a mapping keeping key order. Duplicate prefixes are rejected.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode && value.Tag == "!!null" {
		*c = nil
		return nil
	}
	if value.Kind != yaml.MappingNode {
		return fmt.Errorf("sidebar: line %d: expected a mapping of prefix to groups", value.Line)
	}

	out := make(Config, 0, len(value.Content)/2)
	seen := make(map[string]int, len(value.Content)/2)
	for i := 0; i+1 < len(value.Content); i += 2 {
		key, val := value.Content[i], value.Content[i+1]
		if line, dup := seen[key.Value]; dup {
			return fmt.Errorf("sidebar: line %d: prefix %q already defined at line %d", key.Line, key.Value, line)
		}
		seen[key.Value] = key.Line

		var groups []Group
		if err := val.Decode(&groups); err != nil {
			return fmt.Errorf("sidebar %q: %w", key.Value, err)
		}
		out = append(out, Entry{Prefix: key.Value, Groups: groups})
	}
	*c = out
	return nil
}

// MarshalJSON emits an object whose keys follow declaration order.
func (c Config) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range c {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(e.Prefix)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(normalizeGroups(e.Groups))
		if err != nil {
			return nil, fmt.Errorf("encode sidebar %q: %w", e.Prefix, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object keeping key order. Duplicate prefixes are rejected.
func (c *Config) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*c = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("sidebar: expected an object of prefix to groups")
	}

	out := Config{}
	seen := make(map[string]struct{})
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		prefix, _ := tok.(string)
		if _, dup := seen[prefix]; dup {
			return fmt.Errorf("sidebar: prefix %q already defined", prefix)
		}
		seen[prefix] = struct{}{}

		var groups []Group
		if err := dec.Decode(&groups); err != nil {
			return fmt.Errorf("sidebar %q: %w", prefix, err)
		}
		out = append(out, Entry{Prefix: prefix, Groups: groups})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*c = out
	return nil
}

// normalizeGroups replaces nil slices so both codecs emit [] instead of null.
func normalizeGroups(groups []Group) []Group {
	out := make([]Group, len(groups))
	for i, g := range groups {
		children := g.Children
		if children == nil {
			children = []string{}
		}
		out[i] = Group{Text: g.Text, Children: children}
	}
	return out
}
