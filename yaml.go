package jval

import (
	"gopkg.in/yaml.v3"
)

// FromYAML decodes the first YAML document in data. An empty document is
// Null. YAML-only constructs without a JSON counterpart (custom tags,
// non-scalar mapping keys) fail with CodeNotJSONValue.
func FromYAML(data []byte, opts ...DecodeOpt) (Value, error) {
	var n yaml.Node
	if err := yaml.Unmarshal(data, &n); err != nil {
		return Value{}, singleIssue(CodeParseError, "/", err)
	}
	if n.Kind == 0 {
		return Null(), nil
	}
	return DecodeShape(yamlShape{&n}, opts...)
}

// ToYAML encodes v as a YAML document with sorted keys.
func ToYAML(v Value) ([]byte, error) { return yaml.Marshal(v.Raw()) }

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (any, error) { return v.Raw(), nil }

// UnmarshalYAML implements yaml.Unmarshaler. yaml.v3 does not call
// unmarshalers for null nodes, so a null struct field stays absent.
func (v *Value) UnmarshalYAML(n *yaml.Node) error {
	out, err := DecodeShape(yamlShape{n})
	if err != nil {
		return err
	}
	*v = out
	return nil
}

type yamlShape struct{ n *yaml.Node }

// node resolves documents and aliases to the node carrying the content.
func (y yamlShape) node() *yaml.Node {
	n := y.n
	for n != nil {
		switch {
		case n.Kind == yaml.DocumentNode && len(n.Content) == 1:
			n = n.Content[0]
		case n.Kind == yaml.AliasNode:
			n = n.Alias
		default:
			return n
		}
	}
	return nil
}

func (y yamlShape) scalar(tags ...string) *yaml.Node {
	n := y.node()
	if n == nil || n.Kind != yaml.ScalarNode {
		return nil
	}
	tag := n.ShortTag()
	for _, t := range tags {
		if tag == t {
			return n
		}
	}
	return nil
}

func (y yamlShape) Null() bool { return y.scalar("!!null") != nil }

func (y yamlShape) Bool() (bool, bool) {
	n := y.scalar("!!bool")
	if n == nil {
		return false, false
	}
	var b bool
	if err := n.Decode(&b); err != nil {
		return false, false
	}
	return b, true
}

func (y yamlShape) Number() (float64, bool) {
	n := y.scalar("!!int", "!!float")
	if n == nil {
		return 0, false
	}
	var f float64
	if err := n.Decode(&f); err != nil {
		return 0, false
	}
	return f, true
}

func (y yamlShape) String() (string, bool) {
	n := y.scalar("!!str", "!!timestamp", "!!binary")
	if n == nil {
		return "", false
	}
	return n.Value, true
}

func (y yamlShape) Array() ([]Shape, bool) {
	n := y.node()
	if n == nil || n.Kind != yaml.SequenceNode {
		return nil, false
	}
	out := make([]Shape, len(n.Content))
	for i, c := range n.Content {
		out[i] = yamlShape{c}
	}
	return out, true
}

func (y yamlShape) Object() (map[string]Shape, bool) {
	n := y.node()
	if n == nil || n.Kind != yaml.MappingNode {
		return nil, false
	}
	out := make(map[string]Shape, len(n.Content)/2)
	var merges []*yaml.Node
	for i := 0; i+1 < len(n.Content); i += 2 {
		k := yamlShape{n.Content[i]}.node()
		if k == nil || k.Kind != yaml.ScalarNode {
			return nil, false
		}
		if k.ShortTag() == "!!merge" {
			merges = append(merges, n.Content[i+1])
			continue
		}
		out[k.Value] = yamlShape{n.Content[i+1]}
	}
	// Explicit keys win over merged ones.
	for _, m := range merges {
		var sources []*yaml.Node
		mn := yamlShape{m}.node()
		switch {
		case mn == nil:
			return nil, false
		case mn.Kind == yaml.SequenceNode:
			sources = mn.Content
		default:
			sources = []*yaml.Node{mn}
		}
		for _, src := range sources {
			members, ok := yamlShape{src}.Object()
			if !ok {
				return nil, false
			}
			for k, s := range members {
				if _, exists := out[k]; !exists {
					out[k] = s
				}
			}
		}
	}
	return out, true
}
