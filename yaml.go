package objprint

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseSettings decodes a YAML settings document into options. Unknown keys
// and a negative max_depth are rejected. An empty document yields no options.
func ParseSettings(data []byte) ([]Option, error) {
	var s Settings
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return s.validated()
}

// AsYAML renders v as single-line flow-style YAML. Values YAML cannot encode
// fall back to their natural text form.
func AsYAML(v any) string {
	var node yaml.Node
	if err := node.Encode(v); err != nil {
		return fmt.Sprintf("%v", v)
	}
	flow(&node)
	out, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return strings.TrimRight(string(out), "\n")
}

func flow(n *yaml.Node) {
	if n.Kind == yaml.MappingNode || n.Kind == yaml.SequenceNode {
		n.Style |= yaml.FlowStyle
	}
	for _, c := range n.Content {
		flow(c)
	}
}
