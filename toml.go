package objprint

import (
	"bytes"
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
)

// ParseTOMLSettings decodes a TOML settings document into options, with the
// same keys and checks as ParseSettings.
//
//	indent = "  "
//	max_depth = 32
func ParseTOMLSettings(data []byte) ([]Option, error) {
	var s Settings
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSettings, err)
	}
	return s.validated()
}
