package tools

import (
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// decodeArgs decodes a raw tool-argument map into a typed argument struct.
// WeaklyTypedInput lets JSON numbers (always float64) land in int fields.
func decodeArgs(input map[string]any, out any) error {
	cfg := &mapstructure.DecoderConfig{
		TagName:          "mapstructure",
		Result:           out,
		WeaklyTypedInput: true,
	}
	decoder, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		return err
	}
	if err := decoder.Decode(input); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}
	return nil
}

// requireString guards a required string argument before any network call.
func requireString(value, name string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%s is required", name)
	}
	return nil
}
