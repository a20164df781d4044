// Package schema contains the core contracts shared across domainmcp packages.
// Concrete implementations live in their respective packages; this package is the
// single canonical source of truth for every interface definition.
package schema

import (
	"context"
	"encoding/json"
)

// Tool is the interface every assistant-callable tool must satisfy.
type Tool interface {
	Name() string
	Description() string
	// Parameters returns the JSON Schema (as raw JSON bytes) for this tool's arguments.
	Parameters() json.RawMessage
	Execute(ctx context.Context, args map[string]any) (string, error)
}
