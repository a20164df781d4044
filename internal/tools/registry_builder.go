package tools

import (
	"bytes"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/gregm711/agent-domain-service-mcp/internal/schema"
)

// RegistryBuilder accumulates tools during the construction phase.
// Call Build() to produce an immutable Registry ready for use.
type RegistryBuilder struct {
	tools map[string]schema.Tool
	order []string
}

// NewRegistryBuilder returns a fresh RegistryBuilder.
func NewRegistryBuilder() *RegistryBuilder {
	return &RegistryBuilder{tools: make(map[string]schema.Tool)}
}

// WithTool adds a tool and returns the builder, enabling chaining.
// Registering the same name twice replaces the earlier tool.
func (b *RegistryBuilder) WithTool(tool schema.Tool) *RegistryBuilder {
	if _, exists := b.tools[tool.Name()]; !exists {
		b.order = append(b.order, tool.Name())
	}
	b.tools[tool.Name()] = tool

	return b
}

// Build produces an immutable Registry from the accumulated tools.
// Every tool's parameter schema is compiled here so a malformed schema
// literal fails at startup instead of at call time.
func (b *RegistryBuilder) Build() (*Registry, error) {
	compiler := jsonschema.NewCompiler()
	for _, name := range b.order {
		t := b.tools[name]
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(t.Parameters()))
		if err != nil {
			return nil, fmt.Errorf("tool %s: parse parameter schema: %w", name, err)
		}
		res := name + ".schema.json"
		if err := compiler.AddResource(res, doc); err != nil {
			return nil, fmt.Errorf("tool %s: register parameter schema: %w", name, err)
		}
		if _, err := compiler.Compile(res); err != nil {
			return nil, fmt.Errorf("tool %s: compile parameter schema: %w", name, err)
		}
	}

	tools := make(map[string]schema.Tool, len(b.tools))
	for k, v := range b.tools {
		tools[k] = v
	}
	return &Registry{tools: tools, order: append([]string(nil), b.order...)}, nil
}
