package tools

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
)

// stubTool is a minimal schema.Tool for registry and dispatcher tests.
type stubTool struct {
	name   string
	params string
	text   string
	err    error
}

func (s *stubTool) Name() string        { return s.name }
func (s *stubTool) Description() string { return "stub: " + s.name }
func (s *stubTool) Parameters() json.RawMessage {
	if s.params == "" {
		return json.RawMessage(`{"type": "object", "properties": {}}`)
	}
	return json.RawMessage(s.params)
}
func (s *stubTool) Execute(context.Context, map[string]any) (string, error) {
	return s.text, s.err
}

func TestRegistryBuilder_Build(t *testing.T) {
	reg, err := NewRegistryBuilder().
		WithTool(&stubTool{name: "alpha"}).
		WithTool(&stubTool{name: "beta"}).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if reg.Get("alpha") == nil || reg.Get("beta") == nil {
		t.Error("registered tools not found")
	}
	if reg.Get("gamma") != nil {
		t.Error("unregistered tool returned")
	}
	if names := reg.Names(); len(names) != 2 || names[0] != "alpha" || names[1] != "beta" {
		t.Errorf("expected registration order preserved, got %v", names)
	}
}

func TestRegistryBuilder_ReplacesDuplicates(t *testing.T) {
	reg, err := NewRegistryBuilder().
		WithTool(&stubTool{name: "alpha", text: "first"}).
		WithTool(&stubTool{name: "alpha", text: "second"}).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(reg.Names()) != 1 {
		t.Fatalf("expected one tool, got %v", reg.Names())
	}
	text, _ := reg.Get("alpha").Execute(context.Background(), nil)
	if text != "second" {
		t.Errorf("expected later registration to win, got %q", text)
	}
}

func TestRegistryBuilder_RejectsMalformedSchema(t *testing.T) {
	_, err := NewRegistryBuilder().
		WithTool(&stubTool{name: "broken", params: `{"type": "object",`}).
		Build()
	if err == nil {
		t.Fatal("expected error for malformed schema literal")
	}
	if !strings.Contains(err.Error(), "broken") {
		t.Errorf("expected tool name in error, got %q", err.Error())
	}
}

func TestRegistry_Definitions(t *testing.T) {
	reg, err := NewRegistryBuilder().
		WithTool(&stubTool{name: "alpha", params: `{"type":"object","properties":{"x":{"type":"string"}},"required":["x"]}`}).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	defs := reg.Definitions()
	if len(defs) != 1 {
		t.Fatalf("expected one definition, got %d", len(defs))
	}
	def := defs[0]
	if def["name"] != "alpha" {
		t.Errorf("expected name alpha, got %v", def["name"])
	}
	if def["description"] != "stub: alpha" {
		t.Errorf("unexpected description: %v", def["description"])
	}
	schema, ok := def["inputSchema"].(map[string]any)
	if !ok {
		t.Fatalf("inputSchema not an object: %T", def["inputSchema"])
	}
	if schema["type"] != "object" {
		t.Errorf("unexpected schema: %v", schema)
	}
}
