package tools

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func newTestDispatcher(t *testing.T, tools ...*stubTool) *Dispatcher {
	t.Helper()
	b := NewRegistryBuilder()
	for _, tool := range tools {
		b.WithTool(tool)
	}
	reg, err := b.Build()
	if err != nil {
		t.Fatalf("build registry: %v", err)
	}
	return NewDispatcher(reg)
}

func TestDispatcher_UnknownTool(t *testing.T) {
	d := newTestDispatcher(t)

	res := d.Call(context.Background(), "nope", nil)
	if !res.IsError {
		t.Fatal("expected error-flagged result")
	}
	if len(res.Content) != 1 || res.Content[0].Type != "text" {
		t.Fatalf("unexpected content: %+v", res.Content)
	}
	if !strings.Contains(res.Content[0].Text, "Unknown tool: nope") {
		t.Errorf("expected unknown tool message with name, got %q", res.Content[0].Text)
	}
}

func TestDispatcher_ToolErrorBecomesResult(t *testing.T) {
	d := newTestDispatcher(t, &stubTool{name: "fails", err: errors.New("registrar API: 500 Internal Server Error")})

	res := d.Call(context.Background(), "fails", nil)
	if !res.IsError {
		t.Fatal("expected error-flagged result")
	}
	text := res.Content[0].Text
	if !strings.HasPrefix(text, "Error: ") {
		t.Errorf("expected Error prefix, got %q", text)
	}
	if !strings.Contains(text, "500 Internal Server Error") {
		t.Errorf("expected status text preserved, got %q", text)
	}
}

func TestDispatcher_Success(t *testing.T) {
	d := newTestDispatcher(t, &stubTool{name: "ok", text: "Domain: x.com"})

	res := d.Call(context.Background(), "ok", map[string]any{})
	if res.IsError {
		t.Fatalf("unexpected error result: %+v", res)
	}
	if len(res.Content) != 1 || res.Content[0].Text != "Domain: x.com" {
		t.Errorf("unexpected content: %+v", res.Content)
	}
}
