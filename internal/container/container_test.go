package container

import (
	"testing"

	"github.com/gregm711/agent-domain-service-mcp/internal/config"
)

func TestNew_WiresAllServices(t *testing.T) {
	cfg := config.DefaultConfig()

	c, err := New(&cfg, "test")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if c.RegistrarClient() == nil {
		t.Error("registrar client not wired")
	}
	if c.Dispatcher() == nil {
		t.Error("dispatcher not wired")
	}
	if c.Server() == nil {
		t.Error("server not wired")
	}

	names := c.ToolRegistry().Names()
	if len(names) != 6 {
		t.Fatalf("expected 6 tools, got %d: %v", len(names), names)
	}
	want := []string{
		"check_domain",
		"explore_name",
		"brainstorm_domains",
		"analyze_domain",
		"search_domains",
		"list_categories",
	}
	for i, name := range want {
		if names[i] != name {
			t.Errorf("tool %d: expected %s, got %s", i, name, names[i])
		}
	}
}
