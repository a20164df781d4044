package tools

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/gregm711/agent-domain-service-mcp/internal/schema"
)

// Dispatcher resolves tool names against a Registry and executes calls.
// It is the single failure boundary: tool errors become error-flagged
// results here and never propagate to the protocol layer.
type Dispatcher struct {
	registry *Registry
}

// NewDispatcher creates a Dispatcher over registry.
func NewDispatcher(registry *Registry) *Dispatcher {
	return &Dispatcher{registry: registry}
}

// Call executes the named tool with the given arguments.
func (d *Dispatcher) Call(ctx context.Context, name string, args map[string]any) schema.CallResult {
	log := slog.With("tool", name, "call_id", uuid.NewString())

	tool := d.registry.Get(name)
	if tool == nil {
		log.Warn("unknown tool requested")
		return schema.ErrorResult("Unknown tool: " + name)
	}

	start := time.Now()
	text, err := tool.Execute(ctx, args)
	if err != nil {
		log.Error("tool call failed", "err", err, "duration", time.Since(start))
		return schema.ErrorResult("Error: " + err.Error())
	}
	log.Debug("tool call completed", "duration", time.Since(start))
	return schema.TextResult(text)
}
