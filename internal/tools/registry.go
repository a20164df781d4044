// Package tools implements the assistant-callable domain tools and the
// registry that dispatches them.
package tools

import (
	"encoding/json"

	"github.com/gregm711/agent-domain-service-mcp/internal/schema"
)

// ToolName is the canonical name of a built-in tool.
type ToolName string

const (
	ToolCheckDomain       ToolName = "check_domain"
	ToolExploreName       ToolName = "explore_name"
	ToolBrainstormDomains ToolName = "brainstorm_domains"
	ToolAnalyzeDomain     ToolName = "analyze_domain"
	ToolSearchDomains     ToolName = "search_domains"
	ToolListCategories    ToolName = "list_categories"
)

// Registry holds a set of named tools and exposes them for execution.
// It is immutable after Build; lookups are safe for concurrent use.
type Registry struct {
	tools map[string]schema.Tool
	order []string
}

// Get returns the tool with the given name, or nil.
func (r *Registry) Get(name string) schema.Tool {
	return r.tools[name]
}

// Names returns the registered tool names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

// Definitions returns all tool definitions in MCP tools/list format.
func (r *Registry) Definitions() []map[string]any {
	list := make([]map[string]any, 0, len(r.order))
	for _, name := range r.order {
		t := r.tools[name]
		var params any
		if err := json.Unmarshal(t.Parameters(), &params); err != nil {
			params = map[string]any{"type": "object", "properties": map[string]any{}}
		}
		list = append(list, map[string]any{
			"name":        t.Name(),
			"description": t.Description(),
			"inputSchema": params,
		})
	}
	return list
}
