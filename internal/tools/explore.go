package tools

import (
	"context"
	"encoding/json"

	"github.com/gregm711/agent-domain-service-mcp/internal/registrar"
)

// ExploreNameTool checks a base name across the registrar's TLD set.
type ExploreNameTool struct {
	client *registrar.Client
}

// NewExploreNameTool creates an ExploreNameTool backed by client.
func NewExploreNameTool(client *registrar.Client) *ExploreNameTool {
	return &ExploreNameTool{client: client}
}

func (t *ExploreNameTool) Name() string { return string(ToolExploreName) }
func (t *ExploreNameTool) Description() string {
	return "Check a base name (without TLD) across popular TLDs and report availability and pricing per TLD."
}

func (t *ExploreNameTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"name": {
				"type": "string",
				"description": "Base name without TLD, e.g. mycoolapp"
			}
		},
		"required": ["name"]
	}`)
}

type exploreNameArgs struct {
	Name string `mapstructure:"name"`
}

func (t *ExploreNameTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	var a exploreNameArgs
	if err := decodeArgs(args, &a); err != nil {
		return "", err
	}
	if err := requireString(a.Name, "name"); err != nil {
		return "", err
	}

	res, err := t.client.Explore(ctx, a.Name)
	if err != nil {
		return "", err
	}
	return formatExplore(res), nil
}
