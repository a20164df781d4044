package tools

import (
	"context"
	"encoding/json"

	"github.com/gregm711/agent-domain-service-mcp/internal/registrar"
)

const (
	brainstormDefaultCount = 10
	brainstormMaxCount     = 20
)

// BrainstormDomainsTool asks the registrar API to generate domain ideas
// from a natural-language description.
type BrainstormDomainsTool struct {
	client *registrar.Client
}

// NewBrainstormDomainsTool creates a BrainstormDomainsTool backed by client.
func NewBrainstormDomainsTool(client *registrar.Client) *BrainstormDomainsTool {
	return &BrainstormDomainsTool{client: client}
}

func (t *BrainstormDomainsTool) Name() string { return string(ToolBrainstormDomains) }
func (t *BrainstormDomainsTool) Description() string {
	return "Generate domain name ideas for a project or business described in plain language."
}

func (t *BrainstormDomainsTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"description": {
				"type": "string",
				"description": "What the project or business is about"
			},
			"count": {
				"type": "integer",
				"description": "Number of suggestions (1-20, default 10)",
				"minimum": 1,
				"maximum": 20
			}
		},
		"required": ["description"]
	}`)
}

type brainstormArgs struct {
	Description string `mapstructure:"description"`
	Count       *int   `mapstructure:"count"`
}

func (t *BrainstormDomainsTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	var a brainstormArgs
	if err := decodeArgs(args, &a); err != nil {
		return "", err
	}
	if err := requireString(a.Description, "description"); err != nil {
		return "", err
	}

	count := brainstormDefaultCount
	if a.Count != nil {
		count = *a.Count
	}
	if count < 1 {
		count = 1
	}
	if count > brainstormMaxCount {
		count = brainstormMaxCount
	}

	res, err := t.client.Brainstorm(ctx, a.Description, count)
	if err != nil {
		return "", err
	}
	return formatBrainstorm(res), nil
}
