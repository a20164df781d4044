package tools

import (
	"context"
	"encoding/json"

	"github.com/gregm711/agent-domain-service-mcp/internal/registrar"
)

// CheckDomainTool looks up availability and pricing for a single
// fully-qualified domain.
type CheckDomainTool struct {
	client *registrar.Client
}

// NewCheckDomainTool creates a CheckDomainTool backed by client.
func NewCheckDomainTool(client *registrar.Client) *CheckDomainTool {
	return &CheckDomainTool{client: client}
}

func (t *CheckDomainTool) Name() string { return string(ToolCheckDomain) }
func (t *CheckDomainTool) Description() string {
	return "Check whether a specific domain (e.g. example.com) is available for registration, with pricing."
}

func (t *CheckDomainTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"domain": {
				"type": "string",
				"description": "Fully-qualified domain to check, e.g. example.com"
			}
		},
		"required": ["domain"]
	}`)
}

type checkDomainArgs struct {
	Domain string `mapstructure:"domain"`
}

func (t *CheckDomainTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	var a checkDomainArgs
	if err := decodeArgs(args, &a); err != nil {
		return "", err
	}
	if err := requireString(a.Domain, "domain"); err != nil {
		return "", err
	}

	res, err := t.client.Lookup(ctx, a.Domain)
	if err != nil {
		return "", err
	}
	return formatLookup(res), nil
}
