package tools

import (
	"context"
	"encoding/json"

	"github.com/gregm711/agent-domain-service-mcp/internal/registrar"
)

// AnalyzeDomainTool requests an AI-scored quality analysis for a domain.
type AnalyzeDomainTool struct {
	client *registrar.Client
}

// NewAnalyzeDomainTool creates an AnalyzeDomainTool backed by client.
func NewAnalyzeDomainTool(client *registrar.Client) *AnalyzeDomainTool {
	return &AnalyzeDomainTool{client: client}
}

func (t *AnalyzeDomainTool) Name() string { return string(ToolAnalyzeDomain) }
func (t *AnalyzeDomainTool) Description() string {
	return "Score a domain name on memorability, brandability, and related quality dimensions."
}

func (t *AnalyzeDomainTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"domain": {
				"type": "string",
				"description": "Domain to analyze, e.g. example.com"
			}
		},
		"required": ["domain"]
	}`)
}

type analyzeDomainArgs struct {
	Domain string `mapstructure:"domain"`
}

func (t *AnalyzeDomainTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	var a analyzeDomainArgs
	if err := decodeArgs(args, &a); err != nil {
		return "", err
	}
	if err := requireString(a.Domain, "domain"); err != nil {
		return "", err
	}

	res, err := t.client.Analyze(ctx, a.Domain)
	if err != nil {
		return "", err
	}
	return formatAnalyze(res), nil
}
