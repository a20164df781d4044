package tools

import (
	"context"
	"encoding/json"

	"github.com/gregm711/agent-domain-service-mcp/internal/registrar"
)

// ListCategoriesTool lists the registrar's marketplace categories.
type ListCategoriesTool struct {
	client *registrar.Client
}

// NewListCategoriesTool creates a ListCategoriesTool backed by client.
func NewListCategoriesTool(client *registrar.Client) *ListCategoriesTool {
	return &ListCategoriesTool{client: client}
}

func (t *ListCategoriesTool) Name() string { return string(ToolListCategories) }
func (t *ListCategoriesTool) Description() string {
	return "List the marketplace categories usable as search_domains filters."
}

func (t *ListCategoriesTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {}
	}`)
}

func (t *ListCategoriesTool) Execute(ctx context.Context, _ map[string]any) (string, error) {
	res, err := t.client.Categories(ctx)
	if err != nil {
		return "", err
	}
	return formatCategories(res), nil
}
