package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gregm711/agent-domain-service-mcp/internal/registrar"
)

const searchMaxLimit = 100

var searchSortValues = map[string]bool{
	"price_asc":  true,
	"price_desc": true,
	"newest":     true,
}

// SearchDomainsTool queries the registrar's marketplace listing with
// optional filters. Absent filters are omitted from the outbound request.
type SearchDomainsTool struct {
	client *registrar.Client
}

// NewSearchDomainsTool creates a SearchDomainsTool backed by client.
func NewSearchDomainsTool(client *registrar.Client) *SearchDomainsTool {
	return &SearchDomainsTool{client: client}
}

func (t *SearchDomainsTool) Name() string { return string(ToolSearchDomains) }
func (t *SearchDomainsTool) Description() string {
	return "Search listed domains by category, price range, and TLD. All filters are optional."
}

func (t *SearchDomainsTool) Parameters() json.RawMessage {
	return json.RawMessage(`{
		"type": "object",
		"properties": {
			"category": {
				"type": "string",
				"description": "Marketplace category ID (see list_categories)"
			},
			"max_price": {
				"type": "number",
				"description": "Maximum purchase price in USD"
			},
			"min_price": {
				"type": "number",
				"description": "Minimum purchase price in USD"
			},
			"tlds": {
				"type": "array",
				"items": {"type": "string"},
				"description": "Restrict results to these TLDs, e.g. [\"com\", \"io\"]"
			},
			"sort": {
				"type": "string",
				"enum": ["price_asc", "price_desc", "newest"]
			},
			"limit": {
				"type": "integer",
				"description": "Maximum results (1-100)",
				"minimum": 1,
				"maximum": 100
			}
		}
	}`)
}

type searchDomainsArgs struct {
	Category string   `mapstructure:"category"`
	MaxPrice *float64 `mapstructure:"max_price"`
	MinPrice *float64 `mapstructure:"min_price"`
	TLDs     []string `mapstructure:"tlds"`
	Sort     string   `mapstructure:"sort"`
	Limit    *int     `mapstructure:"limit"`
}

func (t *SearchDomainsTool) Execute(ctx context.Context, args map[string]any) (string, error) {
	var a searchDomainsArgs
	if err := decodeArgs(args, &a); err != nil {
		return "", err
	}
	if a.Sort != "" && !searchSortValues[a.Sort] {
		return "", fmt.Errorf("sort must be one of price_asc, price_desc, newest")
	}

	filter := registrar.SearchFilter{
		Category: a.Category,
		MaxPrice: a.MaxPrice,
		MinPrice: a.MinPrice,
		TLDs:     a.TLDs,
		Sort:     a.Sort,
	}
	if a.Limit != nil {
		limit := *a.Limit
		if limit < 1 {
			limit = 1
		}
		if limit > searchMaxLimit {
			limit = searchMaxLimit
		}
		filter.Limit = limit
	}

	res, err := t.client.Search(ctx, filter)
	if err != nil {
		return "", err
	}
	return formatSearch(res), nil
}
