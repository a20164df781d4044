// Package registrar implements the HTTP client for the remote
// domain-registration API that backs every tool call.
package registrar

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const clientUserAgent = "domainmcp/0.1.0"

// APIError is returned for any non-success HTTP status from the registrar API.
type APIError struct {
	StatusCode int
	Status     string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("registrar API: %s", e.Status)
}

// Client issues requests against the registrar API. All methods are safe for
// concurrent use; the client holds no per-request state.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a Client for the API at baseURL.
// apiKey may be empty; timeout <= 0 falls back to 30 seconds.
func NewClient(baseURL, apiKey string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Lookup checks availability and pricing for a single domain.
func (c *Client) Lookup(ctx context.Context, domain string) (*LookupResult, error) {
	var out LookupResult
	if err := c.get(ctx, "/api/v1/lookup/"+url.PathEscape(domain), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Explore checks a base name across the registrar's TLD set.
func (c *Client) Explore(ctx context.Context, name string) (*ExploreResult, error) {
	var out ExploreResult
	if err := c.get(ctx, "/api/v1/explore/"+url.PathEscape(name), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Brainstorm asks the API to generate count domain ideas for prompt.
// Callers are responsible for clamping count to the documented maximum.
func (c *Client) Brainstorm(ctx context.Context, prompt string, count int) (*BrainstormResult, error) {
	body := map[string]any{"prompt": prompt, "count": count}
	var out BrainstormResult
	if err := c.post(ctx, "/api/v1/brainstorm", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Analyze requests an AI-scored quality analysis for a domain.
func (c *Client) Analyze(ctx context.Context, domain string) (*AnalyzeResult, error) {
	body := map[string]any{"domain": domain}
	var out AnalyzeResult
	if err := c.post(ctx, "/api/v1/analyze-domain", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Search queries the marketplace listing with the given filters.
func (c *Client) Search(ctx context.Context, filter SearchFilter) (*SearchResult, error) {
	var out SearchResult
	if err := c.get(ctx, "/api/v1/domains/search", filter.query(), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Categories lists the marketplace categories.
func (c *Client) Categories(ctx context.Context) (*CategoriesResult, error) {
	var out CategoriesResult
	if err := c.get(ctx, "/api/v1/domains/categories", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchFilter holds the optional search parameters. Zero-valued fields are
// omitted from the outbound query string entirely, never sent as empty.
type SearchFilter struct {
	Category string
	MaxPrice *float64
	MinPrice *float64
	TLDs     []string
	Sort     string
	Limit    int
}

func (f SearchFilter) query() url.Values {
	q := url.Values{}
	if f.Category != "" {
		q.Set("category", f.Category)
	}
	if f.MaxPrice != nil {
		q.Set("max_price", FormatAmount(*f.MaxPrice))
	}
	if f.MinPrice != nil {
		q.Set("min_price", FormatAmount(*f.MinPrice))
	}
	if len(f.TLDs) > 0 {
		q.Set("tlds", strings.Join(f.TLDs, ","))
	}
	if f.Sort != "" {
		q.Set("sort", f.Sort)
	}
	if f.Limit > 0 {
		q.Set("limit", strconv.Itoa(f.Limit))
	}
	return q
}

// FormatAmount renders a price without trailing zeros: 12 → "12", 12.5 → "12.5".
func FormatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	if len(query) > 0 {
		req.URL.RawQuery = query.Encode()
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("User-Agent", clientUserAgent)
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Status: resp.Status}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode registrar response: %w", err)
	}
	return nil
}
