package registrar

// DomainStatus is the tri-state availability status reported by the API.
// The API reports "unknown" when it could not reach the upstream registry
// (e.g. under rate limiting); that status is passed through untouched.
type DomainStatus string

const (
	StatusAvailable  DomainStatus = "available"
	StatusRegistered DomainStatus = "registered"
	StatusUnknown    DomainStatus = "unknown"
)

// LookupResult is the response shape of GET /api/v1/lookup/{domain}.
// Prices are pointers: a nil price means the API did not report one,
// which is distinct from a price of zero.
type LookupResult struct {
	Domain          string        `json:"domain"`
	Available       bool          `json:"available"`
	Status          DomainStatus  `json:"status"`
	CheckedAt       string        `json:"checked_at,omitempty"`
	ExpiresAt       string        `json:"expires_at,omitempty"`
	PurchasePrice   *float64      `json:"purchase_price,omitempty"`
	RenewalPrice    *float64      `json:"renewal_price,omitempty"`
	Premium         bool          `json:"premium"`
	Cached          bool          `json:"cached"`
	CacheAgeSeconds *int          `json:"cache_age_seconds,omitempty"`
	Alternatives    []Alternative `json:"alternatives,omitempty"`
}

// Alternative is a suggested substitute for a taken domain.
type Alternative struct {
	Domain        string   `json:"domain"`
	Available     bool     `json:"available"`
	PurchasePrice *float64 `json:"purchase_price,omitempty"`
}

// TLDResult is one per-TLD row of an explore response.
type TLDResult struct {
	Domain        string   `json:"domain"`
	TLD           string   `json:"tld"`
	Available     bool     `json:"available"`
	Premium       bool     `json:"premium"`
	PurchasePrice *float64 `json:"purchase_price,omitempty"`
	RenewalPrice  *float64 `json:"renewal_price,omitempty"`
}

// ExploreResult is the response shape of GET /api/v1/explore/{name}.
type ExploreResult struct {
	Name           string      `json:"name"`
	Results        []TLDResult `json:"results"`
	AvailableCount int         `json:"available_count"`
	TakenCount     int         `json:"taken_count"`
	Summary        string      `json:"summary,omitempty"`
}

// Suggestion is one idea from a brainstorm response. Available is a pointer
// because the API may return ideas it has not verified.
type Suggestion struct {
	Domain        string   `json:"domain"`
	Available     *bool    `json:"available,omitempty"`
	PurchasePrice *float64 `json:"purchase_price,omitempty"`
	Reason        string   `json:"reason,omitempty"`
}

// BrainstormResult is the response shape of POST /api/v1/brainstorm.
type BrainstormResult struct {
	Suggestions []Suggestion `json:"suggestions"`
}

// AnalyzeResult is the response shape of POST /api/v1/analyze-domain.
type AnalyzeResult struct {
	Domain       string             `json:"domain"`
	OverallScore float64            `json:"overall_score"`
	Scores       map[string]float64 `json:"scores,omitempty"`
	Verdict      string             `json:"verdict,omitempty"`
	Strengths    []string           `json:"strengths,omitempty"`
	Weaknesses   []string           `json:"weaknesses,omitempty"`
}

// SearchHit is one marketplace listing from a search response.
type SearchHit struct {
	Domain        string   `json:"domain"`
	Category      string   `json:"category,omitempty"`
	Premium       bool     `json:"premium"`
	PurchasePrice *float64 `json:"purchase_price,omitempty"`
	RenewalPrice  *float64 `json:"renewal_price,omitempty"`
	ListedAt      string   `json:"listed_at,omitempty"`
}

// SearchResult is the response shape of GET /api/v1/domains/search.
type SearchResult struct {
	Results []SearchHit `json:"results"`
	Total   int         `json:"total"`
}

// Category is one entry of the category listing.
type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	DomainCount int    `json:"domain_count"`
}

// CategoriesResult is the response shape of GET /api/v1/domains/categories.
type CategoriesResult struct {
	Categories []Category `json:"categories"`
}
