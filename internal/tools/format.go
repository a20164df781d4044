package tools

import (
	"fmt"
	"sort"
	"strings"

	"github.com/gregm711/agent-domain-service-mcp/internal/registrar"
)

// The formatters below are pure: they render whatever the API returned and
// never fail. Optional fields that are absent are simply left out of the
// output, never printed as placeholders.

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

func price(v float64) string {
	return registrar.FormatAmount(v)
}

// formatLookup renders a single-domain lookup as assistant-readable text.
func formatLookup(r *registrar.LookupResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Domain: %s\n", r.Domain)
	fmt.Fprintf(&sb, "Status: %s\n", strings.ToUpper(string(r.Status)))
	fmt.Fprintf(&sb, "Available: %s\n", yesNo(r.Available))
	if r.PurchasePrice != nil {
		fmt.Fprintf(&sb, "Purchase Price: $%s\n", price(*r.PurchasePrice))
	}
	if r.RenewalPrice != nil {
		fmt.Fprintf(&sb, "Renewal Price: $%s/year\n", price(*r.RenewalPrice))
	}
	if r.Premium {
		sb.WriteString("Premium: priced above standard registration tiers\n")
	}
	if r.CheckedAt != "" {
		fmt.Fprintf(&sb, "Checked At: %s\n", r.CheckedAt)
	}
	if r.ExpiresAt != "" {
		fmt.Fprintf(&sb, "Expires At: %s\n", r.ExpiresAt)
	}
	if r.Cached {
		if r.CacheAgeSeconds != nil {
			fmt.Fprintf(&sb, "Served from registry cache (age %ds)\n", *r.CacheAgeSeconds)
		} else {
			sb.WriteString("Served from registry cache\n")
		}
	}
	if len(r.Alternatives) > 0 {
		sb.WriteString("\nAlternatives:\n")
		for _, alt := range r.Alternatives {
			sb.WriteString("  - " + alt.Domain)
			if alt.Available {
				sb.WriteString(" (available")
				if alt.PurchasePrice != nil {
					sb.WriteString(", $" + price(*alt.PurchasePrice))
				}
				sb.WriteString(")")
			} else {
				sb.WriteString(" (taken)")
			}
			sb.WriteString("\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// formatExplore renders one line per TLD plus the aggregate counts.
func formatExplore(r *registrar.ExploreResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Results for: %s\n\n", r.Name)
	for _, row := range r.Results {
		if row.Available {
			sb.WriteString("✓ " + row.Domain)
			if row.PurchasePrice != nil {
				sb.WriteString(" $" + price(*row.PurchasePrice))
				if row.RenewalPrice != nil {
					fmt.Fprintf(&sb, " (renews $%s/year)", price(*row.RenewalPrice))
				}
			}
			if row.Premium {
				sb.WriteString(" [premium]")
			}
		} else {
			sb.WriteString("✗ " + row.Domain + " taken")
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "\nAvailable: %d, Taken: %d\n", r.AvailableCount, r.TakenCount)
	if r.Summary != "" {
		sb.WriteString(r.Summary + "\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// formatBrainstorm renders a numbered suggestion list.
func formatBrainstorm(r *registrar.BrainstormResult) string {
	if len(r.Suggestions) == 0 {
		return "No suggestions generated."
	}
	var sb strings.Builder
	sb.WriteString("Domain suggestions:\n\n")
	for i, s := range r.Suggestions {
		fmt.Fprintf(&sb, "%d. %s", i+1, s.Domain)
		if s.Available != nil {
			if *s.Available {
				sb.WriteString(" (available")
				if s.PurchasePrice != nil {
					sb.WriteString(", $" + price(*s.PurchasePrice))
				}
				sb.WriteString(")")
			} else {
				sb.WriteString(" (taken)")
			}
		}
		sb.WriteString("\n")
		if s.Reason != "" {
			fmt.Fprintf(&sb, "   %s\n", s.Reason)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// formatAnalyze renders the per-dimension scores in a stable order.
func formatAnalyze(r *registrar.AnalyzeResult) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Analysis for: %s\n", r.Domain)
	fmt.Fprintf(&sb, "Overall Score: %s/10\n", price(r.OverallScore))
	if len(r.Scores) > 0 {
		sb.WriteString("\nScores:\n")
		keys := make([]string, 0, len(r.Scores))
		for k := range r.Scores {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(&sb, "  %s: %s/10\n", k, price(r.Scores[k]))
		}
	}
	if len(r.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		for _, s := range r.Strengths {
			sb.WriteString("  + " + s + "\n")
		}
	}
	if len(r.Weaknesses) > 0 {
		sb.WriteString("\nWeaknesses:\n")
		for _, s := range r.Weaknesses {
			sb.WriteString("  - " + s + "\n")
		}
	}
	if r.Verdict != "" {
		fmt.Fprintf(&sb, "\nVerdict: %s\n", r.Verdict)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// formatSearch renders a numbered listing of search hits.
func formatSearch(r *registrar.SearchResult) string {
	if len(r.Results) == 0 {
		return "No domains matched the given filters."
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Found %d domains", r.Total)
	if r.Total != len(r.Results) {
		fmt.Fprintf(&sb, " (showing %d)", len(r.Results))
	}
	sb.WriteString(":\n\n")
	for i, hit := range r.Results {
		fmt.Fprintf(&sb, "%d. %s", i+1, hit.Domain)
		if hit.PurchasePrice != nil {
			sb.WriteString(" $" + price(*hit.PurchasePrice))
		}
		if hit.RenewalPrice != nil {
			fmt.Fprintf(&sb, " (renews $%s/year)", price(*hit.RenewalPrice))
		}
		if hit.Premium {
			sb.WriteString(" [premium]")
		}
		if hit.Category != "" {
			fmt.Fprintf(&sb, " [%s]", hit.Category)
		}
		sb.WriteString("\n")
	}
	return strings.TrimRight(sb.String(), "\n")
}

// formatCategories renders the category listing.
func formatCategories(r *registrar.CategoriesResult) string {
	if len(r.Categories) == 0 {
		return "No categories available."
	}
	var sb strings.Builder
	sb.WriteString("Domain categories:\n\n")
	for _, c := range r.Categories {
		sb.WriteString("- " + c.Name)
		if c.ID != "" && c.ID != c.Name {
			fmt.Fprintf(&sb, " (%s)", c.ID)
		}
		if c.DomainCount > 0 {
			fmt.Fprintf(&sb, ": %d domains", c.DomainCount)
		}
		sb.WriteString("\n")
		if c.Description != "" {
			fmt.Fprintf(&sb, "  %s\n", c.Description)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
