// Package persona resolves buyer-persona content and builds
// competitor-displacement recommendations from the static catalogs.
package persona

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/fredao/sales-insights-api/internal/catalog"
)

// maxRecommendations caps the displacement list. The dashboard always
// surfaced the top two; keep that observable behavior.
const maxRecommendations = 2

// Engine answers persona and recommendation queries against an
// immutable catalog. Safe for concurrent use.
type Engine struct {
	catalog *catalog.Catalog
}

func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// ResolveProfile returns the profile for a persona label, falling back
// to the default profile for unknown labels. Matching is exact and
// case-sensitive: "Dev Lead" resolves, "dev lead" does not.
func (e *Engine) ResolveProfile(label string) catalog.PersonaProfile {
	if p, ok := e.catalog.Profile(label); ok {
		return p
	}
	return e.catalog.DefaultProfile()
}

// PersonalizedContent is the composite consumed by rendering: the
// client identity merged with the resolved persona profile.
type PersonalizedContent struct {
	Company string `json:"company"`
	Persona string `json:"persona"`
	catalog.PersonaProfile
}

// BuildPersonalizedContent merges client identity with the resolved
// persona profile. Returns nil when either input is blank; that is a
// defined sentinel, not an error.
func (e *Engine) BuildPersonalizedContent(clientName, personaLabel string) *PersonalizedContent {
	if strings.TrimSpace(clientName) == "" || strings.TrimSpace(personaLabel) == "" {
		return nil
	}
	return &PersonalizedContent{
		Company:        clientName,
		Persona:        personaLabel,
		PersonaProfile: e.ResolveProfile(personaLabel),
	}
}

// Recommendation is a suggested displacement of a competitor product.
// Description, Alignment, and Differentiator stay empty when the
// recommended product is not in the catalog; DetailedDescription falls
// back to generic wording instead.
type Recommendation struct {
	ID                  string `json:"id"`
	Name                string `json:"name"`
	Rationale           string `json:"rationale"`
	Description         string `json:"description"`
	Alignment           string `json:"alignment"`
	Differentiator      string `json:"differentiator"`
	DetailedDescription string `json:"detailedDescription"`
}

// RecommendDisplacements maps each deployed competitor product to
// own-portfolio equivalents and returns at most two recommendations.
// Lookup tries the competitor name first, then its usage pattern.
// Equivalents are collected unique in first-seen order, so a product
// suggested for two competitors is attributed to the first.
func (e *Engine) RecommendDisplacements(deployed []catalog.CompetitorDeployment) []Recommendation {
	type candidate struct {
		name       string
		competitor string
	}

	var candidates []candidate
	seen := make(map[string]struct{})
	for _, d := range deployed {
		equivalents, ok := e.catalog.Equivalents(d.Name)
		if !ok {
			equivalents, _ = e.catalog.Equivalents(d.UsagePattern)
		}
		for _, eq := range equivalents {
			if _, dup := seen[eq]; dup {
				continue
			}
			seen[eq] = struct{}{}
			candidates = append(candidates, candidate{name: eq, competitor: d.Name})
		}
	}

	if len(candidates) > maxRecommendations {
		candidates = candidates[:maxRecommendations]
	}

	out := make([]Recommendation, 0, len(candidates))
	for i, cand := range candidates {
		detail, _ := e.catalog.FindProduct(cand.name)

		differentiator := ""
		if len(detail.Differentiators) > 0 {
			differentiator = detail.Differentiators[0]
			// The second pick takes the product's second differentiator
			// when one exists, so two cards never read the same.
			if i == 1 && len(candidates) > 1 && len(detail.Differentiators) > 1 {
				differentiator = detail.Differentiators[1]
			}
		}

		out = append(out, Recommendation{
			ID:                  uuid.New().String(),
			Name:                cand.name,
			Rationale:           fmt.Sprintf("Recommended to displace %s", cand.competitor),
			Description:         detail.Description,
			Alignment:           detail.Alignment,
			Differentiator:      differentiator,
			DetailedDescription: detailedDescription(cand.name, cand.competitor, detail, differentiator),
		})
	}
	return out
}

func detailedDescription(name, competitor string, detail catalog.Product, differentiator string) string {
	description := detail.Description
	if description == "" {
		description = "an IBM/Red Hat solution"
	}
	alignment := strings.ToLower(detail.Alignment)
	if alignment == "" {
		alignment = "modernize and optimize their IT environment"
	}
	pain := painFragment(differentiator)
	if pain == "" {
		pain = "integration, cost, and scalability"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s is %s designed to help organizations %s. ", name, description, alignment)
	fmt.Fprintf(&b, "This product is especially relevant for clients currently using %s, as it addresses common pain points such as %s. ", competitor, pain)
	fmt.Fprintf(&b, "A key differentiator: %s. ", differentiator)
	fmt.Fprintf(&b, "By adopting %s, clients can expect outcomes like improved efficiency, reduced costs, and a future-proofed technology stack. ", name)
	b.WriteString("Now is an ideal time to consider this transition, as many organizations are seeking to maximize ROI and reduce vendor lock-in.")
	return b.String()
}

// painFragment turns a "vs X: claim" differentiator into a short pain
// phrase: the prefix is stripped and the claim truncated at the first
// " with ".
func painFragment(differentiator string) string {
	s := differentiator
	if strings.HasPrefix(s, "vs ") {
		if idx := strings.Index(s, ": "); idx >= 0 {
			s = s[idx+2:]
		}
	}
	if idx := strings.Index(s, " with "); idx >= 0 {
		s = s[:idx]
	}
	return s
}

// Lead is a marketing-sourced client interest used for follow-up
// outreach.
type Lead struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Company  string `json:"company"`
	Product  string `json:"product"`
	Brand    string `json:"brand"`
	Campaign string `json:"campaign"`
	Notes    string `json:"notes"`
}

// GenerateInterestEmail renders the follow-up email for a client
// interest lead.
func GenerateInterestEmail(lead Lead) string {
	return fmt.Sprintf("Subject: Thank you for your interest in %s\n\n"+
		"Hi %s,\n\n"+
		"Thank you for your interest in %s during our recent \"%s\" campaign. "+
		"As the %s at %s, you are in a great position to drive innovation and value with this solution.\n\n"+
		"I'd love to schedule a quick call to discuss how %s can help you achieve your goals. "+
		"Please let me know your availability, or feel free to reply directly to this email.\n\n"+
		"Best regards,\n[Your Name]\nIBM & Red Hat Sales Team",
		lead.Product, lead.Name, lead.Product, lead.Campaign, lead.Title, lead.Company, lead.Product)
}
