package persona

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fredao/sales-insights-api/internal/catalog"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	return NewEngine(cat)
}

func TestResolveProfile(t *testing.T) {
	engine := newTestEngine(t)

	cfo := engine.ResolveProfile("CFO")
	assert.Contains(t, cfo.Keywords, "cost")
	assert.Contains(t, cfo.PainPoints, "Cost optimization")

	devLead := engine.ResolveProfile("Dev Lead")
	assert.Contains(t, devLead.Keywords, "CI/CD")
}

func TestResolveProfileUnknownFallsBack(t *testing.T) {
	engine := newTestEngine(t)

	fallback := engine.ResolveProfile("Unknown")
	assert.Contains(t, fallback.Keywords, "ROI")
	assert.Contains(t, fallback.Solutions, "Hybrid cloud strategy")
}

func TestResolveProfileIsCaseSensitive(t *testing.T) {
	engine := newTestEngine(t)

	// Lookup is exact-match; "dev lead" gets the default profile.
	lower := engine.ResolveProfile("dev lead")
	assert.NotContains(t, lower.Keywords, "CI/CD")
	assert.Contains(t, lower.Keywords, "ROI")
}

func TestBuildPersonalizedContent(t *testing.T) {
	engine := newTestEngine(t)

	assert.Nil(t, engine.BuildPersonalizedContent("", "CIO"))
	assert.Nil(t, engine.BuildPersonalizedContent("Acme", ""))
	assert.Nil(t, engine.BuildPersonalizedContent("   ", "CIO"))

	content := engine.BuildPersonalizedContent("Acme", "CIO")
	require.NotNil(t, content)
	assert.Equal(t, "Acme", content.Company)
	assert.Equal(t, "CIO", content.Persona)
	assert.Contains(t, content.PainPoints, "Budget constraints")
}

func TestRecommendDisplacementsSingle(t *testing.T) {
	engine := newTestEngine(t)

	recs := engine.RecommendDisplacements([]catalog.CompetitorDeployment{
		{Name: "AWS Lambda", UsagePattern: "Serverless for web portal"},
	})

	require.Len(t, recs, 1)
	rec := recs[0]
	assert.Equal(t, "IBM Cloud Code Engine", rec.Name)
	assert.Equal(t, "Recommended to displace AWS Lambda", rec.Rationale)
	assert.NotEmpty(t, rec.DetailedDescription)
	assert.NotEmpty(t, rec.ID)
	assert.Contains(t, rec.DetailedDescription, "IBM Cloud Code Engine is Serverless platform for containers")
	assert.Contains(t, rec.DetailedDescription, "clients currently using AWS Lambda")
}

func TestRecommendDisplacementsCap(t *testing.T) {
	engine := newTestEngine(t)

	recs := engine.RecommendDisplacements([]catalog.CompetitorDeployment{
		{Name: "AWS Lambda"},
		{Name: "Azure AKS"},
		{Name: "Google BigQuery"},
		{Name: "AWS Cost Explorer"},
	})

	assert.Len(t, recs, 2)
	assert.Equal(t, "IBM Cloud Code Engine", recs[0].Name)
	assert.Equal(t, "Red Hat OpenShift", recs[1].Name)
}

func TestRecommendDisplacementsSecondDifferentiator(t *testing.T) {
	engine := newTestEngine(t)
	cat, err := catalog.Load()
	require.NoError(t, err)

	recs := engine.RecommendDisplacements([]catalog.CompetitorDeployment{
		{Name: "AWS Lambda"},
		{Name: "Azure AKS"},
	})
	require.Len(t, recs, 2)

	openshift, ok := cat.FindProduct("Red Hat OpenShift")
	require.True(t, ok)
	// The second recommendation takes the product's second
	// differentiator so the two cards never repeat.
	assert.Equal(t, openshift.Differentiators[1], recs[1].Differentiator)

	codeEngine, ok := cat.FindProduct("IBM Cloud Code Engine")
	require.True(t, ok)
	assert.Equal(t, codeEngine.Differentiators[0], recs[0].Differentiator)
}

func TestRecommendDisplacementsUsagePatternFallback(t *testing.T) {
	engine := newTestEngine(t)

	recs := engine.RecommendDisplacements([]catalog.CompetitorDeployment{
		{Name: "Some Unknown FaaS", UsagePattern: "Serverless for web portal"},
	})

	require.Len(t, recs, 1)
	assert.Equal(t, "IBM Cloud Code Engine", recs[0].Name)
	assert.Equal(t, "Recommended to displace Some Unknown FaaS", recs[0].Rationale)
}

func TestRecommendDisplacementsDeduplicates(t *testing.T) {
	engine := newTestEngine(t)

	// Both competitors map to the Code Engine; it is only suggested
	// once, attributed to the first.
	recs := engine.RecommendDisplacements([]catalog.CompetitorDeployment{
		{Name: "AWS Lambda"},
		{Name: "Google Cloud Run"},
	})

	require.Len(t, recs, 1)
	assert.Equal(t, "IBM Cloud Code Engine", recs[0].Name)
	assert.Equal(t, "Recommended to displace AWS Lambda", recs[0].Rationale)
}

func TestRecommendDisplacementsUncataloguedProduct(t *testing.T) {
	engine := newTestEngine(t)

	// "IBM Virtual Servers" is mapped as an equivalent but has no
	// catalog entry; fields degrade to empty and the description falls
	// back to generic wording.
	recs := engine.RecommendDisplacements([]catalog.CompetitorDeployment{
		{Name: "AWS EC2"},
	})

	require.Len(t, recs, 2)
	first := recs[0]
	assert.Equal(t, "IBM Virtual Servers", first.Name)
	assert.Empty(t, first.Description)
	assert.Empty(t, first.Differentiator)
	assert.Contains(t, first.DetailedDescription, "an IBM/Red Hat solution")
	assert.Contains(t, first.DetailedDescription, "integration, cost, and scalability")
}

func TestRecommendDisplacementsNoMatches(t *testing.T) {
	engine := newTestEngine(t)

	recs := engine.RecommendDisplacements([]catalog.CompetitorDeployment{
		{Name: "Oracle Exadata", UsagePattern: "Data warehouse"},
	})
	assert.Empty(t, recs)
}

func TestRecommendDisplacementsStable(t *testing.T) {
	engine := newTestEngine(t)
	deployed := []catalog.CompetitorDeployment{
		{Name: "AWS EC2 & S3"},
		{Name: "Microsoft Azure SQL Database"},
	}

	a := engine.RecommendDisplacements(deployed)
	b := engine.RecommendDisplacements(deployed)
	require.Len(t, a, 2)
	for i := range a {
		// IDs are fresh per call; everything else is deterministic.
		assert.NotEqual(t, a[i].ID, b[i].ID)
		a[i].ID, b[i].ID = "", ""
	}
	assert.Equal(t, a, b)
}

func TestPainFragment(t *testing.T) {
	assert.Equal(t, "40% lower TCO",
		painFragment("vs VMware Tanzu: 40% lower TCO with integrated developer tools"))
	assert.Equal(t, "Multi-cloud portability, no vendor lock-in",
		painFragment("vs AWS EKS: Multi-cloud portability, no vendor lock-in"))
	assert.Equal(t, "", painFragment(""))
}

func TestGenerateInterestEmail(t *testing.T) {
	email := GenerateInterestEmail(Lead{
		Name:     "Jane Doe",
		Title:    "VP of IT",
		Company:  "Acme Corp",
		Product:  "IBM Cloud Pak for Data",
		Campaign: "AI Modernization Webinar Q2",
	})

	assert.True(t, strings.HasPrefix(email, "Subject: Thank you for your interest in IBM Cloud Pak for Data"))
	assert.Contains(t, email, "Hi Jane Doe,")
	assert.Contains(t, email, `"AI Modernization Webinar Q2" campaign`)
	assert.Contains(t, email, "As the VP of IT at Acme Corp")
}
