package intel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractInsightsAINews(t *testing.T) {
	feed := CompanyIntelligence{
		News: []NewsItem{
			{Headline: `"Acme" launches new AI-powered product line`},
		},
	}

	insights := ExtractInsights(feed)

	assert.Contains(t, insights.Solutions, "AI-powered automation")
	assert.Contains(t, insights.Messaging, "Accelerate innovation with AI")
	assert.Empty(t, insights.PainPoints)
}

func TestExtractInsightsMultipleRulesPerItem(t *testing.T) {
	// One headline can fire several rules; matching is additive.
	feed := CompanyIntelligence{
		News: []NewsItem{
			{Headline: "Acme revenue grows on cloud and AI momentum"},
		},
	}

	insights := ExtractInsights(feed)

	assert.Contains(t, insights.PainPoints, "Revenue growth pressure")
	assert.Contains(t, insights.PainPoints, "Cloud migration challenges")
	assert.Contains(t, insights.Solutions, "AI-powered automation")
	assert.Contains(t, insights.Solutions, "Hybrid cloud strategy")
}

func TestExtractInsightsDeduplicates(t *testing.T) {
	feed := CompanyIntelligence{
		News: []NewsItem{
			{Headline: "Acme doubles down on AI"},
			{Headline: "Acme ships AI assistant"},
		},
	}

	insights := ExtractInsights(feed)

	count := 0
	for _, s := range insights.Solutions {
		if s == "AI-powered automation" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestExtractInsightsBriefings(t *testing.T) {
	feed := CompanyIntelligence{
		Briefings: []Briefing{
			{Title: "Investor Day", Summary: "20% increase in R&D investment"},
		},
	}

	insights := ExtractInsights(feed)

	assert.Contains(t, insights.Solutions, "Increased R&D investment")
	assert.Contains(t, insights.Messaging, "Lead the market with innovation")
}

func TestExtractInsightsFinancialDeclines(t *testing.T) {
	feed := CompanyIntelligence{
		Financials: []FinancialMetric{
			{Metric: "Revenue (Q2 2025)", Value: "$1.8B", Change: "-4% YoY"},
			{Metric: "Net Income (Q2 2025)", Value: "$120M", Change: "-9% YoY"},
		},
	}

	insights := ExtractInsights(feed)

	assert.Contains(t, insights.PainPoints, "Declining revenue")
	assert.Contains(t, insights.PainPoints, "Profitability concerns")
	assert.Contains(t, insights.Solutions, "Cost optimization")
	assert.Contains(t, insights.Messaging, "Reverse revenue decline with new offerings")
}

func TestExtractInsightsGrowingFinancialsNoPainPoints(t *testing.T) {
	feed := CompanyIntelligence{
		Financials: []FinancialMetric{
			{Metric: "Revenue (Q2 2025)", Value: "$2.1B", Change: "+8% YoY"},
		},
	}

	insights := ExtractInsights(feed)

	assert.Empty(t, insights.PainPoints)
	assert.Empty(t, insights.Solutions)
	assert.Empty(t, insights.Messaging)
}

func TestExtractInsightsEmptyFeed(t *testing.T) {
	insights := ExtractInsights(CompanyIntelligence{})

	// Empty lists, not nil: callers serialize these as JSON arrays.
	require.NotNil(t, insights.PainPoints)
	require.NotNil(t, insights.Solutions)
	require.NotNil(t, insights.Messaging)
	assert.Empty(t, insights.PainPoints)
}

func TestExtractStrategy(t *testing.T) {
	feed := FetchCompanyIntelligence("Acme")
	strategy := ExtractStrategy(feed)

	assert.Contains(t, strategy, "Investing in AI-driven innovation")
	assert.Contains(t, strategy, "Focusing on revenue growth")
	assert.Contains(t, strategy, "Expanding hybrid cloud capabilities")
	assert.Contains(t, strategy, "Forming strategic partnerships")
	assert.Contains(t, strategy, "Increasing R&D investment")
	assert.Contains(t, strategy, "AI as a core business pillar")
	assert.Contains(t, strategy, "Driving top-line growth")
	assert.Contains(t, strategy, "Improving profitability")
	assert.NotContains(t, strategy, NoStrategyIdentified)
}

func TestExtractStrategyFallback(t *testing.T) {
	strategy := ExtractStrategy(CompanyIntelligence{})
	assert.Equal(t, []string{NoStrategyIdentified}, strategy)
}

func TestFetchCompanyIntelligence(t *testing.T) {
	feed := FetchCompanyIntelligence("Acme Corp")

	require.Len(t, feed.News, 3)
	assert.Equal(t, `"Acme Corp" launches new AI-powered product line`, feed.News[0].Headline)
	require.Len(t, feed.Briefings, 1)
	require.Len(t, feed.Financials, 3)
}

func TestFetchCompanyIntelligenceBlank(t *testing.T) {
	feed := FetchCompanyIntelligence("")

	assert.Empty(t, feed.News)
	assert.Empty(t, feed.Briefings)
	assert.Empty(t, feed.Financials)
}

func TestExtractInsightsIdempotent(t *testing.T) {
	feed := FetchCompanyIntelligence("Acme")
	assert.Equal(t, ExtractInsights(feed), ExtractInsights(feed))
	assert.Equal(t, ExtractStrategy(feed), ExtractStrategy(feed))
}
