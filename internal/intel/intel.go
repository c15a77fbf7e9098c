// Package intel models the (fabricated) company intelligence feed and
// derives talking points from it by substring matching. The rule
// tables are additive: several rules may fire on a single item, and
// every output list keeps unique values in first-seen order.
package intel

import (
	"fmt"
	"strings"
)

type NewsItem struct {
	Headline string `json:"headline"`
	Source   string `json:"source"`
	Date     string `json:"date"`
	URL      string `json:"url"`
}

type Briefing struct {
	Title   string `json:"title"`
	Summary string `json:"summary"`
	Date    string `json:"date"`
}

type FinancialMetric struct {
	Metric string `json:"metric"`
	Value  string `json:"value"`
	Change string `json:"change"`
}

type CompanyIntelligence struct {
	News       []NewsItem        `json:"news"`
	Briefings  []Briefing        `json:"briefings"`
	Financials []FinancialMetric `json:"financials"`
}

// Insights are the persona-agnostic talking points extracted from a
// company's feed.
type Insights struct {
	PainPoints []string `json:"painPoints"`
	Solutions  []string `json:"solutions"`
	Messaging  []string `json:"messaging"`
}

// textRule fires when any trigger substring appears in the case-folded
// text, appending its canned outputs.
type textRule struct {
	triggers   []string
	painPoints []string
	solutions  []string
	messaging  []string
}

// financialRule fires when the metric name contains the given
// substring and the change field carries the given sign character.
type financialRule struct {
	metric     string
	sign       string
	painPoints []string
	solutions  []string
	messaging  []string
}

var newsInsightRules = []textRule{
	{
		triggers:   []string{"earnings", "revenue"},
		painPoints: []string{"Revenue growth pressure"},
		messaging:  []string{"Drive top-line growth with digital solutions"},
	},
	{
		triggers:  []string{"ai", "automation"},
		solutions: []string{"AI-powered automation"},
		messaging: []string{"Accelerate innovation with AI"},
	},
	{
		triggers:   []string{"cloud"},
		painPoints: []string{"Cloud migration challenges"},
		solutions:  []string{"Hybrid cloud strategy"},
		messaging:  []string{"Seamless hybrid cloud adoption"},
	},
	{
		triggers:  []string{"partner", "expansion"},
		solutions: []string{"Strategic partnerships"},
	},
}

var briefingInsightRules = []textRule{
	{
		triggers:  []string{"r&d", "innovation"},
		solutions: []string{"Increased R&D investment"},
		messaging: []string{"Lead the market with innovation"},
	},
	{
		triggers:   []string{"ai"},
		solutions:  []string{"AI-driven solutions"},
		painPoints: []string{"Need for digital transformation"},
	},
}

var financialInsightRules = []financialRule{
	{
		metric:     "revenue",
		sign:       "-",
		painPoints: []string{"Declining revenue"},
		messaging:  []string{"Reverse revenue decline with new offerings"},
	},
	{
		metric:     "net income",
		sign:       "-",
		painPoints: []string{"Profitability concerns"},
		solutions:  []string{"Cost optimization"},
	},
}

// ExtractInsights scans headlines, briefing text, and financial metric
// signs for the fixed trigger vocabulary.
func ExtractInsights(ci CompanyIntelligence) Insights {
	pain := newDedupList()
	sol := newDedupList()
	msg := newDedupList()

	apply := func(rules []textRule, text string) {
		for _, r := range rules {
			if !containsAny(text, r.triggers) {
				continue
			}
			pain.add(r.painPoints...)
			sol.add(r.solutions...)
			msg.add(r.messaging...)
		}
	}

	for _, n := range ci.News {
		apply(newsInsightRules, strings.ToLower(n.Headline))
	}
	for _, b := range ci.Briefings {
		apply(briefingInsightRules, strings.ToLower(b.Title+" "+b.Summary))
	}
	for _, f := range ci.Financials {
		metric := strings.ToLower(f.Metric)
		for _, r := range financialInsightRules {
			if !strings.Contains(metric, r.metric) || !strings.Contains(f.Change, r.sign) {
				continue
			}
			pain.add(r.painPoints...)
			sol.add(r.solutions...)
			msg.add(r.messaging...)
		}
	}

	return Insights{
		PainPoints: pain.values,
		Solutions:  sol.values,
		Messaging:  msg.values,
	}
}

// NoStrategyIdentified is returned as the sole strategy entry when no
// trigger fires anywhere in the feed.
const NoStrategyIdentified = "No clear strategy identified from recent news/briefings."

var newsStrategyRules = []textRule{
	{triggers: []string{"ai"}, messaging: []string{"Investing in AI-driven innovation"}},
	{triggers: []string{"cloud"}, messaging: []string{"Expanding hybrid cloud capabilities"}},
	{triggers: []string{"partner"}, messaging: []string{"Forming strategic partnerships"}},
	{triggers: []string{"earnings", "revenue"}, messaging: []string{"Focusing on revenue growth"}},
}

var briefingStrategyRules = []textRule{
	{triggers: []string{"r&d"}, messaging: []string{"Increasing R&D investment"}},
	{triggers: []string{"ai"}, messaging: []string{"AI as a core business pillar"}},
}

var financialStrategyRules = []financialRule{
	{metric: "revenue", sign: "+", messaging: []string{"Driving top-line growth"}},
	{metric: "net income", sign: "+", messaging: []string{"Improving profitability"}},
}

// ExtractStrategy derives strategy statements from the feed using a
// second trigger vocabulary.
func ExtractStrategy(ci CompanyIntelligence) []string {
	strategy := newDedupList()

	apply := func(rules []textRule, text string) {
		for _, r := range rules {
			if containsAny(text, r.triggers) {
				strategy.add(r.messaging...)
			}
		}
	}

	for _, n := range ci.News {
		apply(newsStrategyRules, strings.ToLower(n.Headline))
	}
	for _, b := range ci.Briefings {
		apply(briefingStrategyRules, strings.ToLower(b.Title+" "+b.Summary))
	}
	for _, f := range ci.Financials {
		metric := strings.ToLower(f.Metric)
		for _, r := range financialStrategyRules {
			if strings.Contains(metric, r.metric) && strings.Contains(f.Change, r.sign) {
				strategy.add(r.messaging...)
			}
		}
	}

	if len(strategy.values) == 0 {
		return []string{NoStrategyIdentified}
	}
	return strategy.values
}

// FetchCompanyIntelligence returns the canned feed for a company. A
// blank company name yields an empty feed. In a real deployment this
// would call news and financial data APIs.
func FetchCompanyIntelligence(company string) CompanyIntelligence {
	if company == "" {
		return CompanyIntelligence{
			News:       []NewsItem{},
			Briefings:  []Briefing{},
			Financials: []FinancialMetric{},
		}
	}
	return CompanyIntelligence{
		News: []NewsItem{
			{
				Headline: fmt.Sprintf("%q launches new AI-powered product line", company),
				Source:   "TechCrunch",
				Date:     "2025-06-10",
				URL:      "#",
			},
			{
				Headline: fmt.Sprintf("%q Q2 earnings beat analyst expectations", company),
				Source:   "Reuters",
				Date:     "2025-05-28",
				URL:      "#",
			},
			{
				Headline: fmt.Sprintf("%q partners with IBM for hybrid cloud expansion", company),
				Source:   "IBM Newsroom",
				Date:     "2025-05-15",
				URL:      "#",
			},
		},
		Briefings: []Briefing{
			{
				Title:   "Investor Day 2025 Highlights",
				Summary: fmt.Sprintf("%q announced a 20%% increase in R&D investment and a new focus on AI-driven solutions.", company),
				Date:    "2025-04-20",
			},
		},
		Financials: []FinancialMetric{
			{Metric: "Revenue (Q2 2025)", Value: "$2.1B", Change: "+8% YoY"},
			{Metric: "Net Income (Q2 2025)", Value: "$320M", Change: "+12% YoY"},
			{Metric: "EPS (Q2 2025)", Value: "$1.45", Change: "+10% YoY"},
		},
	}
}

func containsAny(text string, subs []string) bool {
	for _, s := range subs {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

// dedupList keeps unique strings in first-seen order.
type dedupList struct {
	values []string
	seen   map[string]struct{}
}

func newDedupList() *dedupList {
	return &dedupList{values: []string{}, seen: map[string]struct{}{}}
}

func (d *dedupList) add(vals ...string) {
	for _, v := range vals {
		if _, ok := d.seen[v]; ok {
			continue
		}
		d.seen[v] = struct{}{}
		d.values = append(d.values, v)
	}
}
