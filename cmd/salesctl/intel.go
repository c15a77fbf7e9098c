package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fredao/sales-insights-api/internal/intel"
)

func newIntelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "intel COMPANY",
		Short: "Show company intelligence and derived insights",
		Long: `Fetch the intelligence feed for a company and extract talking points
and strategy statements from it.

Example:
  salesctl intel "Acme Corp"`,
		Args: cobra.ExactArgs(1),
		RunE: runIntel,
	}
}

func runIntel(cmd *cobra.Command, args []string) error {
	company := args[0]
	if company == "" {
		return fmt.Errorf("company must not be empty")
	}

	feed := intel.FetchCompanyIntelligence(company)
	insights := intel.ExtractInsights(feed)
	strategy := intel.ExtractStrategy(feed)

	cyan := color.New(color.FgCyan, color.Bold)
	bold := color.New(color.Bold)

	cyan.Printf("Company Intelligence: %s\n\n", company)

	bold.Println("News")
	for _, n := range feed.News {
		fmt.Printf("  - %s (%s, %s)\n", n.Headline, n.Source, n.Date)
	}
	fmt.Println()

	bold.Println("Financials")
	for _, f := range feed.Financials {
		fmt.Printf("  - %s: %s (%s)\n", f.Metric, f.Value, f.Change)
	}
	fmt.Println()

	printList(bold, "Pain Points", insights.PainPoints)
	printList(bold, "Solutions", insights.Solutions)
	printList(bold, "Messaging", insights.Messaging)
	printList(bold, "Strategy", strategy)
	return nil
}
