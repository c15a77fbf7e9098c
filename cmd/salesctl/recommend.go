package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newRecommendCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recommend CLIENT",
		Short: "Recommend displacements for a client's competitor products",
		Long: `Look up the competitor products deployed at a client and suggest
own-portfolio replacements.

Example:
  salesctl recommend "Acme Corp"`,
		Args: cobra.ExactArgs(1),
		RunE: runRecommend,
	}
}

func runRecommend(cmd *cobra.Command, args []string) error {
	client := args[0]

	cat, engine, err := loadEngine()
	if err != nil {
		return err
	}

	usage := cat.Usage(client)
	recs := engine.RecommendDisplacements(usage.DeployedCompetitors)

	cyan := color.New(color.FgCyan, color.Bold)
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)

	cyan.Printf("Displacement Recommendations for %s\n\n", client)

	bold.Println("Deployed competitor products")
	for _, d := range usage.DeployedCompetitors {
		fmt.Printf("  - %s (%s, since %s)\n", d.Name, d.UsagePattern, d.Since)
	}
	fmt.Println()

	if len(recs) == 0 {
		fmt.Println("No displacement recommendations for this client.")
		return nil
	}

	for _, rec := range recs {
		green.Printf("%s\n", rec.Name)
		fmt.Printf("  %s\n", rec.Rationale)
		fmt.Printf("  %s\n\n", rec.DetailedDescription)
	}
	return nil
}
