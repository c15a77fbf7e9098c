package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fredao/sales-insights-api/internal/catalog"
	"github.com/fredao/sales-insights-api/internal/persona"
)

var (
	version = "v0.1.0" // Overwritten at build time
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "salesctl",
		Short: "Quota gap analysis and persona insights from the terminal",
		Long: `salesctl runs the sales-insights computations locally: quota gap
analysis, persona content resolution, company intelligence extraction,
and competitor displacement recommendations.`,
		SilenceUsage: true,
	}

	// Disable automatic 'completion' command added by cobra
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.AddCommand(
		newGapCmd(),
		newPersonaCmd(),
		newIntelCmd(),
		newRecommendCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("salesctl %s\n", version)
		},
	}
}

// loadEngine builds the catalog-backed persona engine shared by all
// subcommands.
func loadEngine() (*catalog.Catalog, *persona.Engine, error) {
	cat, err := catalog.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load reference catalog: %w", err)
	}
	return cat, persona.NewEngine(cat), nil
}
