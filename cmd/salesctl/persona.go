package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fredao/sales-insights-api/internal/catalog"
)

var personaClient string

func newPersonaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "persona LABEL",
		Short: "Show the content profile for a persona",
		Long: `Resolve a persona label to its pain points, solutions, messaging, and
recommended products. Unknown labels fall back to the default profile.

Examples:
  salesctl persona CIO
  salesctl persona "Dev Lead" --client "Acme Corp"`,
		Args: cobra.ExactArgs(1),
		RunE: runPersona,
	}

	cmd.Flags().StringVar(&personaClient, "client", "", "Client name for a personalized content bundle")

	return cmd
}

func runPersona(cmd *cobra.Command, args []string) error {
	label := args[0]

	_, engine, err := loadEngine()
	if err != nil {
		return err
	}

	cyan := color.New(color.FgCyan, color.Bold)
	bold := color.New(color.Bold)

	if personaClient != "" {
		content := engine.BuildPersonalizedContent(personaClient, label)
		if content == nil {
			return fmt.Errorf("client and persona must both be non-blank")
		}
		cyan.Printf("%s — %s\n\n", content.Company, content.Persona)
		printList(bold, "Pain Points", content.PainPoints)
		printList(bold, "Solutions", content.Solutions)
		printList(bold, "Messaging", content.Messaging)
		printProducts(bold, content.Products)
		return nil
	}

	profile := engine.ResolveProfile(label)
	cyan.Printf("Persona: %s\n\n", label)
	printList(bold, "Pain Points", profile.PainPoints)
	printList(bold, "Solutions", profile.Solutions)
	printList(bold, "Messaging", profile.Messaging)
	bold.Println("Keywords")
	fmt.Printf("  %s\n\n", strings.Join(profile.Keywords, ", "))
	printProducts(bold, profile.Products)
	return nil
}

func printList(header *color.Color, title string, items []string) {
	header.Println(title)
	for _, item := range items {
		fmt.Printf("  - %s\n", item)
	}
	fmt.Println()
}

func printProducts(header *color.Color, products []catalog.Product) {
	header.Println("Recommended Products")
	for _, p := range products {
		fmt.Printf("  %s — %s\n", p.Name, p.Description)
		if p.Alignment != "" {
			fmt.Printf("    Why it fits: %s\n", p.Alignment)
		}
		for _, diff := range p.Differentiators {
			fmt.Printf("    -> %s\n", diff)
		}
	}
}
