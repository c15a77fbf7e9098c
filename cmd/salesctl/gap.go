package main

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fredao/sales-insights-api/internal/catalog"
	"github.com/fredao/sales-insights-api/internal/gapanalysis"
)

var (
	gapQuota     float64
	gapAchieved  float64
	gapWinRate   float64
	gapBreakdown string
)

func newGapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gap",
		Short: "Compute quota gap and required pipeline",
		Long: `Compute the gap to quota and the additional pipeline needed to close
it at the historical win rate.

Examples:
  # Seller snapshot defaults
  salesctl gap

  # Explicit numbers
  salesctl gap --quota 5000000 --achieved 2300000 --win-rate 0.68

  # Per-category breakdown against the pipeline snapshot
  salesctl gap --breakdown brand
  salesctl gap --breakdown licensing`,
		RunE: runGap,
	}

	cmd.Flags().Float64Var(&gapQuota, "quota", 0, "Quota target in dollars (defaults to seller snapshot)")
	cmd.Flags().Float64Var(&gapAchieved, "achieved", 0, "Achieved value in dollars (defaults to seller snapshot)")
	cmd.Flags().Float64Var(&gapWinRate, "win-rate", 0, "Historical win rate as a fraction (defaults to seller snapshot)")
	cmd.Flags().StringVar(&gapBreakdown, "breakdown", "", "Break down by category: brand or licensing")

	return cmd
}

func runGap(cmd *cobra.Command, args []string) error {
	cat, _, err := loadEngine()
	if err != nil {
		return err
	}
	seller := cat.Seller()

	quota := gapQuota
	if !cmd.Flags().Changed("quota") {
		quota = seller.Quota
	}
	achieved := gapAchieved
	if !cmd.Flags().Changed("achieved") {
		achieved = seller.Achieved
	}
	winRate := gapWinRate
	if !cmd.Flags().Changed("win-rate") {
		winRate = seller.WinRate
	}

	if gapBreakdown != "" {
		return printBreakdown(cat, gapBreakdown, winRate)
	}

	result, err := gapanalysis.Overall(quota, achieved, winRate)
	if err != nil {
		return err
	}

	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Println("Quota Gap Analysis")
	fmt.Printf("  Quota:             $%s\n", formatDollars(quota))
	fmt.Printf("  Achieved:          $%s\n", formatDollars(achieved))
	fmt.Printf("  Win rate:          %.0f%%\n", winRate*100)
	fmt.Println()
	printAttainment(result.AttainmentPct)
	fmt.Printf("  Gap:               $%s\n", formatDollars(result.Gap))
	fmt.Printf("  Required pipeline: $%s\n", formatDollars(result.RequiredPipeline))
	return nil
}

func printBreakdown(cat *catalog.Catalog, kind string, winRate float64) error {
	var stats map[string]float64
	var targets map[string]float64
	switch kind {
	case "brand":
		targets = cat.BrandTargets()
		stats = make(map[string]float64)
		for key, s := range cat.Pipeline().ByBrand {
			stats[key] = s.Value
		}
	case "licensing":
		targets = cat.LicensingTargets()
		stats = make(map[string]float64)
		for key, s := range cat.Pipeline().ByLicensingType {
			stats[key] = s.Value
		}
	default:
		return fmt.Errorf("breakdown must be brand or licensing, got %q", kind)
	}

	results, err := gapanalysis.Breakdown(stats, targets, winRate)
	if err != nil {
		return err
	}

	keys := make([]string, 0, len(results))
	for key := range results {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	cyan := color.New(color.FgCyan, color.Bold)
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	cyan.Printf("Gap to Quota by %s\n", kind)
	for _, key := range keys {
		r := results[key]
		status := red.Sprint("behind")
		if r.IsOnTrack {
			status = green.Sprint("on track")
		}
		// Attainment is raw in the result; cap the displayed figure at
		// 100% the way the dashboard bars did.
		fmt.Printf("  %-14s %3d%%  gap $%-12s pipeline needed $%-12s %s\n",
			key, min(100, r.AttainmentPct), formatDollars(r.Gap), formatDollars(r.RequiredPipeline), status)
	}
	return nil
}

func printAttainment(pct int) {
	line := fmt.Sprintf("  Attainment:        %d%%", pct)
	switch {
	case pct >= 100:
		color.New(color.FgGreen).Println(line)
	case pct >= 50:
		color.New(color.FgYellow).Println(line)
	default:
		color.New(color.FgRed).Println(line)
	}
}

func formatDollars(v float64) string {
	s := fmt.Sprintf("%.0f", v)
	out := ""
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 && r != '-' {
			out += ","
		}
		out += string(r)
	}
	return out
}
