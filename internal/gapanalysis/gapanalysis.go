// Package gapanalysis computes quota attainment, value gaps, and
// required-pipeline projections. All functions are pure; percentages
// are returned unclamped and any capping at 100% is left to display
// code.
package gapanalysis

import (
	"fmt"
	"math"
)

// millionsScale converts breakdown values (reported in $M) to raw
// dollars so they compare against quota targets.
const millionsScale = 1_000_000

// InvalidInputError reports a numeric input the analyzer refuses to
// compute with, such as a non-positive win rate.
type InvalidInputError struct {
	Field string
	Value float64
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Value)
}

// Result holds the overall gap computation for a quota period.
type Result struct {
	Gap              float64 `json:"gap"`
	RequiredPipeline float64 `json:"requiredPipeline"`
	AttainmentPct    int     `json:"attainmentPct"`
}

// BreakdownResult is a per-category gap result with the inputs echoed
// back for rendering.
type BreakdownResult struct {
	Quota            float64 `json:"quota"`
	Achieved         float64 `json:"achieved"`
	Gap              float64 `json:"gap"`
	RequiredPipeline float64 `json:"requiredPipeline"`
	AttainmentPct    int     `json:"attainmentPct"`
	IsOnTrack        bool    `json:"isOnTrack"`
}

// QuotaPair is one side of an account's quota split.
type QuotaPair struct {
	Quota    float64 `json:"quota"`
	Achieved float64 `json:"achieved"`
}

// SplitResult carries attainment percentages for an account's primary
// and secondary quotas plus the combined figure. Each percentage is
// guarded against a zero quota independently.
type SplitResult struct {
	TotalPct     int `json:"totalPct"`
	PrimaryPct   int `json:"primaryPct"`
	SecondaryPct int `json:"secondaryPct"`
}

// Overall computes the gap to quota and the additional pipeline needed
// to close it at the given historical win rate. Quota and achieved are
// raw dollars; winRate is a fraction in (0, 1].
//
// A win rate of zero or below returns an InvalidInputError: dividing
// the gap by it has no defined meaning, and silently producing Inf or
// NaN would just move the bug downstream.
func Overall(quota, achieved, winRate float64) (Result, error) {
	if winRate <= 0 {
		return Result{}, &InvalidInputError{Field: "win rate", Value: winRate}
	}

	gap := math.Max(0, quota-achieved)
	required := 0.0
	if gap > 0 {
		required = gap / winRate
	}

	return Result{
		Gap:              gap,
		RequiredPipeline: required,
		AttainmentPct:    attainmentPct(quota, achieved),
	}, nil
}

// Breakdown applies the overall gap formula per category. Achieved
// values are in millions of dollars, targets in raw dollars.
func Breakdown(achievedMillions map[string]float64, targets map[string]float64, winRate float64) (map[string]BreakdownResult, error) {
	if winRate <= 0 {
		return nil, &InvalidInputError{Field: "win rate", Value: winRate}
	}

	out := make(map[string]BreakdownResult, len(targets))
	for key, target := range targets {
		achieved := achievedMillions[key] * millionsScale
		res, err := Overall(target, achieved, winRate)
		if err != nil {
			return nil, err
		}
		out[key] = BreakdownResult{
			Quota:            target,
			Achieved:         achieved,
			Gap:              res.Gap,
			RequiredPipeline: res.RequiredPipeline,
			AttainmentPct:    res.AttainmentPct,
			IsOnTrack:        achieved >= target,
		}
	}
	return out, nil
}

// AccountSplit computes attainment for an account's primary and
// secondary quota plus the combined total.
func AccountSplit(primary, secondary QuotaPair) SplitResult {
	return SplitResult{
		TotalPct:     attainmentPct(primary.Quota+secondary.Quota, primary.Achieved+secondary.Achieved),
		PrimaryPct:   attainmentPct(primary.Quota, primary.Achieved),
		SecondaryPct: attainmentPct(secondary.Quota, secondary.Achieved),
	}
}

func attainmentPct(quota, achieved float64) int {
	if quota <= 0 {
		return 0
	}
	return int(math.Round(achieved / quota * 100))
}
