// Copyright (c) 2026 Contascan
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package view renders analysis results and workbook grids to the terminal.
// Rendering is pure presentation: derived counts are recomputed from the
// in-memory sequences on every render and never cached.
package view

import (
	"fmt"
	"sort"
	"strings"

	"contascan/cli/internal/models"

	"github.com/pterm/pterm"
)

// findingGlyph maps a finding type to its display glyph.
func findingGlyph(t string) string {
	switch t {
	case models.FindingError:
		return "❌"
	case models.FindingWarning:
		return "⚠️"
	case models.FindingInfo:
		return "ℹ️"
	default:
		return "•"
	}
}

// levelBadge renders a colored severity/priority badge.
func levelBadge(level string) string {
	switch level {
	case models.LevelHigh:
		return pterm.NewStyle(pterm.BgRed, pterm.FgBlack).Sprintf(" %s ", strings.ToUpper(level))
	case models.LevelMedium:
		return pterm.NewStyle(pterm.BgYellow, pterm.FgBlack).Sprintf(" %s ", strings.ToUpper(level))
	case models.LevelLow:
		return pterm.NewStyle(pterm.BgGreen, pterm.FgBlack).Sprintf(" %s ", strings.ToUpper(level))
	default:
		return strings.ToUpper(level)
	}
}

// RenderAnalysis prints the full analysis result: summary, derived counts,
// findings and recommendations.
func RenderAnalysis(res *models.AnalysisResult) {
	pterm.DefaultBox.
		WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Summary")).
		WithPadding(1).
		Println(res.Summary)
	pterm.Println()

	renderCounts(res)
	renderFindings(res.Findings)
	renderRecommendations(res.Recommendations)

	if res.HasSession() {
		pterm.Println(pterm.NewStyle(pterm.FgLightCyan).Sprint("💬 Chat about this analysis: ") +
			pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprintf("contascan chat %s", res.SessionID))
		pterm.Println()
	}
}

// renderCounts prints the derived grouping counts. Counts are projections
// over the sequences; every enum value appears, zero included.
func renderCounts(res *models.AnalysisResult) {
	byType := models.CountFindingsByType(res.Findings)
	bySeverity := models.CountFindingsBySeverity(res.Findings)
	byPriority := models.CountRecommendationsByPriority(res.Recommendations)

	pterm.Println(pterm.NewStyle(pterm.FgLightCyan).Sprint("→ Findings:        ") + countLine(byType, models.FindingTypes))
	pterm.Println(pterm.NewStyle(pterm.FgLightCyan).Sprint("→ Severity:        ") + countLine(bySeverity, models.Levels))
	pterm.Println(pterm.NewStyle(pterm.FgLightCyan).Sprint("→ Recommendations: ") + countLine(byPriority, models.Levels))
	pterm.Println()
}

func countLine(counts map[string]int, order []string) string {
	parts := make([]string, 0, len(counts))
	for _, k := range order {
		parts = append(parts, fmt.Sprintf("%s %d", k, counts[k]))
	}
	// Defensive ordering for any values outside the known enums
	extra := make([]string, 0)
	for k := range counts {
		if !contains(order, k) {
			extra = append(extra, fmt.Sprintf("%s %d", k, counts[k]))
		}
	}
	sort.Strings(extra)
	return strings.Join(append(parts, extra...), "  ·  ")
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}

// renderFindings prints each finding with glyph, badge and annotations.
func renderFindings(findings []models.Finding) {
	if len(findings) == 0 {
		pterm.Println("✅ No issues found")
		pterm.Println()
		return
	}

	pterm.DefaultSection.Println("Findings")
	for _, f := range findings {
		pterm.Printf("%s %s %s\n", findingGlyph(f.Type), levelBadge(f.Severity),
			pterm.NewStyle(pterm.Bold).Sprint(f.Title))
		if f.Description != "" {
			pterm.Printf("   %s\n", f.Description)
		}
		if loc := findingLocation(f); loc != "" {
			pterm.Printf("   %s\n", pterm.NewStyle(pterm.FgGray).Sprint(loc))
		}
		if f.SuggestedFix != "" {
			pterm.Printf("   💡 %s\n", f.SuggestedFix)
		}
		pterm.Println()
	}
}

// findingLocation builds the optional location/sheet/row annotation.
func findingLocation(f models.Finding) string {
	parts := []string{}
	if f.Location != "" {
		parts = append(parts, f.Location)
	}
	if f.Sheet != "" {
		parts = append(parts, "sheet "+f.Sheet)
	}
	if f.Row != nil {
		parts = append(parts, fmt.Sprintf("row %d", *f.Row))
	}
	return strings.Join(parts, " · ")
}

// renderRecommendations prints each recommendation with category and badge.
func renderRecommendations(recs []models.Recommendation) {
	if len(recs) == 0 {
		return
	}

	pterm.DefaultSection.Println("Recommendations")
	for _, r := range recs {
		pterm.Printf("📋 %s %s %s\n", levelBadge(r.Priority),
			pterm.NewStyle(pterm.FgGray).Sprintf("[%s]", r.Category),
			pterm.NewStyle(pterm.Bold).Sprint(r.Title))
		if r.Description != "" {
			pterm.Printf("   %s\n", r.Description)
		}
		pterm.Println()
	}
}
