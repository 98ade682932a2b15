// Copyright (c) 2026 Contascan
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package models defines the data types exchanged with the analysis backend.
// All types mirror the JSON contracts of the REST API; none of them carry
// behavior beyond pure projections over their own fields.
package models

// Finding types as reported by the analysis engine.
const (
	FindingError   = "error"
	FindingWarning = "warning"
	FindingInfo    = "info"
)

// Severity and priority levels shared by findings and recommendations.
const (
	LevelHigh   = "high"
	LevelMedium = "medium"
	LevelLow    = "low"
)

// Recommendation categories.
const (
	CategoryCalculation = "calculation"
	CategoryFormat      = "format"
	CategoryProcess     = "process"
	CategoryValidation  = "validation"
	CategoryOther       = "other"
)

// FindingTypes lists the finding type values in display order.
var FindingTypes = []string{FindingError, FindingWarning, FindingInfo}

// Levels lists severity/priority values in display order.
var Levels = []string{LevelHigh, LevelMedium, LevelLow}

// Finding is a single issue detected in an analyzed workbook.
type Finding struct {
	Type         string `json:"type"`
	Severity     string `json:"severity"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	Location     string `json:"location,omitempty"`
	Sheet        string `json:"sheet,omitempty"`
	Row          *int   `json:"row,omitempty"`
	SuggestedFix string `json:"suggested_fix,omitempty"`
}

// Recommendation is an improvement suggestion returned alongside findings.
type Recommendation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
}

// AnalysisResult is the full response of the analyze operation. The client
// treats it as immutable; a new analysis replaces it wholesale.
type AnalysisResult struct {
	Summary         string           `json:"summary"`
	Findings        []Finding        `json:"findings"`
	Recommendations []Recommendation `json:"recommendations"`
	Metadata        map[string]any   `json:"metadata,omitempty"`
	SessionID       string           `json:"session_id,omitempty"`
}

// HasSession reports whether the result is tied to a server-side chat
// session. No session means no chat affordance.
func (r *AnalysisResult) HasSession() bool {
	return r != nil && r.SessionID != ""
}

// CountFindingsByType groups findings by their type. Every known type is
// present in the result, with 0 for types that do not occur.
func CountFindingsByType(findings []Finding) map[string]int {
	counts := make(map[string]int, len(FindingTypes))
	for _, t := range FindingTypes {
		counts[t] = 0
	}
	for _, f := range findings {
		counts[f.Type]++
	}
	return counts
}

// CountFindingsBySeverity groups findings by severity, zero-filled.
func CountFindingsBySeverity(findings []Finding) map[string]int {
	counts := make(map[string]int, len(Levels))
	for _, l := range Levels {
		counts[l] = 0
	}
	for _, f := range findings {
		counts[f.Severity]++
	}
	return counts
}

// CountRecommendationsByPriority groups recommendations by priority,
// zero-filled.
func CountRecommendationsByPriority(recs []Recommendation) map[string]int {
	counts := make(map[string]int, len(Levels))
	for _, l := range Levels {
		counts[l] = 0
	}
	for _, r := range recs {
		counts[r.Priority]++
	}
	return counts
}
