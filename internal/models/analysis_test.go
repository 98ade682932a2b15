// Copyright (c) 2026 Contascan
// Licensed under the MIT License. See LICENSE file in the project root for details.

package models

import "testing"

func TestCountFindingsByType(t *testing.T) {
	findings := []Finding{
		{Type: FindingError},
		{Type: FindingError},
		{Type: FindingWarning},
	}

	counts := CountFindingsByType(findings)
	if counts[FindingError] != 2 {
		t.Errorf("errors = %d, want 2", counts[FindingError])
	}
	if counts[FindingWarning] != 1 {
		t.Errorf("warnings = %d, want 1", counts[FindingWarning])
	}
	if got, ok := counts[FindingInfo]; !ok || got != 0 {
		t.Errorf("info = %d (present=%v), want 0 present", got, ok)
	}
}

func TestCountsZeroFilledWhenEmpty(t *testing.T) {
	byType := CountFindingsByType(nil)
	for _, typ := range FindingTypes {
		if got, ok := byType[typ]; !ok || got != 0 {
			t.Errorf("type %q = %d (present=%v), want 0 present", typ, got, ok)
		}
	}

	bySeverity := CountFindingsBySeverity(nil)
	byPriority := CountRecommendationsByPriority(nil)
	for _, lvl := range Levels {
		if got, ok := bySeverity[lvl]; !ok || got != 0 {
			t.Errorf("severity %q = %d (present=%v), want 0 present", lvl, got, ok)
		}
		if got, ok := byPriority[lvl]; !ok || got != 0 {
			t.Errorf("priority %q = %d (present=%v), want 0 present", lvl, got, ok)
		}
	}
}

func TestCountRecommendationsByPriority(t *testing.T) {
	recs := []Recommendation{
		{Priority: LevelHigh},
		{Priority: LevelLow},
		{Priority: LevelLow},
	}

	counts := CountRecommendationsByPriority(recs)
	if counts[LevelHigh] != 1 || counts[LevelMedium] != 0 || counts[LevelLow] != 2 {
		t.Errorf("counts = %v", counts)
	}
}

func TestHasSession(t *testing.T) {
	var nilResult *AnalysisResult
	if nilResult.HasSession() {
		t.Error("nil result reports a session")
	}
	if (&AnalysisResult{}).HasSession() {
		t.Error("empty session id reports a session")
	}
	if !(&AnalysisResult{SessionID: "abc"}).HasSession() {
		t.Error("session id abc not reported")
	}
}
