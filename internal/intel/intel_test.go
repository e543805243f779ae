package intel

import (
	"encoding/json"
	"math"
	"reflect"
	"strings"
	"testing"
)

func TestParseHistoricalPatterns(t *testing.T) {
	payload := map[string]any{
		"patterns": []any{
			map[string]any{
				"repository":   "svc-a",
				"pattern_type": "commit_pattern",
				"frequency":    9.0,
				"confidence":   0.7,
				"first_seen":   "2024-02-01T08:00:00",
				"last_seen":    "2024-02-05T17:00:00",
				"description":  "Small commits",
				"impact_score": 0.6,
			},
			map[string]any{},
		},
	}

	got := ParseHistoricalPatterns(payload)
	if len(got) != 2 {
		t.Fatalf("expected 2 patterns, got %d", len(got))
	}
	if got[0].Repository != "svc-a" || got[0].Type != "commit_pattern" || got[0].Frequency != 9 {
		t.Errorf("first pattern = %+v", got[0])
	}

	d := got[1]
	if d.Repository != "unknown" || d.Type != "unknown" || d.Frequency != 1 ||
		d.Confidence != 0.5 || d.Impact != 0.5 || d.Description != "No description" {
		t.Errorf("defaulted pattern = %+v", d)
	}
	if d.FirstSeen == "" || d.LastSeen == "" {
		t.Error("timestamps must default to the current time")
	}
}

func TestParseRepoPatterns(t *testing.T) {
	payload := map[string]any{
		"patterns": []any{
			map[string]any{"type": "pr_pattern", "frequency": 4.0, "confidence": 0.65},
		},
	}

	got := ParseRepoPatterns(payload, "mcp_auto_pr")
	if len(got) != 1 {
		t.Fatalf("expected 1 pattern, got %d", len(got))
	}
	if got[0].Repository != "mcp_auto_pr" || got[0].Type != "pr_pattern" || got[0].Frequency != 4 {
		t.Errorf("pattern = %+v", got[0])
	}
}

func TestFallbackHistoricalPatterns(t *testing.T) {
	got := FallbackHistoricalPatterns()
	if len(got) != 4 {
		t.Fatalf("expected 4 patterns, got %d", len(got))
	}
	wantTypes := []string{"commit_pattern", "pr_pattern", "file_pattern", "time_pattern"}
	for i, p := range got {
		if p.Type != wantTypes[i] {
			t.Errorf("pattern %d type = %q", i, p.Type)
		}
	}
	if got[1].Frequency != 23 || got[1].Confidence != 0.85 || got[1].Impact != 0.9 {
		t.Errorf("pr pattern = %+v", got[1])
	}
}

func TestSimulatedRepoPatterns(t *testing.T) {
	cases := []struct {
		repo     string
		wantType string
		wantFreq int
	}{
		{"mcp-gateway-demo", "commit_pattern", 8},
		{"mcp_auto_pr", "pr_pattern", 12},
		{"my-auto-pr-bot", "pr_pattern", 12},
		{"mcp-context-forge", "file_pattern", 5},
	}
	for _, tc := range cases {
		got := SimulatedRepoPatterns(tc.repo)
		if len(got) != 1 {
			t.Fatalf("%s: expected 1 pattern, got %d", tc.repo, len(got))
		}
		if got[0].Type != tc.wantType || got[0].Frequency != tc.wantFreq {
			t.Errorf("%s: pattern = %+v", tc.repo, got[0])
		}
		if got[0].Repository != tc.repo {
			t.Errorf("%s: repository echoed as %q", tc.repo, got[0].Repository)
		}
	}
}

func TestInsightsCommonPattern(t *testing.T) {
	patterns := []Pattern{
		{Repository: "a", Type: "commit_pattern", Confidence: 0.9, Impact: 0.7},
		{Repository: "b", Type: "commit_pattern", Confidence: 0.7, Impact: 0.7},
		{Repository: "c", Type: "time_pattern", Confidence: 0.8, Impact: 0.7},
	}

	insights := Insights(patterns)
	if len(insights) != 1 {
		t.Fatalf("expected 1 insight, got %d", len(insights))
	}
	in := insights[0]
	if in.Type != "common_pattern" {
		t.Errorf("type = %q", in.Type)
	}
	if in.Title != "Common Commit Pattern Across Projects" {
		t.Errorf("title = %q", in.Title)
	}
	if in.Description != "Found 2 instances of commit_pattern across 2 repositories" {
		t.Errorf("description = %q", in.Description)
	}
	if in.Confidence != 0.7 {
		t.Errorf("confidence = %v, want the group minimum", in.Confidence)
	}
	if !reflect.DeepEqual(in.Repositories, []string{"a", "b"}) {
		t.Errorf("repositories = %v", in.Repositories)
	}
}

func TestInsightsEfficiencyGap(t *testing.T) {
	var patterns []Pattern
	for i := 0; i < 6; i++ {
		patterns = append(patterns, Pattern{Repository: "r", Type: "file_pattern", Confidence: 0.6, Impact: 0.5})
	}

	insights := Insights(patterns)
	var gap *Insight
	for i := range insights {
		if insights[i].Type == "efficiency_gap" {
			gap = &insights[i]
		}
	}
	if gap == nil {
		t.Fatalf("no efficiency_gap in %+v", insights)
	}
	if gap.Confidence != 0.8 || gap.EstimatedImpact != "High" {
		t.Errorf("gap = %+v", gap)
	}
	if !strings.Contains(gap.Description, "0.50") {
		t.Errorf("description = %q", gap.Description)
	}
}

func TestInsightsBestPractice(t *testing.T) {
	patterns := []Pattern{
		{Repository: "a", Type: "pr_pattern", Confidence: 0.9, Impact: 0.9},
	}

	insights := Insights(patterns)
	if len(insights) != 1 || insights[0].Type != "best_practice" {
		t.Fatalf("insights = %+v", insights)
	}
	if insights[0].Confidence != 0.9 {
		t.Errorf("confidence = %v", insights[0].Confidence)
	}
	if insights[0].Description != "Found 1 patterns with high impact scores" {
		t.Errorf("description = %q", insights[0].Description)
	}
}

func TestInsightsEmpty(t *testing.T) {
	if got := Insights(nil); len(got) != 0 {
		t.Fatalf("expected none, got %+v", got)
	}
}

func TestComputeMetrics(t *testing.T) {
	m := ComputeMetrics(FallbackHistoricalPatterns())

	if m.TotalRepositories != 3 || m.TotalDevelopers != 9 {
		t.Errorf("repos/devs = %d/%d", m.TotalRepositories, m.TotalDevelopers)
	}
	if math.Abs(m.ReviewEfficiency-82.5) > 1e-9 {
		t.Errorf("review efficiency = %v", m.ReviewEfficiency)
	}
	if math.Abs(m.TechnicalDebt-0.25) > 1e-9 {
		t.Errorf("technical debt = %v", m.TechnicalDebt)
	}
	if m.OverallHealth != "Good" {
		t.Errorf("health = %q", m.OverallHealth)
	}
	if m.AveragePRTime != "2.5 days" || m.DeploymentFrequency != "3 times per week" {
		t.Errorf("fixed fields = %q / %q", m.AveragePRTime, m.DeploymentFrequency)
	}
}

func TestComputeMetricsEmpty(t *testing.T) {
	m := ComputeMetrics(nil)
	if m.TotalRepositories != 0 || m.TotalDevelopers != 0 {
		t.Errorf("repos/devs = %d/%d", m.TotalRepositories, m.TotalDevelopers)
	}
	if m.TechnicalDebt != 1 {
		t.Errorf("technical debt = %v", m.TechnicalDebt)
	}
	if m.OverallHealth != "Needs Improvement" {
		t.Errorf("health = %q", m.OverallHealth)
	}
}

func TestTitleWords(t *testing.T) {
	if got := titleWords("commit_pattern"); got != "Commit Pattern" {
		t.Fatalf("titleWords = %q", got)
	}
}

func TestStoreOpShape(t *testing.T) {
	op := StoreOp("run_1", map[string]any{"changes": 6})

	if op.Tool != "memory-server-store" {
		t.Errorf("tool = %q", op.Tool)
	}
	if op.Params["key"] != "run_1" {
		t.Errorf("key param = %v", op.Params["key"])
	}
	var decoded map[string]any
	if err := json.Unmarshal([]byte(op.Params["value"].(string)), &decoded); err != nil {
		t.Fatalf("value is not a json string: %v", err)
	}
	if decoded["changes"] != 6.0 {
		t.Errorf("value = %#v", decoded)
	}
	if op.Fallback() != "run_1" {
		t.Errorf("fallback = %q", op.Fallback())
	}
}

func TestStorePatternOpKeys(t *testing.T) {
	p := Pattern{Repository: "mcp-gateway-demo", Type: "commit_pattern"}

	a := StorePatternOp(p).Params["key"].(string)
	b := StorePatternOp(p).Params["key"].(string)
	if !strings.HasPrefix(a, "pattern_mcp-gateway-demo_commit_pattern_") {
		t.Errorf("key = %q", a)
	}
	if a == b {
		t.Error("keys must be unique per store")
	}
}
