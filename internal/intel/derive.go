package intel

import (
	"fmt"
	"strings"
)

// Insights derives cross-project findings from a combined pattern set.
// Pattern types and repositories are walked in first-seen order so a
// given input always yields the same insight list.
func Insights(all []Pattern) []Insight {
	var typeOrder []string
	byType := make(map[string][]Pattern)
	var repos []string
	seenRepo := make(map[string]bool)
	for _, p := range all {
		if _, ok := byType[p.Type]; !ok {
			typeOrder = append(typeOrder, p.Type)
		}
		byType[p.Type] = append(byType[p.Type], p)
		if !seenRepo[p.Repository] {
			seenRepo[p.Repository] = true
			repos = append(repos, p.Repository)
		}
	}

	var insights []Insight

	// A pattern type observed more than once spans projects.
	for _, t := range typeOrder {
		group := byType[t]
		if len(group) < 2 {
			continue
		}
		confidence := group[0].Confidence
		for _, p := range group[1:] {
			if p.Confidence < confidence {
				confidence = p.Confidence
			}
		}
		groupRepos := distinctRepos(group)
		insights = append(insights, Insight{
			Type:            "common_pattern",
			Title:           fmt.Sprintf("Common %s Across Projects", titleWords(t)),
			Description:     fmt.Sprintf("Found %d instances of %s across %d repositories", len(group), t, len(groupRepos)),
			Repositories:    groupRepos,
			Confidence:      confidence,
			EstimatedImpact: "Medium to High",
			Recommendations: []string{
				"Standardize workflow across projects",
				"Create shared templates and guidelines",
				"Implement cross-project automation",
			},
		})
	}

	// A broad sample with weak impact points at an efficiency gap.
	if len(all) > 5 {
		if avg := meanImpact(all); avg < 0.6 {
			insights = append(insights, Insight{
				Type:            "efficiency_gap",
				Title:           "Development Efficiency Optimization Opportunity",
				Description:     fmt.Sprintf("Average pattern impact score is %.2f, indicating room for improvement", avg),
				Repositories:    repos,
				Confidence:      0.8,
				EstimatedImpact: "High",
				Recommendations: []string{
					"Review and optimize development workflows",
					"Implement best practices from high-performing projects",
					"Provide team training on efficient practices",
				},
			})
		}
	}

	// Patterns with outstanding impact are best-practice candidates.
	var highImpact []Pattern
	for _, p := range all {
		if p.Impact > 0.8 {
			highImpact = append(highImpact, p)
		}
	}
	if len(highImpact) > 0 {
		insights = append(insights, Insight{
			Type:            "best_practice",
			Title:           "High-Impact Development Patterns Identified",
			Description:     fmt.Sprintf("Found %d patterns with high impact scores", len(highImpact)),
			Repositories:    distinctRepos(highImpact),
			Confidence:      0.9,
			EstimatedImpact: "High",
			Recommendations: []string{
				"Document and share these patterns across teams",
				"Create training materials based on successful practices",
				"Implement automated enforcement where possible",
			},
		})
	}

	return insights
}

// ComputeMetrics rolls a pattern set up into organization-level numbers.
// Developer count is an estimate of three per repository.
func ComputeMetrics(all []Pattern) Metrics {
	repos := distinctRepos(all)

	var avgConfidence, avgImpact float64
	if len(all) > 0 {
		for _, p := range all {
			avgConfidence += p.Confidence
		}
		avgConfidence /= float64(len(all))
		avgImpact = meanImpact(all)
	}

	health := "Needs Improvement"
	if avgImpact > 0.6 {
		health = "Good"
	}

	return Metrics{
		TotalRepositories:   len(repos),
		TotalDevelopers:     len(repos) * 3,
		AveragePRTime:       "2.5 days",
		ReviewEfficiency:    avgConfidence * 100,
		DeploymentFrequency: "3 times per week",
		TechnicalDebt:       1 - avgImpact,
		OverallHealth:       health,
	}
}

func meanImpact(patterns []Pattern) float64 {
	var sum float64
	for _, p := range patterns {
		sum += p.Impact
	}
	return sum / float64(len(patterns))
}

func distinctRepos(patterns []Pattern) []string {
	seen := make(map[string]bool, len(patterns))
	var repos []string
	for _, p := range patterns {
		if !seen[p.Repository] {
			seen[p.Repository] = true
			repos = append(repos, p.Repository)
		}
	}
	return repos
}

// titleWords renders a snake_case pattern type as display words.
func titleWords(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
