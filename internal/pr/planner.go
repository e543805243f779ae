package pr

import (
	"fmt"
	"strings"
	"time"

	"github.com/mcpflow/mcpflow/internal/repo"
)

// MaxFilesPerPR caps how many files one recommendation may carry. The
// same limit is sent to the recommender tool.
const MaxFilesPerPR = 8

// PlanFromChanges builds category-based recommendations locally. It also
// serves as the fallback when the recommender tool is unavailable, so its
// output depends only on the changeset and the current date.
func PlanFromChanges(changes []repo.Change) []Recommendation {
	return planAt(changes, time.Now())
}

func planAt(changes []repo.Change, now time.Time) []Recommendation {
	// Group by category in first-seen order so output is stable.
	var order []string
	groups := make(map[string][]repo.Change)
	for _, c := range changes {
		if _, ok := groups[c.Category]; !ok {
			order = append(order, c.Category)
		}
		groups[c.Category] = append(groups[c.Category], c)
	}

	var recs []Recommendation
	for _, category := range order {
		group := groups[category]
		for chunk := 0; len(group) > 0; chunk++ {
			n := len(group)
			if n > MaxFilesPerPR {
				n = MaxFilesPerPR
			}
			recs = append(recs, buildRecommendation(category, group[:n], chunk, now))
			group = group[n:]
		}
	}
	return recs
}

func buildRecommendation(category string, group []repo.Change, chunk int, now time.Time) Recommendation {
	files := make([]string, len(group))
	totalLines := 0
	highComplexity := false
	for i, c := range group {
		files[i] = c.Path
		totalLines += c.LinesAdded + c.LinesDeleted
		if c.Complexity > 0.7 {
			highComplexity = true
		}
	}

	priority := "low"
	switch {
	case category == "feature" && highComplexity:
		priority = "high"
	case category == "bugfix" || category == "refactor":
		priority = "medium"
	}

	var title, description string
	switch category {
	case "feature":
		title = "Add new feature functionality"
		description = fmt.Sprintf("Implements new feature features across %d files", len(files))
	case "refactor":
		title = "Refactor refactor code"
		description = "Code refactoring and improvements for refactor components"
	case "test":
		title = "Add test coverage"
		description = "Enhanced test coverage for new features"
	default:
		title = fmt.Sprintf("Update %s", category)
		description = fmt.Sprintf("Updates to %s files", category)
	}

	reviewTime := "30-60 minutes"
	switch {
	case totalLines > 100:
		reviewTime = "2-3 hours"
	case totalLines > 50:
		reviewTime = "1-2 hours"
	}

	branch := fmt.Sprintf("feature/%s-%s", category, now.Format("20060102"))
	if chunk > 0 {
		branch = fmt.Sprintf("%s-%d", branch, chunk+1)
	}

	return Recommendation{
		Title:       title,
		Description: description,
		Files:       files,
		Category:    category,
		Priority:    priority,
		ReviewTime:  reviewTime,
		Reviewers:   suggestReviewers(files, category),
		Branch:      branch,
		Labels:      []string{category, priority, fmt.Sprintf("lines-%d", totalLines)},
	}
}

// suggestReviewers combines the category's base reviewers with reviewers
// implied by file paths, deduped in first-seen order and capped at three.
func suggestReviewers(files []string, category string) []string {
	var reviewers []string
	switch category {
	case "feature":
		reviewers = []string{"product-owner", "senior-dev"}
	case "test":
		reviewers = []string{"qa-lead", "dev-ops"}
	case "docs":
		reviewers = []string{"tech-writer", "product-owner"}
	case "config":
		reviewers = []string{"dev-ops", "senior-dev"}
	default:
		reviewers = []string{"senior-dev"}
	}

	for _, f := range files {
		switch {
		case strings.Contains(f, "api"):
			reviewers = append(reviewers, "api-lead")
		case strings.Contains(f, "database"), strings.Contains(f, "models"):
			reviewers = append(reviewers, "data-engineer")
		case strings.Contains(f, "frontend"), strings.Contains(f, "ui"):
			reviewers = append(reviewers, "frontend-lead")
		}
	}

	seen := make(map[string]bool, len(reviewers))
	unique := reviewers[:0]
	for _, r := range reviewers {
		if !seen[r] {
			seen[r] = true
			unique = append(unique, r)
		}
	}
	if len(unique) > 3 {
		unique = unique[:3]
	}
	return unique
}
