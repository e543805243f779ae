package pr

import (
	"fmt"

	"github.com/mcpflow/mcpflow/internal/retriever"
)

// ParseRecommendations reads the recommender tool's payload. Every field
// of a recommendation has a default, so partial entries still yield a
// complete value.
func ParseRecommendations(payload map[string]any) []Recommendation {
	var recs []Recommendation
	for _, e := range retriever.List(payload, "recommendations") {
		m, _ := e.(map[string]any)
		recs = append(recs, Recommendation{
			Title:       retriever.Str(m, "title", "Untitled PR"),
			Description: retriever.Str(m, "description", "No description"),
			Files:       retriever.StrList(m, "files", nil),
			Category:    retriever.Str(m, "category", "unknown"),
			Priority:    retriever.Str(m, "priority", "medium"),
			ReviewTime:  retriever.Str(m, "review_time", "1-2 hours"),
			Reviewers:   retriever.StrList(m, "reviewers", []string{"senior-dev"}),
			Branch:      retriever.Str(m, "branch_name", fmt.Sprintf("feature/pr-%d", len(recs)+1)),
			Labels:      retriever.StrList(m, "labels", nil),
		})
	}
	return recs
}

// FallbackRecommendations is the fixed three-PR plan used by the GitHub
// automation flow when neither the recommender tool nor a local changeset
// is available.
func FallbackRecommendations() []Recommendation {
	return []Recommendation{
		{
			Title:       "Add new API endpoints and utilities",
			Description: "Implements new API functionality and utility functions",
			Files:       []string{"src/api/endpoints.py", "src/utils/helpers.py"},
			Category:    "feature",
			Priority:    "high",
			Branch:      "feature/api-endpoints",
		},
		{
			Title:       "Refactor user model and add tests",
			Description: "Code refactoring and enhanced test coverage",
			Files:       []string{"src/models/user.py", "tests/test_api.py"},
			Category:    "refactor",
			Priority:    "medium",
			Branch:      "refactor/user-model-tests",
		},
		{
			Title:       "Update documentation and configuration",
			Description: "Documentation updates and configuration changes",
			Files:       []string{"docs/api.md", "config/database.yml"},
			Category:    "docs",
			Priority:    "low",
			Branch:      "docs/update-config",
		},
	}
}
