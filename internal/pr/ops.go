package pr

import (
	"github.com/mcpflow/mcpflow/internal/repo"
	"github.com/mcpflow/mcpflow/internal/retriever"
)

// AnalysisData assembles the recommender tool's input from an analyzed
// changeset, mirroring the analyzer's own output shape. Nested values use
// the generic map and slice types JSON decoding produces, so the payload
// reads the same whether it crossed the wire or not.
func AnalysisData(changes []repo.Change, stats repo.Stats) map[string]any {
	grouped := map[string][]any{
		"modified":  {},
		"added":     {},
		"untracked": {},
		"deleted":   {},
	}
	for _, c := range changes {
		grouped[string(c.Kind)] = append(grouped[string(c.Kind)], map[string]any{
			"path":          c.Path,
			"status":        string(c.Kind),
			"lines_added":   c.LinesAdded,
			"lines_deleted": c.LinesDeleted,
		})
	}
	files := make(map[string]any, len(grouped))
	for kind, entries := range grouped {
		files[kind] = entries
	}

	return map[string]any{
		"files_changed": stats.TotalFiles,
		"total_lines":   stats.LinesAdded + stats.LinesDeleted,
		"categories":    stats.Categories,
		"complexity": map[string]any{
			"high":   stats.HighComplexity,
			"medium": stats.MediumComplexity,
			"low":    stats.LowComplexity,
		},
		"files": files,
	}
}

// RecommendationsOp asks the recommender tool for a category-based PR
// plan; when the tool is unavailable the same plan is computed locally
// from the changeset.
func RecommendationsOp(changes []repo.Change, stats repo.Stats) retriever.Op[[]Recommendation] {
	return retriever.Op[[]Recommendation]{
		Tool: "pr-recommender-generate-pr-recommendations",
		Params: map[string]any{
			"analysis_data":    AnalysisData(changes, stats),
			"strategy":         "category",
			"max_files_per_pr": MaxFilesPerPR,
		},
		Parse: ParseRecommendations,
		Fallback: func() []Recommendation {
			return PlanFromChanges(changes)
		},
	}
}

// WorkflowRecommendationsOp is the recommender op used by the unattended
// GitHub workflow. It submits the same analysis but degrades to the fixed
// three-PR plan rather than planning locally.
func WorkflowRecommendationsOp(changes []repo.Change, stats repo.Stats) retriever.Op[[]Recommendation] {
	op := RecommendationsOp(changes, stats)
	op.Fallback = FallbackRecommendations
	return op
}

// CreateBranchOp creates branch off main in the given repository. The
// outcome value is always the branch name; Source tells whether the
// gateway acknowledged it or the creation was simulated locally.
func CreateBranchOp(repository, branch string) retriever.Op[string] {
	return retriever.Op[string]{
		Tool: "github-server-create-branch",
		Params: map[string]any{
			"repository":  repository,
			"branch_name": branch,
			"base_branch": "main",
		},
		Parse: func(payload map[string]any) string {
			return retriever.Str(payload, "branch", branch)
		},
		Fallback: func() string { return branch },
	}
}

// CreatePullRequestOp opens a PR for rec from head onto main. Offline the
// op degrades to a simulated open PR so automation can complete.
func CreatePullRequestOp(repository string, rec Recommendation, head string) retriever.Op[CreatedPR] {
	labels := rec.Labels
	if len(labels) == 0 && rec.Category != "" {
		labels = []string{rec.Category}
	}
	reviewers := rec.Reviewers
	if len(reviewers) == 0 {
		reviewers = []string{"senior-dev"}
	}

	made := func(status string) CreatedPR {
		return CreatedPR{
			Title:     rec.Title,
			Branch:    head,
			Base:      "main",
			Files:     rec.Files,
			Labels:    labels,
			Reviewers: reviewers,
			Status:    status,
		}
	}

	return retriever.Op[CreatedPR]{
		Tool: "github-server-create-pull-request",
		Params: map[string]any{
			"repository": repository,
			"title":      rec.Title,
			"body":       rec.Description,
			"head":       head,
			"base":       "main",
			"labels":     labels,
		},
		Parse: func(payload map[string]any) CreatedPR {
			return made(retriever.Str(payload, "status", "open"))
		},
		Fallback: func() CreatedPR { return made("open") },
	}
}
