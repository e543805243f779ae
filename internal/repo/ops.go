package repo

import "github.com/mcpflow/mcpflow/internal/retriever"

// AnalyzeOp fetches the working-directory changes of repoPath.
func AnalyzeOp(repoPath string) retriever.Op[[]Change] {
	return retriever.Op[[]Change]{
		Tool:     "local-repo-analyzer-analyze-working-directory",
		Params:   map[string]any{"repository_path": repoPath, "include_diffs": false},
		Parse:    ParseChanges,
		Fallback: FallbackChanges,
	}
}

// SummaryOp fetches the outstanding-work summary of repoPath.
func SummaryOp(repoPath string) retriever.Op[State] {
	return retriever.Op[State]{
		Tool:     "local-repo-analyzer-get-outstanding-summary",
		Params:   map[string]any{"repository_path": repoPath, "detailed": true},
		Parse:    ParseState,
		Fallback: FallbackState,
	}
}
