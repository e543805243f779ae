package repo

// FallbackChanges is the synthetic changeset used when the analyzer is
// unreachable. The values are fixed so demo runs stay reproducible; the
// set spans five categories with exactly one docs item.
func FallbackChanges() []Change {
	return []Change{
		{Path: "src/api/endpoints.py", Kind: KindModified, LinesAdded: 45, LinesDeleted: 12, Complexity: 0.8, Category: "feature", EstimatedTime: "2-3 hours"},
		{Path: "src/models/user.py", Kind: KindModified, LinesAdded: 23, LinesDeleted: 8, Complexity: 0.6, Category: "refactor", EstimatedTime: "1-2 hours"},
		{Path: "tests/test_api.py", Kind: KindAdded, LinesAdded: 67, Complexity: 0.7, Category: "test", EstimatedTime: "1-1.5 hours"},
		{Path: "docs/api.md", Kind: KindModified, LinesAdded: 34, LinesDeleted: 15, Complexity: 0.3, Category: "docs", EstimatedTime: "30-45 minutes"},
		{Path: "src/utils/helpers.py", Kind: KindAdded, LinesAdded: 89, Complexity: 0.9, Category: "feature", EstimatedTime: "3-4 hours"},
		{Path: "config/database.yml", Kind: KindModified, LinesAdded: 12, LinesDeleted: 5, Complexity: 0.4, Category: "config", EstimatedTime: "15-30 minutes"},
	}
}

// FallbackState is the synthetic outstanding-work summary.
func FallbackState() State {
	return State{
		Name:               "mcp-gateway-demo",
		CurrentBranch:      "feature/automation-demo",
		UncommittedChanges: 6,
		StagedChanges:      2,
		UntrackedFiles:     3,
		LastCommit:         "feat: Add MCP Gateway integration",
		RemoteStatus:       "ahead of origin by 2 commits",
	}
}
