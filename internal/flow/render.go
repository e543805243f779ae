package flow

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mcpflow/mcpflow/internal/console"
	"github.com/mcpflow/mcpflow/internal/pr"
	"github.com/mcpflow/mcpflow/internal/repo"
	"github.com/mcpflow/mcpflow/internal/retriever"
)

// fetchChanges analyzes the configured working tree. A clean tree or an
// unreachable analyzer both degrade to the sample changeset so the rest
// of the flow always has material to work with.
func fetchChanges(ctx context.Context, d *Deps, r *Report) ([]repo.Change, repo.Stats) {
	r.step("analyze")
	d.pause()
	d.Out.Step("Analyzing working directory")

	out := retriever.Fetch(ctx, d.Gateway, d.Log, repo.AnalyzeOp(d.Config.Workspace.RepoPath))
	changes := out.Value
	switch {
	case out.Source == retriever.Fallback:
		d.Out.Warn("analyzer unavailable, using sample changeset")
	case len(changes) == 0:
		changes = repo.FallbackChanges()
		d.Out.Warn("working directory is clean, using sample changeset")
	default:
		d.Out.OK("%d changes analyzed", len(changes))
	}

	r.Counters["changes"] = len(changes)
	return changes, repo.BuildStats(changes)
}

// fetchRecommendations plans pull requests for the changeset, remotely
// when the recommender answers and locally otherwise.
func fetchRecommendations(ctx context.Context, d *Deps, r *Report, changes []repo.Change, stats repo.Stats) []pr.Recommendation {
	r.step("recommendations")
	d.pause()
	d.Out.Step("Generating PR recommendations")

	out := retriever.Fetch(ctx, d.Gateway, d.Log, pr.RecommendationsOp(changes, stats))
	recs := out.Value
	if len(recs) == 0 {
		recs = pr.PlanFromChanges(changes)
	}
	if out.Source == retriever.Fallback {
		d.Out.Warn("recommender unavailable, planned locally")
	} else {
		d.Out.OK("%d pull requests recommended", len(recs))
	}

	r.Counters["recommendations"] = len(recs)
	return recs
}

// createPR pushes one recommendation through the branch and PR tools.
func createPR(ctx context.Context, d *Deps, rec pr.Recommendation) pr.CreatedPR {
	slug := d.Config.Workspace.GitHubRepo
	branch := retriever.Fetch(ctx, d.Gateway, d.Log, pr.CreateBranchOp(slug, rec.Branch))
	created := retriever.Fetch(ctx, d.Gateway, d.Log, pr.CreatePullRequestOp(slug, rec, branch.Value))

	if created.Source == retriever.Fallback {
		d.Out.Warn("PR simulated locally: %s", rec.Title)
	} else {
		d.Out.OK("PR created: %s", rec.Title)
	}
	return created.Value
}

func renderChanges(out *console.Printer, changes []repo.Change, stats repo.Stats) {
	rows := make([][]string, 0, len(changes))
	for _, c := range changes {
		rows = append(rows, []string{
			c.Path,
			string(c.Kind),
			fmt.Sprintf("+%d/-%d", c.LinesAdded, c.LinesDeleted),
			c.Category,
			fmt.Sprintf("%.1f", c.Complexity),
			c.EstimatedTime,
		})
	}
	out.Table("Working directory changes", []string{"File", "Status", "Lines", "Category", "Complexity", "Estimate"}, rows)

	out.KeyValues("Change summary", [][2]string{
		{"Files changed", strconv.Itoa(stats.TotalFiles)},
		{"Lines added", strconv.Itoa(stats.LinesAdded)},
		{"Lines deleted", strconv.Itoa(stats.LinesDeleted)},
		{"High complexity", strconv.Itoa(stats.HighComplexity)},
		{"Estimated effort", stats.EstimatedTotal},
		{"Suggested approach", stats.RecommendedApproach},
	})
}

func renderRecommendation(out *console.Printer, rec pr.Recommendation) {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", rec.Description)
	fmt.Fprintf(&b, "Files: %s\n", strings.Join(rec.Files, ", "))
	fmt.Fprintf(&b, "Priority: %s   Review: %s\n", rec.Priority, rec.ReviewTime)
	fmt.Fprintf(&b, "Branch: %s\n", rec.Branch)
	fmt.Fprintf(&b, "Reviewers: %s", strings.Join(rec.Reviewers, ", "))
	if len(rec.Labels) > 0 {
		fmt.Fprintf(&b, "\nLabels: %s", strings.Join(rec.Labels, ", "))
	}
	out.Panel(rec.Title, b.String())
}
