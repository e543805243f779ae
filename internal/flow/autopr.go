package flow

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mcpflow/mcpflow/internal/pr"
)

// AutoPR runs the end-to-end automation demo: analyze the working tree,
// plan pull requests, and push each approved one through the GitHub tools.
func AutoPR(ctx context.Context, d Deps) Report {
	d.normalize()
	r := newReport("autopr")

	d.Out.Banner("MCP Auto PR")
	if !gate(ctx, &d, &r) {
		return r
	}
	discover(ctx, &d, &r)

	changes, stats := fetchChanges(ctx, &d, &r)
	renderChanges(d.Out, changes, stats)

	recs := fetchRecommendations(ctx, &d, &r, changes, stats)
	for _, rec := range recs {
		renderRecommendation(d.Out, rec)
	}

	r.step("github")
	d.pause()
	d.Out.Step("Creating pull requests")
	var created []pr.CreatedPR
	for _, rec := range recs {
		if !d.approve(fmt.Sprintf("Create %q", rec.Title)) {
			d.Out.Info("skipped %s", rec.Title)
			r.Counters["skipped"]++
			continue
		}
		created = append(created, createPR(ctx, &d, rec))
	}
	r.Counters["prs_created"] = len(created)

	d.Out.Blank()
	d.Out.KeyValues("Run summary", [][2]string{
		{"Changes analyzed", strconv.Itoa(r.Counters["changes"])},
		{"PRs recommended", strconv.Itoa(r.Counters["recommendations"])},
		{"PRs created", strconv.Itoa(len(created))},
		{"Tools available", strconv.Itoa(r.Counters["tools"])},
	})
	d.Out.OK("automation complete")
	return r
}
