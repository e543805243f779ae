package flow

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mcpflow/mcpflow/internal/intel"
	"github.com/mcpflow/mcpflow/internal/retriever"
)

// Insights runs the organization dashboard: load historical patterns from
// memory, analyze every configured repository, derive insights and
// metrics, store the discoveries, and render the dashboard.
func Insights(ctx context.Context, d Deps) Report {
	d.normalize()
	r := newReport("insights")

	d.Out.Banner("Enterprise Development Insights")
	if !gate(ctx, &d, &r) {
		return r
	}
	discover(ctx, &d, &r)

	r.step("historical")
	d.pause()
	d.Out.Step("Loading historical patterns")
	hist := retriever.Fetch(ctx, d.Gateway, d.Log, intel.QueryPatternsOp())
	patterns := hist.Value
	switch {
	case hist.Source == retriever.Fallback:
		d.Out.Warn("memory unavailable, using baseline patterns")
	case len(patterns) == 0:
		patterns = intel.FallbackHistoricalPatterns()
		d.Out.Warn("no stored patterns yet, using baseline set")
	default:
		d.Out.OK("%d historical patterns loaded", len(patterns))
	}

	r.step("repositories")
	d.pause()
	d.Out.Step("Analyzing repositories")
	var discovered []intel.Pattern
	for _, name := range d.Config.Workspace.Repositories {
		out := retriever.Fetch(ctx, d.Gateway, d.Log, intel.AnalyzePatternsOp(name))
		d.Out.Bullet("%s: %d patterns", name, len(out.Value))
		discovered = append(discovered, out.Value...)
	}
	r.Counters["repositories"] = len(d.Config.Workspace.Repositories)

	all := make([]intel.Pattern, 0, len(patterns)+len(discovered))
	all = append(all, patterns...)
	all = append(all, discovered...)
	r.Counters["patterns"] = len(all)

	insights := intel.Insights(all)
	metrics := intel.ComputeMetrics(all)
	r.Counters["insights"] = len(insights)

	r.step("store")
	d.pause()
	d.Out.Step("Storing discovered patterns")
	stored := 0
	for _, p := range discovered {
		out := retriever.Fetch(ctx, d.Gateway, d.Log, intel.StorePatternOp(p))
		if out.Source == retriever.Live {
			stored++
		}
	}
	if stored > 0 {
		d.Out.OK("%d patterns stored", stored)
	} else {
		d.Out.Warn("memory unavailable, nothing stored")
	}
	r.Counters["stored"] = stored

	r.step("dashboard")
	rows := make([][]string, 0, len(all))
	for _, p := range all {
		rows = append(rows, []string{
			p.Repository,
			p.Type,
			strconv.Itoa(p.Frequency),
			fmt.Sprintf("%.2f", p.Confidence),
			fmt.Sprintf("%.2f", p.Impact),
		})
	}
	d.Out.Table("Development patterns", []string{"Repository", "Type", "Frequency", "Confidence", "Impact"}, rows)

	for _, in := range insights {
		var b strings.Builder
		fmt.Fprintf(&b, "%s\n", in.Description)
		fmt.Fprintf(&b, "Confidence: %.2f   Impact: %s\n", in.Confidence, in.EstimatedImpact)
		fmt.Fprintf(&b, "Repositories: %s", strings.Join(in.Repositories, ", "))
		for _, rec := range in.Recommendations {
			fmt.Fprintf(&b, "\n- %s", rec)
		}
		d.Out.Panel(in.Title, b.String())
	}

	d.Out.KeyValues("Organization metrics", [][2]string{
		{"Repositories", strconv.Itoa(metrics.TotalRepositories)},
		{"Developers", strconv.Itoa(metrics.TotalDevelopers)},
		{"Average PR time", metrics.AveragePRTime},
		{"Review efficiency", fmt.Sprintf("%.1f%%", metrics.ReviewEfficiency)},
		{"Deployment frequency", metrics.DeploymentFrequency},
		{"Technical debt", fmt.Sprintf("%.2f", metrics.TechnicalDebt)},
		{"Overall health", metrics.OverallHealth},
	})
	d.Out.OK("insights generated")
	return r
}
