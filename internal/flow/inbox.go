package flow

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mcpflow/mcpflow/internal/intel"
	"github.com/mcpflow/mcpflow/internal/notify"
	"github.com/mcpflow/mcpflow/internal/retriever"
)

// Inbox runs the notification triage demo: fetch the GitHub inbox, fold in
// team-communication records from memory, reprioritize, answer each item
// with an automated response, and close with context suggestions.
func Inbox(ctx context.Context, d Deps) Report {
	d.normalize()
	r := newReport("inbox")

	d.Out.Banner("Smart Notification Inbox")
	if !gate(ctx, &d, &r) {
		return r
	}
	discover(ctx, &d, &r)

	r.step("notifications")
	d.pause()
	d.Out.Step("Fetching notifications")
	out := retriever.Fetch(ctx, d.Gateway, d.Log, notify.NotificationsOp(d.Config.Workspace.GitHubRepo))
	notifications := out.Value
	switch {
	case out.Source == retriever.Fallback:
		d.Out.Warn("GitHub unavailable, using sample inbox")
	case len(notifications) == 0:
		notifications = notify.FallbackNotifications()
		d.Out.Warn("inbox is empty, using sample inbox")
	default:
		d.Out.OK("%d notifications fetched", len(notifications))
	}

	team := retriever.Fetch(ctx, d.Gateway, d.Log, notify.TeamQueryOp())
	notifications = append(notifications, team.Value...)

	prioritized := notify.Reprioritize(notifications)
	r.Counters["notifications"] = len(prioritized)

	rows := make([][]string, 0, len(prioritized))
	for _, n := range prioritized {
		rows = append(rows, []string{n.ID, string(n.Kind), string(n.Priority), n.Title, n.EstimatedEffort})
	}
	d.Out.Table("Inbox", []string{"ID", "Kind", "Priority", "Title", "Effort"}, rows)

	r.step("responses")
	d.pause()
	d.Out.Step("Generating automated responses")
	for _, n := range prioritized {
		resp := notify.ResponseFor(n)

		var b strings.Builder
		fmt.Fprintf(&b, "%s\n", resp.Content)
		fmt.Fprintf(&b, "Confidence: %.2f", resp.Confidence)
		for _, a := range resp.ActionsTaken {
			fmt.Fprintf(&b, "\n- done: %s", a)
		}
		for _, s := range resp.NextSteps {
			fmt.Fprintf(&b, "\n- next: %s", s)
		}
		d.Out.Panel(fmt.Sprintf("%s (%s)", n.Title, resp.Type), b.String())

		key := fmt.Sprintf("response_pattern_%s_%s", n.Kind, n.ID)
		retriever.Fetch(ctx, d.Gateway, d.Log, intel.StoreOp(key, notify.ResponseRecord(resp)))
		r.Counters["responses"]++
	}

	r.step("suggestions")
	d.pause()
	d.Out.Step("Collecting context suggestions")
	files := retriever.Fetch(ctx, d.Gateway, d.Log, notify.ContextFilesOp(d.Config.Workspace.RepoPath))
	var suggestions []notify.Suggestion
	if files.Source == retriever.Fallback {
		suggestions = notify.FallbackSuggestions()
		d.Out.Warn("repository context unavailable, using generic suggestions")
	} else {
		d.Out.Info("%d entries in repository context", len(files.Value))
		suggestions = notify.SuggestionsFor(prioritized)
	}
	for _, s := range suggestions {
		var b strings.Builder
		fmt.Fprintf(&b, "%s\n", s.Description)
		fmt.Fprintf(&b, "Priority: %s   Impact: %s", s.Priority, s.EstimatedImpact)
		if len(s.TeamMembers) > 0 {
			fmt.Fprintf(&b, "\nTeam: %s", strings.Join(s.TeamMembers, ", "))
		}
		d.Out.Panel(s.Title, b.String())
	}
	r.Counters["suggestions"] = len(suggestions)

	d.Out.Blank()
	d.Out.KeyValues("Inbox summary", [][2]string{
		{"Notifications", strconv.Itoa(r.Counters["notifications"])},
		{"Responses", strconv.Itoa(r.Counters["responses"])},
		{"Suggestions", strconv.Itoa(r.Counters["suggestions"])},
		{"Tools available", strconv.Itoa(r.Counters["tools"])},
	})
	d.Out.OK("inbox processed")
	return r
}
