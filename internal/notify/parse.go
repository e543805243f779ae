package notify

import (
	"strings"
	"time"

	"github.com/mcpflow/mcpflow/internal/retriever"
)

// ParseGitHubNotifications reads the GitHub tool's notification payload.
// Everything arriving this way is treated as a PR review; urgency in the
// title lifts the priority.
func ParseGitHubNotifications(payload map[string]any) []Notification {
	now := time.Now().Format(timeLayout)
	var notifications []Notification
	for _, e := range retriever.List(payload, "notifications") {
		m, _ := e.(map[string]any)
		title := retriever.Str(m, "title", "GitHub Notification")

		priority := PriorityMedium
		if strings.Contains(strings.ToLower(title), "urgent") {
			priority = PriorityHigh
		}

		notifications = append(notifications, Notification{
			ID:          "github_" + retriever.Str(m, "id", "unknown"),
			Kind:        KindPRReview,
			Priority:    priority,
			Title:       title,
			Description: retriever.Str(m, "body", "No description"),
			Source:      "GitHub",
			Timestamp:   retriever.Str(m, "updated_at", now),
			Context: map[string]any{
				"repository": retriever.Map(m, "repository"),
				"subject":    retriever.Map(m, "subject"),
			},
			RequiresAction:  true,
			EstimatedEffort: "30-60 minutes",
		})
	}
	return notifications
}
