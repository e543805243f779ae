package notify

import "github.com/mcpflow/mcpflow/internal/retriever"

// NotificationsOp fetches unread notifications for a GitHub repository.
// When the gateway cannot provide any, the fixed inbox takes over.
func NotificationsOp(repository string) retriever.Op[[]Notification] {
	return retriever.Op[[]Notification]{
		Tool: "github-server-get-notifications",
		Params: map[string]any{
			"repository":   repository,
			"include_read": false,
		},
		Parse:    ParseGitHubNotifications,
		Fallback: FallbackNotifications,
	}
}

// TeamQueryOp checks the memory tool for stored team-communication
// patterns. Nothing stores such records today, so both branches yield an
// empty list; the call still exercises the memory tool's query path.
func TeamQueryOp() retriever.Op[[]Notification] {
	return retriever.Op[[]Notification]{
		Tool: "memory-server-query",
		Params: map[string]any{
			"query": "team communication patterns notifications",
			"limit": 10,
		},
		Parse:    func(map[string]any) []Notification { return nil },
		Fallback: func() []Notification { return nil },
	}
}

// ContextFilesOp lists the repository directory through the filesystem
// tool; the entries ground context suggestions.
func ContextFilesOp(path string) retriever.Op[[]string] {
	return retriever.Op[[]string]{
		Tool:   "filesystem-server-list-directory",
		Params: map[string]any{"path": path},
		Parse: func(payload map[string]any) []string {
			return retriever.StrList(payload, "entries", nil)
		},
		Fallback: func() []string { return nil },
	}
}

// ResponseRecord flattens a response for storage in the memory tool.
func ResponseRecord(r Response) map[string]any {
	return map[string]any{
		"notification_id": r.NotificationID,
		"response_type":   r.Type,
		"content":         r.Content,
		"confidence":      r.Confidence,
		"actions_taken":   r.ActionsTaken,
		"next_steps":      r.NextSteps,
	}
}
