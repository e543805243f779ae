// Package notify triages development notifications: collecting them via
// the gateway, reprioritizing, and generating automated responses and
// context suggestions.
package notify

const timeLayout = "2006-01-02T15:04:05"

// Kind classifies a notification's origin event.
type Kind string

const (
	KindPRReview    Kind = "pr_review"
	KindBuildFail   Kind = "build_failure"
	KindSecurity    Kind = "security_alert"
	KindDeployment  Kind = "deployment"
	KindCodeQuality Kind = "code_quality"
	KindTeamComms   Kind = "team_communication"
)

// Priority orders notifications for triage.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
	PriorityInfo     Priority = "info"
)

// rank returns the sort position of a priority, most urgent first.
// Unknown priorities sort last.
func (p Priority) rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	case PriorityInfo:
		return 4
	}
	return 5
}

// Notification is one triaged development event.
type Notification struct {
	ID              string
	Kind            Kind
	Priority        Priority
	Title           string
	Description     string
	Source          string
	Timestamp       string
	Context         map[string]any
	RequiresAction  bool
	EstimatedEffort string
}

// Response is an automated reaction to a notification.
type Response struct {
	NotificationID string
	Type           string // comment, action, escalation, suggestion
	Content        string
	Confidence     float64
	ActionsTaken   []string
	NextSteps      []string
}

// Suggestion is a context-aware process improvement.
type Suggestion struct {
	Type            string // code_review, testing, documentation, deployment
	Title           string
	Description     string
	Priority        string
	EstimatedImpact string
	RelatedFiles    []string
	TeamMembers     []string
}
