package notify

import "time"

// FallbackNotifications is the fixed inbox used when no live
// notifications can be collected.
func FallbackNotifications() []Notification {
	now := time.Now().Format(timeLayout)
	return []Notification{
		{
			ID:              "notif_001",
			Kind:            KindPRReview,
			Priority:        PriorityHigh,
			Title:           "PR #45 requires review - API endpoint changes",
			Description:     "Large changes to API endpoints need code review from senior developers",
			Source:          "GitHub",
			Timestamp:       now,
			Context:         map[string]any{"pr_number": 45, "files_changed": 8, "lines_changed": 156},
			RequiresAction:  true,
			EstimatedEffort: "1-2 hours",
		},
		{
			ID:              "notif_002",
			Kind:            KindBuildFail,
			Priority:        PriorityCritical,
			Title:           "Build failed on main branch",
			Description:     "CI/CD pipeline failed due to test failures in new API endpoints",
			Source:          "Jenkins",
			Timestamp:       now,
			Context:         map[string]any{"branch": "main", "build_number": 1234, "failure_reason": "test_failure"},
			RequiresAction:  true,
			EstimatedEffort: "2-3 hours",
		},
		{
			ID:              "notif_003",
			Kind:            KindSecurity,
			Priority:        PriorityHigh,
			Title:           "Security vulnerability detected in dependencies",
			Description:     "High severity CVE found in package.json dependencies",
			Source:          "Snyk",
			Timestamp:       now,
			Context:         map[string]any{"package": "lodash", "cve_id": "CVE-2024-1234", "severity": "high"},
			RequiresAction:  true,
			EstimatedEffort: "30-60 minutes",
		},
		{
			ID:              "notif_004",
			Kind:            KindDeployment,
			Priority:        PriorityMedium,
			Title:           "Production deployment scheduled",
			Description:     "New version ready for production deployment",
			Source:          "ArgoCD",
			Timestamp:       now,
			Context:         map[string]any{"version": "v1.2.3", "environment": "production", "rollback_available": true},
			RequiresAction:  false,
			EstimatedEffort: "15-30 minutes",
		},
		{
			ID:              "notif_005",
			Kind:            KindCodeQuality,
			Priority:        PriorityLow,
			Title:           "Code quality metrics below threshold",
			Description:     "Test coverage dropped below 80% threshold",
			Source:          "SonarQube",
			Timestamp:       now,
			Context:         map[string]any{"coverage": 75.2, "threshold": 80.0, "trend": "decreasing"},
			RequiresAction:  true,
			EstimatedEffort: "2-4 hours",
		},
	}
}
