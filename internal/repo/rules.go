package repo

import "strings"

// complexityFor assigns the fixed analysis weight for a change kind.
// New and untracked files weigh more than edits, deletions less.
func complexityFor(kind ChangeKind) float64 {
	switch kind {
	case KindAdded:
		return 0.7
	case KindUntracked:
		return 0.8
	case KindDeleted:
		return 0.4
	default:
		return 0.6
	}
}

// Categorize buckets a file path by lowercased substring checks.
// Checks run in order and the first match wins, so a test under src/
// still lands in "test".
func Categorize(path string) string {
	p := strings.ToLower(path)
	switch {
	case strings.Contains(p, "test") || strings.Contains(p, "spec"):
		return "test"
	case strings.Contains(p, "docs") || strings.Contains(p, "readme") || strings.Contains(p, ".md"):
		return "docs"
	case strings.Contains(p, "config") || strings.Contains(p, ".yml") || strings.Contains(p, ".yaml"):
		return "config"
	case strings.Contains(p, "src") || strings.Contains(p, ".py") || strings.Contains(p, ".js"):
		return "feature"
	default:
		return "refactor"
	}
}

// EstimateEffort maps a changed-line count to a coarse working-time band.
func EstimateEffort(totalLines int) string {
	switch {
	case totalLines > 100:
		return "3-4 hours"
	case totalLines > 50:
		return "2-3 hours"
	case totalLines > 20:
		return "1-2 hours"
	default:
		return "30-60 minutes"
	}
}

// BuildStats aggregates a changeset into the summary the demos render.
func BuildStats(changes []Change) Stats {
	s := Stats{
		TotalFiles:          len(changes),
		Categories:          make(map[string]int),
		EstimatedTotal:      "8-12 hours",
		RecommendedApproach: "Split into focused PRs by category",
	}
	for _, c := range changes {
		s.LinesAdded += c.LinesAdded
		s.LinesDeleted += c.LinesDeleted
		s.Categories[c.Category]++
		switch {
		case c.Complexity > 0.7:
			s.HighComplexity++
		case c.Complexity >= 0.4:
			s.MediumComplexity++
		default:
			s.LowComplexity++
		}
	}
	return s
}
