package intel

import (
	"time"

	"github.com/mcpflow/mcpflow/internal/retriever"
)

// ParseHistoricalPatterns reads patterns stored in the memory tool.
// Records carry their repository and use the pattern_type key.
func ParseHistoricalPatterns(payload map[string]any) []Pattern {
	now := time.Now().Format(timeLayout)
	var patterns []Pattern
	for _, e := range retriever.List(payload, "patterns") {
		m, _ := e.(map[string]any)
		patterns = append(patterns, Pattern{
			Repository:  retriever.Str(m, "repository", "unknown"),
			Type:        retriever.Str(m, "pattern_type", "unknown"),
			Frequency:   retriever.Int(m, "frequency", 1),
			Confidence:  retriever.Num(m, "confidence", 0.5),
			FirstSeen:   retriever.Str(m, "first_seen", now),
			LastSeen:    retriever.Str(m, "last_seen", now),
			Description: retriever.Str(m, "description", "No description"),
			Impact:      retriever.Num(m, "impact_score", 0.5),
		})
	}
	return patterns
}

// ParseRepoPatterns reads the analyzer's per-repository pattern payload.
// The analyzer does not echo the repository back, so it is forced here,
// and pattern kinds come under the shorter type key.
func ParseRepoPatterns(payload map[string]any, repository string) []Pattern {
	now := time.Now().Format(timeLayout)
	var patterns []Pattern
	for _, e := range retriever.List(payload, "patterns") {
		m, _ := e.(map[string]any)
		patterns = append(patterns, Pattern{
			Repository:  repository,
			Type:        retriever.Str(m, "type", "unknown"),
			Frequency:   retriever.Int(m, "frequency", 1),
			Confidence:  retriever.Num(m, "confidence", 0.5),
			FirstSeen:   retriever.Str(m, "first_seen", now),
			LastSeen:    retriever.Str(m, "last_seen", now),
			Description: retriever.Str(m, "description", "No description"),
			Impact:      retriever.Num(m, "impact_score", 0.5),
		})
	}
	return patterns
}
