package intel

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mcpflow/mcpflow/internal/retriever"
)

// QueryPatternsOp asks the memory tool for previously stored patterns.
func QueryPatternsOp() retriever.Op[[]Pattern] {
	return retriever.Op[[]Pattern]{
		Tool: "memory-server-query",
		Params: map[string]any{
			"query": "development patterns workflow automation",
			"limit": 50,
		},
		Parse:    ParseHistoricalPatterns,
		Fallback: FallbackHistoricalPatterns,
	}
}

// AnalyzePatternsOp runs a deep pattern analysis on one repository.
func AnalyzePatternsOp(repository string) retriever.Op[[]Pattern] {
	return retriever.Op[[]Pattern]{
		Tool: "local-repo-analyzer-analyze-patterns",
		Params: map[string]any{
			"repository_path": repository,
			"analysis_depth":  "deep",
			"include_metrics": true,
		},
		Parse: func(payload map[string]any) []Pattern {
			return ParseRepoPatterns(payload, repository)
		},
		Fallback: func() []Pattern {
			return SimulatedRepoPatterns(repository)
		},
	}
}

// StorePatternOp records a newly discovered pattern in the memory tool
// under a unique key, so repeated runs never overwrite each other.
func StorePatternOp(p Pattern) retriever.Op[string] {
	record := map[string]any{
		"repository":    p.Repository,
		"pattern_type":  p.Type,
		"frequency":     p.Frequency,
		"confidence":    p.Confidence,
		"first_seen":    p.FirstSeen,
		"last_seen":     p.LastSeen,
		"description":   p.Description,
		"impact_score":  p.Impact,
		"discovered_at": time.Now().Format(timeLayout),
	}
	key := fmt.Sprintf("pattern_%s_%s_%s", p.Repository, p.Type, shortID())
	return StoreOp(key, record)
}

// StoreOp writes an arbitrary record to the memory tool. The outcome
// value is the key; Source says whether the gateway acknowledged it.
func StoreOp(key string, record map[string]any) retriever.Op[string] {
	value, err := json.Marshal(record)
	if err != nil {
		value = []byte("{}")
	}
	return retriever.Op[string]{
		Tool: "memory-server-store",
		Params: map[string]any{
			"key":   key,
			"value": string(value),
		},
		Parse: func(payload map[string]any) string {
			return retriever.Str(payload, "key", key)
		},
		Fallback: func() string { return key },
	}
}

func shortID() string {
	return uuid.NewString()[:8]
}
