// Package intel aggregates development patterns across repositories and
// derives cross-project insights and enterprise metrics from them.
package intel

// timeLayout is the second-precision ISO form used in pattern records.
const timeLayout = "2006-01-02T15:04:05"

// Pattern is one observed development pattern in a repository.
type Pattern struct {
	Repository  string
	Type        string // commit_pattern, pr_pattern, file_pattern, time_pattern
	Frequency   int
	Confidence  float64
	FirstSeen   string
	LastSeen    string
	Description string
	Impact      float64
}

// Insight is a cross-project finding derived from a pattern set.
type Insight struct {
	Type            string // common_pattern, efficiency_gap, best_practice
	Title           string
	Description     string
	Repositories    []string
	Confidence      float64
	EstimatedImpact string
	Recommendations []string
}

// Metrics summarizes development health across the organization.
type Metrics struct {
	TotalRepositories   int
	TotalDevelopers     int
	AveragePRTime       string
	ReviewEfficiency    float64
	DeploymentFrequency string
	TechnicalDebt       float64
	OverallHealth       string
}
