// Package repo models the working-directory analysis the suite retrieves
// through the gateway: changed files, their categories and complexity,
// aggregate stats, and the outstanding-work summary of a repository.
package repo

// ChangeKind classifies how a file changed.
type ChangeKind string

const (
	KindModified  ChangeKind = "modified"
	KindAdded     ChangeKind = "added"
	KindUntracked ChangeKind = "untracked"
	KindDeleted   ChangeKind = "deleted"
)

// Change is one changed file in a working directory.
type Change struct {
	Path          string
	Kind          ChangeKind
	LinesAdded    int
	LinesDeleted  int
	Complexity    float64
	Category      string
	EstimatedTime string
}

// Stats aggregates a changeset for display and PR planning.
type Stats struct {
	TotalFiles          int
	LinesAdded          int
	LinesDeleted        int
	Categories          map[string]int
	HighComplexity      int
	MediumComplexity    int
	LowComplexity       int
	EstimatedTotal      string
	RecommendedApproach string
}

// State is the outstanding-work summary of a repository.
type State struct {
	Name               string
	CurrentBranch      string
	UncommittedChanges int
	StagedChanges      int
	UntrackedFiles     int
	LastCommit         string
	RemoteStatus       string
}
