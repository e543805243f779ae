package repo

import "github.com/mcpflow/mcpflow/internal/retriever"

// ParseChanges reads the analyzer's working-directory payload. The four
// file lists live under repository_status.working_directory; every field
// defaults, so any payload shape yields a (possibly empty) changeset.
func ParseChanges(payload map[string]any) []Change {
	wd := retriever.Map(retriever.Map(payload, "repository_status"), "working_directory")

	groups := []struct {
		key  string
		kind ChangeKind
	}{
		{"modified_files", KindModified},
		{"added_files", KindAdded},
		{"untracked_files", KindUntracked},
		{"deleted_files", KindDeleted},
	}

	var changes []Change
	for _, g := range groups {
		for _, e := range retriever.List(wd, g.key) {
			f, _ := e.(map[string]any)
			changes = append(changes, newChange(f, g.kind))
		}
	}
	return changes
}

func newChange(f map[string]any, kind ChangeKind) Change {
	path := retriever.Str(f, "path", "unknown")
	added := retriever.Int(f, "lines_added", 0)
	deleted := retriever.Int(f, "lines_deleted", 0)

	// Only edits carry both counts. New files cannot have deletions and
	// deleted files cannot have additions, whatever the payload claims.
	switch kind {
	case KindAdded, KindUntracked:
		deleted = 0
	case KindDeleted:
		added = 0
	}

	return Change{
		Path:          path,
		Kind:          kind,
		LinesAdded:    added,
		LinesDeleted:  deleted,
		Complexity:    complexityFor(kind),
		Category:      Categorize(path),
		EstimatedTime: EstimateEffort(added + deleted),
	}
}

// ParseState reads the outstanding-summary payload with per-field defaults.
func ParseState(payload map[string]any) State {
	return State{
		Name:               retriever.Str(payload, "repository_name", "unknown"),
		CurrentBranch:      retriever.Str(payload, "current_branch", "main"),
		UncommittedChanges: retriever.Int(payload, "uncommitted_changes", 0),
		StagedChanges:      retriever.Int(payload, "staged_changes", 0),
		UntrackedFiles:     retriever.Int(payload, "untracked_files", 0),
		LastCommit:         retriever.Str(payload, "last_commit", "unknown"),
		RemoteStatus:       retriever.Str(payload, "remote_status", "unknown"),
	}
}
