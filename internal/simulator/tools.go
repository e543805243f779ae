package simulator

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"math"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/mcpflow/mcpflow/internal/mcp"
	"github.com/mcpflow/mcpflow/internal/pr"
	"github.com/mcpflow/mcpflow/internal/repo"
	"github.com/mcpflow/mcpflow/internal/retriever"
)

// Tools bundles the simulated tool implementations and their shared state.
// Analyzer output is synthesized deterministically from the repository path
// so repeated runs against the same tree tell the same story.
type Tools struct {
	memory    *Memory
	prCounter atomic.Int64
}

// NewTools builds the tool set on top of the given memory store.
func NewTools(memory *Memory) *Tools {
	t := &Tools{memory: memory}
	t.prCounter.Store(100)
	return t
}

// RegisterAll registers every simulated tool on the registry.
func (t *Tools) RegisterAll(r *Registry) {
	r.Register(mcp.ToolDescriptor{
		Name:        "local-repo-analyzer-analyze-working-directory",
		Description: "Analyze uncommitted changes in a repository working directory",
	}, t.analyzeWorkingDirectory)
	r.Register(mcp.ToolDescriptor{
		Name:        "local-repo-analyzer-get-outstanding-summary",
		Description: "Summarize the outstanding state of a repository",
	}, t.outstandingSummary)
	r.Register(mcp.ToolDescriptor{
		Name:        "local-repo-analyzer-analyze-patterns",
		Description: "Detect development patterns in a repository's history",
	}, t.analyzePatterns)
	r.Register(mcp.ToolDescriptor{
		Name:        "pr-recommender-generate-pr-recommendations",
		Description: "Group analyzed changes into reviewable pull requests",
	}, t.generateRecommendations)
	r.Register(mcp.ToolDescriptor{
		Name:        "github-server-create-branch",
		Description: "Create a branch in a GitHub repository",
	}, t.createBranch)
	r.Register(mcp.ToolDescriptor{
		Name:        "github-server-create-pull-request",
		Description: "Open a pull request in a GitHub repository",
	}, t.createPullRequest)
	r.Register(mcp.ToolDescriptor{
		Name:        "github-server-get-notifications",
		Description: "Fetch unread notifications for a GitHub repository",
	}, t.getNotifications)
	r.Register(mcp.ToolDescriptor{
		Name:        "memory-server-store",
		Description: "Store a value in the shared memory",
	}, t.memoryStore)
	r.Register(mcp.ToolDescriptor{
		Name:        "memory-server-query",
		Description: "Query stored memory records by keyword",
	}, t.memoryQuery)
	r.Register(mcp.ToolDescriptor{
		Name:        "filesystem-server-list-directory",
		Description: "List the entries of a local directory",
	}, t.listDirectory)
}

// synth is a tiny deterministic number stream seeded from a string, used
// to keep analyzer output stable per repository path.
type synth struct {
	state uint32
}

func newSynth(seed string) *synth {
	h := fnv.New32a()
	h.Write([]byte(seed))
	s := h.Sum32()
	if s == 0 {
		s = 1
	}
	return &synth{state: s}
}

// next returns a value in [0, n) and advances the stream.
func (s *synth) next(n int) int {
	s.state ^= s.state << 13
	s.state ^= s.state >> 17
	s.state ^= s.state << 5
	return int(s.state % uint32(n))
}

var sampleFiles = []string{
	"src/api/endpoints.py",
	"src/models/user.py",
	"src/utils/helpers.py",
	"src/services/sync.py",
	"tests/test_api.py",
	"tests/test_models.py",
	"docs/guide.md",
	"config/settings.yml",
	"README.md",
}

type wdCounts struct {
	modified  int
	added     int
	untracked int
	deleted   int
}

// synthWorkingDirectory builds the four change lists for a repository path.
// The summary tool reuses the counts so both views of one tree agree.
func synthWorkingDirectory(path string) (map[string]any, wdCounts) {
	s := newSynth(path)
	counts := wdCounts{
		modified:  2 + s.next(3),
		added:     1 + s.next(2),
		untracked: s.next(2),
		deleted:   s.next(2),
	}

	cursor := s.next(len(sampleFiles))
	take := func() string {
		p := sampleFiles[cursor%len(sampleFiles)]
		cursor++
		return p
	}

	entries := func(n int, addedLines, deletedLines func() int) []any {
		out := make([]any, 0, n)
		for i := 0; i < n; i++ {
			out = append(out, map[string]any{
				"path":          take(),
				"lines_added":   addedLines(),
				"lines_deleted": deletedLines(),
			})
		}
		return out
	}

	zero := func() int { return 0 }
	wd := map[string]any{
		"modified_files":  entries(counts.modified, func() int { return 5 + s.next(60) }, func() int { return s.next(20) }),
		"added_files":     entries(counts.added, func() int { return 10 + s.next(80) }, zero),
		"untracked_files": entries(counts.untracked, func() int { return 1 + s.next(40) }, zero),
		"deleted_files":   entries(counts.deleted, zero, func() int { return 5 + s.next(40) }),
	}
	return wd, counts
}

func (t *Tools) analyzeWorkingDirectory(params map[string]any) (map[string]any, error) {
	path := retriever.Str(params, "repository_path", "")
	if path == "" {
		return nil, fmt.Errorf("%w: repository_path required", ErrInvalidParams)
	}

	wd, _ := synthWorkingDirectory(path)
	return map[string]any{
		"repository_path": path,
		"repository_status": map[string]any{
			"working_directory": wd,
		},
	}, nil
}

func (t *Tools) outstandingSummary(params map[string]any) (map[string]any, error) {
	path := retriever.Str(params, "repository_path", "")
	if path == "" {
		return nil, fmt.Errorf("%w: repository_path required", ErrInvalidParams)
	}

	_, counts := synthWorkingDirectory(path)
	s := newSynth(path + "#summary")

	branches := []string{"main", "develop", "feature/sync-layer", "feature/api-cleanup"}
	commits := []string{
		"feat: add retry handling to sync client",
		"fix: close response bodies on error paths",
		"chore: bump linter and tidy modules",
		"refactor: split request validation helpers",
	}
	remotes := []string{
		"up to date with origin",
		"ahead of origin by 1 commit",
		"ahead of origin by 2 commits",
		"behind origin by 1 commit",
	}

	name := filepath.Base(path)
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = "workspace"
	}

	return map[string]any{
		"repository_name":     name,
		"current_branch":      branches[s.next(len(branches))],
		"uncommitted_changes": counts.modified + counts.deleted,
		"staged_changes":      s.next(3),
		"untracked_files":     counts.untracked,
		"last_commit":         commits[s.next(len(commits))],
		"remote_status":       remotes[s.next(len(remotes))],
	}, nil
}

func (t *Tools) analyzePatterns(params map[string]any) (map[string]any, error) {
	path := retriever.Str(params, "repository_path", "")
	if path == "" {
		return nil, fmt.Errorf("%w: repository_path required", ErrInvalidParams)
	}
	depth := retriever.Str(params, "analysis_depth", "standard")

	kinds := []string{"commit_pattern", "pr_pattern", "file_pattern", "time_pattern", "review_pattern"}
	descriptions := []string{
		"Small focused commits land within a day of branching",
		"Pull requests over 100 lines wait longest for review",
		"Config and source files tend to change in the same commit",
		"Merges cluster early in the week",
		"Reviews from the same two approvers dominate",
	}

	s := newSynth(path + "#patterns")
	count := 2 + s.next(2)
	patterns := make([]any, 0, count)
	for i := 0; i < count; i++ {
		k := s.next(len(kinds))
		firstMonth := 1 + s.next(5)
		lastMonth := firstMonth + 1 + s.next(3)
		patterns = append(patterns, map[string]any{
			"type":         kinds[k],
			"frequency":    3 + s.next(12),
			"confidence":   round2(0.55 + 0.05*float64(s.next(8))),
			"impact_score": round2(0.35 + 0.05*float64(s.next(12))),
			"description":  descriptions[k],
			"first_seen":   fmt.Sprintf("2025-%02d-10T09:00:00", firstMonth),
			"last_seen":    fmt.Sprintf("2025-%02d-%02dT16:30:00", lastMonth, 5+s.next(20)),
		})
	}

	return map[string]any{
		"repository":     path,
		"analysis_depth": depth,
		"patterns":       patterns,
	}, nil
}

func (t *Tools) generateRecommendations(params map[string]any) (map[string]any, error) {
	analysis := retriever.Map(params, "analysis_data")
	if analysis == nil {
		return nil, fmt.Errorf("%w: analysis_data required", ErrInvalidParams)
	}

	// The submitted file lists share the analyzer's entry shape, so they
	// re-enter through the same parser before planning.
	files := retriever.Map(analysis, "files")
	wd := map[string]any{
		"modified_files":  retriever.List(files, "modified"),
		"added_files":     retriever.List(files, "added"),
		"untracked_files": retriever.List(files, "untracked"),
		"deleted_files":   retriever.List(files, "deleted"),
	}
	changes := repo.ParseChanges(map[string]any{
		"repository_status": map[string]any{"working_directory": wd},
	})

	recs := pr.PlanFromChanges(changes)
	out := make([]any, 0, len(recs))
	for _, r := range recs {
		out = append(out, map[string]any{
			"title":       r.Title,
			"description": r.Description,
			"files":       r.Files,
			"category":    r.Category,
			"priority":    r.Priority,
			"review_time": r.ReviewTime,
			"reviewers":   r.Reviewers,
			"branch_name": r.Branch,
			"labels":      r.Labels,
		})
	}

	return map[string]any{
		"recommendations": out,
		"strategy":        retriever.Str(params, "strategy", "category"),
		"total_prs":       len(out),
	}, nil
}

func (t *Tools) createBranch(params map[string]any) (map[string]any, error) {
	repository := retriever.Str(params, "repository", "")
	branch := retriever.Str(params, "branch_name", "")
	if repository == "" || branch == "" {
		return nil, fmt.Errorf("%w: repository and branch_name required", ErrInvalidParams)
	}

	return map[string]any{
		"repository": repository,
		"branch":     branch,
		"base":       retriever.Str(params, "base_branch", "main"),
		"status":     "created",
	}, nil
}

func (t *Tools) createPullRequest(params map[string]any) (map[string]any, error) {
	repository := retriever.Str(params, "repository", "")
	title := retriever.Str(params, "title", "")
	head := retriever.Str(params, "head", "")
	if repository == "" || title == "" || head == "" {
		return nil, fmt.Errorf("%w: repository, title and head required", ErrInvalidParams)
	}

	number := t.prCounter.Add(1)
	return map[string]any{
		"repository": repository,
		"number":     number,
		"title":      title,
		"head":       head,
		"base":       retriever.Str(params, "base", "main"),
		"labels":     retriever.StrList(params, "labels", nil),
		"status":     "open",
		"url":        fmt.Sprintf("https://github.com/%s/pull/%d", repository, number),
	}, nil
}

func (t *Tools) getNotifications(params map[string]any) (map[string]any, error) {
	repository := retriever.Str(params, "repository", "")
	if repository == "" {
		return nil, fmt.Errorf("%w: repository required", ErrInvalidParams)
	}

	notifications := []any{
		map[string]any{
			"id":         "9001",
			"title":      "PR #12 awaiting review - sync layer changes",
			"body":       "Adds retry handling around the sync client and tightens request timeouts.",
			"updated_at": "2025-06-10T14:30:00",
			"repository": map[string]any{"full_name": repository},
			"subject":    map[string]any{"type": "PullRequest", "number": 12},
		},
		map[string]any{
			"id":         "9002",
			"title":      "URGENT: CI broken on main after dependency bump",
			"body":       "Pipeline fails in the integration stage and blocks the next release.",
			"updated_at": "2025-06-10T15:05:00",
			"repository": map[string]any{"full_name": repository},
			"subject":    map[string]any{"type": "Issue", "number": 87},
		},
	}

	return map[string]any{
		"repository":    repository,
		"notifications": notifications,
		"count":         len(notifications),
	}, nil
}

func (t *Tools) memoryStore(params map[string]any) (map[string]any, error) {
	key := retriever.Str(params, "key", "")
	if key == "" {
		return nil, fmt.Errorf("%w: key required", ErrInvalidParams)
	}

	t.memory.Store(key, retriever.Str(params, "value", ""))
	return map[string]any{"key": key, "stored": true}, nil
}

func (t *Tools) memoryQuery(params map[string]any) (map[string]any, error) {
	query := retriever.Str(params, "query", "")
	limit := retriever.Int(params, "limit", 10)

	records := t.memory.Query(query, limit)
	recordList := make([]any, 0, len(records))
	patterns := make([]any, 0, len(records))
	for _, rec := range records {
		recordList = append(recordList, map[string]any{"key": rec.Key, "value": rec.Value})

		// Values holding JSON objects double as pattern records.
		var decoded map[string]any
		if err := json.Unmarshal([]byte(rec.Value), &decoded); err == nil && decoded != nil {
			patterns = append(patterns, decoded)
		}
	}

	return map[string]any{
		"records":  recordList,
		"patterns": patterns,
		"count":    len(records),
	}, nil
}

func (t *Tools) listDirectory(params map[string]any) (map[string]any, error) {
	path := retriever.Str(params, "path", "")
	if path == "" {
		return nil, fmt.Errorf("%w: path required", ErrInvalidParams)
	}

	dirEntries, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("list directory: %w", err)
	}

	names := make([]string, 0, len(dirEntries))
	for _, e := range dirEntries {
		names = append(names, e.Name())
	}

	return map[string]any{
		"path":    path,
		"entries": names,
		"count":   len(names),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
