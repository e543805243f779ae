package simulator

import (
	"testing"
	"time"
)

func newTestMemory(t *testing.T) *Memory {
	t.Helper()
	m, err := NewMemory(128, time.Minute)
	if err != nil {
		t.Fatalf("NewMemory: %v", err)
	}
	t.Cleanup(m.Close)
	return m
}

func TestMemoryStoreAndQuery(t *testing.T) {
	m := newTestMemory(t)
	m.Store("pattern_alpha_commit", `{"pattern_type":"commit_pattern"}`)
	m.Store("pattern_beta_pr", `{"pattern_type":"pr_pattern"}`)
	m.Store("workflow_run_1", `{"strategy":"pattern based"}`)

	got := m.Query("pattern", 0)
	if len(got) != 3 {
		// The workflow record matches through its value.
		t.Fatalf("Query(pattern) returned %d records", len(got))
	}
	if got[0].Key != "pattern_alpha_commit" {
		t.Errorf("first record = %q, want insertion order", got[0].Key)
	}

	got = m.Query("workflow", 0)
	if len(got) != 1 || got[0].Key != "workflow_run_1" {
		t.Errorf("Query(workflow) = %+v", got)
	}
}

func TestMemoryQueryAnyTermMatches(t *testing.T) {
	m := newTestMemory(t)
	m.Store("alpha", "one")
	m.Store("beta", "two")

	got := m.Query("alpha unrelated terms", 0)
	if len(got) != 1 || got[0].Key != "alpha" {
		t.Errorf("Query = %+v", got)
	}
}

func TestMemoryQueryEmptyMatchesAll(t *testing.T) {
	m := newTestMemory(t)
	m.Store("a", "1")
	m.Store("b", "2")

	if got := m.Query("", 0); len(got) != 2 {
		t.Errorf("Query(\"\") returned %d records", len(got))
	}
}

func TestMemoryQueryLimit(t *testing.T) {
	m := newTestMemory(t)
	m.Store("k1", "v")
	m.Store("k2", "v")
	m.Store("k3", "v")

	got := m.Query("", 2)
	if len(got) != 2 {
		t.Fatalf("limit ignored, got %d records", len(got))
	}
	if got[0].Key != "k1" || got[1].Key != "k2" {
		t.Errorf("records = %+v, want oldest first", got)
	}
}

func TestMemoryStoreOverwrites(t *testing.T) {
	m := newTestMemory(t)
	m.Store("k", "old")
	m.Store("k", "new")

	got := m.Query("", 0)
	if len(got) != 1 {
		t.Fatalf("got %d records after overwrite", len(got))
	}
	if got[0].Value != "new" {
		t.Errorf("value = %q", got[0].Value)
	}
}

func TestMemoryQueryNoMatch(t *testing.T) {
	m := newTestMemory(t)
	m.Store("k", "v")

	if got := m.Query("zzzz", 0); len(got) != 0 {
		t.Errorf("Query(zzzz) = %+v", got)
	}
}
