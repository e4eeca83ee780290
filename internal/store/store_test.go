package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/wordsort/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "wordsort.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() {
		if err := st.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	return st
}

func runAt(ended time.Time, words int) model.RunStats {
	return model.RunStats{
		StartedAt:  ended.Add(-50 * time.Millisecond),
		EndedAt:    ended,
		SourcePath: "words.txt",
		OutputPath: "words-sorted.txt",
		Words:      words,
		EmptyLines: 1,
		DurationMs: 50,
	}
}

func TestInsertAndListRuns(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i, words := range []int{3, 5, 7} {
		if _, err := st.InsertRun(ctx, runAt(base.Add(time.Duration(i)*time.Hour), words)); err != nil {
			t.Fatalf("failed to insert run: %v", err)
		}
	}

	runs, err := st.ListRuns(ctx, model.HistoryConfig{})
	if err != nil {
		t.Fatalf("failed to list runs: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("expected 3 runs, got %d", len(runs))
	}
	if runs[0].Words != 3 || runs[2].Words != 7 {
		t.Fatalf("unexpected order: %+v", runs)
	}
	if !runs[0].EndedAt.Equal(base) {
		t.Fatalf("unexpected ended_at: %v", runs[0].EndedAt)
	}
}

func TestListRunsSinceFilter(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		if _, err := st.InsertRun(ctx, runAt(base.Add(time.Duration(i)*time.Hour), i+1)); err != nil {
			t.Fatalf("failed to insert run: %v", err)
		}
	}

	since := base.Add(90 * time.Minute)
	runs, err := st.ListRuns(ctx, model.HistoryConfig{Since: &since})
	if err != nil {
		t.Fatalf("failed to list runs: %v", err)
	}
	if len(runs) != 1 || runs[0].Words != 3 {
		t.Fatalf("unexpected runs: %+v", runs)
	}
}

func TestListRunsLastWindow(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		if _, err := st.InsertRun(ctx, runAt(base.Add(time.Duration(i)*time.Hour), i+1)); err != nil {
			t.Fatalf("failed to insert run: %v", err)
		}
	}

	runs, err := st.ListRuns(ctx, model.HistoryConfig{Last: 2})
	if err != nil {
		t.Fatalf("failed to list runs: %v", err)
	}
	if len(runs) != 2 || runs[0].Words != 4 || runs[1].Words != 5 {
		t.Fatalf("unexpected runs: %+v", runs)
	}
}
