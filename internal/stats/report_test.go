package stats

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/wordsort/internal/model"
)

func sampleRuns() []model.RunRecord {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return []model.RunRecord{
		{RunID: 1, RunStats: model.RunStats{
			EndedAt: base, SourcePath: "words.txt", OutputPath: "words-sorted.txt",
			Words: 3, EmptyLines: 0, DurationMs: 10,
		}},
		{RunID: 2, RunStats: model.RunStats{
			EndedAt: base.Add(time.Hour), SourcePath: "words.txt", OutputPath: "words-sorted.txt",
			Words: 5, EmptyLines: 2, DurationMs: 30,
		}},
	}
}

func TestBuildSummary(t *testing.T) {
	summary := BuildSummary(sampleRuns())
	if summary.Runs != 2 {
		t.Fatalf("expected 2 runs, got %d", summary.Runs)
	}
	if summary.TotalWords != 8 || summary.TotalEmpty != 2 {
		t.Fatalf("unexpected totals: %+v", summary)
	}
	if summary.AvgDurationMs != 20 {
		t.Fatalf("expected avg 20ms, got %d", summary.AvgDurationMs)
	}
}

func TestBuildSummaryEmpty(t *testing.T) {
	summary := BuildSummary(nil)
	if summary.Runs != 0 || summary.AvgDurationMs != 0 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
}

func TestRenderRuns(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderRuns(&buf, sampleRuns(), 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Runs: 2  Words: 8  Empty: 2  Avg duration: 20ms") {
		t.Fatalf("missing summary line: %q", out)
	}
	if !strings.Contains(out, "words-sorted.txt") {
		t.Fatalf("missing output column: %q", out)
	}
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	// Summary, blank, header, two rows.
	if len(lines) != 5 {
		t.Fatalf("expected 5 lines, got %d: %q", len(lines), out)
	}
}

func TestRenderRunsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderRuns(&buf, nil, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "No runs recorded yet.") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestIsTerminalForBuffer(t *testing.T) {
	var buf bytes.Buffer
	if IsTerminal(&buf) {
		t.Fatalf("buffer must not be a terminal")
	}
}
