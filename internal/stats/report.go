package stats

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"golang.org/x/term"

	"github.com/verte-zerg/wordsort/internal/model"
)

const terminalWidthBackup = 80

// Summary aggregates stored sort runs.
type Summary struct {
	Runs          int
	TotalWords    int
	TotalEmpty    int
	AvgDurationMs int64
}

// BuildSummary aggregates run records into a summary.
func BuildSummary(runs []model.RunRecord) Summary {
	s := Summary{Runs: len(runs)}
	if len(runs) == 0 {
		return s
	}
	var totalDuration int64
	for _, run := range runs {
		s.TotalWords += run.Words
		s.TotalEmpty += run.EmptyLines
		totalDuration += run.DurationMs
	}
	s.AvgDurationMs = totalDuration / int64(len(runs))
	return s
}

// RenderRuns writes the summary line and a per-run table to w,
// truncating rows to the given width (0 means no limit).
func RenderRuns(w io.Writer, runs []model.RunRecord, width int) error {
	summary := BuildSummary(runs)
	if summary.Runs == 0 {
		_, err := fmt.Fprintln(w, "No runs recorded yet.")
		return err
	}
	if _, err := fmt.Fprintf(w, "Runs: %d  Words: %d  Empty: %d  Avg duration: %dms\n\n",
		summary.Runs, summary.TotalWords, summary.TotalEmpty, summary.AvgDurationMs); err != nil {
		return err
	}

	headers := []string{"ID", "Finished", "Source", "Output", "Words", "Empty", "ms"}
	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			strconv.FormatInt(run.RunID, 10),
			run.EndedAt.Local().Format(time.DateTime),
			run.SourcePath,
			run.OutputPath,
			strconv.Itoa(run.Words),
			strconv.Itoa(run.EmptyLines),
			strconv.FormatInt(run.DurationMs, 10),
		})
	}
	rightAlign := map[int]bool{0: true, 4: true, 5: true, 6: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, truncateToWidth(line, width)); err != nil {
			return err
		}
	}
	return nil
}

// TerminalWidth returns the stdout terminal width or a backup value.
func TerminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

// IsTerminal reports whether the writer is attached to a terminal.
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}
