// Package main provides the CLI entrypoint for wordsort.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/wordsort/internal/config"
	"github.com/verte-zerg/wordsort/internal/historyui"
	"github.com/verte-zerg/wordsort/internal/model"
	"github.com/verte-zerg/wordsort/internal/stats"
	"github.com/verte-zerg/wordsort/internal/store"
	"github.com/verte-zerg/wordsort/internal/wordlist"
)

const (
	sourceFile = "words.txt"
	outputFile = "words-sorted.txt"
)

var (
	historyPlain bool
	historyLast  int
	historySince string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wordsort",
		Short:         "Sort the words in words.txt into words-sorted.txt",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runSortCmd,
	}

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newHistoryCmd())

	return rootCmd
}

func runSortCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	record := true
	if fileCfg.History.Record != nil {
		record = *fileCfg.History.Record
	}

	startedAt := time.Now()
	summary, err := wordlist.SortFile(sourceFile, outputFile)
	if err != nil {
		return err
	}
	endedAt := time.Now()

	if record {
		recordRun(model.RunStats{
			StartedAt:  startedAt,
			EndedAt:    endedAt,
			SourcePath: sourceFile,
			OutputPath: outputFile,
			Words:      summary.Words,
			EmptyLines: summary.EmptyLines,
			DurationMs: endedAt.Sub(startedAt).Milliseconds(),
		})
	}

	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Done! Sorted words saved to %s\n", outputFile); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// recordRun persists a run to the history database. History is a
// best-effort extra: store failures must never fail a finished sort.
func recordRun(stats model.RunStats) {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		logErrf("failed to open history db: %v\n", err)
		return
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close history db: %v\n", cerr)
		}
	}()
	if _, err := st.InsertRun(context.Background(), stats); err != nil {
		logErrf("failed to record run: %v\n", err)
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded sort runs",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().BoolVar(&historyPlain, "plain", false, "print a plain table instead of the interactive view")
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N runs")
	cmd.Flags().StringVar(&historySince, "since", "", "start date (YYYY-MM-DD)")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "last", &historyLast, fileCfg.History.Last)

	var sinceTime *time.Time
	if historySince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", historySince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}

	cfg := model.HistoryConfig{
		Since: sinceTime,
		Last:  historyLast,
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open history db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close history db: %v\n", cerr)
		}
	}()

	if historyPlain || !stats.IsTerminal(os.Stdout) {
		runs, err := st.ListRuns(context.Background(), cfg)
		if err != nil {
			return fmt.Errorf("failed to list runs: %w", err)
		}
		width := 0
		if stats.IsTerminal(os.Stdout) {
			width = stats.TerminalWidth()
		}
		return stats.RenderRuns(cmd.OutOrStdout(), runs, width)
	}

	model := historyui.NewModel(st, cfg)
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run history TUI: %w", err)
	}
	return nil
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return `# wordsort configuration
# Uncomment a value to enable it. CLI flags override config values.

[history]
# record = true   # Record each run in the history database
# last = 20       # Default number of runs shown by wordsort history
`
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
