package controller

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	m "github.com/getcord/importfix/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using the cobra command's output stream. It stays
// silent except for diagnostics and an optional summary table.
type SimpleUI struct {
	cmd *cobra.Command
	mu  sync.Mutex
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(_ ...StartOption) error {
	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {}

// Wait returns immediately; there is nothing running in the background.
func (s *SimpleUI) Wait() {}

// DisplayRunInfo is a no-op: a successful run produces no output.
func (s *SimpleUI) DisplayRunInfo(_, _, _, _ int) {}

// DisplayUnresolved prints one diagnostic line for spec.
func (s *SimpleUI) DisplayUnresolved(_ m.Path, spec m.Specifier) {
	s.printf("%s\n", UnresolvedMessage(spec))
}

// DisplayFileResult is a no-op; rewritten files are listed by the summary.
func (s *SimpleUI) DisplayFileResult(_ m.FileResult) {}

// DisplaySummary prints a table of the files that changed (or would change).
func (s *SimpleUI) DisplaySummary(results m.FileResults, dryRun bool) error {
	var buf bytes.Buffer
	if err := renderSummary(&buf, results, dryRun); err != nil {
		return err
	}

	s.printf("%s", buf.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// renderSummary writes the changed-files table shared by both UIs.
func renderSummary(w io.Writer, results m.FileResults, dryRun bool) error {
	changed := results.Changed()

	if len(changed) == 0 {
		msg := "No files changed"
		if dryRun {
			msg = "No files would change"
		}

		_, err := fmt.Fprintf(w, "%s (%d scanned, %d unresolved)\n", msg, len(results), results.UnresolvedCount())

		return err
	}

	header := "Rewritten"
	if dryRun {
		header = "Would rewrite"
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{header, "Lines", "Unresolved"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER})

	lines := 0

	for _, r := range changed {
		table.Append([]string{string(r.Path), fmt.Sprintf("%d", r.ChangedLines), fmt.Sprintf("%d", len(r.Unresolved))})
		lines += r.ChangedLines
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(changed)),
		fmt.Sprintf("%d", lines),
		fmt.Sprintf("%d", results.UnresolvedCount()),
	})

	table.Render()

	return nil
}
