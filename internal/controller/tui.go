package controller

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	m "github.com/getcord/importfix/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
	summary *bytes.Buffer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the Bubble Tea program in the background.
func (t *TUI) Start(options ...StartOption) error {
	cfg := newStartConfig(options...)

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program != nil {
		return fmt.Errorf("ui already started")
	}

	t.program = tea.NewProgram(
		newRewriteModel(cfg.mode),
		tea.WithOutput(t.output),
		tea.WithInput(nil),
	)
	t.done = make(chan struct{})
	t.summary = nil

	program, done := t.program, t.done

	go func() {
		defer close(done)

		_, _ = program.Run()
	}()

	return nil
}

// Close asks the program to render its final frame and exit.
func (t *TUI) Close() {
	t.send(finishedMsg{})
}

// Wait blocks until the program has exited, then prints the summary if one
// was requested.
func (t *TUI) Wait() {
	t.mu.Lock()
	done, summary := t.done, t.summary
	t.mu.Unlock()

	if done == nil {
		return
	}

	<-done

	if summary != nil {
		_, _ = io.Copy(t.output, summary)
	}

	t.mu.Lock()
	t.program, t.done, t.summary = nil, nil, nil
	t.mu.Unlock()
}

// DisplayRunInfo shows the number of files and the concurrency settings.
func (t *TUI) DisplayRunInfo(files int, threads int, shardIndex int, shardCount int) {
	t.send(runInfoMsg{files: files, threads: threads, shardIndex: shardIndex, shards: shardCount})
}

// DisplayUnresolved prints a diagnostic above the progress display.
func (t *TUI) DisplayUnresolved(file m.Path, spec m.Specifier) {
	t.send(unresolvedMsg{file: file, spec: spec})
}

// DisplayFileResult advances the progress bar.
func (t *TUI) DisplayFileResult(result m.FileResult) {
	t.send(fileDoneMsg{result: result})
}

// DisplaySummary renders the summary table; it is written once the program exits
// so it does not interleave with the progress display.
func (t *TUI) DisplaySummary(results m.FileResults, dryRun bool) error {
	var buf bytes.Buffer
	if err := renderSummary(&buf, results, dryRun); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.program == nil {
		_, err := io.Copy(t.output, &buf)
		return err
	}

	t.summary = &buf

	return nil
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Send(msg)
}
