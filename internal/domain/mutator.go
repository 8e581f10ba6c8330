package domain

import (
	"fmt"
	"strings"

	"github.com/getcord/importfix/internal/adapter"
	m "github.com/getcord/importfix/internal/model"
)

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(file m.Path, spec m.Specifier)

// Unresolved calls f(file, spec).
func (f ReporterFunc) Unresolved(file m.Path, spec m.Specifier) {
	f(file, spec)
}

// FileMutator applies a LineProcessor to every line of a file and writes the
// file back only when at least one line changed.
type FileMutator struct {
	fsAdapter adapter.SourceFSAdapter
	lines     *LineProcessor
}

// NewFileMutator creates a FileMutator backed by fsAdapter.
func NewFileMutator(fsAdapter adapter.SourceFSAdapter, lines *LineProcessor) *FileMutator {
	return &FileMutator{fsAdapter: fsAdapter, lines: lines}
}

// ProcessFile rewrites path in place. Read and write failures are returned;
// unresolved imports are forwarded to reporter and recorded in the result.
func (fm *FileMutator) ProcessFile(path m.Path, mode m.Mode, reporter Reporter) (m.FileResult, error) {
	return fm.process(path, mode, reporter, true)
}

// Inspect runs the same traversal as ProcessFile without writing anything.
func (fm *FileMutator) Inspect(path m.Path, mode m.Mode, reporter Reporter) (m.FileResult, error) {
	return fm.process(path, mode, reporter, false)
}

func (fm *FileMutator) process(path m.Path, mode m.Mode, reporter Reporter, write bool) (m.FileResult, error) {
	result := m.FileResult{Path: path}

	content, err := fm.fsAdapter.ReadFile(path)
	if err != nil {
		return result, fmt.Errorf("failed to read %s: %w", path, err)
	}

	collect := ReporterFunc(func(file m.Path, spec m.Specifier) {
		result.Unresolved = append(result.Unresolved, spec)
		if reporter != nil {
			reporter.Unresolved(file, spec)
		}
	})

	lines := splitLines(string(content))
	for i, ln := range lines {
		rewritten, changed := fm.lines.Process(path, ln.text, mode, collect)
		if !changed {
			continue
		}

		lines[i].text = rewritten
		result.Changed = true
		result.ChangedLines++
	}

	if !result.Changed || !write {
		return result, nil
	}

	info, err := fm.fsAdapter.FileInfo(path)
	if err != nil {
		return result, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if err := fm.fsAdapter.WriteFile(path, []byte(joinLines(lines)), info.Mode().Perm()); err != nil {
		return result, fmt.Errorf("failed to write %s: %w", path, err)
	}

	return result, nil
}

// sourceLine is a line body plus the terminator it was read with.
type sourceLine struct {
	text       string
	terminator string
}

func splitLines(content string) []sourceLine {
	if content == "" {
		return nil
	}

	parts := strings.SplitAfter(content, "\n")
	lines := make([]sourceLine, 0, len(parts))

	for _, part := range parts {
		if part == "" {
			continue
		}

		switch {
		case strings.HasSuffix(part, "\r\n"):
			lines = append(lines, sourceLine{text: part[:len(part)-2], terminator: "\r\n"})
		case strings.HasSuffix(part, "\n"):
			lines = append(lines, sourceLine{text: part[:len(part)-1], terminator: "\n"})
		default:
			lines = append(lines, sourceLine{text: part})
		}
	}

	return lines
}

func joinLines(lines []sourceLine) string {
	var b strings.Builder

	for _, ln := range lines {
		b.WriteString(ln.text)
		b.WriteString(ln.terminator)
	}

	return b.String()
}
