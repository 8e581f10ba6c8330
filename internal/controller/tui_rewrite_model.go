package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const maxProgressWidth = 60

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("6"))
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("3"))
	changedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("2"))
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// rewriteModel renders progress while files are processed.
type rewriteModel struct {
	mode        StartMode
	progressBar progress.Model
	width       int
	total       int
	done        int
	changed     int
	unresolved  int
	threads     int
	shardIndex  int
	shards      int
	currentFile string
	finished    bool
}

func newRewriteModel(mode StartMode) rewriteModel {
	return rewriteModel{
		mode: mode,
		progressBar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(40),
		),
		shards: 1,
	}
}

func (rm rewriteModel) Init() tea.Cmd {
	return nil
}

func (rm rewriteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.width = msg.Width
		rm.progressBar.Width = min(max(msg.Width-20, 10), maxProgressWidth)

		return rm, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return rm, tea.Quit
		}

		return rm, nil

	case runInfoMsg:
		rm.total = msg.files
		rm.threads = msg.threads
		rm.shardIndex = msg.shardIndex
		rm.shards = msg.shards

		return rm, nil

	case unresolvedMsg:
		rm.unresolved++

		return rm, tea.Println(warnStyle.Render(UnresolvedMessage(msg.spec)))

	case fileDoneMsg:
		rm.done++
		rm.currentFile = string(msg.result.Path)

		if msg.result.Changed {
			rm.changed++
		}

		return rm, nil

	case finishedMsg:
		rm.finished = true

		return rm, tea.Quit
	}

	return rm, nil
}

func (rm rewriteModel) percent() float64 {
	if rm.total == 0 {
		return 0
	}

	return float64(rm.done) / float64(rm.total)
}

func (rm rewriteModel) View() string {
	var b strings.Builder

	title := "importfix: rewriting imports"
	if rm.mode == ModeEstimate {
		title = "importfix: dry run"
	}

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	if rm.shards > 1 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("shard %d/%d, %d worker(s)", rm.shardIndex, rm.shards, rm.threads)))
	} else {
		b.WriteString(dimStyle.Render(fmt.Sprintf("%d worker(s)", rm.threads)))
	}

	b.WriteString("\n\n")
	b.WriteString(rm.progressBar.ViewAs(rm.percent()))
	b.WriteString(fmt.Sprintf(" %d/%d\n", rm.done, rm.total))

	changedLabel := "changed"
	if rm.mode == ModeEstimate {
		changedLabel = "would change"
	}

	b.WriteString(changedStyle.Render(fmt.Sprintf("%d %s", rm.changed, changedLabel)))
	b.WriteString("  ")
	b.WriteString(warnStyle.Render(fmt.Sprintf("%d unresolved", rm.unresolved)))
	b.WriteString("\n")

	if !rm.finished && rm.currentFile != "" {
		b.WriteString(dimStyle.Render(truncateFile(rm.currentFile, rm.width)))
		b.WriteString("\n")
	}

	return b.String()
}

// truncateFile keeps the tail of long paths, which is the informative part.
func truncateFile(path string, width int) string {
	if width <= 3 || len(path) <= width {
		return path
	}

	return "..." + path[len(path)-(width-3):]
}
