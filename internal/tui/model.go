package tui

import (
	"fmt"
	"os"
	"strings"

	"assetcopy/internal/domain"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Phase represents the current state of the TUI
type Phase int

const (
	PhaseCopying Phase = iota
	PhaseListing
	PhaseDone
	PhaseError
)

// Messages for the TUI
type (
	CopyResultMsg struct {
		Index  int
		Total  int
		Result domain.CopyResult
	}
	RunDoneMsg struct {
		Report domain.Report
	}
	ErrorMsg struct {
		Err error
	}
)

// Config for the TUI. The run itself happens outside the model and is
// expected to Send a CopyResultMsg per item, then RunDoneMsg or ErrorMsg.
type Config struct {
	SourceDir string
	DestDir   string
	Total     int
}

type Model struct {
	config   Config
	Phase    Phase
	Results  []domain.CopyResult
	Report   domain.Report
	spinner  spinner.Model
	progress progress.Model
	Err      error
	Quitting bool
	width    int
}

func NewModel(cfg Config) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	p := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(50),
		progress.WithoutPercentage(),
	)

	return Model{
		config:   cfg,
		Phase:    PhaseCopying,
		spinner:  s,
		progress: p,
		width:    80,
	}
}

func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Interrupted reports whether the user quit before the run finished.
func (m Model) Interrupted() bool {
	return m.Quitting && m.Phase != PhaseDone && m.Phase != PhaseError
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.progress.Width = min(msg.Width-20, 60)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.Quitting = true
			return m, tea.Quit
		case "enter":
			if m.Phase == PhaseDone || m.Phase == PhaseError {
				return m, tea.Quit
			}
		}

	case CopyResultMsg:
		m.Results = append(m.Results, msg.Result)
		if msg.Total > 0 && len(m.Results) >= msg.Total {
			m.Phase = PhaseListing
		}
		return m, m.progress.SetPercent(m.percent())

	case RunDoneMsg:
		m.Report = msg.Report
		m.Results = msg.Report.Results
		m.Phase = PhaseDone
		return m, nil

	case ErrorMsg:
		m.Phase = PhaseError
		m.Err = msg.Err
		return m, nil

	case spinner.TickMsg:
		if m.Phase == PhaseCopying || m.Phase == PhaseListing {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		return m, cmd
	}

	return m, nil
}

func (m Model) percent() float64 {
	if m.config.Total <= 0 {
		return 0
	}
	return float64(len(m.Results)) / float64(m.config.Total)
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.Phase {
	case PhaseCopying, PhaseListing:
		b.WriteString(m.renderResults())
		b.WriteString("\n")
		b.WriteString(m.renderProgress())
	case PhaseDone:
		b.WriteString(m.renderResults())
		b.WriteString("\n")
		b.WriteString(m.renderListing())
		b.WriteString("\n")
		b.WriteString(m.renderSummary())
	case PhaseError:
		b.WriteString(m.renderResults())
		b.WriteString("\n")
		b.WriteString(m.renderError())
	}

	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

func (m Model) renderHeader() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Asset Copy"),
		subtitleStyle.Render("Brand assets into the public directory"),
		"",
		dimStyle.Render(fmt.Sprintf("%s Source: %s", iconFolder, shortenPath(m.config.SourceDir))),
		dimStyle.Render(fmt.Sprintf("%s Dest: %s", iconFolder, shortenPath(m.config.DestDir))),
	)
}

func (m Model) renderResults() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Assets"))
	b.WriteString("\n\n")

	if len(m.Results) == 0 {
		b.WriteString(dimStyle.Render("  Nothing copied yet"))
		b.WriteString("\n")
		return b.String()
	}

	for _, result := range m.Results {
		b.WriteString("  ")
		b.WriteString(formatResult(result))
		b.WriteString("\n")
	}
	return b.String()
}

func formatResult(result domain.CopyResult) string {
	pair := result.Item.Pair
	names := fmt.Sprintf("%s %s %s", pair.Source, iconArrow, fileNameStyle.Render(pair.Dest))

	switch result.Status {
	case domain.StatusSuccess:
		return fmt.Sprintf("%s %s  %s", successStyle.Render(iconSuccess), names, sizeStyle.Render(fmt.Sprintf("%d bytes", result.Size)))
	case domain.StatusSourceMissing:
		return fmt.Sprintf("%s %s  %s", warningStyle.Render(iconMissing), names, warningStyle.Render("source not found"))
	default:
		return fmt.Sprintf("%s %s  %s", errorStyle.Render(iconError), names, errorStyle.Render(result.Err.Error()))
	}
}

func (m Model) renderProgress() string {
	label := "Copying..."
	if m.Phase == PhaseListing {
		label = "Listing destination..."
	}

	percent := m.percent()
	return fmt.Sprintf("  %s %s\n\n  %s\n  %s %s\n",
		m.spinner.View(),
		label,
		m.progress.ViewAs(percent),
		countStyle.Render(fmt.Sprintf("%d/%d assets", len(m.Results), m.config.Total)),
		dimStyle.Render(fmt.Sprintf("(%.0f%%)", percent*100)),
	)
}

func (m Model) renderListing() string {
	var b strings.Builder

	b.WriteString(sectionStyle.Render("Destination"))
	b.WriteString("\n\n")

	listing := m.Report.Listing
	if len(listing.Entries) == 0 && listing.Err == nil {
		b.WriteString(dimStyle.Render("  No matching files"))
		b.WriteString("\n")
	}
	for _, entry := range listing.Entries {
		b.WriteString(fmt.Sprintf("  %s  %s\n",
			fileNameStyle.Render(entry.Name),
			sizeStyle.Render(fmt.Sprintf("%d bytes", entry.Size)),
		))
	}
	if listing.Err != nil {
		b.WriteString(fmt.Sprintf("  %s %s\n", errorStyle.Render(iconError), errorStyle.Render("Error listing dir: "+listing.Err.Error())))
	}
	return b.String()
}

func (m Model) renderSummary() string {
	copied, missing, failed := m.Report.Counts()
	line := fmt.Sprintf("%d copied, %d missing, %d failed", copied, missing, failed)
	if m.Report.Failed() {
		return highlightBoxStyle.BorderForeground(warningColor).Render(warningStyle.Render(line))
	}
	return highlightBoxStyle.Render(successStyle.Render(iconSuccess + " " + line))
}

func (m Model) renderError() string {
	msg := errorStyle.Render(fmt.Sprintf("%s Error: %s", iconError, m.Err.Error()))
	return highlightBoxStyle.BorderForeground(errorColor).Render(msg)
}

func (m Model) renderHelp() string {
	var help string
	switch m.Phase {
	case PhaseCopying, PhaseListing:
		help = "Press q to quit"
	case PhaseDone:
		help = "Press Enter to exit"
	case PhaseError:
		help = "Press Enter or q to exit"
	}
	return helpStyle.Render(help)
}

// shortenPath replaces the home directory prefix with ~ for display
func shortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + path[len(home):]
	}
	return path
}
