// Package tui provides a terminal user interface showing resolution progress per document.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/graphcache/internal/ui/style"
)

const (
	statusPending    = "pending"
	statusRunning    = "running"
	statusCompleted  = "completed"
	statusUnresolved = "unresolved"
	statusFailed     = "failed"
)

// DocumentState is the progress of one document in the view.
type DocumentState struct {
	Path   string
	Status string
	Detail string
}

type styles struct {
	running   lipgloss.Style
	completed lipgloss.Style
	failed    lipgloss.Style
	pending   lipgloss.Style
	detail    lipgloss.Style
}

// Model is the Bubble Tea model for the progress view.
type Model struct {
	documents []DocumentState
	width     int
	height    int
	spinner   spinner.Model
	styles    styles
}

// NewModel creates an empty progress model.
func NewModel() *Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(style.Active)

	return &Model{
		spinner: s,
		styles: styles{
			running:   lipgloss.NewStyle().Foreground(style.Active),
			completed: lipgloss.NewStyle().Foreground(style.Success),
			failed:    lipgloss.NewStyle().Foreground(style.Failure),
			pending:   lipgloss.NewStyle().Foreground(style.Muted),
			detail:    lipgloss.NewStyle().Foreground(style.Muted),
		},
	}
}

// Init starts the spinner.
func (m *Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case MsgDocumentsQueued:
		m.queue(msg.Paths)
	case MsgDocumentStarted:
		m.set(msg.Path, statusRunning, "")
	case MsgDocumentFinished:
		m.finish(msg)
	case MsgRunEnded:
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) queue(paths []string) {
	for _, p := range paths {
		if m.index(p) < 0 {
			m.documents = append(m.documents, DocumentState{Path: p, Status: statusPending})
		}
	}
}

func (m *Model) finish(msg MsgDocumentFinished) {
	switch {
	case msg.Err != nil:
		m.set(msg.Path, statusFailed, msg.Err.Error())
	case msg.Unresolved > 0:
		m.set(msg.Path, statusUnresolved, fmt.Sprintf("%d unresolved", msg.Unresolved))
	default:
		m.set(msg.Path, statusCompleted, "")
	}
}

// set updates the document, adding it when it was never queued.
func (m *Model) set(path, status, detail string) {
	i := m.index(path)
	if i < 0 {
		m.documents = append(m.documents, DocumentState{Path: path})
		i = len(m.documents) - 1
	}
	m.documents[i].Status = status
	m.documents[i].Detail = detail
}

func (m *Model) index(path string) int {
	for i, d := range m.documents {
		if d.Path == path {
			return i
		}
	}
	return -1
}

// View renders one line per document. Only the last rows fit when the window is short.
func (m *Model) View() string {
	var s strings.Builder

	start := 0
	if m.height > 0 && len(m.documents) > m.height {
		start = len(m.documents) - m.height
	}

	for _, d := range m.documents[start:] {
		var icon string
		var st lipgloss.Style
		switch d.Status {
		case statusRunning:
			icon = m.spinner.View()
			st = m.styles.running
		case statusCompleted:
			icon = style.IconResolved
			st = m.styles.completed
		case statusUnresolved, statusFailed:
			icon = style.IconUnresolved
			st = m.styles.failed
		default:
			icon = style.IconQueued
			st = m.styles.pending
		}

		line := fmt.Sprintf("%s %s", st.Render(icon), d.Path)
		if d.Detail != "" {
			line += " " + m.styles.detail.Render(d.Detail)
		}
		s.WriteString(line + "\n")
	}

	return s.String()
}
