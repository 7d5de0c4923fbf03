// Copyright (c) 2026 Navui Team
// Navui - list-based UI navigation framework
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/navui/ui/canvas"
	"github.com/toeirei/navui/ui/input"
	"github.com/toeirei/navui/ui/output"
	"github.com/toeirei/navui/ui/util"
)

// defaultWidth is the footer width until the terminal reports its size.
const defaultWidth = 80

// doneMsg reports that the hosted application returned.
type doneMsg struct {
	err error
}

type Model struct {
	proxy      *input.Proxy
	title      string
	rows, cols int

	frame       *canvas.Image
	cursor      output.Position
	cursorShown bool

	size        util.Size
	help        help.Model
	err         error
	interrupted bool

	screenStyle   lipgloss.Style
	invertedStyle lipgloss.Style
	markerStyle   lipgloss.Style
}

func NewModel(p *input.Proxy, rows, cols int, title string) *Model {
	h := help.New()
	h.Width = defaultWidth
	return &Model{
		proxy: p,
		title: title,
		rows:  rows,
		cols:  cols,
		help:  h,
		screenStyle: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1),
		invertedStyle: lipgloss.NewStyle().Reverse(true),
		markerStyle:   lipgloss.NewStyle().Bold(true),
	}
}

func (m *Model) Init() tea.Cmd {
	if m.title == "" {
		return nil
	}
	return tea.SetWindowTitle(m.title)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.size.Update(msg) {
		m.help.Width = m.size.Width
		return m, nil
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.interrupted = true
			return m, tea.Quit
		}
		if name, ok := input.FromTea(msg); ok {
			m.proxy.Send(name)
		}
	case frameMsg:
		m.frame = msg.img
		m.cursor = msg.cursor
		m.cursorShown = msg.shown
	case doneMsg:
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) View() string {
	lines := make([]string, m.rows)
	for y := range lines {
		marker := " "
		if m.cursorShown && m.cursor.Row == y {
			marker = m.markerStyle.Render("›")
		}
		lines[y] = marker + m.renderRow(y)
	}
	screen := m.screenStyle.Render(strings.Join(lines, "\n"))
	footer := shortHelpView(m.help, input.HelpBindings(m.proxy.Keys()))
	return lipgloss.JoinVertical(lipgloss.Left, screen, footer)
}

func (m *Model) renderRow(y int) string {
	if m.frame == nil {
		return strings.Repeat(" ", m.cols)
	}
	var sb strings.Builder
	for _, run := range m.frame.Runs(y) {
		if run.Inverted {
			sb.WriteString(m.invertedStyle.Render(run.Text))
		} else {
			sb.WriteString(run.Text)
		}
	}
	return sb.String()
}

var _ tea.Model = (*Model)(nil)
