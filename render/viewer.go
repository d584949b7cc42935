package render

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const _ViewerChrome = 2

var (
	viewerHeaderStyle = lipgloss.NewStyle().Bold(true)
	viewerHelpStyle   = lipgloss.NewStyle().Faint(true)
)

// viewer keeps a rendered chart on screen, scrollable, until quit.
type viewer struct {
	title   string
	content string

	viewport viewport.Model
	ready    bool
}

func newViewer(title, content string) *viewer {
	return &viewer{
		title:   title,
		content: content,
	}
}

func (v *viewer) Init() tea.Cmd {
	return nil
}

func (v *viewer) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return v, tea.Quit
		}

	case tea.WindowSizeMsg:
		height := max(msg.Height-_ViewerChrome, 1)

		if !v.ready {
			v.viewport = viewport.New(msg.Width, height)
			v.viewport.SetContent(v.content)
			v.ready = true

			return v, nil
		}

		v.viewport.Width = msg.Width
		v.viewport.Height = height
	}

	var cmd tea.Cmd

	v.viewport, cmd = v.viewport.Update(msg)

	return v, cmd
}

func (v *viewer) View() string {
	if !v.ready {
		return v.content
	}

	return viewerHeaderStyle.Render(v.title) + "\n" +
		v.viewport.View() + "\n" +
		viewerHelpStyle.Render("↑/↓ scroll • q quit")
}
