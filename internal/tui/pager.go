package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/meza/lcov-summary/internal/i18n"
)

// PagerModel shows a rendered report in a scrollable viewport.
type PagerModel struct {
	content  string
	viewport viewport.Model
	quitKeys key.Binding
	ready    bool
}

func NewPagerModel(content string) PagerModel {
	return PagerModel{
		content: content,
		quitKeys: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", i18n.T("key.help.quit")),
		),
	}
}

func (m PagerModel) Init() tea.Cmd {
	return nil
}

func (m PagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, m.quitKeys) {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		footerHeight := 1
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-footerHeight)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - footerHeight
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m PagerModel) View() string {
	if !m.ready {
		return m.content
	}
	return m.viewport.View() + "\n" + HelpStyle.Render(i18n.T("pager.help"))
}
