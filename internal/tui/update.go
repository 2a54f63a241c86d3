package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		headerHeight := 3
		footerHeight := 2
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-headerHeight-footerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - headerHeight - footerHeight
		}
		if m.mode == viewDetail {
			m.viewport.SetContent(m.detailContent())
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "up", "k":
			if m.mode == viewList && m.cursor > 0 {
				m.cursor--
			}

		case "down", "j":
			if m.mode == viewList && m.cursor < len(m.entries)-1 {
				m.cursor++
			}

		case "enter":
			if m.mode == viewList && len(m.entries) > 0 {
				m.mode = viewDetail
				m.viewport.GotoTop()
				m.viewport.SetContent(m.detailContent())
			}

		case "esc":
			if m.mode == viewDetail {
				m.mode = viewList
			}
		}
	}

	if m.mode == viewDetail {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}
