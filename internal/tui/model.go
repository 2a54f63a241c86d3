package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sgirard84/airworthy/internal/engine"
)

type viewMode int

const (
	viewList viewMode = iota
	viewDetail
)

// Model contains the Bubbletea state for the fleet compliance browser: a
// selectable aircraft list and a per-aircraft detail pane showing every
// directive verdict with its reason trail.
type Model struct {
	entries []engine.FleetEntry

	mode     viewMode
	cursor   int
	viewport viewport.Model
	ready    bool
	quitting bool

	width  int
	height int
}

// NewModel constructs a browser over the given fleet results.
func NewModel(entries []engine.FleetEntry) Model {
	return Model{
		entries: entries,
		mode:    viewList,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Cursor returns the selected fleet index.
func (m Model) Cursor() int {
	return m.cursor
}

// Selected returns the fleet entry under the cursor.
func (m Model) Selected() (engine.FleetEntry, bool) {
	if m.cursor < 0 || m.cursor >= len(m.entries) {
		return engine.FleetEntry{}, false
	}
	return m.entries[m.cursor], true
}
