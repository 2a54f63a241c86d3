package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sgirard84/airworthy/internal/engine"
	"github.com/sgirard84/airworthy/internal/model"
)

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.mode == viewDetail {
		return m.detailView()
	}
	return m.listView()
}

func (m Model) listView() string {
	var sections []string

	sections = append(sections, titleStyle.Render("Airworthy • Fleet Compliance"))

	if len(m.entries) == 0 {
		sections = append(sections, mutedStyle.Render("No aircraft loaded."))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	var rows []string
	for i, entry := range m.entries {
		line := fmt.Sprintf("%s %s", statusGlyph(entry.Summary), aircraftLabel(entry))
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = itemStyle.Render("  " + line)
		}
		rows = append(rows, line)
	}
	sections = append(sections, strings.Join(rows, "\n"))

	sections = append(sections, helpStyle.Render("↑/↓ move • enter details • q quit"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) detailView() string {
	entry, ok := m.Selected()
	if !ok {
		return ""
	}

	header := titleStyle.Render(fmt.Sprintf("Airworthy • %s", aircraftLabel(entry)))
	footer := helpStyle.Render("↑/↓ scroll • esc back • q quit")

	body := m.viewport.View()
	if !m.ready {
		body = m.detailContent()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// detailContent renders every directive verdict for the selected aircraft,
// including the staged reason trail.
func (m Model) detailContent() string {
	entry, ok := m.Selected()
	if !ok {
		return ""
	}

	var b strings.Builder
	for _, batch := range entry.Entries {
		if batch.Err != nil {
			fmt.Fprintf(&b, "%s %s\n", errorStyle.Render("⚠"), batch.DirectiveID)
			fmt.Fprintf(&b, "  %s\n\n", errorStyle.Render(batch.Err.Error()))
			continue
		}

		res := batch.Result
		glyph := lipgloss.NewStyle().Foreground(res.Status.Color()).Render(res.Status.Icon())
		fmt.Fprintf(&b, "%s %s — %s\n", glyph, res.DirectiveID, res.Status)
		for _, stage := range strings.Split(res.Reason, "; ") {
			fmt.Fprintf(&b, "  • %s\n", stage)
		}
		b.WriteString("\n")
	}

	summary := entry.Summary
	fmt.Fprintf(&b, "%s\n", mutedStyle.Render(fmt.Sprintf(
		"applicable %d • not affected %d • not applicable %d • errors %d",
		summary.Applicable, summary.NotAffected, summary.NotApplicable, summary.Errors,
	)))

	return b.String()
}

func aircraftLabel(entry engine.FleetEntry) string {
	if entry.Aircraft == nil {
		return "(unknown aircraft)"
	}
	return fmt.Sprintf("%s MSN %d", entry.Aircraft.Model, entry.Aircraft.MSN)
}

// statusGlyph summarizes an aircraft row: red when any directive applies,
// yellow when anything failed to evaluate, green otherwise.
func statusGlyph(summary model.Summary) string {
	switch {
	case summary.Applicable > 0:
		return applicableStyle.Render("●")
	case summary.Errors > 0:
		return errorStyle.Render("●")
	default:
		return clearStyle.Render("●")
	}
}
