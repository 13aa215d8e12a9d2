package ui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pixelfront/internal/prefs"
)

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m.quit()
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.focus != focusNone {
		return m.handleEditKey(msg)
	}
	return m.handleBrowseKey(msg)
}

// handleEditKey routes input to the focused filter field.
func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.blurInputs()
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		if m.focus == inputCount-1 {
			m.blurInputs()
			return m, nil
		}
		return m, m.focusInput(m.focus + 1)

	case key.Matches(msg, m.keys.PrevField):
		if m.focus == 0 {
			m.blurInputs()
			return m, nil
		}
		return m, m.focusInput(m.focus - 1)

	case key.Matches(msg, m.keys.Confirm):
		// Enter flushes the buffers without waiting out the quiet period.
		m.cancelPendingCommit()
		m.commitFilters()
		return m, nil
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.inputs[m.focus].Value() != before {
		return m, tea.Batch(cmd, m.scheduleCommit())
	}
	return m, cmd
}

// handleBrowseKey processes keyboard input outside the filter fields.
func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		if m.prefsPath != "" {
			_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name, Currency: m.unit.String()})
		}
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		if m.catalog.Err != nil {
			m.errDismissed = true
		}
		return m, nil

	case key.Matches(msg, m.keys.FocusSearch):
		return m, m.focusInput(inputSearch)

	case key.Matches(msg, m.keys.CycleStock):
		m.cycleStock()
		return m, nil

	case key.Matches(msg, m.keys.CycleCategory):
		m.cycleCategory()
		return m, nil

	case key.Matches(msg, m.keys.CycleSort):
		m.cycleSort()
		return m, nil

	case key.Matches(msg, m.keys.ClearFilters):
		m.clearFilters()
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		// Disabled at the lower bound, mirroring the Previous button.
		if m.committed.Page > 1 {
			m.setPage(m.committed.Page - 1)
		}
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		if m.committed.Page < m.result.TotalPages {
			m.setPage(m.committed.Page + 1)
		}
		return m, nil

	case key.Matches(msg, m.keys.FirstPage):
		m.setPage(1)
		return m, nil

	case key.Matches(msg, m.keys.LastPage):
		if m.result.TotalPages > 0 {
			m.setPage(m.result.TotalPages)
		}
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if m.location.Back() {
			m.applyNavigation()
		}
		return m, nil

	case key.Matches(msg, m.keys.Forward):
		if m.location.Forward() {
			m.applyNavigation()
		}
		return m, nil
	}

	return m, nil
}

// applyNavigation re-derives the view after a history move. Buffers are
// replaced and any pending text commit is superseded so a stale edit cannot
// land on top of the restored state.
func (m *Model) applyNavigation() {
	m.syncFromLocation()
	m.resetInputsFromCommitted()
	m.cancelPendingCommit()
}

func (m *Model) focusInput(i int) tea.Cmd {
	m.blurInputs()
	m.focus = i
	m.inputs[i].Focus()
	m.inputs[i].CursorEnd()
	return textinput.Blink
}

func (m *Model) blurInputs() {
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	m.focus = focusNone
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	// Hand the terminal back with the default title restored.
	return m, tea.Sequence(tea.SetWindowTitle(siteTitle), tea.Quit)
}
