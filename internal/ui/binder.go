package ui

import (
	"strconv"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"pixelfront/internal/query"
)

// The filter binder reconciles fast local typing with location rewrites.
// Search and the two price bounds keep their uncommitted values in the
// textinput buffers; any edit to any of them bumps a shared generation counter
// and schedules a tick for one quiet period later. A tick that arrives with a
// stale generation was superseded by a newer edit and is dropped, so exactly
// one commit fires per quiet period and it carries the latest buffers.
//
// Stock, category, sort, page, and clear-filters are a separate, immediate
// path: they never touch the generation counter, so a pending text commit
// stays scheduled and still lands afterwards (last write wins on the
// location either way).

type debounceMsg struct{ gen int }

// scheduleCommit supersedes any pending commit and starts a new quiet period.
func (m *Model) scheduleCommit() tea.Cmd {
	m.debounceGen++
	gen := m.debounceGen
	return tea.Tick(m.debounce, func(time.Time) tea.Msg {
		return debounceMsg{gen: gen}
	})
}

// cancelPendingCommit invalidates any in-flight quiet period without
// scheduling a new one. Used when navigation or clear-filters replaces the
// buffers wholesale.
func (m *Model) cancelPendingCommit() {
	m.debounceGen++
}

func (m Model) handleDebounce(msg debounceMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.debounceGen {
		return m, nil
	}
	m.commitFilters()
	return m, nil
}

// commitFilters commits the text buffers into the location. Everything not
// bound to a buffer (stock, category, sort) is read from the committed state
// at fire time, so an immediate commit that happened during the quiet period
// is preserved. Text commits always reset the page.
func (m *Model) commitFilters() {
	s := m.committed
	s.Search = m.inputs[inputSearch].Value()
	s.MinPrice = parsePrice(m.inputs[inputMinPrice].Value())
	s.MaxPrice = parsePrice(m.inputs[inputMaxPrice].Value())
	s.Page = query.DefaultPage
	m.navigate(s)
	m.logger.Debug("filters committed", zap.String("search", s.Search))
}

// setPage is the one action that changes the page without resetting it.
func (m *Model) setPage(page int) {
	if page < 1 || page == m.committed.Page {
		return
	}
	s := m.committed
	s.Page = page
	m.navigate(s)
}

func (m *Model) setSort(field query.Field, order query.Order) {
	s := m.committed
	s.SortField = field
	s.SortOrder = order
	s.Page = query.DefaultPage
	m.navigate(s)
}

// cycleSort walks Name A-Z, Name Z-A, Price low-high, Price high-low.
func (m *Model) cycleSort() {
	switch {
	case m.committed.SortField == query.FieldTitle && m.committed.SortOrder == query.OrderAsc:
		m.setSort(query.FieldTitle, query.OrderDesc)
	case m.committed.SortField == query.FieldTitle:
		m.setSort(query.FieldPrice, query.OrderAsc)
	case m.committed.SortOrder == query.OrderAsc:
		m.setSort(query.FieldPrice, query.OrderDesc)
	default:
		m.setSort(query.FieldTitle, query.OrderAsc)
	}
}

// cycleStock walks all -> in stock -> out of stock -> all. Immediate commit,
// independent of any pending text debounce.
func (m *Model) cycleStock() {
	s := m.committed
	switch {
	case s.InStock == nil:
		v := true
		s.InStock = &v
	case *s.InStock:
		v := false
		s.InStock = &v
	default:
		s.InStock = nil
	}
	s.Page = query.DefaultPage
	m.navigate(s)
}

// cycleCategory walks all -> each catalog category -> all.
func (m *Model) cycleCategory() {
	categories := m.catalog.Categories
	if len(categories) == 0 {
		return
	}
	s := m.committed
	next := ""
	if s.Category == "" {
		next = categories[0]
	} else {
		for i, c := range categories {
			if c == s.Category && i+1 < len(categories) {
				next = categories[i+1]
				break
			}
		}
	}
	s.Category = next
	s.Page = query.DefaultPage
	m.navigate(s)
}

// clearFilters resets every filter and the page but preserves the sort. The
// buffers are emptied and any pending text commit is superseded.
func (m *Model) clearFilters() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.cancelPendingCommit()
	m.navigate(m.committed.WithoutFilters())
}

// resetInputsFromCommitted reloads the buffers after a navigation event
// (initial route, back, forward) so stale edits do not survive a state reset.
func (m *Model) resetInputsFromCommitted() {
	m.inputs[inputSearch].SetValue(m.committed.Search)
	m.inputs[inputMinPrice].SetValue(formatOptionalPrice(m.committed.MinPrice))
	m.inputs[inputMaxPrice].SetValue(formatOptionalPrice(m.committed.MaxPrice))
}

func parsePrice(raw string) *float64 {
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &f
}

func formatOptionalPrice(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}
