// Package ui implements the Bubble Tea front end for the Pixel Shop catalog.
package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"pixelfront/internal/catalog"
	"pixelfront/internal/config"
	"pixelfront/internal/dummyjson"
	"pixelfront/internal/prefs"
	"pixelfront/internal/query"
)

const (
	siteTitle    = "Pixel Shop"
	sectionTitle = "Products"
)

// Filter input slots. Search and both price bounds share one debounce window.
const (
	inputSearch = iota
	inputMinPrice
	inputMaxPrice
	inputCount
)

const focusNone = -1

// Options configures the UI.
type Options struct {
	Context   context.Context
	Client    *dummyjson.Client
	Store     *catalog.Store
	Config    *config.Config
	Logger    *zap.Logger
	ThemeName string
	Currency  string
	PrefsPath string
	Route     string // initial location query string
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	client    *dummyjson.Client
	store     *catalog.Store
	config    *config.Config
	logger    *zap.Logger
	prefsPath string

	// UI state
	theme    Theme
	keys     keyMap
	width    int
	height   int
	ready    bool
	showHelp bool

	// Navigable location and the view derived from it
	location  *Location
	committed query.State
	result    query.Result
	window    []query.PageItem

	// Catalog state
	catalog      catalog.Snapshot
	loading      bool
	errDismissed bool
	spin         spinner.Model

	// Filter buffers and debounce
	inputs      [inputCount]textinput.Model
	focus       int
	debounce    time.Duration
	debounceGen int

	// Price display
	unit    currency.Unit
	printer *message.Printer
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = "Dracula"
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	cfg := opts.Config
	if cfg == nil {
		defaults := config.Default()
		cfg = &defaults
	}

	unit, err := currency.ParseISO(opts.Currency)
	if err != nil {
		unit = currency.USD
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:       ctx,
		client:    opts.Client,
		store:     opts.Store,
		config:    cfg,
		logger:    logger,
		prefsPath: prefsPath,
		theme:     GetTheme(themeName),
		keys:      DefaultKeyMap(),
		location:  NewLocation(opts.Route),
		loading:   true,
		spin:      sp,
		focus:     focusNone,
		debounce:  cfg.Debounce(),
		unit:      unit,
		printer:   message.NewPrinter(language.English),
	}

	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 64
		m.inputs[i] = ti
	}
	m.inputs[inputSearch].Placeholder = "Search by name..."
	m.inputs[inputMinPrice].Placeholder = "0"
	m.inputs[inputMinPrice].CharLimit = 12
	m.inputs[inputMaxPrice].Placeholder = "1000"
	m.inputs[inputMaxPrice].CharLimit = 12

	m.syncFromLocation()
	m.resetInputsFromCommitted()

	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.SetWindowTitle(sectionTitle + " - " + siteTitle),
		m.spin.Tick,
	}
	if m.store != nil && m.client != nil {
		cmds = append(cmds, loadCatalogCmd(m.ctx, m.store, m.client))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case catalogMsg:
		m.catalog = catalog.Snapshot(msg)
		m.loading = false
		m.errDismissed = false
		m.recompute()
		if m.catalog.Err != nil {
			m.logger.Warn("catalog load failed", zap.Error(m.catalog.Err))
		} else {
			m.logger.Info("catalog loaded",
				zap.Int("products", len(m.catalog.Products)),
				zap.Int("categories", len(m.catalog.Categories)))
		}
		return m, nil

	case debounceMsg:
		return m.handleDebounce(msg)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderFilters())
	b.WriteString("\n")
	b.WriteString(m.renderContent())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// Result returns the current query result.
func (m Model) Result() query.Result {
	return m.result
}

// PaginationWindow returns the current page-button window.
func (m Model) PaginationWindow() []query.PageItem {
	return m.window
}

// recompute re-runs the query engine against the latest catalog snapshot.
// The committed state always comes from re-decoding the current location.
func (m *Model) recompute() {
	if !m.catalog.Ready() {
		m.result = query.Result{}
		m.window = nil
		return
	}
	m.result = query.Evaluate(m.catalog.Products, m.committed)
	m.window = query.Window(m.committed.Page, m.result.TotalPages)
}

func (m *Model) syncFromLocation() {
	m.committed = query.Decode(m.location.Values())
	if m.config != nil && m.config.PageSize > 0 && !m.location.Values().Has("limit") {
		m.committed.Limit = m.config.PageSize
	}
	m.recompute()
}

// navigate rewrites the location with a new state and re-derives the view.
func (m *Model) navigate(s query.State) {
	m.location.Navigate(query.Encode(s))
	m.syncFromLocation()
	m.logger.Debug("navigate", zap.String("route", m.location.Current()))
}

// Messages

type catalogMsg catalog.Snapshot

// Commands

func loadCatalogCmd(ctx context.Context, store *catalog.Store, fetcher catalog.Fetcher) tea.Cmd {
	return func() tea.Msg {
		store.Load(ctx, fetcher)
		return catalogMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	return err
}
