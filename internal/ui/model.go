package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"findbar/internal/config"
	"findbar/internal/debounce"
	"findbar/internal/domain"
	"findbar/internal/eventbus"
	"findbar/internal/logging"
	"findbar/internal/search"
	"findbar/internal/store"
	"findbar/internal/ui/input"
	inputtypes "findbar/internal/ui/input/types"
	"findbar/internal/ui/keymap"
	"findbar/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus     eventbus.EventBus
	config  *config.Config
	store   store.ResultStore
	session *search.Session
	log     *logrus.Entry

	width    int
	height   int
	help     help.Model
	keys     keymap.KeyMap
	spinner  spinner.Model
	spinning bool

	renderer     *views.Renderer
	inputHandler *input.Handler
	layout       views.Layout // positions from the last frame, for mouse hits

	cursor        int
	settingsOpen  bool
	settingsRow   int
	showHelp      bool
	statusMessage string

	// openPager pages an item; replaced in tests
	openPager func(domain.Item) tea.Cmd

	// Program reference used to deliver debounce tasks
	program *tea.Program
}

// NewModel creates a new UI model. A nil scheduler arms real timers whose
// tasks are delivered back through the program set with SetProgram.
func NewModel(bus eventbus.EventBus, cfg *config.Config, rs store.ResultStore, scheduler debounce.Scheduler) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	keys := keymap.Default()
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		bus:          bus,
		config:       cfg,
		store:        rs,
		log:          logging.NewLogger("ui"),
		help:         help.New(),
		keys:         keys,
		spinner:      sp,
		renderer:     views.NewRenderer(),
		inputHandler: input.New(keys),
		openPager:    openInPager,
	}

	if scheduler == nil {
		scheduler = debounce.AfterFuncScheduler{Dispatch: m.dispatch}
	}

	m.session = search.NewSession(rs, scheduler, cfg.Debounce(), cfg.Visibility)
	m.session.SetSettleFunction(m.onSettle)

	return m
}

// SetProgram sets the program reference for task delivery
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
}

// Session exposes the search session
func (m *Model) Session() *search.Session {
	return m.session
}

// dispatch hands a fired debounce task to the Update loop
func (m *Model) dispatch(task func()) {
	if m.program == nil {
		m.log.Warn("debounce task fired without a program, dropping")
		return
	}
	m.program.Send(debounceMsg{task: task})
}

func (m *Model) onSettle(s *search.Session) {
	results := s.Results()
	if m.cursor >= len(results) {
		m.cursor = 0
	}
	m.log.WithFields(logrus.Fields{
		"query": s.Query(),
		"tab":   s.Tab(),
		"count": len(results),
	}).Debug("search settled")
	m.publish(domain.SearchSettledEvent{Query: s.Query(), Tab: s.Tab(), Count: len(results)})
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.inputHandler.SetWidth(msg.Width)
		return m, nil

	case tea.KeyMsg:
		// Help popup swallows the next key
		if m.showHelp {
			if msg.Type == tea.KeyCtrlC {
				return m, m.quit()
			}
			m.showHelp = false
			return m, nil
		}

		m.statusMessage = ""
		actions, cmd := m.inputHandler.HandleKey(msg, m.context())
		return m, tea.Batch(append([]tea.Cmd{cmd}, m.processActions(actions)...)...)

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case debounceMsg:
		msg.task()
		return m, nil

	case spinner.TickMsg:
		if !m.session.Searching() {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case pagerDoneMsg:
		if msg.err != nil {
			m.log.WithError(msg.err).WithField("item", msg.itemID).Error("pager failed")
			m.statusMessage = "pager: " + msg.err.Error()
			m.publish(domain.ErrorEvent{Message: "pager failed", Err: msg.err})
		}
		return m, nil

	default:
		return m, m.inputHandler.Update(msg)
	}
}

func (m *Model) processActions(actions []inputtypes.Action) []tea.Cmd {
	var cmds []tea.Cmd
	for _, action := range actions {
		if cmd := m.processAction(action); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

// processAction processes an action from the input handler
func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	m.log.WithField("action", action.Type()).Trace("processing action")

	switch a := action.(type) {
	case inputtypes.UpdateQueryAction:
		return m.setQuery(a.Text)

	case inputtypes.ClearQueryAction:
		m.inputHandler.SetValue("")
		if m.session.Query() == "" {
			return nil
		}
		m.session.Clear()
		m.cursor = 0
		m.publish(domain.SearchClearedEvent{})
		return nil

	case inputtypes.CycleTabAction:
		tabs := m.session.Tabs()
		if len(tabs) == 0 {
			return nil
		}
		i := search.IndexOf(tabs, m.session.Tab())
		next := ((i+a.Delta)%len(tabs) + len(tabs)) % len(tabs)
		return m.selectTab(tabs[next].ID)

	case inputtypes.SelectTabAction:
		return m.selectTab(a.Tab)

	case inputtypes.MoveCursorAction:
		m.moveCursor(a.Delta)
		return nil

	case inputtypes.OpenItemAction:
		return m.openSelected()

	case inputtypes.OpenSettingsAction:
		m.settingsOpen = true
		m.settingsRow = 0
		m.publish(domain.SettingsToggledEvent{Open: true})
		return nil

	case inputtypes.CloseSettingsAction:
		m.settingsOpen = false
		m.publish(domain.SettingsToggledEvent{Open: false})
		return nil

	case inputtypes.MoveSettingsRowAction:
		m.settingsRow = clamp(m.settingsRow+a.Delta, 0, len(domain.VisibilityGroups)-1)
		return nil

	case inputtypes.ToggleVisibilityAction:
		return m.toggleVisibility(a.Group)

	case inputtypes.ToggleHelpAction:
		m.showHelp = !m.showHelp
		return nil

	case inputtypes.QuitAction:
		return m.quit()
	}

	return nil
}

func (m *Model) setQuery(text string) tea.Cmd {
	if !m.session.SetQuery(text) {
		return nil
	}
	m.cursor = 0

	if text == "" {
		m.publish(domain.SearchClearedEvent{})
		return nil
	}
	m.publish(domain.SearchStartedEvent{Query: text, Tab: m.session.Tab()})
	return m.startSpinner()
}

func (m *Model) selectTab(tab domain.TabID) tea.Cmd {
	from := m.session.Tab()
	if !m.session.SetTab(tab) {
		return nil
	}
	m.cursor = 0
	m.publish(domain.TabChangedEvent{From: from, To: tab})
	return m.startSpinner()
}

func (m *Model) toggleVisibility(g domain.VisibilityGroup) tea.Cmd {
	from := m.session.Tab()
	vis := m.session.ToggleVisibility(g)
	m.publish(domain.VisibilityChangedEvent{Group: g, Visibility: vis})

	if to := m.session.Tab(); to != from {
		m.cursor = 0
		m.publish(domain.TabChangedEvent{From: from, To: to})
	}
	return m.startSpinner()
}

func (m *Model) moveCursor(delta int) {
	n := len(m.visibleResults())
	if n == 0 {
		m.cursor = 0
		return
	}
	m.cursor = clamp(m.cursor+delta, 0, n-1)
}

func (m *Model) openSelected() tea.Cmd {
	results := m.visibleResults()
	if m.cursor < 0 || m.cursor >= len(results) {
		return nil
	}
	item := results[m.cursor]
	m.log.WithField("item", item.ID).Debug("opening item")
	m.publish(domain.ItemOpenedEvent{ID: item.ID, Title: item.Title})
	return m.openPager(item)
}

func (m *Model) startSpinner() tea.Cmd {
	if !m.session.Searching() || m.spinning {
		return nil
	}
	m.spinning = true
	return m.spinner.Tick
}

func (m *Model) quit() tea.Cmd {
	m.session.Close()
	return tea.Quit
}

// visibleResults are the rows on screen: none while a recomputation is pending
func (m *Model) visibleResults() []domain.Item {
	if m.session.Searching() {
		return nil
	}
	return m.session.Results()
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.showHelp {
		if msg.Action == tea.MouseActionPress {
			m.showHelp = false
		}
		return nil
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.moveCursor(-1)
		return nil
	case msg.Button == tea.MouseButtonWheelDown:
		m.moveCursor(1)
		return nil
	case msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft:
		return nil
	}

	x, y := msg.X, msg.Y
	var cmds []tea.Cmd

	if m.settingsOpen {
		if m.layout.Panel.Contains(x, y) {
			if row, ok := m.layout.PanelRowAt(x, y); ok {
				m.settingsRow = row
				return m.toggleVisibility(domain.VisibilityGroups[row])
			}
			return nil
		}

		// Click outside the panel dismisses it
		actions, cmd := m.inputHandler.ReturnToPreviousMode(m.context())
		cmds = append(cmds, cmd)
		cmds = append(cmds, m.processActions(actions)...)
		if m.layout.Gear.Contains(x, y) {
			return tea.Batch(cmds...)
		}
	}

	switch {
	case m.layout.Gear.Contains(x, y):
		_, cmd := m.inputHandler.ChangeMode(inputtypes.ModeSettings, m.context())
		cmds = append(cmds, cmd, m.processAction(inputtypes.OpenSettingsAction{}))

	case m.layout.SearchInput.Contains(x, y):
		_, cmd := m.inputHandler.ChangeMode(inputtypes.ModeQuery, m.context())
		cmds = append(cmds, cmd)

	default:
		if tab, ok := m.layout.TabAt(x, y); ok {
			cmds = append(cmds, m.selectTab(tab))
		} else if row, ok := m.layout.RowAt(x, y); ok {
			if row == m.cursor && m.inputHandler.Mode() == inputtypes.ModeResults {
				cmds = append(cmds, m.openSelected())
			} else {
				m.cursor = row
				_, cmd := m.inputHandler.ChangeMode(inputtypes.ModeResults, m.context())
				cmds = append(cmds, cmd)
			}
		}
	}

	return tea.Batch(cmds...)
}

// View renders the UI
func (m *Model) View() string {
	mode := m.inputHandler.Mode()

	st := views.ViewState{
		Width:         m.width,
		Height:        m.height,
		Query:         m.session.Query(),
		Input:         m.inputHandler.TextInput().View(),
		ActiveTab:     m.session.Tab(),
		Results:       m.visibleResults(),
		Searching:     m.session.Searching(),
		Spinner:       m.spinner.View(),
		Cursor:        m.cursor,
		ShowCursor:    mode == inputtypes.ModeResults,
		ShowSettings:  m.settingsOpen,
		SettingsRow:   m.settingsRow,
		Visibility:    m.session.Visibility(),
		ShowHint:      m.config.UI.ShowHint,
		ShowHelp:      m.showHelp,
		HelpModel:     m.help,
		Keys:          m.keys,
		StatusMessage: m.statusMessage,
	}
	if st.Query != "" {
		st.Tabs = m.session.Tabs()
	}

	out, layout := m.renderer.Render(st)
	m.layout = layout
	return out
}

func (m *Model) context() inputtypes.Context {
	return modelContext{m: m}
}

// modelContext implements the Context interface for the input handler
type modelContext struct {
	m *Model
}

func (c modelContext) Query() string    { return c.m.session.Query() }
func (c modelContext) ResultCount() int { return len(c.m.visibleResults()) }
func (c modelContext) Cursor() int      { return c.m.cursor }
func (c modelContext) SettingsRow() int { return c.m.settingsRow }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
