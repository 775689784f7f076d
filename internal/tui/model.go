// Package tui hosts the search state machine in a terminal UI. The Bubble
// Tea model owns the query input and translates raw key and mouse events
// into machine events; all search semantics stay in internal/search.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tiendamayor/smartsearch/internal/history"
	"github.com/tiendamayor/smartsearch/internal/nav"
	"github.com/tiendamayor/smartsearch/internal/search"
)

// debounceMsg fires when an armed debounce timer expires. Only a message
// whose token matches the machine's current token has any effect.
type debounceMsg struct {
	token uint64
}

// initMsg is sent by Init() so the first events run through Update, where
// state mutations are visible to the Bubble Tea runtime.
type initMsg struct{}

// Model is the Bubble Tea model for the interactive search box.
type Model struct {
	machine search.Machine
	state   search.State
	store   *history.Store

	input textinput.Model
	spin  spinner.Model

	width  int // Terminal width
	height int // Terminal height

	// target holds the emitted navigation instruction after a commit.
	target    *nav.Target
	cancelled bool
}

// New creates a search box model. store may be nil to skip persistence;
// initialQuery pre-fills the input and triggers an immediate evaluation.
func New(machine search.Machine, store *history.Store, initialQuery string) Model {
	input := textinput.New()
	input.Placeholder = "Search products..."
	input.Prompt = "> "
	input.CharLimit = 256
	input.Focus()
	input.SetValue(initialQuery)

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	var log history.Log
	if store != nil {
		log = store.Load(context.Background())
	}

	return Model{
		machine: machine,
		state:   machine.NewState(log),
		store:   store,
		input:   input,
		spin:    spin,
	}
}

// Target returns the navigation instruction emitted by the commit, or
// false if the user cancelled.
func (m Model) Target() (nav.Target, bool) {
	if m.target == nil {
		return nav.Target{}, false
	}
	return *m.target, true
}

// Cancelled reports whether the user left without committing.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, func() tea.Msg { return initMsg{} })
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case initMsg:
		next, cmd := m.applyEvent(search.Focus{})
		if q := next.input.Value(); q != "" {
			var qcmd tea.Cmd
			next, qcmd = next.applyEvent(search.QueryChanged{Text: q})
			cmd = tea.Batch(cmd, qcmd)
		}
		return next, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case debounceMsg:
		return m.applyEvent(search.Debounced{Token: msg.token})

	case spinner.TickMsg:
		if !m.state.Pending {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

// handleKey routes keyboard input: navigation keys go to the machine,
// everything else edits the query.
func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.cancelled = true
		return m, tea.Quit

	case tea.KeyEsc:
		return m.applyEvent(search.Escape{})

	case tea.KeyUp:
		return m.applyEvent(search.CursorUp{})

	case tea.KeyDown:
		return m.applyEvent(search.CursorDown{})

	case tea.KeyEnter:
		return m.applyEvent(search.Enter{})
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != before {
		next, qcmd := m.applyEvent(search.QueryChanged{Text: v})
		return next, tea.Batch(cmd, qcmd)
	}
	return m, cmd
}

// handleMouse maps pointer events onto the panel geometry: motion over a
// result row previews it, a click commits it, a click on a history row
// copies it into the query, and a click outside the panel closes it.
func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionMotion:
		if idx, ok := m.resultRowAt(msg.Y); ok {
			return m.applyEvent(search.Hover{Index: idx})
		}
		return m, nil

	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if msg.Y == inputRow {
			return m.applyEvent(search.Focus{})
		}
		if idx, ok := m.resultRowAt(msg.Y); ok {
			return m.applyEvent(search.Commit{Index: idx})
		}
		if idx, ok := m.historyRowAt(msg.Y); ok {
			return m.applyEvent(search.HistoryClick{Index: idx})
		}
		if m.panelContains(msg.Y) {
			// Header and status rows are inert, but inside the panel.
			return m, nil
		}
		return m.applyEvent(search.OutsideClick{})
	}

	return m, nil
}

// applyEvent feeds one event through the machine and performs the
// returned effects.
func (m Model) applyEvent(ev search.Event) (Model, tea.Cmd) {
	next, effects := m.machine.Apply(m.state, ev)
	m.state = next

	var cmds []tea.Cmd
	for _, eff := range effects {
		switch eff := eff.(type) {
		case search.ArmDebounce:
			token := eff.Token
			cmds = append(cmds,
				tea.Tick(eff.Delay, func(time.Time) tea.Msg {
					return debounceMsg{token: token}
				}),
				m.spin.Tick,
			)

		case search.Navigate:
			target := eff.Target
			m.target = &target
			cmds = append(cmds, tea.Quit)

		case search.Blur:
			// A standalone terminal box has nowhere to blur to; leaving
			// the input means leaving the program.
			m.cancelled = true
			cmds = append(cmds, tea.Quit)

		case search.SaveHistory:
			// Synchronous and best-effort: persistence failures must not
			// block the commit.
			if m.store != nil {
				_ = m.store.Save(context.Background(), eff.Log)
			}
		}
	}

	// The machine owns the query (commits and history clicks rewrite it);
	// keep the text input in sync.
	if m.input.Value() != m.state.Query {
		m.input.SetValue(m.state.Query)
		m.input.CursorEnd()
	}

	return m, tea.Batch(cmds...)
}
