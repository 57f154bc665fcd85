package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tami1A84/nostr-cli-app/internal/nostrclient"
)

// Mode is the input mode: normal keys navigate, editing keys feed the
// compose draft.
type Mode int

const (
	ModeNormal Mode = iota
	ModeEditing
)

// Tab selects the main view.
type Tab int

const (
	TabFeed Tab = iota
	TabCompose
)

// App is the root model. It owns the feed, the compose draft, the
// overlay state, and the in-flight guards that keep at most one fetch
// and one publish running at a time.
type App struct {
	svc      FeedService
	identity string

	mode      Mode
	activeTab Tab
	list      EventList
	draft     textinput.Model
	overlay   Overlay
	spin      spinner.Model
	status    string

	width  int
	height int

	refreshing bool
	publishing bool
}

func NewApp(svc FeedService, identity string) App {
	draft := textinput.New()
	draft.Placeholder = "What's on your mind?"
	draft.CharLimit = 0
	spin := spinner.New()
	spin.Spinner = spinner.Line
	return App{
		svc:      svc,
		identity: identity,
		list:     NewEventList(),
		draft:    draft,
		overlay:  NewOverlay(),
		spin:     spin,
		status:   "Connecting to relays...",
	}
}

func (m App) Init() tea.Cmd {
	return tea.Batch(connectRelaysCmd(m.svc), m.spin.Tick)
}

func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case relaysConnectedMsg:
		ok := 0
		for _, st := range msg.statuses {
			if st.Err == nil {
				ok++
			}
		}
		if ok == 0 {
			m.status = "No relays reachable"
			return m, nil
		}
		m.status = fmt.Sprintf("Connected to %d/%d relays, fetching...", ok, len(msg.statuses))
		m.refreshing = true
		return m, fetchEventsCmd(m.svc, nostrclient.DefaultFetchLimit)

	case eventsLoadedMsg:
		m.refreshing = false
		m.list.SetEvents(msg.events)
		m.status = fmt.Sprintf("Loaded %d events", len(msg.events))
		return m, nil

	case eventsErrorMsg:
		m.refreshing = false
		m.status = "Fetch failed: " + msg.err.Error()
		return m, nil

	case publishDoneMsg:
		m.publishing = false
		m.refreshing = true
		m.status = "Note published (" + shortID(msg.id) + "), refreshing..."
		return m, fetchEventsCmd(m.svc, nostrclient.DefaultFetchLimit)

	case publishErrorMsg:
		m.publishing = false
		m.status = "Publish failed: " + msg.err.Error()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m App) busy() bool {
	return m.refreshing || m.publishing
}

// handleKey dispatches a key press. Overlays take precedence over the
// main view, calculator first, then about, then detail; with no
// overlay the normal-mode keys run before editing-mode input.
func (m App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.overlay.Kind() {
	case overlayCalculator:
		m.handleCalculatorKey(msg)
		return m, nil
	case overlayAbout:
		if key.Matches(msg, OverlayCloseKeys) {
			m.overlay.Close()
		}
		return m, nil
	case overlayDetail:
		if m.mode == ModeNormal {
			m.handleDetailKey(msg)
			return m, nil
		}
	}

	if m.mode == ModeNormal {
		return m.handleNormalKey(msg)
	}
	return m.handleEditingKey(msg)
}

func (m *App) handleCalculatorKey(msg tea.KeyMsg) {
	if key.Matches(msg, OverlayCloseKeys) {
		m.overlay.Close()
		return
	}
	switch s := msg.String(); s {
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		m.overlay.calc.InputDigit(rune(s[0]))
	case ".":
		m.overlay.calc.InputDot()
	case "+":
		m.overlay.calc.Operator(OpAdd)
	case "-":
		m.overlay.calc.Operator(OpSub)
	case "*":
		m.overlay.calc.Operator(OpMul)
	case "/":
		m.overlay.calc.Operator(OpDiv)
	case "=", "enter":
		m.overlay.calc.Equals()
	case "c":
		m.overlay.calc.Clear()
	}
}

func (m *App) handleDetailKey(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, DetailKeys.Close):
		m.overlay.Close()
	case key.Matches(msg, DetailKeys.Up):
		m.overlay.ScrollUp()
	case key.Matches(msg, DetailKeys.Down):
		m.overlay.ScrollDown()
	case key.Matches(msg, DetailKeys.PageUp):
		m.overlay.ScrollPageUp()
	case key.Matches(msg, DetailKeys.PageDown):
		m.overlay.ScrollPageDown()
	case key.Matches(msg, DetailKeys.Home):
		m.overlay.ScrollHome()
	case key.Matches(msg, DetailKeys.End):
		m.overlay.ScrollEnd()
	}
}

func (m App) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, GlobalKeys.Quit):
		return m, tea.Quit

	case key.Matches(msg, GlobalKeys.ToggleEdit):
		m.activeTab = TabCompose
		m.mode = ModeEditing
		return m, m.draft.Focus()

	case key.Matches(msg, GlobalKeys.Refresh):
		if m.refreshing {
			return m, nil
		}
		m.refreshing = true
		m.status = "Fetching events..."
		return m, fetchEventsCmd(m.svc, nostrclient.DefaultFetchLimit)

	case key.Matches(msg, GlobalKeys.About):
		m.overlay.OpenAbout()
		return m, nil

	case key.Matches(msg, GlobalKeys.Calculator):
		m.overlay.OpenCalculator()
		return m, nil

	case key.Matches(msg, GlobalKeys.NextTab):
		if m.activeTab == TabFeed {
			m.activeTab = TabCompose
			m.mode = ModeEditing
			return m, m.draft.Focus()
		}
		m.activeTab = TabFeed
		m.mode = ModeNormal
		m.draft.Reset()
		m.draft.Blur()
		return m, nil

	case key.Matches(msg, GlobalKeys.OpenDetail):
		if m.activeTab == TabFeed {
			if _, ok := m.list.SelectedEvent(); ok {
				m.overlay.OpenDetail()
			}
		}
		return m, nil

	case key.Matches(msg, GlobalKeys.Up):
		m.list.Previous()
		return m, nil
	case key.Matches(msg, GlobalKeys.Down):
		m.list.Next()
		return m, nil
	case key.Matches(msg, GlobalKeys.PageUp):
		m.list.PageUp()
		return m, nil
	case key.Matches(msg, GlobalKeys.PageDown):
		m.list.PageDown()
		return m, nil
	case key.Matches(msg, GlobalKeys.Home):
		m.list.Home()
		return m, nil
	case key.Matches(msg, GlobalKeys.End):
		m.list.End()
		return m, nil
	}
	return m, nil
}

func (m App) handleEditingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, ComposeKeys.Exit):
		m.mode = ModeNormal
		m.draft.Reset()
		m.draft.Blur()
		return m, nil

	case key.Matches(msg, ComposeKeys.Send):
		content := m.draft.Value()
		if content == "" || m.publishing {
			return m, nil
		}
		m.draft.Reset()
		m.draft.Blur()
		m.mode = ModeNormal
		m.activeTab = TabFeed
		m.publishing = true
		m.status = "Publishing note..."
		return m, publishNoteCmd(m.svc, content)
	}

	var cmd tea.Cmd
	m.draft, cmd = m.draft.Update(msg)
	return m, cmd
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}
