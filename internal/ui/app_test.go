package ui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nbd-wtf/go-nostr"

	"github.com/tami1A84/nostr-cli-app/internal/nostrclient"
)

type fakeFeed struct {
	events    []nostr.Event
	fetchErr  error
	published []string
}

func (f *fakeFeed) Connect(ctx context.Context) []nostrclient.RelayStatus {
	return []nostrclient.RelayStatus{{URL: "wss://example.test"}}
}

func (f *fakeFeed) Fetch(ctx context.Context, limit int) ([]nostr.Event, error) {
	if f.fetchErr != nil {
		return nil, f.fetchErr
	}
	return f.events, nil
}

func (f *fakeFeed) Publish(ctx context.Context, content string) (string, error) {
	f.published = append(f.published, content)
	return "eventid", nil
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func newTestApp(svc FeedService) App {
	m := NewApp(svc, "npub1test")
	m.width = 80
	m.height = 24
	return m
}

func update(t *testing.T, m App, msg tea.Msg) (App, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	app, ok := next.(App)
	if !ok {
		t.Fatalf("Update returned %T, want App", next)
	}
	return app, cmd
}

func TestQuitFromNormalMode(t *testing.T) {
	m := newTestApp(&fakeFeed{})
	_, cmd := update(t, m, keyRune('q'))
	if cmd == nil {
		t.Fatal("q produced no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatal("q did not quit")
	}
}

func TestEditingModeToggle(t *testing.T) {
	m := newTestApp(&fakeFeed{})

	m, _ = update(t, m, keyRune('i'))
	if m.mode != ModeEditing {
		t.Fatal("i did not enter editing mode")
	}

	// Printable keys feed the draft, not the global bindings.
	m, cmd := update(t, m, keyRune('q'))
	if cmd != nil {
		if _, ok := cmd().(tea.QuitMsg); ok {
			t.Fatal("q quit while editing")
		}
	}
	if got := m.draft.Value(); got != "q" {
		t.Errorf("draft = %q, want %q", got, "q")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.mode != ModeNormal {
		t.Error("Esc did not return to normal mode")
	}
	if m.draft.Value() != "" {
		t.Error("Esc did not clear the draft")
	}
}

func TestSubmitPublishesAndReturnsToFeed(t *testing.T) {
	svc := &fakeFeed{}
	m := newTestApp(svc)

	m, _ = update(t, m, keyRune('i'))
	for _, r := range "hello" {
		m, _ = update(t, m, keyRune(r))
	}
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("submit produced no command")
	}
	if !m.publishing {
		t.Error("publishing guard not set")
	}
	if m.mode != ModeNormal || m.activeTab != TabFeed {
		t.Error("submit did not return to normal mode on the feed tab")
	}
	if m.draft.Value() != "" {
		t.Error("draft not cleared on submit")
	}

	msg := cmd()
	done, ok := msg.(publishDoneMsg)
	if !ok {
		t.Fatalf("publish command returned %T, want publishDoneMsg", msg)
	}
	if done.id != "eventid" {
		t.Errorf("published id = %q", done.id)
	}
	if len(svc.published) != 1 || svc.published[0] != "hello" {
		t.Errorf("published = %v, want [hello]", svc.published)
	}

	m, cmd = update(t, m, done)
	if m.publishing {
		t.Error("publishing guard not cleared")
	}
	if cmd == nil {
		t.Error("publish completion did not trigger a refresh")
	}
}

func TestSubmitEmptyDraftIgnored(t *testing.T) {
	m := newTestApp(&fakeFeed{})
	m, _ = update(t, m, keyRune('i'))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("empty submit produced a command")
	}
	if m.mode != ModeEditing {
		t.Error("empty submit left editing mode")
	}
}

func TestRefreshSerialized(t *testing.T) {
	m := newTestApp(&fakeFeed{})

	m, cmd := update(t, m, keyRune('r'))
	if cmd == nil {
		t.Fatal("r produced no fetch")
	}
	if !m.refreshing {
		t.Fatal("refreshing guard not set")
	}

	// A second refresh while one is in flight is dropped.
	_, cmd = update(t, m, keyRune('r'))
	if cmd != nil {
		t.Error("refresh started while another was in flight")
	}
}

func TestFailedFetchKeepsList(t *testing.T) {
	m := newTestApp(&fakeFeed{})
	m, _ = update(t, m, eventsLoadedMsg{events: makeEvents(5)})
	m.list.Next()

	m, _ = update(t, m, eventsErrorMsg{err: errors.New("relay timeout")})
	if m.list.Len() != 5 {
		t.Error("failed fetch replaced the list")
	}
	if got, _ := m.list.Selected(); got != 1 {
		t.Errorf("failed fetch moved the cursor to %d", got)
	}
}

func TestEmptyFetchClearsSelection(t *testing.T) {
	m := newTestApp(&fakeFeed{})
	m, _ = update(t, m, eventsLoadedMsg{events: makeEvents(5)})
	m, _ = update(t, m, eventsLoadedMsg{events: nil})
	if _, ok := m.list.Selected(); ok {
		t.Error("selection survived an empty fetch")
	}
}

func TestDetailOverlay(t *testing.T) {
	m := newTestApp(&fakeFeed{})
	m, _ = update(t, m, eventsLoadedMsg{events: makeEvents(3)})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.overlay.Kind() != overlayDetail {
		t.Fatal("Enter did not open the detail overlay")
	}

	// Arrow keys scroll the detail, not the list.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.overlay.detailScroll != 1 {
		t.Errorf("detail scroll = %d, want 1", m.overlay.detailScroll)
	}
	if got, _ := m.list.Selected(); got != 0 {
		t.Error("detail scrolling moved the list cursor")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnd})
	if m.overlay.detailScroll != detailEndSentinel {
		t.Errorf("End set scroll %d, want sentinel %d", m.overlay.detailScroll, detailEndSentinel)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.overlay.Kind() != overlayNone {
		t.Error("Esc did not close the detail overlay")
	}
	if m.mode != ModeNormal {
		t.Error("closing detail changed the mode")
	}
}

func TestDetailRequiresSelection(t *testing.T) {
	m := newTestApp(&fakeFeed{})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.overlay.Kind() != overlayNone {
		t.Error("Enter opened detail with no events")
	}
}

func TestCalculatorOverlayCapturesKeys(t *testing.T) {
	m := newTestApp(&fakeFeed{})
	m, _ = update(t, m, eventsLoadedMsg{events: makeEvents(3)})

	m, _ = update(t, m, keyRune('s'))
	if m.overlay.Kind() != overlayCalculator {
		t.Fatal("s did not open the calculator")
	}

	for _, r := range "1+2" {
		m, _ = update(t, m, keyRune(r))
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.overlay.calc.Display(); got != "3" {
		t.Errorf("calculator display = %q, want 3", got)
	}

	// q closes the calculator instead of quitting.
	m, cmd := update(t, m, keyRune('q'))
	if cmd != nil {
		t.Error("q inside calculator produced a command")
	}
	if m.overlay.Kind() != overlayNone {
		t.Error("q did not close the calculator")
	}
}

func TestAboutOverlay(t *testing.T) {
	m := newTestApp(&fakeFeed{})
	m, _ = update(t, m, keyRune('a'))
	if m.overlay.Kind() != overlayAbout {
		t.Fatal("a did not open the about dialog")
	}

	// List navigation is ignored while the dialog is up.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.overlay.Kind() != overlayAbout {
		t.Fatal("stray key closed the about dialog")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.overlay.Kind() != overlayNone {
		t.Error("Esc did not close the about dialog")
	}
}

func TestTabCycle(t *testing.T) {
	m := newTestApp(&fakeFeed{})

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.activeTab != TabCompose || m.mode != ModeEditing {
		t.Fatal("Tab did not switch to compose in editing mode")
	}

	// Editing mode owns the keyboard; leave it first, then Tab back.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.activeTab != TabFeed || m.mode != ModeNormal {
		t.Error("Tab did not return to the feed in normal mode")
	}
}

func TestClampOffset(t *testing.T) {
	tests := []struct {
		offset, maxStart, want int
	}{
		{0, 10, 0},
		{5, 10, 5},
		{15, 10, 10},
		{detailEndSentinel, 3, 3},
		{2, -1, 0},
	}
	for _, tt := range tests {
		if got := clampOffset(tt.offset, tt.maxStart); got != tt.want {
			t.Errorf("clampOffset(%d, %d) = %d, want %d", tt.offset, tt.maxStart, got, tt.want)
		}
	}
}
