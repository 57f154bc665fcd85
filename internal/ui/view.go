package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/nbd-wtf/go-nostr"
	"github.com/nbd-wtf/go-nostr/nip19"
)

const feedPreviewLen = 137

var jst = time.FixedZone("JST", 9*60*60)

func (m App) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	switch m.overlay.Kind() {
	case overlayAbout:
		return m.renderAbout()
	case overlayCalculator:
		return m.renderCalculator()
	}

	var content string
	switch {
	case m.overlay.Kind() == overlayDetail:
		content = m.renderDetail()
	case m.activeTab == TabCompose:
		content = m.renderCompose()
	default:
		content = m.renderFeed()
	}

	content = lipgloss.NewStyle().
		Width(m.width).
		Height(m.contentHeight()).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left,
		m.renderMenuBar(),
		content,
		m.renderStatusBar(),
	)
}

func (m App) contentHeight() int {
	h := m.height - 2
	if h < 1 {
		h = 1
	}
	return h
}

func (m App) renderMenuBar() string {
	feed := tabInactiveStyle.Render("Feed")
	compose := tabInactiveStyle.Render("Compose")
	if m.activeTab == TabFeed {
		feed = tabActiveStyle.Render("Feed")
	} else {
		compose = tabActiveStyle.Render("Compose")
	}
	bar := "🍎 " + feed + "  " + compose
	return menuBarStyle.Width(m.width).Render(bar)
}

func (m App) renderStatusBar() string {
	mode := "NORMAL"
	if m.mode == ModeEditing {
		mode = "EDIT"
	}
	left := fmt.Sprintf("[%s] %s", mode, m.status)
	if m.busy() {
		left = m.spin.View() + " " + left
	}

	hints := renderHints(m.activeHints())
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(hints) - 2
	if gap < 1 {
		return statusBarStyle.Width(m.width).Render(left)
	}
	return statusBarStyle.Width(m.width).Render(left + strings.Repeat(" ", gap) + hints)
}

// activeHints picks the keybindings worth showing for the current
// mode and overlay.
func (m App) activeHints() []key.Binding {
	switch m.overlay.Kind() {
	case overlayDetail:
		return []key.Binding{DetailKeys.Up, DetailKeys.Down, DetailKeys.Close}
	case overlayAbout, overlayCalculator:
		return []key.Binding{OverlayCloseKeys}
	}
	if m.mode == ModeEditing {
		return []key.Binding{ComposeKeys.Send, ComposeKeys.Exit}
	}
	return []key.Binding{
		GlobalKeys.ToggleEdit, GlobalKeys.Refresh, GlobalKeys.NextTab,
		GlobalKeys.OpenDetail, GlobalKeys.Quit,
	}
}

func renderHints(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}

func (m App) renderFeed() string {
	if m.list.Len() == 0 {
		return helpStyle.Render("\n  No events. Press r to refresh.")
	}

	const itemHeight = 3
	visible := m.contentHeight() / itemHeight
	if visible < 1 {
		visible = 1
	}
	selected, _ := m.list.Selected()
	start := 0
	if selected >= visible {
		start = selected - visible + 1
	}
	end := start + visible
	if end > m.list.Len() {
		end = m.list.Len()
	}

	var b strings.Builder
	for i, evt := range m.list.Events()[start:end] {
		idx := start + i
		meta := fmt.Sprintf("📄 %s - %s", shortNpub(evt.PubKey), eventTime(evt))
		body := "   " + previewText(evt.Content, feedPreviewLen)
		if idx == selected {
			b.WriteString(selectedItemStyle.Render(meta))
			b.WriteString("\n")
			b.WriteString(selectedItemStyle.Render(body))
		} else {
			b.WriteString(itemMetaStyle.Render(meta))
			b.WriteString("\n")
			b.WriteString(itemBodyStyle.Render(body))
		}
		b.WriteString("\n\n")
	}
	return b.String()
}

func (m App) renderCompose() string {
	var b strings.Builder
	b.WriteString("\n  Posting as " + m.identity + "\n\n")
	b.WriteString("  " + m.draft.View() + "\n\n")
	b.WriteString(helpStyle.Render("  Enter: send  Esc: normal mode"))
	return b.String()
}

func (m App) renderDetail() string {
	evt, ok := m.list.SelectedEvent()
	if !ok {
		return ""
	}

	innerWidth := m.width - 10
	if innerWidth < 20 {
		innerWidth = 20
	}
	wrapped := wordwrap.String(evt.Content, innerWidth)
	lines := strings.Split(wrapped, "\n")

	visible := m.contentHeight() - 8
	if visible < 1 {
		visible = 1
	}
	offset := clampOffset(m.overlay.detailScroll, len(lines)-visible)
	end := offset + visible
	if end > len(lines) {
		end = len(lines)
	}

	var b strings.Builder
	b.WriteString(dialogTitleStyle.Width(innerWidth).Render("Event Detail"))
	b.WriteString("\n\n")
	b.WriteString("From: " + shortNpub(evt.PubKey) + "\n")
	b.WriteString("Date: " + eventTime(evt) + "\n")
	b.WriteString("ID:   " + shortID(evt.ID) + "\n\n")
	b.WriteString(strings.Join(lines[offset:end], "\n"))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("line %d/%d  ↑↓ scroll  Esc close", offset+1, len(lines))))

	return dialogStyle.Render(b.String())
}

func (m App) renderAbout() string {
	var b strings.Builder
	b.WriteString(dialogTitleStyle.Width(30).Render("About nostr-cli-app"))
	b.WriteString("\n\n")
	b.WriteString("A terminal Nostr client.\n\n")
	b.WriteString("Logged in as:\n" + m.identity + "\n\n")
	b.WriteString(helpStyle.Render("Esc/q: close"))
	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		dialogStyle.Render(b.String()))
}

func (m App) renderCalculator() string {
	var b strings.Builder
	b.WriteString(dialogTitleStyle.Width(13).Render("Calculator"))
	b.WriteString("\n")
	b.WriteString(calcDisplayStyle.Render(m.overlay.calc.Display()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("0-9 . + - * /\n=  c: clear\nEsc/q: close"))
	return lipgloss.Place(m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		dialogStyle.Render(b.String()))
}

// shortNpub renders a pubkey as an abbreviated npub.
func shortNpub(pubkey string) string {
	npub, err := nip19.EncodePublicKey(pubkey)
	if err != nil || len(npub) < 8 {
		return shortID(pubkey)
	}
	return "npub..." + npub[len(npub)-8:]
}

func eventTime(evt nostr.Event) string {
	return evt.CreatedAt.Time().In(jst).Format("01/02/06 15:04")
}

// previewText flattens a note onto one line and truncates it.
func previewText(content string, max int) string {
	flat := strings.Join(strings.Fields(content), " ")
	runes := []rune(flat)
	if len(runes) <= max {
		return flat
	}
	return string(runes[:max]) + "..."
}
