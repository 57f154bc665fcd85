package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/tami1A84/nostr-cli-app/internal/notify"
)

const (
	connectTimeout = 15 * time.Second
	fetchTimeout   = 10 * time.Second
	publishTimeout = 10 * time.Second
)

func connectRelaysCmd(svc FeedService) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()
		return relaysConnectedMsg{statuses: svc.Connect(ctx)}
	}
}

func fetchEventsCmd(svc FeedService, limit int) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		events, err := svc.Fetch(ctx, limit)
		if err != nil {
			return eventsErrorMsg{err: err}
		}
		return eventsLoadedMsg{events: events}
	}
}

func publishNoteCmd(svc FeedService, content string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		id, err := svc.Publish(ctx, content)
		if err != nil {
			return publishErrorMsg{err: err}
		}
		notify.Send("nostr-cli-app", "Note published: "+notePreview(content))
		return publishDoneMsg{id: id}
	}
}

// notePreview shortens note content for status lines and desktop
// notifications.
func notePreview(content string) string {
	const max = 20
	runes := []rune(content)
	if len(runes) <= max {
		return content
	}
	return string(runes[:max-3]) + "..."
}
