package ui

import (
	"testing"

	"github.com/nbd-wtf/go-nostr"
)

func makeEvents(n int) []nostr.Event {
	events := make([]nostr.Event, n)
	for i := range events {
		events[i] = nostr.Event{ID: string(rune('a' + i)), CreatedAt: nostr.Timestamp(100 - i)}
	}
	return events
}

func TestEventListEmpty(t *testing.T) {
	l := NewEventList()
	if _, ok := l.Selected(); ok {
		t.Fatal("empty list reports a selection")
	}

	// Navigation on an empty list is a no-op.
	l.Previous()
	l.Next()
	l.PageUp()
	l.PageDown()
	l.Home()
	l.End()
	if _, ok := l.Selected(); ok {
		t.Fatal("navigation on empty list produced a selection")
	}
}

func TestEventListNavigation(t *testing.T) {
	tests := []struct {
		name string
		n    int
		move func(l *EventList)
		want int
	}{
		{"set selects first", 10, func(l *EventList) {}, 0},
		{"next", 10, func(l *EventList) { l.Next() }, 1},
		{"previous saturates", 10, func(l *EventList) { l.Previous() }, 0},
		{"next saturates", 3, func(l *EventList) { l.Next(); l.Next(); l.Next(); l.Next() }, 2},
		{"page down", 10, func(l *EventList) { l.PageDown() }, 5},
		{"page down saturates", 4, func(l *EventList) { l.PageDown() }, 3},
		{"page up saturates", 10, func(l *EventList) { l.Next(); l.PageUp() }, 0},
		{"end", 10, func(l *EventList) { l.End() }, 9},
		{"home", 10, func(l *EventList) { l.End(); l.Home() }, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := NewEventList()
			l.SetEvents(makeEvents(tt.n))
			tt.move(&l)
			got, ok := l.Selected()
			if !ok {
				t.Fatal("no selection on non-empty list")
			}
			if got != tt.want {
				t.Errorf("selected = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEventListReplaceClamps(t *testing.T) {
	l := NewEventList()
	l.SetEvents(makeEvents(10))
	l.End()

	l.SetEvents(makeEvents(3))
	if got, ok := l.Selected(); !ok || got != 0 {
		t.Errorf("selected after replace = %d (ok=%v), want 0", got, ok)
	}

	l.SetEvents(nil)
	if _, ok := l.Selected(); ok {
		t.Error("selection survived replace with empty list")
	}
}
