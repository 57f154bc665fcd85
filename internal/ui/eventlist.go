package ui

import "github.com/nbd-wtf/go-nostr"

const listPageStep = 5

// EventList holds the fetched feed and a cursor over it. The cursor
// is -1 while the list is empty and stays within bounds otherwise.
type EventList struct {
	events   []nostr.Event
	selected int
}

func NewEventList() EventList {
	return EventList{selected: -1}
}

// SetEvents replaces the list wholesale. A non-empty list selects the
// first entry; an empty one clears the selection.
func (l *EventList) SetEvents(events []nostr.Event) {
	l.events = events
	if len(events) == 0 {
		l.selected = -1
		return
	}
	l.selected = 0
}

func (l *EventList) Len() int { return len(l.events) }

func (l *EventList) Events() []nostr.Event { return l.events }

// Selected returns the cursor index, or false when nothing is
// selected.
func (l *EventList) Selected() (int, bool) {
	if l.selected < 0 {
		return 0, false
	}
	return l.selected, true
}

// SelectedEvent returns the event under the cursor.
func (l *EventList) SelectedEvent() (nostr.Event, bool) {
	if l.selected < 0 || l.selected >= len(l.events) {
		return nostr.Event{}, false
	}
	return l.events[l.selected], true
}

func (l *EventList) Previous() {
	if l.selected < 0 {
		return
	}
	if l.selected > 0 {
		l.selected--
	}
}

func (l *EventList) Next() {
	if l.selected < 0 {
		return
	}
	if l.selected < len(l.events)-1 {
		l.selected++
	}
}

func (l *EventList) PageUp() {
	if l.selected < 0 {
		return
	}
	l.selected -= listPageStep
	if l.selected < 0 {
		l.selected = 0
	}
}

func (l *EventList) PageDown() {
	if l.selected < 0 {
		return
	}
	l.selected += listPageStep
	if last := len(l.events) - 1; l.selected > last {
		l.selected = last
	}
}

func (l *EventList) Home() {
	if l.selected < 0 {
		return
	}
	l.selected = 0
}

func (l *EventList) End() {
	if l.selected < 0 {
		return
	}
	l.selected = len(l.events) - 1
}
