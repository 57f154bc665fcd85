package ui

import (
	"github.com/nbd-wtf/go-nostr"

	"github.com/tami1A84/nostr-cli-app/internal/nostrclient"
)

type relaysConnectedMsg struct {
	statuses []nostrclient.RelayStatus
}

type eventsLoadedMsg struct {
	events []nostr.Event
}

type eventsErrorMsg struct {
	err error
}

type publishDoneMsg struct {
	id string
}

type publishErrorMsg struct {
	err error
}
