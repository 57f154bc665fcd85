package ui

import (
	"context"

	"github.com/nbd-wtf/go-nostr"

	"github.com/tami1A84/nostr-cli-app/internal/nostrclient"
)

// FeedService is what the app needs from the relay client.
type FeedService interface {
	Connect(ctx context.Context) []nostrclient.RelayStatus
	Fetch(ctx context.Context, limit int) ([]nostr.Event, error)
	Publish(ctx context.Context, content string) (string, error)
}
