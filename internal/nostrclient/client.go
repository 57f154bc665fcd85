// Package nostrclient talks to Nostr relays: connecting, fetching and
// publishing text notes, and a bounded one-shot collector for the
// non-interactive feed display.
package nostrclient

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/nbd-wtf/go-nostr"

	"github.com/tami1A84/nostr-cli-app/internal/keyvault"
)

// Defaults for fetch and collection bounds.
const (
	DefaultFetchLimit    = 100
	DefaultCollectLimit  = 20
	DefaultCollectBudget = 10 * time.Second
	DefaultCollectSlice  = time.Second
)

// ErrNoRelays is returned by Fetch and Publish when no relay connection
// succeeded. It is recoverable: callers surface it and carry on.
var ErrNoRelays = errors.New("no relays connected")

// RelayStatus reports the outcome of connecting to a single relay.
type RelayStatus struct {
	URL string
	Err error
}

// Client multiplexes a set of relays through a shared pool. It is not
// safe for concurrent use; the TUI owns it from a single loop.
type Client struct {
	pool      *nostr.SimplePool
	session   *keyvault.Session
	relays    []string // configured
	connected []string // subset that accepted a connection
}

// New creates a client for the given session and relay set. No I/O
// happens until Connect.
func New(session *keyvault.Session, relays []string) *Client {
	return &Client{
		pool:    nostr.NewSimplePool(context.Background()),
		session: session,
		relays:  relays,
	}
}

// Connect dials every configured relay and records which succeeded.
// Per-relay failures are reported, not fatal: a session may proceed
// with any subset, including none.
func (c *Client) Connect(ctx context.Context) []RelayStatus {
	statuses := make([]RelayStatus, 0, len(c.relays))
	c.connected = c.connected[:0]
	for _, url := range c.relays {
		if _, err := c.pool.EnsureRelay(url); err != nil {
			statuses = append(statuses, RelayStatus{URL: url, Err: err})
			continue
		}
		c.connected = append(c.connected, url)
		statuses = append(statuses, RelayStatus{URL: url})
	}
	return statuses
}

// Connected returns the relays that accepted a connection.
func (c *Client) Connected() []string {
	return c.connected
}

// Fetch retrieves up to limit text notes from the connected relays and
// returns them sorted by creation time descending.
func (c *Client) Fetch(ctx context.Context, limit int) ([]nostr.Event, error) {
	if len(c.connected) == 0 {
		return nil, ErrNoRelays
	}
	if limit <= 0 {
		limit = DefaultFetchLimit
	}

	filter := nostr.Filter{
		Kinds: []int{nostr.KindTextNote},
		Limit: limit,
	}

	var events []nostr.Event
	ch := c.pool.SubManyEose(ctx, c.connected, []nostr.Filter{filter})
	for ev := range ch {
		if ev.Event == nil {
			continue
		}
		events = append(events, *ev.Event)
	}
	if err := ctx.Err(); err != nil && len(events) == 0 {
		return nil, fmt.Errorf("fetch timed out: %w", err)
	}

	SortByCreatedAt(events)
	return events, nil
}

// Publish signs content as a text note with the session key and sends
// it to every connected relay. It succeeds if at least one relay
// accepted the event, returning the event ID.
func (c *Client) Publish(ctx context.Context, content string) (string, error) {
	if len(c.connected) == 0 {
		return "", ErrNoRelays
	}

	evt := nostr.Event{
		PubKey:    c.session.PublicKey,
		CreatedAt: nostr.Now(),
		Kind:      nostr.KindTextNote,
		Content:   content,
	}
	if err := evt.Sign(c.session.SecretKey); err != nil {
		return "", fmt.Errorf("failed to sign event: %w", err)
	}

	var lastErr error
	accepted := 0
	for _, url := range c.connected {
		relay, err := c.pool.EnsureRelay(url)
		if err != nil {
			lastErr = err
			continue
		}
		if err := relay.Publish(ctx, evt); err != nil {
			lastErr = err
			continue
		}
		accepted++
	}
	if accepted == 0 {
		return "", fmt.Errorf("no relay accepted the event: %w", lastErr)
	}
	return evt.ID, nil
}

// Collect runs the bounded one-shot collection: subscribe live, pull
// events with a short per-wait slice, and stop at whichever comes
// first — max events or the total budget. The subscription is dropped
// on return and the result is sorted newest first.
func (c *Client) Collect(ctx context.Context, max int, budget, slice time.Duration) ([]nostr.Event, error) {
	if len(c.connected) == 0 {
		return nil, ErrNoRelays
	}
	if max <= 0 {
		max = DefaultCollectLimit
	}
	if budget <= 0 {
		budget = DefaultCollectBudget
	}
	if slice <= 0 {
		slice = DefaultCollectSlice
	}

	subCtx, cancel := context.WithCancel(ctx)
	defer cancel() // unsubscribes

	filter := nostr.Filter{
		Kinds: []int{nostr.KindTextNote},
		Limit: max,
	}
	ch := c.pool.SubMany(subCtx, c.connected, []nostr.Filter{filter})

	events := collectEvents(subCtx, ch, max, budget, slice)
	SortByCreatedAt(events)
	return events, nil
}

// collectEvents is the receive loop behind Collect, factored out so the
// dual stop conditions can be exercised without relays.
func collectEvents(ctx context.Context, ch <-chan nostr.RelayEvent, max int, budget, slice time.Duration) []nostr.Event {
	deadline := time.Now().Add(budget)
	var events []nostr.Event
	for len(events) < max && time.Now().Before(deadline) {
		wait := slice
		if remaining := time.Until(deadline); remaining < wait {
			wait = remaining
		}
		timer := time.NewTimer(wait)
		select {
		case ev, ok := <-ch:
			timer.Stop()
			if !ok {
				return events
			}
			if ev.Event != nil {
				events = append(events, *ev.Event)
			}
		case <-timer.C:
			// slice elapsed with nothing inbound; loop re-checks the caps
		case <-ctx.Done():
			timer.Stop()
			return events
		}
	}
	return events
}

// SortByCreatedAt orders events newest first. Equal timestamps keep
// their arrival order.
func SortByCreatedAt(events []nostr.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].CreatedAt > events[j].CreatedAt
	})
}
