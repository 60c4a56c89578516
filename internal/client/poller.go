package client

import (
	"context"
	"sync"
	"time"

	"github.com/sakif/property-board/internal/model"
)

// DefaultPollInterval matches the dashboard's auto-refresh cadence.
const DefaultPollInterval = 30 * time.Second

// State is the poller's view of the world at one moment: the last
// successfully fetched collection, whether a fetch is in flight, and the
// banner message from the most recent failure (empty when healthy).
type State struct {
	Snapshot  []model.Property
	Loading   bool
	LastError string
}

// Poller keeps a collection snapshot converged with server state.
//
// It refreshes once immediately when Run starts, then on every tick, and
// again out-of-band after each successful mutation. All state transitions
// happen under one mutex, so the four events that can touch the view —
// poll tick, mutation success, mutation failure, refresh completion — are
// serialized and individually testable.
//
// STALE RESPONSES:
// The poll loop and user-triggered refreshes run concurrently, so a slow
// List() can return after a newer one already landed. Every refresh takes a
// sequence number before its request goes out; a response whose sequence is
// older than the last applied one is discarded instead of clobbering
// fresher data.
type Poller struct {
	api      *Client
	interval time.Duration
	onChange func(State) // invoked (outside the lock) after every state change; may be nil

	mu      sync.Mutex
	state   State
	nextSeq uint64
	applied uint64
}

// NewPoller creates a Poller over the given API client. interval <= 0 falls
// back to DefaultPollInterval. onChange, when non-nil, is called with a copy
// of the state after every transition — the dashboard uses it to re-render.
func NewPoller(api *Client, interval time.Duration, onChange func(State)) *Poller {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Poller{
		api:      api,
		interval: interval,
		onChange: onChange,
	}
}

// Run refreshes immediately, then on every tick until ctx is cancelled.
// Cancelling ctx is the single stop mechanism — the loop exits, the ticker
// is released, and no orphaned background refreshes remain.
func (p *Poller) Run(ctx context.Context) {
	p.Refresh(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.Refresh(ctx)
		}
	}
}

// Refresh performs one List() and applies the outcome:
//   - success: the snapshot is replaced wholesale and any banner cleared
//   - failure: the previous snapshot is kept (stale-but-present beats a
//     blank view) and LastError records the failure
//   - stale: a response older than the last applied one is dropped
func (p *Poller) Refresh(ctx context.Context) {
	p.mu.Lock()
	p.nextSeq++
	seq := p.nextSeq
	p.state.Loading = true
	p.mu.Unlock()
	p.notify()

	snapshot, err := p.api.List(ctx)

	p.mu.Lock()
	p.state.Loading = false
	if seq < p.applied {
		// A newer response already landed while this one was in flight.
		p.mu.Unlock()
		p.notify()
		return
	}
	p.applied = seq
	if err != nil {
		p.state.LastError = "Backend unreachable"
	} else {
		p.state.Snapshot = snapshot
		p.state.LastError = ""
	}
	p.mu.Unlock()
	p.notify()
}

// State returns a copy of the current state. The snapshot slice is cloned so
// callers can't mutate the poller's view.
func (p *Poller) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.snapshotLocked()
}

func (p *Poller) snapshotLocked() State {
	s := p.state
	s.Snapshot = append([]model.Property(nil), p.state.Snapshot...)
	return s
}

func (p *Poller) notify() {
	if p.onChange == nil {
		return
	}
	p.mu.Lock()
	s := p.snapshotLocked()
	p.mu.Unlock()
	p.onChange(s)
}

// Create submits a draft and, on success, refreshes the snapshot immediately
// so the view converges without waiting for the next tick. A failure leaves
// the snapshot untouched — the caller's form state survives for re-submission.
func (p *Poller) Create(ctx context.Context, draft model.PropertyDraft) (*model.Property, error) {
	property, err := p.api.Create(ctx, draft)
	if err != nil {
		return nil, err
	}
	p.Refresh(ctx)
	return property, nil
}

// Update submits a full-replace draft; same refresh-on-success contract as Create.
func (p *Poller) Update(ctx context.Context, id string, draft model.PropertyDraft) (*model.Property, error) {
	property, err := p.api.Update(ctx, id, draft)
	if err != nil {
		return nil, err
	}
	p.Refresh(ctx)
	return property, nil
}

// Delete removes a record; same refresh-on-success contract as Create.
func (p *Poller) Delete(ctx context.Context, id string) error {
	if err := p.api.Delete(ctx, id); err != nil {
		return err
	}
	p.Refresh(ctx)
	return nil
}
