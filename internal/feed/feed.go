// Package feed implements the per-trip change feed: a cancellable
// subscription producing immutable trip snapshots.
//
// This stands in for the remote document store's push channel. Consumers
// must not assume any delivery cadence — intermediate snapshots may be
// skipped — only that the latest snapshot eventually reflects the latest
// committed write. That weak guarantee is what lets delivery be
// latest-wins and non-blocking.
package feed

import (
	"context"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"travelbook/internal/domain"
)

// LoadFunc assembles the current authoritative snapshot for a trip.
// The services provide this; the feed never touches storage directly.
type LoadFunc func(ctx context.Context, tripID uuid.UUID) (domain.Snapshot, error)

// Feed fans trip snapshots out to subscribers. Every committed mutation
// calls Publish, which reloads the snapshot and pushes it to everyone
// subscribed to that trip.
type Feed struct {
	load LoadFunc

	mu     sync.Mutex
	nextID int
	subs   map[uuid.UUID]map[int]chan domain.Snapshot
}

// New constructs a Feed that loads snapshots with the given function.
func New(load LoadFunc) *Feed {
	return &Feed{
		load: load,
		subs: map[uuid.UUID]map[int]chan domain.Snapshot{},
	}
}

// Subscribe registers for snapshots of one trip. The current snapshot is
// delivered first, then one per committed mutation (latest-wins). The
// channel is closed when ctx is cancelled; cancellation is the only way
// to end a subscription, so cleanup is guaranteed on every exit path.
func (f *Feed) Subscribe(ctx context.Context, tripID uuid.UUID) (<-chan domain.Snapshot, error) {
	snap, err := f.load(ctx, tripID)
	if err != nil {
		return nil, err
	}

	// Capacity 1: the buffer holds only the newest undelivered snapshot.
	ch := make(chan domain.Snapshot, 1)
	ch <- snap

	f.mu.Lock()
	f.nextID++
	id := f.nextID
	if f.subs[tripID] == nil {
		f.subs[tripID] = map[int]chan domain.Snapshot{}
	}
	f.subs[tripID][id] = ch
	f.mu.Unlock()

	go func() {
		<-ctx.Done()
		f.mu.Lock()
		delete(f.subs[tripID], id)
		if len(f.subs[tripID]) == 0 {
			delete(f.subs, tripID)
		}
		f.mu.Unlock()
		close(ch)
	}()

	return ch, nil
}

// Publish reloads the trip's snapshot and pushes it to all subscribers.
// A load failure is logged and dropped: the next successful publish
// carries the current state, which satisfies the feed's only guarantee.
func (f *Feed) Publish(ctx context.Context, tripID uuid.UUID) {
	f.mu.Lock()
	n := len(f.subs[tripID])
	f.mu.Unlock()
	if n == 0 {
		return
	}

	snap, err := f.load(ctx, tripID)
	if err != nil {
		slog.Warn("feed: snapshot load failed", "trip_id", tripID, "error", err)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	for _, ch := range f.subs[tripID] {
		deliver(ch, snap)
	}
}

// deliver replaces any undelivered snapshot with the newer one and never
// blocks. A slow subscriber sees only the latest state, never a backlog.
func deliver(ch chan domain.Snapshot, snap domain.Snapshot) {
	for {
		select {
		case ch <- snap:
			return
		default:
		}
		select {
		case <-ch: // discard the stale snapshot and retry
		default:
		}
	}
}
