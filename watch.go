package ordering

import (
	"context"

	"github.com/guiguan/caster"
)

// Relabel describes one completed relabeling pass over a ring segment.
type Relabel struct {
	Count int // number of members whose tags were rewritten
	Mask  Tag // high-order bit mask of the rewritten segment
}

// watchBuffer is the channel capacity used for relabel subscriptions.
const watchBuffer = 8

// relabelFeed broadcasts Relabel events to any number of watchers.
type relabelFeed struct {
	cast *caster.Caster
}

// Watch subscribes to completed relabels. Tags are not stable identities, so
// callers which cache tags obtained from RangeWithTags can use the feed to
// learn when cached tags went stale.
//
// The returned channel is closed when ctx is done or when Close is called.
// Delivery is asynchronous and best-effort: a watcher which falls behind
// misses events rather than stalling insertions. The first call lazily
// starts a broadcaster goroutine; an Ordering which is never watched spawns
// none.
func (o *Ordering[T]) Watch(ctx context.Context) <-chan Relabel {
	if o.feed == nil {
		o.feed = &relabelFeed{cast: caster.New(nil)}
	}
	src, ok := o.feed.cast.Sub(ctx, watchBuffer)
	out := make(chan Relabel, watchBuffer)
	if !ok {
		close(out)
		return out
	}
	go func() {
		defer close(out)
		for m := range src {
			ev, isRelabel := m.(Relabel)
			if !isRelabel {
				continue
			}
			select {
			case out <- ev:
			default:
				// best-effort: a watcher that stopped reading misses events,
				// and never pins this goroutine past Close
			}
		}
	}()
	return out
}

// Close shuts down the relabel broadcaster and closes all watcher channels.
// It is idempotent and a no-op for an Ordering that was never watched.
// The structure itself stays fully usable after Close.
func (o *Ordering[T]) Close() {
	if o.feed != nil {
		o.feed.cast.Close()
		o.feed = nil
	}
}

func (o *Ordering[T]) publishRelabel(ev Relabel) {
	if o.feed == nil {
		return
	}
	// never let a slow watcher stall an insertion
	o.feed.cast.TryPub(ev)
}
