// Package toast keeps the notifications of one portal until the client reads them.
package toast

import (
	"sync"

	"github.com/benbjohnson/clock"

	"github.com/trezcool/happyclass/core"
)

const defaultCapacity = 20

// Feed is a bounded notification queue. When full, the oldest notification is dropped.
type Feed struct {
	clk      clock.Clock
	capacity int

	mu    sync.Mutex
	items []core.Notification
}

var _ core.Notifier = (*Feed)(nil)

func NewFeed(clk clock.Clock, capacity int) *Feed {
	if clk == nil {
		clk = clock.New()
	}
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Feed{clk: clk, capacity: capacity}
}

func (f *Feed) Notify(kind core.NotificationKind, msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.items) == f.capacity {
		f.items = f.items[1:]
	}
	f.items = append(f.items, core.Notification{Kind: kind, Message: msg, At: f.clk.Now().UTC()})
}

// Drain returns the pending notifications, oldest first, and empties the feed.
func (f *Feed) Drain() []core.Notification {
	f.mu.Lock()
	defer f.mu.Unlock()

	items := f.items
	f.items = nil
	if items == nil {
		return []core.Notification{}
	}
	return items
}

// Last returns the most recent notification without removing it.
func (f *Feed) Last() (core.Notification, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.items) == 0 {
		return core.Notification{}, false
	}
	return f.items[len(f.items)-1], true
}

func (f *Feed) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.items)
}
