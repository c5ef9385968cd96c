package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventChanged indicates the task slot was written, possibly by another
	// process.
	EventChanged EventType = iota

	// EventRemoved indicates the task slot was deleted.
	EventRemoved

	// EventUnknown signals the watcher could not classify a change; callers
	// should re-read the slot.
	EventUnknown
)

func (t EventType) String() string {
	switch t {
	case EventChanged:
		return "changed"
	case EventRemoved:
		return "removed"
	default:
		return "unknown"
	}
}

// Event is emitted by Persistence.Watch when underlying storage changes.
type Event struct {
	Type EventType
	Key  string
}

// Watch streams change events for the task slot until ctx is cancelled.
// Callers should drain the returned channel to avoid blocking the watcher. The
// channel is closed once ctx is done or the watcher fails.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}

	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	// Only the base directory: the slot lives at its top level and the temp
	// directory is noise.
	if err := watcher.Add(p.basePath); err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: watch %s: %w", p.basePath, err)
	}

	events := make(chan Event, 16)

	go func() {
		var sendMu sync.Mutex
		closed := false
		defer func() {
			sendMu.Lock()
			closed = true
			close(events)
			sendMu.Unlock()
		}()
		defer closeWatcher()

		// send runs on the throttle timer goroutine too.
		send := func(ev Event) {
			sendMu.Lock()
			defer sendMu.Unlock()
			if closed {
				return
			}
			select {
			case events <- ev:
			default:
				// Consumer is busy; it re-reads the whole slot on the next
				// event anyway.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				throttle.Enqueue(Event{Type: EventUnknown, Key: p.key}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !p.isSlot(evt.Name) {
					continue
				}
				switch {
				case evt.Op&fsnotify.Remove == fsnotify.Remove:
					throttle.Enqueue(Event{Type: EventRemoved, Key: p.key}, send)
				case evt.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) != 0:
					throttle.Enqueue(Event{Type: EventChanged, Key: p.key}, send)
				}
			}
		}
	}()

	return events, nil
}

// isSlot reports whether path is the file diskv keeps the task slot in.
func (p *persistence) isSlot(path string) bool {
	rel, err := filepath.Rel(p.basePath, path)
	if err != nil {
		return false
	}
	return rel == p.key
}

// eventThrottle coalesces rapid change notifications so the UI re-reads once
// per burst of filesystem activity instead of on every single write.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[EventType]string
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[EventType]string),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	t.pending[ev.Type] = ev.Key

	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[EventType]string)
	t.timer = nil
	t.mu.Unlock()

	// A removal followed by a write within one burst is just a change.
	if _, ok := pending[EventChanged]; ok {
		delete(pending, EventRemoved)
	}
	for eventType, key := range pending {
		send(Event{Type: eventType, Key: key})
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
