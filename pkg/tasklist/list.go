// Package tasklist holds the authoritative in-memory task collection and keeps
// the durable store in step with it. The CLI, the terminal UI and the MCP
// server all mutate tasks through a List.
package tasklist

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"tableflip.dev/tasks/pkg/logging"
	"tableflip.dev/tasks/pkg/store"
	"tableflip.dev/tasks/pkg/task"
)

var (
	// ErrEmptyTitle rejects an add whose title is blank.
	ErrEmptyTitle = errors.New("tasklist: title is required")
	// ErrNotFound is returned when no task has the requested id.
	ErrNotFound = errors.New("tasklist: task not found")
	// ErrPersist wraps storage write failures. The in-memory collection keeps
	// the mutation when it is returned.
	ErrPersist = errors.New("tasklist: persist failed")
)

// Snapshot is what subscribers receive after every change.
type Snapshot struct {
	Tasks []task.Task
	// Err is the outcome of the write that followed the change, if any.
	Err error
}

// List is a write-through state container for the task collection.
type List struct {
	persistence store.Persistence
	logger      *slog.Logger
	now         func() time.Time

	mu      sync.Mutex
	tasks   []task.Task
	lastErr error
	subs    map[int]func(Snapshot)
	nextSub int
}

// Option configures a List.
type Option func(*List)

// WithLogger sets the logger failures are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(list *List) {
		if l != nil {
			list.logger = l
		}
	}
}

// WithClock overrides the clock new ids are derived from.
func WithClock(now func() time.Time) Option {
	return func(list *List) {
		if now != nil {
			list.now = now
		}
	}
}

// New returns an empty List backed by p. Call Load to read the stored
// collection.
func New(p store.Persistence, opts ...Option) *List {
	l := &List{
		persistence: p,
		logger:      logging.Discard(),
		now:         time.Now,
		tasks:       []task.Task{},
		subs:        make(map[int]func(Snapshot)),
	}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Load reads the stored collection into memory. A missing slot leaves the
// collection empty. Read or decode failures are logged and returned, and the
// current collection is kept.
func (l *List) Load(ctx context.Context) error {
	log := logging.WithOperation(l.logger, "load")
	if l.persistence == nil {
		err := errors.New("tasklist: no persistence configured")
		log.Error("failed to load tasks", logging.Err(err))
		return err
	}
	stored, err := l.persistence.ReadAll(ctx)
	if err != nil {
		log.Error("failed to load tasks", logging.Err(err))
		return err
	}

	l.mu.Lock()
	l.tasks = task.Clone(stored)
	l.lastErr = nil
	snap := l.snapshotLocked()
	l.mu.Unlock()

	log.Debug("loaded tasks", logging.Count(len(snap.Tasks)))
	l.notify(snap)
	return nil
}

// Reload re-reads the store after an external change. It behaves like Load
// and exists so callers can tell the two apart in logs.
func (l *List) Reload(ctx context.Context) error {
	l.logger.Debug("reloading tasks", logging.Operation("reload"))
	return l.Load(ctx)
}

// Add appends a new open task. A title that trims to empty is rejected with
// ErrEmptyTitle and nothing is written. A blank emoji falls back to
// task.DefaultEmoji.
func (l *List) Add(ctx context.Context, title, description, emoji string) (task.Task, error) {
	if strings.TrimSpace(title) == "" {
		return task.Task{}, ErrEmptyTitle
	}

	l.mu.Lock()
	id := task.NewID(l.now(), func(id string) bool { return task.IndexOf(l.tasks, id) >= 0 })
	t := task.New(id, title, description, emoji)
	updated := append(task.Clone(l.tasks), t)
	l.tasks = updated
	err := l.persistLocked(ctx, updated)
	snap := l.snapshotLocked()
	l.mu.Unlock()

	l.notify(snap)
	return t, err
}

// ToggleComplete flips the completion flag of the task with id.
func (l *List) ToggleComplete(ctx context.Context, id string) (task.Task, error) {
	l.mu.Lock()
	idx := task.IndexOf(l.tasks, id)
	if idx < 0 {
		l.mu.Unlock()
		l.logger.Debug("task not found", logging.Operation("toggle"), logging.TaskID(id))
		return task.Task{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	updated := task.Clone(l.tasks)
	updated[idx] = updated[idx].Toggled()
	t := updated[idx]
	l.tasks = updated
	err := l.persistLocked(ctx, updated)
	snap := l.snapshotLocked()
	l.mu.Unlock()

	l.notify(snap)
	if err != nil {
		l.logger.Warn("toggle not saved", logging.Operation("toggle"), logging.TaskID(id))
	}
	return t, err
}

// Delete removes the task with id. The order of the others is unchanged.
func (l *List) Delete(ctx context.Context, id string) (task.Task, error) {
	l.mu.Lock()
	idx := task.IndexOf(l.tasks, id)
	if idx < 0 {
		l.mu.Unlock()
		l.logger.Debug("task not found", logging.Operation("delete"), logging.TaskID(id))
		return task.Task{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	removed := l.tasks[idx]
	updated := make([]task.Task, 0, len(l.tasks)-1)
	updated = append(updated, l.tasks[:idx]...)
	updated = append(updated, l.tasks[idx+1:]...)
	l.tasks = updated
	err := l.persistLocked(ctx, updated)
	snap := l.snapshotLocked()
	l.mu.Unlock()

	l.notify(snap)
	if err != nil {
		l.logger.Warn("delete not saved", logging.Operation("delete"), logging.TaskID(id))
	}
	return removed, err
}

// Persist overwrites the stored collection with tasks. Failures are logged and
// returned wrapped in ErrPersist; memory is never rolled back.
func (l *List) Persist(ctx context.Context, tasks []task.Task) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.persistLocked(ctx, tasks)
}

func (l *List) persistLocked(ctx context.Context, tasks []task.Task) error {
	var err error
	if l.persistence == nil {
		err = fmt.Errorf("%w: no persistence configured", ErrPersist)
	} else if werr := l.persistence.WriteAll(ctx, tasks); werr != nil {
		err = fmt.Errorf("%w: %w", ErrPersist, werr)
	}
	l.lastErr = err
	if err != nil {
		l.logger.Error("failed to save tasks", logging.Operation("persist"), logging.Count(len(tasks)), logging.Err(err))
	}
	return err
}

// Tasks returns a copy of the collection in insertion order.
func (l *List) Tasks() []task.Task {
	l.mu.Lock()
	defer l.mu.Unlock()
	return task.Clone(l.tasks)
}

// Get returns the task with id.
func (l *List) Get(id string) (task.Task, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if idx := task.IndexOf(l.tasks, id); idx >= 0 {
		return l.tasks[idx], true
	}
	return task.Task{}, false
}

// Len reports the number of tasks.
func (l *List) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.tasks)
}

// Err reports the outcome of the most recent write, nil when it succeeded.
func (l *List) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lastErr
}

// Subscribe registers fn to run after every change, outside the lock. The
// returned func removes the subscription.
func (l *List) Subscribe(fn func(Snapshot)) func() {
	l.mu.Lock()
	id := l.nextSub
	l.nextSub++
	l.subs[id] = fn
	l.mu.Unlock()

	return func() {
		l.mu.Lock()
		delete(l.subs, id)
		l.mu.Unlock()
	}
}

func (l *List) snapshotLocked() Snapshot {
	return Snapshot{Tasks: task.Clone(l.tasks), Err: l.lastErr}
}

func (l *List) notify(snap Snapshot) {
	l.mu.Lock()
	subs := make([]func(Snapshot), 0, len(l.subs))
	for _, fn := range l.subs {
		subs = append(subs, fn)
	}
	l.mu.Unlock()

	for _, fn := range subs {
		fn(Snapshot{Tasks: task.Clone(snap.Tasks), Err: snap.Err})
	}
}
