package store

import (
	"context"
	"sync"

	"tableflip.dev/tasks/pkg/task"
)

// Memory is a Persistence that keeps the collection in process. It backs
// tests and dry runs.
type Memory struct {
	mu    sync.Mutex
	tasks []task.Task
	// Writes counts WriteAll calls.
	Writes int
}

// NewMemory returns a Memory store seeded with tasks.
func NewMemory(tasks ...task.Task) *Memory {
	return &Memory{tasks: task.Clone(tasks)}
}

func (m *Memory) ReadAll(context.Context) ([]task.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return task.Clone(m.tasks), nil
}

func (m *Memory) WriteAll(_ context.Context, tasks []task.Task) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Writes++
	m.tasks = task.Clone(tasks)
	return nil
}

// Watch never reports changes; the channel closes when ctx is done.
func (m *Memory) Watch(ctx context.Context) (<-chan Event, error) {
	ch := make(chan Event)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch, nil
}
