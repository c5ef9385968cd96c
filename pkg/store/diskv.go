package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/tasks/pkg/task"
)

// ErrMalformed is returned when the stored slot does not decode as a task
// collection.
var ErrMalformed = errors.New("store: malformed task collection")

// Persistence defines the persistence contract for the task collection.
type Persistence interface {
	// ReadAll returns the stored collection. A missing slot is an empty
	// collection, not an error.
	ReadAll(ctx context.Context) ([]task.Task, error)
	// WriteAll replaces the stored collection.
	WriteAll(ctx context.Context, tasks []task.Task) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Load creates a Persistence backed by diskv using the provided config.
func Load(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	key := cfg.Key()
	if key == "" {
		key = DefaultKey
	}
	return &persistence{d: diskv.New(diskv.Options{
		BasePath: basePath,
		// Writes go to a temp file first and are renamed into place so a
		// reader never sees half a collection.
		TempDir: filepath.Join(basePath, tempDirName),
		// No cache: other processes (CLI, MCP) write the same slot.
		CacheSizeMax: 0,
	}), basePath: basePath, key: key}, nil
}

const tempDirName = ".tmp"

type persistence struct {
	d        *diskv.Diskv
	basePath string
	key      string
}

func (p *persistence) ReadAll(ctx context.Context) ([]task.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	val, err := p.d.Read(p.key)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []task.Task{}, nil
		}
		return nil, fmt.Errorf("store: read %s: %w", p.key, err)
	}
	return decode(val)
}

func (p *persistence) WriteAll(ctx context.Context, tasks []task.Task) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := encode(tasks)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Join(p.basePath, tempDirName), 0o755); err != nil {
		return fmt.Errorf("store: ensure temp dir: %w", err)
	}
	if err := p.d.Write(p.key, data); err != nil {
		return fmt.Errorf("store: write %s: %w", p.key, err)
	}
	return nil
}

func encode(tasks []task.Task) ([]byte, error) {
	if tasks == nil {
		tasks = []task.Task{}
	}
	return json.Marshal(tasks)
}

func decode(val []byte) ([]task.Task, error) {
	if len(val) == 0 {
		return []task.Task{}, nil
	}
	var tasks []task.Task
	if err := json.Unmarshal(val, &tasks); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if tasks == nil {
		// "null" decodes to a nil slice.
		tasks = []task.Task{}
	}
	return tasks, nil
}
