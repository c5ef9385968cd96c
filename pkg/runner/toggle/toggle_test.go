package toggle

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/tasks/pkg/store"
	"tableflip.dev/tasks/pkg/task"
	"tableflip.dev/tasks/pkg/tasklist"
)

func TestToggleFlipsAndReports(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	l := tasklist.New(store.NewMemory(task.New("1", "Buy milk", "", "")))
	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}

	n := Toggle{ID: "1", Tasks: l, Out: &buf}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "Completed") {
		t.Fatalf("unexpected output %q", buf.String())
	}

	buf.Reset()
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "Reopened") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestToggleUnknownID(t *testing.T) {
	n := Toggle{ID: "nope", Tasks: tasklist.New(store.NewMemory())}
	if err := n.Do(context.Background()); !errors.Is(err, tasklist.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
