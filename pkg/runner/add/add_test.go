package add

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

func TestAddPrintsList(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	mem := store.NewMemory()
	l := tasklist.New(mem)

	n := Add{Title: "Buy milk", Description: "2L", Tasks: l, Out: &buf}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("add: %v", err)
	}
	if mem.Writes != 1 {
		t.Fatalf("expected one write, got %d", mem.Writes)
	}
	out := buf.String()
	if !strings.Contains(out, "Added "+task.DefaultEmoji+" Buy milk") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "Tasks - 1 task") {
		t.Fatalf("expected list after add:\n%s", out)
	}
}

func TestAddRejectsBlankTitle(t *testing.T) {
	var buf bytes.Buffer
	l := tasklist.New(store.NewMemory())
	n := Add{Title: "  ", Tasks: l, Out: &buf}
	if err := n.Do(context.Background()); !errors.Is(err, tasklist.ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("nothing should print on a rejected add, got %q", buf.String())
	}
}
