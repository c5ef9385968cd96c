package list

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/tasks/pkg/store"
	"tableflip.dev/tasks/pkg/task"
	"tableflip.dev/tasks/pkg/tasklist"
)

func loaded(t *testing.T, seed ...task.Task) *tasklist.List {
	t.Helper()
	l := tasklist.New(store.NewMemory(seed...))
	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	return l
}

func TestListPretty(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	l := loaded(t, task.New("1", "Buy milk", "", ""), task.New("2", "Call mom", "", "📞").Toggled())

	n := List{Tasks: l, Out: &buf}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Tasks - 2 tasks") || !strings.Contains(out, "Call mom") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestListJSONOpenOnly(t *testing.T) {
	var buf bytes.Buffer
	l := loaded(t, task.New("1", "Buy milk", "", ""), task.New("2", "Call mom", "", "📞").Toggled())

	n := List{Tasks: l, Out: &buf, JSON: true, OpenOnly: true}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	var got []task.Task
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("expected only the open task, got %+v", got)
	}
	if l.Len() != 2 {
		t.Fatalf("filtering must not touch the list")
	}
}

func TestListEmptyJSONIsArray(t *testing.T) {
	var buf bytes.Buffer
	n := List{Tasks: loaded(t), Out: &buf, JSON: true}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	if got := strings.TrimSpace(buf.String()); got != "[]" {
		t.Fatalf("expected [], got %q", got)
	}
}
