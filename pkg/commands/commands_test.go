package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"sort"
	"strings"
	"testing"

	"github.com/fatih/color"

	"tableflip.dev/tasks/pkg/store"
	"tableflip.dev/tasks/pkg/task"
	"tableflip.dev/tasks/pkg/tasklist"
)

func TestSubcommandTree(t *testing.T) {
	root := New()
	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	sort.Strings(names)
	want := []string{"add", "calendar", "completion", "delete", "list", "mcp", "toggle", "ui", "version"}
	for _, w := range want {
		if i := sort.SearchStrings(names, w); i >= len(names) || names[i] != w {
			t.Fatalf("missing subcommand %q in %v", w, names)
		}
	}
}

func TestAliases(t *testing.T) {
	root := New()
	for alias, name := range map[string]string{
		"ls": "list", "get": "list", "done": "toggle", "complete": "toggle", "rm": "delete", "remove": "delete", "cal": "calendar",
	} {
		c, _, err := root.Find([]string{alias})
		if err != nil || c.Name() != name {
			t.Fatalf("alias %q should resolve to %q, got %v (%v)", alias, name, c, err)
		}
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	var buf bytes.Buffer
	root := New()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func TestAddListToggleDeleteAgainstStore(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TASKS_PATH", dir)
	t.Setenv("TASKS_CONFIG_PATH", dir)

	if _, err := execute(t, "add", "buy", "milk", "-d", "2L"); err != nil {
		t.Fatalf("add: %v", err)
	}
	out, err := execute(t, "list", "--json")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var got []task.Task
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(got) != 1 || got[0].Title != "buy milk" || got[0].Description != "2L" || got[0].Emoji != task.DefaultEmoji {
		t.Fatalf("unexpected tasks %+v", got)
	}

	id := got[0].ID
	if out, err := execute(t, "done", id); err != nil || !strings.HasPrefix(out, "Completed") {
		t.Fatalf("toggle: %q (%v)", out, err)
	}
	if out, err := execute(t, "rm", id); err != nil || !strings.Contains(out, "Deleted") {
		t.Fatalf("delete: %q (%v)", out, err)
	}
	if _, err := execute(t, "rm", id); err == nil {
		t.Fatalf("deleting a missing id should fail")
	}
}

func TestAddKeepsTitleAsGiven(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TASKS_PATH", dir)
	t.Setenv("TASKS_CONFIG_PATH", dir)

	if _, err := execute(t, "add", " water  plants "); err != nil {
		t.Fatalf("add: %v", err)
	}
	out, err := execute(t, "list", "--json")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var got []task.Task
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if len(got) != 1 || got[0].Title != " water  plants " {
		t.Fatalf("unexpected tasks %+v", got)
	}
}

func TestAddRequiresTitle(t *testing.T) {
	t.Setenv("TASKS_PATH", t.TempDir())
	if _, err := execute(t, "add"); err == nil {
		t.Fatalf("expected error without a title")
	}
}

func TestCalendarCommand(t *testing.T) {
	out, err := execute(t, "calendar", "--month", "2026-12", "--select", "2026-12-24")
	if err != nil {
		t.Fatalf("calendar: %v", err)
	}
	if !strings.Contains(out, "December 2026") || !strings.Contains(out, "24+") || !strings.Contains(out, "Selected Date: 2026-12-24") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if _, err := execute(t, "calendar", "--month", "December"); err == nil {
		t.Fatalf("expected a parse error for a bad month")
	}
}

func TestCompletionsForPrefix(t *testing.T) {
	l := tasklist.New(store.NewMemory(task.New("1700", "Buy milk", "", ""), task.New("1800", "Call mom", "", "📞")))
	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	got := completionsFor(l, "18")
	if len(got) != 1 || got[0] != "1800\t📞 Call mom" {
		t.Fatalf("unexpected completions %q", got)
	}
}
