package app

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/tasks/pkg/calendar"
	"tableflip.dev/tasks/pkg/store"
	"tableflip.dev/tasks/pkg/task"
	"tableflip.dev/tasks/pkg/tasklist"
	"tableflip.dev/tasks/pkg/tui/tuitest"
)

var today = calendar.Date{Year: 2026, Month: time.October, Day: 15}

func newTestModel(t *testing.T, seed ...task.Task) (*Model, *tasklist.List, *store.Memory) {
	t.Helper()
	mem := store.NewMemory(seed...)
	l := tasklist.New(mem)
	if err := l.Load(context.Background()); err != nil {
		t.Fatalf("load: %v", err)
	}
	picker := calendar.NewPicker(func() calendar.Date { return today })
	m := New(context.Background(), l, mem, WithPicker(picker))
	m.Update(tea.WindowSizeMsg{Width: 90, Height: 32})
	return m, l, mem
}

func send(m *Model, msgs ...tea.Msg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func TestTabsRenderWithIcons(t *testing.T) {
	m, _, _ := newTestModel(t)
	view := tuitest.Plain(m.View())
	for _, want := range []string{"📃 Tasks", "🗓️ Calendar"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected tab %q in view:\n%s", want, view)
		}
	}
	if m.active != tabTasks {
		t.Fatalf("shell should open on the tasks tab")
	}
}

func TestSwitchingTabsKeepsScreenState(t *testing.T) {
	m, l, _ := newTestModel(t, task.New("1", "Buy milk", "", ""))

	// Select a day on the calendar.
	send(m, tuitest.Key('2'), tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.active != tabCalendar {
		t.Fatalf("2 should open the calendar")
	}
	if !strings.Contains(tuitest.Plain(m.View()), "Selected Date: 2026-10-15") {
		t.Fatalf("expected selected date footer:\n%s", tuitest.Plain(m.View()))
	}

	// Toggle a task on the tasks tab, then come back.
	send(m, tea.KeyPressMsg{Code: tea.KeyTab}, tea.KeyPressMsg{Code: tea.KeySpace})
	if m.active != tabTasks {
		t.Fatalf("tab should cycle back to tasks")
	}
	if got, _ := l.Get("1"); !got.Completed {
		t.Fatalf("space on the tasks tab should toggle the task")
	}

	send(m, tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift})
	if m.active != tabCalendar {
		t.Fatalf("shift+tab should cycle to the calendar")
	}
	if d, ok := m.calView.Picker().Selected(); !ok || d != today {
		t.Fatalf("calendar selection lost across tab switch: %s (%v)", d, ok)
	}

	send(m, tuitest.Key('1'))
	if !strings.Contains(tuitest.Plain(m.View()), "[x]") {
		t.Fatalf("tasks tab should still show the completed task")
	}
}

func TestQuitKeys(t *testing.T) {
	m, _, _ := newTestModel(t)
	_, cmd := m.Update(tuitest.Key('q'))
	if cmd == nil {
		t.Fatalf("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit message")
	}
}

func TestFormInputSwallowsShellKeys(t *testing.T) {
	m, l, _ := newTestModel(t)
	send(m, tuitest.Key('a'))
	for _, r := range "q12" {
		m.Update(tuitest.Key(r))
	}
	if m.active != tabTasks {
		t.Fatalf("digits typed in the form must not switch tabs")
	}
	send(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	got := l.Tasks()
	if len(got) != 1 || got[0].Title != "q12" {
		t.Fatalf("expected task q12, got %+v", got)
	}

	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if cmd == nil {
		t.Fatalf("ctrl+c should quit even while typing")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected quit message from ctrl+c")
	}
}

func TestWatchEventReloadsTasks(t *testing.T) {
	m, l, mem := newTestModel(t)

	// Another process writes the slot.
	if err := mem.WriteAll(context.Background(), []task.Task{task.New("9", "From the CLI", "", "")}); err != nil {
		t.Fatalf("write: %v", err)
	}
	ch := make(chan store.Event, 1)
	send(m, watchStartedMsg{ch: ch, cancel: func() {}})
	send(m, watchEventMsg{event: store.Event{Type: store.EventChanged, Key: store.DefaultKey}})

	if l.Len() != 1 {
		t.Fatalf("expected reload to pick up the external write, got %d tasks", l.Len())
	}
	if !strings.Contains(tuitest.Plain(m.View()), "From the CLI") {
		t.Fatalf("tasks screen should show reloaded rows")
	}
}
