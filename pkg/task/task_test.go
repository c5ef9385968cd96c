package task

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewDefaultsEmoji(t *testing.T) {
	tk := New("1", "Buy milk", "", "   ")
	if tk.Emoji != DefaultEmoji {
		t.Fatalf("expected default emoji, got %q", tk.Emoji)
	}
	if tk.Completed {
		t.Fatalf("new task should be open")
	}
}

func TestNewIDSkipsTakenMilliseconds(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	taken := map[string]bool{"1700000000000": true, "1700000000001": true}
	id := NewID(now, func(id string) bool { return taken[id] })
	if id != "1700000000002" {
		t.Fatalf("expected next free millisecond, got %s", id)
	}
}

func TestCreatedFromID(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	tk := New(NewID(now, nil), "x", "", "")
	got, ok := tk.Created()
	if !ok || !got.Equal(now) {
		t.Fatalf("expected %v, got %v (ok=%v)", now, got, ok)
	}
	if _, ok := (Task{ID: "abc"}).Created(); ok {
		t.Fatalf("non-numeric id should not decode")
	}
}

func TestToggledIsInvolution(t *testing.T) {
	tk := New("1", "a", "", "")
	if !tk.Toggled().Completed {
		t.Fatalf("expected toggled task to be completed")
	}
	if tk.Toggled().Toggled() != tk {
		t.Fatalf("double toggle should restore the task")
	}
}

func TestDecodesStoredShape(t *testing.T) {
	raw := `[{"id":"1718000000000","title":"Buy milk","description":"","emoji":"🛒","completed":true}]`
	var got []Task
	if err := json.Unmarshal([]byte(raw), &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := Task{ID: "1718000000000", Title: "Buy milk", Emoji: "🛒", Completed: true}
	if len(got) != 1 || got[0] != want {
		t.Fatalf("unexpected decode: %+v", got)
	}
}

func TestIndexOfAndClone(t *testing.T) {
	tasks := []Task{{ID: "a"}, {ID: "b"}}
	if IndexOf(tasks, "b") != 1 || IndexOf(tasks, "z") != -1 {
		t.Fatalf("IndexOf mismatch")
	}
	cp := Clone(tasks)
	cp[0].Title = "changed"
	if tasks[0].Title != "" {
		t.Fatalf("clone aliases the original")
	}
	if Clone(nil) == nil {
		t.Fatalf("clone of nil should be an empty collection")
	}
}
