package tuitest

import "testing"

func TestPlain(t *testing.T) {
	in := "\x1b[1;31mTasks\x1b[0m \x1b[4m15\x1b[0m"
	if got := Plain(in); got != "Tasks 15" {
		t.Fatalf("Plain(%q) = %q", in, got)
	}
}

func TestKey(t *testing.T) {
	k := Key('q')
	if k.String() != "q" {
		t.Fatalf("Key('q') = %q", k.String())
	}
}
