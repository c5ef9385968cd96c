// Package task defines the task entity persisted by the task list.
package task

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DefaultEmoji marks tasks created without an explicit emoji.
const DefaultEmoji = "✏️"

// Task is a single to-do entry.
type Task struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Emoji       string `json:"emoji"`
	Completed   bool   `json:"completed"`
}

// New builds an open task. A blank emoji falls back to DefaultEmoji.
func New(id, title, description, emoji string) Task {
	return Task{
		ID:          id,
		Title:       title,
		Description: description,
		Emoji:       EmojiOrDefault(emoji),
	}
}

// EmojiOrDefault trims emoji and returns DefaultEmoji when nothing is left.
func EmojiOrDefault(emoji string) string {
	if e := strings.TrimSpace(emoji); e != "" {
		return e
	}
	return DefaultEmoji
}

// NewID derives an id from the creation time in milliseconds. When the
// candidate is already taken the next free millisecond is used.
func NewID(now time.Time, taken func(id string) bool) string {
	ms := now.UnixMilli()
	for {
		id := strconv.FormatInt(ms, 10)
		if taken == nil || !taken(id) {
			return id
		}
		ms++
	}
}

// Toggled returns a copy with the completion flag flipped.
func (t Task) Toggled() Task {
	t.Completed = !t.Completed
	return t
}

// Created reports the creation time encoded in the id, if it is one.
func (t Task) Created() (time.Time, bool) {
	ms, err := strconv.ParseInt(t.ID, 10, 64)
	if err != nil || ms <= 0 {
		return time.Time{}, false
	}
	return time.UnixMilli(ms), true
}

func (t Task) String() string {
	check := "[ ]"
	if t.Completed {
		check = "[x]"
	}
	if t.Description == "" {
		return fmt.Sprintf("%s %s %s", check, t.Emoji, t.Title)
	}
	return fmt.Sprintf("%s %s %s - %s", check, t.Emoji, t.Title, t.Description)
}

// Clone copies a collection so callers cannot alias internal state.
func Clone(tasks []Task) []Task {
	if tasks == nil {
		return []Task{}
	}
	out := make([]Task, len(tasks))
	copy(out, tasks)
	return out
}

// IndexOf returns the position of id in tasks, or -1.
func IndexOf(tasks []Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
