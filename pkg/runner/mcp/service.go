// Package mcp provides the Model Context Protocol server integration for tasks.
package mcp

import (
	"context"
	"errors"
	"strings"
	"time"

	"tableflip.dev/tasks/pkg/task"
	"tableflip.dev/tasks/pkg/tasklist"
)

// Service coordinates task list operations shared by the MCP tools and
// resources.
type Service struct {
	Tasks *tasklist.List
}

// TaskDTO is a transport-friendly projection of a task.
type TaskDTO struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Emoji       string `json:"emoji"`
	Completed   bool   `json:"completed"`
	CreatedISO  string `json:"created,omitempty"`
}

// Summary aggregates the collection.
type Summary struct {
	Count     int       `json:"count"`
	OpenCount int       `json:"openCount"`
	Tasks     []TaskDTO `json:"tasks"`
}

// NewService builds a service over l.
func NewService(l *tasklist.List) *Service {
	return &Service{Tasks: l}
}

func toDTO(t task.Task) TaskDTO {
	dto := TaskDTO{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Emoji:       t.Emoji,
		Completed:   t.Completed,
	}
	if created, ok := t.Created(); ok {
		dto.CreatedISO = created.UTC().Format(time.RFC3339)
	}
	return dto
}

func (s *Service) list() (*tasklist.List, error) {
	if s == nil || s.Tasks == nil {
		return nil, errors.New("task list is not configured")
	}
	return s.Tasks, nil
}

// ListTasks returns every task in collection order, optionally hiding
// completed ones.
func (s *Service) ListTasks(_ context.Context, openOnly bool) (Summary, error) {
	l, err := s.list()
	if err != nil {
		return Summary{}, err
	}
	all := l.Tasks()
	out := Summary{Tasks: make([]TaskDTO, 0, len(all))}
	for _, t := range all {
		if !t.Completed {
			out.OpenCount++
		}
		if openOnly && t.Completed {
			continue
		}
		out.Tasks = append(out.Tasks, toDTO(t))
	}
	out.Count = len(out.Tasks)
	return out, nil
}

// AddTask creates an open task.
func (s *Service) AddTask(ctx context.Context, title, description, emoji string) (TaskDTO, error) {
	l, err := s.list()
	if err != nil {
		return TaskDTO{}, err
	}
	t, err := l.Add(ctx, title, strings.TrimSpace(description), emoji)
	if err != nil {
		return TaskDTO{}, err
	}
	return toDTO(t), nil
}

// ToggleTask flips the completion flag of a task.
func (s *Service) ToggleTask(ctx context.Context, id string) (TaskDTO, error) {
	l, err := s.list()
	if err != nil {
		return TaskDTO{}, err
	}
	t, err := l.ToggleComplete(ctx, strings.TrimSpace(id))
	if err != nil {
		return TaskDTO{}, err
	}
	return toDTO(t), nil
}

// DeleteTask removes a task and returns what was removed.
func (s *Service) DeleteTask(ctx context.Context, id string) (TaskDTO, error) {
	l, err := s.list()
	if err != nil {
		return TaskDTO{}, err
	}
	t, err := l.Delete(ctx, strings.TrimSpace(id))
	if err != nil {
		return TaskDTO{}, err
	}
	return toDTO(t), nil
}
