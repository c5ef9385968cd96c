// Package tasks provides the task list screen: a scrollable list of tasks with
// completion and delete controls, and an add form with title, description and
// emoji fields.
package tasks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/list"
	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/tasks/pkg/task"
	"tableflip.dev/tasks/pkg/tasklist"
	"tableflip.dev/tasks/pkg/tui/theme"
)

type mode int

const (
	modeBrowse mode = iota
	modeInput
)

const (
	fieldTitle = iota
	fieldDescription
	fieldEmoji
	fieldCount
)

var fieldLabels = [fieldCount]string{"Title", "Description", "Emoji"}

const (
	browseHelp = "j/k move • space toggle • d delete • a add • v form"
	inputHelp  = "tab next field • enter add • esc done"
	emptyText  = "No tasks yet. Press a to add one."
)

// ChangedMsg asks the screen to re-read the task list, typically after the
// store changed underneath it.
type ChangedMsg struct {
	Err error
}

// taskItem adapts a task to the list widget.
type taskItem struct{ t task.Task }

func (it taskItem) Title() string {
	check := "[ ]"
	if it.t.Completed {
		check = "[x]"
	}
	return fmt.Sprintf("%s %s  %s", check, it.t.Emoji, it.t.Title)
}

func (it taskItem) Description() string {
	if it.t.Description == "" {
		return " "
	}
	return it.t.Description
}

func (it taskItem) FilterValue() string { return it.t.Title }

// Model is the task list screen.
type Model struct {
	tasks *tasklist.List
	ctx   context.Context
	theme theme.Theme

	mode     mode
	showForm bool
	focus    int

	items  list.Model
	inputs [fieldCount]textinput.Model

	status    string
	statusErr bool

	width  int
	height int
}

// New creates the screen over l. Call Refresh or send ChangedMsg after loading.
func New(ctx context.Context, l *tasklist.List) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(0)

	items := list.New([]list.Item{}, delegate, 60, 20)
	items.Title = "Tasks"
	items.SetShowTitle(false)
	items.SetShowHelp(false)
	items.SetShowStatusBar(false)
	items.SetFilteringEnabled(false)

	m := Model{
		tasks:    l,
		ctx:      ctx,
		theme:    theme.Default(),
		mode:     modeBrowse,
		showForm: true,
		items:    items,
	}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = ""
		ti.CharLimit = 256
		m.inputs[i] = ti
	}
	m.inputs[fieldTitle].Placeholder = "Task title"
	m.inputs[fieldDescription].Placeholder = "Task description"
	m.inputs[fieldEmoji].Placeholder = "Emoji"
	m.inputs[fieldEmoji].CharLimit = 16
	m.inputs[fieldEmoji].SetValue(task.DefaultEmoji)
	m.Refresh()
	return m
}

// Title is the tab label.
func (m Model) Title() string { return "Tasks" }

// Icon is the tab glyph.
func (m Model) Icon() string { return "📃" }

// Help returns the key summary for the current mode.
func (m Model) Help() string {
	if m.mode == modeInput {
		return inputHelp
	}
	return browseHelp
}

// InputActive reports whether keys are going to a text field.
func (m Model) InputActive() bool { return m.mode == modeInput }

// Status returns the last status line message.
func (m Model) Status() string { return m.status }

// Refresh rebuilds the rows from the task list, keeping the cursor in range.
func (m *Model) Refresh() {
	if m.tasks == nil {
		return
	}
	current := m.tasks.Tasks()
	rows := make([]list.Item, 0, len(current))
	for _, t := range current {
		rows = append(rows, taskItem{t: t})
	}
	idx := m.items.Index()
	m.items.SetItems(rows)
	switch {
	case len(rows) == 0:
	case idx >= len(rows):
		m.items.Select(len(rows) - 1)
	case idx < 0:
		m.items.Select(0)
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.applySizes()
		return m, nil
	case ChangedMsg:
		m.Refresh()
		if msg.Err != nil {
			m.setError(msg.Err)
		}
		return m, nil
	case tea.KeyPressMsg:
		if m.mode == modeInput {
			return m.updateInput(msg)
		}
		return m.updateBrowse(msg)
	}
	return m, nil
}

func (m Model) updateBrowse(msg tea.KeyPressMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		m.items.CursorDown()
	case "k", "up":
		m.items.CursorUp()
	case "g", "home":
		if len(m.items.Items()) > 0 {
			m.items.Select(0)
		}
	case "G", "end":
		if n := len(m.items.Items()); n > 0 {
			m.items.Select(n - 1)
		}
	case "space", "x", "enter":
		if t, ok := m.current(); ok {
			updated, err := m.tasks.ToggleComplete(m.ctx, t.ID)
			m.Refresh()
			if !m.report(err) {
				if updated.Completed {
					m.setStatus("Completed " + updated.Title)
				} else {
					m.setStatus("Reopened " + updated.Title)
				}
			}
		}
	case "d", "delete":
		if t, ok := m.current(); ok {
			removed, err := m.tasks.Delete(m.ctx, t.ID)
			m.Refresh()
			if !m.report(err) {
				m.setStatus("Deleted " + removed.Title)
			}
		}
	case "a", "o":
		m.showForm = true
		m.applySizes()
		cmd := m.enterInput()
		return m, cmd
	case "v":
		m.showForm = !m.showForm
		m.applySizes()
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyPressMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.leaveInput()
		return m, nil
	case "tab", "down":
		cmd := m.focusField((m.focus + 1) % fieldCount)
		return m, cmd
	case "shift+tab", "up":
		cmd := m.focusField((m.focus + fieldCount - 1) % fieldCount)
		return m, cmd
	case "enter":
		m.submit()
		return m, nil
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// submit adds a task from the form. A blank title is ignored and leaves the
// form untouched. Fields clear once the task is in the list, even when the
// write that followed failed.
func (m *Model) submit() {
	if m.tasks == nil {
		return
	}
	title := m.inputs[fieldTitle].Value()
	desc := strings.TrimSpace(m.inputs[fieldDescription].Value())
	emoji := m.inputs[fieldEmoji].Value()

	added, err := m.tasks.Add(m.ctx, title, desc, emoji)
	if errors.Is(err, tasklist.ErrEmptyTitle) {
		return
	}
	m.resetFields()
	m.Refresh()
	if n := len(m.items.Items()); n > 0 {
		m.items.Select(n - 1)
	}
	if !m.report(err) {
		m.setStatus("Added " + added.Title)
	}
	m.focusField(fieldTitle)
}

func (m *Model) enterInput() tea.Cmd {
	m.mode = modeInput
	return tea.Batch(m.focusField(fieldTitle), textinput.Blink)
}

func (m *Model) leaveInput() {
	m.mode = modeBrowse
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
}

func (m *Model) focusField(i int) tea.Cmd {
	m.focus = i
	var cmd tea.Cmd
	for j := range m.inputs {
		if j == i {
			cmd = m.inputs[j].Focus()
			continue
		}
		m.inputs[j].Blur()
	}
	return cmd
}

func (m *Model) resetFields() {
	m.inputs[fieldTitle].Reset()
	m.inputs[fieldDescription].Reset()
	m.inputs[fieldEmoji].SetValue(task.DefaultEmoji)
}

func (m Model) current() (task.Task, bool) {
	if len(m.items.Items()) == 0 {
		return task.Task{}, false
	}
	it, ok := m.items.SelectedItem().(taskItem)
	if !ok {
		return task.Task{}, false
	}
	return it.t, true
}

// report shows err on the status line and reports whether there was one.
func (m *Model) report(err error) bool {
	if err == nil {
		return false
	}
	m.setError(err)
	return true
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = "ERR: " + err.Error()
	m.statusErr = true
}

func (m *Model) applySizes() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	h := m.height - 1
	if m.showForm {
		h -= lipgloss.Height(m.formView())
	}
	if h < 3 {
		h = 3
	}
	m.items.SetSize(m.width, h)
}

func (m Model) formView() string {
	th := m.theme.Tasks
	lines := make([]string, 0, fieldCount)
	for i := range m.inputs {
		label := th.Label
		if m.mode == modeInput && i == m.focus {
			label = th.LabelFocused
		}
		lines = append(lines, label.Render(fmt.Sprintf("%-12s", fieldLabels[i]))+m.inputs[i].View())
	}
	form := th.Form
	if m.width > 4 {
		form = form.Width(m.width - 2)
	}
	return form.Render(strings.Join(lines, "\n"))
}

func (m Model) View() string {
	var body string
	if len(m.items.Items()) == 0 {
		body = m.theme.Tasks.Empty.Render(emptyText)
	} else {
		body = m.items.View()
	}

	parts := []string{body}
	if m.showForm {
		parts = append(parts, m.formView())
	}
	if m.status != "" {
		style := m.theme.Footer.Status
		if m.statusErr {
			style = m.theme.Footer.Error
		}
		parts = append(parts, style.Render(m.status))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
