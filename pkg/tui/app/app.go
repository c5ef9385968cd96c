// Package app hosts the Bubble Tea program for the tasks TUI: a two tab shell
// around the task list and calendar screens.
package app

import (
	"context"
	"log/slog"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/tasks/pkg/calendar"
	"tableflip.dev/tasks/pkg/logging"
	"tableflip.dev/tasks/pkg/store"
	"tableflip.dev/tasks/pkg/tasklist"
	calview "tableflip.dev/tasks/pkg/tui/components/calendar"
	tasksview "tableflip.dev/tasks/pkg/tui/components/tasks"
	"tableflip.dev/tasks/pkg/tui/theme"
)

type tab int

const (
	tabTasks tab = iota
	tabCalendar
	tabCount
)

const shellHelp = "tab switch • q quit"

// Model is the navigation shell. Both screens stay alive for the life of the
// program, so switching tabs never resets either one.
type Model struct {
	ctx         context.Context
	tasks       *tasklist.List
	persistence store.Persistence
	logger      *slog.Logger
	theme       theme.Theme

	active   tab
	taskView tasksview.Model
	calView  calview.Model

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc

	termWidth  int
	termHeight int
}

// Option configures the shell.
type Option func(*Model)

// WithLogger sets the logger for UI events.
func WithLogger(l *slog.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithPicker supplies the calendar state, mainly so tests can pin today.
func WithPicker(p *calendar.Picker) Option {
	return func(m *Model) {
		if p != nil {
			m.calView = calview.New(p)
		}
	}
}

// New builds the shell over a loaded task list. A nil persistence disables
// reloading on external store changes.
func New(ctx context.Context, l *tasklist.List, p store.Persistence, opts ...Option) *Model {
	if ctx == nil {
		ctx = context.Background()
	}
	m := &Model{
		ctx:         ctx,
		tasks:       l,
		persistence: p,
		logger:      logging.Discard(),
		theme:       theme.Default(),
		active:      tabTasks,
		taskView:    tasksview.New(ctx, l),
		calView:     calview.New(nil),
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

type watchEventMsg struct {
	event store.Event
}

type watchStoppedMsg struct{}

func (m *Model) Init() tea.Cmd {
	return startWatchCmd(m.ctx, m.persistence)
}

func startWatchCmd(parent context.Context, p store.Persistence) tea.Cmd {
	if p == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := p.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

func (m *Model) waitForWatch() tea.Cmd {
	if m.watchCh == nil {
		return nil
	}
	ch := m.watchCh
	return func() tea.Msg {
		if ev, ok := <-ch; ok {
			return watchEventMsg{event: ev}
		}
		return watchStoppedMsg{}
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
		m.watchCancel = nil
	}
	m.watchCh = nil
}

// handleWatchEvent reloads the list inside the update loop so the screen never
// races a concurrent read.
func (m *Model) handleWatchEvent(ev store.Event) {
	m.logger.Debug("store changed", logging.Operation("watch"), slog.String("event", ev.Type.String()))
	err := m.tasks.Reload(m.ctx)
	m.taskView, _ = m.taskView.Update(tasksview.ChangedMsg{Err: err})
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
		return m, nil
	case watchStartedMsg:
		if msg.err != nil {
			m.logger.Error("failed to watch store", logging.Operation("watch"), logging.Err(msg.err))
			return m, nil
		}
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		return m, m.waitForWatch()
	case watchEventMsg:
		if m.tasks != nil {
			m.handleWatchEvent(msg.event)
		}
		return m, m.waitForWatch()
	case watchStoppedMsg:
		m.stopWatch()
		return m, nil
	case calview.DateSelectedMsg:
		m.logger.Info("selected day", logging.Operation("select_date"), slog.String("date", msg.Date.String()))
		return m, nil
	case tea.KeyPressMsg:
		if quit, handled := m.handleShellKey(msg); handled {
			if quit {
				m.stopWatch()
				return m, tea.Quit
			}
			return m, nil
		}
		return m, m.updateActive(msg)
	}

	// Anything else (cursor blinks, screen commands) goes to both screens.
	var cmd tea.Cmd
	m.taskView, cmd = m.taskView.Update(msg)
	cmds = append(cmds, cmd)
	m.calView, cmd = m.calView.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

// handleShellKey processes tab switching and quitting. Keys typed into the
// task form only reach the shell for ctrl+c.
func (m *Model) handleShellKey(msg tea.KeyPressMsg) (quit, handled bool) {
	k := msg.String()
	if k == "ctrl+c" {
		return true, true
	}
	if m.active == tabTasks && m.taskView.InputActive() {
		return false, false
	}
	switch k {
	case "q":
		return true, true
	case "tab":
		m.switchTo((m.active + 1) % tabCount)
	case "shift+tab":
		m.switchTo((m.active + tabCount - 1) % tabCount)
	case "1":
		m.switchTo(tabTasks)
	case "2":
		m.switchTo(tabCalendar)
	default:
		return false, false
	}
	return false, true
}

func (m *Model) switchTo(t tab) {
	if t == m.active {
		return
	}
	m.active = t
	m.logger.Debug("switched tab", logging.Operation("navigate"), slog.String("tab", m.tabTitle(t)))
}

func (m *Model) updateActive(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.active {
	case tabCalendar:
		m.calView, cmd = m.calView.Update(msg)
	default:
		m.taskView, cmd = m.taskView.Update(msg)
	}
	return cmd
}

func (m *Model) tabTitle(t tab) string {
	if t == tabCalendar {
		return m.calView.Title()
	}
	return m.taskView.Title()
}

func (m *Model) tabIcon(t tab) string {
	if t == tabCalendar {
		return m.calView.Icon()
	}
	return m.taskView.Icon()
}

func (m *Model) helpLine() string {
	screen := m.taskView.Help()
	if m.active == tabCalendar {
		screen = m.calView.Help()
	}
	return screen + " • " + shellHelp
}

// applySizes hands each screen the space left between the header, tab bar
// and footer.
func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	height := m.termHeight - lipgloss.Height(m.headerView()) - lipgloss.Height(m.tabBarView()) - 1
	if height < 5 {
		height = 5
	}
	size := tea.WindowSizeMsg{Width: m.termWidth, Height: height}
	m.taskView, _ = m.taskView.Update(size)
	m.calView, _ = m.calView.Update(size)
}

func (m *Model) headerView() string {
	style := m.theme.Header
	if m.termWidth > 0 {
		style = style.Width(m.termWidth)
	}
	return style.Render(m.tabIcon(m.active) + " " + m.tabTitle(m.active))
}

func (m *Model) tabBarView() string {
	labels := make([]string, 0, tabCount)
	for t := tab(0); t < tabCount; t++ {
		style := m.theme.Tabs.Inactive
		if t == m.active {
			style = m.theme.Tabs.Active
		}
		labels = append(labels, style.Render(m.tabIcon(t)+" "+m.tabTitle(t)))
	}
	bar := m.theme.Tabs.Bar
	if m.termWidth > 0 {
		bar = bar.Width(m.termWidth)
	}
	return bar.Render(lipgloss.JoinHorizontal(lipgloss.Top, labels...))
}

func (m *Model) View() string {
	body := m.taskView.View()
	if m.active == tabCalendar {
		body = m.calView.View()
	}
	footer := m.theme.Footer.Help.Render(m.helpLine())

	if m.termHeight > 0 {
		used := lipgloss.Height(m.headerView()) + lipgloss.Height(m.tabBarView()) + 1
		if gap := m.termHeight - used - lipgloss.Height(body); gap > 0 {
			body += strings.Repeat("\n", gap)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.headerView(), body, m.tabBarView(), footer)
}

// Run starts the Bubble Tea program over l and blocks until it exits.
func Run(ctx context.Context, l *tasklist.List, p store.Persistence, opts ...Option) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	m := New(ctx, l, p, opts...)
	prog := tea.NewProgram(m, tea.WithAltScreen())
	_, err := prog.Run()
	m.stopWatch()
	return err
}
