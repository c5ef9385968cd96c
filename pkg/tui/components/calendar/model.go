package calendar

import (
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	datepicker "tableflip.dev/tasks/pkg/calendar"
)

// DateSelectedMsg reports a day chosen on the calendar screen.
type DateSelectedMsg struct {
	Date datepicker.Date
}

const helpText = "←/→/↑/↓ move • enter select • n/p month • t today"

// Model is the calendar screen. The picker is shared between copies of the
// model, so switching tabs keeps the selection.
type Model struct {
	picker *datepicker.Picker
	opts   Options

	width  int
	height int
}

// New creates a calendar screen over p. A nil picker starts on today's month.
func New(p *datepicker.Picker) Model {
	if p == nil {
		p = datepicker.NewPicker(nil)
	}
	return Model{picker: p, opts: DefaultOptions()}
}

// Picker exposes the underlying date picker.
func (m Model) Picker() *datepicker.Picker { return m.picker }

// Title is the tab label.
func (m Model) Title() string { return "Calendar" }

// Icon is the tab glyph.
func (m Model) Icon() string { return "🗓️" }

// Help returns the key summary shown in the footer.
func (m Model) Help() string { return helpText }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tea.KeyPressMsg:
		switch msg.String() {
		case "left", "h":
			m.picker.MoveCursor(-1)
		case "right", "l":
			m.picker.MoveCursor(1)
		case "up", "k":
			m.picker.MoveCursor(-7)
		case "down", "j":
			m.picker.MoveCursor(7)
		case "n", "pgdown", "]":
			m.picker.NextMonth()
		case "p", "pgup", "[":
			m.picker.PrevMonth()
		case "t":
			m.picker.GoToday()
		case "enter", "space":
			d := m.picker.SelectCursor()
			return m, func() tea.Msg { return DateSelectedMsg{Date: d} }
		}
	}
	return m, nil
}

func (m Model) View() string {
	grid := Render(m.picker, m.opts)
	if line := SelectedLine(m.picker, m.opts); line != "" {
		grid = lipgloss.JoinVertical(lipgloss.Center, grid, "", line)
	}
	if m.width <= 0 {
		return grid
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, grid)
}
