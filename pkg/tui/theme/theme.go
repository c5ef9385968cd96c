package theme

import (
	"image/color"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/lucasb-eyer/go-colorful"

	"tableflip.dev/tasks/pkg/calendar"
)

// Palette colors shared by the screens.
const (
	Paper        = "#F6F3E4"
	Ink          = "#333333"
	MutedInk     = "#666666"
	DayInk       = "#2d4150"
	DisabledInk  = "#d9e1e8"
	TodayInk     = "#00adf5"
	TodayDot     = "#ff0000"
	SelectedDot  = "#0000ff"
	CheckedGreen = "#28a745"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Header   lipgloss.Style
	Tabs     TabTheme
	Tasks    TaskTheme
	Calendar CalendarTheme
	Footer   FooterTheme
}

// TabTheme styles the navigation bar.
type TabTheme struct {
	Bar      lipgloss.Style
	Active   lipgloss.Style
	Inactive lipgloss.Style
}

// TaskTheme styles task rows and the add form.
type TaskTheme struct {
	Emoji          lipgloss.Style
	Title          lipgloss.Style
	CompletedTitle lipgloss.Style
	Description    lipgloss.Style
	Check          lipgloss.Style
	CheckDone      lipgloss.Style
	Delete         lipgloss.Style
	Form           lipgloss.Style
	Label          lipgloss.Style
	LabelFocused   lipgloss.Style
	Empty          lipgloss.Style
}

// CalendarTheme styles the month grid.
type CalendarTheme struct {
	Month    lipgloss.Style
	Weekdays lipgloss.Style
	Day      lipgloss.Style
	Padding  lipgloss.Style
	Today    lipgloss.Style
	Selected lipgloss.Style
	Cursor   lipgloss.Style
	Dots     map[calendar.Dot]lipgloss.Style
	Footer   lipgloss.Style
}

// FooterTheme groups styles used by the bottom status line.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// Fade blends fg toward bg by amount (0 keeps fg, 1 yields bg).
func Fade(fg, bg string, amount float64) color.Color {
	f, err := colorful.Hex(fg)
	if err != nil {
		return lipgloss.Color(fg)
	}
	b, err := colorful.Hex(bg)
	if err != nil {
		return f
	}
	return f.BlendLab(b, amount).Clamped()
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	ink := lipgloss.Color(Ink)
	faded := Fade(Ink, Paper, 0.55)

	return Theme{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(ink).
			Background(lipgloss.Color(Paper)).
			Padding(0, 1),
		Tabs: TabTheme{
			Bar: lipgloss.NewStyle().
				Border(lipgloss.NormalBorder(), true, false, false, false).
				BorderForeground(faded),
			Active: lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#000000")).
				Background(lipgloss.Color(Paper)).
				Padding(0, 2),
			Inactive: lipgloss.NewStyle().
				Foreground(faded).
				Padding(0, 2),
		},
		Tasks: TaskTheme{
			Emoji:          lipgloss.NewStyle().Width(4),
			Title:          lipgloss.NewStyle().Foreground(ink),
			CompletedTitle: lipgloss.NewStyle().Strikethrough(true).Foreground(faded),
			Description:    lipgloss.NewStyle().Foreground(lipgloss.Color(MutedInk)),
			Check:          lipgloss.NewStyle().Foreground(faded),
			CheckDone:      lipgloss.NewStyle().Foreground(lipgloss.Color(CheckedGreen)),
			Delete:         lipgloss.NewStyle().Foreground(lipgloss.Color("#cc0000")),
			Form: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(faded).
				Padding(0, 1),
			Label:        lipgloss.NewStyle().Foreground(faded),
			LabelFocused: lipgloss.NewStyle().Foreground(ink).Bold(true),
			Empty:        lipgloss.NewStyle().Italic(true).Foreground(faded),
		},
		Calendar: CalendarTheme{
			Month:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#000000")),
			Weekdays: lipgloss.NewStyle().Foreground(lipgloss.Color(MutedInk)).Bold(true),
			Day:      lipgloss.NewStyle().Foreground(lipgloss.Color(DayInk)),
			Padding:  lipgloss.NewStyle().Foreground(lipgloss.Color(DisabledInk)),
			Today:    lipgloss.NewStyle().Foreground(lipgloss.Color(TodayInk)).Underline(true),
			Selected: lipgloss.NewStyle().
				Background(ink).
				Foreground(lipgloss.Color("#ffffff")).
				Bold(true),
			Cursor: lipgloss.NewStyle().Reverse(true),
			Dots: map[calendar.Dot]lipgloss.Style{
				calendar.DotToday:    lipgloss.NewStyle().Foreground(lipgloss.Color(TodayDot)),
				calendar.DotSelected: lipgloss.NewStyle().Foreground(lipgloss.Color(SelectedDot)),
			},
			Footer: lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				Padding(0, 1).
				Foreground(ink),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("#cc0000")),
		},
	}
}
