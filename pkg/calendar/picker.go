package calendar

import "time"

// Dot is the marker color a day is drawn with.
type Dot int

const (
	DotNone Dot = iota
	DotToday
	DotSelected
)

// Mark describes which markers apply to a day. Both may be set.
type Mark struct {
	Today    bool
	Selected bool
}

// Dot resolves overlapping markers: the selected marker wins over today's.
func (m Mark) Dot() Dot {
	switch {
	case m.Selected:
		return DotSelected
	case m.Today:
		return DotToday
	default:
		return DotNone
	}
}

// Cell is one slot of the month grid. Padding cells outside the month have a
// zero Date.
type Cell struct {
	Date   Date
	Mark   Mark
	Cursor bool
}

// InMonth reports whether the cell holds a day of the visible month.
func (c Cell) InMonth() bool {
	return !c.Date.IsZero()
}

// Picker is the calendar screen's state. The zero value is not usable; call
// NewPicker.
type Picker struct {
	today       func() Date
	month       Date
	cursor      Date
	selected    Date
	hasSelected bool
}

// NewPicker returns a picker showing today's month with nothing selected. A
// nil today uses the local clock.
func NewPicker(today func() Date) *Picker {
	if today == nil {
		today = func() Date { return DateOf(time.Now()) }
	}
	p := &Picker{today: today}
	p.Reset()
	return p
}

// Reset drops the selection and returns to today, as when the screen is
// rebuilt.
func (p *Picker) Reset() {
	p.hasSelected = false
	p.selected = Date{}
	p.GoToday()
}

// Today returns the current day.
func (p *Picker) Today() Date {
	return p.today()
}

// SelectDate marks d as the selected day, replacing any previous selection,
// and brings its month into view.
func (p *Picker) SelectDate(d Date) {
	p.selected = d
	p.hasSelected = true
	p.cursor = d
	p.month = d.FirstOfMonth()
}

// SelectCursor selects the day under the cursor.
func (p *Picker) SelectCursor() Date {
	p.SelectDate(p.cursor)
	return p.cursor
}

// Selected returns the selected day, if any.
func (p *Picker) Selected() (Date, bool) {
	return p.selected, p.hasSelected
}

// Marks reports the markers for d. Today is always marked.
func (p *Picker) Marks(d Date) Mark {
	return Mark{
		Today:    d == p.today(),
		Selected: p.hasSelected && d == p.selected,
	}
}

// Month returns the first day of the visible month.
func (p *Picker) Month() Date {
	return p.month
}

// Cursor returns the highlighted day.
func (p *Picker) Cursor() Date {
	return p.cursor
}

// MoveCursor shifts the cursor by days; the visible month follows it.
func (p *Picker) MoveCursor(days int) {
	p.cursor = p.cursor.AddDays(days)
	p.month = p.cursor.FirstOfMonth()
}

// NextMonth shows the following month.
func (p *Picker) NextMonth() {
	p.shiftMonth(1)
}

// PrevMonth shows the previous month.
func (p *Picker) PrevMonth() {
	p.shiftMonth(-1)
}

func (p *Picker) shiftMonth(n int) {
	p.cursor = p.cursor.AddMonths(n)
	p.month = p.cursor.FirstOfMonth()
}

// ShowMonth moves the cursor to d and brings its month into view without
// touching the selection.
func (p *Picker) ShowMonth(d Date) {
	p.cursor = d
	p.month = d.FirstOfMonth()
}

// GoToday moves the cursor and the view to today.
func (p *Picker) GoToday() {
	p.cursor = p.today()
	p.month = p.cursor.FirstOfMonth()
}

// Weeks lays out the visible month as Sunday-first rows of seven cells.
func (p *Picker) Weeks() [][]Cell {
	return p.weeksFor(p.month)
}

func (p *Picker) weeksFor(month Date) [][]Cell {
	first := month.FirstOfMonth()
	offset := int(first.Weekday())
	days := DaysIn(first)
	rows := (offset + days + 6) / 7

	weeks := make([][]Cell, 0, rows)
	for row := 0; row < rows; row++ {
		week := make([]Cell, 7)
		for col := 0; col < 7; col++ {
			day := row*7 + col - offset + 1
			if day < 1 || day > days {
				continue
			}
			d := Date{Year: first.Year, Month: first.Month, Day: day}
			week[col] = Cell{
				Date:   d,
				Mark:   p.Marks(d),
				Cursor: d == p.cursor,
			}
		}
		weeks = append(weeks, week)
	}
	return weeks
}
