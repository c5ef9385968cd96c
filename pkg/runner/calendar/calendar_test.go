package calendar

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/tasks/pkg/calendar"
)

func TestCalendarShowsRequestedMonthAndSelection(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	n := Calendar{
		Month:  calendar.Date{Year: 2027, Month: time.February, Day: 1},
		Select: calendar.Date{Year: 2026, Month: time.October, Day: 20},
		Today:  func() calendar.Date { return calendar.Date{Year: 2026, Month: time.October, Day: 15} },
		Out:    &buf,
	}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("calendar: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "February 2027") {
		t.Fatalf("expected requested month:\n%s", out)
	}
	if !strings.Contains(out, "Selected Date: 2026-10-20") {
		t.Fatalf("expected selection footer:\n%s", out)
	}
}

func TestCalendarDefaultsToToday(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	n := Calendar{
		Today: func() calendar.Date { return calendar.Date{Year: 2026, Month: time.October, Day: 15} },
		Out:   &buf,
	}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("calendar: %v", err)
	}
	if out := buf.String(); !strings.Contains(out, "October 2026") || strings.Contains(out, "Selected Date") {
		t.Fatalf("unexpected output:\n%s", out)
	}
	if out := buf.String(); !strings.Contains(out, "15*") {
		t.Fatalf("today should be marked without color:\n%s", out)
	}
}
