package schedule

import (
	"fmt"
	"time"
)

// ClosedText is rendered when a category has no window at all.
const ClosedText = "closed"

// Summary carries all three answers for one reference instant.
type Summary struct {
	Open         bool
	WeekdayHours string
	WeekendHours string
}

// IsOpen reports whether at falls inside the schedule for its weekday.
//
// The weekday is taken from at in at's own location. A day without windows is
// open. Otherwise only the first window stored for that day is checked: a
// second window on the same day is never consulted, even when the first one
// does not match.
func IsOpen(at time.Time, windows []Window) (bool, error) {
	w, ok := first(windows, []Weekday{WeekdayOf(at)})
	if !ok {
		return true, nil
	}
	tr, err := w.Project(at)
	if err != nil {
		return false, err
	}
	return tr.Contains(at.In(tr.Start.Location())), nil
}

// WeekdayHours formats the first Monday-Friday window, or ClosedText.
func WeekdayHours(windows []Window) string {
	return categoryHours(windows, WorkingDays)
}

// WeekendHours formats the first Saturday/Sunday window, or ClosedText.
func WeekendHours(windows []Window) string {
	return categoryHours(windows, WeekendDays)
}

func categoryHours(windows []Window, days []Weekday) string {
	w, ok := first(windows, days)
	if !ok {
		return ClosedText
	}
	return FormatHours(w.Start, w.End)
}

// Evaluate answers IsOpen, WeekdayHours and WeekendHours in one pass.
func Evaluate(at time.Time, windows []Window) (Summary, error) {
	open, err := IsOpen(at, windows)
	if err != nil {
		return Summary{}, err
	}
	return Summary{
		Open:         open,
		WeekdayHours: WeekdayHours(windows),
		WeekendHours: WeekendHours(windows),
	}, nil
}

// FormatHours renders "1PM-4PM". Stored values are used as is, no zone
// conversion.
func FormatHours(start, end TimeOfDay) string {
	return FormatHour(start) + "-" + FormatHour(end)
}

// FormatHour keeps only the hour: 0 -> "12AM", 12 -> "12PM", 13 -> "1PM".
func FormatHour(t TimeOfDay) string {
	suffix := "AM"
	if t.Hour >= 12 {
		suffix = "PM"
	}
	h := t.Hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d%s", h, suffix)
}
