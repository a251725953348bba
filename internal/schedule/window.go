package schedule

import "time"

// Window is one recurring weekly open period.
type Window struct {
	Weekday  Weekday
	Start    TimeOfDay
	End      TimeOfDay
	Timezone string

	// Closed is stored alongside the window but the evaluator never reads it.
	Closed bool
}

// TimeRange is the closed interval [Start, End].
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t lies in the range, both ends included.
func (tr TimeRange) Contains(t time.Time) bool {
	return !t.Before(tr.Start) && !t.After(tr.End)
}

// Project places the window on the calendar date of at, reading its
// time-of-day values in the window's own zone.
func (w Window) Project(at time.Time) (TimeRange, error) {
	loc, err := LoadLocation(w.Timezone)
	if err != nil {
		return TimeRange{}, err
	}
	year, month, day := at.Date()
	return TimeRange{
		Start: w.Start.On(year, month, day, loc),
		End:   w.End.On(year, month, day, loc),
	}, nil
}

// Select returns the windows scheduled for any of days, in stored order.
func Select(windows []Window, days ...Weekday) []Window {
	var out []Window
	for _, w := range windows {
		for _, d := range days {
			if w.Weekday == d {
				out = append(out, w)
				break
			}
		}
	}
	return out
}

func first(windows []Window, days []Weekday) (Window, bool) {
	selected := Select(windows, days...)
	if len(selected) == 0 {
		return Window{}, false
	}
	return selected[0], true
}
