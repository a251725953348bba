package schedule

import (
	"fmt"
	"strings"
	"time"
)

// Weekday is one of the seven days a window can be scheduled for.
// Values match time.Weekday so conversions are free.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [...]string{
	Sunday:    "Sunday",
	Monday:    "Monday",
	Tuesday:   "Tuesday",
	Wednesday: "Wednesday",
	Thursday:  "Thursday",
	Friday:    "Friday",
	Saturday:  "Saturday",
}

// WorkingDays and WeekendDays are the two summary categories.
var (
	WorkingDays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday}
	WeekendDays = []Weekday{Sunday, Saturday}
)

// ParseWeekday accepts the canonical English day name, ignoring case and
// surrounding whitespace.
func ParseWeekday(s string) (Weekday, error) {
	name := strings.TrimSpace(s)
	for i, n := range weekdayNames {
		if strings.EqualFold(n, name) {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, s)
}

// WeekdayOf returns the weekday of t in t's own location.
func WeekdayOf(t time.Time) Weekday {
	return Weekday(t.Weekday())
}

func (d Weekday) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

func (d Weekday) Valid() bool {
	return d >= Sunday && d <= Saturday
}

func (d Weekday) IsWeekend() bool {
	return d == Saturday || d == Sunday
}

func (d Weekday) IsWorkingDay() bool {
	return d >= Monday && d <= Friday
}
