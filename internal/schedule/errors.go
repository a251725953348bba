package schedule

import "errors"

var (
	ErrInvalidTimezone  = errors.New("invalid timezone")
	ErrInvalidWeekday   = errors.New("invalid weekday")
	ErrInvalidTimeOfDay = errors.New("invalid time of day")
)
