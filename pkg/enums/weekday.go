package enums

import "fmt"

// Weekday enumerates the delivery days products can be available on.
type Weekday string

const (
	WeekdayMon Weekday = "Mon"
	WeekdayTue Weekday = "Tue"
	WeekdayWed Weekday = "Wed"
	WeekdayThu Weekday = "Thu"
	WeekdayFri Weekday = "Fri"
)

var validWeekdays = []Weekday{
	WeekdayMon,
	WeekdayTue,
	WeekdayWed,
	WeekdayThu,
	WeekdayFri,
}

// String implements fmt.Stringer.
func (w Weekday) String() string {
	return string(w)
}

// IsValid reports whether the value is a known Weekday.
func (w Weekday) IsValid() bool {
	for _, candidate := range validWeekdays {
		if candidate == w {
			return true
		}
	}
	return false
}

// ParseWeekday converts raw input into a Weekday.
func ParseWeekday(value string) (Weekday, error) {
	for _, candidate := range validWeekdays {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid weekday %q", value)
}

// AllWeekdays returns the full Monday-to-Friday range.
func AllWeekdays() []Weekday {
	return append([]Weekday{}, validWeekdays...)
}
