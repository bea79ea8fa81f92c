package dateutil

import (
	"time"
)

// AddYears adds a specified number of years to a date
func AddYears(date time.Time, years int) time.Time {
	return date.AddDate(years, 0, 0)
}

// MaturityDate returns when a plan started on start with the given number of
// yearly deposits completes its last compounding period.
func MaturityDate(start time.Time, years int) time.Time {
	if years <= 0 {
		return start
	}
	return AddYears(start, years)
}
