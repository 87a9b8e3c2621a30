package timeutil

import (
	"fmt"
	"sync"
	"time"
)

// locations caches loaded zones by IANA name.
var locations sync.Map

// GetLocation loads an IANA zone once and serves it from cache afterwards.
func GetLocation(name string) (*time.Location, error) {
	if loc, ok := locations.Load(name); ok {
		return loc.(*time.Location), nil
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}

	actual, _ := locations.LoadOrStore(name, loc)
	return actual.(*time.Location), nil
}

// MustGetLocation is GetLocation for names already validated by config.
func MustGetLocation(name string) *time.Location {
	loc, err := GetLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// CalendarDate returns the calendar date of t as seen in loc, at midnight UTC.
// Dates normalized this way compare and subtract without zone drift.
// A nil loc reads the date in t's own zone.
func CalendarDate(t time.Time, loc *time.Location) time.Time {
	if loc != nil {
		t = t.In(loc)
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar date in loc according to clock.
func Today(clock Clock, loc *time.Location) time.Time {
	return CalendarDate(clock.Now(), loc)
}

// Window returns today and the date days later, both as calendar dates.
func Window(clock Clock, loc *time.Location, days int) (start, end time.Time) {
	start = Today(clock, loc)
	return start, start.AddDate(0, 0, days)
}
