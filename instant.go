// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package period

import (
	"errors"
	"fmt"
	"time"

	"gonih.org/period/internal/civil"
)

// ErrInvalidDate is wrapped by errors for field combinations that do not form
// a valid Gregorian date and time of day, like February 30.
var ErrInvalidDate = errors.New("invalid date")

// lastMoment is the clock offset of the last instant of a day, as reported by
// End: 23:59:59.999999.
const lastMoment = 24*time.Hour - time.Microsecond

// An Instant is a point on the Gregorian calendar: a day plus a time of day.
// It carries no time zone. The zero value is 0001-01-01 00:00:00.
//
// Instants can be compared with ==.
type Instant struct {
	date  civil.Date
	clock time.Duration // since midnight, in [0, 24h)
}

// NewInstant returns the Instant for the given fields. Unlike [time.Date], it
// does not normalize: every field must be in its usual range and the day
// must exist in the given month, otherwise the error wraps ErrInvalidDate.
func NewInstant(year int, month time.Month, day, hour, min, sec, nsec int) (Instant, error) {
	if !civil.Valid(year, month, day) {
		return Instant{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, int(month), day)
	}
	if hour < 0 || hour > 23 || min < 0 || min > 59 || sec < 0 || sec > 59 || nsec < 0 || nsec > 999999999 {
		return Instant{}, fmt.Errorf("%w: time %02d:%02d:%02d.%09d", ErrInvalidDate, hour, min, sec, nsec)
	}
	clock := time.Duration(hour)*time.Hour +
		time.Duration(min)*time.Minute +
		time.Duration(sec)*time.Second +
		time.Duration(nsec)
	return Instant{civil.Of(year, month, day), clock}, nil
}

// Midnight returns the Instant at the start of the given day. See
// [NewInstant] for validation.
func Midnight(year int, month time.Month, day int) (Instant, error) {
	return NewInstant(year, month, day, 0, 0, 0, 0)
}

// FromTime returns the Instant showing the same wall clock as t in t's
// location. The location itself is dropped.
func FromTime(t time.Time) Instant {
	hour, min, sec := t.Clock()
	clock := time.Duration(hour)*time.Hour +
		time.Duration(min)*time.Minute +
		time.Duration(sec)*time.Second +
		time.Duration(t.Nanosecond())
	return Instant{civil.Of(t.Date()), clock}
}

// Time returns i as a time.Time in UTC with the same wall clock.
func (i Instant) Time() time.Time {
	year, month, day := i.date.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Add(i.clock)
}

// Date returns the year, month and day of i.
func (i Instant) Date() (year int, month time.Month, day int) {
	return i.date.Date()
}

// Clock returns the hour, minute and second of i.
func (i Instant) Clock() (hour, min, sec int) {
	s := int(i.clock / time.Second)
	return s / 3600, s / 60 % 60, s % 60
}

// Nanosecond returns the nanosecond offset within the second of i.
func (i Instant) Nanosecond() int {
	return int(i.clock % time.Second)
}

// Year returns the year of i.
func (i Instant) Year() int { return i.date.Year() }

// Month returns the month of i.
func (i Instant) Month() time.Month { return i.date.Month() }

// Day returns the day of the month of i.
func (i Instant) Day() int { return i.date.Day() }

// YearDay returns the day of the year of i, starting at 1.
func (i Instant) YearDay() int { return i.date.YearDay() }

// Weekday returns the day of the week of i.
func (i Instant) Weekday() time.Weekday { return i.date.Weekday() }

// ISOWeekday returns the day of the week of i, 1 for Monday through 7 for
// Sunday.
func (i Instant) ISOWeekday() int { return i.date.ISOWeekday() }

// ISOWeek returns the ISO 8601 year and week number of i.
func (i Instant) ISOWeek() (year, week int) { return i.date.ISOWeek() }

// Compare returns -1, 0 or +1 depending on whether i is before, equal to or
// after j.
func (i Instant) Compare(j Instant) int {
	switch {
	case i.date < j.date, i.date == j.date && i.clock < j.clock:
		return -1
	case i == j:
		return 0
	default:
		return 1
	}
}

// Before reports whether i is before j.
func (i Instant) Before(j Instant) bool { return i.Compare(j) < 0 }

// After reports whether i is after j.
func (i Instant) After(j Instant) bool { return i.Compare(j) > 0 }

// Equal reports whether i and j are the same instant.
func (i Instant) Equal(j Instant) bool { return i == j }

// AddDays returns i moved by n days, keeping the time of day.
func (i Instant) AddDays(n int) Instant {
	i.date += civil.Date(n)
	return i
}

// AddMonths returns i moved by n months, keeping the time of day. The day of
// the month is clipped to the length of the target month, so January 31
// plus one month is the last day of February.
func (i Instant) AddMonths(n int) Instant {
	i.date = i.date.AddMonths(n)
	return i
}

// AddYears returns i moved by n years. February 29 becomes February 28 in
// non-leap years.
func (i Instant) AddYears(n int) Instant {
	i.date = i.date.AddYears(n)
	return i
}

// StartOfDay returns midnight of i's day.
func (i Instant) StartOfDay() Instant {
	return Instant{date: i.date}
}

// EndOfDay returns the last instant of i's day, 23:59:59.999999.
func (i Instant) EndOfDay() Instant {
	return Instant{date: i.date, clock: lastMoment}
}

// Format renders i according to a strftime format string, such as
// "%d.%m.%Y".
func (i Instant) Format(format string) string {
	return formatStrftime(format, i)
}

// String returns i formatted as "2006-01-02 15:04:05.999999999".
func (i Instant) String() string {
	return i.Time().Format("2006-01-02 15:04:05.999999999")
}

// GoString implements fmt.GoStringer.
func (i Instant) GoString() string {
	year, month, day := i.Date()
	hour, min, sec := i.Clock()
	return fmt.Sprintf("period.NewInstant(%d, %d, %d, %d, %d, %d, %d)", year, month, day, hour, min, sec, i.Nanosecond())
}
