// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package period

import (
	"fmt"
	"time"

	"gonih.org/period/internal/civil"
)

// A unit implements the arithmetic of one Kind. start and end return the
// first and last instant of the window containing at.
type unit interface {
	shift(at Instant, n int) Instant
	start(at Instant) Instant
	end(at Instant) Instant
	canonical(at Instant) string
}

var units = [...]unit{
	Year:    yearUnit{},
	Quarter: quarterUnit{},
	Month:   monthUnit{},
	Week:    weekUnit{},
	Day:     dayUnit{},
}

// quarterOf returns the quarter, 1 to 4, of month m.
func quarterOf(m time.Month) int {
	return (int(m)-1)/3 + 1
}

type yearUnit struct{}

func (yearUnit) shift(at Instant, n int) Instant { return at.AddYears(n) }

func (yearUnit) start(at Instant) Instant {
	return Instant{date: civil.Of(at.Year(), time.January, 1)}
}

func (yearUnit) end(at Instant) Instant {
	return Instant{date: civil.Of(at.Year(), time.December, 31), clock: lastMoment}
}

func (yearUnit) canonical(at Instant) string {
	return fmt.Sprintf("%04d", at.Year())
}

type quarterUnit struct{}

func (quarterUnit) shift(at Instant, n int) Instant { return at.AddMonths(3 * n) }

func (quarterUnit) start(at Instant) Instant {
	q := quarterOf(at.Month())
	return Instant{date: civil.Of(at.Year(), time.Month(3*q-2), 1)}
}

func (quarterUnit) end(at Instant) Instant {
	year := at.Year()
	last := time.Month(3 * quarterOf(at.Month()))
	return Instant{date: civil.Of(year, last, civil.DaysIn(year, last)), clock: lastMoment}
}

func (quarterUnit) canonical(at Instant) string {
	return fmt.Sprintf("Q%d.%04d", quarterOf(at.Month()), at.Year())
}

type monthUnit struct{}

func (monthUnit) shift(at Instant, n int) Instant { return at.AddMonths(n) }

func (monthUnit) start(at Instant) Instant {
	return Instant{date: at.date.StartOfMonth()}
}

func (monthUnit) end(at Instant) Instant {
	return Instant{date: at.date.EndOfMonth(), clock: lastMoment}
}

func (monthUnit) canonical(at Instant) string {
	return fmt.Sprintf("%02d.%04d", int(at.Month()), at.Year())
}

type weekUnit struct{}

func (weekUnit) shift(at Instant, n int) Instant { return at.AddDays(7 * n) }

func (weekUnit) start(at Instant) Instant {
	return Instant{date: at.date.StartOfISOWeek()}
}

func (weekUnit) end(at Instant) Instant {
	return Instant{date: at.date.StartOfISOWeek() + 6, clock: lastMoment}
}

// canonical uses the ISO week-numbering year, so that the days of week 1
// falling into December are not mistaken for the first week of their
// calendar year.
func (weekUnit) canonical(at Instant) string {
	year, week := at.ISOWeek()
	return fmt.Sprintf("W%d.%04d", week, year)
}

type dayUnit struct{}

func (dayUnit) shift(at Instant, n int) Instant { return at.AddDays(n) }

func (dayUnit) start(at Instant) Instant { return at.StartOfDay() }

func (dayUnit) end(at Instant) Instant { return at.EndOfDay() }

func (dayUnit) canonical(at Instant) string {
	year, month, day := at.Date()
	return fmt.Sprintf("%02d.%02d.%04d", day, int(month), year)
}
