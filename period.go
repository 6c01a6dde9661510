// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package period models calendar periods: years, quarters, months, ISO weeks
// and days.
//
// A [Period] is an [Instant] together with a [Kind]. The kind decides how the
// period shifts, where its window starts and ends and how it is written:
//
//	Year     2015
//	Quarter  Q2.2015
//	Month    06.2015
//	Week     W23.2015
//	Day      06.06.2015
//
// Periods are built through their kind, from an Instant, a time.Time or from
// flexible date text and numbers understood by [ParseDate]:
//
//	q := period.Quarter.MustNew(20150606)
//	fmt.Println(q, q.Start().Format("%d.%m.%Y")) // Q2.2015 01.04.2015
//
// Shifting mutates a Period in place and returns it, so calls chain. Use
// [Period.Clone] to keep the original. A Period must not be mutated
// concurrently.
//
// The package has no notion of time zones. Instants are wall clock readings;
// converting from a time.Time keeps its clock and forgets its location.
package period

import "time"

// A Period is the calendar window of a given Kind containing an Instant.
// Periods are created by the methods of Kind.
type Period struct {
	kind Kind
	at   Instant
}

// Kind returns the granularity of p.
func (p *Period) Kind() Kind { return p.kind }

// Instant returns the instant p was built from, as moved by shifts.
func (p *Period) Instant() Instant { return p.at }

// Shift moves p by n periods of its kind, backwards if n is negative, and
// returns p.
//
// Month and coarser shifts keep the day of the month where possible and clip
// it to the last day of the target month otherwise.
func (p *Period) Shift(n int) *Period {
	p.at = p.kind.unit().shift(p.at, n)
	return p
}

// Next is Shift(n).
func (p *Period) Next(n int) *Period { return p.Shift(n) }

// Prev is Shift(-n).
func (p *Period) Prev(n int) *Period { return p.Shift(-n) }

// Clone returns an independent copy of p.
func (p *Period) Clone() *Period {
	c := *p
	return &c
}

// Start returns the first instant of p, at midnight.
func (p *Period) Start() Instant { return p.kind.unit().start(p.at) }

// End returns the last instant of p, at 23:59:59.999999.
func (p *Period) End() Instant { return p.kind.unit().end(p.at) }

// Range returns Start and End.
func (p *Period) Range() (start, end Instant) { return p.Start(), p.End() }

// Contains reports whether i falls into the window of p.
func (p *Period) Contains(i Instant) bool {
	return !i.Before(p.Start()) && !i.After(p.End())
}

// Format renders the instant of p according to a strftime format string.
// For the canonical representation use String.
func (p *Period) Format(format string) string { return p.at.Format(format) }

// String returns the canonical representation of p, like "Q2.2013" or
// "05.05.1985".
func (p *Period) String() string { return p.kind.unit().canonical(p.at) }

// Equal reports whether p and q are of the same kind and have the same
// canonical representation. Two Day periods on the same day are equal,
// whatever their time of day.
func (p *Period) Equal(q *Period) bool {
	if p == nil || q == nil {
		return p == q
	}
	return p.kind == q.kind && p.String() == q.String()
}

// Year returns the calendar year of p's instant.
func (p *Period) Year() int { return p.at.Year() }

// Quarter returns the quarter, 1 to 4, of p. ok is false for Year periods.
func (p *Period) Quarter() (q int, ok bool) {
	if p.kind < Quarter {
		return 0, false
	}
	return quarterOf(p.at.Month()), true
}

// Month returns the month of p. ok is false for Year and Quarter periods.
func (p *Period) Month() (m time.Month, ok bool) {
	if p.kind < Month {
		return 0, false
	}
	return p.at.Month(), true
}

// Week returns the ISO week number of p. ok is true only for Week and Day
// periods.
func (p *Period) Week() (week int, ok bool) {
	if p.kind < Week {
		return 0, false
	}
	_, week = p.at.ISOWeek()
	return week, true
}

// Day returns the day of the month of p. ok is true only for Day periods.
func (p *Period) Day() (day int, ok bool) {
	if p.kind < Day {
		return 0, false
	}
	return p.at.Day(), true
}

// Weekday returns the day of the week of p, 1 for Monday through 7 for
// Sunday. ok is true only for Day periods.
func (p *Period) Weekday() (wd int, ok bool) {
	if p.kind < Day {
		return 0, false
	}
	return p.at.ISOWeekday(), true
}

// GoString implements fmt.GoStringer, printing p like "Day: 05.05.1985".
func (p *Period) GoString() string {
	return p.kind.String() + ": " + p.String()
}
