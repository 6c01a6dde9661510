// Copyright 2009 The Go Authors.
// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package civil implements timezone-free arithmetic on proleptic Gregorian
// calendar days.
//
// The day computations follow package time, with clock and zone handling
// stripped away. A Date is a plain day count, so adding days is integer
// addition and two dates can be compared with the usual operators.
package civil

import (
	"fmt"
	"time"
)

const (
	// The unsigned zero year for internal calculations.
	// Must be 1 mod 400, and dates before it will not compute correctly.
	absoluteZeroYear = -292277022399

	// The year of the zero Date.
	internalYear = 1

	absoluteToInternal = (absoluteZeroYear - internalYear) * 365.2425
	internalToAbsolute = -absoluteToInternal

	daysPer400Years = 146097
	daysPer100Years = 36524
	daysPer4Years   = 1461
)

// daysBefore[m] counts the days in a non-leap year before month m begins.
// daysBefore[12] is the length of the whole year.
var daysBefore = [...]int{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

// IsLeap reports whether year is a Gregorian leap year.
func IsLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysIn returns the number of days in month m of the given year. It panics
// if m is not in [time.January, time.December].
func DaysIn(year int, m time.Month) int {
	if m < time.January || m > time.December {
		panic(fmt.Sprintf("civil: month %d out of range", m))
	}
	if m == time.February && IsLeap(year) {
		return 29
	}
	return daysBefore[m] - daysBefore[m-1]
}

// Valid reports whether year, month and day name an existing calendar day
// without any normalization.
func Valid(year int, month time.Month, day int) bool {
	if month < time.January || month > time.December {
		return false
	}
	return day >= 1 && day <= DaysIn(year, month)
}

// absDate splits an absolute day count into year and zero-based day of the
// year and, if full is set, month and day of the month.
func absDate(abs uint64, full bool) (year int, month time.Month, day int, yday int) {
	d := abs

	n := d / daysPer400Years
	y := 400 * n
	d -= daysPer400Years * n

	// The last 100-year cycle of each 400 has one extra leap day, which makes
	// n come out as 4 on its last day.
	n = d / daysPer100Years
	n -= n >> 2
	y += 100 * n
	d -= daysPer100Years * n

	n = d / daysPer4Years
	y += 4 * n
	d -= daysPer4Years * n

	// Same correction as above for the leap year closing a 4-year cycle.
	n = d / 365
	n -= n >> 2
	y += n
	d -= 365 * n

	year = int(int64(y) + absoluteZeroYear)
	yday = int(d)

	if !full {
		return
	}

	day = yday
	if IsLeap(year) {
		switch {
		case day > 31+29-1:
			day--
		case day == 31+29-1:
			return year, time.February, 29, yday
		}
	}

	// Guessing 31 days per month is off by at most one month.
	month = time.Month(day / 31)
	end := daysBefore[month+1]
	var begin int
	if day >= end {
		month++
		begin = end
	} else {
		begin = daysBefore[month]
	}

	month++
	day = day - begin + 1
	return year, month, day, yday
}

// daysSinceEpoch returns the number of days from the absolute epoch to the
// first day of year.
func daysSinceEpoch(year int) int {
	y := year - absoluteZeroYear

	n := y / 400
	y -= 400 * n
	d := daysPer400Years * n

	n = y / 100
	y -= 100 * n
	d += daysPer100Years * n

	n = y / 4
	y -= 4 * n
	d += daysPer4Years * n

	d += 365 * y
	return d
}

// norm returns nhi, nlo such that
//
//	hi * base + lo == nhi * base + nlo
//	0 <= nlo < base
func norm(hi, lo, base int) (nhi, nlo int) {
	if lo < 0 {
		n := (-lo-1)/base + 1
		hi -= n
		lo += n * base
	}
	if lo >= base {
		n := lo / base
		hi += n
		lo -= n * base
	}
	return hi, lo
}

// A Date is a calendar day, counted in days since 0001-01-01.
type Date int

// Of returns the Date of the given day. Out of range months and days are
// normalized like [time.Date] does: October 32 is November 1.
func Of(year int, month time.Month, day int) Date {
	m := int(month) - 1
	year, m = norm(year, m, 12)
	month = time.Month(m) + 1

	d := daysSinceEpoch(year)
	d += daysBefore[month-1]
	if IsLeap(year) && month >= time.March {
		d++
	}
	d += day - 1

	return Date(d - internalToAbsolute)
}

func (d Date) abs() uint64 {
	return uint64(d + internalToAbsolute)
}

// Date returns the year, month and day of d.
func (d Date) Date() (year int, month time.Month, day int) {
	year, month, day, _ = absDate(d.abs(), true)
	return year, month, day
}

// Year returns the year of d.
func (d Date) Year() int {
	year, _, _, _ := absDate(d.abs(), false)
	return year
}

// Month returns the month of d.
func (d Date) Month() time.Month {
	_, month, _ := d.Date()
	return month
}

// Day returns the day of the month of d.
func (d Date) Day() int {
	_, _, day := d.Date()
	return day
}

// YearDay returns the day of the year of d, in [1,365] or [1,366] in leap
// years.
func (d Date) YearDay() int {
	_, _, _, yday := absDate(d.abs(), false)
	return yday + 1
}

// Weekday returns the day of the week of d.
func (d Date) Weekday() time.Weekday {
	return (time.Monday + time.Weekday(d.abs())) % 7 // 0001-01-01 was a Monday
}

// ISOWeekday returns the ISO 8601 day of the week, 1 for Monday through 7
// for Sunday.
func (d Date) ISOWeekday() int {
	return (int(d.Weekday())+6)%7 + 1
}

// ISOWeek returns the ISO 8601 year and week number of d. Jan 01 to Jan 03
// may belong to the last week of the previous year and Dec 29 to Dec 31 to
// week 1 of the next.
func (d Date) ISOWeek() (year, week int) {
	// Move to the Thursday of the same week: its year is the ISO year.
	offset := time.Thursday - d.Weekday()
	if offset == 4 {
		offset = -3
	}
	d += Date(offset)
	year, _, _, yday := absDate(d.abs(), false)
	return year, yday/7 + 1
}

// AddMonths moves d by n months, keeping the day of the month where possible
// and clipping it to the last day of the target month otherwise. January 31
// plus one month is February 28 (or 29).
func (d Date) AddMonths(n int) Date {
	year, month, day := d.Date()
	m := int(month) - 1 + n
	year, m = norm(year, m, 12)
	month = time.Month(m) + 1
	if last := DaysIn(year, month); day > last {
		day = last
	}
	return Of(year, month, day)
}

// AddYears moves d by n years, clipping February 29 to February 28 in
// non-leap target years.
func (d Date) AddYears(n int) Date {
	return d.AddMonths(12 * n)
}

// StartOfMonth returns the first day of d's month.
func (d Date) StartOfMonth() Date {
	year, month, _ := d.Date()
	return Of(year, month, 1)
}

// EndOfMonth returns the last day of d's month.
func (d Date) EndOfMonth() Date {
	year, month, _ := d.Date()
	return Of(year, month, DaysIn(year, month))
}

// StartOfISOWeek returns the Monday of d's ISO week.
func (d Date) StartOfISOWeek() Date {
	return d - Date(d.ISOWeekday()-1)
}

// GoString implements fmt.GoStringer.
func (d Date) GoString() string {
	year, month, day := d.Date()
	return fmt.Sprintf("civil.Of(%d, %d, %d)", year, month, day)
}

// String returns d in ISO 8601 format.
func (d Date) String() string {
	year, month, day := d.Date()
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
