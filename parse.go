// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package period

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"
)

// minTwoDigitYear is the smallest accepted two-digit year. Smaller values are
// too easily confused with a day or a month.
const minTwoDigitYear = 13

// A datePattern is one of the textual date forms accepted by ParseDate. The
// day, month and year submatches are at fixed indexes; separated forms also
// capture both separators, which must be equal.
type datePattern struct {
	name             string
	re               *regexp.Regexp
	day, month, year int
	seps             [2]int // submatch indexes of the separators, zero if none
}

const (
	reSep       = `([-./\s])`
	reDay       = `(3[01]|[12]\d|0[1-9]|[1-9])`
	reMonth     = `(0[1-9]|1[012]|[1-9])`
	reZeroDay   = `(3[01]|[12]\d|0[1-9])`
	reZeroMonth = `(0[1-9]|1[012])`
)

func anchored(expr string) *regexp.Regexp {
	return regexp.MustCompile(`^\s*` + expr + `\s*$`)
}

// datePatterns are tried in order and the first match wins. nsp comes before
// isonsp, so an eight digit string that reads as DDMMYYYY is taken as such.
var datePatterns = []datePattern{
	{
		name: "iso",
		re:   anchored(`([12]\d{3})` + reSep + reMonth + reSep + reDay),
		year: 1, month: 3, day: 5, seps: [2]int{2, 4},
	},
	{
		name: "dmy",
		re:   anchored(reDay + reSep + reMonth + reSep + `([12]\d{3})`),
		day:  1, month: 3, year: 5, seps: [2]int{2, 4},
	},
	{
		name: "nsp",
		re:   anchored(reZeroDay + reZeroMonth + `([12]\d{3})`),
		day:  1, month: 2, year: 3,
	},
	{
		name: "isonsp",
		re:   anchored(`(20[1-5]\d)` + reZeroMonth + reZeroDay),
		year: 1, month: 2, day: 3,
	},
	{
		name: "two",
		re:   anchored(reDay + reSep + reMonth + reSep + `(\d{2})`),
		day:  1, month: 3, year: 5, seps: [2]int{2, 4},
	},
}

// match returns the year, month and day matched by p in s.
func (p *datePattern) match(s string) (year, month, day int, ok bool) {
	m := p.re.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, 0, false
	}
	if p.seps[0] != 0 && m[p.seps[0]] != m[p.seps[1]] {
		return 0, 0, 0, false
	}
	// The expressions only admit digits, so Atoi cannot fail.
	year, _ = strconv.Atoi(m[p.year])
	month, _ = strconv.Atoi(m[p.month])
	day, _ = strconv.Atoi(m[p.day])
	return year, month, day, true
}

// ParseDate converts a textual or numeric date into an Instant at midnight.
// Integers are read through their decimal representation. The accepted
// forms, tried in this order, are
//
//	YYYY-M-D   year 1000 to 2999 first
//	D-M-YYYY   day first
//	DDMMYYYY   eight digits, day first
//	YYYYMMDD   eight digits, years 2010 to 2059 only
//	D-M-YY     two-digit year YY >= 13, meaning 20YY
//
// where the separator "-" can also be ".", "/" or a white space character,
// but must be the same on both sides. Leading and trailing space is ignored.
//
// All errors are of type *ParseError.
func ParseDate(v any) (Instant, error) {
	s, err := cast.ToStringE(v)
	if err != nil {
		return Instant{}, &ParseError{Value: fmt.Sprint(v), Message: "not a date value", Err: err}
	}
	return parseDate(s)
}

func parseDate(s string) (Instant, error) {
	for i := range datePatterns {
		p := &datePatterns[i]
		year, month, day, ok := p.match(s)
		if !ok {
			continue
		}
		if p.name == "two" {
			if year < minTwoDigitYear {
				return Instant{}, &ParseError{Value: s, Message: fmt.Sprintf("two-digit year %02d is below %d", year, minTwoDigitYear)}
			}
			year += 2000
		}
		in, err := Midnight(year, time.Month(month), day)
		if err != nil {
			return Instant{}, &ParseError{Value: s, Message: "day out of range", Err: err}
		}
		return in, nil
	}
	return Instant{}, &ParseError{Value: s, Message: "unrecognized date format"}
}

// ParseError describes a problem parsing a date.
type ParseError struct {
	Value   string // the rejected input
	Layout  string // the explicit format, if any
	Message string
	Err     error // underlying cause, if any
}

// Error returns the string representation of a ParseError.
func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "parsing date %q", e.Value)
	if e.Layout != "" {
		fmt.Fprintf(&b, " as %q", e.Layout)
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying cause of e.
func (e *ParseError) Unwrap() error {
	return e.Err
}
