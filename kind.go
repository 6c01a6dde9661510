// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package period

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrReversed is wrapped by the error [Kind.Sequence] returns when the end of
// a sequence lies before its start.
var ErrReversed = errors.New("sequence end precedes start")

// A Kind is the granularity of a Period. Kinds are ordered from coarse to
// fine. The zero Kind is invalid.
type Kind int

const (
	Year Kind = iota + 1
	Quarter
	Month
	Week
	Day
)

// String returns the name of k, such as "Quarter".
func (k Kind) String() string {
	switch k {
	case Year:
		return "Year"
	case Quarter:
		return "Quarter"
	case Month:
		return "Month"
	case Week:
		return "Week"
	case Day:
		return "Day"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind returns the Kind named by s, ignoring case. Both the noun and the
// adverb are accepted: "month" and "monthly" are Month.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "year", "yearly":
		return Year, nil
	case "quarter", "quarterly":
		return Quarter, nil
	case "month", "monthly":
		return Month, nil
	case "week", "weekly":
		return Week, nil
	case "day", "daily":
		return Day, nil
	}
	return 0, fmt.Errorf("unknown period kind %q", s)
}

func (k Kind) unit() unit {
	if k < Year || k > Day {
		panic(fmt.Sprintf("period: invalid %v", k))
	}
	return units[k]
}

// At returns the period of kind k containing i.
func (k Kind) At(i Instant) *Period {
	k.unit()
	return &Period{kind: k, at: i}
}

// Date returns the period of kind k containing midnight of the given day. The
// day must exist, see [Midnight].
func (k Kind) Date(year int, month time.Month, day int) (*Period, error) {
	i, err := Midnight(year, month, day)
	if err != nil {
		return nil, err
	}
	return k.At(i), nil
}

// Now returns the period of kind k containing the current moment of c.
func (k Kind) Now(c Clock) *Period {
	return k.At(FromTime(c.Now()))
}

// New returns the period of kind k containing v, which is one of
//
//   - an Instant
//   - a time.Time, read by its wall clock
//   - a *Period, whose instant is used
//   - anything else, which is handed to [ParseDate], most usefully a string
//     or an integer such as 20130301
func (k Kind) New(v any) (*Period, error) {
	switch v := v.(type) {
	case Instant:
		return k.At(v), nil
	case time.Time:
		return k.At(FromTime(v)), nil
	case *Period:
		if v == nil {
			return nil, &ParseError{Value: "<nil>", Message: "not a date value"}
		}
		return k.At(v.at), nil
	}
	i, err := ParseDate(v)
	if err != nil {
		return nil, err
	}
	return k.At(i), nil
}

// MustNew is like New but panics on error.
func (k Kind) MustNew(v any) *Period {
	p, err := k.New(v)
	if err != nil {
		panic(err.Error())
	}
	return p
}

// Parse returns the period of kind k containing the instant text represents
// in the given strftime format, such as "%d %m %Y". The format replaces the
// patterns of [ParseDate].
func (k Kind) Parse(format, text string) (*Period, error) {
	i, err := parseStrftime(format, text)
	if err != nil {
		return nil, err
	}
	return k.At(i), nil
}

// Sequence returns the consecutive periods of kind k from the period
// containing start through the one containing end, both included. start and
// end accept the same values as [Kind.New].
//
// If end lies before start, the error wraps ErrReversed.
func (k Kind) Sequence(start, end any) ([]*Period, error) {
	first, err := k.New(start)
	if err != nil {
		return nil, err
	}
	last, err := k.New(end)
	if err != nil {
		return nil, err
	}
	if last.Start().Before(first.Start()) {
		return nil, fmt.Errorf("%v sequence from %v to %v: %w", k, first, last, ErrReversed)
	}

	seq := []*Period{first}
	for p := first; !p.Equal(last); {
		p = p.Clone().Next(1)
		seq = append(seq, p)
	}
	return seq, nil
}
