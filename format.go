// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package period

import (
	"time"

	"github.com/ncruces/go-strftime"

	"gonih.org/period/internal/cache"
)

// Formats understood by [Instant.Format], [Period.Format] and [Kind.Parse]
// use strftime conversion specifications, for example
//
//	%Y  four digit year
//	%m  zero padded month
//	%d  zero padded day
//	%H  %M  %S  hour, minute, second
//
// DayFormat, MonthFormat and YearFormat match the canonical strings of Day,
// Month and Year periods.
const (
	DayFormat   = "%d.%m.%Y"
	MonthFormat = "%m.%Y"
	YearFormat  = "%Y"
)

// memoize strftime to time layout conversions.
var layouts cache.Cache[string, string]

func formatStrftime(format string, i Instant) string {
	return strftime.Format(format, i.Time())
}

// parseStrftime parses text using a strftime format. The whole text must be
// consumed.
func parseStrftime(format, text string) (Instant, error) {
	layout, err := layouts.Get(format, strftime.Layout)
	if err != nil {
		return Instant{}, &ParseError{Value: text, Layout: format, Message: "unsupported format", Err: err}
	}
	t, err := time.Parse(layout, text)
	if err != nil {
		return Instant{}, &ParseError{Value: text, Layout: format, Message: "does not match format", Err: err}
	}
	return FromTime(t), nil
}
