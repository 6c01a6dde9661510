// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package period

import "time"

// A Clock tells the current time. It is passed to [Kind.Now], so tests can
// pin the present moment.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts an ordinary function to a Clock.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// System is the wall clock in the local time zone.
var System Clock = ClockFunc(time.Now)

// Fixed returns a Clock that always reports t.
func Fixed(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}
