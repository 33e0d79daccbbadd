// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"fmt"
	"time"
)

// TimestampLayout is the interchange format of all timestamps which are
// reported to clients. It matches the JavaScript Date.toISOString
// output, i.e., UTC with millisecond precision and a Z suffix.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Timestamp is an instant which is (de)serialized using the
// TimestampLayout format. Its zero value is serialized like any other
// instant, so callers must stamp quotes before reporting them.
type Timestamp time.Time

// Time returns ts as a time.Time instance.
func (ts Timestamp) Time() time.Time {
	return time.Time(ts)
}

// String formats ts in UTC using the TimestampLayout.
func (ts Timestamp) String() string {
	return time.Time(ts).UTC().Format(TimestampLayout)
}

// MarshalText implements the encoding.TextMarshaler interface, so
// ts will be encoded as a JSON string.
func (ts Timestamp) MarshalText() ([]byte, error) {
	return []byte(ts.String()), nil
}

// UnmarshalText parses an RFC 3339 text (which includes the
// TimestampLayout format) and fills ts. In case of errors, ts is
// left unchanged.
func (ts *Timestamp) UnmarshalText(text []byte) error {
	t, err := time.Parse(time.RFC3339Nano, string(text))
	if err != nil {
		return fmt.Errorf("parsing timestamp %q: %w", text, err)
	}
	*ts = Timestamp(t)
	return nil
}
