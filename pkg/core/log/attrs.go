// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package log

import (
	"log/slog"
)

// Valuer returns an Attr for the given slog.LogValuer value.
func Valuer(key string, value slog.LogValuer) slog.Attr {
	return slog.Any(key, value)
}

// Err returns an Attr for the given error value.
// The error value is resolved as a string by its Error() method.
// If error value is nil, the constant "no-error" value will be used.
func Err(key string, value error) slog.Attr {
	if value == nil {
		return slog.String(key, "no-error")
	}
	return slog.String(key, value.Error())
}

// Plate returns an Attr for a vehicle plate, keyed as "plate".
func Plate(plate string) slog.Attr {
	return slog.String("plate", plate)
}

// Phone returns an Attr for a phone number, keyed as "phone", keeping
// only its first five characters so logs do not leak full numbers.
func Phone(phone string) slog.Attr {
	return slog.String("phone", MaskPhone(phone))
}

// MaskPhone keeps the first five runes of phone and replaces the rest
// with three asterisks. Short or empty numbers are reported as-is
// except that an empty number is reported as "undefined".
func MaskPhone(phone string) string {
	r := []rune(phone)
	switch {
	case len(r) == 0:
		return "undefined"
	case len(r) <= 5:
		return phone
	default:
		return string(r[:5]) + "***"
	}
}

// Zone returns a slog attribute for the zid zone identifier.
func Zone(zid string) slog.Attr {
	return slog.String("zone", zid)
}
