// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings

import (
	"cmp"
	"fmt"
)

// OutOfRangeError reports a setting which was out of its acceptable
// range. Bound is the violated boundary which replaced Value.
type OutOfRangeError[T cmp.Ordered] struct {
	Value        *T   // The actual out-of-range value
	Bound        *T   // The min or max boundary which was violated
	LessThanMin  bool // true if and only if min boundary is violated
	InvalidRange bool // true if and only if min is greater than max
}

// Error implements error interface and returns a string reporting the
// violated boundary, e.g., "value 20000 is greater than max 1000".
func (e *OutOfRangeError[T]) Error() string {
	switch {
	case e.InvalidRange:
		return "min is greater than max"
	case e.LessThanMin:
		return fmt.Sprintf("value %v is less than min %v", *e.Value, *e.Bound)
	default:
		return fmt.Sprintf(
			"value %v is greater than max %v", *e.Value, *e.Bound,
		)
	}
}

// VerifyRange ensures that value is either nil or falls within the
// minb/maxb boundaries, ignoring the nil boundaries. An out-of-range
// value is clamped to the violated boundary, so callers which only
// warn about the returned error may still use the setting.
func VerifyRange[T cmp.Ordered](
	value **T, minb, maxb *T,
) *OutOfRangeError[T] {
	switch {
	case minb != nil && maxb != nil && (*minb) > (*maxb):
		return &OutOfRangeError[T]{InvalidRange: true}
	case (*value) == nil:
		return nil
	}
	switch v := **value; {
	case minb != nil && v < *minb:
		**value = *minb
		return &OutOfRangeError[T]{Value: &v, Bound: minb, LessThanMin: true}
	case maxb != nil && v > *maxb:
		**value = *maxb
		return &OutOfRangeError[T]{Value: &v, Bound: maxb}
	}
	return nil
}
