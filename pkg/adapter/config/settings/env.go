// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings

import (
	"fmt"
	"os"
	"strconv"
)

// Lookup is the environment lookup function. It has the same signature
// as os.LookupEnv, so tests may replace it with a map based function.
type Lookup func(key string) (string, bool)

// Env returns the process environment lookup function.
func Env() Lookup {
	return os.LookupEnv
}

// MapEnv returns a Lookup which resolves keys from m.
func MapEnv(m map[string]string) Lookup {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

// OverrideString replaces (*dst) with the value of the key environment
// variable if it is set and is not empty.
func (l Lookup) OverrideString(dst **string, key string) {
	if v, ok := l(key); ok && v != "" {
		(*dst) = &v
	}
}

// OverrideInt replaces (*dst) with the integer value of the key
// environment variable if it is set and is not empty. A non-numeric
// value is reported as an error and (*dst) is left unchanged.
func (l Lookup) OverrideInt(dst **int, key string) error {
	v, ok := l(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("parsing %s=%q: %w", key, v, err)
	}
	(*dst) = &n
	return nil
}
