// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/momeni/parkmock/pkg/adapter/config/settings"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ExampleDuration_Marshal() {
	for _, d := range []time.Duration{
		0, 2 * time.Second, 90 * time.Minute, 2 * time.Hour,
	} {
		sd := settings.Duration(d)
		fmt.Println(*sd.Marshal())
	}
	var missing *settings.Duration
	fmt.Println(missing.Marshal() == nil)
	// Output:
	// 0s
	// 2s
	// 1h30m
	// 2h
	// true
}

func TestDurationStd(t *testing.T) {
	var d *settings.Duration
	assert.Equal(t, time.Second, d.Std(time.Second))
	sd := settings.Duration(0)
	require.NoError(t, sd.UnmarshalText([]byte("1m30s")))
	assert.Equal(t, 90*time.Second, sd.Std(time.Second))
	assert.Error(t, sd.UnmarshalText([]byte("soon")))
	assert.Equal(t, 90*time.Second, sd.Std(time.Second), "must be unchanged")
}

func TestVerifyRange(t *testing.T) {
	minb, maxb := 1, 10
	v := 20
	p := &v
	err := settings.VerifyRange(&p, &minb, &maxb)
	require.NotNil(t, err)
	assert.False(t, err.LessThanMin)
	assert.Equal(t, 20, *err.Value)
	assert.Equal(t, 10, *p, "value is clamped to the max bound")
	assert.Equal(t, 10, *err.Bound)
	assert.EqualError(t, err, "value 20 is greater than max 10")

	v = 0
	p = &v
	err = settings.VerifyRange(&p, &minb, &maxb)
	require.NotNil(t, err)
	assert.True(t, err.LessThanMin)
	assert.Equal(t, 1, *p)
	assert.EqualError(t, err, "value 0 is less than min 1")

	lo, hi := settings.Duration(time.Second), settings.Duration(time.Minute)
	d := settings.Duration(time.Hour)
	dp := &d
	derr := settings.VerifyRange(&dp, &lo, &hi)
	require.NotNil(t, derr)
	assert.EqualError(t, derr, "value 1h0m0s is greater than max 1m0s")
	assert.Equal(t, time.Minute, dp.Std(0))

	p = nil
	assert.Nil(t, settings.VerifyRange(&p, &minb, &maxb))
	assert.True(t, settings.VerifyRange(&p, &maxb, &minb).InvalidRange)
}

func TestDefaultAndNil2Zero(t *testing.T) {
	var s *string
	settings.Default(&s, "x")
	require.NotNil(t, s)
	assert.Equal(t, "x", *s)
	settings.Default(&s, "y")
	assert.Equal(t, "x", *s, "existing values are kept")

	var n *int
	settings.Nil2Zero(&n)
	require.NotNil(t, n)
	assert.Zero(t, *n)

	src := 5
	settings.OverwriteNil(&n, &src)
	assert.Zero(t, *n)
	settings.OverwriteUnconditionally(&n, &src)
	assert.Equal(t, 5, *n)
	src = 6
	assert.Equal(t, 5, *n, "a copy is kept")
	settings.OverwriteUnconditionally(&n, nil)
	assert.Nil(t, n)
}

func TestLookupOverrides(t *testing.T) {
	env := settings.MapEnv(map[string]string{
		"NAME":  "parkmock",
		"EMPTY": "",
		"PORT":  "8080",
		"BAD":   "eighty",
	})
	name := "old"
	s := &name
	env.OverrideString(&s, "NAME")
	assert.Equal(t, "parkmock", *s)
	env.OverrideString(&s, "EMPTY")
	env.OverrideString(&s, "MISSING")
	assert.Equal(t, "parkmock", *s)

	var port *int
	require.NoError(t, env.OverrideInt(&port, "PORT"))
	assert.Equal(t, 8080, *port)
	assert.Error(t, env.OverrideInt(&port, "BAD"))
	assert.Equal(t, 8080, *port)
}
