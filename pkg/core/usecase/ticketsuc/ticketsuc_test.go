// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package ticketsuc_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"github.com/momeni/parkmock/pkg/adapter/memory/ticketsrp"
	"github.com/momeni/parkmock/pkg/core/cerr"
	"github.com/momeni/parkmock/pkg/core/usecase/ticketsuc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type TicketsSuite struct {
	suite.Suite

	ctx context.Context
	uc  *ticketsuc.UseCase
}

func TestTicketsSuite(t *testing.T) {
	suite.Run(t, new(TicketsSuite))
}

func (ts *TicketsSuite) SetupTest() {
	ts.ctx = context.Background()
	r, err := ticketsrp.New("1234ABC")
	ts.Require().NoError(err)
	ts.uc, err = ticketsuc.New(r)
	ts.Require().NoError(err)
}

func (ts *TicketsSuite) TestSeededPlateIsValid() {
	v, err := ts.uc.Validate(ts.ctx, "1234ABC")
	ts.Require().NoError(err)
	ts.True(v.Valid)
	ts.Require().NotNil(v.TicketID)
	ts.Equal(int64(1), *v.TicketID)
	ts.Empty(v.Message)
}

func (ts *TicketsSuite) TestPayThenValidate() {
	v, err := ts.uc.Validate(ts.ctx, "5678XYZ")
	ts.Require().NoError(err)
	ts.False(v.Valid)
	ts.Nil(v.TicketID)
	ts.Equal(ticketsuc.MsgTicketNotFound, v.Message)

	res, err := ts.uc.Pay(ts.ctx, "5678XYZ")
	ts.Require().NoError(err)
	ts.True(res.Success)
	ts.Equal(ticketsuc.MsgTicketSaved, res.Message)

	v, err = ts.uc.Validate(ts.ctx, "5678XYZ")
	ts.Require().NoError(err)
	ts.True(v.Valid)
	ts.Require().NotNil(v.TicketID)
	ts.Equal(int64(2), *v.TicketID, "new tickets follow the seeds")
}

func (ts *TicketsSuite) TestDuplicatePayIsReported() {
	res, err := ts.uc.Pay(ts.ctx, "1234ABC")
	ts.Require().NoError(err)
	ts.False(res.Success)
	ts.Equal(ticketsuc.MsgTicketExists, res.Message)
	n, err := ts.uc.Count(ts.ctx)
	ts.Require().NoError(err)
	ts.Equal(1, n)
}

func (ts *TicketsSuite) TestBlankPlateIsRejected() {
	for _, p := range []string{"", "   ", "\t"} {
		res, err := ts.uc.Pay(ts.ctx, p)
		ts.Nil(res)
		var ce *cerr.Error
		ts.Require().True(errors.As(err, &ce), "plate %q", p)
		ts.Equal(http.StatusBadRequest, ce.HTTPStatusCode)
		ts.ErrorIs(err, ticketsuc.ErrMissingPlate)
		ts.Equal(ticketsuc.MsgMissingPlate, ce.Err.Error())
	}
	n, err := ts.uc.Count(ts.ctx)
	ts.Require().NoError(err)
	ts.Equal(1, n)
}

func (ts *TicketsSuite) TestPlatesAreTrimmedButCaseSensitive() {
	res, err := ts.uc.Pay(ts.ctx, " 1234ABC ")
	ts.Require().NoError(err)
	ts.False(res.Success)

	res, err = ts.uc.Pay(ts.ctx, "1234abc")
	ts.Require().NoError(err)
	ts.True(res.Success)
}

func TestConcurrentPaymentsOfOnePlate(t *testing.T) {
	r, err := ticketsrp.New()
	require.NoError(t, err)
	uc, err := ticketsuc.New(r)
	require.NoError(t, err)
	ctx := context.Background()

	const n = 64
	var wg sync.WaitGroup
	results := make(chan bool, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := uc.Pay(ctx, "9999ZZZ")
			if assert.NoError(t, err) {
				results <- res.Success
			}
		}()
	}
	wg.Wait()
	close(results)
	succeeded := 0
	for ok := range results {
		if ok {
			succeeded++
		}
	}
	assert.Equal(t, 1, succeeded)
	count, err := uc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestNewRejectsNilRepository(t *testing.T) {
	_, err := ticketsuc.New(nil)
	assert.Error(t, err)
}
