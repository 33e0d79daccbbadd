// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package ticketsrp_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/momeni/parkmock/pkg/adapter/memory/ticketsrp"
	"github.com/momeni/parkmock/pkg/core/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedsTakeFirstIDs(t *testing.T) {
	ctx := context.Background()
	r, err := ticketsrp.New("A", "B", "C")
	require.NoError(t, err)
	for i, p := range []string{"A", "B", "C"} {
		tk, err := r.Find(ctx, p)
		require.NoError(t, err)
		require.NotNil(t, tk)
		assert.Equal(t, int64(i+1), tk.TicketID)
	}
	tk, err := r.Insert(ctx, "D")
	require.NoError(t, err)
	assert.Equal(t, int64(4), tk.TicketID)
}

func TestDuplicateSeedIsRejected(t *testing.T) {
	_, err := ticketsrp.New("A", "A")
	assert.ErrorIs(t, err, repo.ErrTicketExists)
}

func TestFindMissing(t *testing.T) {
	r, err := ticketsrp.New()
	require.NoError(t, err)
	tk, err := r.Find(context.Background(), "nope")
	assert.NoError(t, err)
	assert.Nil(t, tk)
}

func TestConcurrentInsertsGetDistinctIDs(t *testing.T) {
	ctx := context.Background()
	r, err := ticketsrp.New("seed")
	require.NoError(t, err)
	const n = 100
	ids := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			tk, err := r.Insert(ctx, fmt.Sprintf("P%03d", i))
			if assert.NoError(t, err) {
				ids <- tk.TicketID
			}
		}(i)
	}
	wg.Wait()
	close(ids)
	seen := make(map[int64]bool, n)
	for id := range ids {
		assert.False(t, seen[id], "duplicate id %d", id)
		assert.True(t, id >= 2 && id <= n+1, "id %d out of range", id)
		seen[id] = true
	}
	l, err := r.Len(ctx)
	require.NoError(t, err)
	assert.Equal(t, n+1, l)
}
