// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/chunkwriter/fault"
	"github.com/bitmark-inc/chunkwriter/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(100, 10)
	assert.Nil(t, ratelimit.Limit(limiter), "wrong limit")
}

func TestLimitWhenZeroBurst(t *testing.T) {
	limiter := rate.NewLimiter(100, 0)
	assert.Equal(t, fault.RateLimiting, ratelimit.Limit(limiter), "wrong error")
}

func TestLimitN(t *testing.T) {
	limiter := rate.NewLimiter(100, 10)

	assert.Nil(t, ratelimit.LimitN(limiter, 5, 10), "wrong limit")
	assert.Equal(t, fault.InvalidCount, ratelimit.LimitN(limiter, 0, 10), "wrong zero count")
	assert.Equal(t, fault.InvalidCount, ratelimit.LimitN(limiter, 11, 10), "wrong large count")
}

func TestLimitNWhenOverBurst(t *testing.T) {
	limiter := rate.NewLimiter(100, 4)
	assert.Equal(t, fault.RateLimiting, ratelimit.LimitN(limiter, 5, 10), "wrong error")
}
