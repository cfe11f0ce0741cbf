// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/chunkwriter/chain"
	"github.com/bitmark-inc/chunkwriter/counter"
	"github.com/bitmark-inc/chunkwriter/fixtures"
	"github.com/bitmark-inc/chunkwriter/host"
	"github.com/bitmark-inc/chunkwriter/mode"
	"github.com/bitmark-inc/chunkwriter/rpc/node"
)

type fixedCounts host.Counts

func (f fixedCounts) Counts() host.Counts {
	return host.Counts(f)
}

func TestInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	err := mode.Initialise(chain.Testing, fixtures.Program)
	assert.Nil(t, err, "mode initialise")
	defer mode.Finalise()
	mode.Set(mode.Normal)

	var c counter.Counter
	c.Increment()
	c.Increment()

	n := node.New(
		logger.New(fixtures.LogCategory),
		time.Now(),
		"1.2.3",
		"small",
		&c,
		fixedCounts{Committed: 4, Failed: 1},
	)

	var reply node.InfoReply
	err = n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, chain.Testing, reply.Chain, "wrong chain")
	assert.Equal(t, mode.Normal.String(), reply.Mode, "wrong mode")
	assert.Equal(t, fixtures.Program, reply.Program, "wrong program")
	assert.Equal(t, "small", reply.Capacity, "wrong capacity")
	assert.Equal(t, uint64(2), reply.RPCs, "wrong rpc count")
	assert.Equal(t, host.Counts{Committed: 4, Failed: 1}, reply.Envelopes, "wrong counts")
	assert.Equal(t, "1.2.3", reply.Version, "wrong version")
	assert.NotEqual(t, "", reply.Uptime, "wrong uptime")
}
