// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/chunkwriter/account"
	"github.com/bitmark-inc/chunkwriter/counter"
	"github.com/bitmark-inc/chunkwriter/host"
	"github.com/bitmark-inc/chunkwriter/mode"
	"github.com/bitmark-inc/chunkwriter/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Counter - source of envelope counts
type Counter interface {
	Counts() host.Counts
}

// Node - type for RPC calls
type Node struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Start    time.Time
	Version  string
	Capacity string
	counter  *counter.Counter
	host     Counter
}

// New - create the node information service
func New(log *logger.L, start time.Time, version string, capacity string, counter *counter.Counter, host Counter) *Node {
	return &Node{
		Log:      log,
		Limiter:  rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:    start,
		Version:  version,
		Capacity: capacity,
		counter:  counter,
		host:     host,
	}
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Chain     string          `json:"chain"`
	Mode      string          `json:"mode"`
	Program   account.Account `json:"program"`
	Capacity  string          `json:"capacity"`
	RPCs      uint64          `json:"rpcs"`
	Envelopes host.Counts     `json:"envelopes"`
	Version   string          `json:"version"`
	Uptime    string          `json:"uptime"`
}

// Info - return some information about this node
// only enough for clients to determine node state
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	node.Fill(reply)
	return nil
}

// Fill - populate a reply, shared with the HTTP details page
func (node *Node) Fill(reply *InfoReply) {
	reply.Chain = mode.ChainName()
	reply.Mode = mode.String()
	reply.Program = mode.Program()
	reply.Capacity = node.Capacity
	reply.RPCs = node.counter.Uint64()
	reply.Envelopes = node.host.Counts()
	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
}
