// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/chunkwriter/fault"
	"github.com/bitmark-inc/chunkwriter/instruction"
	"github.com/bitmark-inc/chunkwriter/mode"
	"github.com/bitmark-inc/chunkwriter/rpc/ratelimit"
)

const (
	rateLimitLedger = 100
	rateBurstLedger = 50
)

// Executor - applies a signed envelope atomically
type Executor interface {
	Execute(instruction.Packed) (instruction.ID, error)
}

// Ledger - type for RPC calls
type Ledger struct {
	Log          *logger.L
	Limiter      *rate.Limiter
	IsNormalMode func(mode.Mode) bool
	Executor     Executor
}

// New - create the ledger RPC service
func New(log *logger.L, isNormalMode func(mode.Mode) bool, executor Executor) *Ledger {
	return &Ledger{
		Log:          log,
		Limiter:      rate.NewLimiter(rateLimitLedger, rateBurstLedger),
		IsNormalMode: isNormalMode,
		Executor:     executor,
	}
}

// SubmitArguments - a hex encoded signed envelope
type SubmitArguments struct {
	Envelope instruction.Packed `json:"envelope"`
}

// SubmitReply - identifier of the committed envelope
type SubmitReply struct {
	ID instruction.ID `json:"id"`
}

// Submit - execute all instructions of an envelope or none of them
func (ledger *Ledger) Submit(arguments *SubmitArguments, reply *SubmitReply) error {

	if err := ratelimit.Limit(ledger.Limiter); nil != err {
		return err
	}

	if !ledger.IsNormalMode(mode.Normal) {
		return fault.SystemNotRunning
	}

	if nil == arguments || 0 == len(arguments.Envelope) {
		return fault.MissingParameters
	}

	ledger.Log.Debugf("submit: %d bytes", len(arguments.Envelope))

	id, err := ledger.Executor.Execute(arguments.Envelope)
	if nil != err {
		ledger.Log.Infof("submit: %s  rejected: %s", id, err)
		return err
	}

	reply.ID = id
	return nil
}
