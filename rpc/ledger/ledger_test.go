// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/chunkwriter/fault"
	"github.com/bitmark-inc/chunkwriter/fixtures"
	"github.com/bitmark-inc/chunkwriter/instruction"
	"github.com/bitmark-inc/chunkwriter/mode"
	"github.com/bitmark-inc/chunkwriter/rpc/ledger"
	"github.com/bitmark-inc/chunkwriter/rpc/mocks"
)

func normalMode(m mode.Mode) bool { return mode.Normal == m }
func stoppedMode(m mode.Mode) bool { return mode.Stopped == m }

func TestSubmit(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	packed := instruction.Packed{0x01, 0x02, 0x03}
	id := packed.ID()

	executor := mocks.NewMockExecutor(ctl)
	executor.EXPECT().Execute(packed).Return(id, nil).Times(1)

	l := ledger.New(logger.New(fixtures.LogCategory), normalMode, executor)

	var reply ledger.SubmitReply
	err := l.Submit(&ledger.SubmitArguments{Envelope: packed}, &reply)
	assert.Nil(t, err, "wrong Submit")
	assert.Equal(t, id, reply.ID, "wrong id")
}

func TestSubmitWhenExecuteFails(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	packed := instruction.Packed{0x01, 0x02, 0x03}

	executor := mocks.NewMockExecutor(ctl)
	executor.EXPECT().Execute(packed).Return(packed.ID(), fault.DuplicateEnvelope).Times(1)

	l := ledger.New(logger.New(fixtures.LogCategory), normalMode, executor)

	var reply ledger.SubmitReply
	err := l.Submit(&ledger.SubmitArguments{Envelope: packed}, &reply)
	assert.Equal(t, fault.DuplicateEnvelope, err, "wrong error")
	assert.Equal(t, instruction.ID{}, reply.ID, "reply should be empty")
}

func TestSubmitWhenNotNormalMode(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	executor := mocks.NewMockExecutor(ctl)
	executor.EXPECT().Execute(gomock.Any()).Times(0)

	l := ledger.New(logger.New(fixtures.LogCategory), stoppedMode, executor)

	var reply ledger.SubmitReply
	err := l.Submit(&ledger.SubmitArguments{Envelope: instruction.Packed{0x01}}, &reply)
	assert.Equal(t, fault.SystemNotRunning, err, "wrong error")
}

func TestSubmitWhenEmpty(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	executor := mocks.NewMockExecutor(ctl)
	executor.EXPECT().Execute(gomock.Any()).Times(0)

	l := ledger.New(logger.New(fixtures.LogCategory), normalMode, executor)

	var reply ledger.SubmitReply
	err := l.Submit(&ledger.SubmitArguments{}, &reply)
	assert.Equal(t, fault.MissingParameters, err, "wrong error")
}
