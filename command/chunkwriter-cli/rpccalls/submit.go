// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"time"

	"github.com/bitmark-inc/chunkwriter/account"
	"github.com/bitmark-inc/chunkwriter/fault"
	"github.com/bitmark-inc/chunkwriter/gnomon"
	"github.com/bitmark-inc/chunkwriter/instruction"
	"github.com/bitmark-inc/chunkwriter/rpc/ledger"
)

// retry a rate limited submit this many times
const (
	rateLimitRetries = 20
	rateLimitDelay   = 100 * time.Millisecond
)

// SubmitReply - JSON data to output after an envelope is accepted
type SubmitReply struct {
	ID           instruction.ID `json:"id"`
	Instructions []string       `json:"instructions"`
}

// Submit - sign and send one envelope
func (client *Client) Submit(instructions []instruction.Instruction, keys ...*account.PrivateKey) (*SubmitReply, error) {

	// distinct nonce so that a repeated request is a new envelope
	nonce := uint64(gnomon.NewCursor())

	packed, err := instruction.Sign(nonce, instructions, keys...)
	if nil != err {
		return nil, err
	}

	arguments := ledger.SubmitArguments{
		Envelope: packed,
	}
	client.printJson("Submit Request", arguments)

	var reply ledger.SubmitReply
	for i := 0; ; i += 1 {
		err = client.client.Call("Ledger.Submit", &arguments, &reply)
		if nil == err {
			break
		}
		if fault.RateLimiting.Error() != err.Error() || i >= rateLimitRetries {
			return nil, err
		}
		time.Sleep(rateLimitDelay)
	}

	client.printJson("Submit Reply", reply)

	tags := make([]string, 0, len(instructions))
	for _, item := range instructions {
		tags = append(tags, item.Tag().String())
	}

	response := SubmitReply{
		ID:           reply.ID,
		Instructions: tags,
	}
	return &response, nil
}
