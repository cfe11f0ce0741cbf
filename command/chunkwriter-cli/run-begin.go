// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/chunkwriter/account"
	"github.com/bitmark-inc/chunkwriter/command/chunkwriter-cli/rpccalls"
	"github.com/bitmark-inc/chunkwriter/fault"
	"github.com/bitmark-inc/chunkwriter/instruction"
	"github.com/bitmark-inc/chunkwriter/record"
)

type beginReply struct {
	SeedKey account.Account `json:"seedKey"`
	Data    account.Account `json:"data"`
	ID      instruction.ID  `json:"id"`
}

func runBegin(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	seedKey := account.Account{}
	if s := c.String("seed-key"); "" != s {
		var err error
		seedKey, err = checkSeedKey(s)
		if nil != err {
			return err
		}
	} else {
		key, err := account.NewPrivateKey()
		if nil != err {
			return err
		}
		seedKey = key.Account()
	}

	if 0 == c.Int("total") {
		return ErrRequiredTotal
	}
	total, err := rpccalls.DeclaredTotal(int64(c.Int("total")))
	if nil != err {
		return err
	}

	chunkLimit, err := checkChunkLimit(c.Int("chunk-limit"))
	if nil != err {
		return err
	}

	name, owner, err := checkOwnerWithPasswordPrompt(c.GlobalString("identity"), m.config, c)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", name)
		fmt.Fprintf(m.e, "seed key: %s\n", seedKey)
		fmt.Fprintf(m.e, "total: %d\n", total)
		fmt.Fprintf(m.e, "chunk limit: %d\n", chunkLimit)
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	capacity, err := nodeCapacity(client)
	if nil != err {
		return err
	}

	u := &rpccalls.UploadData{
		Owner:         owner.PrivateKey,
		SeedKey:       seedKey,
		DeclaredTotal: total,
		ChunkLimit:    chunkLimit,
		Capacity:      capacity,
	}

	reply, err := client.Begin(u)
	if nil != err {
		return err
	}

	dataKey, err := rpccalls.DataKey(owner.PrivateKey, seedKey)
	if nil != err {
		return err
	}

	return printJson(m.w, beginReply{
		SeedKey: seedKey,
		Data:    dataKey.Account(),
		ID:      reply.ID,
	})
}

// zero selects the server default
func checkChunkLimit(limit int) (uint16, error) {
	if limit < 0 || limit > math.MaxUint16 {
		return 0, fault.CountTooLarge
	}
	return uint16(limit), nil
}

// data account size the node expects
func nodeCapacity(client *rpccalls.Client) (record.Capacity, error) {
	info, err := client.GetNodeInfo()
	if nil != err {
		return 0, err
	}
	return record.CapacityFromString(info.Capacity)
}
