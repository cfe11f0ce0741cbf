// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/chunkwriter/command/chunkwriter-cli/rpccalls"
	"github.com/bitmark-inc/chunkwriter/instruction"
)

const followTimeout = 5 * time.Second

func runUpload(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName, err := checkFileName(c.String("file"))
	if nil != err {
		return err
	}

	seedKey, err := checkSeedKey(c.String("seed-key"))
	if nil != err {
		return err
	}

	chunkLimit, err := checkChunkLimit(c.Int("chunk-limit"))
	if nil != err {
		return err
	}

	chunkSize := c.Int("chunk-size")
	if chunkSize < 0 || chunkSize > instruction.MaximumChunkLength {
		return fmt.Errorf("chunk size: %d is not in [0, %d]", chunkSize, instruction.MaximumChunkLength)
	}

	follow := c.Bool("follow")

	file, err := os.Open(fileName)
	if nil != err {
		return err
	}
	defer file.Close()

	// default total is the current file size
	length := int64(c.Int("total"))
	if 0 == length {
		if follow {
			return ErrRequiredTotal
		}
		info, err := file.Stat()
		if nil != err {
			return err
		}
		length = info.Size()
	}
	total, err := rpccalls.DeclaredTotal(length)
	if nil != err {
		return err
	}

	name, owner, err := checkOwnerWithPasswordPrompt(c.GlobalString("identity"), m.config, c)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", name)
		fmt.Fprintf(m.e, "file: %s\n", fileName)
		fmt.Fprintf(m.e, "seed key: %s\n", seedKey)
		fmt.Fprintf(m.e, "total: %d\n", total)
		fmt.Fprintf(m.e, "follow: %t\n", follow)
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
		ChunkSize:     chunkSize,
		Capacity:      capacity,
	}

	reply, err := client.Resume(u, file)
	if nil != err {
		if nil != reply {
			printJson(m.w, reply)
		}
		return err
	}

	if !follow || reply.Complete {
		return printJson(m.w, reply)
	}

	f, err := newFollower(fileName)
	if nil != err {
		return err
	}
	defer f.Close()

	// stop following cleanly on CTRL-C
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(ch)

	interrupt := make(chan struct{})
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case sig := <-ch:
			fmt.Fprintf(m.e, "received signal: %v\n", sig)
			close(interrupt)
		case <-done:
		}
	}()

	envelopes := reply.Envelopes

follow_loop:
	for !reply.Complete {
		if m.verbose {
			fmt.Fprintf(m.e, "cursor: %d/%d  waiting for data\n", reply.Cursor, reply.DeclaredTotal)
		}

		err = f.Wait(followTimeout, interrupt)
		if ErrFollowInterrupted == err {
			break follow_loop
		}
		if nil != err {
			return err
		}

		reply, err = client.Resume(u, file)
		if nil != err {
			return err
		}
		envelopes = append(envelopes, reply.Envelopes...)
	}

	reply.Envelopes = envelopes
	return printJson(m.w, reply)
}
