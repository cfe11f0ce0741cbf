// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/chunkwriter/instruction"
)

func runRead(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	seedKey, err := checkSeedKey(c.String("seed-key"))
	if nil != err {
		return err
	}

	offset := c.Int("offset")
	if offset < 0 {
		return fmt.Errorf("offset: %d must not be negative", offset)
	}
	count := c.Int("count")
	output := c.String("output")

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	session, err := client.Status(seedKey)
	if nil != err {
		return err
	}

	// negative count reads everything committed so far
	cursor := int(session.Control.Cursor)
	if count < 0 || offset+count > cursor {
		count = cursor - offset
	}

	if m.verbose {
		fmt.Fprintf(m.e, "seed key: %s\n", seedKey)
		fmt.Fprintf(m.e, "offset: %d\n", offset)
		fmt.Fprintf(m.e, "count: %d\n", count)
	}

	data := []byte{}
	if count > 0 {
		data, err = client.Read(seedKey, offset, count, instruction.MaximumChunkLength)
		if nil != err {
			return err
		}
	}

	if "" == output || "-" == output {
		_, err = m.w.Write(data)
		return err
	}
	return ioutil.WriteFile(output, data, 0600)
}
