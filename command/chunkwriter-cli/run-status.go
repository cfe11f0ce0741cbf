// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runStatus(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	seedKey, err := checkSeedKey(c.String("seed-key"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "seed key: %s\n", seedKey)
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	session, err := client.Status(seedKey)
	if nil != err {
		return err
	}

	return printJson(m.w, session)
}
