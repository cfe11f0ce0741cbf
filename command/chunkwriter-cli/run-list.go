// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

const listPageSize = 100

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name := c.String("owner")
	if "" == name {
		name = c.GlobalString("identity")
		if "" == name {
			name = m.config.DefaultIdentity
		}
	}

	owner, err := checkAccount(name, m.config)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "owner: %s\n", owner)
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	sessions, err := client.List(owner, listPageSize)
	if nil != err {
		return err
	}

	return printJson(m.w, sessions)
}
