// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/chunkwriter/account"
)

type generated struct {
	Seed    string          `json:"seed"`
	Account account.Account `json:"account"`
}

func runGenerate(c *cli.Context) error {

	key, err := account.NewPrivateKey()
	if nil != err {
		return err
	}

	return printJson(c.App.Writer, generated{
		Seed:    key.Seed(),
		Account: key.Account(),
	})
}
