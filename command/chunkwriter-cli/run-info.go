// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/chunkwriter/command/chunkwriter-cli/configuration"
	"github.com/bitmark-inc/chunkwriter/command/chunkwriter-cli/rpccalls"
)

type infoReply struct {
	DefaultIdentity string                       `json:"default_identity"`
	Chain           string                       `json:"chain"`
	Connections     []string                     `json:"connections"`
	Identities      []configuration.InfoIdentity `json:"identities"`
}

func runInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	return printJson(m.w, infoReply{
		DefaultIdentity: m.config.DefaultIdentity,
		Chain:           m.config.Chain,
		Connections:     m.config.Connections,
		Identities:      m.config.Info(),
	})
}

func runNodeInfo(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	info, err := client.GetNodeInfo()
	if nil != err {
		return err
	}

	return printJson(m.w, info)
}

// connect to the selected chunkwriterd
func newClient(m *metadata) (*rpccalls.Client, error) {
	connect := m.config.Connections[m.connectionOffset]
	return rpccalls.NewClient(connect, m.verbose, m.e)
}
