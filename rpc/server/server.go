// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/chunkwriter/host"
	"github.com/bitmark-inc/chunkwriter/mode"
	"github.com/bitmark-inc/chunkwriter/rpc/ledger"
	"github.com/bitmark-inc/chunkwriter/rpc/node"
	"github.com/bitmark-inc/chunkwriter/rpc/uploads"
	"github.com/bitmark-inc/chunkwriter/storage"
)

// Create - an RPC server with all services registered
//
// storage must be initialised before calling
func Create(log *logger.L, runtime *host.Runtime, information *node.Node) *rpc.Server {

	server := rpc.NewServer()

	_ = server.Register(ledger.New(log, mode.Is, runtime))
	_ = server.Register(uploads.New(log, runtime.Processor(), storage.Pool.Accounts, storage.Pool.Sessions))
	_ = server.Register(information)

	return server
}
