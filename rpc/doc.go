// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - client access to the upload program
//
// JSON-RPC over TLS and an optional HTTPS endpoint serve these calls:
//
//   Ledger.Submit   hex signed envelope → envelope id
//   Upload.Status   seed key → control and data header
//   Upload.Read     seed key, offset, count → hex bytes
//   Upload.List     owner, start, count → sessions begun by the owner
//   Node.Info       chain, mode, program and counters
//
// the HTTPS endpoint accepts POST /chunkwriter/rpc with the same
// JSON-RPC body and GET /chunkwriter/details from allowed networks
package rpc
