// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package instruction - packed host instructions and signed envelopes
//
// Each instruction starts with a Varint64 tag:
//
//   1 Allocate  payer(32) address(32) space(varint)
//   2 Begin     owner(32) data(32) seed(32) declared total(varint) chunk limit(varint)
//   3 Extend    control(32) owner(32) data(32) chunk length(varint) chunk
//   4 Transfer  owner(32) new owner(32)
//
// An envelope is:
//
//   message    = nonce(varint) count(varint) instruction… signer count(varint) signer(32)…
//   envelope   = message signature(64)…
//
// with one ed25519 signature over the message for each signer in the
// same order.
package instruction
