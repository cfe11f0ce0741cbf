// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package derivation - deterministic storage addresses
//
// An address is derived from an ordered list of tags, a one byte
// nonce and the program identity:
//
//   SHA-256(tag₀ ‖ … ‖ tagₙ ‖ nonce ‖ program ‖ "ProgramDerivedAddress")
//
// and is only accepted when the 32 byte result does not decode as an
// ed25519 curve point, so no private key can ever sign for it.
//
// Find searches the nonce downwards from 255 and returns the first
// acceptable address, which makes the (tags, program) → address
// mapping a pure function.
package derivation
