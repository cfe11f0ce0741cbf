// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the avaiable tables.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. address      = 32 byte account address (public key or derived)
// 4. envelope id  = SHA3-256 of the packed signed envelope
//
// Accounts:
//
//   A ++ address               - raw account storage
//                                data: control record, data record or zeroed allocation
//
// Sessions:
//
//   S ++ owner ++ control      - sessions begun by an owner
//                                data: seed key
//
// Envelopes:
//
//   E ++ envelope id           - envelopes that were committed
//                                data: 8 byte big endian unix time of commit
//
// Testing:
//   Z ++ key                   - testing data
package storage
