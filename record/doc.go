// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - the two persistent records of an upload session
//
// Control record (112 bytes):
//
//   discriminator  8
//   nonce          1
//   owner         32
//   seed key      32
//   data ref      32
//   cursor         2  little endian
//   declared total 2  little endian
//   chunk limit    2  little endian
//   closed         1
//
// Data record (43 + capacity bytes):
//
//   discriminator   8
//   owner          32
//   declared length 2  little endian
//   content type    1
//   buffer          capacity
//
// the discriminator is the first 8 bytes of SHA-256("account:<Name>")
package record
