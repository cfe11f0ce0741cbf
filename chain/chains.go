// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"golang.org/x/crypto/sha3"
)

// names of all chains
const (
	Chunkwriter = "chunkwriter"
	Testing     = "testing"
	Local       = "local"
)

// Valid - validate a chain name
func Valid(name string) bool {
	switch name {
	case Chunkwriter, Testing, Local:
		return true
	default:
		return false
	}
}

// DefaultProgram - program identity used when the configuration does
// not supply one
//
// each chain gets a distinct identity so that control addresses
// derived on one chain never collide with another
func DefaultProgram(name string) [32]byte {
	return sha3.Sum256([]byte("chunkwriter program:" + name))
}
