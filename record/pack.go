// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"bytes"
	"crypto/sha256"
	"encoding/binary"
)

const discriminatorSize = 8

type discriminator [discriminatorSize]byte

var (
	controlDiscriminator = makeDiscriminator("UploadControl")
	dataDiscriminator    = makeDiscriminator("UploadData")
)

func makeDiscriminator(name string) discriminator {
	h := sha256.Sum256([]byte("account:" + name))
	d := discriminator{}
	copy(d[:], h[:])
	return d
}

func hasDiscriminator(buffer []byte, d discriminator) bool {
	return bytes.Equal(buffer[:discriminatorSize], d[:])
}

// IsControl - quick check of a raw account
func IsControl(buffer []byte) bool {
	return len(buffer) == ControlSize && hasDiscriminator(buffer, controlDiscriminator)
}

// IsZeroed - true if every byte is zero
func IsZeroed(buffer []byte) bool {
	for _, b := range buffer {
		if 0 != b {
			return false
		}
	}
	return true
}

func appendUint16(buffer []byte, value uint16) []byte {
	b := [2]byte{}
	binary.LittleEndian.PutUint16(b[:], value)
	return append(buffer, b[:]...)
}

func appendBool(buffer []byte, value bool) []byte {
	if value {
		return append(buffer, 1)
	}
	return append(buffer, 0)
}
