// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"
	"crypto/rand"
	"io"

	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/chunkwriter/fault"
	"github.com/bitmark-inc/chunkwriter/util"
)

// seed text layout:
//   header(3) ++ ed25519 seed(32) ++ checksum(4)
// checksum = first 4 bytes of SHA3-256(header ++ seed)
var seedHeader = []byte{0x5a, 0xfe, 0x04}

const (
	seedHeaderLength   = 3
	seedChecksumLength = 4
	seedLength         = seedHeaderLength + ed25519.SeedSize + seedChecksumLength
)

// PrivateKey - an ed25519 signing key
type PrivateKey struct {
	key ed25519.PrivateKey
}

// NewPrivateKey - generate a key from secure random data
func NewPrivateKey() (*PrivateKey, error) {
	return newPrivateKey(rand.Reader)
}

func newPrivateKey(r io.Reader) (*PrivateKey, error) {
	seed := make([]byte, ed25519.SeedSize)
	if _, err := io.ReadFull(r, seed); nil != err {
		return nil, err
	}
	return &PrivateKey{key: ed25519.NewKeyFromSeed(seed)}, nil
}

// PrivateKeyFromSeed - make a key from a raw 32 byte ed25519 seed
func PrivateKeyFromSeed(seed []byte) (*PrivateKey, error) {
	if ed25519.SeedSize != len(seed) {
		return nil, fault.InvalidSeedLength
	}
	return &PrivateKey{key: ed25519.NewKeyFromSeed(seed)}, nil
}

// PrivateKeyFromBase58Seed - recreate a key from its seed text
func PrivateKeyFromBase58Seed(s string) (*PrivateKey, error) {
	seed := util.FromBase58(s)
	if 0 == len(seed) {
		return nil, fault.CannotDecodeSeed
	}
	if seedLength != len(seed) {
		return nil, fault.InvalidSeedLength
	}
	if !bytes.Equal(seedHeader, seed[:seedHeaderLength]) {
		return nil, fault.InvalidSeedHeader
	}

	checksumStart := seedLength - seedChecksumLength
	checksum := sha3.Sum256(seed[:checksumStart])
	if !bytes.Equal(checksum[:seedChecksumLength], seed[checksumStart:]) {
		return nil, fault.ChecksumMismatch
	}

	return &PrivateKey{key: ed25519.NewKeyFromSeed(seed[seedHeaderLength:checksumStart])}, nil
}

// PrivateKeyFromBytes - accept a raw 64 byte ed25519 private key
func PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if ed25519.PrivateKeySize != len(b) {
		return nil, fault.InvalidPrivateKey
	}
	key := make(ed25519.PrivateKey, ed25519.PrivateKeySize)
	copy(key, b)
	return &PrivateKey{key: key}, nil
}

// Account - the public identity of this key
func (privateKey *PrivateKey) Account() Account {
	a := Account{}
	copy(a[:], privateKey.key.Public().(ed25519.PublicKey))
	return a
}

// Sign - sign a message
func (privateKey *PrivateKey) Sign(message []byte) Signature {
	return ed25519.Sign(privateKey.key, message)
}

// Bytes - raw private key bytes
func (privateKey *PrivateKey) Bytes() []byte {
	return privateKey.key
}

// Seed - Base58 text form of the private key seed
func (privateKey *PrivateKey) Seed() string {
	b := make([]byte, 0, seedLength)
	b = append(b, seedHeader...)
	b = append(b, privateKey.key.Seed()...)
	checksum := sha3.Sum256(b)
	b = append(b, checksum[:seedChecksumLength]...)
	return util.ToBase58(b)
}
