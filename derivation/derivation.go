// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package derivation

import (
	"crypto/sha256"

	"filippo.io/edwards25519"

	"github.com/bitmark-inc/chunkwriter/account"
	"github.com/bitmark-inc/chunkwriter/fault"
)

// limits on the tag list
const (
	MaximumTags      = 16
	MaximumTagLength = 32
)

const marker = "ProgramDerivedAddress"

// tags for the control record
var (
	controlPrefix = []byte("upload")
	controlSuffix = []byte("control")
)

// Deriver - produce addresses owned by a program
type Deriver interface {
	Create(tags [][]byte, nonce uint8) (account.Account, error)
	Find(tags [][]byte) (account.Account, uint8, error)
}

type deriver struct {
	program account.Account
}

// New - deriver bound to one program identity
func New(program account.Account) Deriver {
	return &deriver{
		program: program,
	}
}

// ControlTags - tag list that locates the control record of a session
func ControlTags(seed account.Account) [][]byte {
	return [][]byte{controlPrefix, seed.Bytes(), controlSuffix}
}

// Create - address for an explicit nonce
//
// fails with AddressDerivationFailure if the hash lands on the curve
func (d *deriver) Create(tags [][]byte, nonce uint8) (account.Account, error) {
	if len(tags) > MaximumTags {
		return account.Account{}, fault.InvalidSeeds
	}

	h := sha256.New()
	for _, tag := range tags {
		if len(tag) > MaximumTagLength {
			return account.Account{}, fault.InvalidSeeds
		}
		h.Write(tag)
	}
	h.Write([]byte{nonce})
	h.Write(d.program[:])
	h.Write([]byte(marker))

	a := account.Account{}
	copy(a[:], h.Sum(nil))

	if onCurve(a[:]) {
		return account.Account{}, fault.AddressDerivationFailure
	}
	return a, nil
}

// Find - first acceptable address searching from nonce 255 downwards
func (d *deriver) Find(tags [][]byte) (account.Account, uint8, error) {
	for n := 255; n >= 0; n -= 1 {
		nonce := uint8(n)
		a, err := d.Create(tags, nonce)
		if nil == err {
			return a, nonce, nil
		}
		if fault.InvalidSeeds == err {
			return account.Account{}, 0, err
		}
	}
	return account.Account{}, 0, fault.AddressDerivationFailure
}

func onCurve(b []byte) bool {
	_, err := new(edwards25519.Point).SetBytes(b)
	return nil == err
}
