// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"encoding/hex"

	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/chunkwriter/fault"
	"github.com/bitmark-inc/chunkwriter/util"
)

// AccountLength - bytes in every identity and storage address
const AccountLength = 32

// Account - a 32 byte identity
//
// signing principals are ed25519 public keys, derived storage
// addresses use the same width but lie off the curve
type Account [AccountLength]byte

// FromBytes - copy a byte slice into an account
func FromBytes(b []byte) (Account, error) {
	a := Account{}
	if AccountLength != len(b) {
		return a, fault.InvalidKeyLength
	}
	copy(a[:], b)
	return a, nil
}

// FromBase58 - decode the Base58 text form of an account
func FromBase58(s string) (Account, error) {
	b := util.FromBase58(s)
	if 0 == len(b) {
		return Account{}, fault.CannotDecodeAccount
	}
	return FromBytes(b)
}

// Bytes - account as byte slice
func (account Account) Bytes() []byte {
	return account[:]
}

// IsZero - true for the all zero account
func (account Account) IsZero() bool {
	return Account{} == account
}

// CheckSignature - verify an ed25519 signature made by this account
func (account Account) CheckSignature(message []byte, signature Signature) error {
	if ed25519.SignatureSize != len(signature) {
		return fault.InvalidSignature
	}
	if !ed25519.Verify(ed25519.PublicKey(account[:]), message, signature) {
		return fault.InvalidSignature
	}
	return nil
}

// String - Base58 encoding of the account
func (account Account) String() string {
	return util.ToBase58(account[:])
}

// GoString - for %#v
func (account Account) GoString() string {
	return "<account:" + hex.EncodeToString(account[:]) + ">"
}

// MarshalText - convert an account to its Base58 JSON form
func (account Account) MarshalText() ([]byte, error) {
	return []byte(account.String()), nil
}

// UnmarshalText - convert Base58 text to an account
func (account *Account) UnmarshalText(s []byte) error {
	a, err := FromBase58(string(s))
	if nil != err {
		return err
	}
	*account = a
	return nil
}
