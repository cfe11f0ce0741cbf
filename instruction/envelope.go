// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/chunkwriter/account"
	"github.com/bitmark-inc/chunkwriter/fault"
	"github.com/bitmark-inc/chunkwriter/util"
)

// Envelope - instructions executed together plus their signatures
type Envelope struct {
	Nonce        uint64
	Instructions []Instruction
	Signers      []account.Account
	Signatures   []account.Signature
}

// ID - identifier of a packed envelope
type ID [32]byte

// String - hex form of the identifier
func (id ID) String() string {
	return hex.EncodeToString(id[:])
}

// MarshalText - identifier as hex text
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - identifier from hex text
func (id *ID) UnmarshalText(s []byte) error {
	if hex.DecodedLen(len(s)) != len(id) {
		return fault.InvalidItem
	}
	_, err := hex.Decode(id[:], s)
	return err
}

// ID - SHA3-256 of the packed envelope
func (p Packed) ID() ID {
	return ID(sha3.Sum256(p))
}

// Message - the bytes covered by every signature
func (envelope *Envelope) Message() (Packed, error) {
	if 0 == len(envelope.Instructions) {
		return nil, fault.EmptyEnvelope
	}
	if len(envelope.Instructions) > MaximumInstructions || len(envelope.Signers) > MaximumSigners {
		return nil, fault.EnvelopeTooLarge
	}

	buffer := appendUint64(nil, envelope.Nonce)
	buffer = appendUint64(buffer, uint64(len(envelope.Instructions)))
	for _, instruction := range envelope.Instructions {
		buffer = append(buffer, instruction.Pack()...)
	}
	buffer = appendUint64(buffer, uint64(len(envelope.Signers)))
	for _, signer := range envelope.Signers {
		buffer = appendAccount(buffer, signer)
	}
	return buffer, nil
}

// Sign - pack and sign with every key, signer order follows the keys
func Sign(nonce uint64, instructions []Instruction, keys ...*account.PrivateKey) (Packed, error) {
	envelope := &Envelope{
		Nonce:        nonce,
		Instructions: instructions,
		Signers:      make([]account.Account, 0, len(keys)),
	}
	for _, key := range keys {
		envelope.Signers = append(envelope.Signers, key.Account())
	}

	message, err := envelope.Message()
	if nil != err {
		return nil, err
	}

	packed := message
	for _, key := range keys {
		packed = append(packed, key.Sign(message)...)
	}
	if len(packed) > MaximumEnvelopeSize {
		return nil, fault.EnvelopeTooLarge
	}
	return packed, nil
}

// UnpackEnvelope - decode an envelope and check its signatures
//
// returns the envelope and the set of verified signers
func (p Packed) UnpackEnvelope() (*Envelope, account.Signers, error) {
	if len(p) > MaximumEnvelopeSize {
		return nil, nil, fault.EnvelopeTooLarge
	}

	nonce, n := util.FromVarint64(p)
	if 0 == n {
		return nil, nil, fault.NotEnvelope
	}

	count, countLength := util.ClippedVarint64(p[n:], 1, MaximumInstructions)
	if 0 == countLength {
		return nil, nil, fault.NotEnvelope
	}
	n += countLength

	envelope := &Envelope{
		Nonce:        nonce,
		Instructions: make([]Instruction, 0, count),
	}

	for i := 0; i < count; i += 1 {
		instruction, instructionLength, err := p[n:].Unpack()
		if nil != err {
			return nil, nil, err
		}
		envelope.Instructions = append(envelope.Instructions, instruction)
		n += instructionLength
	}

	signerCount, signerLength := util.ClippedVarint64(p[n:], 1, MaximumSigners)
	if 0 == signerLength {
		return nil, nil, fault.MissingSignature
	}
	n += signerLength

	if len(p) < n+signerCount*account.AccountLength {
		return nil, nil, fault.RecordTooShort
	}
	signers := account.NewSigners()
	envelope.Signers = make([]account.Account, 0, signerCount)
	for i := 0; i < signerCount; i += 1 {
		a, _ := account.FromBytes(p[n : n+account.AccountLength])
		n += account.AccountLength
		if signers.Has(a) {
			return nil, nil, fault.DuplicateSigner
		}
		signers[a] = struct{}{}
		envelope.Signers = append(envelope.Signers, a)
	}

	message := p[:n]

	if len(p) < n+signerCount*signatureLength {
		return nil, nil, fault.MissingSignature
	}
	if len(p) > n+signerCount*signatureLength {
		return nil, nil, fault.TrailingData
	}

	envelope.Signatures = make([]account.Signature, 0, signerCount)
	for _, signer := range envelope.Signers {
		signature := account.Signature(p[n : n+signatureLength])
		n += signatureLength
		err := signer.CheckSignature(message, signature)
		if nil != err {
			return nil, nil, err
		}
		envelope.Signatures = append(envelope.Signatures, signature)
	}

	return envelope, signers, nil
}
