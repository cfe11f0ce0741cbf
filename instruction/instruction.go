// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"encoding/hex"
	"encoding/json"

	"github.com/bitmark-inc/chunkwriter/account"
	"github.com/bitmark-inc/chunkwriter/util"
)

// TagType - type code for instructions
type TagType uint64

// enumerate the possible instruction types
// this is encoded a Varint64 at start of each instruction
const (
	// null marks beginning of list - not used as an instruction type
	NullTag = TagType(iota)

	AllocateTag = TagType(iota) // create a zeroed account
	BeginTag    = TagType(iota) // start an upload session
	ExtendTag   = TagType(iota) // append one chunk
	TransferTag = TagType(iota) // change session owner (reserved)

	// this item must be last
	InvalidTag = TagType(iota)
)

// size limits
const (
	MaximumInstructions = 8
	MaximumSigners      = 8
	MaximumChunkLength  = 4096
	MaximumEnvelopeSize = 8192
	MaximumAllocation   = 200000
	signatureLength     = 64
	maximumUint16Varint = 65535
)

// Packed - packed records are just a byte slice
type Packed []byte

// Instruction - generic instruction interface
type Instruction interface {
	Tag() TagType
	Pack() Packed
}

// Allocate - create a zeroed account of space bytes
type Allocate struct {
	Payer   account.Account `json:"payer"`
	Address account.Account `json:"address"`
	Space   uint64          `json:"space"`
}

// Begin - start an upload session
type Begin struct {
	Owner         account.Account `json:"owner"`
	Data          account.Account `json:"data"`
	SeedKey       account.Account `json:"seedKey"`
	DeclaredTotal uint16          `json:"declaredTotal"`
	ChunkLimit    uint16          `json:"chunkLimit"`
}

// Extend - append one chunk to a session
type Extend struct {
	Control account.Account `json:"control"`
	Owner   account.Account `json:"owner"`
	Data    account.Account `json:"data"`
	Chunk   []byte          `json:"chunk"`
}

// Transfer - change of session owner
type Transfer struct {
	Owner    account.Account `json:"owner"`
	NewOwner account.Account `json:"newOwner"`
}

// Tag - instruction code
func (a *Allocate) Tag() TagType { return AllocateTag }

// Tag - instruction code
func (b *Begin) Tag() TagType { return BeginTag }

// Tag - instruction code
func (e *Extend) Tag() TagType { return ExtendTag }

// Tag - instruction code
func (t *Transfer) Tag() TagType { return TransferTag }

// String - name of the tag
func (tag TagType) String() string {
	switch tag {
	case AllocateTag:
		return "Allocate"
	case BeginTag:
		return "Begin"
	case ExtendTag:
		return "Extend"
	case TransferTag:
		return "Transfer"
	default:
		return "*unknown*"
	}
}

// MarshalText - packed data as hex text
func (p Packed) MarshalText() ([]byte, error) {
	b := make([]byte, hex.EncodedLen(len(p)))
	hex.Encode(b, p)
	return b, nil
}

// UnmarshalText - hex text to packed data
func (p *Packed) UnmarshalText(s []byte) error {
	b := make([]byte, hex.DecodedLen(len(s)))
	n, err := hex.Decode(b, s)
	if nil != err {
		return err
	}
	*p = b[:n]
	return nil
}

// MarshalJSON - tagged form of an instruction for display
func MarshalJSON(instruction Instruction) ([]byte, error) {
	return json.Marshal(struct {
		Type string      `json:"type"`
		Data interface{} `json:"data"`
	}{
		Type: instruction.Tag().String(),
		Data: instruction,
	})
}

func appendAccount(buffer Packed, a account.Account) Packed {
	return append(buffer, a[:]...)
}

func appendUint64(buffer Packed, value uint64) Packed {
	return append(buffer, util.ToVarint64(value)...)
}

func appendBytes(buffer Packed, data []byte) Packed {
	buffer = append(buffer, util.ToVarint64(uint64(len(data)))...)
	return append(buffer, data...)
}
