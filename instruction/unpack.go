// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

import (
	"github.com/bitmark-inc/chunkwriter/account"
	"github.com/bitmark-inc/chunkwriter/fault"
	"github.com/bitmark-inc/chunkwriter/util"
)

// Unpack - turn a byte slice into one instruction
//
// returns the instruction and the number of bytes consumed
//
// must cast result to correct type
//
// e.g.
//   switch ins := result.(type) {
//   case *instruction.Extend:
func (record Packed) Unpack() (i Instruction, n int, e error) {

	defer func() {
		if r := recover(); nil != r {
			i = nil
			n = 0
			e = fault.RecordTooShort
		}
	}()

	// restrict capacity so a short record cannot be read past its end
	record = record[:len(record):len(record)]

	tag, n := util.FromVarint64(record)
	if 0 == n {
		return nil, 0, fault.RecordTooShort
	}

	switch TagType(tag) {

	case AllocateTag:
		a := &Allocate{}
		a.Payer, n = unpackAccount(record, n)
		a.Address, n = unpackAccount(record, n)
		space, spaceLength := util.FromVarint64(record[n:])
		if 0 == spaceLength {
			return nil, 0, fault.RecordTooShort
		}
		n += spaceLength
		a.Space = space
		return a, n, nil

	case BeginTag:
		b := &Begin{}
		b.Owner, n = unpackAccount(record, n)
		b.Data, n = unpackAccount(record, n)
		b.SeedKey, n = unpackAccount(record, n)
		total, totalLength := util.ClippedVarint64(record[n:], 0, maximumUint16Varint)
		if 0 == totalLength {
			return nil, 0, fault.InvalidItem
		}
		n += totalLength
		limit, limitLength := util.ClippedVarint64(record[n:], 0, maximumUint16Varint)
		if 0 == limitLength {
			return nil, 0, fault.InvalidItem
		}
		n += limitLength
		b.DeclaredTotal = uint16(total)
		b.ChunkLimit = uint16(limit)
		return b, n, nil

	case ExtendTag:
		x := &Extend{}
		x.Control, n = unpackAccount(record, n)
		x.Owner, n = unpackAccount(record, n)
		x.Data, n = unpackAccount(record, n)
		if _, l := util.FromVarint64(record[n:]); 0 == l {
			return nil, 0, fault.RecordTooShort
		}
		chunkLength, chunkOffset := util.ClippedVarint64(record[n:], 0, MaximumChunkLength)
		if 0 == chunkOffset {
			return nil, 0, fault.EnvelopeTooLarge
		}
		n += chunkOffset
		x.Chunk = make([]byte, chunkLength)
		copy(x.Chunk, record[n:n+chunkLength])
		n += chunkLength
		return x, n, nil

	case TransferTag:
		t := &Transfer{}
		t.Owner, n = unpackAccount(record, n)
		t.NewOwner, n = unpackAccount(record, n)
		return t, n, nil

	default:
		return nil, 0, fault.UnknownInstruction
	}
}

// panics on a short buffer, recovered by Unpack
func unpackAccount(record Packed, n int) (account.Account, int) {
	a := account.Account{}
	copy(a[:], record[n:n+account.AccountLength])
	return a, n + account.AccountLength
}
