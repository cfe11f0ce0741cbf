// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"
	"math"

	"github.com/bitmark-inc/chunkwriter/account"
	"github.com/bitmark-inc/chunkwriter/fault"
)

// DefaultChunkLimit - used when a session is begun with a zero limit
const DefaultChunkLimit = 500

// ControlSize - bytes in a packed control record
const ControlSize = discriminatorSize + 1 + 3*account.AccountLength + 3*2 + 1

// Control - progress, parameters and authorisation of one session
type Control struct {
	Nonce         uint8           `json:"nonce"`
	Owner         account.Account `json:"owner"`
	SeedKey       account.Account `json:"seedKey"`
	Data          account.Account `json:"data"`
	Cursor        uint16          `json:"cursor"`
	DeclaredTotal uint16          `json:"declaredTotal"`
	ChunkLimit    uint16          `json:"chunkLimit"`
	Closed        bool            `json:"closed"`
}

// NewControl - initial state of a session
func NewControl(nonce uint8, owner account.Account, seed account.Account, data account.Account, declaredTotal uint16, chunkLimit uint16) *Control {
	if 0 == chunkLimit {
		chunkLimit = DefaultChunkLimit
	}
	return &Control{
		Nonce:         nonce,
		Owner:         owner,
		SeedKey:       seed,
		Data:          data,
		Cursor:        0,
		DeclaredTotal: declaredTotal,
		ChunkLimit:    chunkLimit,
		Closed:        false,
	}
}

// Advance - move the cursor forward by n bytes
//
// neither the chunk limit nor the declared total is checked here
func (control *Control) Advance(n int) error {
	if n < 0 || int(control.Cursor)+n > math.MaxUint16 {
		return fault.ArithmeticOverflow
	}
	control.Cursor += uint16(n)
	return nil
}

// IsComplete - cursor has reached the declared total
func (control *Control) IsComplete() bool {
	return control.Cursor == control.DeclaredTotal
}

// Pack - fixed binary layout
func (control *Control) Pack() []byte {
	buffer := make([]byte, 0, ControlSize)
	buffer = append(buffer, controlDiscriminator[:]...)
	buffer = append(buffer, control.Nonce)
	buffer = append(buffer, control.Owner[:]...)
	buffer = append(buffer, control.SeedKey[:]...)
	buffer = append(buffer, control.Data[:]...)
	buffer = appendUint16(buffer, control.Cursor)
	buffer = appendUint16(buffer, control.DeclaredTotal)
	buffer = appendUint16(buffer, control.ChunkLimit)
	buffer = appendBool(buffer, control.Closed)
	return buffer
}

// UnpackControl - decode a control record
func UnpackControl(buffer []byte) (*Control, error) {
	if len(buffer) < ControlSize {
		return nil, fault.RecordTooShort
	}
	if !hasDiscriminator(buffer, controlDiscriminator) {
		return nil, fault.WrongDiscriminator
	}
	if len(buffer) != ControlSize {
		return nil, fault.TrailingData
	}

	n := discriminatorSize
	control := &Control{}

	control.Nonce = buffer[n]
	n += 1
	copy(control.Owner[:], buffer[n:])
	n += account.AccountLength
	copy(control.SeedKey[:], buffer[n:])
	n += account.AccountLength
	copy(control.Data[:], buffer[n:])
	n += account.AccountLength
	control.Cursor = binary.LittleEndian.Uint16(buffer[n:])
	n += 2
	control.DeclaredTotal = binary.LittleEndian.Uint16(buffer[n:])
	n += 2
	control.ChunkLimit = binary.LittleEndian.Uint16(buffer[n:])
	n += 2
	control.Closed = 0 != buffer[n]

	return control, nil
}
