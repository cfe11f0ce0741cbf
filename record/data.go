// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"

	"github.com/bitmark-inc/chunkwriter/account"
	"github.com/bitmark-inc/chunkwriter/fault"
)

const dataHeaderSize = discriminatorSize + account.AccountLength + 2 + 1

// Data - raw buffer of a session plus a small header
type Data struct {
	Owner          account.Account
	DeclaredLength uint16
	Content        ContentType
	Buffer         []byte
}

// NewData - empty data record of the given capacity
func NewData(capacity Capacity) *Data {
	return &Data{
		Content: Unknown,
		Buffer:  make([]byte, capacity),
	}
}

// Capacity - physical size of the buffer
func (data *Data) Capacity() Capacity {
	return Capacity(len(data.Buffer))
}

// Stamp - write the header at session begin
func (data *Data) Stamp(owner account.Account, declaredLength uint16) {
	data.Owner = owner
	data.DeclaredLength = declaredLength
	data.Content = Unknown
}

// WriteChunk - copy a chunk into the buffer at offset
//
// the buffer is untouched unless the whole chunk fits
func (data *Data) WriteChunk(offset int, chunk []byte) error {
	if offset < 0 || offset+len(chunk) > len(data.Buffer) {
		return fault.OutOfBounds
	}
	copy(data.Buffer[offset:], chunk)
	return nil
}

// Read - copy of count bytes starting at offset
func (data *Data) Read(offset int, count int) ([]byte, error) {
	if offset < 0 || count < 0 || offset+count > len(data.Buffer) {
		return nil, fault.ReadOutOfRange
	}
	b := make([]byte, count)
	copy(b, data.Buffer[offset:])
	return b, nil
}

// Pack - fixed binary layout
func (data *Data) Pack() []byte {
	buffer := make([]byte, 0, dataHeaderSize+len(data.Buffer))
	buffer = append(buffer, dataDiscriminator[:]...)
	buffer = append(buffer, data.Owner[:]...)
	buffer = appendUint16(buffer, data.DeclaredLength)
	buffer = append(buffer, byte(data.Content))
	buffer = append(buffer, data.Buffer...)
	return buffer
}

// UnpackData - decode a data record, capacity follows from the length
func UnpackData(buffer []byte) (*Data, error) {
	if len(buffer) < dataHeaderSize {
		return nil, fault.RecordTooShort
	}
	if !hasDiscriminator(buffer, dataDiscriminator) {
		return nil, fault.WrongDiscriminator
	}

	n := discriminatorSize
	data := &Data{}

	copy(data.Owner[:], buffer[n:])
	n += account.AccountLength
	data.DeclaredLength = binary.LittleEndian.Uint16(buffer[n:])
	n += 2
	data.Content = ContentType(buffer[n])
	n += 1
	if !data.Content.Valid() {
		return nil, fault.InvalidItem
	}

	data.Buffer = make([]byte, len(buffer)-n)
	copy(data.Buffer, buffer[n:])

	return data, nil
}
