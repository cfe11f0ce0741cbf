// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/chunkwriter/account"
	"github.com/bitmark-inc/chunkwriter/fault"
	"github.com/bitmark-inc/chunkwriter/record"
)

var (
	owner = account.Account{0x01, 0x02}
	seed  = account.Account{0x03, 0x04}
	data  = account.Account{0x05, 0x06}
)

func TestNewControl(t *testing.T) {
	tests := []struct {
		limit    uint16
		expected uint16
	}{
		{0, record.DefaultChunkLimit},
		{1, 1},
		{200, 200},
		{math.MaxUint16, math.MaxUint16},
	}
	for i, item := range tests {
		c := record.NewControl(254, owner, seed, data, 1000, item.limit)
		assert.Equal(t, item.expected, c.ChunkLimit, "%d: chunk limit", i)
		assert.Equal(t, uint16(0), c.Cursor, "%d: cursor", i)
		assert.Equal(t, uint16(1000), c.DeclaredTotal, "%d: declared total", i)
		assert.Equal(t, uint8(254), c.Nonce, "%d: nonce", i)
		assert.False(t, c.Closed, "%d: closed", i)
	}
}

func TestAdvance(t *testing.T) {
	c := record.NewControl(255, owner, seed, data, 1000, 0)

	assert.Nil(t, c.Advance(500), "first advance")
	assert.Nil(t, c.Advance(0), "zero advance")
	assert.Nil(t, c.Advance(500), "second advance")
	assert.Equal(t, uint16(1000), c.Cursor, "cursor")
	assert.True(t, c.IsComplete(), "complete")

	// not enforced here
	assert.Nil(t, c.Advance(700), "advance beyond declared total")
	assert.False(t, c.IsComplete(), "complete after overshoot")

	c.Cursor = math.MaxUint16 - 10
	assert.Nil(t, c.Advance(10), "advance to maximum")
	assert.Equal(t, fault.ArithmeticOverflow, c.Advance(1), "overflow")
	assert.Equal(t, uint16(math.MaxUint16), c.Cursor, "cursor changed by failed advance")

	assert.Equal(t, fault.ArithmeticOverflow, c.Advance(-1), "negative advance")
}

func TestControlPack(t *testing.T) {
	c := record.NewControl(253, owner, seed, data, 0x1234, 0)
	c.Cursor = 0x0102
	c.Closed = true

	packed := c.Pack()
	assert.Equal(t, record.ControlSize, len(packed), "packed size")
	assert.Equal(t, 112, record.ControlSize, "control size")
	assert.True(t, record.IsControl(packed), "not recognised as control")

	assert.Equal(t, byte(253), packed[8], "nonce position")
	assert.Equal(t, []byte{0x02, 0x01}, packed[105:107], "cursor little endian")
	assert.Equal(t, []byte{0x34, 0x12}, packed[107:109], "declared total little endian")
	assert.Equal(t, []byte{0xf4, 0x01}, packed[109:111], "chunk limit little endian")
	assert.Equal(t, byte(1), packed[111], "closed flag")

	u, err := record.UnpackControl(packed)
	assert.Nil(t, err, "unpack")
	assert.Equal(t, c, u, "unpacked record")
}

func TestControlUnpackErrors(t *testing.T) {
	packed := record.NewControl(1, owner, seed, data, 10, 0).Pack()

	_, err := record.UnpackControl(packed[:50])
	assert.Equal(t, fault.RecordTooShort, err, "short record")

	_, err = record.UnpackControl(append(append([]byte{}, packed...), 0))
	assert.Equal(t, fault.TrailingData, err, "long record")

	wrong := append([]byte{}, packed...)
	wrong[0] ^= 0xff
	_, err = record.UnpackControl(wrong)
	assert.Equal(t, fault.WrongDiscriminator, err, "discriminator")

	_, err = record.UnpackControl(record.NewData(record.Small).Pack())
	assert.Equal(t, fault.WrongDiscriminator, err, "data record as control")
}
