// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/chunkwriter/fault"
	"github.com/bitmark-inc/chunkwriter/record"
)

func TestDataSizes(t *testing.T) {
	assert.Equal(t, 10043, record.Small.DataSize(), "small")
	assert.Equal(t, 40043, record.Default.DataSize(), "default")
	assert.Equal(t, 100043, record.Large.DataSize(), "large")
}

func TestCapacityFromString(t *testing.T) {
	tests := []struct {
		name     string
		capacity record.Capacity
		err      error
	}{
		{"", record.Default, nil},
		{"default", record.Default, nil},
		{"Small", record.Small, nil},
		{"LARGE", record.Large, nil},
		{"huge", 0, fault.InvalidCapacity},
	}
	for i, item := range tests {
		c, err := record.CapacityFromString(item.name)
		assert.Equal(t, item.err, err, "%d: error", i)
		assert.Equal(t, item.capacity, c, "%d: capacity", i)
	}
}

func TestWriteChunk(t *testing.T) {
	d := record.NewData(record.Small)
	assert.Equal(t, record.Small, d.Capacity(), "capacity")

	chunk := bytes.Repeat([]byte{0xab}, 500)
	assert.Nil(t, d.WriteChunk(0, chunk), "first chunk")
	assert.Nil(t, d.WriteChunk(500, chunk), "second chunk")
	assert.Equal(t, chunk, d.Buffer[500:1000], "second chunk content")
	assert.Equal(t, byte(0), d.Buffer[1000], "byte after chunk")

	// exactly fills the remaining space
	tail := bytes.Repeat([]byte{0xcd}, 100)
	assert.Nil(t, d.WriteChunk(int(record.Small)-100, tail), "exact fit")

	before := append([]byte{}, d.Buffer...)
	assert.Equal(t, fault.OutOfBounds, d.WriteChunk(int(record.Small)-99, tail), "one byte over")
	assert.Equal(t, fault.OutOfBounds, d.WriteChunk(-1, tail), "negative offset")
	assert.Equal(t, before, d.Buffer, "buffer changed by failed write")

	assert.Nil(t, d.WriteChunk(int(record.Small), []byte{}), "empty chunk at end")
}

func TestRead(t *testing.T) {
	d := record.NewData(record.Small)
	_ = d.WriteChunk(10, []byte("hello"))

	b, err := d.Read(10, 5)
	assert.Nil(t, err, "read")
	assert.Equal(t, []byte("hello"), b, "content")

	b[0] = 'j'
	assert.Equal(t, byte('h'), d.Buffer[10], "read returned an alias")

	_, err = d.Read(int(record.Small)-1, 2)
	assert.Equal(t, fault.ReadOutOfRange, err, "read past end")

	_, err = d.Read(-1, 2)
	assert.Equal(t, fault.ReadOutOfRange, err, "negative offset")
	assert.Equal(t, "read out of range", err.Error(), "wrong message")
}

func TestDataPack(t *testing.T) {
	d := record.NewData(record.Default)
	d.Stamp(owner, 1000)
	_ = d.WriteChunk(0, []byte{1, 2, 3})

	packed := d.Pack()
	assert.Equal(t, 40043, len(packed), "packed size")
	assert.Equal(t, owner[:], packed[8:40], "owner position")
	assert.Equal(t, []byte{0xe8, 0x03}, packed[40:42], "declared length")
	assert.Equal(t, byte(record.Unknown), packed[42], "content")
	assert.Equal(t, byte(13), packed[42], "unknown code")
	assert.Equal(t, []byte{1, 2, 3}, packed[43:46], "buffer")

	u, err := record.UnpackData(packed)
	assert.Nil(t, err, "unpack")
	assert.Equal(t, d, u, "unpacked record")
	assert.Equal(t, record.Default, u.Capacity(), "inferred capacity")

	_, err = record.UnpackData(packed[:20])
	assert.Equal(t, fault.RecordTooShort, err, "short")

	_, err = record.UnpackData(make([]byte, 40043))
	assert.Equal(t, fault.WrongDiscriminator, err, "zeroed account")

	assert.True(t, record.IsZeroed(make([]byte, 100)), "zeroed")
	assert.False(t, record.IsZeroed(packed), "stamped record reported zero")
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "PNG", record.PNG.String(), "png")
	assert.Equal(t, "UNKNOWN", record.Unknown.String(), "unknown")
	assert.False(t, record.ContentType(14).Valid(), "out of range")

	var c record.ContentType
	assert.Nil(t, c.UnmarshalText([]byte("heif")), "unmarshal")
	assert.Equal(t, record.HEIF, c, "heif")
	assert.Equal(t, fault.InvalidItem, c.UnmarshalText([]byte("mp4")), "unknown name")
}
