// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package gnomon

import (
	"encoding/binary"
	"encoding/hex"
	"sync"
	"time"

	"github.com/bitmark-inc/chunkwriter/fault"
)

const totalSize = 8

// Cursor - nanoseconds since the unix epoch
type Cursor uint64

// prevents duplicate values
var localData struct {
	sync.Mutex
	current Cursor
}

// NewCursor - the current time, or one more than the last value
// if the clock has not advanced
func NewCursor() Cursor {

	cursor := Cursor(time.Now().UnixNano())

	localData.Lock()
	defer localData.Unlock()

	if cursor <= localData.current {
		cursor = localData.current + 1
	}
	localData.current = cursor
	return cursor
}

// Time - the cursor as a UTC time
func (cursor Cursor) Time() time.Time {
	return time.Unix(0, int64(cursor)).UTC()
}

// String - big-endian hex
func (cursor Cursor) String() string {
	b, _ := cursor.MarshalBinary()
	return hex.EncodeToString(b)
}

// MarshalBinary - big-endian so that database keys sort by time
func (cursor Cursor) MarshalBinary() ([]byte, error) {
	b := make([]byte, totalSize)
	binary.BigEndian.PutUint64(b, uint64(cursor))
	return b, nil
}

// UnmarshalBinary - from big-endian bytes
func (cursor *Cursor) UnmarshalBinary(s []byte) error {
	if totalSize != len(s) {
		return fault.InvalidItem
	}
	*cursor = Cursor(binary.BigEndian.Uint64(s))
	return nil
}

// MarshalText - hex text
func (cursor Cursor) MarshalText() ([]byte, error) {
	return []byte(cursor.String()), nil
}

// UnmarshalText - from hex text
func (cursor *Cursor) UnmarshalText(s []byte) error {
	if hex.EncodedLen(totalSize) != len(s) {
		return fault.InvalidItem
	}
	b := make([]byte, totalSize)
	_, err := hex.Decode(b, s)
	if nil != err {
		return err
	}
	return cursor.UnmarshalBinary(b)
}
