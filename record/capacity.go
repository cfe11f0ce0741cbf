// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"strings"

	"github.com/bitmark-inc/chunkwriter/fault"
)

// Capacity - size of the data buffer in bytes
type Capacity int

// capacity tiers
const (
	Small   Capacity = 10000
	Default Capacity = 40000
	Large   Capacity = 100000
)

// CapacityFromString - select a tier by name, empty selects the default
func CapacityFromString(s string) (Capacity, error) {
	switch strings.ToLower(s) {
	case "small":
		return Small, nil
	case "", "default":
		return Default, nil
	case "large":
		return Large, nil
	default:
		return 0, fault.InvalidCapacity
	}
}

// DataSize - bytes needed for a data record holding this capacity
func (c Capacity) DataSize() int {
	return dataHeaderSize + int(c)
}

// String - tier name
func (c Capacity) String() string {
	switch c {
	case Small:
		return "small"
	case Default:
		return "default"
	case Large:
		return "large"
	default:
		return "*custom*"
	}
}
