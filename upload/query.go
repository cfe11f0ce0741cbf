// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package upload

import (
	"github.com/bitmark-inc/chunkwriter/account"
	"github.com/bitmark-inc/chunkwriter/derivation"
	"github.com/bitmark-inc/chunkwriter/fault"
)

// ControlAddress - where the control record for a seed lives
func ControlAddress(deriver derivation.Deriver, seed account.Account) (account.Account, error) {
	address, _, err := deriver.Find(derivation.ControlTags(seed))
	return address, err
}

// Status - current view of the session for a seed
func (p *Processor) Status(accounts Accounts, seed account.Account) (*Session, error) {
	address, err := ControlAddress(p.deriver, seed)
	if nil != err {
		return nil, err
	}
	control, data, err := loadSession(accounts, address)
	if nil != err {
		return nil, err
	}
	return newSession(address, control, data), nil
}

// Read - bytes from the data buffer of the session for a seed
//
// only committed bytes are returned: count is clipped at the cursor
// and a read starting at or after the cursor is empty
func (p *Processor) Read(accounts Accounts, seed account.Account, offset int, count int) ([]byte, error) {
	if offset < 0 || count < 0 {
		return nil, fault.ReadOutOfRange
	}
	address, err := ControlAddress(p.deriver, seed)
	if nil != err {
		return nil, err
	}
	control, data, err := loadSession(accounts, address)
	if nil != err {
		return nil, err
	}

	cursor := int(control.Cursor)
	if offset >= cursor {
		return []byte{}, nil
	}
	if count > cursor-offset {
		count = cursor - offset
	}
	return data.Read(offset, count)
}
