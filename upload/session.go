// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package upload

import (
	"github.com/bitmark-inc/chunkwriter/account"
	"github.com/bitmark-inc/chunkwriter/fault"
	"github.com/bitmark-inc/chunkwriter/record"
)

// DataHeader - data record without its buffer
type DataHeader struct {
	Address        account.Account    `json:"address"`
	Owner          account.Account    `json:"owner"`
	DeclaredLength uint16             `json:"declaredLength"`
	Content        record.ContentType `json:"content"`
	Capacity       int                `json:"capacity"`
}

// Session - view of one upload
type Session struct {
	Address  account.Account `json:"address"`
	Control  *record.Control `json:"control"`
	Data     DataHeader      `json:"data"`
	Complete bool            `json:"complete"`
}

func newSession(address account.Account, control *record.Control, data *record.Data) *Session {
	return &Session{
		Address: address,
		Control: control,
		Data: DataHeader{
			Address:        control.Data,
			Owner:          data.Owner,
			DeclaredLength: data.DeclaredLength,
			Content:        data.Content,
			Capacity:       int(data.Capacity()),
		},
		Complete: control.IsComplete(),
	}
}

// load both records of a session
func loadSession(accounts Accounts, address account.Account) (*record.Control, *record.Data, error) {
	controlBytes, ok := accounts.Get(address)
	if !ok {
		return nil, nil, fault.SessionNotFound
	}
	control, err := record.UnpackControl(controlBytes)
	if nil != err {
		return nil, nil, err
	}

	dataBytes, ok := accounts.Get(control.Data)
	if !ok {
		return nil, nil, fault.DataRecordNotAllocated
	}
	data, err := record.UnpackData(dataBytes)
	if nil != err {
		return nil, nil, err
	}
	return control, data, nil
}
