// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package upload

import (
	"github.com/bitmark-inc/chunkwriter/account"
	"github.com/bitmark-inc/chunkwriter/derivation"
	"github.com/bitmark-inc/chunkwriter/fault"
	"github.com/bitmark-inc/chunkwriter/record"
)

// BeginArguments - parameters of a new session
type BeginArguments struct {
	Owner         account.Account `json:"owner"`
	Data          account.Account `json:"data"`
	SeedKey       account.Account `json:"seedKey"`
	DeclaredTotal uint16          `json:"declaredTotal"`
	ChunkLimit    uint16          `json:"chunkLimit"`
}

// Begin - create the control record and stamp the data record
//
// both owner and data keys must have signed; the data account must be
// a freshly allocated zeroed account of the configured size
func (p *Processor) Begin(accounts Accounts, signers account.Signers, arguments *BeginArguments) (*Session, error) {

	err := signers.Require(arguments.Owner, arguments.Data)
	if nil != err {
		p.log.Debugf("begin: seed: %s  error: %s", arguments.SeedKey, err)
		return nil, err
	}

	address, nonce, err := p.deriver.Find(derivation.ControlTags(arguments.SeedKey))
	if nil != err {
		return nil, err
	}

	if accounts.Has(address) {
		p.log.Debugf("begin: seed: %s  control: %s  already exists", arguments.SeedKey, address)
		return nil, fault.DuplicateSession
	}

	dataBytes, ok := accounts.Get(arguments.Data)
	if !ok {
		return nil, fault.DataRecordNotAllocated
	}
	if p.capacity.DataSize() != len(dataBytes) {
		return nil, fault.WrongDataRecordSize
	}
	if !record.IsZeroed(dataBytes) {
		return nil, fault.DataRecordNotZeroed
	}

	control := record.NewControl(nonce, arguments.Owner, arguments.SeedKey, arguments.Data, arguments.DeclaredTotal, arguments.ChunkLimit)

	data := record.NewData(p.capacity)
	data.Stamp(arguments.Owner, arguments.DeclaredTotal)

	accounts.Put(address, control.Pack())
	accounts.Put(arguments.Data, data.Pack())

	p.log.Infof("begin: seed: %s  control: %s  data: %s  total: %d  limit: %d", arguments.SeedKey, address, arguments.Data, control.DeclaredTotal, control.ChunkLimit)

	return newSession(address, control, data), nil
}
