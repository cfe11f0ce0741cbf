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

// ExtendArguments - one chunk for an existing session
type ExtendArguments struct {
	Control account.Account `json:"control"`
	Owner   account.Account `json:"owner"`
	Data    account.Account `json:"data"`
	Chunk   []byte          `json:"chunk"`
}

// Extend - append a chunk at the current cursor
//
// records are only written when both the copy and the cursor advance
// succeed
func (p *Processor) Extend(accounts Accounts, signers account.Signers, arguments *ExtendArguments) (*Session, error) {

	control, data, err := loadSession(accounts, arguments.Control)
	if nil != err {
		return nil, err
	}

	expected, err := p.deriver.Create(derivation.ControlTags(control.SeedKey), control.Nonce)
	if nil != err {
		return nil, err
	}
	if expected != arguments.Control {
		return nil, fault.AddressMismatch
	}

	err = signers.Require(arguments.Owner, arguments.Data)
	if nil != err {
		p.log.Debugf("extend: control: %s  error: %s", arguments.Control, err)
		return nil, err
	}
	if arguments.Owner != control.Owner || arguments.Data != control.Data {
		p.log.Debugf("extend: control: %s  owner: %s  data: %s  do not match session", arguments.Control, arguments.Owner, arguments.Data)
		return nil, fault.UnauthorisedSigner
	}

	length := len(arguments.Chunk)
	if p.strict {
		if length > int(control.ChunkLimit) {
			return nil, fault.ChunkTooLarge
		}
		if int(control.Cursor)+length > int(control.DeclaredTotal) {
			return nil, fault.ExceedsDeclaredTotal
		}
	}

	err = data.WriteChunk(int(control.Cursor), arguments.Chunk)
	if nil != err {
		p.log.Debugf("extend: control: %s  cursor: %d  length: %d  error: %s", arguments.Control, control.Cursor, length, err)
		return nil, err
	}
	err = control.Advance(length)
	if nil != err {
		return nil, err
	}

	accounts.Put(control.Data, data.Pack())
	accounts.Put(arguments.Control, control.Pack())

	p.log.Debugf("extend: control: %s  cursor: %d/%d", arguments.Control, control.Cursor, control.DeclaredTotal)

	return newSession(arguments.Control, control, data), nil
}
