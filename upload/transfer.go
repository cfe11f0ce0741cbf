// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package upload

import (
	"github.com/bitmark-inc/chunkwriter/account"
	"github.com/bitmark-inc/chunkwriter/fault"
)

// TransferArguments - change of owner request
type TransferArguments struct {
	Owner    account.Account `json:"owner"`
	NewOwner account.Account `json:"newOwner"`
}

// Transfer - reserved operation
//
// checks the owner signed and then always fails without touching any
// record
func (p *Processor) Transfer(accounts Accounts, signers account.Signers, arguments *TransferArguments) error {
	err := signers.Require(arguments.Owner)
	if nil != err {
		return err
	}
	p.log.Warnf("transfer: owner: %s  new owner: %s  not implemented", arguments.Owner, arguments.NewOwner)
	return fault.NotImplemented
}
