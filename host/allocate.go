// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host

import (
	"github.com/bitmark-inc/chunkwriter/account"
	"github.com/bitmark-inc/chunkwriter/fault"
	"github.com/bitmark-inc/chunkwriter/instruction"
	"github.com/bitmark-inc/chunkwriter/upload"
)

// create a zeroed account, the new address must co-sign
func allocate(accounts upload.Accounts, signers account.Signers, ins *instruction.Allocate) error {
	err := signers.Require(ins.Payer, ins.Address)
	if nil != err {
		return err
	}
	if 0 == ins.Space {
		return fault.InvalidCount
	}
	if ins.Space > instruction.MaximumAllocation {
		return fault.AllocationTooLarge
	}
	if accounts.Has(ins.Address) {
		return fault.AccountAlreadyExists
	}
	accounts.Put(ins.Address, make([]byte, ins.Space))
	return nil
}
