// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/chunkwriter/account"
	"github.com/bitmark-inc/chunkwriter/storage"
	"github.com/bitmark-inc/chunkwriter/upload"
)

// accounts inside the open transaction
type transactionAccounts struct {
	trx storage.Transaction
}

func (a *transactionAccounts) Get(address account.Account) ([]byte, bool) {
	b := a.trx.Get(storage.Pool.Accounts, address[:])
	return b, nil != b
}

func (a *transactionAccounts) Has(address account.Account) bool {
	return a.trx.Has(storage.Pool.Accounts, address[:])
}

func (a *transactionAccounts) Put(address account.Account, data []byte) {
	a.trx.Put(storage.Pool.Accounts, address[:], data)
}

// read only accounts over committed data
type view struct {
	pool storage.Handle
}

// NewView - accounts for queries, writing is a programming error
func NewView(pool storage.Handle) upload.Accounts {
	return &view{
		pool: pool,
	}
}

func (v *view) Get(address account.Account) ([]byte, bool) {
	b := v.pool.Get(address[:])
	return b, nil != b
}

func (v *view) Has(address account.Account) bool {
	return v.pool.Has(address[:])
}

func (v *view) Put(address account.Account, data []byte) {
	logger.Panicf("host: write to read only account: %s", address)
}
