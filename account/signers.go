// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"github.com/bitmark-inc/chunkwriter/fault"
)

// Signers - the set of identities whose signatures were verified for
// the current operation
type Signers map[Account]struct{}

// NewSigners - make a signer set
func NewSigners(accounts ...Account) Signers {
	s := make(Signers, len(accounts))
	for _, a := range accounts {
		s[a] = struct{}{}
	}
	return s
}

// Has - check for a single signer
func (signers Signers) Has(account Account) bool {
	_, ok := signers[account]
	return ok
}

// Require - every listed account must have signed
func (signers Signers) Require(accounts ...Account) error {
	for _, a := range accounts {
		if !signers.Has(a) {
			return fault.UnauthorisedSigner
		}
	}
	return nil
}
