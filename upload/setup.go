// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package upload

import (
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/chunkwriter/account"
	"github.com/bitmark-inc/chunkwriter/derivation"
	"github.com/bitmark-inc/chunkwriter/record"
)

// Accounts - raw account storage visible to one transaction
type Accounts interface {
	Get(address account.Account) ([]byte, bool)
	Has(address account.Account) bool
	Put(address account.Account, data []byte)
}

// Configuration - protocol options
type Configuration struct {
	StrictSizeEnforcement bool   `gluamapper:"strict_size_enforcement" json:"strict_size_enforcement"`
	Capacity              string `gluamapper:"capacity" json:"capacity"`
}

// Processor - executes the upload operations
type Processor struct {
	log      *logger.L
	deriver  derivation.Deriver
	strict   bool
	capacity record.Capacity
}

// New - create a processor
func New(configuration *Configuration, deriver derivation.Deriver) (*Processor, error) {
	capacity, err := record.CapacityFromString(configuration.Capacity)
	if nil != err {
		return nil, err
	}

	log := logger.New("upload")
	log.Infof("capacity: %s (%d bytes)  strict: %t", capacity, capacity, configuration.StrictSizeEnforcement)

	return &Processor{
		log:      log,
		deriver:  deriver,
		strict:   configuration.StrictSizeEnforcement,
		capacity: capacity,
	}, nil
}

// Capacity - data buffer size required of new sessions
func (p *Processor) Capacity() record.Capacity {
	return p.capacity
}

// Deriver - the address deriver in use
func (p *Processor) Deriver() derivation.Deriver {
	return p.deriver
}
