// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package host

import (
	"encoding/binary"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/chunkwriter/account"
	"github.com/bitmark-inc/chunkwriter/counter"
	"github.com/bitmark-inc/chunkwriter/fault"
	"github.com/bitmark-inc/chunkwriter/instruction"
	"github.com/bitmark-inc/chunkwriter/storage"
	"github.com/bitmark-inc/chunkwriter/upload"
)

// Runtime - serial executor of envelopes
type Runtime struct {
	sync.Mutex
	log       *logger.L
	processor *upload.Processor
	committed counter.Counter
	failed    counter.Counter
}

// Counts - envelope totals since start
type Counts struct {
	Committed uint64 `json:"committed"`
	Failed    uint64 `json:"failed"`
}

// New - create a runtime around an upload processor
func New(processor *upload.Processor) *Runtime {
	return &Runtime{
		log:       logger.New("host"),
		processor: processor,
	}
}

// Processor - the upload processor in use
func (r *Runtime) Processor() *upload.Processor {
	return r.processor
}

// Counts - envelope totals
func (r *Runtime) Counts() Counts {
	return Counts{
		Committed: r.committed.Uint64(),
		Failed:    r.failed.Uint64(),
	}
}

// Execute - verify and run one envelope atomically
func (r *Runtime) Execute(packed instruction.Packed) (instruction.ID, error) {

	id := packed.ID()

	envelope, signers, err := packed.UnpackEnvelope()
	if nil != err {
		r.log.Debugf("envelope: %s  unpack error: %s", id, err)
		r.failed.Increment()
		return id, err
	}

	r.Lock()
	defer r.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		r.log.Errorf("envelope: %s  transaction error: %s", id, err)
		r.failed.Increment()
		return id, err
	}

	err = r.run(trx, id, envelope, signers)
	if nil != err {
		r.log.Debugf("envelope: %s  aborted: %s  discarded batch: %d bytes", id, err, len(trx.Dump()))
		trx.Abort()
		r.failed.Increment()
		return id, err
	}

	timestamp := make([]byte, 8)
	binary.BigEndian.PutUint64(timestamp, uint64(time.Now().Unix()))
	trx.Put(storage.Pool.Envelopes, id[:], timestamp)

	err = trx.Commit()
	if nil != err {
		r.log.Criticalf("envelope: %s  commit error: %s", id, err)
		r.failed.Increment()
		return id, err
	}

	r.committed.Increment()
	r.log.Infof("envelope: %s  committed %d instruction(s)", id, len(envelope.Instructions))
	return id, nil
}

func (r *Runtime) run(trx storage.Transaction, id instruction.ID, envelope *instruction.Envelope, signers account.Signers) error {

	if trx.Has(storage.Pool.Envelopes, id[:]) {
		return fault.DuplicateEnvelope
	}

	accounts := &transactionAccounts{trx: trx}

	for i, item := range envelope.Instructions {
		r.log.Debugf("envelope: %s  instruction[%d]: %s", id, i, item.Tag())

		var err error
		switch ins := item.(type) {

		case *instruction.Allocate:
			err = allocate(accounts, signers, ins)

		case *instruction.Begin:
			arguments := &upload.BeginArguments{
				Owner:         ins.Owner,
				Data:          ins.Data,
				SeedKey:       ins.SeedKey,
				DeclaredTotal: ins.DeclaredTotal,
				ChunkLimit:    ins.ChunkLimit,
			}
			var session *upload.Session
			session, err = r.processor.Begin(accounts, signers, arguments)
			if nil == err {
				trx.Put(storage.Pool.Sessions, SessionKey(ins.Owner, session.Address), ins.SeedKey[:])
			}

		case *instruction.Extend:
			arguments := &upload.ExtendArguments{
				Control: ins.Control,
				Owner:   ins.Owner,
				Data:    ins.Data,
				Chunk:   ins.Chunk,
			}
			_, err = r.processor.Extend(accounts, signers, arguments)

		case *instruction.Transfer:
			arguments := &upload.TransferArguments{
				Owner:    ins.Owner,
				NewOwner: ins.NewOwner,
			}
			err = r.processor.Transfer(accounts, signers, arguments)

		default:
			err = fault.UnknownInstruction
		}

		if nil != err {
			return err
		}
	}
	return nil
}

// SessionKey - index key of a session under its owner
func SessionKey(owner account.Account, control account.Account) []byte {
	key := make([]byte, 0, 2*account.AccountLength)
	key = append(key, owner[:]...)
	return append(key, control[:]...)
}
