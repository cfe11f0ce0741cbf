// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"io"
	"math"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/chunkwriter/account"
	"github.com/bitmark-inc/chunkwriter/fault"
	"github.com/bitmark-inc/chunkwriter/instruction"
	"github.com/bitmark-inc/chunkwriter/record"
)

var dataKeyTag = []byte("chunkwriter data key")

// UploadData - parameters of one resumable upload
type UploadData struct {
	Owner         *account.PrivateKey
	SeedKey       account.Account
	DeclaredTotal uint16
	ChunkLimit    uint16
	ChunkSize     int // 0 uses the session chunk limit
	Capacity      record.Capacity
}

// UploadReply - JSON data to output after an upload pass
type UploadReply struct {
	Control       account.Account  `json:"control"`
	Data          account.Account  `json:"data"`
	SeedKey       account.Account  `json:"seedKey"`
	Begin         *instruction.ID  `json:"begin,omitempty"`
	Envelopes     []instruction.ID `json:"envelopes"`
	Cursor        int              `json:"cursor"`
	DeclaredTotal int              `json:"declaredTotal"`
	Complete      bool             `json:"complete"`
}

// DataKey - the data account key for an owner and seed key
//
// the same owner and seed always give the same key so an
// interrupted upload can be resumed from any machine holding the
// owner identity
func DataKey(owner *account.PrivateKey, seed account.Account) (*account.PrivateKey, error) {
	h := sha3.New256()
	h.Write(dataKeyTag)
	h.Write(owner.Bytes()[:32])
	h.Write(seed[:])
	return account.PrivateKeyFromSeed(h.Sum(nil))
}

// DeclaredTotal - check a length fits the session total field
func DeclaredTotal(length int64) (uint16, error) {
	if length < 0 || length > math.MaxUint16 {
		return 0, fault.CountTooLarge
	}
	return uint16(length), nil
}

// Begin - allocate the data account and begin the session in one envelope
func (client *Client) Begin(u *UploadData) (*SubmitReply, error) {

	dataKey, err := DataKey(u.Owner, u.SeedKey)
	if nil != err {
		return nil, err
	}

	owner := u.Owner.Account()
	data := dataKey.Account()

	instructions := []instruction.Instruction{
		&instruction.Allocate{
			Payer:   owner,
			Address: data,
			Space:   uint64(u.Capacity.DataSize()),
		},
		&instruction.Begin{
			Owner:         owner,
			Data:          data,
			SeedKey:       u.SeedKey,
			DeclaredTotal: u.DeclaredTotal,
			ChunkLimit:    u.ChunkLimit,
		},
	}

	return client.Submit(instructions, u.Owner, dataKey)
}

// Resume - begin if needed then extend from the durable cursor
//
// stops at the declared total or when source has no more bytes; a
// later call continues from wherever the ledger cursor is
func (client *Client) Resume(u *UploadData, source io.ReaderAt) (*UploadReply, error) {

	dataKey, err := DataKey(u.Owner, u.SeedKey)
	if nil != err {
		return nil, err
	}

	reply := &UploadReply{
		Data:      dataKey.Account(),
		SeedKey:   u.SeedKey,
		Envelopes: []instruction.ID{},
	}

	session, err := client.Status(u.SeedKey)
	if fault.SessionNotFound == err {
		begin, err := client.Begin(u)
		if nil != err {
			return nil, err
		}
		reply.Begin = &begin.ID

		session, err = client.Status(u.SeedKey)
		if nil != err {
			return nil, err
		}
	} else if nil != err {
		return nil, err
	}

	owner := u.Owner.Account()
	if owner != session.Control.Owner || reply.Data != session.Control.Data {
		return nil, fault.UnauthorisedSigner
	}

	reply.Control = session.Address
	cursor := int(session.Control.Cursor)
	total := int(session.Control.DeclaredTotal)
	reply.DeclaredTotal = total

	chunkSize := u.ChunkSize
	if chunkSize <= 0 {
		chunkSize = int(session.Control.ChunkLimit)
	}
	if chunkSize > instruction.MaximumChunkLength {
		chunkSize = instruction.MaximumChunkLength
	}

	buffer := make([]byte, chunkSize)

upload_loop:
	for cursor < total {
		n := total - cursor
		if n > chunkSize {
			n = chunkSize
		}

		n, err = source.ReadAt(buffer[:n], int64(cursor))
		if 0 == n {
			if nil == err || io.EOF == err {
				break upload_loop
			}
			return nil, err
		}
		if nil != err && io.EOF != err {
			return nil, err
		}

		extend := &instruction.Extend{
			Control: session.Address,
			Owner:   owner,
			Data:    reply.Data,
			Chunk:   buffer[:n],
		}

		submitted, err := client.Submit([]instruction.Instruction{extend}, u.Owner, dataKey)
		if nil != err {
			reply.Cursor = cursor
			return reply, err
		}

		reply.Envelopes = append(reply.Envelopes, submitted.ID)
		cursor += n
	}

	reply.Cursor = cursor
	reply.Complete = cursor == total
	return reply, nil
}

// Transfer - request an owner change
func (client *Client) Transfer(owner *account.PrivateKey, newOwner account.Account) (*SubmitReply, error) {
	transfer := &instruction.Transfer{
		Owner:    owner.Account(),
		NewOwner: newOwner,
	}
	return client.Submit([]instruction.Instruction{transfer}, owner)
}
