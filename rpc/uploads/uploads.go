// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package uploads

import (
	"encoding/hex"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/chunkwriter/account"
	"github.com/bitmark-inc/chunkwriter/fault"
	"github.com/bitmark-inc/chunkwriter/host"
	"github.com/bitmark-inc/chunkwriter/instruction"
	"github.com/bitmark-inc/chunkwriter/rpc/ratelimit"
	"github.com/bitmark-inc/chunkwriter/storage"
	"github.com/bitmark-inc/chunkwriter/upload"
)

const (
	rateLimitUpload = 200
	rateBurstUpload = 100

	maximumListCount = 100
)

// Upload - type for RPC calls
type Upload struct {
	Log       *logger.L
	Limiter   *rate.Limiter
	Processor *upload.Processor
	Accounts  storage.Handle
	Sessions  storage.Handle
}

// New - create the upload query service over committed data
func New(log *logger.L, processor *upload.Processor, accounts storage.Handle, sessions storage.Handle) *Upload {
	return &Upload{
		Log:       log,
		Limiter:   rate.NewLimiter(rateLimitUpload, rateBurstUpload),
		Processor: processor,
		Accounts:  accounts,
		Sessions:  sessions,
	}
}

// Bytes - binary data carried as hex in JSON
type Bytes []byte

// MarshalText - hex form
func (b Bytes) MarshalText() ([]byte, error) {
	return []byte(hex.EncodeToString(b)), nil
}

// UnmarshalText - from hex form
func (b *Bytes) UnmarshalText(s []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(s)))
	n, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	*b = buffer[:n]
	return nil
}

// ---

// StatusArguments - identify a session by its seed key
type StatusArguments struct {
	SeedKey account.Account `json:"seedKey"`
}

// StatusReply - current state of the session
type StatusReply struct {
	Session *upload.Session `json:"session"`
}

// Status - return the control and data header of a session
func (u *Upload) Status(arguments *StatusArguments, reply *StatusReply) error {

	if err := ratelimit.Limit(u.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.MissingParameters
	}

	session, err := u.Processor.Status(host.NewView(u.Accounts), arguments.SeedKey)
	if nil != err {
		return err
	}

	reply.Session = session
	return nil
}

// ---

// ReadArguments - a range of the data buffer
type ReadArguments struct {
	SeedKey account.Account `json:"seedKey"`
	Offset  int             `json:"offset"`
	Count   int             `json:"count"`
}

// ReadReply - bytes copied from the data buffer
type ReadReply struct {
	Offset int   `json:"offset"`
	Data   Bytes `json:"data"`
}

// Read - copy bytes out of the data buffer of a session
func (u *Upload) Read(arguments *ReadArguments, reply *ReadReply) error {

	if err := ratelimit.Limit(u.Limiter); nil != err {
		return err
	}

	if nil == arguments {
		return fault.MissingParameters
	}

	if arguments.Count <= 0 || arguments.Count > instruction.MaximumChunkLength {
		return fault.InvalidCount
	}

	data, err := u.Processor.Read(host.NewView(u.Accounts), arguments.SeedKey, arguments.Offset, arguments.Count)
	if nil != err {
		return err
	}

	reply.Offset = arguments.Offset
	reply.Data = data
	return nil
}

// ---

// ListArguments - sessions begun by an owner
type ListArguments struct {
	Owner account.Account  `json:"owner"`
	Start *account.Account `json:"start,omitempty"`
	Count int              `json:"count"`
}

// ListEntry - one session of an owner
type ListEntry struct {
	Control account.Account `json:"control"`
	SeedKey account.Account `json:"seedKey"`
}

// ListReply - a page of sessions, Next is the start of the following page
type ListReply struct {
	Sessions []ListEntry      `json:"sessions"`
	Next     *account.Account `json:"next,omitempty"`
}

// List - page through the sessions begun by an owner
func (u *Upload) List(arguments *ListArguments, reply *ListReply) error {

	if nil == arguments {
		return fault.MissingParameters
	}

	if err := ratelimit.LimitN(u.Limiter, arguments.Count, maximumListCount); nil != err {
		return err
	}

	cursor := u.Sessions.NewFetchCursor().Prefix(arguments.Owner[:])
	if nil != arguments.Start {
		// resume after the last control of the previous page
		cursor.Seek(append(host.SessionKey(arguments.Owner, *arguments.Start), 0x00))
	}

	elements, err := cursor.Fetch(arguments.Count)
	if nil != err {
		return err
	}

	reply.Sessions = make([]ListEntry, 0, len(elements))
	for _, e := range elements {
		control, err := account.FromBytes(e.Key[account.AccountLength:])
		if nil != err {
			u.Log.Errorf("session key: %x  error: %s", e.Key, err)
			return err
		}
		seed, err := account.FromBytes(e.Value)
		if nil != err {
			u.Log.Errorf("session key: %x  value: %x  error: %s", e.Key, e.Value, err)
			return err
		}
		reply.Sessions = append(reply.Sessions, ListEntry{
			Control: control,
			SeedKey: seed,
		})
	}

	if len(elements) == arguments.Count {
		next := reply.Sessions[len(reply.Sessions)-1].Control
		reply.Next = &next
	}
	return nil
}
