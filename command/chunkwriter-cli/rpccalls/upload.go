// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/chunkwriter/account"
	"github.com/bitmark-inc/chunkwriter/fault"
	"github.com/bitmark-inc/chunkwriter/rpc/uploads"
	"github.com/bitmark-inc/chunkwriter/upload"
)

// Status - session view for a seed key
//
// returns fault.SessionNotFound when nothing was begun for the seed
func (client *Client) Status(seed account.Account) (*upload.Session, error) {

	arguments := uploads.StatusArguments{
		SeedKey: seed,
	}

	var reply uploads.StatusReply
	err := client.client.Call("Upload.Status", &arguments, &reply)
	if nil != err {
		if fault.SessionNotFound.Error() == err.Error() {
			return nil, fault.SessionNotFound
		}
		return nil, err
	}

	client.printJson("Status Reply", reply)

	return reply.Session, nil
}

// Read - bytes of an upload, split into calls of at most maximum bytes
func (client *Client) Read(seed account.Account, offset int, count int, maximum int) ([]byte, error) {

	data := make([]byte, 0, count)
	for count > 0 {
		n := count
		if n > maximum {
			n = maximum
		}

		arguments := uploads.ReadArguments{
			SeedKey: seed,
			Offset:  offset,
			Count:   n,
		}

		var reply uploads.ReadReply
		err := client.client.Call("Upload.Read", &arguments, &reply)
		if nil != err {
			return nil, err
		}
		if 0 == len(reply.Data) {
			break
		}

		data = append(data, reply.Data...)
		offset += len(reply.Data)
		count -= len(reply.Data)
	}
	return data, nil
}

// List - every session of an owner, following the paging cursor
func (client *Client) List(owner account.Account, pageSize int) ([]uploads.ListEntry, error) {

	arguments := uploads.ListArguments{
		Owner: owner,
		Count: pageSize,
	}

	sessions := make([]uploads.ListEntry, 0, pageSize)
	for {
		var reply uploads.ListReply
		err := client.client.Call("Upload.List", &arguments, &reply)
		if nil != err {
			return nil, err
		}
		sessions = append(sessions, reply.Sessions...)
		if nil == reply.Next {
			return sessions, nil
		}
		arguments.Start = reply.Next
	}
}
