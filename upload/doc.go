// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package upload - the chunked upload protocol
//
// A session is two records: a control record at an address derived
// from the seed key, and a caller allocated data record. Begin links
// them, Extend appends one chunk at the durable cursor and Transfer is
// reserved for a future change of ownership.
//
// All operations run against Accounts inside a single host
// transaction; on any error nothing is written and the caller must
// discard the transaction.
package upload
