// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package gnomon - a strictly increasing timestamp
//
// the value is the count of nanoseconds since the unix epoch, but
// a value is never handed out twice in one process so that it can
// serve as an envelope nonce even when several envelopes are signed
// within the clock resolution.
package gnomon
