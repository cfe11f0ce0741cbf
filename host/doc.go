// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package host - execute signed envelopes against storage
//
// Envelopes run one at a time. All instructions of an envelope share a
// single storage transaction which is committed only if every
// instruction succeeds, so a failed envelope leaves no trace and can
// be corrected and resubmitted.
package host
