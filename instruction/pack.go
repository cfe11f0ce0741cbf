// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package instruction

// Pack - Allocate
func (a *Allocate) Pack() Packed {
	buffer := appendUint64(nil, uint64(AllocateTag))
	buffer = appendAccount(buffer, a.Payer)
	buffer = appendAccount(buffer, a.Address)
	return appendUint64(buffer, a.Space)
}

// Pack - Begin
func (b *Begin) Pack() Packed {
	buffer := appendUint64(nil, uint64(BeginTag))
	buffer = appendAccount(buffer, b.Owner)
	buffer = appendAccount(buffer, b.Data)
	buffer = appendAccount(buffer, b.SeedKey)
	buffer = appendUint64(buffer, uint64(b.DeclaredTotal))
	return appendUint64(buffer, uint64(b.ChunkLimit))
}

// Pack - Extend
func (e *Extend) Pack() Packed {
	buffer := appendUint64(nil, uint64(ExtendTag))
	buffer = appendAccount(buffer, e.Control)
	buffer = appendAccount(buffer, e.Owner)
	buffer = appendAccount(buffer, e.Data)
	return appendBytes(buffer, e.Chunk)
}

// Pack - Transfer
func (t *Transfer) Pack() Packed {
	buffer := appendUint64(nil, uint64(TransferTag))
	buffer = appendAccount(buffer, t.Owner)
	return appendAccount(buffer, t.NewOwner)
}
