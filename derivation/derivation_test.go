// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package derivation

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/chunkwriter/account"
	"github.com/bitmark-inc/chunkwriter/fault"
)

var (
	testProgram = account.Account{0x11, 0x22, 0x33}
	testSeed    = account.Account{0xaa, 0xbb, 0xcc}
)

func TestFindIsDeterministic(t *testing.T) {
	d := New(testProgram)

	a1, n1, err := d.Find(ControlTags(testSeed))
	assert.Nil(t, err, "find")
	a2, n2, err := d.Find(ControlTags(testSeed))
	assert.Nil(t, err, "second find")

	assert.Equal(t, a1, a2, "address differs")
	assert.Equal(t, n1, n2, "nonce differs")
	assert.False(t, onCurve(a1[:]), "derived address is on the curve")

	a3, err := d.Create(ControlTags(testSeed), n1)
	assert.Nil(t, err, "create with found nonce")
	assert.Equal(t, a1, a3, "create disagrees with find")
}

func TestFindReturnsHighestNonce(t *testing.T) {
	d := New(testProgram)
	tags := ControlTags(testSeed)

	_, nonce, err := d.Find(tags)
	assert.Nil(t, err, "find")

	for n := 255; n > int(nonce); n -= 1 {
		_, err := d.Create(tags, uint8(n))
		assert.Equal(t, fault.AddressDerivationFailure, err, "nonce %d should be on the curve", n)
	}
}

func TestDistinctInputs(t *testing.T) {
	d := New(testProgram)
	a1, _, _ := d.Find(ControlTags(testSeed))

	a2, _, _ := d.Find(ControlTags(account.Account{0xaa, 0xbb, 0xcd}))
	assert.NotEqual(t, a1, a2, "different seeds share an address")

	a3, _, _ := New(account.Account{0x11, 0x22, 0x34}).Find(ControlTags(testSeed))
	assert.NotEqual(t, a1, a3, "different programs share an address")
}

func TestInvalidSeeds(t *testing.T) {
	d := New(testProgram)

	_, err := d.Create([][]byte{bytes.Repeat([]byte{1}, MaximumTagLength+1)}, 255)
	assert.Equal(t, fault.InvalidSeeds, err, "long tag accepted")

	tooMany := make([][]byte, MaximumTags+1)
	for i := range tooMany {
		tooMany[i] = []byte{byte(i)}
	}
	_, _, err = d.Find(tooMany)
	assert.Equal(t, fault.InvalidSeeds, err, "too many tags accepted")

	_, _, err = d.Find(tooMany[:MaximumTags])
	assert.Nil(t, err, "maximum tags rejected")
}

func TestOnCurve(t *testing.T) {
	key, _ := account.PrivateKeyFromSeed(bytes.Repeat([]byte{7}, 32))
	a := key.Account()
	assert.True(t, onCurve(a[:]), "public key reported off curve")
}
