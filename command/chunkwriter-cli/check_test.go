// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/chunkwriter/chain"
	"github.com/bitmark-inc/chunkwriter/command/chunkwriter-cli/configuration"
	"github.com/bitmark-inc/chunkwriter/fault"
	"github.com/bitmark-inc/chunkwriter/fixtures"
)

func TestCheckNetwork(t *testing.T) {
	tests := []struct {
		network  string
		expected string
		err      error
	}{
		{"", chain.Chunkwriter, nil},
		{"live", chain.Chunkwriter, nil},
		{"TEST", chain.Testing, nil},
		{chain.Testing, chain.Testing, nil},
		{"regression", chain.Local, nil},
		{chain.Local, chain.Local, nil},
		{"bitcoin", "", ErrInvalidNetwork},
	}

	for i, item := range tests {
		actual, err := checkNetwork(item.network)
		assert.Equal(t, item.err, err, "%d: wrong error", i)
		assert.Equal(t, item.expected, actual, "%d: wrong network", i)
	}
}

func TestCheckConnect(t *testing.T) {
	connections, err := checkConnect(" 127.0.0.1:2230, ,[::1]:2230,")
	assert.Nil(t, err, "wrong checkConnect")
	assert.Equal(t, []string{"127.0.0.1:2230", "[::1]:2230"}, connections, "wrong connections")

	_, err = checkConnect(" , ")
	assert.Equal(t, ErrRequiredConnect, err, "wrong blank error")

	_, err = checkConnect("127.0.0.1:2230,node.example.com:2230")
	assert.Equal(t, fault.InvalidIPAddress, err, "host name accepted")
}

func TestCheckRequiredStrings(t *testing.T) {
	_, err := checkName("")
	assert.Equal(t, ErrRequiredIdentity, err, "name")
	_, err = checkDescription("")
	assert.Equal(t, ErrRequiredDescription, err, "description")
	_, err = checkFileName("")
	assert.Equal(t, ErrRequiredFileName, err, "file name")

	s, err := checkName("owner")
	assert.Nil(t, err, "name error")
	assert.Equal(t, "owner", s, "wrong name")
}

func TestCheckSeed(t *testing.T) {
	_, err := checkSeed("", false)
	assert.Equal(t, fault.IncompatibleOptions, err, "neither seed nor new")

	_, err = checkSeed(fixtures.Owner.Seed(), true)
	assert.Equal(t, fault.IncompatibleOptions, err, "both seed and new")

	seed, err := checkSeed(fixtures.Owner.Seed(), false)
	assert.Nil(t, err, "existing seed")
	assert.Equal(t, fixtures.Owner.Seed(), seed, "wrong seed")

	seed, err = checkSeed("", true)
	assert.Nil(t, err, "new seed")
	assert.NotEqual(t, "", seed, "blank new seed")

	_, err = checkSeed("not-a-seed", false)
	assert.NotNil(t, err, "invalid seed accepted")
}

func TestCheckSeedKey(t *testing.T) {
	_, err := checkSeedKey("")
	assert.Equal(t, ErrRequiredSeedKey, err, "blank seed key")

	seedKey, err := checkSeedKey(fixtures.SeedKey.String())
	assert.Nil(t, err, "wrong checkSeedKey")
	assert.Equal(t, fixtures.SeedKey, seedKey, "wrong seed key")
}

func TestCheckAccount(t *testing.T) {
	config := &configuration.Configuration{
		Identities: make(map[string]configuration.Identity),
	}
	err := config.AddReceiveOnlyIdentity("other", "receive only", fixtures.Other.Account().String())
	assert.Nil(t, err, "wrong AddReceiveOnlyIdentity")

	a, err := checkAccount("other", config)
	assert.Nil(t, err, "identity name")
	assert.Equal(t, fixtures.Other.Account(), a, "wrong identity account")

	a, err = checkAccount(fixtures.Owner.Account().String(), config)
	assert.Nil(t, err, "base58 account")
	assert.Equal(t, fixtures.Owner.Account(), a, "wrong base58 account")

	_, err = checkAccount("nobody", config)
	assert.NotNil(t, err, "unknown name accepted")
}

func TestCheckChunkLimit(t *testing.T) {
	limit, err := checkChunkLimit(0)
	assert.Nil(t, err, "zero limit")
	assert.Equal(t, uint16(0), limit, "wrong zero limit")

	limit, err = checkChunkLimit(512)
	assert.Nil(t, err, "valid limit")
	assert.Equal(t, uint16(512), limit, "wrong limit")

	_, err = checkChunkLimit(-1)
	assert.Equal(t, fault.CountTooLarge, err, "negative limit")
	_, err = checkChunkLimit(70000)
	assert.Equal(t, fault.CountTooLarge, err, "limit too large")
}

func TestCheckFileExists(t *testing.T) {
	dir, err := ioutil.TempDir("", "chunkwriter-cli-check")
	assert.Nil(t, err, "TempDir")
	defer os.RemoveAll(dir)

	isDir, err := checkFileExists(dir)
	assert.Nil(t, err, "directory")
	assert.True(t, isDir, "directory not detected")

	fileName := filepath.Join(dir, "file")
	err = ioutil.WriteFile(fileName, []byte("x"), 0600)
	assert.Nil(t, err, "WriteFile")

	isDir, err = checkFileExists(fileName)
	assert.Nil(t, err, "file")
	assert.False(t, isDir, "file seen as directory")

	_, err = checkFileExists(filepath.Join(dir, "missing"))
	assert.True(t, os.IsNotExist(err), "missing file")
}
