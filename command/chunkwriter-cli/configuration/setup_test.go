// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/chunkwriter/command/chunkwriter-cli/configuration"
	"github.com/bitmark-inc/chunkwriter/fault"
	"github.com/bitmark-inc/chunkwriter/fixtures"
)

const password = "correct horse battery staple"

func newConfiguration() *configuration.Configuration {
	return &configuration.Configuration{
		DefaultIdentity: "owner",
		Chain:           "local",
		Connections:     []string{"127.0.0.1:2230"},
		Identities:      make(map[string]configuration.Identity),
	}
}

func TestAddIdentityAndPrivate(t *testing.T) {
	config := newConfiguration()

	err := config.AddIdentity("owner", "upload owner", fixtures.Owner.Seed(), password)
	assert.Nil(t, err, "wrong AddIdentity")

	err = config.AddIdentity("owner", "again", fixtures.Owner.Seed(), password)
	assert.Equal(t, fault.IdentityNameAlreadyExists, err, "duplicate name")

	a, err := config.Account("owner")
	assert.Nil(t, err, "wrong Account")
	assert.Equal(t, fixtures.Owner.Account(), a, "wrong account")

	private, err := config.Private(password, "owner")
	assert.Nil(t, err, "wrong Private")
	assert.Equal(t, fixtures.Owner.Account(), private.PrivateKey.Account(), "wrong key")
	assert.Equal(t, fixtures.Owner.Seed(), private.Seed, "wrong seed")
	assert.Equal(t, "upload owner", private.Description, "wrong description")

	_, err = config.Private("not the password", "owner")
	assert.Equal(t, fault.WrongPassword, err, "wrong password")

	_, err = config.Private(password, "nobody")
	assert.Equal(t, fault.IdentityNameNotFound, err, "unknown name")
}

func TestAddReceiveOnlyIdentity(t *testing.T) {
	config := newConfiguration()

	err := config.AddReceiveOnlyIdentity("receiver", "public only", fixtures.Other.Account().String())
	assert.Nil(t, err, "wrong AddReceiveOnlyIdentity")

	_, err = config.Private(password, "receiver")
	assert.Equal(t, fault.NotPrivateKey, err, "receive only has no private key")

	err = config.AddReceiveOnlyIdentity("bad", "not an account", "xyz")
	assert.NotNil(t, err, "bad account accepted")

	info := config.Info()
	assert.Equal(t, 1, len(info), "wrong info count")
	assert.Equal(t, "receiver", info[0].Name, "wrong name")
	assert.False(t, info[0].Private, "wrong private flag")
}

func TestSaveAndLoad(t *testing.T) {
	dir, err := ioutil.TempDir("", "chunkwriter-cli")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	defer os.RemoveAll(dir)

	fileName := filepath.Join(dir, "local-chunkwriter-cli.json")

	_, err = configuration.Load(fileName)
	assert.Equal(t, fault.ConfigurationFileNotFound, err, "missing file")

	config := newConfiguration()
	err = config.AddIdentity("owner", "upload owner", fixtures.Owner.Seed(), password)
	assert.Nil(t, err, "wrong AddIdentity")

	err = configuration.Save(fileName, config)
	assert.Nil(t, err, "first save")
	err = configuration.Save(fileName, config)
	assert.Nil(t, err, "second save")

	_, err = os.Stat(fileName + ".bk")
	assert.Nil(t, err, "backup not kept")

	loaded, err := configuration.Load(fileName)
	assert.Nil(t, err, "wrong Load")
	assert.Equal(t, config, loaded, "wrong loaded configuration")

	private, err := loaded.Private(password, "owner")
	assert.Nil(t, err, "wrong Private after load")
	assert.Equal(t, fixtures.Owner.Account(), private.Account, "wrong account after load")
}
