// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/chunkwriter/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/var/lib/data", util.EnsureAbsolute("/var/lib", "data"), "relative")
	assert.Equal(t, "/etc/x.conf", util.EnsureAbsolute("/var/lib", "/etc/x.conf"), "absolute")
	assert.Equal(t, "/var/x", util.EnsureAbsolute("/var/lib", "../x"), "parent")
}

func TestEnsureFileExists(t *testing.T) {
	dir, err := ioutil.TempDir("", "util-paths")
	assert.Nil(t, err, "TempDir")
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "present")
	assert.False(t, util.EnsureFileExists(name), "file before create")

	err = ioutil.WriteFile(name, []byte{}, 0600)
	assert.Nil(t, err, "WriteFile")
	assert.True(t, util.EnsureFileExists(name), "file after create")
}
