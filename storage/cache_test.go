// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCacheWriteThenRead(t *testing.T) {
	c := newCache()

	key := "test"
	expected := []byte{'a', 'b', 'c', 'd'}

	_, found := c.Get(key)
	assert.False(t, found, "key present before set")

	c.Set(dbPut, key, expected)
	actual, found := c.Get(key)
	assert.True(t, found, "key missing after set")
	assert.Equal(t, expected, actual, "wrong value")
}

func TestCacheDelete(t *testing.T) {
	c := newCache()

	c.Set(dbPut, "test", []byte{1})
	c.Set(dbDelete, "test", nil)

	value, found := c.Get("test")
	assert.True(t, found, "deleted key should be known to the cache")
	assert.Nil(t, value, "deleted key returned a value")
}

func TestCacheClear(t *testing.T) {
	c := newCache()

	c.Set(dbPut, "test", []byte{'a'})
	c.Clear()

	_, found := c.Get("test")
	assert.False(t, found, "key present after clear")
}
