// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/chunkwriter/fault"
	"github.com/bitmark-inc/chunkwriter/storage"
)

// test database file
const databaseFileName = "test.leveldb"

func removeFiles() {
	os.RemoveAll(databaseFileName)
}

func setup(t *testing.T) {
	removeFiles()
	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}
}

func teardown(t *testing.T) {
	storage.Finalise()
	removeFiles()
}

func TestInitialiseTwice(t *testing.T) {
	setup(t)
	defer teardown(t)

	err := storage.Initialise(databaseFileName, storage.ReadWrite)
	assert.Equal(t, fault.AlreadyInitialised, err, "second initialise")
}

func TestTransactionCommit(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin")

	_, err = storage.NewDBTransaction()
	assert.Equal(t, fault.TransactionAlreadyInUse, err, "second begin")

	key := []byte("key-one")
	trx.Put(storage.Pool.TestData, key, []byte("data-one"))

	assert.Equal(t, []byte("data-one"), trx.Get(storage.Pool.TestData, key), "uncommitted read in transaction")
	assert.True(t, trx.Has(storage.Pool.TestData, key), "uncommitted has in transaction")
	assert.Nil(t, storage.Pool.TestData.Get(key), "uncommitted value visible outside transaction")
	assert.False(t, storage.Pool.TestData.Has(key), "uncommitted key visible outside transaction")

	err = trx.Commit()
	assert.Nil(t, err, "commit")
	assert.False(t, trx.InUse(), "in use after commit")

	assert.Equal(t, []byte("data-one"), storage.Pool.TestData.Get(key), "committed value")
	assert.True(t, storage.Pool.TestData.Has(key), "committed key")
}

func TestTransactionAbort(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, _ := storage.NewDBTransaction()
	trx.Put(storage.Pool.TestData, []byte("keep"), []byte("yes"))
	assert.Nil(t, trx.Commit(), "commit")

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin after commit")
	assert.Equal(t, 0, len(trx.Dump()), "batch not empty after commit")

	trx.Put(storage.Pool.TestData, []byte("drop"), []byte("no"))
	trx.Delete(storage.Pool.TestData, []byte("keep"))
	assert.NotEqual(t, 0, len(trx.Dump()), "pending writes not in batch")

	assert.False(t, trx.Has(storage.Pool.TestData, []byte("keep")), "deleted key in transaction")
	assert.Nil(t, trx.Get(storage.Pool.TestData, []byte("keep")), "deleted value in transaction")

	trx.Abort()
	assert.Equal(t, 0, len(trx.Dump()), "batch not empty after abort")

	assert.False(t, storage.Pool.TestData.Has([]byte("drop")), "aborted put persisted")
	assert.Equal(t, []byte("yes"), storage.Pool.TestData.Get([]byte("keep")), "aborted delete persisted")

	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err, "begin after abort")
	assert.False(t, trx.Has(storage.Pool.TestData, []byte("drop")), "aborted put still cached")
	trx.Abort()
}

func TestFetchCursor(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, _ := storage.NewDBTransaction()
	for _, k := range []string{"a1", "a2", "a3", "b1", "b2"} {
		trx.Put(storage.Pool.TestData, []byte(k), []byte("v-"+k))
	}
	trx.Put(storage.Pool.Sessions, []byte("a9"), []byte("other pool"))
	assert.Nil(t, trx.Commit(), "commit")

	cursor := storage.Pool.TestData.NewFetchCursor()
	first, err := cursor.Fetch(2)
	assert.Nil(t, err, "first fetch")
	assert.Equal(t, 2, len(first), "first fetch count")
	assert.Equal(t, []byte("a1"), first[0].Key, "first key")
	assert.Equal(t, []byte("v-a2"), first[1].Value, "second value")

	rest, err := cursor.Fetch(10)
	assert.Nil(t, err, "second fetch")
	assert.Equal(t, 3, len(rest), "second fetch count")
	assert.Equal(t, []byte("a3"), rest[0].Key, "resumed at wrong key")

	_, err = cursor.Fetch(0)
	assert.Equal(t, fault.InvalidCount, err, "zero count")

	keys := []string{}
	err = storage.Pool.TestData.NewFetchCursor().Prefix([]byte("b")).Map(func(key []byte, value []byte) error {
		keys = append(keys, string(key))
		return nil
	})
	assert.Nil(t, err, "map")
	assert.Equal(t, []string{"b1", "b2"}, keys, "prefix keys")

	count := 0
	err = storage.Pool.TestData.NewFetchCursor().Map(func(key []byte, value []byte) error {
		count += 1
		if 2 == count {
			return fault.InvalidItem
		}
		return nil
	})
	assert.Equal(t, fault.InvalidItem, err, "map error not returned")
	assert.Equal(t, 2, count, "map did not stop")
}
