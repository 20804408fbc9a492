// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/regnetd/fault"
	"github.com/bitmark-inc/regnetd/storage"
)

func TestBegin(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "first Begin should not return any error")
	assert.True(t, trx.InUse(), "transaction not in use after Begin")

	_, err = storage.NewDBTransaction()
	assert.Equal(t, fault.ErrTransactionInUse, err, "second Begin should fail")

	trx.Abort()
	assert.False(t, trx.InUse(), "transaction still in use after Abort")

	trx, err = storage.NewDBTransaction()
	assert.Nil(t, err, "Begin after Abort should succeed")
	trx.Abort()
}

func TestReadYourWrites(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin error")

	trx.Put(p, []byte("k"), []byte("v1"))

	value, err := trx.Get(p, []byte("k"))
	assert.Nil(t, err, "get error")
	assert.Equal(t, []byte("v1"), value, "staged write not visible in transaction")

	trx.Put(p, []byte("k"), []byte("v2"))
	value, _ = trx.Get(p, []byte("k"))
	assert.Equal(t, []byte("v2"), value, "second staged write not visible")

	err = trx.Commit()
	assert.Nil(t, err, "commit error")

	value, err = p.Get([]byte("k"))
	assert.Nil(t, err, "get error")
	assert.Equal(t, []byte("v2"), value, "committed value wrong")
}

func TestAbortDiscardsEverything(t *testing.T) {
	setup(t)
	defer teardown(t)

	p := storage.Pool.TestData
	putElements(t, p, []stringElement{{"a", "old-a"}})

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin error")

	trx.Put(p, []byte("a"), []byte("new-a"))
	trx.Put(p, []byte("b"), []byte("new-b"))
	trx.Delete(p, []byte("a"))

	found, _ := trx.Has(p, []byte("a"))
	assert.False(t, found, "staged delete still visible")

	trx.Abort()

	value, err := p.Get([]byte("a"))
	assert.Nil(t, err, "get error")
	assert.Equal(t, []byte("old-a"), value, "aborted write visible")

	value, err = p.Get([]byte("b"))
	assert.Nil(t, err, "get error")
	assert.Nil(t, value, "aborted write visible")
}

func TestCommitWithoutBegin(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin error")
	assert.Nil(t, trx.Commit(), "commit error")

	assert.Equal(t, fault.ErrNotInitialised, trx.Commit(), "commit of closed transaction succeeded")
}

func TestWorldState(t *testing.T) {
	setup(t)
	defer teardown(t)

	trx, err := storage.NewDBTransaction()
	assert.Nil(t, err, "begin error")

	ws := storage.WorldState(trx, storage.Pool.State)

	value, err := ws.GetState("absent")
	assert.Nil(t, err, "get error")
	assert.Nil(t, value, "absent key has a value")

	err = ws.PutState("present", []byte("value"))
	assert.Nil(t, err, "put error")

	value, _ = ws.GetState("present")
	assert.Equal(t, []byte("value"), value, "staged value not visible")

	// other pools are separate
	value, _ = storage.Pool.TestData.Get([]byte("present"))
	assert.Nil(t, value, "pools not separate")

	assert.Nil(t, trx.Commit(), "commit error")

	err = ws.PutState("late", []byte("value"))
	assert.Equal(t, fault.ErrNotInitialised, err, "put after commit accepted")
}

func TestInitialiseTwice(t *testing.T) {
	setup(t)
	defer teardown(t)

	err := storage.Initialise(testingDirName+"/"+databaseFileName, storage.ReadWrite)
	assert.Equal(t, fault.ErrAlreadyInitialised, err, "second initialise succeeded")
}
