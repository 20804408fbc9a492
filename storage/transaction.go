// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/regnetd/fault"
)

// Transaction - a set of staged writes committed together
type Transaction interface {
	Abort()
	Begin() error
	Commit() error
	Delete(*PoolHandle, []byte)
	Get(*PoolHandle, []byte) ([]byte, error)
	Has(*PoolHandle, []byte) (bool, error)
	InUse() bool
	Put(*PoolHandle, []byte, []byte)
}

// TransactionData - transaction over the state database
type TransactionData struct {
	access Access
}

func newTransaction(access Access) Transaction {
	return &TransactionData{
		access: access,
	}
}

// Begin - start staging, fails if a transaction is already open
func (t *TransactionData) Begin() error {
	return t.access.Begin()
}

// Put - stage a write
func (t *TransactionData) Put(handle *PoolHandle, key []byte, value []byte) {
	handle.put(key, value)
}

// Delete - stage a removal
func (t *TransactionData) Delete(handle *PoolHandle, key []byte) {
	handle.remove(key)
}

// Get - read through the staged writes
func (t *TransactionData) Get(handle *PoolHandle, key []byte) ([]byte, error) {
	return handle.Get(key)
}

// Has - check through the staged writes
func (t *TransactionData) Has(handle *PoolHandle, key []byte) (bool, error) {
	return handle.Has(key)
}

// Commit - write everything staged in one batch
func (t *TransactionData) Commit() error {
	if !t.access.InUse() {
		return fault.ErrNotInitialised
	}
	return t.access.Commit()
}

// Abort - discard everything staged
func (t *TransactionData) Abort() {
	t.access.Abort()
}

// InUse - true between Begin and Commit/Abort
func (t *TransactionData) InUse() bool {
	return t.access.InUse()
}
