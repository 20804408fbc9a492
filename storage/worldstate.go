// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/regnetd/fault"
	"github.com/bitmark-inc/regnetd/worldstate"
)

type worldState struct {
	trx  Transaction
	pool *PoolHandle
}

// WorldState - present a pool inside an open transaction as a key/value store
func WorldState(trx Transaction, pool *PoolHandle) worldstate.Store {
	return &worldState{
		trx:  trx,
		pool: pool,
	}
}

// GetState - nil, nil when the key is absent
func (w *worldState) GetState(key string) ([]byte, error) {
	return w.trx.Get(w.pool, []byte(key))
}

// PutState - stage a write; it becomes visible to others on commit
func (w *worldState) PutState(key string, value []byte) error {
	if !w.trx.InUse() {
		return fault.ErrNotInitialised
	}
	w.trx.Put(w.pool, []byte(key), value)
	return nil
}
