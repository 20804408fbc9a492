// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package contract - run workflow operations against the local world state
//
// each operation runs inside one storage transaction: everything it
// writes is committed in a single batch if it succeeds and discarded
// if it fails; views never commit; only one operation runs at a time
package contract

import (
	"fmt"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/regnetd/counter"
	"github.com/bitmark-inc/regnetd/fault"
	"github.com/bitmark-inc/regnetd/identity"
	"github.com/bitmark-inc/regnetd/ledger"
	"github.com/bitmark-inc/regnetd/registrar"
	"github.com/bitmark-inc/regnetd/registration"
	"github.com/bitmark-inc/regnetd/storage"
	"github.com/bitmark-inc/regnetd/worldstate"
)

// Configuration - organisations and policy
type Configuration struct {
	UsersOrganisation     string
	RegistrarOrganisation string
	UniqueUsers           bool
}

// Host - serialises operations over the state pool
type Host struct {
	sync.Mutex

	log  *logger.L
	pool *storage.PoolHandle

	registration *registration.Registration
	ledger       *ledger.Ledger
	registrar    *registrar.Registrar

	clock func() time.Time

	// replaced in tests to inject store failures
	filter func(worldstate.Store) worldstate.Store

	committed counter.Counter
	aborted   counter.Counter
	viewed    counter.Counter
}

// Statistics - invocation counts
type Statistics struct {
	Committed uint64 `json:"committed"`
	Aborted   uint64 `json:"aborted"`
	Viewed    uint64 `json:"viewed"`
}

// New - create a host over a storage pool
func New(log *logger.L, pool *storage.PoolHandle, recharge registration.RechargeTable, conf Configuration) *Host {
	return &Host{
		log:          log,
		pool:         pool,
		registration: registration.New(logger.New("registration"), recharge, conf.UniqueUsers),
		ledger:       ledger.New(logger.New("ledger"), conf.UsersOrganisation),
		registrar:    registrar.New(logger.New("registrar"), conf.RegistrarOrganisation),
		clock:        time.Now,
		filter:       func(s worldstate.Store) worldstate.Store { return s },
	}
}

// Invoke - run one operation in its own transaction
func (h *Host) Invoke(caller identity.Caller, name string, operation func(worldstate.Context) error) error {
	h.Lock()
	defer h.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		h.log.Errorf("%s: begin transaction error: %s", name, err)
		return err
	}

	ctx := worldstate.NewContext(h.filter(storage.WorldState(trx, h.pool)), caller, h.clock())

	err = operation(ctx)
	if nil != err {
		trx.Abort()
		h.aborted.Increment()
		h.log.Warnf("%s: caller: %s  aborted: %s", name, caller.ID(), err)
		return err
	}

	err = trx.Commit()
	if nil != err {
		h.aborted.Increment()
		h.log.Errorf("%s: commit error: %s", name, err)
		return fmt.Errorf("%w: %s", fault.ErrStoreUnavailable, err)
	}

	h.committed.Increment()
	h.log.Debugf("%s: caller: %s  committed", name, caller.ID())
	return nil
}

// View - run a read only operation
//
// the transaction is always discarded so nothing the operation
// stages reaches the pool
func (h *Host) View(caller identity.Caller, name string, operation func(worldstate.Context) error) error {
	h.Lock()
	defer h.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		h.log.Errorf("%s: begin transaction error: %s", name, err)
		return err
	}
	defer trx.Abort()

	ctx := worldstate.NewContext(h.filter(storage.WorldState(trx, h.pool)), caller, h.clock())

	h.viewed.Increment()
	err = operation(ctx)
	if nil != err {
		h.log.Debugf("%s: caller: %s  error: %s", name, caller.ID(), err)
		return err
	}

	h.log.Debugf("%s: caller: %s  viewed", name, caller.ID())
	return nil
}

// Statistics - counts since start
func (h *Host) Statistics() Statistics {
	return Statistics{
		Committed: h.committed.Uint64(),
		Aborted:   h.aborted.Uint64(),
		Viewed:    h.viewed.Uint64(),
	}
}
