// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package worldstate - what a workflow operation runs against
//
// a Store is satisfied by a storage transaction in the daemon and by
// the Fabric chaincode stub, so operations do not know which host
// they run under
package worldstate

import (
	"fmt"
	"time"

	"github.com/bitmark-inc/regnetd/fault"
	"github.com/bitmark-inc/regnetd/identity"
)

//go:generate mockgen -source=worldstate.go -destination=mocks/store.go -package=mocks

// Store - single key get/put
//
// GetState returns nil, nil when the key is absent
type Store interface {
	GetState(key string) ([]byte, error)
	PutState(key string, value []byte) error
}

// Context - everything one invocation can see
type Context interface {
	Store() Store
	Caller() identity.Caller
	Timestamp() time.Time
}

type invocation struct {
	store     Store
	caller    identity.Caller
	timestamp time.Time
}

// NewContext - bundle a store, caller and invocation time
func NewContext(store Store, caller identity.Caller, timestamp time.Time) Context {
	return &invocation{
		store:     store,
		caller:    caller,
		timestamp: timestamp.UTC(),
	}
}

func (i *invocation) Store() Store            { return i.store }
func (i *invocation) Caller() identity.Caller { return i.caller }
func (i *invocation) Timestamp() time.Time    { return i.timestamp }

// Get - read a key, tagging engine errors as store failures
func Get(store Store, key string) ([]byte, error) {
	value, err := store.GetState(key)
	if nil != err {
		return nil, fmt.Errorf("%w: %s", fault.ErrStoreUnavailable, err)
	}
	return value, nil
}

// Put - write a key, tagging engine errors as store failures
func Put(store Store, key string, value []byte) error {
	err := store.PutState(key, value)
	if nil != err {
		return fmt.Errorf("%w: %s", fault.ErrStoreUnavailable, err)
	}
	return nil
}
