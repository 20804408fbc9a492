// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/bitmark-inc/regnetd/worldstate"
)

// GetUser - read a user record
//
// returns nil, nil if absent
func GetUser(store worldstate.Store, key string) (*User, error) {
	buffer, err := worldstate.Get(store, key)
	if nil != err || nil == buffer {
		return nil, err
	}
	return UnpackUser(buffer)
}

// GetProperty - read a property record
//
// returns nil, nil if absent
func GetProperty(store worldstate.Store, key string) (*Property, error) {
	buffer, err := worldstate.Get(store, key)
	if nil != err || nil == buffer {
		return nil, err
	}
	return UnpackProperty(buffer)
}

// PutUser - write a user record
func PutUser(store worldstate.Store, key string, u *User) error {
	buffer, err := u.Pack()
	if nil != err {
		return err
	}
	return worldstate.Put(store, key, buffer)
}

// PutProperty - write a property record
func PutProperty(store worldstate.Store, key string, p *Property) error {
	buffer, err := p.Pack()
	if nil != err {
		return err
	}
	return worldstate.Put(store, key, buffer)
}

// PutReceipt - write a receipt record
func PutReceipt(store worldstate.Store, key string, r *PurchaseReceipt) error {
	buffer, err := r.Pack()
	if nil != err {
		return err
	}
	return worldstate.Put(store, key, buffer)
}
