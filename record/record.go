// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/json"
	"math"
	"time"

	"github.com/bitmark-inc/regnetd/fault"
)

// User - a registration request, or its approved mirror
type User struct {
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	Phone       string     `json:"phoneNumber"`
	NationalId  string     `json:"nationalId"`
	IdentityRef string     `json:"userId"`
	Status      UserStatus `json:"status"`
	CoinBalance uint64     `json:"upgradCoins"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Property - a registration request, or the approved property
//
// for a request Owner is the display form name-nationalId and OwnerKey
// the approved user key; for an approved property Owner is the approved
// user key and OwnerKey is empty
type Property struct {
	PropertyId string         `json:"propertyId"`
	Owner      string         `json:"owner"`
	OwnerKey   string         `json:"ownerKey,omitempty"`
	Price      uint64         `json:"price"`
	Status     PropertyStatus `json:"status"`
	CreatedAt  time.Time      `json:"createdAt"`
	UpdatedAt  time.Time      `json:"updatedAt"`
}

// IsApproved - true if the user may hold coins and property
func (u *User) IsApproved() bool {
	return UserApproved == u.Status
}

// Credit - add coins, refusing to wrap around
func (u *User) Credit(amount uint64) error {
	if amount > math.MaxUint64-u.CoinBalance {
		return fault.ErrBalanceOverflow
	}
	u.CoinBalance += amount
	return nil
}

// Debit - remove coins, refusing to go below zero
func (u *User) Debit(amount uint64) error {
	if amount > u.CoinBalance {
		return fault.ErrInsufficientFunds
	}
	u.CoinBalance -= amount
	return nil
}

// Pack - encode a user record
func (u *User) Pack() ([]byte, error) {
	return json.Marshal(u)
}

// Pack - encode a property record
func (p *Property) Pack() ([]byte, error) {
	return json.Marshal(p)
}

// UnpackUser - decode a user record
func UnpackUser(buffer []byte) (*User, error) {
	u := &User{}
	err := unpack(buffer, u)
	if nil != err {
		return nil, err
	}
	// records written before approval tracking carry no status
	if "" == u.Status {
		u.Status = UserPending
	}
	if "" == u.Name || "" == u.NationalId || !u.Status.IsValid() {
		return nil, fault.ErrMalformedRecord
	}
	return u, nil
}

// UnpackProperty - decode a property record
func UnpackProperty(buffer []byte) (*Property, error) {
	p := &Property{}
	err := unpack(buffer, p)
	if nil != err {
		return nil, err
	}
	if "" == p.PropertyId || "" == p.Owner {
		return nil, fault.ErrMalformedRecord
	}
	return p, nil
}

func unpack(buffer []byte, v interface{}) error {
	if 0 == len(buffer) {
		return fault.ErrMalformedRecord
	}
	err := json.Unmarshal(buffer, v)
	if nil != err {
		return fault.ErrMalformedRecord
	}
	return nil
}
