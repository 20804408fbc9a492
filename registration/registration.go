// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registration - user and property registration requests
package registration

import (
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/regnetd/compositekey"
	"github.com/bitmark-inc/regnetd/fault"
	"github.com/bitmark-inc/regnetd/record"
	"github.com/bitmark-inc/regnetd/worldstate"
)

// Registration - the request side of the network
type Registration struct {
	log         *logger.L
	recharge    RechargeTable
	uniqueUsers bool
}

// New - create the registration workflow
//
// with uniqueUsers false a repeated user request replaces the earlier one
func New(log *logger.L, recharge RechargeTable, uniqueUsers bool) *Registration {
	return &Registration{
		log:         log,
		recharge:    recharge,
		uniqueUsers: uniqueUsers,
	}
}

// RequestUser - ask to join the network
func (r *Registration) RequestUser(ctx worldstate.Context, name string, email string, phone string, nationalId string) (*record.User, error) {
	if "" == name || "" == nationalId {
		return nil, fault.ErrMissingParameters
	}

	r.log.Debugf("request user: name: %q  national id: %q", name, nationalId)

	store := ctx.Store()
	key := compositekey.UserKey(name, nationalId)

	if r.uniqueUsers {
		buffer, err := worldstate.Get(store, key)
		if nil != err {
			return nil, err
		}
		if nil != buffer {
			return nil, fault.ErrUserAlreadyExists
		}
	}

	now := ctx.Timestamp()
	u := &record.User{
		Name:        name,
		Email:       email,
		Phone:       phone,
		NationalId:  nationalId,
		IdentityRef: ctx.Caller().ID(),
		Status:      record.UserPending,
		CoinBalance: 0,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// a replaced request keeps the approval and coins already granted
	if !r.uniqueUsers {
		err := r.keepApproval(store, u)
		if nil != err {
			return nil, err
		}
	}

	err := record.PutUser(store, key, u)
	if nil != err {
		return nil, err
	}

	r.log.Infof("user requested: %s", compositekey.OwnerRef(name, nationalId))
	return u, nil
}

// carry the approved mirror state into a replacement request and
// refresh the mirror's contact details
func (r *Registration) keepApproval(store worldstate.Store, u *record.User) error {
	approvedKey := compositekey.ApprovedUserKey(u.Name, u.NationalId)
	approved, err := record.GetUser(store, approvedKey)
	if nil != err {
		return err
	}
	if nil == approved {
		return nil
	}

	u.Status = record.UserApproved
	u.CoinBalance = approved.CoinBalance
	u.CreatedAt = approved.CreatedAt

	approved.Email = u.Email
	approved.Phone = u.Phone
	approved.IdentityRef = u.IdentityRef
	approved.UpdatedAt = u.UpdatedAt

	r.log.Infof("replaced request keeps approval: %s", compositekey.OwnerRef(u.Name, u.NationalId))
	return record.PutUser(store, approvedKey, approved)
}

// RechargeAccount - add the coins bought by a bank transaction
//
// the approved user mirror is credited by the same amount
func (r *Registration) RechargeAccount(ctx worldstate.Context, name string, nationalId string, bankTransactionId string) (*record.User, error) {
	amount, ok := r.recharge.Amount(bankTransactionId)
	if !ok {
		return nil, fault.ErrInvalidTransactionId
	}

	store := ctx.Store()
	key := compositekey.UserKey(name, nationalId)

	u, err := record.GetUser(store, key)
	if nil != err {
		return nil, err
	}
	if nil == u {
		return nil, fault.ErrUserNotFound
	}
	if !u.IsApproved() {
		return nil, fault.ErrUserNotApproved
	}

	approvedKey := compositekey.ApprovedUserKey(name, nationalId)
	approved, err := record.GetUser(store, approvedKey)
	if nil != err {
		return nil, err
	}

	now := ctx.Timestamp()

	err = u.Credit(amount)
	if nil != err {
		return nil, err
	}
	u.UpdatedAt = now

	if nil != approved {
		err = approved.Credit(amount)
		if nil != err {
			return nil, err
		}
		approved.UpdatedAt = now
	}

	err = record.PutUser(store, key, u)
	if nil != err {
		return nil, err
	}
	if nil != approved {
		err = record.PutUser(store, approvedKey, approved)
		if nil != err {
			return nil, err
		}
	}

	r.log.Infof("recharge: %s  transaction: %s  amount: %d  balance: %d", compositekey.OwnerRef(name, nationalId), bankTransactionId, amount, u.CoinBalance)
	return u, nil
}

// ViewUser - read a user request
func (r *Registration) ViewUser(ctx worldstate.Context, name string, nationalId string) (*record.User, error) {
	u, err := record.GetUser(ctx.Store(), compositekey.UserKey(name, nationalId))
	if nil != err {
		return nil, err
	}
	if nil == u {
		return nil, fault.ErrUserNotFound
	}
	return u, nil
}

// RequestPropertyRegistration - ask to register a property owned by an approved user
func (r *Registration) RequestPropertyRegistration(ctx worldstate.Context, propertyId string, price uint64, name string, nationalId string) (*record.Property, error) {
	if "" == propertyId {
		return nil, fault.ErrMissingParameters
	}
	if 0 == price {
		return nil, fault.ErrInvalidPrice
	}

	store := ctx.Store()

	u, err := record.GetUser(store, compositekey.UserKey(name, nationalId))
	if nil != err {
		return nil, err
	}
	if nil == u {
		return nil, fault.ErrUserNotFound
	}
	if !u.IsApproved() {
		return nil, fault.ErrUserNotApproved
	}

	// an approved property can only change hands by purchase
	approved, err := worldstate.Get(store, compositekey.ApprovedPropertyKey(propertyId))
	if nil != err {
		return nil, err
	}
	if nil != approved {
		return nil, fault.ErrPropertyAlreadyExists
	}

	now := ctx.Timestamp()
	p := &record.Property{
		PropertyId: propertyId,
		Owner:      compositekey.OwnerRef(name, nationalId),
		OwnerKey:   compositekey.ApprovedUserKey(name, nationalId),
		Price:      price,
		Status:     record.PropertyRequested,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = record.PutProperty(store, compositekey.PropertyKey(propertyId), p)
	if nil != err {
		return nil, err
	}

	r.log.Infof("property requested: %s  owner: %s  price: %d", propertyId, p.Owner, price)
	return p, nil
}

// ViewProperty - read a property request
func (r *Registration) ViewProperty(ctx worldstate.Context, propertyId string) (*record.Property, error) {
	p, err := record.GetProperty(ctx.Store(), compositekey.PropertyKey(propertyId))
	if nil != err {
		return nil, err
	}
	if nil == p {
		return nil, fault.ErrPropertyNotFound
	}
	return p, nil
}
