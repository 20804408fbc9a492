// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registrar - approval of users and properties by the registration authority
package registrar

import (
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/regnetd/compositekey"
	"github.com/bitmark-inc/regnetd/fault"
	"github.com/bitmark-inc/regnetd/record"
	"github.com/bitmark-inc/regnetd/worldstate"
)

// Registrar - operations available to the registrar organisation
type Registrar struct {
	log          *logger.L
	organisation string
}

// New - create the registrar for callers of one organisation
func New(log *logger.L, registrarOrganisation string) *Registrar {
	return &Registrar{
		log:          log,
		organisation: registrarOrganisation,
	}
}

// ApproveUser - approve a pending user and create the approved user record
func (r *Registrar) ApproveUser(ctx worldstate.Context, name string, nationalId string) (*record.User, error) {
	if !ctx.Caller().BelongsTo(r.organisation) {
		r.log.Warnf("approve user rejected caller: %s", ctx.Caller().Organisation())
		return nil, fault.ErrUnauthorised
	}

	store := ctx.Store()
	key := compositekey.UserKey(name, nationalId)
	approvedKey := compositekey.ApprovedUserKey(name, nationalId)

	u, err := record.GetUser(store, key)
	if nil != err {
		return nil, err
	}
	if nil == u {
		return nil, fault.ErrUserNotFound
	}
	if u.IsApproved() {
		return nil, fault.ErrAlreadyApproved
	}

	// a replaced request for a user that was approved before
	existing, err := worldstate.Get(store, approvedKey)
	if nil != err {
		return nil, err
	}
	if nil != existing {
		return nil, fault.ErrAlreadyApproved
	}

	now := ctx.Timestamp()
	u.Status = record.UserApproved
	u.UpdatedAt = now

	approved := *u

	err = record.PutUser(store, key, u)
	if nil != err {
		return nil, err
	}
	err = record.PutUser(store, approvedKey, &approved)
	if nil != err {
		return nil, err
	}

	r.log.Infof("approved user: %s", compositekey.OwnerRef(name, nationalId))
	return &approved, nil
}

// ApproveProperty - approve a requested property whose owner is approved
func (r *Registrar) ApproveProperty(ctx worldstate.Context, propertyId string) (*record.Property, error) {
	if !ctx.Caller().BelongsTo(r.organisation) {
		r.log.Warnf("approve property rejected caller: %s", ctx.Caller().Organisation())
		return nil, fault.ErrUnauthorised
	}

	store := ctx.Store()
	key := compositekey.PropertyKey(propertyId)
	approvedKey := compositekey.ApprovedPropertyKey(propertyId)

	request, err := record.GetProperty(store, key)
	if nil != err {
		return nil, err
	}
	if nil == request {
		return nil, fault.ErrPropertyNotFound
	}
	if record.PropertyRequested != request.Status {
		return nil, fault.ErrAlreadyApproved
	}

	existing, err := worldstate.Get(store, approvedKey)
	if nil != err {
		return nil, err
	}
	if nil != existing {
		return nil, fault.ErrAlreadyApproved
	}

	if "" == request.OwnerKey {
		return nil, fault.ErrUserNotApproved
	}
	owner, err := record.GetUser(store, request.OwnerKey)
	if fault.IsErrProcess(err) {
		return nil, err
	}
	if nil != err || nil == owner || !owner.IsApproved() {
		return nil, fault.ErrUserNotApproved
	}

	now := ctx.Timestamp()
	approved := &record.Property{
		PropertyId: request.PropertyId,
		Owner:      request.OwnerKey,
		Price:      request.Price,
		Status:     record.PropertyRegistered,
		CreatedAt:  request.CreatedAt,
		UpdatedAt:  now,
	}

	request.Status = record.PropertyRegistered
	request.UpdatedAt = now

	err = record.PutProperty(store, key, request)
	if nil != err {
		return nil, err
	}
	err = record.PutProperty(store, approvedKey, approved)
	if nil != err {
		return nil, err
	}

	r.log.Infof("approved property: %s  owner: %s", propertyId, request.Owner)
	return approved, nil
}
