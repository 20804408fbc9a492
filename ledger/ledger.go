// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - status changes and purchase of approved properties
//
// this is the only package that changes the coin balance of an
// approved user or the owner and status of an approved property
package ledger

import (
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/regnetd/compositekey"
	"github.com/bitmark-inc/regnetd/fault"
	"github.com/bitmark-inc/regnetd/record"
	"github.com/bitmark-inc/regnetd/worldstate"
)

// Ledger - operations available to the users organisation
type Ledger struct {
	log          *logger.L
	organisation string
}

// Purchase - the records changed by a purchase
type Purchase struct {
	OldOwner *record.User            `json:"oldOwner"`
	NewOwner *record.User            `json:"newOwner"`
	Property *record.Property        `json:"property"`
	Receipt  *record.PurchaseReceipt `json:"receipt"`
}

// New - create the ledger workflow for callers of one organisation
func New(log *logger.L, usersOrganisation string) *Ledger {
	return &Ledger{
		log:          log,
		organisation: usersOrganisation,
	}
}

// UpdateProperty - owner lists a property for sale or withdraws it
func (l *Ledger) UpdateProperty(ctx worldstate.Context, propertyId string, name string, nationalId string, status string) (*record.Property, error) {
	if !ctx.Caller().BelongsTo(l.organisation) {
		l.log.Warnf("update property: %s  rejected caller: %s", propertyId, ctx.Caller().Organisation())
		return nil, fault.ErrUnauthorised
	}

	store := ctx.Store()
	propertyKey := compositekey.ApprovedPropertyKey(propertyId)

	p, err := l.approvedProperty(store, propertyKey)
	if nil != err {
		return nil, err
	}

	if p.Owner != compositekey.ApprovedUserKey(name, nationalId) {
		return nil, fault.ErrNotOwner
	}

	newStatus := record.PropertyStatus(status)
	if !newStatus.IsSettableByOwner() {
		return nil, fault.ErrInvalidStatus
	}

	p.Status = newStatus
	p.UpdatedAt = ctx.Timestamp()

	err = record.PutProperty(store, propertyKey, p)
	if nil != err {
		return nil, err
	}

	l.log.Infof("property: %s  status: %s", propertyId, newStatus)
	return p, nil
}

// PurchaseProperty - move an on sale property to a new owner
//
// all checks are made before anything is written; the writes then go
// to the store in the order: seller, buyer, property, user mirrors, receipt
func (l *Ledger) PurchaseProperty(ctx worldstate.Context, propertyId string, name string, nationalId string) (*Purchase, error) {
	if !ctx.Caller().BelongsTo(l.organisation) {
		l.log.Warnf("purchase property: %s  rejected caller: %s", propertyId, ctx.Caller().Organisation())
		return nil, fault.ErrUnauthorised
	}

	store := ctx.Store()
	propertyKey := compositekey.ApprovedPropertyKey(propertyId)

	p, err := l.approvedProperty(store, propertyKey)
	if nil != err {
		return nil, err
	}

	if record.PropertyOnSale != p.Status {
		return nil, fault.ErrNotForSale
	}

	buyerKey := compositekey.ApprovedUserKey(name, nationalId)
	buyer, err := record.GetUser(store, buyerKey)
	if fault.IsErrProcess(err) {
		return nil, err
	}
	if nil != err || nil == buyer || !buyer.IsApproved() {
		return nil, fault.ErrBuyerNotApprovedOrNotFound
	}

	if buyer.CoinBalance < p.Price {
		return nil, fault.ErrInsufficientFunds
	}

	sellerKey := p.Owner
	seller, err := record.GetUser(store, sellerKey)
	if fault.IsErrProcess(err) {
		return nil, err
	}
	if nil != err || nil == seller {
		return nil, fault.ErrSellerNotFound
	}

	if buyerKey == sellerKey {
		return nil, fault.ErrSelfPurchase
	}

	now := ctx.Timestamp()

	err = seller.Credit(p.Price)
	if nil != err {
		return nil, err
	}
	err = buyer.Debit(p.Price)
	if nil != err {
		return nil, err
	}
	seller.UpdatedAt = now
	buyer.UpdatedAt = now

	p.Owner = buyerKey
	p.Status = record.PropertyRegistered
	p.UpdatedAt = now

	receipt, err := record.NewReceipt(propertyId, sellerKey, buyerKey, p.Price, seller.CoinBalance, buyer.CoinBalance, now)
	if nil != err {
		return nil, err
	}

	err = record.PutUser(store, sellerKey, seller)
	if nil != err {
		return nil, err
	}
	err = record.PutUser(store, buyerKey, buyer)
	if nil != err {
		return nil, err
	}
	err = record.PutProperty(store, propertyKey, p)
	if nil != err {
		return nil, err
	}

	err = mirrorBalance(store, sellerKey, seller.CoinBalance, now)
	if nil != err {
		return nil, err
	}
	err = mirrorBalance(store, buyerKey, buyer.CoinBalance, now)
	if nil != err {
		return nil, err
	}

	err = record.PutReceipt(store, compositekey.ReceiptKey(now, propertyId), receipt)
	if nil != err {
		return nil, err
	}

	l.log.Infof("purchase: %s  price: %d  receipt: %s", propertyId, p.Price, receipt.Id)

	return &Purchase{
		OldOwner: seller,
		NewOwner: buyer,
		Property: p,
		Receipt:  receipt,
	}, nil
}

// ViewApprovedProperty - read an approved property
func (l *Ledger) ViewApprovedProperty(ctx worldstate.Context, propertyId string) (*record.Property, error) {
	p, err := record.GetProperty(ctx.Store(), compositekey.ApprovedPropertyKey(propertyId))
	if nil != err {
		return nil, err
	}
	if nil == p {
		return nil, fault.ErrPropertyNotFound
	}
	return p, nil
}

// ViewApprovedUser - read the authoritative balance of an approved user
func (l *Ledger) ViewApprovedUser(ctx worldstate.Context, name string, nationalId string) (*record.User, error) {
	u, err := record.GetUser(ctx.Store(), compositekey.ApprovedUserKey(name, nationalId))
	if nil != err {
		return nil, err
	}
	if nil == u {
		return nil, fault.ErrUserNotFound
	}
	return u, nil
}

// absent and unreadable approved properties are treated alike
func (l *Ledger) approvedProperty(store worldstate.Store, key string) (*record.Property, error) {
	p, err := record.GetProperty(store, key)
	if fault.IsErrProcess(err) {
		return nil, err
	}
	if nil != err || nil == p {
		l.log.Debugf("approved property: %q  error: %v", key, err)
		return nil, fault.ErrPropertyNotFoundOrUnapproved
	}
	return p, nil
}

// copy a balance from an approved user to the matching user request
func mirrorBalance(store worldstate.Store, approvedKey string, balance uint64, now time.Time) error {
	namespace, parts, err := compositekey.Split(approvedKey)
	if nil != err || compositekey.ApprovedUser != namespace || 2 != len(parts) {
		return nil
	}

	key := compositekey.UserKey(parts[0], parts[1])
	u, err := record.GetUser(store, key)
	if nil != err {
		return err
	}
	if nil == u {
		return nil
	}
	u.CoinBalance = balance
	u.UpdatedAt = now
	return record.PutUser(store, key, u)
}
