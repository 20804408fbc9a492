// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"github.com/bitmark-inc/regnetd/identity"
	"github.com/bitmark-inc/regnetd/ledger"
	"github.com/bitmark-inc/regnetd/record"
	"github.com/bitmark-inc/regnetd/worldstate"
)

// RequestUser - see registration.RequestUser
func (h *Host) RequestUser(caller identity.Caller, name string, email string, phone string, nationalId string) (*record.User, error) {
	var u *record.User
	err := h.Invoke(caller, "requestUser", func(ctx worldstate.Context) (err error) {
		u, err = h.registration.RequestUser(ctx, name, email, phone, nationalId)
		return
	})
	return u, err
}

// RechargeAccount - see registration.RechargeAccount
func (h *Host) RechargeAccount(caller identity.Caller, name string, nationalId string, bankTransactionId string) (*record.User, error) {
	var u *record.User
	err := h.Invoke(caller, "rechargeAccount", func(ctx worldstate.Context) (err error) {
		u, err = h.registration.RechargeAccount(ctx, name, nationalId, bankTransactionId)
		return
	})
	return u, err
}

// ViewUser - see registration.ViewUser
func (h *Host) ViewUser(caller identity.Caller, name string, nationalId string) (*record.User, error) {
	var u *record.User
	err := h.View(caller, "viewUser", func(ctx worldstate.Context) (err error) {
		u, err = h.registration.ViewUser(ctx, name, nationalId)
		return
	})
	return u, err
}

// RequestPropertyRegistration - see registration.RequestPropertyRegistration
func (h *Host) RequestPropertyRegistration(caller identity.Caller, propertyId string, price uint64, name string, nationalId string) (*record.Property, error) {
	var p *record.Property
	err := h.Invoke(caller, "requestPropertyRegistration", func(ctx worldstate.Context) (err error) {
		p, err = h.registration.RequestPropertyRegistration(ctx, propertyId, price, name, nationalId)
		return
	})
	return p, err
}

// ViewProperty - see registration.ViewProperty
func (h *Host) ViewProperty(caller identity.Caller, propertyId string) (*record.Property, error) {
	var p *record.Property
	err := h.View(caller, "viewProperty", func(ctx worldstate.Context) (err error) {
		p, err = h.registration.ViewProperty(ctx, propertyId)
		return
	})
	return p, err
}

// ViewApprovedProperty - see ledger.ViewApprovedProperty
func (h *Host) ViewApprovedProperty(caller identity.Caller, propertyId string) (*record.Property, error) {
	var p *record.Property
	err := h.View(caller, "viewApprovedProperty", func(ctx worldstate.Context) (err error) {
		p, err = h.ledger.ViewApprovedProperty(ctx, propertyId)
		return
	})
	return p, err
}

// ViewApprovedUser - see ledger.ViewApprovedUser
func (h *Host) ViewApprovedUser(caller identity.Caller, name string, nationalId string) (*record.User, error) {
	var u *record.User
	err := h.View(caller, "viewApprovedUser", func(ctx worldstate.Context) (err error) {
		u, err = h.ledger.ViewApprovedUser(ctx, name, nationalId)
		return
	})
	return u, err
}

// UpdateProperty - see ledger.UpdateProperty
func (h *Host) UpdateProperty(caller identity.Caller, propertyId string, name string, nationalId string, status string) (*record.Property, error) {
	var p *record.Property
	err := h.Invoke(caller, "updateProperty", func(ctx worldstate.Context) (err error) {
		p, err = h.ledger.UpdateProperty(ctx, propertyId, name, nationalId, status)
		return
	})
	return p, err
}

// PurchaseProperty - see ledger.PurchaseProperty
func (h *Host) PurchaseProperty(caller identity.Caller, propertyId string, name string, nationalId string) (*ledger.Purchase, error) {
	var purchase *ledger.Purchase
	err := h.Invoke(caller, "purchaseProperty", func(ctx worldstate.Context) (err error) {
		purchase, err = h.ledger.PurchaseProperty(ctx, propertyId, name, nationalId)
		return
	})
	return purchase, err
}

// ApproveUser - see registrar.ApproveUser
func (h *Host) ApproveUser(caller identity.Caller, name string, nationalId string) (*record.User, error) {
	var u *record.User
	err := h.Invoke(caller, "approveUser", func(ctx worldstate.Context) (err error) {
		u, err = h.registrar.ApproveUser(ctx, name, nationalId)
		return
	})
	return u, err
}

// ApproveProperty - see registrar.ApproveProperty
func (h *Host) ApproveProperty(caller identity.Caller, propertyId string) (*record.Property, error) {
	var p *record.Property
	err := h.Invoke(caller, "approveProperty", func(ctx worldstate.Context) (err error) {
		p, err = h.registrar.ApproveProperty(ctx, propertyId)
		return
	})
	return p, err
}
