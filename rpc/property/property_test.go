// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package property_test

import (
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/regnetd/compositekey"
	"github.com/bitmark-inc/regnetd/fault"
	"github.com/bitmark-inc/regnetd/ledger"
	"github.com/bitmark-inc/regnetd/record"
	"github.com/bitmark-inc/regnetd/rpc/fixtures"
	"github.com/bitmark-inc/regnetd/rpc/mocks"
	"github.com/bitmark-inc/regnetd/rpc/property"
)

func setup(t *testing.T) (*gomock.Controller, *mocks.MockRegistry, *mocks.MockCredentials, *property.Property) {
	fixtures.SetupTestLogger()

	ctl := gomock.NewController(t)
	r := mocks.NewMockRegistry(ctl)
	c := mocks.NewMockCredentials(ctl)

	return ctl, r, c, property.New(logger.New(fixtures.LogCategory), r, c)
}

func teardown(ctl *gomock.Controller) {
	ctl.Finish()
	fixtures.TeardownTestLogger()
}

func TestPropertyRequest(t *testing.T) {
	ctl, r, c, p := setup(t)
	defer teardown(ctl)

	arg := property.RequestArguments{
		Credential: fixtures.UserCredential,
		PropertyId: "P-001",
		Price:      400,
		Name:       "Asha",
		NationalId: "A1",
	}
	expected := record.Property{
		PropertyId: arg.PropertyId,
		Owner:      "Asha-A1",
		OwnerKey:   compositekey.ApprovedUserKey("Asha", "A1"),
		Price:      arg.Price,
		Status:     record.PropertyRequested,
	}

	c.EXPECT().Lookup(fixtures.UserCredential).Return(fixtures.User, nil).Times(1)
	r.EXPECT().RequestPropertyRegistration(fixtures.User, arg.PropertyId, arg.Price, arg.Name, arg.NationalId).Return(&expected, nil).Times(1)

	var reply record.Property
	err := p.Request(&arg, &reply)
	assert.Nil(t, err, "wrong Request")
	assert.Equal(t, expected, reply, "wrong reply")
}

func TestPropertyRequestWhenUnauthorised(t *testing.T) {
	ctl, r, c, p := setup(t)
	defer teardown(ctl)

	c.EXPECT().Lookup(fixtures.RegistrarCredential).Return(fixtures.Registrar, nil).Times(1)
	r.EXPECT().RequestPropertyRegistration(fixtures.Registrar, "P-001", uint64(400), "Asha", "A1").Return(nil, fault.ErrUnauthorised).Times(1)

	var reply record.Property
	err := p.Request(&property.RequestArguments{
		Credential: fixtures.RegistrarCredential,
		PropertyId: "P-001",
		Price:      400,
		Name:       "Asha",
		NationalId: "A1",
	}, &reply)
	assert.Equal(t, fault.ErrUnauthorised, err, "wrong error")
}

func TestPropertyView(t *testing.T) {
	ctl, r, c, p := setup(t)
	defer teardown(ctl)

	expected := record.Property{PropertyId: "P-001", Status: record.PropertyRequested}

	c.EXPECT().Lookup(fixtures.UserCredential).Return(fixtures.User, nil).Times(2)
	r.EXPECT().ViewProperty(fixtures.User, "P-001").Return(&expected, nil).Times(1)
	r.EXPECT().ViewApprovedProperty(fixtures.User, "P-001").Return(nil, fault.ErrPropertyNotFoundOrUnapproved).Times(1)

	var reply record.Property
	err := p.View(&property.ViewArguments{Credential: fixtures.UserCredential, PropertyId: "P-001"}, &reply)
	assert.Nil(t, err, "wrong View")
	assert.Equal(t, expected, reply, "wrong reply")

	err = p.ViewApproved(&property.ViewArguments{Credential: fixtures.UserCredential, PropertyId: "P-001"}, &reply)
	assert.Equal(t, fault.ErrPropertyNotFoundOrUnapproved, err, "wrong ViewApproved")
}

func TestPropertyUpdate(t *testing.T) {
	ctl, r, c, p := setup(t)
	defer teardown(ctl)

	expected := record.Property{
		PropertyId: "P-001",
		Owner:      compositekey.ApprovedUserKey("Asha", "A1"),
		Price:      400,
		Status:     record.PropertyOnSale,
	}

	c.EXPECT().Lookup(fixtures.UserCredential).Return(fixtures.User, nil).Times(1)
	r.EXPECT().UpdateProperty(fixtures.User, "P-001", "Asha", "A1", "onSale").Return(&expected, nil).Times(1)

	var reply record.Property
	err := p.Update(&property.UpdateArguments{
		Credential: fixtures.UserCredential,
		PropertyId: "P-001",
		Name:       "Asha",
		NationalId: "A1",
		Status:     "onSale",
	}, &reply)
	assert.Nil(t, err, "wrong Update")
	assert.Equal(t, record.PropertyOnSale, reply.Status, "wrong status")
}

func TestPropertyPurchase(t *testing.T) {
	ctl, r, c, p := setup(t)
	defer teardown(ctl)

	ts := time.Date(2020, 6, 1, 12, 0, 0, 0, time.UTC)
	seller := &record.User{Name: "Asha", NationalId: "A1", Status: record.UserApproved, CoinBalance: 900}
	buyer := &record.User{Name: "Ravi", NationalId: "R1", Status: record.UserApproved, CoinBalance: 600}
	prop := &record.Property{
		PropertyId: "P-001",
		Owner:      compositekey.ApprovedUserKey("Ravi", "R1"),
		Price:      400,
		Status:     record.PropertyRegistered,
	}
	receipt, err := record.NewReceipt("P-001", compositekey.ApprovedUserKey("Asha", "A1"), compositekey.ApprovedUserKey("Ravi", "R1"), 400, 900, 600, ts)
	assert.Nil(t, err, "wrong receipt")

	c.EXPECT().Lookup(fixtures.UserCredential).Return(fixtures.User, nil).Times(1)
	r.EXPECT().PurchaseProperty(fixtures.User, "P-001", "Ravi", "R1").Return(&ledger.Purchase{
		OldOwner: seller,
		NewOwner: buyer,
		Property: prop,
		Receipt:  receipt,
	}, nil).Times(1)

	var reply property.PurchaseReply
	err = p.Purchase(&property.PurchaseArguments{
		Credential: fixtures.UserCredential,
		PropertyId: "P-001",
		Name:       "Ravi",
		NationalId: "R1",
	}, &reply)
	assert.Nil(t, err, "wrong Purchase")
	assert.Equal(t, seller, reply.Seller, "wrong seller")
	assert.Equal(t, buyer, reply.Buyer, "wrong buyer")
	assert.Equal(t, prop, reply.Property, "wrong property")
	assert.True(t, reply.Receipt.Verify(), "wrong receipt id")
}

func TestPropertyPurchaseWhenNotForSale(t *testing.T) {
	ctl, r, c, p := setup(t)
	defer teardown(ctl)

	c.EXPECT().Lookup(fixtures.UserCredential).Return(fixtures.User, nil).Times(1)
	r.EXPECT().PurchaseProperty(fixtures.User, "P-001", "Ravi", "R1").Return(nil, fault.ErrNotForSale).Times(1)

	var reply property.PurchaseReply
	err := p.Purchase(&property.PurchaseArguments{
		Credential: fixtures.UserCredential,
		PropertyId: "P-001",
		Name:       "Ravi",
		NationalId: "R1",
	}, &reply)
	assert.Equal(t, fault.ErrNotForSale, err, "wrong error")
	assert.Nil(t, reply.Receipt, "receipt must be empty")
}
