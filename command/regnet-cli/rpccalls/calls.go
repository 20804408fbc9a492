// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/bitmark-inc/regnetd/record"
	"github.com/bitmark-inc/regnetd/rpc/node"
	"github.com/bitmark-inc/regnetd/rpc/property"
	"github.com/bitmark-inc/regnetd/rpc/receipt"
	"github.com/bitmark-inc/regnetd/rpc/registrar"
	"github.com/bitmark-inc/regnetd/rpc/user"
)

// UserData - identifies a user
type UserData struct {
	Name       string
	NationalId string
}

// RequestUser - ask for a new user account
func (c *Client) RequestUser(u UserData, email string, phoneNumber string) (*record.User, error) {
	arguments := user.RequestArguments{
		Credential:  c.credential,
		Name:        u.Name,
		Email:       email,
		PhoneNumber: phoneNumber,
		NationalId:  u.NationalId,
	}
	var reply record.User
	if err := c.call("User.Request", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// RechargeAccount - credit coins from a bank transaction
func (c *Client) RechargeAccount(u UserData, bankTransactionId string) (*record.User, error) {
	arguments := user.RechargeArguments{
		Credential:        c.credential,
		Name:              u.Name,
		NationalId:        u.NationalId,
		BankTransactionId: bankTransactionId,
	}
	var reply record.User
	if err := c.call("User.Recharge", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ViewUser - read a user record
func (c *Client) ViewUser(u UserData) (*record.User, error) {
	arguments := user.ViewArguments{
		Credential: c.credential,
		Name:       u.Name,
		NationalId: u.NationalId,
	}
	var reply record.User
	if err := c.call("User.View", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// RequestProperty - ask for a property to be registered
func (c *Client) RequestProperty(owner UserData, propertyId string, price uint64) (*record.Property, error) {
	arguments := property.RequestArguments{
		Credential: c.credential,
		PropertyId: propertyId,
		Price:      price,
		Name:       owner.Name,
		NationalId: owner.NationalId,
	}
	var reply record.Property
	if err := c.call("Property.Request", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ViewProperty - read a property request, approved tells which copy
func (c *Client) ViewProperty(propertyId string, approved bool) (*record.Property, error) {
	method := "Property.View"
	if approved {
		method = "Property.ViewApproved"
	}
	arguments := property.ViewArguments{
		Credential: c.credential,
		PropertyId: propertyId,
	}
	var reply record.Property
	if err := c.call(method, &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// UpdateProperty - owner changes the sale status
func (c *Client) UpdateProperty(owner UserData, propertyId string, status string) (*record.Property, error) {
	arguments := property.UpdateArguments{
		Credential: c.credential,
		PropertyId: propertyId,
		Name:       owner.Name,
		NationalId: owner.NationalId,
		Status:     status,
	}
	var reply record.Property
	if err := c.call("Property.Update", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// PurchaseProperty - buy a property that is on sale
func (c *Client) PurchaseProperty(buyer UserData, propertyId string) (*property.PurchaseReply, error) {
	arguments := property.PurchaseArguments{
		Credential: c.credential,
		PropertyId: propertyId,
		Name:       buyer.Name,
		NationalId: buyer.NationalId,
	}
	var reply property.PurchaseReply
	if err := c.call("Property.Purchase", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ListReceipts - page through purchase receipts
func (c *Client) ListReceipts(start string, count int) (*receipt.ListReply, error) {
	arguments := receipt.ListArguments{
		Credential: c.credential,
		Start:      start,
		Count:      count,
	}
	var reply receipt.ListReply
	if err := c.call("Receipt.List", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ApproveUser - registrar approves a user request
func (c *Client) ApproveUser(u UserData) (*record.User, error) {
	arguments := registrar.UserArguments{
		Credential: c.credential,
		Name:       u.Name,
		NationalId: u.NationalId,
	}
	var reply record.User
	if err := c.call("Registrar.ApproveUser", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ViewApprovedUser - registrar reads an approved user
func (c *Client) ViewApprovedUser(u UserData) (*record.User, error) {
	arguments := registrar.UserArguments{
		Credential: c.credential,
		Name:       u.Name,
		NationalId: u.NationalId,
	}
	var reply record.User
	if err := c.call("Registrar.ViewApprovedUser", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// ApproveProperty - registrar approves a property request
func (c *Client) ApproveProperty(propertyId string) (*record.Property, error) {
	arguments := registrar.PropertyArguments{
		Credential: c.credential,
		PropertyId: propertyId,
	}
	var reply record.Property
	if err := c.call("Registrar.ApproveProperty", &arguments, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}

// GetInfo - node status
func (c *Client) GetInfo() (*node.InfoReply, error) {
	var reply node.InfoReply
	if err := c.call("Node.Info", &node.InfoArguments{}, &reply); nil != err {
		return nil, err
	}
	return &reply, nil
}
