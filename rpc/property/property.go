// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package property

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/regnetd/record"
	"github.com/bitmark-inc/regnetd/rpc/ratelimit"
	"github.com/bitmark-inc/regnetd/rpc/registry"
)

// Property
// --------

// Property - type for the RPC
type Property struct {
	Log         *logger.L
	Limiter     *rate.Limiter
	Registry    registry.Registry
	Credentials registry.Credentials
}

const (
	rateLimitProperty = 200
	rateBurstProperty = 100
)

// RequestArguments - arguments for RPC
type RequestArguments struct {
	Credential string `json:"credential"`
	PropertyId string `json:"propertyId"`
	Price      uint64 `json:"price"`
	Name       string `json:"name"`
	NationalId string `json:"nationalId"`
}

// ViewArguments - arguments for RPC
type ViewArguments struct {
	Credential string `json:"credential"`
	PropertyId string `json:"propertyId"`
}

// UpdateArguments - arguments for RPC
type UpdateArguments struct {
	Credential string `json:"credential"`
	PropertyId string `json:"propertyId"`
	Name       string `json:"name"`
	NationalId string `json:"nationalId"`
	Status     string `json:"status"`
}

// PurchaseArguments - arguments for RPC
type PurchaseArguments struct {
	Credential string `json:"credential"`
	PropertyId string `json:"propertyId"`
	Name       string `json:"name"`
	NationalId string `json:"nationalId"`
}

// PurchaseReply - result of purchase RPC
type PurchaseReply struct {
	Property *record.Property        `json:"property"`
	Seller   *record.User            `json:"seller"`
	Buyer    *record.User            `json:"buyer"`
	Receipt  *record.PurchaseReceipt `json:"receipt"`
}

func New(log *logger.L, r registry.Registry, credentials registry.Credentials) *Property {
	return &Property{
		Log:         log,
		Limiter:     ratelimit.New(rateLimitProperty, rateBurstProperty),
		Registry:    r,
		Credentials: credentials,
	}
}

// Request - ask for a property to be registered
func (p *Property) Request(arguments *RequestArguments, reply *record.Property) error {

	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	log := p.Log
	log.Infof("Property.Request: %q  price: %d  owner: %q", arguments.PropertyId, arguments.Price, arguments.Name)

	caller, err := p.Credentials.Lookup(arguments.Credential)
	if nil != err {
		return err
	}

	result, err := p.Registry.RequestPropertyRegistration(caller, arguments.PropertyId, arguments.Price, arguments.Name, arguments.NationalId)
	if nil != err {
		return registry.Result(log, "Property.Request", err)
	}

	*reply = *result
	return nil
}

// View - fetch the registration request
func (p *Property) View(arguments *ViewArguments, reply *record.Property) error {

	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	log := p.Log
	log.Debugf("Property.View: %q", arguments.PropertyId)

	caller, err := p.Credentials.Lookup(arguments.Credential)
	if nil != err {
		return err
	}

	result, err := p.Registry.ViewProperty(caller, arguments.PropertyId)
	if nil != err {
		return registry.Result(log, "Property.View", err)
	}

	*reply = *result
	return nil
}

// ViewApproved - fetch the approved property
func (p *Property) ViewApproved(arguments *ViewArguments, reply *record.Property) error {

	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	log := p.Log
	log.Debugf("Property.ViewApproved: %q", arguments.PropertyId)

	caller, err := p.Credentials.Lookup(arguments.Credential)
	if nil != err {
		return err
	}

	result, err := p.Registry.ViewApprovedProperty(caller, arguments.PropertyId)
	if nil != err {
		return registry.Result(log, "Property.ViewApproved", err)
	}

	*reply = *result
	return nil
}

// Update - owner changes the status of an approved property
func (p *Property) Update(arguments *UpdateArguments, reply *record.Property) error {

	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	log := p.Log
	log.Infof("Property.Update: %q  status: %q", arguments.PropertyId, arguments.Status)

	caller, err := p.Credentials.Lookup(arguments.Credential)
	if nil != err {
		return err
	}

	result, err := p.Registry.UpdateProperty(caller, arguments.PropertyId, arguments.Name, arguments.NationalId, arguments.Status)
	if nil != err {
		return registry.Result(log, "Property.Update", err)
	}

	*reply = *result
	return nil
}

// Purchase - buy a property that is on sale
func (p *Property) Purchase(arguments *PurchaseArguments, reply *PurchaseReply) error {

	if err := ratelimit.Limit(p.Limiter); nil != err {
		return err
	}

	log := p.Log
	log.Infof("Property.Purchase: %q  buyer: %q", arguments.PropertyId, arguments.Name)

	caller, err := p.Credentials.Lookup(arguments.Credential)
	if nil != err {
		return err
	}

	purchase, err := p.Registry.PurchaseProperty(caller, arguments.PropertyId, arguments.Name, arguments.NationalId)
	if nil != err {
		return registry.Result(log, "Property.Purchase", err)
	}

	reply.Property = purchase.Property
	reply.Seller = purchase.OldOwner
	reply.Buyer = purchase.NewOwner
	reply.Receipt = purchase.Receipt
	return nil
}
