// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package registrar

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/regnetd/record"
	"github.com/bitmark-inc/regnetd/rpc/ratelimit"
	"github.com/bitmark-inc/regnetd/rpc/registry"
)

// Registrar - type for the RPC
type Registrar struct {
	Log         *logger.L
	Limiter     *rate.Limiter
	Registry    registry.Registry
	Credentials registry.Credentials
}

const (
	rateLimitRegistrar = 100
	rateBurstRegistrar = 50
)

// UserArguments - arguments for RPC
type UserArguments struct {
	Credential string `json:"credential"`
	Name       string `json:"name"`
	NationalId string `json:"nationalId"`
}

// PropertyArguments - arguments for RPC
type PropertyArguments struct {
	Credential string `json:"credential"`
	PropertyId string `json:"propertyId"`
}

func New(log *logger.L, r registry.Registry, credentials registry.Credentials) *Registrar {
	return &Registrar{
		Log:         log,
		Limiter:     ratelimit.New(rateLimitRegistrar, rateBurstRegistrar),
		Registry:    r,
		Credentials: credentials,
	}
}

// ApproveUser - approve a pending user request
func (r *Registrar) ApproveUser(arguments *UserArguments, reply *record.User) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	log := r.Log
	log.Infof("Registrar.ApproveUser: name: %q  national id: %q", arguments.Name, arguments.NationalId)

	caller, err := r.Credentials.Lookup(arguments.Credential)
	if nil != err {
		return err
	}

	result, err := r.Registry.ApproveUser(caller, arguments.Name, arguments.NationalId)
	if nil != err {
		return registry.Result(log, "Registrar.ApproveUser", err)
	}

	*reply = *result
	return nil
}

// ApproveProperty - approve a property registration request
func (r *Registrar) ApproveProperty(arguments *PropertyArguments, reply *record.Property) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	log := r.Log
	log.Infof("Registrar.ApproveProperty: %q", arguments.PropertyId)

	caller, err := r.Credentials.Lookup(arguments.Credential)
	if nil != err {
		return err
	}

	result, err := r.Registry.ApproveProperty(caller, arguments.PropertyId)
	if nil != err {
		return registry.Result(log, "Registrar.ApproveProperty", err)
	}

	*reply = *result
	return nil
}

// ViewApprovedUser - fetch the approved user mirror
func (r *Registrar) ViewApprovedUser(arguments *UserArguments, reply *record.User) error {

	if err := ratelimit.Limit(r.Limiter); nil != err {
		return err
	}

	log := r.Log
	log.Debugf("Registrar.ViewApprovedUser: name: %q", arguments.Name)

	caller, err := r.Credentials.Lookup(arguments.Credential)
	if nil != err {
		return err
	}

	result, err := r.Registry.ViewApprovedUser(caller, arguments.Name, arguments.NationalId)
	if nil != err {
		return registry.Result(log, "Registrar.ViewApprovedUser", err)
	}

	*reply = *result
	return nil
}
