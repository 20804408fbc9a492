// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package user

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/regnetd/record"
	"github.com/bitmark-inc/regnetd/rpc/ratelimit"
	"github.com/bitmark-inc/regnetd/rpc/registry"
)

// User
// ----

// User - type for the RPC
type User struct {
	Log         *logger.L
	Limiter     *rate.Limiter
	Registry    registry.Registry
	Credentials registry.Credentials
}

const (
	rateLimitUser = 200
	rateBurstUser = 100
)

// RequestArguments - arguments for RPC
type RequestArguments struct {
	Credential  string `json:"credential"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	NationalId  string `json:"nationalId"`
}

// RechargeArguments - arguments for RPC
type RechargeArguments struct {
	Credential        string `json:"credential"`
	Name              string `json:"name"`
	NationalId        string `json:"nationalId"`
	BankTransactionId string `json:"bankTransactionId"`
}

// ViewArguments - arguments for RPC
type ViewArguments struct {
	Credential string `json:"credential"`
	Name       string `json:"name"`
	NationalId string `json:"nationalId"`
}

func New(log *logger.L, r registry.Registry, credentials registry.Credentials) *User {
	return &User{
		Log:         log,
		Limiter:     ratelimit.New(rateLimitUser, rateBurstUser),
		Registry:    r,
		Credentials: credentials,
	}
}

// Request - ask for a new user account
func (u *User) Request(arguments *RequestArguments, reply *record.User) error {

	if err := ratelimit.Limit(u.Limiter); nil != err {
		return err
	}

	log := u.Log
	log.Infof("User.Request: name: %q  national id: %q", arguments.Name, arguments.NationalId)

	caller, err := u.Credentials.Lookup(arguments.Credential)
	if nil != err {
		return err
	}

	result, err := u.Registry.RequestUser(caller, arguments.Name, arguments.Email, arguments.PhoneNumber, arguments.NationalId)
	if nil != err {
		return registry.Result(log, "User.Request", err)
	}

	*reply = *result
	return nil
}

// Recharge - credit upgradCoins for a bank transaction
func (u *User) Recharge(arguments *RechargeArguments, reply *record.User) error {

	if err := ratelimit.Limit(u.Limiter); nil != err {
		return err
	}

	log := u.Log
	log.Infof("User.Recharge: name: %q  national id: %q  transaction: %q", arguments.Name, arguments.NationalId, arguments.BankTransactionId)

	caller, err := u.Credentials.Lookup(arguments.Credential)
	if nil != err {
		return err
	}

	result, err := u.Registry.RechargeAccount(caller, arguments.Name, arguments.NationalId, arguments.BankTransactionId)
	if nil != err {
		return registry.Result(log, "User.Recharge", err)
	}

	*reply = *result
	return nil
}

// View - fetch the user record
func (u *User) View(arguments *ViewArguments, reply *record.User) error {

	if err := ratelimit.Limit(u.Limiter); nil != err {
		return err
	}

	log := u.Log
	log.Debugf("User.View: %+v", arguments.Name)

	caller, err := u.Credentials.Lookup(arguments.Credential)
	if nil != err {
		return err
	}

	result, err := u.Registry.ViewUser(caller, arguments.Name, arguments.NationalId)
	if nil != err {
		return registry.Result(log, "User.View", err)
	}

	*reply = *result
	return nil
}
