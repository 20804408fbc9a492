// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package registry - the operations that RPC types forward to
package registry

import (
	"errors"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/regnetd/contract"
	"github.com/bitmark-inc/regnetd/fault"
	"github.com/bitmark-inc/regnetd/identity"
	"github.com/bitmark-inc/regnetd/ledger"
	"github.com/bitmark-inc/regnetd/record"
)

// Registry - the contract host as seen by the RPC types
type Registry interface {
	RequestUser(caller identity.Caller, name string, email string, phone string, nationalId string) (*record.User, error)
	RechargeAccount(caller identity.Caller, name string, nationalId string, bankTransactionId string) (*record.User, error)
	ViewUser(caller identity.Caller, name string, nationalId string) (*record.User, error)
	RequestPropertyRegistration(caller identity.Caller, propertyId string, price uint64, name string, nationalId string) (*record.Property, error)
	ViewProperty(caller identity.Caller, propertyId string) (*record.Property, error)
	ViewApprovedProperty(caller identity.Caller, propertyId string) (*record.Property, error)
	ViewApprovedUser(caller identity.Caller, name string, nationalId string) (*record.User, error)
	UpdateProperty(caller identity.Caller, propertyId string, name string, nationalId string, status string) (*record.Property, error)
	PurchaseProperty(caller identity.Caller, propertyId string, name string, nationalId string) (*ledger.Purchase, error)
	ApproveUser(caller identity.Caller, name string, nationalId string) (*record.User, error)
	ApproveProperty(caller identity.Caller, propertyId string) (*record.Property, error)
	ListReceipts(start string, count int) ([]*record.PurchaseReceipt, string, error)
	Statistics() contract.Statistics
}

// Credentials - resolves a credential to the calling member
type Credentials interface {
	Lookup(credential string) (*identity.Member, error)
}

// check the host satisfies the interface
var _ Registry = (*contract.Host)(nil)
var _ Credentials = (*identity.Table)(nil)

// Result - reduce an error to the instance a client can match
//
// store errors carry the engine detail which is logged here and not
// sent to the client
func Result(log *logger.L, name string, err error) error {
	if nil == err {
		return nil
	}
	if errors.Is(err, fault.ErrStoreUnavailable) {
		log.Errorf("%s: %s", name, err)
		return fault.ErrStoreUnavailable
	}
	return err
}
