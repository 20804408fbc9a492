// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package chaincode - the registration workflows as Fabric contracts
//
// each transaction runs one workflow operation against the chaincode
// stub and returns the resulting record as JSON; Fabric commits the
// read/write set only when the transaction returns no error
package chaincode

import (
	"encoding/json"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/regnetd/compositekey"
	"github.com/bitmark-inc/regnetd/fault"
	"github.com/bitmark-inc/regnetd/ledger"
	"github.com/bitmark-inc/regnetd/record"
	"github.com/bitmark-inc/regnetd/registrar"
	"github.com/bitmark-inc/regnetd/registration"
	"github.com/bitmark-inc/regnetd/worldstate"
)

// contract names as deployed on the network
const (
	UsersContractName     = "org.property-registration-network.regnet.user"
	RegistrarContractName = "org.property-registration-network.regnet.registrar"

	MaximumReceiptCount = 100
)

// Configuration - organisations and policy for both contracts
type Configuration struct {
	UsersOrganisation     string
	RegistrarOrganisation string
	UniqueUsers           bool
}

// UsersContract - transactions submitted by members of the users organisation
type UsersContract struct {
	contractapi.Contract

	log          *logger.L
	registration *registration.Registration
	ledger       *ledger.Ledger
}

// RegistrarContract - transactions submitted by the registrar
type RegistrarContract struct {
	contractapi.Contract

	log          *logger.L
	registration *registration.Registration
	registrar    *registrar.Registrar
	ledger       *ledger.Ledger
}

// New - both contracts sharing one recharge table
func New(recharge registration.RechargeTable, conf Configuration) (*UsersContract, *RegistrarContract) {
	users := &UsersContract{
		log:          logger.New("chaincode"),
		registration: registration.New(logger.New("registration"), recharge, conf.UniqueUsers),
		ledger:       ledger.New(logger.New("ledger"), conf.UsersOrganisation),
	}
	users.Name = UsersContractName

	authority := &RegistrarContract{
		log:          logger.New("chaincode"),
		registration: users.registration,
		registrar:    registrar.New(logger.New("registrar"), conf.RegistrarOrganisation),
		ledger:       ledger.New(logger.New("ledger"), conf.UsersOrganisation),
	}
	authority.Name = RegistrarContractName

	return users, authority
}

// NewChaincode - a chaincode serving both contracts
func NewChaincode(recharge registration.RechargeTable, conf Configuration) (*contractapi.ContractChaincode, error) {
	users, authority := New(recharge, conf)
	cc, err := contractapi.NewChaincode(users, authority)
	if nil != err {
		return nil, err
	}
	cc.Info.Title = "regnet"
	cc.Info.Version = "1.0.0"
	return cc, nil
}

// run an operation and render its result as JSON
func run(log *logger.L, name string, ctx contractapi.TransactionContextInterface, operation func(worldstate.Context) (interface{}, error)) (string, error) {
	wsc, err := invocation(ctx)
	if nil != err {
		log.Warnf("%s: identity error: %s", name, err)
		return "", err
	}

	result, err := operation(wsc)
	if nil != err {
		log.Warnf("%s: caller: %s  rejected: %s", name, wsc.Caller().ID(), err)
		return "", err
	}

	buffer, err := json.Marshal(result)
	if nil != err {
		return "", err
	}
	return string(buffer), nil
}

// RequestNewUser - ask for a new user account
func (c *UsersContract) RequestNewUser(ctx contractapi.TransactionContextInterface, name string, email string, phoneNumber string, nationalId string) (string, error) {
	return run(c.log, "requestNewUser", ctx, func(wsc worldstate.Context) (interface{}, error) {
		return c.registration.RequestUser(wsc, name, email, phoneNumber, nationalId)
	})
}

// RechargeAccount - credit upgradCoins for a bank transaction
func (c *UsersContract) RechargeAccount(ctx contractapi.TransactionContextInterface, name string, nationalId string, bankTransactionId string) (string, error) {
	return run(c.log, "rechargeAccount", ctx, func(wsc worldstate.Context) (interface{}, error) {
		return c.registration.RechargeAccount(wsc, name, nationalId, bankTransactionId)
	})
}

// ViewUser - fetch a user request
func (c *UsersContract) ViewUser(ctx contractapi.TransactionContextInterface, name string, nationalId string) (string, error) {
	return run(c.log, "viewUser", ctx, func(wsc worldstate.Context) (interface{}, error) {
		return c.registration.ViewUser(wsc, name, nationalId)
	})
}

// PropertyRegistrationRequest - ask for a property to be registered
func (c *UsersContract) PropertyRegistrationRequest(ctx contractapi.TransactionContextInterface, propertyId string, price uint64, name string, nationalId string) (string, error) {
	return run(c.log, "propertyRegistrationRequest", ctx, func(wsc worldstate.Context) (interface{}, error) {
		return c.registration.RequestPropertyRegistration(wsc, propertyId, price, name, nationalId)
	})
}

// ViewProperty - fetch the approved property
func (c *UsersContract) ViewProperty(ctx contractapi.TransactionContextInterface, propertyId string) (string, error) {
	return run(c.log, "viewProperty", ctx, func(wsc worldstate.Context) (interface{}, error) {
		return c.ledger.ViewApprovedProperty(wsc, propertyId)
	})
}

// ViewPropertyRequest - fetch the registration request
func (c *UsersContract) ViewPropertyRequest(ctx contractapi.TransactionContextInterface, propertyId string) (string, error) {
	return run(c.log, "viewPropertyRequest", ctx, func(wsc worldstate.Context) (interface{}, error) {
		return c.registration.ViewProperty(wsc, propertyId)
	})
}

// UpdateProperty - owner sets registered or onSale
func (c *UsersContract) UpdateProperty(ctx contractapi.TransactionContextInterface, propertyId string, name string, nationalId string, status string) (string, error) {
	return run(c.log, "updateProperty", ctx, func(wsc worldstate.Context) (interface{}, error) {
		return c.ledger.UpdateProperty(wsc, propertyId, name, nationalId, status)
	})
}

// PurchaseProperty - buy a property that is on sale
func (c *UsersContract) PurchaseProperty(ctx contractapi.TransactionContextInterface, propertyId string, name string, nationalId string) (string, error) {
	return run(c.log, "purchaseProperty", ctx, func(wsc worldstate.Context) (interface{}, error) {
		return c.ledger.PurchaseProperty(wsc, propertyId, name, nationalId)
	})
}

// ListReceipts - the oldest count purchase receipts
func (c *UsersContract) ListReceipts(ctx contractapi.TransactionContextInterface, count int) (string, error) {
	if count <= 0 || count > MaximumReceiptCount {
		return "", fault.ErrInvalidCount
	}

	iterator, err := ctx.GetStub().GetStateByPartialCompositeKey(compositekey.Receipt, []string{})
	if nil != err {
		return "", fault.ErrStoreUnavailable
	}
	defer iterator.Close()

	receipts := make([]*record.PurchaseReceipt, 0, count)
	for iterator.HasNext() && len(receipts) < count {
		kv, err := iterator.Next()
		if nil != err {
			return "", fault.ErrStoreUnavailable
		}
		r, err := record.UnpackReceipt(kv.Value)
		if nil != err {
			c.log.Errorf("receipt: %q  error: %s", kv.Key, err)
			return "", err
		}
		receipts = append(receipts, r)
	}

	buffer, err := json.Marshal(receipts)
	if nil != err {
		return "", err
	}
	return string(buffer), nil
}

// ApproveNewUser - approve a pending user request
func (c *RegistrarContract) ApproveNewUser(ctx contractapi.TransactionContextInterface, name string, nationalId string) (string, error) {
	return run(c.log, "approveNewUser", ctx, func(wsc worldstate.Context) (interface{}, error) {
		return c.registrar.ApproveUser(wsc, name, nationalId)
	})
}

// ApprovePropertyRegistration - approve a property registration request
func (c *RegistrarContract) ApprovePropertyRegistration(ctx contractapi.TransactionContextInterface, propertyId string) (string, error) {
	return run(c.log, "approvePropertyRegistration", ctx, func(wsc worldstate.Context) (interface{}, error) {
		return c.registrar.ApproveProperty(wsc, propertyId)
	})
}

// ViewUser - fetch the approved user
func (c *RegistrarContract) ViewUser(ctx contractapi.TransactionContextInterface, name string, nationalId string) (string, error) {
	return run(c.log, "viewApprovedUser", ctx, func(wsc worldstate.Context) (interface{}, error) {
		return c.ledger.ViewApprovedUser(wsc, name, nationalId)
	})
}

// ViewProperty - fetch the registration request
func (c *RegistrarContract) ViewProperty(ctx contractapi.TransactionContextInterface, propertyId string) (string, error) {
	return run(c.log, "viewProperty", ctx, func(wsc worldstate.Context) (interface{}, error) {
		return c.registration.ViewProperty(wsc, propertyId)
	})
}
