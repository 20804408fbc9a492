// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincode

import (
	"time"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"

	"github.com/bitmark-inc/regnetd/fault"
	"github.com/bitmark-inc/regnetd/identity"
	"github.com/bitmark-inc/regnetd/worldstate"
)

// invocation - the world state context of one Fabric transaction
//
// the stub is the store, the submitting client is the caller and the
// proposal timestamp is the invocation time so that every endorsing
// peer computes identical records
func invocation(ctx contractapi.TransactionContextInterface) (worldstate.Context, error) {
	client := ctx.GetClientIdentity()
	if nil == client {
		return nil, fault.ErrInvalidCredential
	}
	id, err := client.GetID()
	if nil != err {
		return nil, fault.ErrInvalidCredential
	}
	mspId, err := client.GetMSPID()
	if nil != err {
		return nil, fault.ErrInvalidCredential
	}

	stub := ctx.GetStub()
	ts, err := stub.GetTxTimestamp()
	if nil != err {
		return nil, err
	}

	timestamp := time.Unix(ts.GetSeconds(), int64(ts.GetNanos()))
	return worldstate.NewContext(stub, identity.NewMember(id, mspId), timestamp), nil
}
