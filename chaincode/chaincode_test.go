// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chaincode_test

import (
	"crypto/x509"
	"encoding/json"
	"fmt"
	"os"
	"testing"

	"github.com/hyperledger/fabric-chaincode-go/shimtest"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/regnetd/chaincode"
	"github.com/bitmark-inc/regnetd/fault"
	"github.com/bitmark-inc/regnetd/record"
	"github.com/bitmark-inc/regnetd/registration"
)

const (
	testingDirName = "testing"

	usersMSP     = "usersMSP"
	registrarMSP = "registrarMSP"
)

func TestMain(m *testing.M) {
	_ = os.RemoveAll(testingDirName)
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(testingDirName)
	os.Exit(rc)
}

// a client identity fixed at construction
type member struct {
	id    string
	mspId string
}

func (m member) GetID() (string, error)    { return m.id, nil }
func (m member) GetMSPID() (string, error) { return m.mspId, nil }

func (m member) GetAttributeValue(string) (string, bool, error) {
	return "", false, nil
}

func (m member) AssertAttributeValue(name string, _ string) error {
	return fmt.Errorf("attribute: %s not found", name)
}

func (m member) GetX509Certificate() (*x509.Certificate, error) {
	return nil, nil
}

// network - both contracts over one mock stub
type network struct {
	t         *testing.T
	stub      *shimtest.MockStub
	users     *chaincode.UsersContract
	registrar *chaincode.RegistrarContract
	tx        int
}

func newNetwork(t *testing.T) *network {
	users, registrar := chaincode.New(
		registration.NewRecharge(map[string]uint64{
			"upg500":  500,
			"upg1000": 1000,
			"upg1500": 1500,
		}),
		chaincode.Configuration{
			UsersOrganisation:     usersMSP,
			RegistrarOrganisation: registrarMSP,
			UniqueUsers:           true,
		},
	)
	return &network{
		t:         t,
		stub:      shimtest.NewMockStub("regnet", nil),
		users:     users,
		registrar: registrar,
	}
}

// context for one transaction by a member of mspId
//
// each call is a separate transaction so writes of earlier calls are
// visible and writes of a failed call are still staged in the mock;
// tests check failures through the returned error only
func (n *network) as(mspId string) contractapi.TransactionContextInterface {
	n.tx += 1
	n.stub.MockTransactionEnd(fmt.Sprintf("tx-%d", n.tx-1))
	n.stub.MockTransactionStart(fmt.Sprintf("tx-%d", n.tx))

	ctx := new(contractapi.TransactionContext)
	ctx.SetStub(n.stub)
	ctx.SetClientIdentity(member{id: "member-of-" + mspId, mspId: mspId})
	return ctx
}

func decodeUser(t *testing.T, text string) record.User {
	var u record.User
	err := json.Unmarshal([]byte(text), &u)
	if nil != err {
		t.Fatalf("decode user: %s", err)
	}
	return u
}

func decodeProperty(t *testing.T, text string) record.Property {
	var p record.Property
	err := json.Unmarshal([]byte(text), &p)
	if nil != err {
		t.Fatalf("decode property: %s", err)
	}
	return p
}

func (n *network) approvedUser(name string, nationalId string, bankTransactionId string) {
	_, err := n.users.RequestNewUser(n.as(usersMSP), name, name+"@example.com", "9876543210", nationalId)
	if nil != err {
		n.t.Fatalf("request %s: %s", name, err)
	}
	_, err = n.registrar.ApproveNewUser(n.as(registrarMSP), name, nationalId)
	if nil != err {
		n.t.Fatalf("approve %s: %s", name, err)
	}
	if "" != bankTransactionId {
		_, err = n.users.RechargeAccount(n.as(usersMSP), name, nationalId, bankTransactionId)
		if nil != err {
			n.t.Fatalf("recharge %s: %s", name, err)
		}
	}
}

func TestNewChaincode(t *testing.T) {
	cc, err := chaincode.NewChaincode(registration.NewRecharge(nil), chaincode.Configuration{
		UsersOrganisation:     usersMSP,
		RegistrarOrganisation: registrarMSP,
	})
	assert.Nil(t, err, "wrong NewChaincode")
	assert.Equal(t, "regnet", cc.Info.Title, "wrong title")
}

func TestUserLifecycle(t *testing.T) {
	n := newNetwork(t)

	text, err := n.users.RequestNewUser(n.as(usersMSP), "Asha", "asha@example.com", "9876543210", "A1")
	assert.Nil(t, err, "wrong RequestNewUser")
	u := decodeUser(t, text)
	assert.Equal(t, record.UserPending, u.Status, "wrong status")
	assert.Equal(t, "member-of-usersMSP", u.IdentityRef, "wrong user id")

	_, err = n.users.RechargeAccount(n.as(usersMSP), "Asha", "A1", "upg500")
	assert.Equal(t, fault.ErrUserNotApproved, err, "recharge before approval")

	_, err = n.users.RequestNewUser(n.as(usersMSP), "Asha", "other@example.com", "1", "A1")
	assert.Equal(t, fault.ErrUserAlreadyExists, err, "duplicate request")

	_, err = n.registrar.ApproveNewUser(n.as(usersMSP), "Asha", "A1")
	assert.Equal(t, fault.ErrUnauthorised, err, "users cannot approve")

	text, err = n.registrar.ApproveNewUser(n.as(registrarMSP), "Asha", "A1")
	assert.Nil(t, err, "wrong ApproveNewUser")
	assert.Equal(t, record.UserApproved, decodeUser(t, text).Status, "wrong approved status")

	text, err = n.users.RechargeAccount(n.as(usersMSP), "Asha", "A1", "upg1000")
	assert.Nil(t, err, "wrong RechargeAccount")
	assert.Equal(t, uint64(1000), decodeUser(t, text).CoinBalance, "wrong balance")

	_, err = n.users.RechargeAccount(n.as(usersMSP), "Asha", "A1", "upg42")
	assert.Equal(t, fault.ErrInvalidTransactionId, err, "wrong bank transaction")

	text, err = n.registrar.ViewUser(n.as(registrarMSP), "Asha", "A1")
	assert.Nil(t, err, "wrong registrar ViewUser")
	assert.Equal(t, uint64(1000), decodeUser(t, text).CoinBalance, "wrong mirror balance")
}

func TestPropertyPurchase(t *testing.T) {
	n := newNetwork(t)

	n.approvedUser("Asha", "A1", "upg500")
	n.approvedUser("Ravi", "R1", "upg1000")

	_, err := n.users.PropertyRegistrationRequest(n.as(usersMSP), "P-001", 400, "Asha", "A1")
	assert.Nil(t, err, "wrong PropertyRegistrationRequest")

	text, err := n.users.ViewPropertyRequest(n.as(usersMSP), "P-001")
	assert.Nil(t, err, "wrong ViewPropertyRequest")
	assert.Equal(t, record.PropertyRequested, decodeProperty(t, text).Status, "wrong request status")

	_, err = n.users.ViewProperty(n.as(usersMSP), "P-001")
	assert.Equal(t, fault.ErrPropertyNotFoundOrUnapproved, err, "not yet approved")

	_, err = n.registrar.ApprovePropertyRegistration(n.as(registrarMSP), "P-001")
	assert.Nil(t, err, "wrong ApprovePropertyRegistration")

	_, err = n.users.PurchaseProperty(n.as(usersMSP), "P-001", "Ravi", "R1")
	assert.Equal(t, fault.ErrNotForSale, err, "registered is not for sale")

	_, err = n.users.UpdateProperty(n.as(usersMSP), "P-001", "Ravi", "R1", "onSale")
	assert.Equal(t, fault.ErrNotOwner, err, "only the owner may update")

	text, err = n.users.UpdateProperty(n.as(usersMSP), "P-001", "Asha", "A1", "onSale")
	assert.Nil(t, err, "wrong UpdateProperty")
	assert.Equal(t, record.PropertyOnSale, decodeProperty(t, text).Status, "wrong on sale status")

	text, err = n.users.PurchaseProperty(n.as(usersMSP), "P-001", "Ravi", "R1")
	assert.Nil(t, err, "wrong PurchaseProperty")

	var purchase struct {
		OldOwner record.User            `json:"oldOwner"`
		NewOwner record.User            `json:"newOwner"`
		Property record.Property        `json:"property"`
		Receipt  record.PurchaseReceipt `json:"receipt"`
	}
	err = json.Unmarshal([]byte(text), &purchase)
	assert.Nil(t, err, "wrong purchase json")
	assert.Equal(t, uint64(900), purchase.OldOwner.CoinBalance, "wrong seller balance")
	assert.Equal(t, uint64(600), purchase.NewOwner.CoinBalance, "wrong buyer balance")
	assert.Equal(t, record.PropertyRegistered, purchase.Property.Status, "wrong status after purchase")
	assert.True(t, purchase.Receipt.Verify(), "wrong receipt")

	_, err = n.users.PurchaseProperty(n.as(usersMSP), "P-001", "Ravi", "R1")
	assert.Equal(t, fault.ErrNotForSale, err, "replay must fail")

	text, err = n.users.ListReceipts(n.as(usersMSP), 10)
	assert.Nil(t, err, "wrong ListReceipts")
	var receipts []record.PurchaseReceipt
	_ = json.Unmarshal([]byte(text), &receipts)
	assert.Equal(t, 1, len(receipts), "wrong receipt count")
	assert.Equal(t, "P-001", receipts[0].PropertyId, "wrong receipt property")

	_, err = n.users.ListReceipts(n.as(usersMSP), 0)
	assert.Equal(t, fault.ErrInvalidCount, err, "wrong count")
}

func TestRegistrarViewsPendingRequest(t *testing.T) {
	n := newNetwork(t)

	n.approvedUser("Asha", "A1", "")

	_, err := n.registrar.ViewProperty(n.as(registrarMSP), "P-009")
	assert.Equal(t, fault.ErrPropertyNotFound, err, "absent request")

	_, err = n.users.PropertyRegistrationRequest(n.as(usersMSP), "P-009", 250, "Asha", "A1")
	assert.Nil(t, err, "wrong PropertyRegistrationRequest")

	text, err := n.registrar.ViewProperty(n.as(registrarMSP), "P-009")
	assert.Nil(t, err, "wrong registrar ViewProperty")
	p := decodeProperty(t, text)
	assert.Equal(t, "P-009", p.PropertyId, "wrong property")
	assert.Equal(t, record.PropertyRequested, p.Status, "wrong request status")
	assert.Equal(t, uint64(250), p.Price, "wrong price")

	_, err = n.registrar.ApprovePropertyRegistration(n.as(registrarMSP), "P-009")
	assert.Nil(t, err, "wrong ApprovePropertyRegistration")

	text, err = n.registrar.ViewProperty(n.as(registrarMSP), "P-009")
	assert.Nil(t, err, "wrong registrar ViewProperty after approval")
	assert.Equal(t, record.PropertyRegistered, decodeProperty(t, text).Status, "request not marked registered")
}
