// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"bytes"
	"net"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/regnetd/contract"
	"github.com/bitmark-inc/regnetd/counter"
	"github.com/bitmark-inc/regnetd/fault"
	"github.com/bitmark-inc/regnetd/record"
	"github.com/bitmark-inc/regnetd/rpc/fixtures"
	"github.com/bitmark-inc/regnetd/rpc/mocks"
	"github.com/bitmark-inc/regnetd/rpc/server"
)

// a client connected to an in-process server over a pipe
func setupClient(t *testing.T, credential string, verbose bool) (*Client, *mocks.MockRegistry, *mocks.MockCredentials, *bytes.Buffer, func()) {
	fixtures.SetupTestLogger()

	ctl := gomock.NewController(t)
	r := mocks.NewMockRegistry(ctl)
	c := mocks.NewMockCredentials(ctl)

	var count counter.Counter
	srv := server.Create(logger.New(fixtures.LogCategory), "v-test", r, c, &count)

	serverConn, clientConn := net.Pipe()
	go srv.ServeCodec(jsonrpc.NewServerCodec(serverConn))

	var out bytes.Buffer
	client := newClient(clientConn, credential, verbose, &out)

	return client, r, c, &out, func() {
		client.Close()
		ctl.Finish()
		fixtures.TeardownTestLogger()
	}
}

func TestViewUser(t *testing.T) {
	client, r, c, out, teardown := setupClient(t, fixtures.UserCredential, true)
	defer teardown()

	expected := record.User{
		Name:        "Asha",
		NationalId:  "A1",
		Status:      record.UserApproved,
		CoinBalance: 500,
	}

	c.EXPECT().Lookup(fixtures.UserCredential).Return(fixtures.User, nil).Times(1)
	r.EXPECT().ViewUser(fixtures.User, "Asha", "A1").Return(&expected, nil).Times(1)

	u, err := client.ViewUser(UserData{Name: "Asha", NationalId: "A1"})
	assert.Nil(t, err, "wrong ViewUser")
	assert.Equal(t, expected, *u, "wrong user")
	assert.Contains(t, out.String(), "User.View reply", "verbose output missing")
}

func TestErrorsMapToFaults(t *testing.T) {
	client, r, c, _, teardown := setupClient(t, fixtures.UserCredential, false)
	defer teardown()

	c.EXPECT().Lookup(fixtures.UserCredential).Return(fixtures.User, nil).Times(1)
	r.EXPECT().PurchaseProperty(fixtures.User, "P-1", "Asha", "A1").Return(nil, fault.ErrInsufficientFunds).Times(1)

	_, err := client.PurchaseProperty(UserData{Name: "Asha", NationalId: "A1"}, "P-1")
	assert.Equal(t, fault.ErrInsufficientFunds, err, "wrong error")
}

func TestInvalidCredential(t *testing.T) {
	client, _, c, _, teardown := setupClient(t, "wrong", false)
	defer teardown()

	c.EXPECT().Lookup("wrong").Return(nil, fault.ErrInvalidCredential).Times(1)

	_, err := client.ApproveProperty("P-1")
	assert.Equal(t, fault.ErrInvalidCredential, err, "wrong error")
}

func TestListReceipts(t *testing.T) {
	client, r, c, _, teardown := setupClient(t, fixtures.UserCredential, false)
	defer teardown()

	receipts := []*record.PurchaseReceipt{
		{Id: record.ReceiptId{'r', '1'}, PropertyId: "P-1", Price: 100},
	}

	c.EXPECT().Lookup(fixtures.UserCredential).Return(fixtures.User, nil).Times(1)
	r.EXPECT().ListReceipts("", 10).Return(receipts, "abcd", nil).Times(1)

	reply, err := client.ListReceipts("", 10)
	assert.Nil(t, err, "wrong ListReceipts")
	assert.Equal(t, 1, len(reply.Receipts), "wrong receipt count")
	assert.Equal(t, "abcd", reply.Next, "wrong next")
}

func TestGetInfo(t *testing.T) {
	client, r, _, _, teardown := setupClient(t, "", false)
	defer teardown()

	r.EXPECT().Statistics().Return(contract.Statistics{Committed: 3, Aborted: 1}).Times(1)

	info, err := client.GetInfo()
	assert.Nil(t, err, "wrong GetInfo")
	assert.Equal(t, "v-test", info.Version, "wrong version")
	assert.Equal(t, uint64(3), info.Invocations.Committed, "wrong committed")
}
