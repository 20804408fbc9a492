// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"fmt"
	"os"
	"path"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/regnetd/identity"
	"github.com/bitmark-inc/regnetd/registration"
	"github.com/bitmark-inc/regnetd/storage"
	"github.com/bitmark-inc/regnetd/worldstate"
)

const (
	testingDirName = "testing"
)

var (
	userCaller      = identity.NewMember("x509::CN=user", "usersMSP")
	registrarCaller = identity.NewMember("x509::CN=registrar", "registrarMSP")
)

func removeFiles() {
	os.RemoveAll(testingDirName)
}

func setupTestHost(t *testing.T) *Host {
	removeFiles()
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

	err := storage.Initialise(path.Join(testingDirName, "test"), storage.ReadWrite)
	if nil != err {
		t.Fatalf("storage initialise error: %s", err)
	}

	conf := Configuration{
		UsersOrganisation:     "usersMSP",
		RegistrarOrganisation: "registrarMSP",
		UniqueUsers:           true,
	}
	h := New(logger.New("contract"), storage.Pool.State, registration.NewRecharge(registration.DefaultRecharge), conf)

	// strictly increasing invocation times
	now := time.Date(2020, 6, 1, 12, 0, 0, 0, time.UTC)
	h.clock = func() time.Time {
		now = now.Add(time.Second)
		return now
	}
	return h
}

func teardownTestHost(t *testing.T) {
	storage.Finalise()
	logger.Finalise()
	removeFiles()
}

// fails the nth write made through it
type failingStore struct {
	worldstate.Store
	n      int
	failAt int
}

func (f *failingStore) PutState(key string, value []byte) error {
	f.n += 1
	if f.n == f.failAt {
		return fmt.Errorf("write %d failed", f.n)
	}
	return f.Store.PutState(key, value)
}

// fail the nth write of the next invocation
func (h *Host) failWrite(n int) {
	h.filter = func(s worldstate.Store) worldstate.Store {
		return &failingStore{Store: s, failAt: n}
	}
}

// add an approved user with recharges and optionally a property on sale
func addUser(t *testing.T, h *Host, name string, nationalId string, recharges ...string) {
	if _, err := h.RequestUser(userCaller, name, name+"@example.com", "1", nationalId); nil != err {
		t.Fatalf("request user: %s error: %s", name, err)
	}
	if _, err := h.ApproveUser(registrarCaller, name, nationalId); nil != err {
		t.Fatalf("approve user: %s error: %s", name, err)
	}
	for _, id := range recharges {
		if _, err := h.RechargeAccount(userCaller, name, nationalId, id); nil != err {
			t.Fatalf("recharge: %s error: %s", name, err)
		}
	}
}

func addProperty(t *testing.T, h *Host, propertyId string, price uint64, name string, nationalId string) {
	if _, err := h.RequestPropertyRegistration(userCaller, propertyId, price, name, nationalId); nil != err {
		t.Fatalf("request property: %s error: %s", propertyId, err)
	}
	if _, err := h.ApproveProperty(registrarCaller, propertyId); nil != err {
		t.Fatalf("approve property: %s error: %s", propertyId, err)
	}
	if _, err := h.UpdateProperty(userCaller, propertyId, name, nationalId, "onSale"); nil != err {
		t.Fatalf("list property: %s error: %s", propertyId, err)
	}
}
