// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/regnetd/registration"
)

const testingDirName = "testing"

func environment(m map[string]string) func(string) string {
	return func(k string) string {
		return m[k]
	}
}

func TestDefaults(t *testing.T) {
	conf, err := getConfiguration("", environment(nil))
	assert.Nil(t, err, "wrong getConfiguration")
	assert.Equal(t, defaultUsersOrg, conf.UsersOrganisation, "wrong users organisation")
	assert.Equal(t, defaultRegistrarOrg, conf.RegistrarOrganisation, "wrong registrar organisation")
	assert.True(t, conf.UniqueUsers, "wrong unique users")
	assert.Equal(t, registration.DefaultRecharge, conf.Recharge, "wrong recharge")
}

func TestFileThenEnvironment(t *testing.T) {
	err := os.MkdirAll(testingDirName, 0700)
	assert.Nil(t, err, "mkdir")
	defer os.RemoveAll(testingDirName)

	fileName := filepath.Join(testingDirName, "chaincode.conf")
	err = os.WriteFile(fileName, []byte(`
return {
    users_organisation = "buyersMSP",
    recharge = { upg10 = 10 },
}
`), 0600)
	assert.Nil(t, err, "write file")

	conf, err := getConfiguration(fileName, environment(map[string]string{
		registrarVariable:   "landMSP",
		uniqueUsersVariable: "false",
	}))
	assert.Nil(t, err, "wrong getConfiguration")
	assert.Equal(t, "buyersMSP", conf.UsersOrganisation, "wrong users organisation")
	assert.Equal(t, "landMSP", conf.RegistrarOrganisation, "wrong registrar organisation")
	assert.False(t, conf.UniqueUsers, "wrong unique users")
	assert.Equal(t, map[string]uint64{"upg10": 10}, conf.Recharge, "wrong recharge")
}

func TestInvalidEnvironment(t *testing.T) {
	_, err := getConfiguration("", environment(map[string]string{
		uniqueUsersVariable: "perhaps",
	}))
	assert.NotNil(t, err, "bad boolean accepted")

	_, err = getConfiguration("", environment(map[string]string{
		usersVariable:     "sameMSP",
		registrarVariable: "sameMSP",
	}))
	assert.NotNil(t, err, "same organisations accepted")
}
