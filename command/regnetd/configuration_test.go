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

const (
	testingDirName = "testing"
)

const nodeConfiguration = `
local M = {}

M.data_directory = "."
M.pidfile = "regnetd.pid"

M.database = {
    directory = "data",
    name = "regnet",
}

M.users_organisation = "usersMSP"
M.registrar_organisation = "registrarMSP"
M.unique_users = false

M.recharge = {
    upg200 = 200,
}

M.credentials = {
    { credential = "user-secret", id = "user-1", organisation = "usersMSP" },
    { credential = "registrar-secret", id = "registrar-1", organisation = "registrarMSP" },
}

M.client_rpc = {
    maximum_connections = 5,
    listen = { "127.0.0.1:2130" },
    certificate = "rpc.crt",
    private_key = "rpc.key",
}

M.logging = {
    size = 1048576,
    count = 2,
    directory = "log",
    file = "regnetd.log",
    levels = {
        DEFAULT = "info",
    },
}

return M
`

func writeConfiguration(t *testing.T, contents string) string {
	err := os.MkdirAll(testingDirName, 0700)
	if nil != err {
		t.Fatalf("mkdir error: %s", err)
	}
	fileName := filepath.Join(testingDirName, "regnetd.conf")
	err = os.WriteFile(fileName, []byte(contents), 0600)
	if nil != err {
		t.Fatalf("write configuration error: %s", err)
	}
	return fileName
}

func TestGetConfiguration(t *testing.T) {
	defer os.RemoveAll(testingDirName)

	fileName := writeConfiguration(t, nodeConfiguration)

	conf, err := getConfiguration(fileName, nil)
	assert.Nil(t, err, "wrong getConfiguration")

	dir, _ := filepath.Abs(testingDirName)

	assert.Equal(t, filepath.Join(dir, "regnetd.pid"), conf.PidFile, "wrong pid file")
	assert.Equal(t, filepath.Join(dir, "data"), conf.Database.Directory, "wrong database directory")
	assert.Equal(t, "regnet", conf.Database.Name, "wrong database name")
	assert.Equal(t, filepath.Join(dir, "rpc.crt"), conf.ClientRPC.Certificate, "wrong rpc certificate")
	assert.Equal(t, filepath.Join(dir, "rpc.key"), conf.HttpsRPC.PrivateKey, "wrong https default key")
	assert.Equal(t, uint64(5), conf.ClientRPC.MaximumConnections, "wrong connection limit")
	assert.Equal(t, []string{"127.0.0.1:2130"}, conf.ClientRPC.Listen, "wrong listen")
	assert.Equal(t, 0, len(conf.HttpsRPC.Listen), "https should be disabled")
	assert.False(t, conf.UniqueUsers, "unique users not overridden")
	assert.Equal(t, map[string]uint64{"upg200": 200}, conf.rechargeAmounts(), "wrong recharge")
	assert.Equal(t, 2, len(conf.Credentials), "wrong credential count")
	assert.Equal(t, "registrar-1", conf.Credentials[1].Id, "wrong credential id")

	info, err := os.Stat(conf.Logging.Directory)
	assert.Nil(t, err, "log directory not created")
	assert.True(t, info.IsDir(), "log directory is not a directory")
}

func TestGetConfigurationDefaults(t *testing.T) {
	defer os.RemoveAll(testingDirName)

	fileName := writeConfiguration(t, `return { data_directory = "." }`)

	conf, err := getConfiguration(fileName, nil)
	assert.Nil(t, err, "wrong getConfiguration")

	assert.Equal(t, "", conf.PidFile, "pid file should be optional")
	assert.Equal(t, defaultUsersOrganisation, conf.UsersOrganisation, "wrong users organisation")
	assert.Equal(t, defaultRegistrarOrganisation, conf.RegistrarOrganisation, "wrong registrar organisation")
	assert.True(t, conf.UniqueUsers, "wrong unique users default")
	assert.Equal(t, registration.DefaultRecharge, conf.rechargeAmounts(), "wrong recharge default")
	assert.Equal(t, 0, len(conf.Credentials), "wrong credential default")
}

func TestGetConfigurationErrors(t *testing.T) {
	defer os.RemoveAll(testingDirName)

	tests := []struct {
		name     string
		contents string
	}{
		{"no data directory", `return {}`},
		{"missing data directory", `return { data_directory = "/no/such/directory/here" }`},
		{"same organisations", `return { data_directory = ".", users_organisation = "x", registrar_organisation = "x" }`},
		{"blank organisation", `return { data_directory = ".", users_organisation = "" }`},
		{"database path", `return { data_directory = ".", database = { name = "a/b" } }`},
		{"not a table", `return 42`},
		{"syntax", `return {`},
	}

	for _, test := range tests {
		fileName := writeConfiguration(t, test.contents)
		_, err := getConfiguration(fileName, nil)
		assert.NotNil(t, err, test.name)
	}
}
