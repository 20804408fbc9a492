// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/regnetd/configuration"
	"github.com/bitmark-inc/regnetd/registration"
)

// environment overrides, the peer launches chaincode with env only
const (
	configurationVariable = "REGNET_CONFIG"
	usersVariable         = "REGNET_USERS_ORGANISATION"
	registrarVariable     = "REGNET_REGISTRAR_ORGANISATION"
	uniqueUsersVariable   = "REGNET_UNIQUE_USERS"
	logDirectoryVariable  = "REGNET_LOG_DIRECTORY"
)

const (
	defaultUsersOrg     = "usersMSP"
	defaultRegistrarOrg = "registrarMSP"
	defaultLogFile      = "regnet-chaincode.log"
	defaultLogCount     = 10
	defaultLogSize      = 1024 * 1024
	defaultLogLevel     = "info"
)

// Configuration - chaincode settings
type Configuration struct {
	UsersOrganisation     string               `gluamapper:"users_organisation"`
	RegistrarOrganisation string               `gluamapper:"registrar_organisation"`
	UniqueUsers           bool                 `gluamapper:"unique_users"`
	Recharge              map[string]uint64    `gluamapper:"recharge"`
	Logging               logger.Configuration `gluamapper:"logging"`
}

// defaults, then the optional Lua file, then the environment
func getConfiguration(fileName string, getenv func(string) string) (*Configuration, error) {

	options := &Configuration{
		UsersOrganisation:     defaultUsersOrg,
		RegistrarOrganisation: defaultRegistrarOrg,
		UniqueUsers:           true,
		Logging: logger.Configuration{
			Directory: os.TempDir(),
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels: map[string]string{
				logger.DefaultTag: defaultLogLevel,
			},
		},
	}

	if "" != fileName {
		err := configuration.ParseConfigurationFile(fileName, options, nil)
		if nil != err {
			return nil, err
		}
	}

	if s := getenv(usersVariable); "" != s {
		options.UsersOrganisation = s
	}
	if s := getenv(registrarVariable); "" != s {
		options.RegistrarOrganisation = s
	}
	if s := getenv(uniqueUsersVariable); "" != s {
		b, err := strconv.ParseBool(s)
		if nil != err {
			return nil, fmt.Errorf("%s: %q  error: %s", uniqueUsersVariable, s, err)
		}
		options.UniqueUsers = b
	}
	if s := getenv(logDirectoryVariable); "" != s {
		options.Logging.Directory = s
	}

	if 0 == len(options.Recharge) {
		options.Recharge = registration.DefaultRecharge
	}

	if options.UsersOrganisation == options.RegistrarOrganisation {
		return nil, fmt.Errorf("organisations: %q cannot be both users and registrar", options.UsersOrganisation)
	}

	return options, nil
}
