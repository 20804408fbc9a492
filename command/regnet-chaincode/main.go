// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/regnetd/chaincode"
	"github.com/bitmark-inc/regnetd/registration"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
	}

	program, options, _, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		fmt.Printf("%s\n", version)
		return
	}

	configurationFile := os.Getenv(configurationVariable)
	if len(options["config-file"]) > 0 {
		configurationFile = options["config-file"][0]
	}

	theConfiguration, err := getConfiguration(configurationFile, os.Getenv)
	if nil != err {
		exitwithstatus.Message("%s: configuration error: %s", program, err)
	}

	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	log := logger.New("main")
	defer log.Info("finished")
	log.Infof("version: %s", version)
	log.Infof("users organisation: %q", theConfiguration.UsersOrganisation)
	log.Infof("registrar organisation: %q", theConfiguration.RegistrarOrganisation)

	recharge := registration.NewRecharge(theConfiguration.Recharge)

	cc, err := chaincode.NewChaincode(recharge, chaincode.Configuration{
		UsersOrganisation:     theConfiguration.UsersOrganisation,
		RegistrarOrganisation: theConfiguration.RegistrarOrganisation,
		UniqueUsers:           theConfiguration.UniqueUsers,
	})
	if nil != err {
		log.Criticalf("create chaincode error: %s", err)
		exitwithstatus.Message("%s: create chaincode error: %s", program, err)
	}

	// blocks until the peer closes the stream
	if err := cc.Start(); nil != err {
		log.Criticalf("chaincode start error: %s", err)
		exitwithstatus.Message("%s: chaincode start error: %s", program, err)
	}
}
