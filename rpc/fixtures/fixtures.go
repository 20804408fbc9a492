// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"fmt"
	"os"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/regnetd/identity"
)

const (
	dir         = "testing"
	LogCategory = "testing"

	UserCredential      = "user-credential"
	RegistrarCredential = "registrar-credential"
	UsersOrganisation   = "usersMSP"
	RegistrarOrg        = "registrarMSP"
)

var (
	User      = identity.NewMember("user-1", UsersOrganisation)
	Registrar = identity.NewMember("registrar-1", RegistrarOrg)
)

func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// CertificatePair - a fresh self-signed PEM certificate and key
func CertificatePair() (string, string, error) {
	validUntil := time.Now().Add(24 * time.Hour)
	cert, key, err := certgen.NewTLSCertPair("regnetd testing", validUntil, false, []string{"127.0.0.1"})
	if nil != err {
		return "", "", err
	}
	return string(cert), string(key), nil
}

// WriteCertificatePair - write a fresh pair into the testing directory
func WriteCertificatePair(name string) (string, string, error) {
	cert, key, err := CertificatePair()
	if nil != err {
		return "", "", err
	}
	certificateFile := fmt.Sprintf("%s/%s.crt", dir, name)
	keyFile := fmt.Sprintf("%s/%s.key", dir, name)
	if err := os.WriteFile(certificateFile, []byte(cert), 0600); nil != err {
		return "", "", err
	}
	if err := os.WriteFile(keyFile, []byte(key), 0600); nil != err {
		return "", "", err
	}
	return certificateFile, keyFile, nil
}
