// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding/hex"

	"golang.org/x/crypto/sha3"
)

// FingerprintBytes - to hold type for fingerprint
type FingerprintBytes [32]byte

// Fingerprint - fingerprint a certificate
//
// the same value is shown by:
// openssl x509 -noout -in rpc.crt -outform DER | openssl dgst -sha3-256
func Fingerprint(certificate []byte) FingerprintBytes {
	return sha3.Sum256(certificate)
}

// String - hex form of the fingerprint
func (f FingerprintBytes) String() string {
	return hex.EncodeToString(f[:])
}

// MarshalText - hex form for JSON
func (f FingerprintBytes) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}
