// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package rpc - this is to setup and handle all of the incoming JSON RPC requests
// from clients requiring regnetd services
//
// standard golang RPC services can be used on the client side to
// access these services; every argument carries the credential of
// the calling member which is resolved to an identity before the
// operation is invoked
package rpc
