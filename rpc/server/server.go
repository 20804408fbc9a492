// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/regnetd/counter"
	"github.com/bitmark-inc/regnetd/rpc/node"
	"github.com/bitmark-inc/regnetd/rpc/property"
	"github.com/bitmark-inc/regnetd/rpc/receipt"
	"github.com/bitmark-inc/regnetd/rpc/registrar"
	"github.com/bitmark-inc/regnetd/rpc/registry"
	"github.com/bitmark-inc/regnetd/rpc/user"
)

// Create - an RPC server with all of the types registered
func Create(log *logger.L, version string, r registry.Registry, credentials registry.Credentials, rpcCount *counter.Counter) *rpc.Server {

	start := time.Now().UTC()

	server := rpc.NewServer()

	_ = server.Register(user.New(log, r, credentials))
	_ = server.Register(property.New(log, r, credentials))
	_ = server.Register(receipt.New(log, r, credentials))
	_ = server.Register(registrar.New(log, r, credentials))
	_ = server.Register(node.New(log, r, start, version, rpcCount))

	return server
}
