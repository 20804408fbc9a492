// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/regnetd/util"
)

const (
	minConnectionCount = 1
)

// Listener - a set of bound sockets serving one protocol
type Listener interface {
	Serve() error
	Stop()
}

// canonical listen addresses and the network each binds on
//
// "*:PORT" listens on both tcp4 and tcp6
func parseListenAddress(addresses []string, log *logger.L) ([]string, []string, error) {
	listen := make([]string, len(addresses))
	network := make([]string, len(addresses))
	for i, address := range addresses {
		if strings.HasPrefix(address, "*:") {
			address = "[::]:" + strings.TrimPrefix(address, "*:")
			network[i] = "tcp"
		}

		canonical, err := util.CanonicalIPandPort(address)
		if nil != err {
			log.Errorf("listen address: %q  error: %s", address, err)
			return nil, nil, err
		}
		listen[i] = canonical

		switch {
		case "" != network[i]:
		case '[' == canonical[0]:
			network[i] = "tcp6"
		default:
			network[i] = "tcp4"
		}
	}
	return listen, network, nil
}
