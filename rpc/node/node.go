// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"
	"github.com/bitmark-inc/regnetd/contract"
	"github.com/bitmark-inc/regnetd/counter"
	"github.com/bitmark-inc/regnetd/rpc/ratelimit"
	"github.com/bitmark-inc/regnetd/rpc/registry"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log      *logger.L
	Limiter  *rate.Limiter
	Start    time.Time
	Version  string
	Registry registry.Registry
	counter  *counter.Counter
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version     string              `json:"version"`
	Uptime      string              `json:"uptime"`
	RPCs        uint64              `json:"rpcs"`
	Invocations contract.Statistics `json:"invocations"`
}

func New(log *logger.L, r registry.Registry, start time.Time, version string, counter *counter.Counter) *Node {
	return &Node{
		Log:      log,
		Limiter:  ratelimit.New(rateLimitNode, rateBurstNode),
		Start:    start,
		Version:  version,
		Registry: r,
		counter:  counter,
	}
}

// Info - return some information about this node
// only enough for clients to determine node state
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.RPCs = node.counter.Uint64()
	reply.Invocations = node.Registry.Statistics()
	return nil
}
