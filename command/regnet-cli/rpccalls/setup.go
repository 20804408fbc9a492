// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/bitmark-inc/regnetd/fault"
)

// Client - to hold RPC connections streams
type Client struct {
	conn       net.Conn
	client     *rpc.Client
	credential string
	verbose    bool
	handle     io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a regnetd
func NewClient(connect string, credential string, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	return newClient(conn, credential, verbose, handle), nil
}

func newClient(conn net.Conn, credential string, verbose bool, handle io.Writer) *Client {
	return &Client{
		conn:       conn,
		client:     jsonrpc.NewClient(conn),
		credential: credential,
		verbose:    verbose,
		handle:     handle,
	}
}

// Close - shutdown the regnetd connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}

// run one call, server errors are mapped back to their fault
// values so callers can test them
func (c *Client) call(method string, arguments interface{}, reply interface{}) error {
	c.printJson(method+" request", arguments)

	err := c.client.Call(method, arguments, reply)
	if nil != err {
		if serverError, ok := err.(rpc.ServerError); ok {
			if e, found := fault.Lookup(string(serverError)); found {
				return e
			}
		}
		return err
	}

	c.printJson(method+" reply", reply)
	return nil
}

func (c *Client) printJson(title string, message interface{}) error {

	if !c.verbose {
		return nil
	}

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(c.handle, "%s:\n%s\n", title, b)
	return nil
}
