// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/regnetd/fault"
)

func runWith(arguments ...string) (string, error) {
	app := newApp()
	var out bytes.Buffer
	app.Writer = &out
	app.ErrWriter = &out
	err := app.Run(append([]string{"regnet-cli"}, arguments...))
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := runWith("version")
	assert.Nil(t, err, "wrong version")
	assert.Equal(t, version+"\n", out, "wrong output")
}

func TestMissingParameters(t *testing.T) {
	tests := [][]string{
		{"request-user", "--name", "Asha"},
		{"recharge", "--name", "Asha", "--national-id", "A1"},
		{"approve-property"},
		{"update-property", "-n", "Asha", "-a", "A1", "-p", "P-1"},
	}
	for _, arguments := range tests {
		_, err := runWith(arguments...)
		assert.True(t, errors.Is(err, fault.ErrMissingParameters), "wrong error for: %v", arguments)
	}
}

func TestZeroPrice(t *testing.T) {
	_, err := runWith("request-property", "-n", "Asha", "-a", "A1", "-p", "P-1")
	assert.Equal(t, fault.ErrInvalidPrice, err, "wrong error")
}

func TestMissingConnect(t *testing.T) {
	_, err := runWith("--connect", "", "info")
	assert.Equal(t, ErrMissingConnect, err, "wrong error")
}
