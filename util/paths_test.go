// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/regnetd/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/data/log", util.EnsureAbsolute("/data", "log"))
	assert.Equal(t, "/var/log", util.EnsureAbsolute("/data", "/var/log"))
	assert.Equal(t, "/data/x", util.EnsureAbsolute("/data/", "./y/../x"))
}

func TestIsPlainName(t *testing.T) {
	assert.True(t, util.IsPlainName("state"))
	assert.False(t, util.IsPlainName("dir/state"))
	assert.False(t, util.IsPlainName("/state"))
	assert.False(t, util.IsPlainName(""))
}

func TestFingerprint(t *testing.T) {
	f1 := util.Fingerprint([]byte("certificate one"))
	f2 := util.Fingerprint([]byte("certificate two"))
	assert.NotEqual(t, f1, f2, "fingerprints collide")
	assert.Equal(t, 64, len(f1.String()), "wrong text length")
}
