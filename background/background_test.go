// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/regnetd/background"
)

type ticker struct {
	count    int64
	finished int32
}

func (state *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	step := args.(int64)

loop:
	for {
		select {
		case <-shutdown:
			break loop
		default:
		}
		atomic.AddInt64(&state.count, step)
		time.Sleep(time.Millisecond)
	}

	atomic.StoreInt32(&state.finished, 1)
}

func TestBackground(t *testing.T) {
	proc1 := &ticker{}
	proc2 := &ticker{}

	p := background.Start(background.Processes{proc1, proc2}, int64(3))
	time.Sleep(50 * time.Millisecond)
	p.Stop()

	assert.Equal(t, int32(1), atomic.LoadInt32(&proc1.finished), "first process not finished")
	assert.Equal(t, int32(1), atomic.LoadInt32(&proc2.finished), "second process not finished")
	assert.True(t, atomic.LoadInt64(&proc1.count) > 0, "first process did not run")
	assert.Equal(t, int64(0), atomic.LoadInt64(&proc2.count)%3, "wrong argument")

	// a second stop must not panic
	p.Stop()
}

func TestBackgroundEmpty(t *testing.T) {
	p := background.Start(nil, nil)
	p.Stop()
}
