// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// the Go type of each instance is its class, so callers can either
// compare against an instance or test the class with the IsErrX
// functions; both work through wrapping with fmt.Errorf("%w")
package fault
