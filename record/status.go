// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

// UserStatus - approval state of a user
type UserStatus string

// possible user states
const (
	UserPending  UserStatus = "Pending"
	UserApproved UserStatus = "Approved"
)

// PropertyStatus - life cycle state of a property
type PropertyStatus string

// possible property states
const (
	PropertyRequested  PropertyStatus = "requested"
	PropertyRegistered PropertyStatus = "registered"
	PropertyOnSale     PropertyStatus = "onSale"
)

// IsValid - true for a known user status
func (s UserStatus) IsValid() bool {
	switch s {
	case UserPending, UserApproved:
		return true
	default:
		return false
	}
}

// IsValid - true for a known property status
func (s PropertyStatus) IsValid() bool {
	switch s {
	case PropertyRequested, PropertyRegistered, PropertyOnSale:
		return true
	default:
		return false
	}
}

// IsSettableByOwner - only registered and onSale may be set by the owner
func (s PropertyStatus) IsSettableByOwner() bool {
	return PropertyRegistered == s || PropertyOnSale == s
}
