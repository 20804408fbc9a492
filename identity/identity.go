// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package identity - who is invoking an operation
package identity

// Caller - the identity capability an operation is given
type Caller interface {
	ID() string
	Organisation() string
	BelongsTo(organisation string) bool
}

// Member - a caller known by id and organisation
type Member struct {
	id           string
	organisation string
}

// NewMember - create a caller
func NewMember(id string, organisation string) *Member {
	return &Member{
		id:           id,
		organisation: organisation,
	}
}

// ID - unique identity of the caller
func (m *Member) ID() string {
	return m.id
}

// Organisation - the organisation that issued the identity
func (m *Member) Organisation() string {
	return m.organisation
}

// BelongsTo - true if the caller is a member of the organisation
func (m *Member) BelongsTo(organisation string) bool {
	return "" != organisation && m.organisation == organisation
}
