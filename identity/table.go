// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identity

import (
	"crypto/subtle"
	"sync"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/regnetd/fault"
)

// Credential - one entry of the configured credential table
type Credential struct {
	Credential   string `gluamapper:"credential" json:"credential"`
	Id           string `gluamapper:"id" json:"id"`
	Organisation string `gluamapper:"organisation" json:"organisation"`
}

type entry struct {
	digest [32]byte
	member *Member
}

// Table - maps presented credentials to callers
//
// only digests of the credentials are retained
type Table struct {
	sync.RWMutex
	entries []entry
}

// NewTable - build a table from configuration
func NewTable(credentials []Credential) (*Table, error) {
	t := &Table{}
	err := t.Replace(credentials)
	if nil != err {
		return nil, err
	}
	return t, nil
}

// Replace - swap in a new set of credentials
func (t *Table) Replace(credentials []Credential) error {
	entries := make([]entry, 0, len(credentials))
	for _, c := range credentials {
		if "" == c.Credential || "" == c.Id || "" == c.Organisation {
			return fault.ErrMissingParameters
		}
		entries = append(entries, entry{
			digest: sha3.Sum256([]byte(c.Credential)),
			member: NewMember(c.Id, c.Organisation),
		})
	}

	t.Lock()
	t.entries = entries
	t.Unlock()
	return nil
}

// Lookup - resolve a credential to a caller
func (t *Table) Lookup(credential string) (*Member, error) {
	if "" == credential {
		return nil, fault.ErrInvalidCredential
	}
	digest := sha3.Sum256([]byte(credential))

	t.RLock()
	defer t.RUnlock()

	var found *Member
	for _, e := range t.entries {
		if 1 == subtle.ConstantTimeCompare(digest[:], e.digest[:]) {
			found = e.member
		}
	}
	if nil == found {
		return nil, fault.ErrInvalidCredential
	}
	return found, nil
}

// Count - number of credentials held
func (t *Table) Count() int {
	t.RLock()
	defer t.RUnlock()
	return len(t.entries)
}
