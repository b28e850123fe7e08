// Copyright (c) 2021-2026 Rustam Gilyazov and Contributors.
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package cache

import (
	"fmt"
	"sort"
	"sync"
)

// Keyring is the in-memory set of the API keys, indexed by the universe id.
// It is safe for concurrent use.
type Keyring struct {
	mu   sync.RWMutex
	keys map[int64]string
}

// NewKeyring returns the keyring with a copy of keys.
func NewKeyring(keys map[int64]string) *Keyring {
	kr := &Keyring{keys: make(map[int64]string, len(keys))}
	for id, k := range keys {
		if id > 0 && k != "" {
			kr.keys[id] = k
		}
	}
	return kr
}

// HasCredential reports whether the API key for the universe is present.
// It never reveals the key.
func (kr *Keyring) HasCredential(universeID int64) bool {
	if kr == nil {
		return false
	}
	kr.mu.RLock()
	defer kr.mu.RUnlock()
	_, ok := kr.keys[universeID]
	return ok
}

// APIKey returns the API key for the universe.  It is intended only for the
// transport, that puts it in the request header.
func (kr *Keyring) APIKey(universeID int64) (string, bool) {
	if kr == nil {
		return "", false
	}
	kr.mu.RLock()
	defer kr.mu.RUnlock()
	k, ok := kr.keys[universeID]
	return k, ok
}

// Set adds or replaces the key for the universe.
func (kr *Keyring) Set(universeID int64, apiKey string) {
	kr.mu.Lock()
	defer kr.mu.Unlock()
	kr.keys[universeID] = apiKey
}

// Universes returns the sorted list of the universe ids in the keyring.
func (kr *Keyring) Universes() []int64 {
	kr.mu.RLock()
	defer kr.mu.RUnlock()
	ids := make([]int64, 0, len(kr.keys))
	for id := range kr.keys {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Len returns the number of keys.
func (kr *Keyring) Len() int {
	kr.mu.RLock()
	defer kr.mu.RUnlock()
	return len(kr.keys)
}

// MissingKeyHelp returns the message shown to the user when there's no API
// key for the universe.
func MissingKeyHelp(universeID int64) string {
	return fmt.Sprintf("No API key found for universe %d. Register one with:\n\n    roadmin key add %[1]d\n\nThe key needs the \"universe-datastores.objects:read\" permission.", universeID)
}
