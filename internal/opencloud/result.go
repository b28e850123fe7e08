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

package opencloud

import (
	"time"

	"github.com/KhanPython/RoAdmin/internal/entry"
)

// FetchResult is the result of the datastore read.  Success with nil Data
// means that the entry was not found.  If Success is false, Err describes
// the failure.
type FetchResult struct {
	Success bool
	Data    *entry.Value
	Err     error
	Meta    EntryMeta
}

// Found returns true if the entry was retrieved.
func (r FetchResult) Found() bool {
	return r.Success && r.Data != nil
}

// ErrorMessage returns the failure message, or an empty string.
func (r FetchResult) ErrorMessage() string {
	if r.Err == nil {
		return ""
	}
	return r.Err.Error()
}

// EntryMeta is the entry metadata returned in the response headers.
type EntryMeta struct {
	Version     string
	CreatedTime time.Time
	UpdatedTime time.Time // creation time of the current version
	UserIDs     []int64
	Attributes  entry.Value // null if not set
}

// IsZero reports whether no metadata was returned.
func (m EntryMeta) IsZero() bool {
	return m.Version == "" && m.CreatedTime.IsZero() && m.UpdatedTime.IsZero() && len(m.UserIDs) == 0 && m.Attributes.IsEmpty()
}

// UniverseInfo is the display information of the universe.
type UniverseInfo struct {
	ID          int64
	Name        string
	IconURL     string // empty if not available
	RootPlaceID int64
	Creator     string
	Exists      bool
}

// DefUniverseName is the name used when the universe name is unavailable.
const DefUniverseName = "Unknown Experience"
