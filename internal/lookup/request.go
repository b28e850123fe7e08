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

package lookup

import (
	"fmt"
	"strconv"
	"strings"
)

// DefRecordDatastore is the default datastore of the player records.
const DefRecordDatastore = "player_currency"

// InputError is the request validation error.
type InputError struct {
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

var (
	errNoKey       = &InputError{"Please provide a valid entry key."}
	errNoUniverse  = &InputError{"Please provide a valid Universe ID."}
	errNoDatastore = &InputError{"Please provide a datastore name."}
	errNoUser      = &InputError{"Please provide a valid User ID."}
)

// EntryRequest is the request of the entry by its key.
type EntryRequest struct {
	Key        string
	UniverseID int64
	Datastore  string
}

// normalise trims the datastore name.  The key is used as is, as the keys
// may contain the leading or trailing spaces.
func (r *EntryRequest) normalise() {
	r.Datastore = strings.TrimSpace(r.Datastore)
}

// Validate validates the request.
func (r EntryRequest) Validate() *InputError {
	switch {
	case strings.TrimSpace(r.Key) == "":
		return errNoKey
	case r.UniverseID <= 0:
		return errNoUniverse
	case strings.TrimSpace(r.Datastore) == "":
		return errNoDatastore
	}
	return nil
}

// RecordRequest is the request of the user record.
type RecordRequest struct {
	UserID     int64
	UniverseID int64
	Datastore  string // DefRecordDatastore, if empty
}

func (r *RecordRequest) normalise() {
	r.Datastore = strings.TrimSpace(r.Datastore)
	if r.Datastore == "" {
		r.Datastore = DefRecordDatastore
	}
}

// Validate validates the request.
func (r RecordRequest) Validate() *InputError {
	switch {
	case r.UserID <= 0:
		return errNoUser
	case r.UniverseID <= 0:
		return errNoUniverse
	}
	return nil
}

// EntryUsage and RecordUsage are the argument synopses of the commands.
const (
	EntryUsage  = "<key> <universeId> <datastore>"
	RecordUsage = "<userId> <universeId> [datastore]"
)

// ParseEntryArgs parses the command text "<key> <universeId> <datastore>".
// Missing or malformed values are left empty, so that Validate reports them.
func ParseEntryArgs(text string) (EntryRequest, error) {
	args := strings.Fields(text)
	if len(args) > 3 {
		return EntryRequest{}, &InputError{fmt.Sprintf("Too many arguments, expected: %s", EntryUsage)}
	}
	var req EntryRequest
	if len(args) > 0 {
		req.Key = args[0]
	}
	if len(args) > 1 {
		req.UniverseID = ParseID(args[1])
	}
	if len(args) > 2 {
		req.Datastore = args[2]
	}
	return req, nil
}

// ParseRecordArgs parses the command text "<userId> <universeId>
// [datastore]".
func ParseRecordArgs(text string) (RecordRequest, error) {
	args := strings.Fields(text)
	if len(args) > 3 {
		return RecordRequest{}, &InputError{fmt.Sprintf("Too many arguments, expected: %s", RecordUsage)}
	}
	var req RecordRequest
	if len(args) > 0 {
		req.UserID = ParseID(args[0])
	}
	if len(args) > 1 {
		req.UniverseID = ParseID(args[1])
	}
	if len(args) > 2 {
		req.Datastore = args[2]
	}
	return req, nil
}

// ParseID returns the positive id, or 0 if s is not a positive integer, so
// that Validate reports it.
func ParseID(s string) int64 {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id <= 0 {
		return 0
	}
	return id
}
