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
	"errors"
	"fmt"

	"github.com/KhanPython/RoAdmin/internal/opencloud"
	"github.com/KhanPython/RoAdmin/internal/render"
)

// Status is the outcome status of the request.
type Status uint8

const (
	StatusOK Status = iota
	StatusInvalidInput
	StatusMissingCredential
	StatusUniverseNotFound
	StatusNotFound
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusInvalidInput:
		return "invalid_input"
	case StatusMissingCredential:
		return "missing_credential"
	case StatusUniverseNotFound:
		return "universe_not_found"
	case StatusNotFound:
		return "not_found"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Outcome is the result of the request.  If the Status is StatusOK, the Plan
// is set, otherwise Message explains what went wrong.
type Outcome struct {
	Status  Status
	Message string

	Title      string
	Key        string
	UniverseID int64
	Datastore  string

	Universe opencloud.UniverseInfo
	Meta     opencloud.EntryMeta
	Plan     *render.Plan
}

// OK returns true if the entry was retrieved.
func (o *Outcome) OK() bool {
	return o.Status == StatusOK
}

func (o *Outcome) with(st Status, msg string) *Outcome {
	o.Status = st
	o.Message = msg
	return o
}

// TransportError is the failure to communicate with the remote service.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	if e.Err == nil {
		return e.Op + ": transport failure"
	}
	return e.Op + ": " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ErrorMessage converts the fault to the user-facing message, capped at
// render.ErrorMessageLimit characters.
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var msg string
	switch {
	case errors.Is(err, render.ErrSizeOverflow):
		msg = "The entry is too large to display or attach: " + err.Error()
	default:
		msg = "Error: " + err.Error()
	}
	return render.TruncateMessage(msg, render.ErrorMessageLimit)
}
