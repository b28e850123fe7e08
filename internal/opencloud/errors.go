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
	"errors"
	"fmt"
	"strings"

	"github.com/buger/jsonparser"
)

var (
	// ErrNotFound is returned by Universe if the universe does not exist.
	ErrNotFound = errors.New("universe not found")
	// ErrNoAPIKey is returned if there's no API key for the universe.
	ErrNoAPIKey = errors.New("no api key for the universe")
	// ErrMalformed is returned if the response body could not be parsed.
	ErrMalformed = errors.New("malformed response")
)

// Error is the Open Cloud request error.
type Error struct {
	Op         string // operation, i.e. "GetEntry"
	StatusCode int    // HTTP status, 0 if the request did not complete
	Code       string // Open Cloud error code, i.e. "INSUFFICIENT_SCOPE"
	Message    string // Open Cloud error message
	Err        error  // underlying error
}

func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Op)
	if e.StatusCode != 0 {
		fmt.Fprintf(&sb, ": HTTP %d", e.StatusCode)
	}
	if e.Code != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Code)
	}
	if e.Message != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Message)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// parseError makes the Error from the Open Cloud error response body, which
// is either {"error": "CODE", "message": "..."} or {"code": "CODE",
// "message": "..."}, or anything else, if the gateway failed.
func parseError(op string, status int, body []byte) *Error {
	e := &Error{Op: op, StatusCode: status}
	if code, err := jsonparser.GetString(body, "error"); err == nil {
		e.Code = code
	} else if code, err := jsonparser.GetString(body, "code"); err == nil {
		e.Code = code
	}
	if msg, err := jsonparser.GetString(body, "message"); err == nil {
		e.Message = msg
	} else if len(body) > 0 && e.Code == "" {
		e.Message = strings.TrimSpace(string(truncBody(body)))
	}
	return e
}

const maxErrBody = 256

func truncBody(b []byte) []byte {
	if len(b) > maxErrBody {
		return b[:maxErrBody]
	}
	return b
}
