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

// Package chttp (Configured HTTP) provides the http.Client used to talk to
// the Roblox APIs.
package chttp

import (
	"net/http"
	"time"
)

// DefTimeout is the default request timeout.
const DefTimeout = 30 * time.Second

// DefUserAgent is sent with every request, unless overridden.
const DefUserAgent = "RoAdmin (+https://github.com/KhanPython/RoAdmin)"

// NewWithTransport inits the HTTP client with the User-Agent header set on
// every request.  It allows to use the custom Transport.
func NewWithTransport(userAgent string, timeout time.Duration, rt http.RoundTripper) *http.Client {
	if userAgent == "" {
		userAgent = DefUserAgent
	}
	if timeout <= 0 {
		timeout = DefTimeout
	}
	cl := http.Client{
		Transport: NewTransport(rt, userAgent),
		Timeout:   timeout,
	}
	return &cl
}

// New returns the HTTP client with the default transport and timeout.
func New(userAgent string) *http.Client {
	return NewWithTransport(userAgent, DefTimeout, nil)
}

// Transport sets the User-Agent header on the requests that don't have one.
type Transport struct {
	rt        http.RoundTripper
	userAgent string
}

// NewTransport wraps rt.  If rt is nil, http.DefaultTransport is used.
func NewTransport(rt http.RoundTripper, userAgent string) *Transport {
	if rt == nil {
		rt = http.DefaultTransport
	}
	return &Transport{rt: rt, userAgent: userAgent}
}

func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") != "" {
		return t.rt.RoundTrip(req)
	}
	// RoundTrip must not modify the request.
	r := req.Clone(req.Context())
	r.Header.Set("User-Agent", t.userAgent)
	return t.rt.RoundTrip(r)
}
