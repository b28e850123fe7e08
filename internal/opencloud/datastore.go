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
	"context"
	"fmt"
	"net/http"
	"net/url"
	"runtime/trace"
	"strconv"
	"strings"
	"time"

	"github.com/buger/jsonparser"

	"github.com/KhanPython/RoAdmin/internal/entry"
)

// entry metadata headers
const (
	hdrVersion     = "Roblox-Entry-Version"
	hdrCreated     = "Roblox-Entry-Created-Time"
	hdrVersionTime = "Roblox-Entry-Version-Created-Time"
	hdrUserIDs     = "Roblox-Entry-Userids"
	hdrAttributes  = "Roblox-Entry-Attributes"
)

// GetEntry reads the standard datastore entry with the key.  The result is
// never nil: transport and protocol errors are returned in the FetchResult
// with Success set to false, the missing entry has Success set to true and
// nil Data.
func (c *Client) GetEntry(ctx context.Context, key string, universeID int64, datastore string) FetchResult {
	ctx, task := trace.NewTask(ctx, "GetEntry")
	defer task.End()
	return c.getEntry(ctx, "GetEntry", key, universeID, datastore)
}

// GetRecord reads the record of the user with userID from the datastore.  The
// entry key is the decimal user id, or the record key template applied to
// the user id (see WithRecordKey).
func (c *Client) GetRecord(ctx context.Context, userID int64, universeID int64, datastore string) FetchResult {
	ctx, task := trace.NewTask(ctx, "GetRecord")
	defer task.End()
	return c.getEntry(ctx, "GetRecord", c.RecordKey(userID), universeID, datastore)
}

// RecordKey returns the entry key of the user record.
func (c *Client) RecordKey(userID int64) string {
	if c.keyTemplate == "" {
		return strconv.FormatInt(userID, 10)
	}
	return fmt.Sprintf(c.keyTemplate, userID)
}

func (c *Client) entryURL(key string, universeID int64, datastore string) string {
	q := url.Values{
		"datastoreName": {datastore},
		"entryKey":      {key},
	}
	return fmt.Sprintf("%s/datastores/v1/universes/%d/standard-datastores/datastore/entries/entry?%s", c.apiBase, universeID, q.Encode())
}

func (c *Client) getEntry(ctx context.Context, op string, key string, universeID int64, datastore string) FetchResult {
	lg := c.lg.With("op", op, "universe_id", universeID, "datastore", datastore, "key", key)
	apiKey, ok := c.keys.APIKey(universeID)
	if !ok {
		return FetchResult{Err: &Error{Op: op, Err: ErrNoAPIKey}}
	}
	hdr := http.Header{"X-Api-Key": {apiKey}}

	start := time.Now()
	resp, err := c.get(ctx, c.limiter(universeID), c.entryURL(key, universeID, datastore), hdr)
	if err != nil {
		lg.WarnContext(ctx, "request failed", "error", err)
		return FetchResult{Err: wrapErr(op, err)}
	}
	lg.DebugContext(ctx, "response", "status", resp.StatusCode, "size", len(resp.Body), "took", time.Since(start))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return FetchResult{Success: true}
	case resp.StatusCode != http.StatusOK:
		return FetchResult{Err: parseError(op, resp.StatusCode, resp.Body)}
	}

	v, err := entry.Parse(resp.Body)
	if err != nil {
		return FetchResult{Err: &Error{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("%w: %w", ErrMalformed, err)}}
	}
	meta, err := parseMeta(resp.Header)
	if err != nil {
		// metadata is informational, the entry is still good.
		lg.WarnContext(ctx, "malformed entry metadata", "error", err)
	}
	return FetchResult{Success: true, Data: &v, Meta: meta}
}

// parseMeta parses the entry metadata headers.  It returns all the values it
// could parse, and the first error encountered.
func parseMeta(h http.Header) (EntryMeta, error) {
	var (
		m        EntryMeta
		firstErr error
	)
	setErr := func(err error) {
		if firstErr == nil {
			firstErr = err
		}
	}
	m.Version = h.Get(hdrVersion)
	if v := h.Get(hdrCreated); v != "" {
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			setErr(fmt.Errorf("%s: %w", hdrCreated, err))
		}
		m.CreatedTime = t.UTC()
	}
	if v := h.Get(hdrVersionTime); v != "" {
		t, err := time.Parse(time.RFC3339Nano, v)
		if err != nil {
			setErr(fmt.Errorf("%s: %w", hdrVersionTime, err))
		}
		m.UpdatedTime = t.UTC()
	}
	if v := strings.TrimSpace(h.Get(hdrUserIDs)); v != "" {
		_, err := jsonparser.ArrayEach([]byte(v), func(value []byte, dataType jsonparser.ValueType, _ int, _ error) {
			if dataType != jsonparser.Number {
				return
			}
			if id, err := jsonparser.ParseInt(value); err == nil {
				m.UserIDs = append(m.UserIDs, id)
			}
		})
		if err != nil {
			setErr(fmt.Errorf("%s: %w", hdrUserIDs, err))
		}
	}
	if v := strings.TrimSpace(h.Get(hdrAttributes)); v != "" {
		attrs, err := entry.Parse([]byte(v))
		if err != nil {
			setErr(fmt.Errorf("%s: %w", hdrAttributes, err))
		}
		m.Attributes = attrs
	}
	return m, firstErr
}
