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
	"runtime/trace"
	"strconv"

	"github.com/buger/jsonparser"
)

// Universe returns the universe information from the games API.  It returns
// ErrNotFound if the universe does not exist.  IconURL is not populated.
func (c *Client) Universe(ctx context.Context, universeID int64) (*UniverseInfo, error) {
	ctx, task := trace.NewTask(ctx, "Universe")
	defer task.End()

	const op = "Universe"
	u := fmt.Sprintf("%s/v1/games?universeIds=%d", c.gamesBase, universeID)
	resp, err := c.get(ctx, c.publicLim, u, nil)
	if err != nil {
		return nil, wrapErr(op, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, parseError(op, resp.StatusCode, resp.Body)
	}
	return parseGames(op, universeID, resp.Body)
}

// parseGames parses the games API response:
//
//	{"data":[{"id":1,"rootPlaceId":2,"name":"X","creator":{"name":"Y"}}]}
func parseGames(op string, universeID int64, body []byte) (*UniverseInfo, error) {
	var (
		info  *UniverseInfo
		found bool
	)
	_, err := jsonparser.ArrayEach(body, func(game []byte, dataType jsonparser.ValueType, _ int, _ error) {
		if found || dataType != jsonparser.Object {
			return
		}
		id, err := jsonparser.GetInt(game, "id")
		if err != nil || id != universeID {
			return
		}
		found = true
		info = &UniverseInfo{ID: id, Exists: true}
		info.Name, _ = jsonparser.GetString(game, "name")
		info.RootPlaceID, _ = jsonparser.GetInt(game, "rootPlaceId")
		info.Creator, _ = jsonparser.GetString(game, "creator", "name")
	}, "data")
	if err != nil {
		return nil, &Error{Op: op, StatusCode: http.StatusOK, Err: fmt.Errorf("%w: %w", ErrMalformed, err)}
	}
	if !found {
		return nil, &Error{Op: op, StatusCode: http.StatusOK, Err: ErrNotFound}
	}
	if info.Name == "" {
		info.Name = DefUniverseName
	}
	return info, nil
}

// UniverseIcon returns the URL of the universe icon.  It returns an empty
// string if the icon is not ready.
func (c *Client) UniverseIcon(ctx context.Context, universeID int64) (string, error) {
	const op = "UniverseIcon"
	u := c.thumbsBase + "/v1/games/icons?universeIds=" + strconv.FormatInt(universeID, 10) + "&size=512x512&format=Png&isCircular=false"
	resp, err := c.get(ctx, c.publicLim, u, nil)
	if err != nil {
		return "", wrapErr(op, err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", parseError(op, resp.StatusCode, resp.Body)
	}
	var iconURL string
	_, err = jsonparser.ArrayEach(resp.Body, func(thumb []byte, _ jsonparser.ValueType, _ int, _ error) {
		if iconURL != "" {
			return
		}
		if state, _ := jsonparser.GetString(thumb, "state"); state != "Completed" {
			return
		}
		iconURL, _ = jsonparser.GetString(thumb, "imageUrl")
	}, "data")
	if err != nil {
		return "", &Error{Op: op, StatusCode: resp.StatusCode, Err: fmt.Errorf("%w: %w", ErrMalformed, err)}
	}
	return iconURL, nil
}

// UniverseInfo returns the display information of the universe.  It is best
// effort: it never fails, on errors the defaults are returned.
func (c *Client) UniverseInfo(ctx context.Context, universeID int64) UniverseInfo {
	ctx, task := trace.NewTask(ctx, "UniverseInfo")
	defer task.End()

	lg := c.lg.With("universe_id", universeID)
	info := UniverseInfo{ID: universeID, Name: DefUniverseName}
	if u, err := c.Universe(ctx, universeID); err != nil {
		lg.DebugContext(ctx, "universe name unavailable", "error", err)
	} else {
		info = *u
	}
	icon, err := c.UniverseIcon(ctx, universeID)
	if err != nil {
		lg.DebugContext(ctx, "universe icon unavailable", "error", err)
	}
	info.IconURL = icon
	return info
}
