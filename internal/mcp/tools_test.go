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

package mcp

import (
	"context"
	"strings"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/KhanPython/RoAdmin/internal/entry"
	"github.com/KhanPython/RoAdmin/internal/lookup"
	"github.com/KhanPython/RoAdmin/internal/opencloud"
	"github.com/KhanPython/RoAdmin/internal/render"
	"github.com/KhanPython/RoAdmin/internal/universe"
)

// firstText returns the text of the first TextContent in the result.
func firstText(t *testing.T, r *mcplib.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, r.Content, "result has no content")
	txt, ok := r.Content[0].(mcplib.TextContent)
	require.True(t, ok, "first content item is not TextContent")
	return txt.Text
}

func outcome(t *testing.T, key string, data string) *lookup.Outcome {
	t.Helper()
	plan, err := render.Build(key, entry.MustParse(data), render.DefLimits)
	require.NoError(t, err)
	return &lookup.Outcome{
		Status:     lookup.StatusOK,
		Title:      "Datastore Entry: " + key,
		Key:        key,
		UniverseID: 123456,
		Datastore:  "Economy",
		Universe:   opencloud.UniverseInfo{ID: 123456, Name: "Gold Rush"},
		Plan:       plan,
	}
}

func TestHandleShowEntry(t *testing.T) {
	t.Run("fenced", func(t *testing.T) {
		srv, lk, _ := newTestServer(t)
		lk.EXPECT().
			ShowEntry(gomock.Any(), lookup.EntryRequest{Key: "gold_100", UniverseID: 123456, Datastore: "Economy"}).
			Return(outcome(t, "gold_100", `{"currency": 250}`), nil)

		res, err := srv.handleShowEntry(context.Background(), toolReq(map[string]any{
			"key": "gold_100", "universe_id": float64(123456), "datastore": "Economy",
		}))
		require.NoError(t, err)
		assert.False(t, res.IsError)
		require.Len(t, res.Content, 1)
		text := firstText(t, res)
		assert.Contains(t, text, "Experience: Gold Rush")
		assert.Contains(t, text, "Datastore Entry: gold_100")
		assert.Contains(t, text, "\"currency\": 250")
	})
	t.Run("attachment", func(t *testing.T) {
		srv, lk, _ := newTestServer(t)
		big := `{"blob": "` + strings.Repeat("x", 10000) + `"}`
		out := outcome(t, "big key", big)
		require.Equal(t, render.FileAttachment, out.Plan.Strategy)
		lk.EXPECT().ShowEntry(gomock.Any(), gomock.Any()).Return(out, nil)

		res, err := srv.handleShowEntry(context.Background(), toolReq(map[string]any{
			"key": "big key", "universe_id": float64(123456), "datastore": "Economy",
		}))
		require.NoError(t, err)
		require.Len(t, res.Content, 2)
		er, ok := res.Content[1].(mcplib.EmbeddedResource)
		require.True(t, ok, "second content item is not EmbeddedResource")
		trc, ok := er.Resource.(mcplib.TextResourceContents)
		require.True(t, ok)
		assert.Equal(t, "roadmin://universes/123456/datastores/Economy/entries/big%20key", trc.URI)
		assert.Equal(t, "application/json", trc.MIMEType)
		assert.Equal(t, entry.MustParse(big).Canonical(), trc.Text)
		assert.Contains(t, firstText(t, res), "attachment: big_key_data.json")
	})
	t.Run("missing credential", func(t *testing.T) {
		srv, lk, _ := newTestServer(t)
		lk.EXPECT().ShowEntry(gomock.Any(), gomock.Any()).
			Return(&lookup.Outcome{Status: lookup.StatusMissingCredential, Message: "no key, run roadmin key add 1"}, nil)
		res, err := srv.handleShowEntry(context.Background(), toolReq(map[string]any{"key": "k", "universe_id": 1.0, "datastore": "ds"}))
		require.NoError(t, err)
		assert.False(t, res.IsError)
		assert.Equal(t, "no key, run roadmin key add 1", firstText(t, res))
	})
	t.Run("expected statuses are not errors", func(t *testing.T) {
		for _, st := range []lookup.Status{lookup.StatusInvalidInput, lookup.StatusUniverseNotFound} {
			srv, lk, _ := newTestServer(t)
			lk.EXPECT().ShowEntry(gomock.Any(), gomock.Any()).
				Return(&lookup.Outcome{Status: st, Message: "explained"}, nil)
			res, err := srv.handleShowEntry(context.Background(), toolReq(nil))
			require.NoError(t, err)
			assert.False(t, res.IsError, st)
			assert.Equal(t, "explained", firstText(t, res))
		}
	})
	t.Run("not found is not an error", func(t *testing.T) {
		srv, lk, _ := newTestServer(t)
		lk.EXPECT().ShowEntry(gomock.Any(), gomock.Any()).
			Return(&lookup.Outcome{Status: lookup.StatusNotFound, Message: "No data found"}, nil)
		res, err := srv.handleShowEntry(context.Background(), toolReq(nil))
		require.NoError(t, err)
		assert.False(t, res.IsError)
		assert.Equal(t, "No data found", firstText(t, res))
	})
	t.Run("fault", func(t *testing.T) {
		srv, lk, _ := newTestServer(t)
		lk.EXPECT().ShowEntry(gomock.Any(), gomock.Any()).
			Return(nil, &lookup.TransportError{Op: "GetEntry", Err: assert.AnError})
		res, err := srv.handleShowEntry(context.Background(), toolReq(nil))
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.True(t, strings.HasPrefix(firstText(t, res), "Error: GetEntry: "))
	})
}

func TestHandleShowPlayer(t *testing.T) {
	srv, lk, _ := newTestServer(t)
	lk.EXPECT().
		ShowRecord(gomock.Any(), lookup.RecordRequest{UserID: 1234, UniverseID: 5, Datastore: ""}).
		Return(outcome(t, "1234", `{"coins": 5}`), nil)
	res, err := srv.handleShowPlayer(context.Background(), toolReq(map[string]any{
		"user_id": float64(1234), "universe_id": "5",
	}))
	require.NoError(t, err)
	assert.False(t, res.IsError)
	assert.Contains(t, firstText(t, res), "Coins:")
}

func TestHandleUniverseInfo(t *testing.T) {
	t.Run("exists", func(t *testing.T) {
		srv, _, ver, src := newTestServerWithSource(t)
		ver.EXPECT().Verify(gomock.Any(), int64(123456)).Return(universe.Result{
			Success: true,
			Info:    &opencloud.UniverseInfo{ID: 123456, Name: "Gold Rush", RootPlaceID: 654321, Creator: "builderman", Exists: true},
		})
		src.EXPECT().UniverseInfo(gomock.Any(), int64(123456)).Return(opencloud.UniverseInfo{
			ID: 123456, Name: "Gold Rush", IconURL: "https://tr.rbxcdn.com/icon", Exists: true,
		})
		res, err := srv.handleUniverseInfo(context.Background(), toolReq(map[string]any{"universe_id": float64(123456)}))
		require.NoError(t, err)
		assert.False(t, res.IsError)
		text := firstText(t, res)
		assert.Contains(t, text, `"name":"Gold Rush"`)
		assert.Contains(t, text, `"root_place_id":654321`)
		assert.Contains(t, text, `"icon_url":"https://tr.rbxcdn.com/icon"`)
	})
	t.Run("does not exist", func(t *testing.T) {
		srv, _, ver := newTestServer(t)
		ver.EXPECT().Verify(gomock.Any(), int64(42)).Return(universe.Result{ErrorMessage: "Universe 42 does not exist."})
		res, err := srv.handleUniverseInfo(context.Background(), toolReq(map[string]any{"universe_id": float64(42)}))
		require.NoError(t, err)
		assert.False(t, res.IsError)
		assert.Equal(t, "Universe 42 does not exist.", firstText(t, res))
	})
	t.Run("invalid id", func(t *testing.T) {
		srv, _, _ := newTestServer(t)
		res, err := srv.handleUniverseInfo(context.Background(), toolReq(map[string]any{"universe_id": -1.0}))
		require.NoError(t, err)
		assert.True(t, res.IsError)
	})
}
