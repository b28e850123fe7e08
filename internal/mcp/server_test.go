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
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"

	"github.com/KhanPython/RoAdmin/internal/mcp/mock_mcp"
)

// newTestServer creates a *Server backed by the mocks.
func newTestServer(t *testing.T) (*Server, *mock_mcp.MockLookuper, *mock_mcp.MockVerifier) {
	t.Helper()
	srv, lk, ver, _ := newTestServerWithSource(t)
	return srv, lk, ver
}

func newTestServerWithSource(t *testing.T) (*Server, *mock_mcp.MockLookuper, *mock_mcp.MockVerifier, *mock_mcp.MockUniverseSource) {
	t.Helper()
	ctrl := gomock.NewController(t)
	lk := mock_mcp.NewMockLookuper(ctrl)
	ver := mock_mcp.NewMockVerifier(ctrl)
	src := mock_mcp.NewMockUniverseSource(ctrl)
	srv := New(lk, ver, src, WithLogger(nil))
	require.NotNil(t, srv)
	return srv, lk, ver, src
}

// toolReq builds a CallToolRequest with the given argument map.
func toolReq(args map[string]any) mcplib.CallToolRequest {
	req := mcplib.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

func TestNew(t *testing.T) {
	srv, _, _ := newTestServer(t)
	assert.NotNil(t, srv.mcp)
	assert.NotNil(t, srv.logger)

	var names []string
	for _, tool := range srv.tools() {
		names = append(names, tool.Tool.Name)
	}
	assert.Equal(t, []string{"show_entry", "show_player", "universe_info"}, names)
}

func TestServer_Serve_unknownTransport(t *testing.T) {
	srv, _, _ := newTestServer(t)
	err := srv.Serve(context.Background(), "carrier-pigeon", "")
	assert.ErrorContains(t, err, "unknown transport")
}

func Test_idArg(t *testing.T) {
	tests := []struct {
		name string
		val  any
		want int64
	}{
		{"float", float64(123456), 123456},
		{"fractional", 1.5, 0},
		{"int", 42, 42},
		{"string", " 77 ", 77},
		{"garbage string", "12abc", 0},
		{"bool", true, 0},
		{"missing", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := map[string]any{}
			if tt.val != nil {
				args["id"] = tt.val
			}
			assert.Equal(t, tt.want, idArg(toolReq(args), "id"))
		})
	}
	assert.Zero(t, idArg(mcplib.CallToolRequest{}, "id"))
}

func Test_stringArg(t *testing.T) {
	v, ok := stringArg(toolReq(map[string]any{"s": "x"}), "s")
	assert.True(t, ok)
	assert.Equal(t, "x", v)
	_, ok = stringArg(toolReq(map[string]any{"s": 1}), "s")
	assert.False(t, ok)
	_, ok = stringArg(mcplib.CallToolRequest{}, "s")
	assert.False(t, ok)
}
