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

// In this file: MCP server construction and transport management.

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/KhanPython/RoAdmin/internal/lookup"
	"github.com/KhanPython/RoAdmin/internal/opencloud"
	"github.com/KhanPython/RoAdmin/internal/universe"
)

//go:generate mockgen -destination=mock_mcp/mock_mcp.go . Lookuper,Verifier,UniverseSource

const (
	serverName    = "roadmin-mcp"
	serverVersion = "1.0.0"
)

// Transport selects how the MCP server communicates with its client.
type Transport string

const (
	// TransportStdio uses stdin/stdout for communication (default, suitable
	// for local agent integrations such as Claude Desktop).
	TransportStdio Transport = "stdio"
	// TransportHTTP uses Streamable HTTP transport (suitable for remote
	// agents or when multiple concurrent clients are needed).
	TransportHTTP Transport = "http"
)

// Lookuper is the request pipeline.
type Lookuper interface {
	ShowEntry(ctx context.Context, req lookup.EntryRequest) (*lookup.Outcome, error)
	ShowRecord(ctx context.Context, req lookup.RecordRequest) (*lookup.Outcome, error)
}

// Verifier verifies that the universe exists.
type Verifier interface {
	Verify(ctx context.Context, universeID int64) universe.Result
}

// UniverseSource returns the display information of the universe,
// including the icon.
type UniverseSource interface {
	UniverseInfo(ctx context.Context, universeID int64) opencloud.UniverseInfo
}

// Server wraps an MCP server and the lookup service.
type Server struct {
	mcp      *mcpsrv.MCPServer
	svc      Lookuper
	verifier Verifier
	universe UniverseSource
	logger   *slog.Logger
}

// Option is the Server option.
type Option func(*Server)

// WithLogger sets the logger.  nil logger is replaced with slog.Default().
func WithLogger(lg *slog.Logger) Option {
	return func(s *Server) {
		if lg == nil {
			lg = slog.Default()
		}
		s.logger = lg
	}
}

// New creates a new MCP server backed by the given lookup service, universe
// verifier and universe information source.  The server is populated with
// all available tools but does not start listening until one of the Serve*
// methods is called.
func New(svc Lookuper, v Verifier, src UniverseSource, opts ...Option) *Server {
	s := &Server{
		svc:      svc,
		verifier: v,
		universe: src,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	mcpServer := mcpsrv.NewMCPServer(
		serverName,
		serverVersion,
		mcpsrv.WithInstructions(instructions),
		mcpsrv.WithToolCapabilities(false),
	)
	for _, t := range s.tools() {
		mcpServer.AddTool(t.Tool, t.Handler)
	}
	s.mcp = mcpServer
	return s
}

const instructions = `You are connected to the RoAdmin MCP server.

It reads the Roblox Open Cloud standard datastores of the universes (experiences)
that have an API key registered with RoAdmin.

Available tools allow you to:
- Show a datastore entry by its key
- Show the player record by the user ID
- Get the universe (experience) information

All data is read-only.  Entries that are too large to display are returned
as embedded JSON resources.
`

// Serve runs the server over the transport until ctx is cancelled.  addr is
// used by the HTTP transport only.
func (s *Server) Serve(ctx context.Context, t Transport, addr string) error {
	switch t {
	case TransportStdio, "":
		return s.ServeStdio(ctx)
	case TransportHTTP:
		return s.ServeHTTP(ctx, addr)
	}
	return fmt.Errorf("unknown transport: %q", t)
}

// ServeStdio runs the MCP server over stdin/stdout until ctx is cancelled.
// This is the standard transport used by local agent integrations.
func (s *Server) ServeStdio(ctx context.Context) error {
	srv := mcpsrv.NewStdioServer(s.mcp)
	s.logger.InfoContext(ctx, "mcp server listening on stdio")
	if err := srv.Listen(ctx, os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
			return nil
		}
		return fmt.Errorf("mcp stdio server error: %w", err)
	}
	return nil
}

// ServeHTTP runs the MCP server as a Streamable HTTP server on addr until
// ctx is cancelled.  addr should be a host:port string such as "127.0.0.1:8483".
func (s *Server) ServeHTTP(ctx context.Context, addr string) error {
	httpSrv := &http.Server{Addr: addr}
	streamSrv := mcpsrv.NewStreamableHTTPServer(s.mcp,
		mcpsrv.WithStreamableHTTPServer(httpSrv),
	)

	s.logger.InfoContext(ctx, "mcp server listening on http", "addr", addr)

	errCh := make(chan error, 1)
	go func() {
		if err := streamSrv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("mcp http server error: %w", err)
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.InfoContext(ctx, "mcp server shutting down")
		if err := streamSrv.Shutdown(context.Background()); err != nil {
			return fmt.Errorf("mcp http server shutdown error: %w", err)
		}
		return nil
	case err := <-errCh:
		return err
	}
}

// tools returns all MCP tools that this server exposes.
func (s *Server) tools() []mcpsrv.ServerTool {
	return []mcpsrv.ServerTool{
		s.toolShowEntry(),
		s.toolShowPlayer(),
		s.toolUniverseInfo(),
	}
}

// resultText is a helper that wraps text in a successful CallToolResult.
func resultText(text string) *mcplib.CallToolResult {
	return mcplib.NewToolResultText(text)
}

// resultErr is a helper that wraps an error in a CallToolResult with IsError=true.
func resultErr(err error) *mcplib.CallToolResult {
	return resultErrText(err.Error())
}

func resultErrText(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
		IsError: true,
	}
}

// stringArg extracts a named string argument from a tool call request.
// Returns ("", false) if the argument is absent or not a string.
func stringArg(req mcplib.CallToolRequest, name string) (string, bool) {
	args := req.GetArguments()
	if args == nil {
		return "", false
	}
	v, ok := args[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// idArg extracts a named id argument from a tool call request.  The MCP
// protocol serialises numbers as float64, agents also tend to send the ids as
// strings, both are accepted.  Returns 0 if the argument is absent or
// malformed.
func idArg(req mcplib.CallToolRequest, name string) int64 {
	args := req.GetArguments()
	if args == nil {
		return 0
	}
	switch n := args[name].(type) {
	case float64:
		if n != float64(int64(n)) {
			return 0
		}
		return int64(n)
	case int:
		return int64(n)
	case int64:
		return n
	case string:
		id, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		if err != nil {
			return 0
		}
		return id
	}
	return 0
}
