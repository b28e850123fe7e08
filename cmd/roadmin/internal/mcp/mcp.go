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

// Package mcp contains the CLI command for starting the RoAdmin MCP server.
package mcp

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/KhanPython/RoAdmin/cmd/roadmin/internal/bootstrap"
	"github.com/KhanPython/RoAdmin/cmd/roadmin/internal/cfg"
	"github.com/KhanPython/RoAdmin/cmd/roadmin/internal/golang/base"
	internalmcp "github.com/KhanPython/RoAdmin/internal/mcp"
	"github.com/KhanPython/RoAdmin/internal/render"
)

//go:embed assets/mcp.md
var mdMCP string

// CmdMCP is the "roadmin mcp" command.
var CmdMCP = &base.Command{
	UsageLine:  "roadmin mcp [flags]",
	Short:      "Start a local MCP server for AI agents",
	Long:       mdMCP,
	PrintFlags: true,
	Run:        runMCP,
}

var (
	listenAddr string
	transport  string
)

func init() {
	CmdMCP.Flag.StringVar(&transport, "transport", "stdio", "MCP transport: \"stdio\" or \"http\"")
	CmdMCP.Flag.StringVar(&listenAddr, "listen", "127.0.0.1:8483", "address to listen on when -transport=http")
}

func runMCP(ctx context.Context, cmd *base.Command, args []string) error {
	lg := cfg.Log

	t := internalmcp.Transport(strings.ToLower(transport))
	switch t {
	case internalmcp.TransportStdio, internalmcp.TransportHTTP, "":
	default:
		base.SetExitStatus(base.SInvalidParameters)
		return fmt.Errorf("mcp: unknown transport %q (use \"stdio\" or \"http\")", transport)
	}

	p, err := bootstrap.NewPipeline(ctx, render.DefLimits)
	if err != nil {
		base.SetExitStatus(base.SInitializationError)
		return fmt.Errorf("mcp: %w", err)
	}
	lg.InfoContext(ctx, "mcp: keys loaded", "universes", p.Keys.Universes())

	srv := internalmcp.New(p.Service, p.Verifier, p.Client, internalmcp.WithLogger(lg))
	if t == internalmcp.TransportHTTP {
		lg.InfoContext(ctx, "mcp: http transport", "addr", listenAddr)
	}
	if err := srv.Serve(ctx, t, listenAddr); err != nil {
		base.SetExitStatus(base.SApplicationError)
		return err
	}
	return nil
}
