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

// In this file: MCP tool definitions and handler implementations.

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	mcpsrv "github.com/mark3labs/mcp-go/server"

	"github.com/KhanPython/RoAdmin/internal/lookup"
	"github.com/KhanPython/RoAdmin/internal/render"
)

const (
	argKey        = "key"
	argUniverseID = "universe_id"
	argDatastore  = "datastore"
	argUserID     = "user_id"
)

// ─── show_entry ───────────────────────────────────────────────────────────────

func (s *Server) toolShowEntry() mcpsrv.ServerTool {
	tool := mcplib.NewTool("show_entry",
		mcplib.WithDescription(`Show the standard datastore entry by its key.

The entry is returned as text: the summary fields followed by the JSON
document.  If the entry is too large to display, the JSON document is
returned as an embedded resource.`),
		mcplib.WithString(argKey,
			mcplib.Description("The entry key, e.g. gold_100"),
			mcplib.Required(),
		),
		mcplib.WithNumber(argUniverseID,
			mcplib.Description("The universe (experience) ID"),
			mcplib.Required(),
		),
		mcplib.WithString(argDatastore,
			mcplib.Description("The datastore name, e.g. Economy"),
			mcplib.Required(),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleShowEntry}
}

func (s *Server) handleShowEntry(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	key, _ := stringArg(req, argKey)
	ds, _ := stringArg(req, argDatastore)
	out, err := s.svc.ShowEntry(ctx, lookup.EntryRequest{
		Key:        key,
		UniverseID: idArg(req, argUniverseID),
		Datastore:  ds,
	})
	return s.outcomeResult(ctx, "show_entry", out, err), nil
}

// ─── show_player ──────────────────────────────────────────────────────────────

func (s *Server) toolShowPlayer() mcpsrv.ServerTool {
	tool := mcplib.NewTool("show_player",
		mcplib.WithDescription(`Show the player record by the Roblox user ID.

The record is the datastore entry keyed by the user ID.  If the datastore is
not given, `+lookup.DefRecordDatastore+` is used.`),
		mcplib.WithNumber(argUserID,
			mcplib.Description("The Roblox user ID"),
			mcplib.Required(),
		),
		mcplib.WithNumber(argUniverseID,
			mcplib.Description("The universe (experience) ID"),
			mcplib.Required(),
		),
		mcplib.WithString(argDatastore,
			mcplib.Description("The datastore name (optional)"),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleShowPlayer}
}

func (s *Server) handleShowPlayer(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	ds, _ := stringArg(req, argDatastore)
	out, err := s.svc.ShowRecord(ctx, lookup.RecordRequest{
		UserID:     idArg(req, argUserID),
		UniverseID: idArg(req, argUniverseID),
		Datastore:  ds,
	})
	return s.outcomeResult(ctx, "show_player", out, err), nil
}

// outcomeResult converts the lookup outcome into the tool result.  Only the
// faults are tool errors, the outcomes that were not served are returned as
// the text explaining why.
func (s *Server) outcomeResult(ctx context.Context, tool string, out *lookup.Outcome, err error) *mcplib.CallToolResult {
	if err != nil {
		s.logger.ErrorContext(ctx, "mcp: lookup failed", "tool", tool, "error", err)
		return resultErrText(lookup.ErrorMessage(err))
	}
	if !out.OK() {
		return resultText(out.Message)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Experience: %s\nKey: %s\nUniverse ID: %d\nDatastore: %s\n\n", out.Universe.Name, out.Key, out.UniverseID, out.Datastore)
	if err := render.WriteText(&sb, out.Title, out.Plan); err != nil {
		return resultErr(fmt.Errorf("%s: %w", tool, err))
	}
	res := resultText(sb.String())
	if att := out.Plan.Attachment; att != nil {
		res.Content = append(res.Content, mcplib.NewEmbeddedResource(mcplib.TextResourceContents{
			URI:      entryURI(out),
			MIMEType: "application/json",
			Text:     string(att.Data),
		}))
	}
	return res
}

// entryURI returns the resource URI of the entry.
func entryURI(out *lookup.Outcome) string {
	return "roadmin://universes/" + strconv.FormatInt(out.UniverseID, 10) +
		"/datastores/" + url.PathEscape(out.Datastore) +
		"/entries/" + url.PathEscape(out.Key)
}

// ─── universe_info ────────────────────────────────────────────────────────────

func (s *Server) toolUniverseInfo() mcpsrv.ServerTool {
	tool := mcplib.NewTool("universe_info",
		mcplib.WithDescription("Return the universe (experience) information: name, root place, creator and icon."),
		mcplib.WithNumber(argUniverseID,
			mcplib.Description("The universe (experience) ID"),
			mcplib.Required(),
		),
		mcplib.WithReadOnlyHintAnnotation(true),
	)
	return mcpsrv.ServerTool{Tool: tool, Handler: s.handleUniverseInfo}
}

// universeSummary is a JSON-serialisable summary of the universe.
type universeSummary struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	RootPlaceID int64  `json:"root_place_id,omitempty"`
	Creator     string `json:"creator,omitempty"`
	IconURL     string `json:"icon_url,omitempty"`
}

func (s *Server) handleUniverseInfo(ctx context.Context, req mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	id := idArg(req, argUniverseID)
	if id <= 0 {
		return resultErr(errors.New("universe_info: universe_id must be a positive number")), nil
	}
	res := s.verifier.Verify(ctx, id)
	if !res.Success {
		return resultText(res.ErrorMessage), nil
	}
	info := res.Info
	// the icon is not part of the existence check.
	display := s.universe.UniverseInfo(ctx, id)
	result, err := mcplib.NewToolResultJSON(universeSummary{
		ID:          info.ID,
		Name:        info.Name,
		RootPlaceID: info.RootPlaceID,
		Creator:     info.Creator,
		IconURL:     display.IconURL,
	})
	if err != nil {
		return resultErr(fmt.Errorf("universe_info: serialise: %w", err)), nil
	}
	return result, nil
}
