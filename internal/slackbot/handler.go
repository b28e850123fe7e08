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

package slackbot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"github.com/rusq/slack"

	"github.com/KhanPython/RoAdmin/internal/lookup"
	"github.com/KhanPython/RoAdmin/internal/render"
)

// Slash commands.
const (
	CmdShowData   = "/showdata"
	CmdShowPlayer = "/showplayer"
)

// maxCommandBody is the maximum size of the slash command payload.
const maxCommandBody = 64 << 10

const (
	ackText     = "Looking it up…"
	unknownText = "Unknown command %s, try %s or %s."
)

type ack struct {
	ResponseType string `json:"response_type"`
	Text         string `json:"text"`
}

func writeAck(w http.ResponseWriter, text string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(ack{ResponseType: "ephemeral", Text: text})
}

// handleCommand verifies and acknowledges the slash command, the command is
// then processed in the background, and the result is posted to the channel.
func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sv, err := slack.NewSecretsVerifier(r.Header, s.cfg.SigningSecret)
	if err != nil {
		s.lg.WarnContext(ctx, "rejected request", "error", err)
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}
	r.Body = io.NopCloser(io.TeeReader(io.LimitReader(r.Body, maxCommandBody), &sv))
	cmd, err := slack.SlashCommandParse(r)
	if err != nil {
		s.lg.WarnContext(ctx, "malformed command", "error", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if err := sv.Ensure(); err != nil {
		s.lg.WarnContext(ctx, "signature mismatch", "error", err)
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	switch cmd.Command {
	case CmdShowData, CmdShowPlayer:
	default:
		writeAck(w, fmt.Sprintf(unknownText, cmd.Command, CmdShowData, CmdShowPlayer))
		return
	}
	writeAck(w, ackText)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.process(s.workCtx, cmd)
	}()
}

// process runs the command and delivers the result.  Expected failures are
// answered with the ephemeral response, faults are logged and answered with
// the capped error message.
func (s *Server) process(ctx context.Context, cmd slack.SlashCommand) {
	ctx, cancel := context.WithTimeout(ctx, defCommandTimeout)
	defer cancel()

	reqID := uuid.NewString()
	lg := s.lg.With("request_id", reqID, "command", cmd.Command, "user_id", cmd.UserID, "channel_id", cmd.ChannelID)
	start := time.Now()
	defer func() {
		s.m.duration.WithLabelValues(cmd.Command).Observe(time.Since(start).Seconds())
	}()
	defer func() {
		if r := recover(); r != nil {
			lg.ErrorContext(ctx, "panic", "recovered", r, "stack", string(debug.Stack()))
			s.m.fault(faultPanic)
			s.respond(ctx, lg, cmd.ResponseURL, lookup.ErrorMessage(fmt.Errorf("internal error, reference %s", reqID)))
		}
	}()

	lg.DebugContext(ctx, "processing", "text", cmd.Text)
	out, err := s.run(ctx, cmd)
	if err != nil {
		var ie *lookup.InputError
		if errors.As(err, &ie) {
			s.respond(ctx, lg, cmd.ResponseURL, usage(cmd.Command, ie.Message))
			return
		}
		lg.ErrorContext(ctx, "command failed", "error", err)
		s.m.fault(faultKind(err))
		s.respond(ctx, lg, cmd.ResponseURL, lookup.ErrorMessage(err))
		return
	}
	s.m.outcome(cmd.Command, out)
	if !out.OK() {
		lg.InfoContext(ctx, "not served", "status", out.Status, "message", out.Message)
		msg := out.Message
		if out.Status == lookup.StatusInvalidInput {
			msg = usage(cmd.Command, msg)
		}
		s.respond(ctx, lg, cmd.ResponseURL, msg)
		return
	}
	if err := s.deliver(ctx, cmd.ChannelID, out); err != nil {
		lg.ErrorContext(ctx, "delivery failed", "error", err)
		s.m.fault(faultDelivery)
		s.respond(ctx, lg, cmd.ResponseURL, lookup.ErrorMessage(err))
		return
	}
	lg.InfoContext(ctx, "served", "strategy", out.Plan.Strategy, "truncated", out.Plan.Truncated)
}

func (s *Server) run(ctx context.Context, cmd slack.SlashCommand) (*lookup.Outcome, error) {
	switch cmd.Command {
	case CmdShowData:
		req, err := lookup.ParseEntryArgs(cmd.Text)
		if err != nil {
			return nil, err
		}
		return s.svc.ShowEntry(ctx, req)
	case CmdShowPlayer:
		req, err := lookup.ParseRecordArgs(cmd.Text)
		if err != nil {
			return nil, err
		}
		return s.svc.ShowRecord(ctx, req)
	}
	return nil, fmt.Errorf("unsupported command: %s", cmd.Command)
}

func usage(command string, msg string) string {
	synopsis := lookup.EntryUsage
	if command == CmdShowPlayer {
		synopsis = lookup.RecordUsage
	}
	return fmt.Sprintf("%s\nUsage: `%s %s`", msg, command, synopsis)
}

// deliver posts the outcome to the channel.  The attachment, if any, is
// uploaded to the thread of the posted message.
func (s *Server) deliver(ctx context.Context, channelID string, out *lookup.Outcome) error {
	ts, err := s.poster.PostMessage(ctx, channelID, out.Title, Blocks(out)...)
	if err != nil {
		return err
	}
	if out.Plan.Strategy != render.FileAttachment || out.Plan.Attachment == nil {
		return nil
	}
	att := out.Plan.Attachment
	return s.poster.Upload(ctx, channelID, ts, att.Filename, out.Title, att.Data)
}

// respond sends the ephemeral reply.  The reply is sent on a separate
// context, so that a command that ran out of time still gets an answer.
func (s *Server) respond(ctx context.Context, lg *slog.Logger, responseURL string, text string) {
	if responseURL == "" {
		lg.WarnContext(ctx, "no response url, reply dropped", "text", text)
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defReplyTimeout)
	defer cancel()
	if err := s.poster.Respond(ctx, responseURL, text); err != nil {
		lg.ErrorContext(ctx, "failed to respond", "error", err)
	}
}
