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

// Package slackbot is the Slack host surface.  It serves the slash commands
// /showdata and /showplayer, and posts the retrieved entries to the channel
// using Block Kit.
package slackbot

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/KhanPython/RoAdmin/internal/lookup"
)

// Lookuper is the request pipeline.
type Lookuper interface {
	ShowEntry(ctx context.Context, req lookup.EntryRequest) (*lookup.Outcome, error)
	ShowRecord(ctx context.Context, req lookup.RecordRequest) (*lookup.Outcome, error)
}

const (
	DefAddr            = ":8080"
	DefShutdownTimeout = 30 * time.Second
	// defCommandTimeout is the time allowed for one command.
	defCommandTimeout = 2 * time.Minute
	// defReplyTimeout is the time allowed for the reply or the presence
	// notice, which are sent even if the command context has expired.
	defReplyTimeout = 10 * time.Second
)

var ErrNoSecret = errors.New("slack signing secret is not set")

// Config is the server configuration.
type Config struct {
	// Addr is the listen address.
	Addr string
	// SigningSecret is the Slack app signing secret.
	SigningSecret string
	// StatusChannel is the channel for the online and offline notices.
	// If empty, no notices are posted.
	StatusChannel   string
	ShutdownTimeout time.Duration
	Logger          *slog.Logger
}

// Server is the Slack slash command server.
type Server struct {
	cfg    Config
	svc    Lookuper
	poster Poster
	lg     *slog.Logger
	m      *metrics

	// workCtx is the context of the command workers, it outlives the
	// requests, and is cancelled once the drain timeout expires.
	workCtx context.Context
	wg      sync.WaitGroup

	now func() time.Time
}

// New creates the server.
func New(svc Lookuper, p Poster, cfg Config) (*Server, error) {
	if cfg.SigningSecret == "" {
		return nil, ErrNoSecret
	}
	if cfg.Addr == "" {
		cfg.Addr = DefAddr
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefShutdownTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Server{
		cfg:     cfg,
		svc:     svc,
		poster:  p,
		lg:      cfg.Logger,
		m:       newMetrics(),
		workCtx: context.Background(),
		now:     time.Now,
	}, nil
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Get("/healthz", healthz)
	r.Method(http.MethodGet, "/metrics", s.m.handler())
	r.Post("/slack/commands", s.handleCommand)
	return r
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("ok\n"))
}

// Run starts the server and blocks until ctx is cancelled or the server
// fails.  On shutdown, it stops accepting the commands, waits for the
// commands in progress, and posts the offline notice.
func (s *Server) Run(ctx context.Context) error {
	workCtx, workCancel := context.WithCancel(context.WithoutCancel(ctx))
	defer workCancel()
	s.workCtx = workCtx

	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg, gctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		s.lg.InfoContext(ctx, "listening", "addr", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	eg.Go(func() error {
		<-gctx.Done()
		s.lg.InfoContext(ctx, "shutting down")
		sctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.ShutdownTimeout)
		defer cancel()
		err := srv.Shutdown(sctx)
		s.drain(sctx)
		workCancel()
		s.announce(sctx, false)
		return err
	})
	s.announce(ctx, true)

	return eg.Wait()
}

// drain waits for the running commands until ctx is done.
func (s *Server) drain(ctx context.Context) {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		s.lg.WarnContext(ctx, "commands are still running, cancelling")
	}
}

// announce posts the presence notice to the status channel.
func (s *Server) announce(ctx context.Context, online bool) {
	if s.cfg.StatusChannel == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), defReplyTimeout)
	defer cancel()
	fallback := "Bot is offline"
	if online {
		fallback = "Bot is online"
	}
	if _, err := s.poster.PostMessage(ctx, s.cfg.StatusChannel, fallback, presenceBlocks(online, s.now())...); err != nil {
		s.lg.WarnContext(ctx, "failed to send presence notification", "online", online, "error", err)
		return
	}
	s.lg.DebugContext(ctx, "sent presence notification", "online", online)
}
