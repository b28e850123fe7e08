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

// Package lookup is the request pipeline: it validates the request, checks
// the API key and the universe, fetches the entry and plans its rendering.
// The host surfaces (Slack, MCP, CLI) only realise the returned Outcome.
package lookup

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/trace"
	"strconv"

	"github.com/KhanPython/RoAdmin/internal/cache"
	"github.com/KhanPython/RoAdmin/internal/opencloud"
	"github.com/KhanPython/RoAdmin/internal/render"
	"github.com/KhanPython/RoAdmin/internal/universe"
)

//go:generate mockgen -destination=mock_lookup/mock_lookup.go . Credentials,Verifier,DataStore

// Credentials reports whether there's an API key for the universe.
type Credentials interface {
	HasCredential(universeID int64) bool
}

// Verifier verifies that the universe exists.
type Verifier interface {
	Verify(ctx context.Context, universeID int64) universe.Result
}

// DataStore is the remote datastore client.
type DataStore interface {
	GetEntry(ctx context.Context, key string, universeID int64, datastore string) opencloud.FetchResult
	GetRecord(ctx context.Context, userID int64, universeID int64, datastore string) opencloud.FetchResult
	UniverseInfo(ctx context.Context, universeID int64) opencloud.UniverseInfo
}

// Service is the lookup service.
type Service struct {
	creds    Credentials
	verifier Verifier
	ds       DataStore
	lim      render.Limits
	lg       *slog.Logger
}

// Option is the Service option.
type Option func(*Service)

// WithLogger sets the logger.
func WithLogger(lg *slog.Logger) Option {
	return func(s *Service) {
		if lg != nil {
			s.lg = lg
		}
	}
}

// New creates the lookup service.  lim are the limits of the host surface
// the outcomes are rendered on.
func New(creds Credentials, v Verifier, ds DataStore, lim render.Limits, opts ...Option) *Service {
	s := &Service{
		creds:    creds,
		verifier: v,
		ds:       ds,
		lim:      lim,
		lg:       slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Limits returns the limits used to plan the rendering.
func (s *Service) Limits() render.Limits {
	return s.lim
}

// ShowEntry retrieves the datastore entry and plans its rendering.  Expected
// failures (invalid input, missing API key, unknown universe, missing entry)
// are reported in the Outcome status.  The error is returned only for the
// transport failures (*TransportError) and render.ErrSizeOverflow.
func (s *Service) ShowEntry(ctx context.Context, req EntryRequest) (*Outcome, error) {
	ctx, task := trace.NewTask(ctx, "ShowEntry")
	defer task.End()

	req.normalise()
	out := &Outcome{
		Title:      "Datastore Entry: " + req.Key,
		Key:        req.Key,
		UniverseID: req.UniverseID,
		Datastore:  req.Datastore,
	}
	if err := req.Validate(); err != nil {
		return out.with(StatusInvalidInput, err.Message), nil
	}
	return s.run(ctx, out, func(ctx context.Context) opencloud.FetchResult {
		return s.ds.GetEntry(ctx, req.Key, req.UniverseID, req.Datastore)
	})
}

// ShowRecord retrieves the user record and plans its rendering.  The errors
// are reported the same way as in ShowEntry.
func (s *Service) ShowRecord(ctx context.Context, req RecordRequest) (*Outcome, error) {
	ctx, task := trace.NewTask(ctx, "ShowRecord")
	defer task.End()

	req.normalise()
	userKey := strconv.FormatInt(req.UserID, 10)
	out := &Outcome{
		Title:      "Player Data: " + userKey,
		Key:        userKey,
		UniverseID: req.UniverseID,
		Datastore:  req.Datastore,
	}
	if err := req.Validate(); err != nil {
		return out.with(StatusInvalidInput, err.Message), nil
	}
	return s.run(ctx, out, func(ctx context.Context) opencloud.FetchResult {
		return s.ds.GetRecord(ctx, req.UserID, req.UniverseID, req.Datastore)
	})
}

// run runs the pipeline for the validated request.
func (s *Service) run(ctx context.Context, out *Outcome, fetch func(context.Context) opencloud.FetchResult) (*Outcome, error) {
	lg := s.lg.With("universe_id", out.UniverseID, "datastore", out.Datastore, "key", out.Key)

	if !s.creds.HasCredential(out.UniverseID) {
		lg.DebugContext(ctx, "no api key")
		return out.with(StatusMissingCredential, cache.MissingKeyHelp(out.UniverseID)), nil
	}

	vr := s.verifier.Verify(ctx, out.UniverseID)
	if !vr.Success {
		lg.DebugContext(ctx, "universe verification failed", "message", vr.ErrorMessage)
		return out.with(StatusUniverseNotFound, vr.ErrorMessage), nil
	}

	res := fetch(ctx)
	if !res.Success {
		return nil, &TransportError{Op: "fetch", Err: res.Err}
	}
	if res.Data == nil {
		lg.DebugContext(ctx, "entry not found")
		return out.with(StatusNotFound, fmt.Sprintf("No data found for key %q in datastore %q.", out.Key, out.Datastore)), nil
	}

	out.Universe = s.ds.UniverseInfo(ctx, out.UniverseID)
	if vr.Info != nil && out.Universe.Name == opencloud.DefUniverseName && vr.Info.Name != "" {
		// the verifier already knows the name.
		out.Universe.Name = vr.Info.Name
	}
	out.Meta = res.Meta

	plan, err := render.Build(out.Key, *res.Data, s.lim)
	if err != nil {
		return nil, fmt.Errorf("universe %d, datastore %q, key %q: %w", out.UniverseID, out.Datastore, out.Key, err)
	}
	out.Plan = plan
	lg.DebugContext(ctx, "planned", "strategy", plan.Strategy, "truncated", plan.Truncated)
	return out.with(StatusOK, ""), nil
}
