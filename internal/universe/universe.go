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

// Package universe verifies that the universe exists before any datastore
// call is made with its API key.
package universe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KhanPython/RoAdmin/internal/opencloud"
)

//go:generate mockgen -destination=mock_universe/mock_universe.go . Resolver

// Resolver resolves the universe id to the universe information.
type Resolver interface {
	Universe(ctx context.Context, universeID int64) (*opencloud.UniverseInfo, error)
}

// Result is the result of the verification.  If Success is false,
// ErrorMessage is a human readable explanation.
type Result struct {
	Success      bool
	ErrorMessage string
	Info         *opencloud.UniverseInfo
}

// Verifier verifies the universes.  It does not cache the results.
type Verifier struct {
	r  Resolver
	lg *slog.Logger
}

// NewVerifier returns the verifier that uses r to resolve the universes.
func NewVerifier(r Resolver, lg *slog.Logger) *Verifier {
	if lg == nil {
		lg = slog.Default()
	}
	return &Verifier{r: r, lg: lg}
}

// Verify checks that the universe exists.  It never returns an error, all
// failures are reported in the Result.
func (v *Verifier) Verify(ctx context.Context, universeID int64) Result {
	if universeID <= 0 {
		return Result{ErrorMessage: fmt.Sprintf("Invalid Universe ID %d: it must be a positive number.", universeID)}
	}
	info, err := v.r.Universe(ctx, universeID)
	if err != nil {
		if errors.Is(err, opencloud.ErrNotFound) {
			return Result{ErrorMessage: fmt.Sprintf("Universe %d does not exist. Please check the Universe ID.", universeID)}
		}
		v.lg.WarnContext(ctx, "universe verification failed", "universe_id", universeID, "error", err)
		return Result{ErrorMessage: fmt.Sprintf("Could not verify universe %d: the Roblox API is unreachable, please try again later.", universeID)}
	}
	if info == nil || !info.Exists {
		return Result{ErrorMessage: fmt.Sprintf("Universe %d does not exist. Please check the Universe ID.", universeID)}
	}
	return Result{Success: true, Info: info}
}
