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

// Package bootstrap wires the lookup pipeline from the command line
// configuration.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/KhanPython/RoAdmin/cmd/roadmin/internal/cfg"
	"github.com/KhanPython/RoAdmin/internal/cache"
	"github.com/KhanPython/RoAdmin/internal/chttp"
	"github.com/KhanPython/RoAdmin/internal/lookup"
	"github.com/KhanPython/RoAdmin/internal/network"
	"github.com/KhanPython/RoAdmin/internal/opencloud"
	"github.com/KhanPython/RoAdmin/internal/render"
	"github.com/KhanPython/RoAdmin/internal/universe"
)

// Pipeline is the wired lookup pipeline.
type Pipeline struct {
	Keys     *cache.Keyring
	Client   *opencloud.Client
	Verifier *universe.Verifier
	Service  *lookup.Service
}

// KeyManager returns the API key cache manager for the configured cache
// directory.
func KeyManager() (*cache.Manager, error) {
	return cache.NewManager(cfg.CacheDir())
}

// Limits returns the rendering limits: the preset, overridden by the values
// from the limits file, if it's set.
func Limits(preset render.Limits) (render.Limits, error) {
	if cfg.LimitsFile == "" {
		return preset, nil
	}
	f, err := os.Open(cfg.LimitsFile)
	if err != nil {
		return render.Limits{}, err
	}
	defer f.Close()
	lim, err := render.LoadLimits(f, preset)
	if err != nil {
		return render.Limits{}, fmt.Errorf("%s: %w", cfg.LimitsFile, err)
	}
	return lim, nil
}

// Keyring loads the keyring from the key cache, and adds the keys from the
// ROBLOX_API_KEY_<universeId> environment variables.  Environment keys take
// precedence.  The keys that failed to load are logged and skipped.
func Keyring(ctx context.Context, m *cache.Manager, environ []string) (*cache.Keyring, error) {
	kr, err := m.Keyring()
	if kr == nil {
		return nil, err
	}
	if err != nil {
		cfg.Log.WarnContext(ctx, "some API keys could not be loaded", "error", err)
	}
	envKeys, err := cache.ParseEnvKeys(envMap(environ))
	if err != nil {
		cfg.Log.WarnContext(ctx, "ignoring malformed API key variables", "error", err)
	}
	for id, key := range envKeys {
		kr.Set(id, key)
	}
	cfg.Log.DebugContext(ctx, "keyring loaded", "universes", kr.Len())
	return kr, nil
}

func envMap(environ []string) map[string]string {
	env := make(map[string]string, len(environ))
	for _, kv := range environ {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			continue
		}
		env[k] = v
	}
	return env
}

// ClientOptions returns the Open Cloud client options from the
// configuration.
func ClientOptions(lg *slog.Logger) []opencloud.Option {
	opts := []opencloud.Option{
		opencloud.WithHTTPClient(chttp.New(chttp.DefUserAgent)),
		opencloud.WithLogger(lg),
		opencloud.WithRetries(cfg.Retries),
	}
	if cfg.RecordKey != "" {
		opts = append(opts, opencloud.WithRecordKey(cfg.RecordKey))
	}
	return opts
}

// ErrBadRecordKey is returned if the record key template is malformed.
var ErrBadRecordKey = errors.New("record key template must contain exactly one %d verb")

// ValidateRecordKey validates the record key template.
func ValidateRecordKey(tmpl string) error {
	if tmpl == "" {
		return nil
	}
	if strings.Count(tmpl, "%") != 1 || !strings.Contains(tmpl, "%d") {
		return fmt.Errorf("%w: %q", ErrBadRecordKey, tmpl)
	}
	return nil
}

// NewPipeline wires the lookup pipeline for the host surface with the
// preset limits.
func NewPipeline(ctx context.Context, preset render.Limits) (*Pipeline, error) {
	lg := cfg.Log
	network.SetLogger(lg)

	if err := ValidateRecordKey(cfg.RecordKey); err != nil {
		return nil, err
	}
	lim, err := Limits(preset)
	if err != nil {
		return nil, err
	}
	m, err := KeyManager()
	if err != nil {
		return nil, fmt.Errorf("error opening the key cache: %w", err)
	}
	kr, err := Keyring(ctx, m, os.Environ())
	if err != nil {
		return nil, fmt.Errorf("error loading API keys: %w", err)
	}
	if kr.Len() == 0 {
		lg.WarnContext(ctx, "no API keys registered, run 'roadmin key add <universeId>'")
	}

	cl := opencloud.New(kr, ClientOptions(lg)...)
	v := universe.NewVerifier(cl, lg)
	return &Pipeline{
		Keys:     kr,
		Client:   cl,
		Verifier: v,
		Service:  lookup.New(kr, v, cl, lim, lookup.WithLogger(lg)),
	}, nil
}
