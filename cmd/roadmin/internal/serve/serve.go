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

// Package serve implements the "roadmin serve" command that runs the Slack
// slash command server.
package serve

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/rusq/osenv/v2"
	"github.com/rusq/slack"

	"github.com/KhanPython/RoAdmin/cmd/roadmin/internal/bootstrap"
	"github.com/KhanPython/RoAdmin/cmd/roadmin/internal/cfg"
	"github.com/KhanPython/RoAdmin/cmd/roadmin/internal/golang/base"
	"github.com/KhanPython/RoAdmin/internal/chttp"
	"github.com/KhanPython/RoAdmin/internal/render"
	"github.com/KhanPython/RoAdmin/internal/slackbot"
)

//go:embed assets/serve.md
var mdServe string

var CmdServe = &base.Command{
	UsageLine:  "roadmin serve [flags]",
	Short:      "starts the Slack slash command server",
	Long:       mdServe,
	PrintFlags: true,
	Run:        runServe,
}

var flags struct {
	addr            string
	signingSecret   string
	botToken        string
	statusChannel   string
	shutdownTimeout time.Duration
}

func init() {
	CmdServe.Flag.StringVar(&flags.addr, "addr", osenv.Value("ADDR", slackbot.DefAddr), "listen `address`")
	CmdServe.Flag.StringVar(&flags.signingSecret, "signing-secret", osenv.Secret("SLACK_SIGNING_SECRET", ""), "Slack app signing `secret` (environment: SLACK_SIGNING_SECRET)")
	CmdServe.Flag.StringVar(&flags.botToken, "bot-token", osenv.Secret("SLACK_BOT_TOKEN", ""), "Slack bot `token` (environment: SLACK_BOT_TOKEN)")
	CmdServe.Flag.StringVar(&flags.statusChannel, "status-channel", osenv.Value("STATUS_CHANNEL_ID", ""), "`channel` ID for the online and offline notices (optional)")
	CmdServe.Flag.DurationVar(&flags.shutdownTimeout, "shutdown-timeout", slackbot.DefShutdownTimeout, "how long to wait for the running commands on shutdown")
}

var (
	errNoSecret = errors.New("slack signing secret required, set -signing-secret or SLACK_SIGNING_SECRET")
	errNoToken  = errors.New("slack bot token required, set -bot-token or SLACK_BOT_TOKEN")
)

func runServe(ctx context.Context, cmd *base.Command, args []string) error {
	if err := checkFlags(); err != nil {
		base.SetExitStatus(base.SInvalidParameters)
		return err
	}

	p, err := bootstrap.NewPipeline(ctx, render.SlackLimits)
	if err != nil {
		base.SetExitStatus(base.SInitializationError)
		return err
	}

	hc := chttp.New(chttp.DefUserAgent)
	api := slack.New(flags.botToken, slack.OptionHTTPClient(hc))
	srv, err := slackbot.New(p.Service, slackbot.NewAPIPoster(api, hc), slackbot.Config{
		Addr:            flags.addr,
		SigningSecret:   flags.signingSecret,
		StatusChannel:   flags.statusChannel,
		ShutdownTimeout: flags.shutdownTimeout,
		Logger:          cfg.Log,
	})
	if err != nil {
		base.SetExitStatus(base.SInitializationError)
		return err
	}
	cfg.Log.InfoContext(ctx, "slack server starting", "addr", flags.addr, "universes", p.Keys.Universes())
	if err := srv.Run(ctx); err != nil {
		base.SetExitStatus(base.SApplicationError)
		return fmt.Errorf("slack server: %w", err)
	}
	return nil
}

func checkFlags() error {
	if flags.signingSecret == "" {
		return errNoSecret
	}
	if flags.botToken == "" {
		return errNoToken
	}
	return nil
}
