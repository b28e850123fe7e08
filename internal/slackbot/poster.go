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
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/rusq/slack"
)

//go:generate mockgen -destination=mock_slackbot/mock_slackbot.go . Poster,Lookuper

// Poster is the subset of the Slack Web API used by the bot.
type Poster interface {
	// PostMessage posts the message to the channel and returns its
	// timestamp.
	PostMessage(ctx context.Context, channelID string, fallback string, blocks ...slack.Block) (string, error)
	// Upload uploads the file into the thread of the message threadTS.
	Upload(ctx context.Context, channelID, threadTS string, filename, title string, data []byte) error
	// Respond sends the ephemeral response to the slash command.
	Respond(ctx context.Context, responseURL string, text string) error
}

// APIPoster is the Poster backed by the Slack Web API client.
type APIPoster struct {
	api *slack.Client
	hc  *http.Client
}

// NewAPIPoster returns the Poster that uses the api client.  The hc is used
// to send the file contents to the upload URL and the responses to the
// response URLs.
func NewAPIPoster(api *slack.Client, hc *http.Client) *APIPoster {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &APIPoster{api: api, hc: hc}
}

func (p *APIPoster) PostMessage(ctx context.Context, channelID string, fallback string, blocks ...slack.Block) (string, error) {
	_, ts, err := p.api.PostMessageContext(
		ctx,
		channelID,
		slack.MsgOptionText(fallback, false),
		slack.MsgOptionBlocks(blocks...),
	)
	if err != nil {
		return "", fmt.Errorf("failed to post message: %w", err)
	}
	return ts, nil
}

// Upload uploads the file using the external upload flow: get the upload
// URL, send the contents, and complete the upload sharing the file into the
// thread.
func (p *APIPoster) Upload(ctx context.Context, channelID, threadTS string, filename, title string, data []byte) error {
	up, err := p.api.GetUploadURLExternalContext(ctx, slack.GetUploadURLExternalParameters{
		FileName: filename,
		FileSize: len(data),
	})
	if err != nil {
		return fmt.Errorf("failed to get upload url: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, up.UploadURL, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/octet-stream")
	resp, err := p.hc.Do(req)
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", filename, err)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("failed to upload %s: %s", filename, resp.Status)
	}
	if _, err := p.api.CompleteUploadExternalContext(ctx, slack.CompleteUploadExternalParameters{
		Files:           []slack.FileSummary{{ID: up.FileID, Title: title}},
		Channel:         channelID,
		ThreadTimestamp: threadTS,
	}); err != nil {
		return fmt.Errorf("failed to complete upload of %s: %w", filename, err)
	}
	return nil
}

func (p *APIPoster) Respond(ctx context.Context, responseURL string, text string) error {
	return slack.PostWebhookCustomHTTPContext(ctx, responseURL, p.hc, &slack.WebhookMessage{
		Text:         text,
		ResponseType: "ephemeral",
	})
}
