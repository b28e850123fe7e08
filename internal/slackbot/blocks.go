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
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rusq/slack"

	"github.com/KhanPython/RoAdmin/internal/lookup"
	"github.com/KhanPython/RoAdmin/internal/opencloud"
	"github.com/KhanPython/RoAdmin/internal/render"
)

const (
	// maxHeaderLen is the maximum length of the header block text.
	maxHeaderLen = 150
	// maxSectionFields is the maximum number of fields in a section block.
	maxSectionFields = 10

	footerText     = "Datastore Entry Information"
	attachmentNote = "The data is attached to this message thread."
)

var escape = render.EscapeMrkdwn

func mrkdwn(s string) *slack.TextBlockObject {
	return slack.NewTextBlockObject(slack.MarkdownType, s, false, false)
}

// Blocks converts the successful outcome into the message blocks.
//
// The layout is: the header with the title, the experience line with the
// universe icon, the request metadata fields, the summary fields, the body,
// and the footer.  Depending on the plan strategy, the body is placed in the
// same section group as the fields (FencedBlock), separated with the divider
// (SplitBlock), or replaced with the note about the attachment
// (FileAttachment).
func Blocks(out *lookup.Outcome) []slack.Block {
	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, render.TruncateMessage(out.Title, maxHeaderLen), false, false)),
	}

	var accessory *slack.Accessory
	if out.Universe.IconURL != "" {
		accessory = slack.NewAccessory(slack.NewImageBlockElement(out.Universe.IconURL, out.Universe.Name))
	}
	blocks = append(blocks, slack.NewSectionBlock(
		mrkdwn("*Experience:* "+escape(universeName(out.Universe))),
		nil,
		accessory,
	))

	blocks = append(blocks, slack.NewSectionBlock(nil, []*slack.TextBlockObject{
		fieldText("Key", out.Key),
		fieldText("Universe ID", strconv.FormatInt(out.UniverseID, 10)),
		fieldText("Datastore", out.Datastore),
	}, nil))

	if out.Plan == nil {
		return append(blocks, footer(out.Meta))
	}
	blocks = append(blocks, fieldSections(out.Plan.Fields)...)

	switch out.Plan.Strategy {
	case render.FencedBlock:
		blocks = append(blocks, slack.NewSectionBlock(mrkdwn(slackFence(out.Plan.Body)), nil, nil))
	case render.SplitBlock:
		blocks = append(blocks,
			slack.NewDividerBlock(),
			slack.NewSectionBlock(mrkdwn(slackFence(out.Plan.Body)), nil, nil),
		)
	case render.FileAttachment:
		blocks = append(blocks, slack.NewContextBlock("", mrkdwn(attachmentNote)))
	}
	return append(blocks, footer(out.Meta))
}

func universeName(u opencloud.UniverseInfo) string {
	if u.Name == "" {
		return opencloud.DefUniverseName
	}
	return u.Name
}

func fieldText(label, value string) *slack.TextBlockObject {
	return mrkdwn("*" + escape(label) + "*\n" + escape(value))
}

// fieldSections splits the summary fields into sections of at most
// maxSectionFields fields.
func fieldSections(fields []render.Field) []slack.Block {
	var blocks []slack.Block
	for len(fields) > 0 {
		n := min(len(fields), maxSectionFields)
		tbo := make([]*slack.TextBlockObject, 0, n)
		for _, f := range fields[:n] {
			tbo = append(tbo, fieldText(f.Label, f.Value))
		}
		blocks = append(blocks, slack.NewSectionBlock(nil, tbo, nil))
		fields = fields[n:]
	}
	return blocks
}

// slackFence converts the fenced body into the Slack code block.  Slack does
// not support the language hint, so it's dropped.
func slackFence(body string) string {
	return "```\n" + escape(render.Unfence(body)) + "\n```"
}

func footer(m opencloud.EntryMeta) *slack.ContextBlock {
	elems := []slack.MixedElement{mrkdwn(footerText)}
	if m.Version != "" {
		elems = append(elems, mrkdwn("Version `"+escape(m.Version)+"`"))
	}
	if !m.UpdatedTime.IsZero() {
		elems = append(elems, mrkdwn("Updated "+m.UpdatedTime.UTC().Format(render.TimeFormat)))
	}
	if len(m.UserIDs) > 0 {
		ids := make([]string, len(m.UserIDs))
		for i, id := range m.UserIDs {
			ids[i] = strconv.FormatInt(id, 10)
		}
		elems = append(elems, mrkdwn("Users "+strings.Join(ids, ", ")))
	}
	return slack.NewContextBlock("", elems...)
}

// presenceBlocks returns the blocks of the presence notice.
func presenceBlocks(online bool, at time.Time) []slack.Block {
	title, desc := ":red_circle: Bot is Offline", "Bot has gone offline"
	if online {
		title, desc = ":large_green_circle: Bot is Online", "Bot has come back online"
	}
	return []slack.Block{
		slack.NewSectionBlock(mrkdwn(fmt.Sprintf("*%s*\n%s", title, desc)), nil, nil),
		slack.NewContextBlock("", mrkdwn(at.UTC().Format(render.TimeFormat))),
	}
}
