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
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/rusq/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KhanPython/RoAdmin/internal/entry"
	"github.com/KhanPython/RoAdmin/internal/lookup"
	"github.com/KhanPython/RoAdmin/internal/opencloud"
	"github.com/KhanPython/RoAdmin/internal/render"
)

func testOutcome(t *testing.T, data string, lim render.Limits) *lookup.Outcome {
	t.Helper()
	plan, err := render.Build("gold_100", entry.MustParse(data), lim)
	require.NoError(t, err)
	return &lookup.Outcome{
		Status:     lookup.StatusOK,
		Title:      "Datastore Entry: gold_100",
		Key:        "gold_100",
		UniverseID: 123456,
		Datastore:  "Economy",
		Universe:   opencloud.UniverseInfo{ID: 123456, Name: "Gold Rush", IconURL: "https://icon", Exists: true},
		Plan:       plan,
	}
}

func blockTypes(bb []slack.Block) []slack.MessageBlockType {
	var tt []slack.MessageBlockType
	for _, b := range bb {
		tt = append(tt, b.BlockType())
	}
	return tt
}

func TestBlocks(t *testing.T) {
	t.Run("fenced block", func(t *testing.T) {
		out := testOutcome(t, `{"currency": 250, "lastUpdated": 1700000000000}`, render.SlackLimits)
		require.Equal(t, render.FencedBlock, out.Plan.Strategy)

		bb := Blocks(out)
		assert.Equal(t, []slack.MessageBlockType{
			slack.MBTHeader,  // title
			slack.MBTSection, // experience
			slack.MBTSection, // key, universe, datastore
			slack.MBTSection, // summary fields
			slack.MBTSection, // body
			slack.MBTContext, // footer
		}, blockTypes(bb))

		hdr := bb[0].(*slack.HeaderBlock)
		assert.Equal(t, "Datastore Entry: gold_100", hdr.Text.Text)

		exp := bb[1].(*slack.SectionBlock)
		assert.Equal(t, "*Experience:* Gold Rush", exp.Text.Text)
		require.NotNil(t, exp.Accessory)
		require.NotNil(t, exp.Accessory.ImageElement)
		require.NotNil(t, exp.Accessory.ImageElement.ImageURL)
		assert.Equal(t, "https://icon", *exp.Accessory.ImageElement.ImageURL)

		meta := bb[2].(*slack.SectionBlock)
		require.Len(t, meta.Fields, 3)
		assert.Equal(t, "*Key*\ngold_100", meta.Fields[0].Text)
		assert.Equal(t, "*Universe ID*\n123456", meta.Fields[1].Text)
		assert.Equal(t, "*Datastore*\nEconomy", meta.Fields[2].Text)

		summary := bb[3].(*slack.SectionBlock)
		require.Len(t, summary.Fields, 2)
		assert.Equal(t, "*Last Updated*\n2023-11-14 22:13:20 UTC", summary.Fields[1].Text)

		body := bb[4].(*slack.SectionBlock)
		assert.Equal(t, "```\n{\n  \"currency\": 250,\n  \"lastUpdated\": 1700000000000\n}\n```", body.Text.Text)
	})
	t.Run("split block", func(t *testing.T) {
		lim := render.SlackLimits
		lim.FencedBlockSoftLimit = 20
		out := testOutcome(t, `{"currency": 250}`, lim)
		require.Equal(t, render.SplitBlock, out.Plan.Strategy)

		bb := Blocks(out)
		assert.Equal(t, []slack.MessageBlockType{
			slack.MBTHeader,
			slack.MBTSection,
			slack.MBTSection,
			slack.MBTSection,
			slack.MBTDivider,
			slack.MBTSection,
			slack.MBTContext,
		}, blockTypes(bb))
	})
	t.Run("file attachment", func(t *testing.T) {
		out := testOutcome(t, `{"blob": "`+strings.Repeat("x", 4000)+`"}`, render.SlackLimits)
		require.Equal(t, render.FileAttachment, out.Plan.Strategy)

		bb := Blocks(out)
		types := blockTypes(bb)
		assert.NotContains(t, types, slack.MBTDivider)
		note := bb[len(bb)-2].(*slack.ContextBlock)
		assert.Equal(t, attachmentNote, note.ContextElements.Elements[0].(*slack.TextBlockObject).Text)
	})
	t.Run("no icon", func(t *testing.T) {
		out := testOutcome(t, `{}`, render.SlackLimits)
		out.Universe = opencloud.UniverseInfo{}
		bb := Blocks(out)
		exp := bb[1].(*slack.SectionBlock)
		assert.Nil(t, exp.Accessory)
		assert.Equal(t, "*Experience:* "+opencloud.DefUniverseName, exp.Text.Text)
		summary := bb[3].(*slack.SectionBlock)
		assert.Equal(t, "*Data*\nNo data stored", summary.Fields[0].Text)
	})
}

func Test_fieldSections(t *testing.T) {
	var ff []render.Field
	for i := range 23 {
		ff = append(ff, render.Field{Label: "F" + strconv.Itoa(i), Value: strconv.Itoa(i)})
	}
	bb := fieldSections(ff)
	require.Len(t, bb, 3)
	assert.Len(t, bb[0].(*slack.SectionBlock).Fields, 10)
	assert.Len(t, bb[1].(*slack.SectionBlock).Fields, 10)
	assert.Len(t, bb[2].(*slack.SectionBlock).Fields, 3)
	assert.Empty(t, fieldSections(nil))
}

func Test_escape(t *testing.T) {
	assert.Equal(t, "a &lt;b&gt; &amp; c", escape("a <b> & c"))
	assert.Equal(t, "```\n&lt;@U123&gt;\n```", slackFence(render.Fence("<@U123>")))
}

func Test_footer(t *testing.T) {
	fb := footer(opencloud.EntryMeta{
		Version:     "v1",
		UpdatedTime: time.Date(2023, 11, 15, 10, 0, 0, 0, time.UTC),
		UserIDs:     []int64{1, 2},
	})
	var texts []string
	for _, e := range fb.ContextElements.Elements {
		texts = append(texts, e.(*slack.TextBlockObject).Text)
	}
	assert.Equal(t, []string{footerText, "Version `v1`", "Updated 2023-11-15 10:00:00 UTC", "Users 1, 2"}, texts)
}

func Test_presenceBlocks(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	on := presenceBlocks(true, at)
	require.Len(t, on, 2)
	assert.Contains(t, on[0].(*slack.SectionBlock).Text.Text, "Bot is Online")
	off := presenceBlocks(false, at)
	assert.Contains(t, off[0].(*slack.SectionBlock).Text.Text, "Bot has gone offline")
}

func TestBlocks_escapedSizes(t *testing.T) {
	const (
		maxSectionText = 3000
		maxFieldText   = 2000
	)
	for name, data := range map[string]string{
		"markup in body":  `{"html": "` + strings.Repeat("<b>", 900) + `"}`,
		"markup in field": `{"amp": "` + strings.Repeat("&", 1700) + `"}`,
		"long label":      `{"` + strings.Repeat("&", 200) + `": "` + strings.Repeat(">", 300) + `"}`,
	} {
		t.Run(name, func(t *testing.T) {
			out := testOutcome(t, data, render.SlackLimits)
			for _, b := range Blocks(out) {
				sb, ok := b.(*slack.SectionBlock)
				if !ok {
					continue
				}
				if sb.Text != nil {
					assert.LessOrEqual(t, len([]rune(sb.Text.Text)), maxSectionText)
				}
				for _, f := range sb.Fields {
					assert.LessOrEqual(t, len([]rune(f.Text)), maxFieldText)
				}
			}
		})
	}
}
