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

package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KhanPython/RoAdmin/internal/entry"
)

// testLimits are small limits that make the boundaries easy to hit.
var testLimits = Limits{
	InlineFieldLimit:     50,
	FencedBlockSoftLimit: 100,
	DescriptionHardLimit: 200,
	KeyLabelMaxLen:       20,
	MaxSummaryFields:     5,
	TotalLimit:           1000,
	AttachmentMaxBytes:   1 << 20,
}

// bodyOfLen returns the string entry, which fenced body has exactly n runes.
func bodyOfLen(t *testing.T, n int) entry.Value {
	t.Helper()
	overhead := len(Fence(`""`))
	require.GreaterOrEqual(t, n, overhead)
	v := entry.String(strings.Repeat("a", n-overhead))
	require.Equal(t, n, len(Fence(v.Canonical())))
	return v
}

func TestBuild_empty(t *testing.T) {
	for name, v := range map[string]entry.Value{
		"absent":       entry.Null(),
		"empty object": entry.MustParse(`{}`),
	} {
		t.Run(name, func(t *testing.T) {
			p, err := Build("k", v, DefLimits)
			require.NoError(t, err)
			assert.Equal(t, InlineFields, p.Strategy)
			assert.Equal(t, []Field{{Label: "Data", Value: "No data stored"}}, p.Fields)
			assert.Empty(t, p.Body)
			assert.Nil(t, p.Attachment)
			assert.False(t, p.Truncated)
		})
	}
}

func TestBuild_example(t *testing.T) {
	v := entry.MustParse(`{"currency": 250, "lastUpdated": 1700000000000}`)
	p, err := Build("gold_100", v, DefLimits)
	require.NoError(t, err)

	assert.Equal(t, FencedBlock, p.Strategy)
	assert.Equal(t, []Field{
		{Label: "Currency", Value: "250"},
		{Label: "Last Updated", Value: "2023-11-14 22:13:20 UTC"},
	}, p.Fields)
	assert.Equal(t, "```json\n{\n  \"currency\": 250,\n  \"lastUpdated\": 1700000000000\n}\n```", p.Body)
	assert.False(t, p.Truncated)
}

func TestBuild_boundaries(t *testing.T) {
	tests := []struct {
		name    string
		bodyLen int
		want    Strategy
	}{
		{"one below soft limit", testLimits.FencedBlockSoftLimit - 1, FencedBlock},
		{"at soft limit", testLimits.FencedBlockSoftLimit, SplitBlock},
		{"at hard limit", testLimits.DescriptionHardLimit, SplitBlock},
		{"above hard limit", testLimits.DescriptionHardLimit + 1, FileAttachment},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Build("key", bodyOfLen(t, tt.bodyLen), testLimits)
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Strategy)
			assert.Equal(t, tt.want == FileAttachment, p.Truncated)
		})
	}
}

func TestBuild_attachment(t *testing.T) {
	v := entry.Object(
		entry.M("name", entry.String("builderman")),
		entry.M("blob", entry.String(strings.Repeat("x", 500))),
	)
	p, err := Build("user/1", v, testLimits)
	require.NoError(t, err)

	assert.Equal(t, FileAttachment, p.Strategy)
	assert.True(t, p.Truncated)
	assert.Empty(t, p.Body)
	require.NotNil(t, p.Attachment)
	assert.Equal(t, "user_1_data.json", p.Attachment.Filename)
	assert.Equal(t, v.Canonical(), string(p.Attachment.Data))

	// blob is too long for the inline field and is only in the attachment.
	require.Len(t, p.Fields, 2)
	assert.Equal(t, Field{Label: "Name", Value: "builderman"}, p.Fields[0])
	assert.Equal(t, "Data", p.Fields[1].Label)
	assert.Contains(t, p.Fields[1].Value, "too large")
	assert.Contains(t, p.Fields[1].Value, "user_1_data.json")
}

func TestBuild_totalLimit(t *testing.T) {
	lim := testLimits
	lim.TotalLimit = lim.DescriptionHardLimit
	v := entry.Object(
		entry.M("a", entry.String(strings.Repeat("a", 45))),
		entry.M("b", entry.String(strings.Repeat("b", 45))),
	)
	// body fits the hard limit alone, but not together with the fields.
	p, err := Build("k", v, lim)
	require.NoError(t, err)
	assert.Equal(t, FileAttachment, p.Strategy)
}

func TestBuild_sizeOverflow(t *testing.T) {
	lim := testLimits
	lim.AttachmentMaxBytes = 10
	_, err := Build("k", bodyOfLen(t, 500), lim)
	assert.ErrorIs(t, err, ErrSizeOverflow)
}

func TestBuild_fenceInContent(t *testing.T) {
	p, err := Build("k", entry.String("```"), testLimits)
	require.NoError(t, err)
	assert.Equal(t, FileAttachment, p.Strategy)
}

func TestBuild_inlineOnly(t *testing.T) {
	lim := testLimits
	lim.InlineOnly = true
	v := entry.MustParse(`{"coins": 10, "gems": 2}`)
	p, err := Build("k", v, lim)
	require.NoError(t, err)
	assert.Equal(t, InlineFields, p.Strategy)
	assert.Empty(t, p.Body)
	assert.Len(t, p.Fields, 2)

	// a field that does not fit makes the planner fall back to the body.
	v = entry.Object(entry.M("coins", entry.Int(10)), entry.M("log", entry.String(strings.Repeat("z", 55))))
	p, err = Build("k", v, lim)
	require.NoError(t, err)
	assert.Equal(t, FencedBlock, p.Strategy)
}

func TestBuild_tooManyKeys(t *testing.T) {
	members := make([]entry.Member, testLimits.MaxSummaryFields+1)
	for i := range members {
		members[i] = entry.M(string(rune('a'+i)), entry.Int(int64(i)))
	}
	p, err := Build("k", entry.Object(members...), testLimits)
	require.NoError(t, err)
	assert.Empty(t, p.Fields)
	assert.NotEmpty(t, p.Body)
}

func TestBuild_labelTruncation(t *testing.T) {
	key := strings.Repeat("k", testLimits.KeyLabelMaxLen+10)
	p, err := Build("k", entry.Object(entry.M(key, entry.Int(1))), testLimits)
	require.NoError(t, err)
	require.Len(t, p.Fields, 1)
	label := p.Fields[0].Label
	assert.Equal(t, testLimits.KeyLabelMaxLen, len([]rune(label)))
	assert.True(t, strings.HasSuffix(label, Ellipsis))
	assert.True(t, p.Truncated)
	assert.Equal(t, FencedBlock, p.Strategy)
}

func TestBuild_idempotent(t *testing.T) {
	v := entry.MustParse(`{"inventory": ["sword", {"shield": 2}], "level": 7, "active": true}`)
	p1, err := Build("k", v, DefLimits)
	require.NoError(t, err)
	p2, err := Build("k", v, DefLimits)
	require.NoError(t, err)
	assert.Equal(t, p1, p2)
}

func TestBuild_roundTrip(t *testing.T) {
	docs := []entry.Value{
		entry.MustParse(`{"a": 1.50, "b": "é\n", "c": [null, false]}`),
		bodyOfLen(t, testLimits.FencedBlockSoftLimit+10),
	}
	for _, v := range docs {
		p, err := Build("k", v, testLimits)
		require.NoError(t, err)
		require.Contains(t, []Strategy{FencedBlock, SplitBlock}, p.Strategy)
		assert.Equal(t, v.Canonical(), Unfence(p.Body))
	}
}

func TestBuild_nestedValues(t *testing.T) {
	v := entry.MustParse(`{"stats": {"hp": 100, "mp": 5}, "tags": ["a", "b"], "ok": false, "note": ""}`)
	p, err := Build("k", v, DefLimits)
	require.NoError(t, err)
	assert.Equal(t, []Field{
		{Label: "Stats", Value: `{"hp":100,"mp":5}`},
		{Label: "Tags", Value: `["a","b"]`},
		{Label: "Ok", Value: "false"},
		{Label: "Note", Value: `""`},
	}, p.Fields)
}

func TestAttachmentName(t *testing.T) {
	assert.Equal(t, "gold_100_data.json", AttachmentName("gold_100"))
	assert.Equal(t, "a_b_c_data.json", AttachmentName("a/b c"))
	assert.Equal(t, "entry_data.json", AttachmentName(""))
}

func TestUnfence(t *testing.T) {
	assert.Equal(t, "{}", Unfence(Fence("{}")))
	assert.Equal(t, "plain", Unfence("plain"))
}

func TestLimits_Measure(t *testing.T) {
	plain := testLimits
	md := testLimits
	md.Markup = MarkupMrkdwn
	for _, s := range []string{"", "abc", "a<b>&c", "ü&"} {
		assert.Equal(t, len([]rune(s)), plain.Measure(s), s)
		assert.Equal(t, len([]rune(EscapeMrkdwn(s))), md.Measure(s), s)
	}
}

func TestBuild_markup(t *testing.T) {
	md := testLimits
	md.Markup = MarkupMrkdwn

	t.Run("escaped body is split", func(t *testing.T) {
		v := entry.String(strings.Repeat("<", 40))
		p, err := Build("k", v, testLimits)
		require.NoError(t, err)
		assert.Equal(t, FencedBlock, p.Strategy)

		p, err = Build("k", v, md)
		require.NoError(t, err)
		assert.Equal(t, SplitBlock, p.Strategy)
		assert.LessOrEqual(t, len([]rune(EscapeMrkdwn(p.Body))), md.DescriptionHardLimit)
	})
	t.Run("escaped body is attached", func(t *testing.T) {
		v := entry.String(strings.Repeat("<", 60))
		p, err := Build("k", v, testLimits)
		require.NoError(t, err)
		assert.Equal(t, FencedBlock, p.Strategy)

		p, err = Build("k", v, md)
		require.NoError(t, err)
		assert.Equal(t, FileAttachment, p.Strategy)
	})
	t.Run("escaped field is dropped", func(t *testing.T) {
		v := entry.MustParse(`{"amp": "` + strings.Repeat("&", 20) + `", "n": 1}`)
		p, err := Build("k", v, testLimits)
		require.NoError(t, err)
		assert.Len(t, p.Fields, 2)

		p, err = Build("k", v, md)
		require.NoError(t, err)
		assert.Equal(t, []Field{{Label: "N", Value: "1"}}, p.Fields)
	})
}
