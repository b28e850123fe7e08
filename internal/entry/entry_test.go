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

package entry

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind Kind
		wantErr  error
	}{
		{"null", `null`, KindNull, nil},
		{"bool", `true`, KindBool, nil},
		{"number", `1700000000000`, KindNumber, nil},
		{"string", `"hello"`, KindString, nil},
		{"empty object", `{}`, KindObject, nil},
		{"array", `[1, "a", null]`, KindArray, nil},
		{"garbage", `{"a":`, 0, ErrInvalid},
		{"empty input", ``, 0, ErrInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.input))
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, got.Kind())
		})
	}
}

func TestParse_preservesOrder(t *testing.T) {
	v := MustParse(`{"zulu": 1, "alpha": 2, "mike": {"b": 1, "a": 2}}`)
	members := v.Members()
	require.Len(t, members, 3)
	assert.Equal(t, "zulu", members[0].Key)
	assert.Equal(t, "alpha", members[1].Key)
	assert.Equal(t, "mike", members[2].Key)
	nested := members[2].Value.Members()
	require.Len(t, nested, 2)
	assert.Equal(t, "b", nested[0].Key)
	assert.Equal(t, "a", nested[1].Key)
}

func TestParse_duplicateKeys(t *testing.T) {
	v := MustParse(`{"a": 1, "b": 2, "a": 3}`)
	assert.Equal(t, `{"a":3,"b":2}`, v.Compact())
}

func TestObject_duplicateKeys(t *testing.T) {
	v := Object(M("a", Int(1)), M("b", Int(2)), M("a", Int(3)))
	assert.Equal(t, `{"a":3,"b":2}`, v.Compact())
}

func TestParse_largeObject(t *testing.T) {
	const n = 100_000
	var sb strings.Builder
	sb.WriteByte('{')
	for i := range n {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, `"%d":{"coins":%d}`, 1_000_000+i, i)
	}
	sb.WriteString(`,"1000000":0}`) // duplicate of the first key

	start := time.Now()
	v, err := Parse([]byte(sb.String()))
	elapsed := time.Since(start)
	require.NoError(t, err)
	assert.Less(t, elapsed, 5*time.Second)

	members := v.Members()
	require.Len(t, members, n)
	assert.Equal(t, "1000000", members[0].Key)
	assert.Equal(t, "0", members[0].Value.Literal())
	assert.Equal(t, strconv.Itoa(1_000_000+n-1), members[n-1].Key)
}

func TestParse_loneSurrogates(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lone high", `"\ud800x"`, "\ufffdx"},
		{"lone low", `"a\udc00"`, "a\ufffd"},
		{"high then letter escape", `"\ud800\u0041"`, "\ufffdA"},
		{"two highs", `"\ud800\ud800"`, "\ufffd\ufffd"},
		{"valid pair", `"\ud83d\ude00"`, "\U0001F600"},
		{"escaped backslash", `"\\ud800"`, `\ud800`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Parse([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Str())
		})
	}
	t.Run("key and value in object", func(t *testing.T) {
		in := []byte(`{"k\udfff": "\ud800x"}`)
		orig := string(in)
		v, err := Parse(in)
		require.NoError(t, err)
		got, ok := v.Get("k\ufffd")
		require.True(t, ok)
		assert.Equal(t, "\ufffdx", got.Str())
		assert.Equal(t, orig, string(in), "input must not be modified")
	})
}

func TestParse_escapes(t *testing.T) {
	v := MustParse(`{"k\"ey": "line\nbreak é"}`)
	got, ok := v.Get(`k"ey`)
	require.True(t, ok)
	assert.Equal(t, "line\nbreak é", got.Str())
}

func TestValue_Canonical(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"null", Null(), "null"},
		{"empty object", Object(), "{}"},
		{"empty array", Array(), "[]"},
		{
			"flat object",
			Object(M("currency", Int(250)), M("lastUpdated", Int(1700000000000))),
			"{\n  \"currency\": 250,\n  \"lastUpdated\": 1700000000000\n}",
		},
		{
			"nested",
			Object(M("inv", Array(String("sword"), Object(M("n", Bool(true)))))),
			"{\n  \"inv\": [\n    \"sword\",\n    {\n      \"n\": true\n    }\n  ]\n}",
		},
		{
			"escaping",
			String("a\"b\\c\td<>&é\x01"),
			`"a\"b\\c\td<>&é\u0001"`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.v.Canonical())
		})
	}
}

func TestValue_Canonical_roundTrip(t *testing.T) {
	docs := []string{
		"{\n  \"currency\": 250,\n  \"lastUpdated\": 1700000000000\n}",
		"[\n  1.50,\n  -0,\n  1e+21,\n  \"x\"\n]",
		"{\n  \"a\": {},\n  \"b\": [],\n  \"c\": null\n}",
	}
	for _, doc := range docs {
		v := MustParse(doc)
		assert.Equal(t, doc, v.Canonical())
		again := MustParse(v.Canonical())
		assert.True(t, v.Equal(again))
	}
}

func TestValue_Compact_matchesEncodingJSON(t *testing.T) {
	v := MustParse(`{"b": [1, 2, {"c": "d"}], "a": false}`)
	var generic any
	require.NoError(t, json.Unmarshal([]byte(v.Compact()), &generic))
	assert.Equal(t, `{"b":[1,2,{"c":"d"}],"a":false}`, v.Compact())
}

func TestValue_Text(t *testing.T) {
	assert.Equal(t, "250", Int(250).Text())
	assert.Equal(t, "true", Bool(true).Text())
	assert.Equal(t, "null", Null().Text())
	assert.Equal(t, "plain", String("plain").Text())
	assert.Equal(t, `[1,"a"]`, Array(Int(1), String("a")).Text())
}

func TestValue_IsEmpty(t *testing.T) {
	assert.True(t, Null().IsEmpty())
	assert.True(t, Object().IsEmpty())
	assert.False(t, Array().IsEmpty())
	assert.False(t, Object(M("a", Null())).IsEmpty())
}

func TestValue_JSON(t *testing.T) {
	in := Object(M("z", Int(1)), M("a", String("x")))
	b, err := json.Marshal(struct {
		Data Value `json:"data"`
	}{in})
	require.NoError(t, err)
	assert.Equal(t, `{"data":{"z":1,"a":"x"}}`, string(b))

	var out Value
	require.NoError(t, json.Unmarshal([]byte(`{"z":1,"a":"x"}`), &out))
	assert.True(t, in.Equal(out))
}
