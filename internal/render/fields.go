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

// In this file: summary fields.

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/KhanPython/RoAdmin/internal/entry"
)

// Ellipsis is appended to the shortened labels and messages.
const Ellipsis = "..."

// ErrorMessageLimit is the maximum length of the user-facing error message.
const ErrorMessageLimit = 1000

// TimeFormat is the format of the timestamps displayed in the fields.
const TimeFormat = "2006-01-02 15:04:05 UTC"

// summaryFields returns one field per top-level key of the object v.  It
// returns nil, if v is not an object, or it has more keys than allowed.
// shortened is true if any of the labels was shortened.
func summaryFields(v entry.Value, lim Limits) (fields []Field, shortened bool) {
	if v.Kind() != entry.KindObject || v.Len() > lim.MaxSummaryFields {
		return nil, false
	}
	fields = make([]Field, 0, v.Len())
	for _, m := range v.Members() {
		value := DisplayValue(m.Key, m.Value)
		if lim.Measure(value) > lim.InlineFieldLimit {
			// does not fit, the body or the attachment carries it.
			continue
		}
		label, cut := Label(m.Key, lim.KeyLabelMaxLen)
		shortened = shortened || cut
		fields = append(fields, Field{Label: label, Value: value})
	}
	return fields, shortened
}

// Label returns the display label for the key: camelCase words are
// separated with spaces and the first character is upper-cased.  Labels
// longer than maxLen runes are cut to maxLen-3 runes followed by an
// ellipsis, in which case cut is true.
func Label(key string, maxLen int) (label string, cut bool) {
	label = capitalise(strings.Join(words(key), " "))
	if label == "" {
		label = key
	}
	return shorten(label, maxLen)
}

// DisplayValue returns the display text for the value of the key.  Strings
// are displayed as is, other scalars by their canonical literal, and nested
// objects and arrays in the compact canonical form.  Integer values of
// time-related keys that look like Unix timestamps are displayed as UTC time.
func DisplayValue(key string, v entry.Value) string {
	switch v.Kind() {
	case entry.KindNumber:
		if isTimeKey(key) {
			if t, ok := epochTime(v); ok {
				return t.Format(TimeFormat)
			}
		}
	case entry.KindString:
		if v.Str() == "" {
			return `""`
		}
	}
	return v.Text()
}

// TruncateMessage shortens the message s to maxLen runes, including the
// trailing ellipsis.
func TruncateMessage(s string, maxLen int) string {
	out, _ := shorten(s, maxLen)
	return out
}

func shorten(s string, maxLen int) (string, bool) {
	if utf8.RuneCountInString(s) <= maxLen {
		return s, false
	}
	keep := maxLen - utf8.RuneCountInString(Ellipsis)
	if keep < 0 {
		keep = 0
	}
	r := []rune(s)
	return string(r[:keep]) + Ellipsis, true
}

func capitalise(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// words splits the camelCase key into words.  Underscores and other
// separators are kept as part of the words.
func words(key string) []string {
	var (
		out  []string
		cur  []rune
		prev rune
	)
	for _, r := range key {
		if unicode.IsUpper(r) && (unicode.IsLower(prev) || unicode.IsDigit(prev)) && len(cur) > 0 {
			out = append(out, string(cur))
			cur = cur[:0]
		}
		cur = append(cur, r)
		prev = r
	}
	if len(cur) > 0 {
		out = append(out, string(cur))
	}
	return out
}

var timeWords = map[string]bool{
	"at":        true,
	"created":   true,
	"date":      true,
	"expires":   true,
	"joined":    true,
	"modified":  true,
	"seen":      true,
	"time":      true,
	"timestamp": true,
	"updated":   true,
}

// isTimeKey reports whether the last word of the key names a point in
// time, i.e. "lastUpdated", "created_at", "joinTime".
func isTimeKey(key string) bool {
	w := words(key)
	if len(w) == 0 {
		return false
	}
	last := w[len(w)-1]
	if i := strings.LastIndexAny(last, "_-. "); i >= 0 {
		last = last[i+1:]
	}
	return timeWords[strings.ToLower(last)]
}

// epochTime interprets an integer as Unix time in seconds or milliseconds,
// if it falls into the plausible range (years 2001 to 5138).
func epochTime(v entry.Value) (time.Time, bool) {
	n, ok := v.Int64()
	if !ok {
		return time.Time{}, false
	}
	switch {
	case n >= 1e12 && n < 1e14:
		return time.UnixMilli(n).UTC(), true
	case n >= 1e9 && n < 1e11:
		return time.Unix(n, 0).UTC(), true
	}
	return time.Time{}, false
}
