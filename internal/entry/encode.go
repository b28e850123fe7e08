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

// In this file: canonical encoding.

import (
	"strings"
	"unicode/utf8"
)

// Indent is the indentation used by the canonical form.
const Indent = "  "

// Canonical returns the canonical human-readable form of the value: one JSON
// document, members in the insertion order, indented with two spaces.
// Empty objects and arrays are rendered as "{}" and "[]".
func (v Value) Canonical() string {
	return string(appendValue(nil, v, Indent, 0))
}

// Compact returns the canonical form without any insignificant whitespace.
func (v Value) Compact() string {
	return string(appendValue(nil, v, "", 0))
}

// MarshalJSON implements [json.Marshaler].  It returns the compact canonical
// form.
func (v Value) MarshalJSON() ([]byte, error) {
	return appendValue(nil, v, "", 0), nil
}

// UnmarshalJSON implements [json.Unmarshaler].
func (v *Value) UnmarshalJSON(data []byte) error {
	val, err := Parse(data)
	if err != nil {
		return err
	}
	*v = val
	return nil
}

func appendValue(dst []byte, v Value, indent string, depth int) []byte {
	switch v.kind {
	case KindNull:
		return append(dst, "null"...)
	case KindBool:
		if v.b {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)
	case KindNumber:
		return append(dst, v.s...)
	case KindString:
		return appendQuoted(dst, v.s)
	case KindObject:
		if len(v.obj) == 0 {
			return append(dst, "{}"...)
		}
		dst = append(dst, '{')
		for i, m := range v.obj {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendNewline(dst, indent, depth+1)
			dst = appendQuoted(dst, m.Key)
			dst = append(dst, ':')
			if indent != "" {
				dst = append(dst, ' ')
			}
			dst = appendValue(dst, m.Value, indent, depth+1)
		}
		dst = appendNewline(dst, indent, depth)
		return append(dst, '}')
	case KindArray:
		if len(v.arr) == 0 {
			return append(dst, "[]"...)
		}
		dst = append(dst, '[')
		for i, e := range v.arr {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendNewline(dst, indent, depth+1)
			dst = appendValue(dst, e, indent, depth+1)
		}
		dst = appendNewline(dst, indent, depth)
		return append(dst, ']')
	}
	return dst
}

func appendNewline(dst []byte, indent string, depth int) []byte {
	if indent == "" {
		return dst
	}
	dst = append(dst, '\n')
	return append(dst, strings.Repeat(indent, depth)...)
}

const hex = "0123456789abcdef"

// appendQuoted appends the JSON string literal for s.  Only the characters
// that JSON requires are escaped, non-ASCII text and HTML characters are
// written as is.
func appendQuoted(dst []byte, s string) []byte {
	dst = append(dst, '"')
	start := 0
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			if c >= 0x20 && c != '"' && c != '\\' {
				i++
				continue
			}
			dst = append(dst, s[start:i]...)
			switch c {
			case '"', '\\':
				dst = append(dst, '\\', c)
			case '\b':
				dst = append(dst, '\\', 'b')
			case '\f':
				dst = append(dst, '\\', 'f')
			case '\n':
				dst = append(dst, '\\', 'n')
			case '\r':
				dst = append(dst, '\\', 'r')
			case '\t':
				dst = append(dst, '\\', 't')
			default:
				dst = append(dst, '\\', 'u', '0', '0', hex[c>>4], hex[c&0xf])
			}
			i++
			start = i
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			dst = append(dst, s[start:i]...)
			dst = append(dst, "\ufffd"...)
			i += size
			start = i
			continue
		}
		i += size
	}
	dst = append(dst, s[start:]...)
	return append(dst, '"')
}
