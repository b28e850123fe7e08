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

// In this file: order-preserving parser.

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf16"

	"github.com/buger/jsonparser"
)

// maxDepth is the maximum nesting depth accepted by Parse.
const maxDepth = 512

var (
	// ErrInvalid is returned by Parse when the input is not a valid JSON
	// document.
	ErrInvalid = errors.New("invalid JSON document")
	// ErrTooDeep is returned by Parse when the document nesting exceeds the
	// supported depth.
	ErrTooDeep = errors.New("JSON document is nested too deep")
)

// Parse parses a JSON document, preserving the order of object members and
// the literal text of numbers.
func Parse(data []byte) (Value, error) {
	if !json.Valid(data) {
		return Value{}, ErrInvalid
	}
	data = replaceLoneSurrogates(data)
	raw, typ, _, err := jsonparser.Get(data)
	if err != nil {
		return Value{}, fmt.Errorf("%w: %s", ErrInvalid, err)
	}
	return parseValue(raw, typ, 0)
}

// MustParse is a helper that parses the string s and panics on error.  It is
// intended for tests and static values.
func MustParse(s string) Value {
	v, err := Parse([]byte(s))
	if err != nil {
		panic(err)
	}
	return v
}

func parseValue(raw []byte, typ jsonparser.ValueType, depth int) (Value, error) {
	if depth > maxDepth {
		return Value{}, ErrTooDeep
	}
	switch typ {
	case jsonparser.Null:
		return Null(), nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(raw)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %s", ErrInvalid, err)
		}
		return Bool(b), nil
	case jsonparser.Number:
		return Number(string(raw)), nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(raw)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %s", ErrInvalid, err)
		}
		return String(s), nil
	case jsonparser.Object:
		return parseObject(raw, depth)
	case jsonparser.Array:
		return parseArray(raw, depth)
	}
	return Value{}, fmt.Errorf("%w: unexpected value type %s", ErrInvalid, typ)
}

func parseObject(raw []byte, depth int) (Value, error) {
	obj := newObjectBuilder(0)
	err := jsonparser.ObjectEach(raw, func(key []byte, value []byte, typ jsonparser.ValueType, _ int) error {
		v, err := parseValue(value, typ, depth+1)
		if err != nil {
			return err
		}
		obj.set(string(key), v)
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrTooDeep) || errors.Is(err, ErrInvalid) {
			return Value{}, err
		}
		return Value{}, fmt.Errorf("%w: %s", ErrInvalid, err)
	}
	return obj.value(), nil
}

func parseArray(raw []byte, depth int) (Value, error) {
	arr := []Value{}
	var cbErr error
	_, err := jsonparser.ArrayEach(raw, func(value []byte, typ jsonparser.ValueType, _ int, err error) {
		if cbErr != nil {
			return
		}
		if err != nil {
			cbErr = fmt.Errorf("%w: %s", ErrInvalid, err)
			return
		}
		v, err := parseValue(value, typ, depth+1)
		if err != nil {
			cbErr = err
			return
		}
		arr = append(arr, v)
	})
	if cbErr != nil {
		return Value{}, cbErr
	}
	if err != nil {
		return Value{}, fmt.Errorf("%w: %s", ErrInvalid, err)
	}
	return Array(arr...), nil
}

// replaceLoneSurrogates replaces the "\uXXXX" escapes of the unpaired UTF-16
// surrogates with "\ufffd".  They are valid JSON, but can't be decoded to
// UTF-8.  data must be a valid JSON document, where a backslash only occurs
// in strings.  data is copied before the first replacement.
func replaceLoneSurrogates(data []byte) []byte {
	copied := false
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' {
			continue
		}
		i++ // escaped character
		if data[i] != 'u' {
			continue
		}
		r1, ok := hex4(data[i+1:])
		if !ok || !utf16.IsSurrogate(r1) {
			i += 4
			continue
		}
		if r1 < 0xdc00 && i+10 < len(data) && data[i+5] == '\\' && data[i+6] == 'u' {
			if r2, ok := hex4(data[i+7:]); ok && r2 >= 0xdc00 && r2 <= 0xdfff {
				i += 10 // valid pair
				continue
			}
		}
		if !copied {
			data = append([]byte(nil), data...)
			copied = true
		}
		copy(data[i+1:i+5], "fffd")
		i += 4
	}
	return data
}

func hex4(b []byte) (rune, bool) {
	if len(b) < 4 {
		return 0, false
	}
	var r rune
	for _, c := range b[:4] {
		switch {
		case c >= '0' && c <= '9':
			r = r<<4 | rune(c-'0')
		case c >= 'a' && c <= 'f':
			r = r<<4 | rune(c-'a'+10)
		case c >= 'A' && c <= 'F':
			r = r<<4 | rune(c-'A'+10)
		default:
			return 0, false
		}
	}
	return r, true
}
