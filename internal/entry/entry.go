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

// Package entry implements the value model for the datastore entries.
//
// An entry is an untyped JSON document.  It is represented as a tagged
// variant, so that the consumers can switch on the [Kind] exhaustively
// instead of probing the dynamic types.  Objects preserve the member order
// of the source document, numbers preserve their literal text, which makes
// the canonical encoding byte-exact.
package entry

import (
	"strconv"
)

// Kind is the kind of the Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindObject
	KindArray
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Member is a single member of an object.
type Member struct {
	Key   string
	Value Value
}

// Value is a JSON value.  The zero value is null.
type Value struct {
	kind Kind
	b    bool
	s    string // string value or the number literal
	obj  []Member
	arr  []Value
}

// Null returns the null value.
func Null() Value { return Value{} }

// Bool returns a boolean value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// String returns a string value.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Int returns a number value holding n.
func Int(n int64) Value {
	return Value{kind: KindNumber, s: strconv.FormatInt(n, 10)}
}

// Float returns a number value holding f.
func Float(f float64) Value {
	return Value{kind: KindNumber, s: strconv.FormatFloat(f, 'g', -1, 64)}
}

// Number returns a number value with the literal text lit.  The caller is
// responsible for lit being a valid JSON number.
func Number(lit string) Value {
	return Value{kind: KindNumber, s: lit}
}

// Object returns an object with members in the given order.  If the key is
// repeated, the later value replaces the earlier one, keeping the position of
// the first occurrence.
func Object(members ...Member) Value {
	b := newObjectBuilder(len(members))
	for _, m := range members {
		b.set(m.Key, m.Value)
	}
	return b.value()
}

// Array returns an array of values.
func Array(elems ...Value) Value {
	if elems == nil {
		elems = []Value{}
	}
	return Value{kind: KindArray, arr: elems}
}

// M is a shorthand for constructing a Member.
func M(key string, v Value) Member {
	return Member{Key: key, Value: v}
}

// objectBuilder collects the object members.  A repeated key replaces the
// value in the position of the first occurrence.
type objectBuilder struct {
	members []Member
	index   map[string]int
}

func newObjectBuilder(n int) *objectBuilder {
	return &objectBuilder{
		members: make([]Member, 0, n),
		index:   make(map[string]int, n),
	}
}

func (b *objectBuilder) set(key string, val Value) {
	if i, ok := b.index[key]; ok {
		b.members[i].Value = val
		return
	}
	b.index[key] = len(b.members)
	b.members = append(b.members, Member{Key: key, Value: val})
}

func (b *objectBuilder) value() Value {
	return Value{kind: KindObject, obj: b.members}
}

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsEmpty reports whether the value carries no data: null, or an object
// without members.
func (v Value) IsEmpty() bool {
	return v.kind == KindNull || (v.kind == KindObject && len(v.obj) == 0)
}

// IsScalar reports whether v is neither an object nor an array.
func (v Value) IsScalar() bool {
	return v.kind != KindObject && v.kind != KindArray
}

// Bool returns the boolean value, and false for all other kinds.
func (v Value) Bool() bool { return v.kind == KindBool && v.b }

// Str returns the string value, and an empty string for all other kinds.
func (v Value) Str() string {
	if v.kind != KindString {
		return ""
	}
	return v.s
}

// Literal returns the number literal, and an empty string for all other
// kinds.
func (v Value) Literal() string {
	if v.kind != KindNumber {
		return ""
	}
	return v.s
}

// Int64 returns the number as int64.  ok is false if v is not a number, or
// if the number is not an integer.
func (v Value) Int64() (n int64, ok bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	n, err := strconv.ParseInt(v.s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// Float64 returns the number as float64.
func (v Value) Float64() (f float64, ok bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	f, err := strconv.ParseFloat(v.s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Members returns the object members in order.  It returns nil for all other
// kinds.  The returned slice must not be modified.
func (v Value) Members() []Member {
	if v.kind != KindObject {
		return nil
	}
	return v.obj
}

// Elems returns the array elements.  It returns nil for all other kinds.  The
// returned slice must not be modified.
func (v Value) Elems() []Value {
	if v.kind != KindArray {
		return nil
	}
	return v.arr
}

// Len returns the number of members of an object, or number of elements of
// an array, and 0 for scalars.
func (v Value) Len() int {
	switch v.kind {
	case KindObject:
		return len(v.obj)
	case KindArray:
		return len(v.arr)
	}
	return 0
}

// Get returns the value of the object member with the given key.
func (v Value) Get(key string) (Value, bool) {
	for _, m := range v.obj {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// Text returns the display text of the value: strings are returned
// verbatim, other scalars as their canonical literal, and objects and arrays
// in the compact canonical form.
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindObject, KindArray:
		return v.Compact()
	}
	return string(appendValue(nil, v, "", 0))
}

// Equal reports whether the two values are identical, including member
// order.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == other.b
	case KindNumber, KindString:
		return v.s == other.s
	case KindObject:
		if len(v.obj) != len(other.obj) {
			return false
		}
		for i := range v.obj {
			if v.obj[i].Key != other.obj[i].Key || !v.obj[i].Value.Equal(other.obj[i].Value) {
				return false
			}
		}
		return true
	case KindArray:
		if len(v.arr) != len(other.arr) {
			return false
		}
		for i := range v.arr {
			if !v.arr[i].Equal(other.arr[i]) {
				return false
			}
		}
		return true
	}
	return false
}
