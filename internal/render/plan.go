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

// Package render implements the presentation planner.  The planner takes a
// retrieved entry and the size limits of the host surface, and decides how
// the entry is going to be displayed, so that the output always fits the
// surface without silently losing data.
package render

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/KhanPython/RoAdmin/internal/entry"
)

// Strategy is the output encoding chosen by the planner.
type Strategy uint8

const (
	// InlineFields renders the summary fields only.
	InlineFields Strategy = iota
	// FencedBlock renders the fenced body alongside the summary fields.
	FencedBlock
	// SplitBlock renders the fenced body in a secondary block, separate
	// from the summary fields.
	SplitBlock
	// FileAttachment omits the body, and emits the document as a file.
	FileAttachment
)

func (s Strategy) String() string {
	switch s {
	case InlineFields:
		return "inline_fields"
	case FencedBlock:
		return "fenced_block"
	case SplitBlock:
		return "split_block"
	case FileAttachment:
		return "file_attachment"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

const (
	// NoDataLabel and NoDataText make up the placeholder field for the empty
	// entries.
	NoDataLabel = "Data"
	NoDataText  = "No data stored"

	fenceOpen  = "```json\n"
	fenceClose = "\n```"

	attachmentSuffix = "_data.json"
)

// ErrSizeOverflow is returned by Build if the entry does not fit even as a
// file attachment.
var ErrSizeOverflow = errors.New("entry exceeds the attachment size limit")

// Field is a single summary field.
type Field struct {
	Label string
	Value string
}

// Attachment is the file emitted for the entries too large to display.
type Attachment struct {
	Filename string
	Data     []byte
}

// Plan is the rendering plan.
type Plan struct {
	Strategy   Strategy
	Fields     []Field
	Body       string      // fenced body, empty for InlineFields and FileAttachment
	Attachment *Attachment // set only for FileAttachment
	Truncated  bool        // body omitted or a label shortened
}

// Build computes the rendering plan for the entry v retrieved with the key.
// A null entry is treated as absent.  Build is deterministic: the same entry
// and limits produce the same plan.
func Build(key string, v entry.Value, lim Limits) (*Plan, error) {
	if v.IsEmpty() {
		return &Plan{
			Strategy: InlineFields,
			Fields:   []Field{{Label: NoDataLabel, Value: NoDataText}},
		}, nil
	}

	text := v.Canonical()
	fields, shortened := summaryFields(v, lim)
	flen := fieldsLen(fields, lim)

	if lim.InlineOnly && v.Kind() == entry.KindObject && len(fields) == v.Len() && flen <= lim.TotalLimit {
		return &Plan{Strategy: InlineFields, Fields: fields, Truncated: shortened}, nil
	}

	body := Fence(text)
	bodyLen := lim.Measure(body)
	fits := flen+bodyLen <= lim.TotalLimit && !strings.Contains(text, "```")

	switch {
	case fits && bodyLen < lim.FencedBlockSoftLimit:
		return &Plan{Strategy: FencedBlock, Fields: fields, Body: body, Truncated: shortened}, nil
	case fits && bodyLen <= lim.DescriptionHardLimit:
		return &Plan{Strategy: SplitBlock, Fields: fields, Body: body, Truncated: shortened}, nil
	}
	return attachmentPlan(key, text, fields, lim)
}

func attachmentPlan(key string, text string, fields []Field, lim Limits) (*Plan, error) {
	data := []byte(text)
	if int64(len(data)) > lim.AttachmentMaxBytes {
		return nil, fmt.Errorf("%w: %s > %s", ErrSizeOverflow, humanize.IBytes(uint64(len(data))), humanize.IBytes(uint64(lim.AttachmentMaxBytes)))
	}
	att := &Attachment{
		Filename: AttachmentName(key),
		Data:     data,
	}
	note := Field{
		Label: NoDataLabel,
		Value: fmt.Sprintf("Data too large to display inline (%s), attached as %s", humanize.Bytes(uint64(len(data))), att.Filename),
	}
	if fieldsLen(fields, lim)+fieldsLen([]Field{note}, lim) > lim.TotalLimit {
		fields = nil
	}
	return &Plan{
		Strategy:   FileAttachment,
		Fields:     append(fields, note),
		Attachment: att,
		Truncated:  true,
	}, nil
}

// Fence wraps the text in a fenced JSON code block.
func Fence(text string) string {
	return fenceOpen + text + fenceClose
}

// Unfence returns the contents of the fenced block produced by Fence.  If
// body is not fenced, it is returned unchanged.
func Unfence(body string) string {
	if strings.HasPrefix(body, fenceOpen) && strings.HasSuffix(body, fenceClose) && len(body) >= len(fenceOpen)+len(fenceClose) {
		return body[len(fenceOpen) : len(body)-len(fenceClose)]
	}
	return body
}

// AttachmentName returns the attachment filename for the entry key.
// Characters that are unsafe in file names are replaced with underscores.
func AttachmentName(key string) string {
	var sb strings.Builder
	for _, r := range key {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			sb.WriteRune(r)
		default:
			sb.WriteByte('_')
		}
	}
	if sb.Len() == 0 {
		sb.WriteString("entry")
	}
	return sb.String() + attachmentSuffix
}

func fieldsLen(fields []Field, lim Limits) int {
	var n int
	for _, f := range fields {
		n += lim.Measure(f.Label) + lim.Measure(f.Value)
	}
	return n
}
