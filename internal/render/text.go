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

// In this file: plain text rendering of the plan.

import (
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
)

// WriteText writes the plan as plain text to w, which is how the plan is
// shown on the terminal and to the agents.  The title is written on the
// first line, if not empty.
func WriteText(w io.Writer, title string, p *Plan) error {
	var sb strings.Builder
	if title != "" {
		sb.WriteString(title)
		sb.WriteString("\n\n")
	}
	width := 0
	for _, f := range p.Fields {
		if n := len([]rune(f.Label)); n > width {
			width = n
		}
	}
	for _, f := range p.Fields {
		fmt.Fprintf(&sb, "%-*s  %s\n", width+1, f.Label+":", f.Value)
	}
	switch p.Strategy {
	case FencedBlock:
		sb.WriteString("\n")
		sb.WriteString(p.Body)
		sb.WriteString("\n")
	case SplitBlock:
		sb.WriteString("\n---\n")
		sb.WriteString(p.Body)
		sb.WriteString("\n")
	case FileAttachment:
		if p.Attachment != nil {
			fmt.Fprintf(&sb, "\nattachment: %s (%s)\n", p.Attachment.Filename, humanize.Bytes(uint64(len(p.Attachment.Data))))
		}
	}
	_, err := io.WriteString(w, sb.String())
	return err
}
