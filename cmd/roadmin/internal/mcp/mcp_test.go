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

package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_runMCP_unknownTransport(t *testing.T) {
	old := transport
	t.Cleanup(func() { transport = old })
	transport = "carrier-pigeon"

	err := runMCP(context.Background(), CmdMCP, nil)
	assert.ErrorContains(t, err, "unknown transport")
}

func TestCmdMCP_flags(t *testing.T) {
	assert.Equal(t, "stdio", CmdMCP.Flag.Lookup("transport").DefValue)
	assert.Equal(t, "127.0.0.1:8483", CmdMCP.Flag.Lookup("listen").DefValue)
	assert.Contains(t, CmdMCP.Long, "show_entry")
}
