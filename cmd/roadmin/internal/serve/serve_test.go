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

package serve

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_checkFlags(t *testing.T) {
	old := flags
	t.Cleanup(func() { flags = old })

	flags.signingSecret, flags.botToken = "", ""
	assert.ErrorIs(t, checkFlags(), errNoSecret)

	flags.signingSecret = "s3cr3t"
	assert.ErrorIs(t, checkFlags(), errNoToken)

	flags.botToken = "xoxb-1"
	assert.NoError(t, checkFlags())
}

func Test_runServe_noSecret(t *testing.T) {
	old := flags
	t.Cleanup(func() { flags = old })
	flags.signingSecret = ""

	assert.ErrorIs(t, runServe(context.Background(), CmdServe, nil), errNoSecret)
}
