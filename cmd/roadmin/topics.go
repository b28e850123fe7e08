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

package main

import (
	"github.com/KhanPython/RoAdmin/cmd/roadmin/internal/golang/base"
	"github.com/KhanPython/RoAdmin/internal/cache"
)

var topicEnvironment = &base.Command{
	UsageLine: "environment",
	Short:     "environment variables",
	Long: `
# Environment Variables

The environment variables are also read from the ".env", ".env.txt" and
"secrets.txt" files in the current directory, if present.

API keys:

    ` + cache.EnvPrefix + `<universeId>   the Open Cloud API key of the universe

Common:

    CACHE_DIR              the API key cache directory
    LIMITS_FILE            the rendering limits configuration file
    RECORD_KEY_TEMPLATE    the player record key template, i.e. "Player_%d"
    RETRIES                the number of attempts for each Open Cloud request
    LOG_FILE               the log file
    JSON_LOG               log in JSON format, if "true"
    TRACE_FILE             the runtime trace file
    DEBUG                  verbose messages, if "true"

Slack server:

    SLACK_SIGNING_SECRET   the Slack app signing secret
    SLACK_BOT_TOKEN        the Slack bot token
    STATUS_CHANNEL_ID      the channel for the online and offline notices
    ADDR                   the listen address
`,
}
