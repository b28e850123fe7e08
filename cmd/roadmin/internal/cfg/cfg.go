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

// Package cfg contains common configuration variables.
package cfg

import (
	"flag"
	"log/slog"
	"os"

	"github.com/rusq/osenv/v2"
)

var (
	TraceFile   string
	LogFile     string
	JSONHandler bool
	Verbose     bool

	LocalCacheDir string
	LimitsFile    string

	// RecordKey is the template of the player record entry key.
	RecordKey string
	Retries   int

	Log = slog.Default()

	Version BuildInfo // version information set by main
)

// BuildInfo is the build information.
type BuildInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

type FlagMask uint16

const (
	DefaultFlags   FlagMask = 0
	OmitCacheDir   FlagMask = 1 << iota
	OmitLimitsFlag
	OmitAPIFlags

	OmitAll = OmitCacheDir |
		OmitLimitsFlag |
		OmitAPIFlags
)

// SetBaseFlags sets base flags
func SetBaseFlags(fs *flag.FlagSet, mask FlagMask) {
	fs.StringVar(&TraceFile, "trace", os.Getenv("TRACE_FILE"), "trace `filename`")
	fs.StringVar(&LogFile, "log", os.Getenv("LOG_FILE"), "log `file`, if not specified, messages are printed to STDERR")
	fs.BoolVar(&JSONHandler, "log-json", osenv.Value("JSON_LOG", false), "log in JSON format")
	fs.BoolVar(&Verbose, "v", osenv.Value("DEBUG", false), "verbose messages")

	if mask&OmitCacheDir == 0 {
		fs.StringVar(&LocalCacheDir, "cache-dir", osenv.Value("CACHE_DIR", CacheDir()), "API key cache `directory` location\n")
	}
	if mask&OmitLimitsFlag == 0 {
		fs.StringVar(&LimitsFile, "limits", osenv.Value("LIMITS_FILE", ""), "rendering limits configuration `file` (TOML).\nYou can generate one with 'roadmin limits new'")
	}
	if mask&OmitAPIFlags == 0 {
		fs.StringVar(&RecordKey, "record-key", osenv.Value("RECORD_KEY_TEMPLATE", ""), "player record entry key `template`, i.e. \"Player_%d\"\n(default: the user ID)")
		fs.IntVar(&Retries, "retries", osenv.Value("RETRIES", 3), "number of attempts for each Open Cloud `request`")
	}
}

// SetDebugLevel sets the default log level to debug.
func SetDebugLevel() {
	slog.SetLogLoggerLevel(slog.LevelDebug)
}
