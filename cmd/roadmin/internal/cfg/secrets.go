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

package cfg

import "github.com/joho/godotenv"

// SecretFiles defines the names of the supported secret files that we load
// our secrets from.  Inexperienced windows users might have bad experience
// trying to create .env file with the notepad as it will battle for having
// the "txt" extension.  Let it have it.
var SecretFiles = []string{".env", ".env.txt", "secrets.txt"}

// The secrets are loaded before any command package registers its flags, as
// the flag defaults are read from the environment.
func init() {
	LoadSecrets(SecretFiles)
}

// LoadSecrets loads the secrets from the files into the environment.  The
// variables that are already set are not overwritten, missing files are
// ignored.
func LoadSecrets(files []string) {
	for _, f := range files {
		_ = godotenv.Load(f)
	}
}
