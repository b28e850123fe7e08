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

package cache

import (
	"io"

	"github.com/rusq/encio"
)

// container is the interface to operate with the key file container.
type container interface {
	Create(filename string) (io.WriteCloser, error)
	Open(filename string) (io.ReadCloser, error)
}

// encryptedFile is the encrypted file container.
type encryptedFile struct{}

func (encryptedFile) Open(filename string) (io.ReadCloser, error) {
	return encio.Open(filename)
}

func (encryptedFile) Create(filename string) (io.WriteCloser, error) {
	return encio.Create(filename)
}
