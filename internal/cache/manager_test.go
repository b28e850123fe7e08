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
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// plainFile is the unencrypted container for tests.
type plainFile struct{}

func (plainFile) Open(filename string) (io.ReadCloser, error) {
	return os.Open(filename)
}

func (plainFile) Create(filename string) (io.WriteCloser, error) {
	return os.OpenFile(filename, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0600)
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(filepath.Join(t.TempDir(), "cache"), withContainer(plainFile{}))
	require.NoError(t, err)
	return m
}

func TestNewManager(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")
	_, err := NewManager(dir)
	require.NoError(t, err)
	fi, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, fi.IsDir())
}

func TestManager_SaveLoad(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.Save(4821, "  key-one\n"))
	assert.True(t, m.Exists(4821))
	assert.FileExists(t, filepath.Join(m.dir, "universe-4821.bin"))

	got, err := m.Load(4821)
	require.NoError(t, err)
	assert.Equal(t, "key-one", got)

	// replace
	require.NoError(t, m.Save(4821, "key-two"))
	got, err = m.Load(4821)
	require.NoError(t, err)
	assert.Equal(t, "key-two", got)
}

func TestManager_SaveInvalid(t *testing.T) {
	m := newTestManager(t)
	assert.ErrorIs(t, m.Save(0, "key"), ErrInvalidID)
	assert.ErrorIs(t, m.Save(-5, "key"), ErrInvalidID)
	assert.ErrorIs(t, m.Save(1, ""), ErrInvalidKey)
	assert.ErrorIs(t, m.Save(1, "two words"), ErrInvalidKey)
	assert.False(t, m.Exists(1))
}

func TestManager_LoadMissing(t *testing.T) {
	m := newTestManager(t)
	_, err := m.Load(77)
	var eu *ErrUniverse
	require.ErrorAs(t, err, &eu)
	assert.Equal(t, int64(77), eu.UniverseID)
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestManager_List(t *testing.T) {
	m := newTestManager(t)
	_, err := m.List()
	assert.ErrorIs(t, err, ErrNoKeys)

	for _, id := range []int64{300, 2, 10} {
		require.NoError(t, m.Save(id, "k"))
	}
	// files that are not key files are ignored.
	require.NoError(t, os.WriteFile(filepath.Join(m.dir, "universe-abc.bin"), []byte("x"), 0600))
	require.NoError(t, os.WriteFile(filepath.Join(m.dir, "notes.txt"), []byte("x"), 0600))

	ids, err := m.List()
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 10, 300}, ids)
}

func TestManager_Delete(t *testing.T) {
	m := newTestManager(t)
	require.NoError(t, m.Save(5, "k"))
	require.NoError(t, m.Delete(5))
	assert.False(t, m.Exists(5))

	var eu *ErrUniverse
	assert.ErrorAs(t, m.Delete(5), &eu)
}

func TestManager_Keyring(t *testing.T) {
	m := newTestManager(t)
	kr, err := m.Keyring()
	require.NoError(t, err)
	assert.Equal(t, 0, kr.Len())

	require.NoError(t, m.Save(1, "one"))
	require.NoError(t, m.Save(2, "two"))
	// corrupt file is reported, but does not prevent loading the rest.
	require.NoError(t, os.WriteFile(m.filepath(3), []byte("\n"), 0600))

	kr, err = m.Keyring()
	assert.Error(t, err)
	require.NotNil(t, kr)
	assert.Equal(t, []int64{1, 2}, kr.Universes())
	assert.True(t, kr.HasCredential(1))
	assert.False(t, kr.HasCredential(3))
	k, ok := kr.APIKey(2)
	assert.True(t, ok)
	assert.Equal(t, "two", k)
}

func TestManager_FileInfo(t *testing.T) {
	m := newTestManager(t)
	_, err := m.FileInfo(9)
	assert.Error(t, err)
	require.NoError(t, m.Save(9, "k"))
	fi, err := m.FileInfo(9)
	require.NoError(t, err)
	assert.Equal(t, "universe-9.bin", fi.Name())
}

func TestManager_universeID(t *testing.T) {
	m := &Manager{dir: "cache"}
	tests := []struct {
		name    string
		file    string
		want    int64
		wantErr bool
	}{
		{"ok", filepath.Join("cache", "universe-123.bin"), 123, false},
		{"other dir", filepath.Join("other", "universe-123.bin"), 0, true},
		{"no prefix", filepath.Join("cache", "123.bin"), 0, true},
		{"not a number", filepath.Join("cache", "universe-x.bin"), 0, true},
		{"zero", filepath.Join("cache", "universe-0.bin"), 0, true},
		{"ext", filepath.Join("cache", "universe-1.txt"), 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.universeID(tt.file)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
