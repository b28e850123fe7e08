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

// Package cache implements the per-universe API key cache.  The keys are
// stored one per file in the cache directory, encrypted with the machine
// derived key (see package github.com/rusq/encio).
package cache

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Manager is the API key manager.
type Manager struct {
	dir string
	ct  container
}

const (
	keyPrefix = "universe-"
	keyExt    = ".bin"
)

var (
	ErrNoKeys     = errors.New("no saved api keys")
	ErrInvalidKey = errors.New("api key must be a non-empty string without whitespace")
	ErrInvalidID  = errors.New("universe id must be a positive integer")
)

type Option func(m *Manager)

// withContainer sets the container used to read and write the key files.
func withContainer(ct container) Option {
	return func(m *Manager) {
		m.ct = ct
	}
}

// NewManager creates a new key manager over the directory dir.  The cache
// directory is created with rwx------ permissions, if it does not exist.
func NewManager(dir string, opts ...Option) (*Manager, error) {
	m := &Manager{dir: dir, ct: encryptedFile{}}
	for _, opt := range opts {
		opt(m)
	}
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, err
	}
	return m, nil
}

// ErrUniverse is the error returned by the Manager operations on a single
// universe key.
type ErrUniverse struct {
	UniverseID int64
	Message    string
	Err        error
}

func (eu *ErrUniverse) Error() string {
	if eu.Err == nil {
		return fmt.Sprintf("universe %d: %s", eu.UniverseID, eu.Message)
	}
	return fmt.Sprintf("universe %d: %s (error: %s)", eu.UniverseID, eu.Message, eu.Err)
}

func (eu *ErrUniverse) Unwrap() error {
	return eu.Err
}

func newErrNoKey(id int64) *ErrUniverse {
	return &ErrUniverse{UniverseID: id, Message: "no api key", Err: fs.ErrNotExist}
}

// Save encrypts and saves the API key for the universe, replacing the
// existing one.
func (m *Manager) Save(universeID int64, apiKey string) error {
	if universeID <= 0 {
		return ErrInvalidID
	}
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" || strings.ContainsAny(apiKey, " \t\r\n") {
		return ErrInvalidKey
	}
	f, err := m.ct.Create(m.filepath(universeID))
	if err != nil {
		return &ErrUniverse{UniverseID: universeID, Message: "failed to create key file", Err: err}
	}
	if _, err := fmt.Fprintln(f, apiKey); err != nil {
		f.Close()
		return &ErrUniverse{UniverseID: universeID, Message: "failed to write key file", Err: err}
	}
	if err := f.Close(); err != nil {
		return &ErrUniverse{UniverseID: universeID, Message: "failed to write key file", Err: err}
	}
	return nil
}

// Load returns the API key for the universe.
func (m *Manager) Load(universeID int64) (string, error) {
	f, err := m.ct.Open(m.filepath(universeID))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", newErrNoKey(universeID)
		}
		return "", &ErrUniverse{UniverseID: universeID, Message: "failed to open key file", Err: err}
	}
	defer f.Close()
	key, err := readKey(f)
	if err != nil {
		return "", &ErrUniverse{UniverseID: universeID, Message: "failed to read key file", Err: err}
	}
	return key, nil
}

func readKey(r io.Reader) (string, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	key := strings.TrimSpace(sc.Text())
	if key == "" {
		return "", ErrInvalidKey
	}
	return key, nil
}

// Delete deletes the key file of the universe.
func (m *Manager) Delete(universeID int64) error {
	if !m.Exists(universeID) {
		return newErrNoKey(universeID)
	}
	if err := os.Remove(m.filepath(universeID)); err != nil {
		return &ErrUniverse{UniverseID: universeID, Message: "failed to delete", Err: err}
	}
	return nil
}

// List returns the sorted list of universe ids that have a saved key.
func (m *Manager) List() ([]int64, error) {
	files, err := m.listFiles()
	if err != nil {
		return nil, err
	}
	var ids = make([]int64, 0, len(files))
	for i := range files {
		id, err := m.universeID(files[i])
		if err != nil {
			// not ours
			continue
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, ErrNoKeys
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}

// listFiles returns the list of key files with full path.
func (m *Manager) listFiles() ([]string, error) {
	files, err := filepath.Glob(filepath.Join(m.dir, keyPrefix+"*"+keyExt))
	if err != nil {
		return nil, fmt.Errorf("error listing existing keys: %w", err)
	}
	if len(files) == 0 {
		return nil, ErrNoKeys
	}
	return files, nil
}

// Exists returns true if the API key for the universe is saved.
func (m *Manager) Exists(universeID int64) bool {
	fi, err := os.Stat(m.filepath(universeID))
	return err == nil && fi.Mode().IsRegular()
}

// FileInfo returns the key file information for the universe.
func (m *Manager) FileInfo(universeID int64) (fs.FileInfo, error) {
	fi, err := os.Stat(m.filepath(universeID))
	if err != nil {
		return nil, &ErrUniverse{UniverseID: universeID, Message: "error accessing key file", Err: err}
	}
	return fi, nil
}

// Keyring loads all saved keys into the in-memory keyring.  Keys that fail
// to decrypt are skipped and reported in the returned error, the keyring
// still contains all the keys that were loaded successfully.
func (m *Manager) Keyring() (*Keyring, error) {
	ids, err := m.List()
	if err != nil {
		if errors.Is(err, ErrNoKeys) {
			return NewKeyring(nil), nil
		}
		return nil, err
	}
	keys := make(map[int64]string, len(ids))
	var errs []error
	for _, id := range ids {
		key, err := m.Load(id)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		keys[id] = key
	}
	return NewKeyring(keys), errors.Join(errs...)
}

// filename returns the filename for the universe key.
func filename(universeID int64) string {
	return keyPrefix + strconv.FormatInt(universeID, 10) + keyExt
}

// filepath returns the full path to the key file of the universe.
func (m *Manager) filepath(universeID int64) string {
	return filepath.Join(m.dir, filename(universeID))
}

func (m *Manager) universeID(filename string) (int64, error) {
	if filedir := filepath.Dir(filename); !strings.EqualFold(filedir, filepath.Clean(m.dir)) {
		return 0, fmt.Errorf("incorrect directory: %s", filedir)
	}
	name := filepath.Base(filename)
	if !strings.HasPrefix(name, keyPrefix) || filepath.Ext(name) != keyExt {
		return 0, fmt.Errorf("invalid key file name: %s", name)
	}
	id, err := strconv.ParseInt(strings.TrimSuffix(strings.TrimPrefix(name, keyPrefix), keyExt), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid key file name: %s", name)
	}
	return id, nil
}
