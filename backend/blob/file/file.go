// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/0xsoniclabs/xcommit/backend/blob"
)

// Store is a filesystem-based blob.Store implementation keeping one file per
// key in a directory. New content is written to a temporary file, synced and
// renamed into place.
type Store struct {
	directory string
}

// NewStore opens a store in the given directory, creating it if necessary.
func NewStore(directory string) (*Store, error) {
	if err := os.MkdirAll(directory, 0700); err != nil {
		return nil, fmt.Errorf("failed to create blob directory; %w", err)
	}
	return &Store{directory: directory}, nil
}

func (s *Store) Put(key string, data []byte) error {
	if err := blob.CheckKey(key); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.directory, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file; %w", err)
	}
	tmpName := tmp.Name()
	if _, err = tmp.Write(data); err == nil {
		err = tmp.Sync()
	}
	err = errors.Join(err, tmp.Close())
	if err == nil {
		err = os.Rename(tmpName, s.path(key))
	}
	if err != nil {
		return errors.Join(fmt.Errorf("failed to write blob %q; %w", key, err), os.Remove(tmpName))
	}
	return nil
}

func (s *Store) Get(key string) ([]byte, error) {
	if err := blob.CheckKey(key); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, blob.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read blob %q; %w", key, err)
	}
	return data, nil
}

func (s *Store) Close() error {
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.directory, key)
}
