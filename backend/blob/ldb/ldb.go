// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package ldb

import (
	"errors"
	"fmt"

	"github.com/0xsoniclabs/xcommit/backend/blob"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

// blobTable is the key prefix separating blobs from other content of a
// shared database.
const blobTable = 'B'

// Store is a LevelDB based blob.Store implementation.
type Store struct {
	db     *leveldb.DB
	closer func() error
}

// NewStore opens or creates a LevelDB database in the given directory and
// stores blobs in it. Closing the store closes the database.
func NewStore(path string) (*Store, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open LevelDB at %s; %w", path, err)
	}
	return &Store{db: db, closer: db.Close}, nil
}

// NewStoreOn stores blobs in an already opened database. The database is
// owned by the caller and remains open when the store is closed.
func NewStoreOn(db *leveldb.DB) *Store {
	return &Store{db: db, closer: func() error { return nil }}
}

func (s *Store) Put(key string, data []byte) error {
	if err := blob.CheckKey(key); err != nil {
		return err
	}
	if err := s.db.Put(dbKey(key), data, &opt.WriteOptions{Sync: true}); err != nil {
		return fmt.Errorf("failed to write blob %q; %w", key, err)
	}
	return nil
}

func (s *Store) Get(key string) ([]byte, error) {
	if err := blob.CheckKey(key); err != nil {
		return nil, err
	}
	data, err := s.db.Get(dbKey(key), nil)
	if errors.Is(err, leveldb.ErrNotFound) {
		return nil, blob.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read blob %q; %w", key, err)
	}
	return data, nil
}

func (s *Store) Close() error {
	return s.closer()
}

func dbKey(key string) []byte {
	res := make([]byte, 0, len(key)+1)
	res = append(res, blobTable)
	return append(res, key...)
}
