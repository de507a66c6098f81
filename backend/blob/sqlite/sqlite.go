// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/0xsoniclabs/xcommit/backend/blob"
	_ "github.com/mattn/go-sqlite3"
)

const (
	createTable = `CREATE TABLE IF NOT EXISTS blobs (key TEXT PRIMARY KEY, data BLOB NOT NULL)`
	upsertBlob  = `INSERT INTO blobs (key, data) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET data = excluded.data`
	selectBlob  = `SELECT data FROM blobs WHERE key = ?`
)

// Store is a blob.Store implementation keeping blobs in the table "blobs" of
// a SQLite database file.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the SQLite database at the given path.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database %s; %w", path, err)
	}
	// SQLite supports a single concurrent writer.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(createTable); err != nil {
		return nil, errors.Join(fmt.Errorf("failed to create blob table; %w", err), db.Close())
	}
	return &Store{db: db}, nil
}

func (s *Store) Put(key string, data []byte) (err error) {
	if err := blob.CheckKey(key); err != nil {
		return err
	}
	if data == nil {
		data = []byte{}
	}
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to start transaction; %w", err)
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, tx.Rollback())
		}
	}()
	if _, err = tx.Exec(upsertBlob, key, data); err != nil {
		return fmt.Errorf("failed to write blob %q; %w", key, err)
	}
	return tx.Commit()
}

func (s *Store) Get(key string) ([]byte, error) {
	if err := blob.CheckKey(key); err != nil {
		return nil, err
	}
	var data []byte
	err := s.db.QueryRow(selectBlob, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, blob.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read blob %q; %w", key, err)
	}
	return data, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
