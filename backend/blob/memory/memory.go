// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package memory

import (
	"bytes"
	"sync"

	"github.com/0xsoniclabs/xcommit/backend/blob"
)

// Store is an in-memory blob.Store implementation. Blobs are copied on the
// way in and out, so callers may freely modify the slices they pass or get.
type Store struct {
	mutex sync.Mutex
	blobs map[string][]byte
}

// NewStore creates an empty in-memory store.
func NewStore() *Store {
	return &Store{blobs: map[string][]byte{}}
}

func (s *Store) Put(key string, data []byte) error {
	if err := blob.CheckKey(key); err != nil {
		return err
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.blobs[key] = bytes.Clone(data)
	return nil
}

func (s *Store) Get(key string) ([]byte, error) {
	if err := blob.CheckKey(key); err != nil {
		return nil, err
	}
	s.mutex.Lock()
	defer s.mutex.Unlock()
	data, found := s.blobs[key]
	if !found {
		return nil, blob.ErrNotFound
	}
	return bytes.Clone(data), nil
}

func (s *Store) Close() error {
	return nil
}
