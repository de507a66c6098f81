// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package blob defines a minimal byte-addressable store used to persist
// serialized commitment parameters. Implementations live in sub-packages.
package blob

//go:generate mockgen -source blob.go -destination blob_mocks.go -package blob

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound   = errors.New("blob not found")
	ErrInvalidKey = errors.New("invalid blob key")
)

// Store maps keys to byte blobs. A Put either stores the complete blob or
// leaves the previous content untouched. Implementations are safe for
// concurrent use.
type Store interface {
	// Put stores data under the given key, replacing any previous blob.
	Put(key string, data []byte) error
	// Get returns the blob stored under key or ErrNotFound.
	Get(key string) ([]byte, error)
	// Close releases the resources held by the store.
	Close() error
}

const maxKeyLength = 128

// CheckKey verifies that key is usable with all store implementations. Keys
// are non-empty, consist of ASCII letters, digits, '-', '_' and '.', and do
// not start with a dot.
func CheckKey(key string) error {
	if len(key) == 0 || len(key) > maxKeyLength {
		return fmt.Errorf("%w: length of %q not in [1,%d]", ErrInvalidKey, key, maxKeyLength)
	}
	if key[0] == '.' {
		return fmt.Errorf("%w: %q starts with a dot", ErrInvalidKey, key)
	}
	for _, c := range []byte(key) {
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		case c == '-', c == '_', c == '.':
		default:
			return fmt.Errorf("%w: %q contains %q", ErrInvalidKey, key, c)
		}
	}
	return nil
}
