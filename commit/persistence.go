// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package commit

import (
	"errors"
	"fmt"

	"github.com/0xsoniclabs/xcommit/backend/blob"
	"github.com/0xsoniclabs/xcommit/group"
	"github.com/0xsoniclabs/xcommit/pedersen"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Store serializes the public parameters of the scheme and writes them to
// dst under the given key in a single Put.
func (s *Scheme) Store(dst blob.Store, key string) error {
	data, err := s.primitive.MarshalBinary()
	if err != nil {
		return fmt.Errorf("%w: failed to serialize parameters: %w", ErrPersistence, err)
	}
	if err := dst.Put(key, data); err != nil {
		return fmt.Errorf("%w: failed to write parameters %q: %w", ErrPersistence, key, err)
	}
	return nil
}

// Load reads parameters stored by Store for group g. Every generator is
// checked to be a non-identity point of the prime-order subgroup while
// decoding; parameters failing the check are rejected with
// ErrSubgroupViolation before any power table is computed.
func Load(g group.Group, src blob.Store, key string) (*Scheme, error) {
	data, err := src.Get(key)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read parameters %q: %w", ErrPersistence, key, err)
	}
	params, err := pedersen.UnmarshalChecked(g, data, func(i int, generator group.Point) error {
		return checkGenerator(g, i, generator)
	})
	if errors.Is(err, ErrSubgroupViolation) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to decode parameters %q: %w", ErrPersistence, key, err)
	}
	return NewScheme(params), nil
}

func checkGenerator(g group.Group, i int, generator group.Point) error {
	if g.IsIdentity(generator) {
		return fmt.Errorf("%w: generator %d is the identity", ErrSubgroupViolation, i)
	}
	affine, err := g.ToAffine(generator)
	if err != nil {
		return err
	}
	if !g.InSubgroup(affine) {
		return fmt.Errorf("%w: generator %d", ErrSubgroupViolation, i)
	}
	return nil
}

// Fingerprint is the Keccak-256 hash of the serialized parameters. Schemes
// with equal fingerprints use identical parameters.
func (s *Scheme) Fingerprint() (common.Hash, error) {
	data, err := s.primitive.MarshalBinary()
	if err != nil {
		return common.Hash{}, err
	}
	return crypto.Keccak256Hash(data), nil
}
