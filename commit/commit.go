// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package commit provides compressed Pedersen commitments. A commitment is
// reduced to the affine x-coordinate of the committed point, halving its
// size compared to a full point encoding.
//
// On twisted Edwards groups (bandersnatch) the x-coordinate determines a
// point of the prime-order subgroup uniquely, so compression preserves the
// binding property of the underlying commitment. On short Weierstrass groups
// (bls12-381-g1, secp256k1) a point P and its negation -P share the same
// x-coordinate. Commitments are therefore binding only up to the sign of the
// committed point: an opening proves knowledge of a message and randomness
// committing to P or to -P. The y-coordinate is not canonicalized; callers
// that need full binding should use an Edwards group.
//
// Messages are zero-padded to the capacity of the layout, so a message and
// the same message extended by trailing zero bytes commit identically.
// Callers committing to variable-length data should encode its length.
package commit

//go:generate mockgen -source commit.go -destination commit_mocks.go -package commit

import (
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/0xsoniclabs/xcommit/group"
	"github.com/0xsoniclabs/xcommit/pedersen"
)

var (
	// ErrInputTooLarge is reported for messages exceeding the capacity of
	// the layout.
	ErrInputTooLarge = pedersen.ErrInputTooLarge
	// ErrInvalidRandomness is reported for randomness outside [0, order).
	ErrInvalidRandomness = pedersen.ErrInvalidRandomness
	// ErrDegenerateCommitment is reported when the committed point is the
	// identity, which has no affine x-coordinate.
	ErrDegenerateCommitment = errors.New("commitment is the identity point")
	// ErrSubgroupViolation is reported for points outside of the
	// prime-order subgroup, including identity generators.
	ErrSubgroupViolation = errors.New("point is not in the prime-order subgroup")
	// ErrInvalidCommitment is reported for commitments that are malformed or
	// are not the x-coordinate of any subgroup point.
	ErrInvalidCommitment = errors.New("invalid commitment")
	// ErrPersistence is reported when parameters cannot be stored or loaded.
	ErrPersistence = errors.New("failed to persist parameters")
)

// Primitive is a Pedersen commitment primitive producing full group points.
// It is implemented by *pedersen.Parameters.
type Primitive interface {
	// Group is the group the primitive commits into.
	Group() group.Group
	// Layout is the window layout defining the message capacity.
	Layout() pedersen.Layout
	// Commit computes the commitment point of a message and randomness.
	Commit(message []byte, randomness *big.Int) (group.Point, error)
	// Generators lists all public base points of the primitive.
	Generators() []group.Point
	// MarshalBinary serializes the public parameters.
	MarshalBinary() ([]byte, error)
}

var _ Primitive = (*pedersen.Parameters)(nil)

// Scheme produces compressed commitments on top of a primitive. It holds no
// mutable state and may be shared between goroutines.
type Scheme struct {
	primitive Primitive
}

// NewScheme wraps the given primitive.
func NewScheme(primitive Primitive) *Scheme {
	return &Scheme{primitive: primitive}
}

// Setup creates a scheme with fresh Pedersen parameters drawn from rng.
func Setup(g group.Group, layout pedersen.Layout, rng io.Reader) (*Scheme, error) {
	params, err := pedersen.Setup(g, layout, rng)
	if err != nil {
		return nil, err
	}
	return NewScheme(params), nil
}

// Parameters returns the primitive the scheme commits with.
func (s *Scheme) Parameters() Primitive {
	return s.primitive
}

// Group returns the group commitments are computed in.
func (s *Scheme) Group() group.Group {
	return s.primitive.Group()
}

// Layout returns the window layout of the underlying parameters.
func (s *Scheme) Layout() pedersen.Layout {
	return s.primitive.Layout()
}

// Commit computes the compressed commitment of message under the given
// randomness. Errors of the primitive are returned unchanged. A result at
// the identity is reported as ErrDegenerateCommitment.
func (s *Scheme) Commit(message []byte, randomness *big.Int) (Commitment, error) {
	point, err := s.primitive.Commit(message, randomness)
	if err != nil {
		return Commitment{}, err
	}
	return Compress(s.primitive.Group(), point)
}

// Verify recomputes the commitment of message and randomness and reports
// whether it matches c.
func (s *Scheme) Verify(message []byte, randomness *big.Int, c Commitment) (bool, error) {
	got, err := s.Commit(message, randomness)
	if err != nil {
		return false, err
	}
	return got == c, nil
}

// Compress reduces a point of g to its x-coordinate. The identity has no
// affine form and yields ErrDegenerateCommitment; points outside the
// prime-order subgroup yield ErrSubgroupViolation.
func Compress(g group.Group, p group.Point) (Commitment, error) {
	if g.IsIdentity(p) {
		return Commitment{}, ErrDegenerateCommitment
	}
	affine, err := g.ToAffine(p)
	if err != nil {
		return Commitment{}, err
	}
	if !g.InSubgroup(affine) {
		return Commitment{}, ErrSubgroupViolation
	}
	return NewCommitment(affine.X)
}

// Candidates lists the points of the prime-order subgroup of g whose
// x-coordinate is c. On Edwards groups there is at most one, on Weierstrass
// groups there are two (P and -P).
func Candidates(g group.Group, c Commitment) ([]group.Point, error) {
	if c.Width() != g.CoordinateSize() {
		return nil, fmt.Errorf("%w: width %d does not match %s", ErrInvalidCommitment, c.Width(), g.Name())
	}
	lifted, err := g.LiftX(c.Bytes())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCommitment, err)
	}
	var res []group.Point
	for _, affine := range lifted {
		if !g.InSubgroup(affine) {
			continue
		}
		point, err := g.FromAffine(affine)
		if err != nil {
			return nil, err
		}
		if g.IsIdentity(point) {
			continue
		}
		res = append(res, point)
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("%w: no subgroup point with x = %v", ErrInvalidCommitment, c)
	}
	return res, nil
}
