// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package group defines the elliptic curve capability commitments are built
// on. A Group provides point arithmetic in some internal working
// representation, the conversion to and from affine coordinates, and the
// test for membership in the prime-order subgroup.
//
// Implementations live in sub-packages and register themselves by name. To
// make all of them available, import
//
//	import _ "github.com/0xsoniclabs/xcommit/group/all"
package group

import (
	"errors"
	"math/big"
)

var (
	// ErrIdentity is returned when an affine form of the identity element is
	// requested. On short Weierstrass curves this is the point at infinity,
	// on twisted Edwards curves it is (0,1). Both are rejected uniformly.
	ErrIdentity = errors.New("identity element has no affine representative")

	// ErrNotOnCurve indicates coordinates that do not satisfy the curve equation.
	ErrNotOnCurve = errors.New("point is not on the curve")

	// ErrNonCanonical indicates a coordinate encoding that is of the wrong
	// length or not reduced modulo the base field.
	ErrNonCanonical = errors.New("non-canonical coordinate encoding")

	// ErrUnknownGroup is returned by Lookup for unregistered names.
	ErrUnknownGroup = errors.New("unknown group")
)

// Point is an element of a Group in the group's working representation
// (typically projective). Points are only meaningful to the group that
// created them; passing them to another group panics.
type Point interface {
	// GroupName returns the name of the group owning this point.
	GroupName() string
}

// Affine is the normalized (x, y) form of a point. Both coordinates are
// big-endian encodings of base field elements of exactly
// Group.CoordinateSize() bytes.
type Affine struct {
	X, Y []byte
}

// Group is the curve capability used by the commitment primitive and the
// compression layer. All methods are free of side effects on their
// arguments, so a Group and its points may be shared between goroutines.
type Group interface {
	// Name returns the identifier the group is registered under.
	Name() string

	// Order returns the order of the prime-order subgroup.
	Order() *big.Int

	// Modulus returns the characteristic of the base field.
	Modulus() *big.Int

	// CoordinateSize is the number of bytes of an encoded coordinate.
	CoordinateSize() int

	Identity() Point
	IsIdentity(p Point) bool
	Equal(a, b Point) bool
	Add(a, b Point) Point
	Double(p Point) Point
	Neg(p Point) Point

	// ToAffine returns the unique affine representative of p. It fails with
	// ErrIdentity if p is the identity.
	ToAffine(p Point) (Affine, error)

	// FromAffine parses affine coordinates. It checks the encoding and the
	// curve equation, but not subgroup membership.
	FromAffine(a Affine) (Point, error)

	// InSubgroup reports whether a is a point on the curve that lies in the
	// prime-order subgroup.
	InSubgroup(a Affine) bool

	// LiftX returns all points on the curve with the given x-coordinate,
	// ordered by ascending y. It fails with ErrNotOnCurve if there is none.
	LiftX(x []byte) ([]Affine, error)

	// ClearCofactor maps an arbitrary curve point into the prime-order
	// subgroup.
	ClearCofactor(p Point) Point
}

// Mul computes k*p by double-and-add using only the group operations. It is
// not constant time and is intended for validity checks, not for secrets.
func Mul(g Group, p Point, k *big.Int) Point {
	res := g.Identity()
	for i := k.BitLen() - 1; i >= 0; i-- {
		res = g.Double(res)
		if k.Bit(i) == 1 {
			res = g.Add(res, p)
		}
	}
	return res
}
