// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package group

import (
	"bytes"
	"fmt"
	"math/big"
)

// Encode serializes p as the concatenation of its affine coordinates X||Y.
// The identity cannot be encoded.
func Encode(g Group, p Point) ([]byte, error) {
	a, err := g.ToAffine(p)
	if err != nil {
		return nil, err
	}
	res := make([]byte, 0, 2*g.CoordinateSize())
	res = append(res, a.X...)
	return append(res, a.Y...), nil
}

// Decode parses a point produced by Encode. Like FromAffine, it does not
// check subgroup membership.
func Decode(g Group, data []byte) (Point, error) {
	size := g.CoordinateSize()
	if len(data) != 2*size {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrNonCanonical, 2*size, len(data))
	}
	return g.FromAffine(Affine{X: data[:size], Y: data[size:]})
}

// ParseCoordinate checks that b is a canonical big-endian encoding of an
// element of the field of the given modulus and returns its value.
func ParseCoordinate(b []byte, size int, modulus *big.Int) (*big.Int, error) {
	if len(b) != size {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrNonCanonical, size, len(b))
	}
	v := new(big.Int).SetBytes(b)
	if v.Cmp(modulus) >= 0 {
		return nil, fmt.Errorf("%w: coordinate exceeds field modulus", ErrNonCanonical)
	}
	return v, nil
}

// SortByY orders points sharing an x-coordinate by ascending y.
func SortByY(points []Affine) []Affine {
	if len(points) == 2 && bytes.Compare(points[0].Y, points[1].Y) > 0 {
		points[0], points[1] = points[1], points[0]
	}
	return points
}
