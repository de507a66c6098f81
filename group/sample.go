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
	"errors"
	"io"
)

// SamplePoint draws a point of the prime-order subgroup with unknown discrete
// logarithm relative to any other sampled point. Each attempt consumes
// CoordinateSize()+1 bytes from rng: a candidate x-coordinate, masked to the
// bit length of the modulus, and a byte whose lowest bit selects among the
// points with that x (ordered by y). Candidates that are not canonical, have
// no point on the curve, or whose cofactor-cleared image is the identity are
// skipped. The result is a deterministic function of the consumed bytes.
func SamplePoint(g Group, rng io.Reader) (Point, error) {
	size := g.CoordinateSize()
	mask := byte(0xff >> (8*size - g.Modulus().BitLen()))
	buffer := make([]byte, size+1)
	for {
		if _, err := io.ReadFull(rng, buffer); err != nil {
			return nil, err
		}
		x := buffer[:size]
		x[0] &= mask
		candidates, err := g.LiftX(x)
		if errors.Is(err, ErrNonCanonical) || errors.Is(err, ErrNotOnCurve) {
			continue
		}
		if err != nil {
			return nil, err
		}
		point, err := g.FromAffine(candidates[int(buffer[size]&1)%len(candidates)])
		if err != nil {
			return nil, err
		}
		point = g.ClearCofactor(point)
		if g.IsIdentity(point) {
			continue
		}
		return point, nil
	}
}
