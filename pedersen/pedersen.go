// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package pedersen implements the windowed Pedersen commitment primitive over
// an arbitrary prime-order group.
//
// Public parameters consist of one generator per message window and a
// blinding generator H, all sampled from a seeded stream so that no discrete
// logarithm relation between them is known. A commitment to message m with
// randomness r is
//
//	C = sum_i d_i * G_i + r * H
//
// where d_i is the i-th window digit of m. Scalar multiplications are
// evaluated as sums over precomputed power tables 2^j * G_i.
package pedersen

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"runtime"

	"github.com/0xsoniclabs/xcommit/group"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInputTooLarge       = errors.New("message exceeds the commitment capacity")
	ErrInvalidRandomness   = errors.New("randomness must be in [0, group order)")
	ErrInvalidLayout       = errors.New("invalid window layout")
	ErrMalformedParameters = errors.New("malformed parameters")
)

// Parameters are the public parameters of a Pedersen commitment for a fixed
// group and layout. Parameters are immutable and safe for concurrent use.
type Parameters struct {
	group      group.Group
	layout     Layout
	generators []group.Point
	blinding   group.Point

	// windowPowers[i][j] = 2^j * generators[i]
	windowPowers [][]group.Point
	// blindingPowers[j] = 2^j * blinding
	blindingPowers []group.Point
}

// Setup samples fresh parameters for the given group and layout. All points
// are drawn from rng; with a deterministic stream (see NewSeededReader) the
// parameters are reproducible.
func Setup(g group.Group, layout Layout, rng io.Reader) (*Parameters, error) {
	if err := layout.Validate(g); err != nil {
		return nil, err
	}
	generators := make([]group.Point, layout.NumWindows)
	for i := range generators {
		point, err := group.SamplePoint(g, rng)
		if err != nil {
			return nil, fmt.Errorf("failed to sample generator %d: %w", i, err)
		}
		generators[i] = point
	}
	blinding, err := group.SamplePoint(g, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to sample blinding generator: %w", err)
	}
	return newParameters(g, layout, generators, blinding)
}

// SetupFromSeed is Setup using the stream NewSeededReader(seed).
func SetupFromSeed(g group.Group, layout Layout, seed []byte) (*Parameters, error) {
	return Setup(g, layout, NewSeededReader(seed))
}

func newParameters(g group.Group, layout Layout, generators []group.Point, blinding group.Point) (*Parameters, error) {
	if len(generators) != layout.NumWindows {
		return nil, fmt.Errorf("%w: got %d generators for %d windows", ErrMalformedParameters, len(generators), layout.NumWindows)
	}
	res := &Parameters{
		group:        g,
		layout:       layout,
		generators:   generators,
		blinding:     blinding,
		windowPowers: make([][]group.Point, len(generators)),
	}

	var eg errgroup.Group
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, generator := range generators {
		eg.Go(func() error {
			res.windowPowers[i] = powers(g, generator, layout.WindowSize)
			return nil
		})
	}
	eg.Go(func() error {
		res.blindingPowers = powers(g, blinding, g.Order().BitLen())
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return res, nil
}

func powers(g group.Group, base group.Point, n int) []group.Point {
	res := make([]group.Point, n)
	res[0] = base
	for i := 1; i < n; i++ {
		res[i] = g.Double(res[i-1])
	}
	return res
}

// Group returns the group the parameters are defined over.
func (p *Parameters) Group() group.Group {
	return p.group
}

// Layout returns the window layout of the parameters.
func (p *Parameters) Layout() Layout {
	return p.layout
}

// Generators returns the window generators followed by the blinding
// generator.
func (p *Parameters) Generators() []group.Point {
	res := make([]group.Point, 0, len(p.generators)+1)
	res = append(res, p.generators...)
	return append(res, p.blinding)
}

// Equal reports whether both parameter sets use the same group, layout and
// generators.
func (p *Parameters) Equal(other *Parameters) bool {
	if p == other {
		return true
	}
	if p == nil || other == nil {
		return false
	}
	if p.group.Name() != other.group.Name() || p.layout != other.layout {
		return false
	}
	if !p.group.Equal(p.blinding, other.blinding) {
		return false
	}
	for i := range p.generators {
		if !p.group.Equal(p.generators[i], other.generators[i]) {
			return false
		}
	}
	return true
}

// Commit computes the commitment point for the given message and randomness.
// Messages longer than the layout's capacity and randomness outside of
// [0, order) are rejected. The result may be the identity, e.g. for an empty
// message with zero randomness.
func (p *Parameters) Commit(message []byte, randomness *big.Int) (group.Point, error) {
	if capacity := p.layout.Capacity(); len(message)*8 > capacity {
		return nil, fmt.Errorf("%w: %d bytes given, at most %d bits supported", ErrInputTooLarge, len(message), capacity)
	}
	if randomness == nil {
		return nil, fmt.Errorf("%w: missing", ErrInvalidRandomness)
	}
	if randomness.Sign() < 0 || randomness.Cmp(p.group.Order()) >= 0 {
		return nil, ErrInvalidRandomness
	}

	g := p.group
	res := g.Identity()
	for i := 0; i < len(message)*8; i++ {
		if message[i/8]>>(i%8)&1 == 1 {
			res = g.Add(res, p.windowPowers[i/p.layout.WindowSize][i%p.layout.WindowSize])
		}
	}
	for i := 0; i < randomness.BitLen(); i++ {
		if randomness.Bit(i) == 1 {
			res = g.Add(res, p.blindingPowers[i])
		}
	}
	return res, nil
}
