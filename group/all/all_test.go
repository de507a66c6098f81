// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package all_test

import (
	"bytes"
	"fmt"
	"math/big"
	"testing"

	"github.com/0xsoniclabs/xcommit/group"
	_ "github.com/0xsoniclabs/xcommit/group/all"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/sha3"
)

func newStream(label string) *bytes.Reader {
	h := sha3.NewShake256()
	h.Write([]byte(label))
	buffer := make([]byte, 1<<14)
	_, _ = h.Read(buffer)
	return bytes.NewReader(buffer)
}

func allGroups(t *testing.T) map[string]group.Group {
	res := map[string]group.Group{}
	for _, name := range group.Names() {
		g, err := group.Lookup(name)
		require.NoError(t, err)
		res[name] = g
	}
	return res
}

func samplePoint(t *testing.T, g group.Group, label string) group.Point {
	t.Helper()
	p, err := group.SamplePoint(g, newStream(label))
	require.NoError(t, err)
	return p
}

func TestRegistry_AllGroupsAreRegistered(t *testing.T) {
	require.Equal(t, []string{"bandersnatch", "bls12-381-g1", "secp256k1"}, group.Names())
}

func TestRegistry_LookupIsCaseInsensitive(t *testing.T) {
	g, err := group.Lookup("SECP256K1")
	require.NoError(t, err)
	require.Equal(t, "secp256k1", g.Name())
}

func TestRegistry_UnknownGroupIsRejected(t *testing.T) {
	_, err := group.Lookup("curve25519")
	require.ErrorIs(t, err, group.ErrUnknownGroup)
}

func TestGroup_SampledPointsAreInSubgroup(t *testing.T) {
	for name, g := range allGroups(t) {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			for i := 0; i < 5; i++ {
				p := samplePoint(t, g, fmt.Sprintf("sample-%d", i))
				require.False(g.IsIdentity(p))
				affine, err := g.ToAffine(p)
				require.NoError(err)
				require.True(g.InSubgroup(affine))
				require.True(g.IsIdentity(group.Mul(g, p, g.Order())))
			}
		})
	}
}

func TestGroup_SamplingIsDeterministic(t *testing.T) {
	for name, g := range allGroups(t) {
		t.Run(name, func(t *testing.T) {
			a := samplePoint(t, g, "same")
			b := samplePoint(t, g, "same")
			c := samplePoint(t, g, "other")
			require.True(t, g.Equal(a, b))
			require.False(t, g.Equal(a, c))
		})
	}
}

func TestGroup_SamplingFailsOnExhaustedSource(t *testing.T) {
	for name, g := range allGroups(t) {
		t.Run(name, func(t *testing.T) {
			_, err := group.SamplePoint(g, bytes.NewReader(nil))
			require.Error(t, err)
		})
	}
}

func TestGroup_ArithmeticIsConsistent(t *testing.T) {
	for name, g := range allGroups(t) {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			p := samplePoint(t, g, "p")
			q := samplePoint(t, g, "q")

			require.True(g.IsIdentity(g.Identity()))
			require.True(g.Equal(p, g.Add(p, g.Identity())))
			require.True(g.Equal(p, g.Add(g.Identity(), p)))
			require.True(g.Equal(g.Double(p), g.Add(p, p)))
			require.True(g.Equal(g.Add(p, q), g.Add(q, p)))
			require.True(g.IsIdentity(g.Add(p, g.Neg(p))))
			require.True(g.Equal(group.Mul(g, p, big.NewInt(3)), g.Add(p, g.Double(p))))
			require.True(g.IsIdentity(group.Mul(g, p, big.NewInt(0))))
		})
	}
}

func TestGroup_AffineConversionRoundTrips(t *testing.T) {
	for name, g := range allGroups(t) {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			// A sum produces a non-normalized working representation.
			p := g.Add(samplePoint(t, g, "a"), samplePoint(t, g, "b"))

			affine, err := g.ToAffine(p)
			require.NoError(err)
			require.Len(affine.X, g.CoordinateSize())
			require.Len(affine.Y, g.CoordinateSize())

			restored, err := g.FromAffine(affine)
			require.NoError(err)
			require.True(g.Equal(p, restored))

			encoded, err := group.Encode(g, p)
			require.NoError(err)
			decoded, err := group.Decode(g, encoded)
			require.NoError(err)
			require.True(g.Equal(p, decoded))
		})
	}
}

func TestGroup_IdentityHasNoAffineForm(t *testing.T) {
	for name, g := range allGroups(t) {
		t.Run(name, func(t *testing.T) {
			_, err := g.ToAffine(g.Identity())
			require.ErrorIs(t, err, group.ErrIdentity)

			p := samplePoint(t, g, "p")
			_, err = g.ToAffine(g.Add(p, g.Neg(p)))
			require.ErrorIs(t, err, group.ErrIdentity)

			_, err = group.Encode(g, g.Identity())
			require.ErrorIs(t, err, group.ErrIdentity)
		})
	}
}

func TestGroup_FromAffineRejectsInvalidCoordinates(t *testing.T) {
	for name, g := range allGroups(t) {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			affine, err := g.ToAffine(samplePoint(t, g, "p"))
			require.NoError(err)
			size := g.CoordinateSize()

			_, err = g.FromAffine(group.Affine{X: affine.X[1:], Y: affine.Y})
			require.ErrorIs(err, group.ErrNonCanonical)

			modulus := g.Modulus().FillBytes(make([]byte, size))
			_, err = g.FromAffine(group.Affine{X: modulus, Y: affine.Y})
			require.ErrorIs(err, group.ErrNonCanonical)

			y := append([]byte(nil), affine.Y...)
			y[size-1] ^= 1
			_, err = g.FromAffine(group.Affine{X: affine.X, Y: y})
			require.ErrorIs(err, group.ErrNotOnCurve)
			require.False(g.InSubgroup(group.Affine{X: affine.X, Y: y}))

			_, err = group.Decode(g, make([]byte, size))
			require.ErrorIs(err, group.ErrNonCanonical)
		})
	}
}

func TestGroup_LiftXRecoversPoint(t *testing.T) {
	for name, g := range allGroups(t) {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			affine, err := g.ToAffine(samplePoint(t, g, "p"))
			require.NoError(err)

			candidates, err := g.LiftX(affine.X)
			require.NoError(err)
			require.Len(candidates, 2)
			require.Negative(bytes.Compare(candidates[0].Y, candidates[1].Y))
			require.True(
				bytes.Equal(candidates[0].Y, affine.Y) || bytes.Equal(candidates[1].Y, affine.Y),
			)
			for _, candidate := range candidates {
				require.Equal(affine.X, candidate.X)
				_, err := g.FromAffine(candidate)
				require.NoError(err)
			}
		})
	}
}

func TestGroup_LiftXRejectsNonCanonicalInput(t *testing.T) {
	for name, g := range allGroups(t) {
		t.Run(name, func(t *testing.T) {
			modulus := g.Modulus().FillBytes(make([]byte, g.CoordinateSize()))
			_, err := g.LiftX(modulus)
			require.ErrorIs(t, err, group.ErrNonCanonical)
			_, err = g.LiftX([]byte{1})
			require.ErrorIs(t, err, group.ErrNonCanonical)
		})
	}
}

func TestGroup_ClearCofactorMapsIntoSubgroup(t *testing.T) {
	for name, g := range allGroups(t) {
		t.Run(name, func(t *testing.T) {
			require := require.New(t)
			for i := byte(1); i < 20; i++ {
				x := make([]byte, g.CoordinateSize())
				x[len(x)-1] = i
				candidates, err := g.LiftX(x)
				if err != nil {
					continue
				}
				p, err := g.FromAffine(candidates[0])
				require.NoError(err)
				cleared := g.ClearCofactor(p)
				if g.IsIdentity(cleared) {
					continue
				}
				affine, err := g.ToAffine(cleared)
				require.NoError(err)
				require.True(g.InSubgroup(affine))
			}
		})
	}
}
