// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package secp256k1

import (
	"math/big"
	"testing"

	"github.com/0xsoniclabs/xcommit/group"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/require"
)

func generator(t *testing.T, g *Group) group.Affine {
	t.Helper()
	params := btcec.S256().Params()
	return group.Affine{
		X: params.Gx.FillBytes(make([]byte, coordinateSize)),
		Y: params.Gy.FillBytes(make([]byte, coordinateSize)),
	}
}

func TestSecp256k1_IsRegistered(t *testing.T) {
	g, err := group.Lookup(Name)
	require.NoError(t, err)
	require.Equal(t, Name, g.Name())
}

func TestSecp256k1_GeneratorIsInSubgroup(t *testing.T) {
	require := require.New(t)
	g := New()
	base := generator(t, g)
	require.True(g.InSubgroup(base))

	p, err := g.FromAffine(base)
	require.NoError(err)
	require.True(g.IsIdentity(group.Mul(g, p, g.Order())))

	affine, err := g.ToAffine(p)
	require.NoError(err)
	require.Equal(base, affine)
}

func TestSecp256k1_ScalarMultiplicationMatchesBtcec(t *testing.T) {
	require := require.New(t)
	g := New()
	p, err := g.FromAffine(generator(t, g))
	require.NoError(err)

	var k btcec.ModNScalar
	k.SetInt(12345)
	var want btcec.JacobianPoint
	btcec.ScalarBaseMultNonConst(&k, &want)
	want.ToAffine()

	got, err := g.ToAffine(group.Mul(g, p, big.NewInt(12345)))
	require.NoError(err)
	wantX := want.X.Bytes()
	require.Equal(wantX[:], got.X)
}

func TestSecp256k1_NegationSharesX(t *testing.T) {
	require := require.New(t)
	g := New()
	p, err := g.FromAffine(generator(t, g))
	require.NoError(err)

	a, err := g.ToAffine(p)
	require.NoError(err)
	b, err := g.ToAffine(g.Neg(p))
	require.NoError(err)
	require.Equal(a.X, b.X)
	require.NotEqual(a.Y, b.Y)
	require.True(g.InSubgroup(b))
}

func TestSecp256k1_ClearCofactorIsIdentityMap(t *testing.T) {
	g := New()
	p, err := g.FromAffine(generator(t, g))
	require.NoError(t, err)
	require.True(t, g.Equal(p, g.ClearCofactor(p)))
}
