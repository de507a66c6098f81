// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package bls12381 provides the G1 group of BLS12-381 as a group.Group. The
// curve y^2 = x^3 + 4 has a large cofactor, so most points on it are outside
// the prime-order subgroup G1.
package bls12381

import (
	"math/big"

	"github.com/0xsoniclabs/xcommit/group"
	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Name is the identifier the group is registered under.
const Name = "bls12-381-g1"

// effectiveCofactor is h_eff of RFC 9380 for G1; multiplying by it maps any
// curve point into G1.
var effectiveCofactor = new(big.Int).SetUint64(0xd201000000010001)

func init() {
	group.Register(Name, func() group.Group { return New() })
}

// Group implements group.Group for BLS12-381 G1 using Jacobian coordinates.
type Group struct {
	order   *big.Int
	modulus *big.Int
}

type point struct {
	p bls12381.G1Jac
}

func (*point) GroupName() string {
	return Name
}

// New creates a BLS12-381 G1 group instance.
func New() *Group {
	return &Group{
		order:   fr.Modulus(),
		modulus: fp.Modulus(),
	}
}

func (g *Group) Name() string {
	return Name
}

func (g *Group) Order() *big.Int {
	return new(big.Int).Set(g.order)
}

func (g *Group) Modulus() *big.Int {
	return new(big.Int).Set(g.modulus)
}

func (g *Group) CoordinateSize() int {
	return fp.Bytes
}

func (g *Group) Identity() group.Point {
	res := &point{}
	res.p.X.SetOne()
	res.p.Y.SetOne()
	return res
}

func (g *Group) IsIdentity(p group.Point) bool {
	return unwrap(p).Z.IsZero()
}

func (g *Group) Equal(a, b group.Point) bool {
	return unwrap(a).Equal(unwrap(b))
}

func (g *Group) Add(a, b group.Point) group.Point {
	res := &point{}
	res.p.Set(unwrap(a))
	res.p.AddAssign(unwrap(b))
	return res
}

func (g *Group) Double(p group.Point) group.Point {
	res := &point{}
	res.p.Set(unwrap(p))
	res.p.DoubleAssign()
	return res
}

func (g *Group) Neg(p group.Point) group.Point {
	res := &point{}
	res.p.Neg(unwrap(p))
	return res
}

func (g *Group) ToAffine(p group.Point) (group.Affine, error) {
	if g.IsIdentity(p) {
		return group.Affine{}, group.ErrIdentity
	}
	var affine bls12381.G1Affine
	affine.FromJacobian(unwrap(p))
	x := affine.X.Bytes()
	y := affine.Y.Bytes()
	return group.Affine{X: x[:], Y: y[:]}, nil
}

func (g *Group) FromAffine(a group.Affine) (group.Point, error) {
	affine, err := g.parse(a)
	if err != nil {
		return nil, err
	}
	res := &point{}
	res.p.FromAffine(&affine)
	return res, nil
}

func (g *Group) InSubgroup(a group.Affine) bool {
	affine, err := g.parse(a)
	if err != nil {
		return false
	}
	return affine.IsInSubGroup()
}

func (g *Group) LiftX(x []byte) ([]group.Affine, error) {
	value, err := group.ParseCoordinate(x, fp.Bytes, g.modulus)
	if err != nil {
		return nil, err
	}

	// y^2 = x^3 + 4
	var xe, rhs, four, y fp.Element
	xe.SetBigInt(value)
	four.SetUint64(4)
	rhs.Square(&xe)
	rhs.Mul(&rhs, &xe)
	rhs.Add(&rhs, &four)
	if y.Sqrt(&rhs) == nil {
		return nil, group.ErrNotOnCurve
	}

	xCopy := append([]byte(nil), x...)
	yBytes := y.Bytes()
	res := []group.Affine{{X: xCopy, Y: yBytes[:]}}
	if !y.IsZero() {
		y.Neg(&y)
		negBytes := y.Bytes()
		res = append(res, group.Affine{X: xCopy, Y: negBytes[:]})
	}
	return group.SortByY(res), nil
}

func (g *Group) ClearCofactor(p group.Point) group.Point {
	return group.Mul(g, p, effectiveCofactor)
}

func (g *Group) parse(a group.Affine) (bls12381.G1Affine, error) {
	var res bls12381.G1Affine
	x, err := group.ParseCoordinate(a.X, fp.Bytes, g.modulus)
	if err != nil {
		return res, err
	}
	y, err := group.ParseCoordinate(a.Y, fp.Bytes, g.modulus)
	if err != nil {
		return res, err
	}
	// gnark-crypto encodes infinity as (0,0) and considers it on the curve.
	if x.Sign() == 0 && y.Sign() == 0 {
		return res, group.ErrNotOnCurve
	}
	res.X.SetBigInt(x)
	res.Y.SetBigInt(y)
	if !res.IsOnCurve() {
		return res, group.ErrNotOnCurve
	}
	return res, nil
}

func unwrap(p group.Point) *bls12381.G1Jac {
	return &p.(*point).p
}
