// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package secp256k1 provides the secp256k1 curve y^2 = x^3 + 7 as a
// group.Group, backed by btcec. The curve has prime order, so every point on
// it is in the subgroup; the subgroup check reduces to the curve equation.
package secp256k1

import (
	"math/big"

	"github.com/0xsoniclabs/xcommit/group"
	"github.com/btcsuite/btcd/btcec/v2"
)

// Name is the identifier the group is registered under.
const Name = "secp256k1"

const coordinateSize = 32

func init() {
	group.Register(Name, func() group.Group { return New() })
}

// Group implements group.Group for secp256k1 using Jacobian coordinates.
type Group struct {
	order   *big.Int
	modulus *big.Int
}

type point struct {
	p btcec.JacobianPoint
}

func (*point) GroupName() string {
	return Name
}

// New creates a secp256k1 group instance.
func New() *Group {
	params := btcec.S256().Params()
	return &Group{
		order:   new(big.Int).Set(params.N),
		modulus: new(big.Int).Set(params.P),
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
	return coordinateSize
}

func (g *Group) Identity() group.Point {
	return &point{}
}

func (g *Group) IsIdentity(p group.Point) bool {
	q := unwrap(p)
	x, y, z := q.X, q.Y, q.Z
	x.Normalize()
	y.Normalize()
	z.Normalize()
	return (x.IsZero() && y.IsZero()) || z.IsZero()
}

func (g *Group) Equal(a, b group.Point) bool {
	aIdentity, bIdentity := g.IsIdentity(a), g.IsIdentity(b)
	if aIdentity || bIdentity {
		return aIdentity == bIdentity
	}
	p, q := *unwrap(a), *unwrap(b)
	p.ToAffine()
	q.ToAffine()
	return p.X.Equals(&q.X) && p.Y.Equals(&q.Y)
}

func (g *Group) Add(a, b group.Point) group.Point {
	res := &point{}
	btcec.AddNonConst(unwrap(a), unwrap(b), &res.p)
	return res
}

func (g *Group) Double(p group.Point) group.Point {
	res := &point{}
	btcec.DoubleNonConst(unwrap(p), &res.p)
	return res
}

func (g *Group) Neg(p group.Point) group.Point {
	res := &point{p: *unwrap(p)}
	res.p.Y.Normalize().Negate(1).Normalize()
	return res
}

func (g *Group) ToAffine(p group.Point) (group.Affine, error) {
	if g.IsIdentity(p) {
		return group.Affine{}, group.ErrIdentity
	}
	affine := *unwrap(p)
	affine.ToAffine()
	x := affine.X.Bytes()
	y := affine.Y.Bytes()
	return group.Affine{X: x[:], Y: y[:]}, nil
}

func (g *Group) FromAffine(a group.Affine) (group.Point, error) {
	if _, _, err := g.parse(a); err != nil {
		return nil, err
	}
	res := &point{}
	res.p.X.SetByteSlice(a.X)
	res.p.Y.SetByteSlice(a.Y)
	res.p.Z.SetInt(1)
	return res, nil
}

func (g *Group) InSubgroup(a group.Affine) bool {
	_, _, err := g.parse(a)
	return err == nil
}

func (g *Group) LiftX(x []byte) ([]group.Affine, error) {
	value, err := group.ParseCoordinate(x, coordinateSize, g.modulus)
	if err != nil {
		return nil, err
	}
	y := new(big.Int).ModSqrt(g.rhs(value), g.modulus)
	if y == nil {
		return nil, group.ErrNotOnCurve
	}

	xCopy := append([]byte(nil), x...)
	res := []group.Affine{{X: xCopy, Y: y.FillBytes(make([]byte, coordinateSize))}}
	if y.Sign() != 0 {
		neg := new(big.Int).Sub(g.modulus, y)
		res = append(res, group.Affine{X: xCopy, Y: neg.FillBytes(make([]byte, coordinateSize))})
	}
	return group.SortByY(res), nil
}

func (g *Group) ClearCofactor(p group.Point) group.Point {
	return p
}

// rhs computes x^3 + 7 mod p.
func (g *Group) rhs(x *big.Int) *big.Int {
	res := new(big.Int).Mul(x, x)
	res.Mul(res, x)
	res.Add(res, big.NewInt(7))
	return res.Mod(res, g.modulus)
}

func (g *Group) parse(a group.Affine) (x, y *big.Int, err error) {
	if x, err = group.ParseCoordinate(a.X, coordinateSize, g.modulus); err != nil {
		return nil, nil, err
	}
	if y, err = group.ParseCoordinate(a.Y, coordinateSize, g.modulus); err != nil {
		return nil, nil, err
	}
	yy := new(big.Int).Mul(y, y)
	if yy.Mod(yy, g.modulus).Cmp(g.rhs(x)) != 0 {
		return nil, nil, group.ErrNotOnCurve
	}
	return x, y, nil
}

func unwrap(p group.Point) *btcec.JacobianPoint {
	return &p.(*point).p
}
