// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Package bandersnatch provides the Bandersnatch twisted Edwards curve
//
//	a*x^2 + y^2 = 1 + d*x^2*y^2,  a = -5
//
// defined over the scalar field of BLS12-381, as a group.Group. The curve has
// cofactor 4. Its arithmetic is provided by gnark-crypto.
//
// On an Edwards curve the negation of (x,y) is (-x,y). The only other point
// sharing the x-coordinate of a subgroup point P is (x,-y) = -P + (0,-1),
// which is never in the prime-order subgroup. Hence the x-coordinate
// identifies subgroup points uniquely.
package bandersnatch

import (
	"math/big"

	"github.com/0xsoniclabs/xcommit/group"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/bandersnatch"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
)

// Name is the identifier the group is registered under.
const Name = "bandersnatch"

func init() {
	group.Register(Name, func() group.Group { return New() })
}

// Group implements group.Group for Bandersnatch. Points are kept in
// projective coordinates.
type Group struct {
	a, d     fr.Element
	order    *big.Int
	cofactor *big.Int
	modulus  *big.Int
}

type point struct {
	p bandersnatch.PointProj
}

func (*point) GroupName() string {
	return Name
}

// New creates a Bandersnatch group instance.
func New() *Group {
	params := bandersnatch.GetEdwardsCurve()
	return &Group{
		a:        params.A,
		d:        params.D,
		order:    new(big.Int).Set(&params.Order),
		cofactor: params.Cofactor.BigInt(new(big.Int)),
		modulus:  fr.Modulus(),
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
	return fr.Bytes
}

func (g *Group) Identity() group.Point {
	res := &point{}
	res.p.Y.SetOne()
	res.p.Z.SetOne()
	return res
}

func (g *Group) IsIdentity(p group.Point) bool {
	q := unwrap(p)
	return q.X.IsZero() && q.Y.Equal(&q.Z)
}

func (g *Group) Equal(a, b group.Point) bool {
	p, q := unwrap(a), unwrap(b)
	var l, r fr.Element
	l.Mul(&p.X, &q.Z)
	r.Mul(&q.X, &p.Z)
	if !l.Equal(&r) {
		return false
	}
	l.Mul(&p.Y, &q.Z)
	r.Mul(&q.Y, &p.Z)
	return l.Equal(&r)
}

func (g *Group) Add(a, b group.Point) group.Point {
	res := &point{}
	res.p.Add(unwrap(a), unwrap(b))
	return res
}

func (g *Group) Double(p group.Point) group.Point {
	res := &point{}
	res.p.Double(unwrap(p))
	return res
}

func (g *Group) Neg(p group.Point) group.Point {
	res := &point{p: *unwrap(p)}
	res.p.X.Neg(&res.p.X)
	return res
}

func (g *Group) ToAffine(p group.Point) (group.Affine, error) {
	if g.IsIdentity(p) {
		return group.Affine{}, group.ErrIdentity
	}
	var affine bandersnatch.PointAffine
	affine.FromProj(unwrap(p))
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
	p, err := g.FromAffine(a)
	if err != nil {
		return false
	}
	// The endomorphism-based scalar multiplication of gnark-crypto is only
	// valid inside the subgroup, so the check uses plain double-and-add.
	return g.IsIdentity(group.Mul(g, p, g.order))
}

func (g *Group) LiftX(x []byte) ([]group.Affine, error) {
	value, err := group.ParseCoordinate(x, fr.Bytes, g.modulus)
	if err != nil {
		return nil, err
	}

	// y^2 = (1 - a*x^2) / (1 - d*x^2)
	var one, xx, num, den, y fr.Element
	one.SetOne()
	xx.SetBigInt(value)
	xx.Square(&xx)
	num.Mul(&g.a, &xx)
	num.Sub(&one, &num)
	den.Mul(&g.d, &xx)
	den.Sub(&one, &den)
	if den.IsZero() {
		return nil, group.ErrNotOnCurve
	}
	den.Inverse(&den)
	num.Mul(&num, &den)
	if y.Sqrt(&num) == nil {
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
	return group.Mul(g, p, g.cofactor)
}

func (g *Group) parse(a group.Affine) (bandersnatch.PointAffine, error) {
	var res bandersnatch.PointAffine
	x, err := group.ParseCoordinate(a.X, fr.Bytes, g.modulus)
	if err != nil {
		return res, err
	}
	y, err := group.ParseCoordinate(a.Y, fr.Bytes, g.modulus)
	if err != nil {
		return res, err
	}
	res.X.SetBigInt(x)
	res.Y.SetBigInt(y)
	if !res.IsOnCurve() {
		return res, group.ErrNotOnCurve
	}
	return res, nil
}

func unwrap(p group.Point) *bandersnatch.PointProj {
	return &p.(*point).p
}
