// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package curve

import (
	"errors"
	"math/big"

	bls12381 "github.com/consensys/gnark-crypto/ecc/bls12-381"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr/fft"
)

type bls12381Curve struct{}

func (bls12381Curve) Name() string { return "bls12-381" }
func (bls12381Curve) N8r() int     { return fr.Bytes }
func (bls12381Curve) N8() int      { return fp.Bytes }

func (bls12381Curve) FrZero() Fr { return bls12381Fr{} }

func (bls12381Curve) FrOne() Fr {
	var e fr.Element
	e.SetOne()
	return bls12381Fr{e}
}

func (bls12381Curve) FrFromBigInt(x *big.Int) Fr {
	reduced := new(big.Int).Mod(x, fr.Modulus())
	var e fr.Element
	e.SetBigInt(reduced)
	return bls12381Fr{e}
}

func (c bls12381Curve) FrFromBytes(b []byte) Fr {
	return c.FrFromBigInt(new(big.Int).SetBytes(b))
}

func (bls12381Curve) RootOfUnity(power uint) (Fr, error) {
	size := uint64(1) << power
	d := fft.NewDomain(size)
	if d.Cardinality != size {
		return nil, errors.New("curve: bls12-381 domain too large for requested root of unity")
	}
	return bls12381Fr{d.Generator}, nil
}

func (bls12381Curve) G1Zero() G1 { return bls12381G1{} }

func (bls12381Curve) G1Generator() G1 {
	_, _, g1Aff, _ := bls12381.Generators()
	return bls12381G1{g1Aff}
}

func (bls12381Curve) G1FromCoords(x, y *big.Int) G1 {
	var p bls12381.G1Affine
	p.X.SetBigInt(x)
	p.Y.SetBigInt(y)
	return bls12381G1{p}
}

func (bls12381Curve) G2Generator() G2 {
	_, _, _, g2Aff := bls12381.Generators()
	return bls12381G2{g2Aff}
}

func (bls12381Curve) G2FromCoords(x, y [2]*big.Int) G2 {
	var p bls12381.G2Affine
	p.X.A0.SetBigInt(x[0])
	p.X.A1.SetBigInt(x[1])
	p.Y.A0.SetBigInt(y[0])
	p.Y.A1.SetBigInt(y[1])
	return bls12381G2{p}
}

func (bls12381Curve) PairingCheck(p1 G1, q1 G2, p2 G1, q2 G2) (bool, error) {
	a1, a2 := p1.(bls12381G1), p2.(bls12381G1)
	b1, b2 := q1.(bls12381G2), q2.(bls12381G2)
	return bls12381.PairingCheck(
		[]bls12381.G1Affine{a1.p, a2.p},
		[]bls12381.G2Affine{b1.p, b2.p},
	)
}

// --- Fr ---

type bls12381Fr struct{ v fr.Element }

func (a bls12381Fr) Add(b Fr) Fr {
	var r fr.Element
	r.Add(&a.v, &b.(bls12381Fr).v)
	return bls12381Fr{r}
}

func (a bls12381Fr) Sub(b Fr) Fr {
	var r fr.Element
	r.Sub(&a.v, &b.(bls12381Fr).v)
	return bls12381Fr{r}
}

func (a bls12381Fr) Mul(b Fr) Fr {
	var r fr.Element
	r.Mul(&a.v, &b.(bls12381Fr).v)
	return bls12381Fr{r}
}

func (a bls12381Fr) Square() Fr {
	var r fr.Element
	r.Square(&a.v)
	return bls12381Fr{r}
}

func (a bls12381Fr) Neg() Fr {
	var r fr.Element
	r.Neg(&a.v)
	return bls12381Fr{r}
}

func (a bls12381Fr) Inverse() (Fr, error) {
	if a.v.IsZero() {
		return nil, errors.New("curve: inverse of zero")
	}
	var r fr.Element
	r.Inverse(&a.v)
	return bls12381Fr{r}, nil
}

func (a bls12381Fr) Div(b Fr) (Fr, error) {
	inv, err := b.Inverse()
	if err != nil {
		return nil, err
	}
	return a.Mul(inv), nil
}

func (a bls12381Fr) IsZero() bool { return a.v.IsZero() }
func (a bls12381Fr) Equal(b Fr) bool {
	bb, ok := b.(bls12381Fr)
	return ok && a.v.Equal(&bb.v)
}

func (a bls12381Fr) Bytes() []byte {
	b := a.v.Bytes()
	return b[:]
}

func (a bls12381Fr) BigInt() *big.Int {
	var x big.Int
	a.v.BigInt(&x)
	return &x
}

// --- G1 ---

type bls12381G1 struct{ p bls12381.G1Affine }

func (a bls12381G1) Add(b G1) G1 {
	var r bls12381.G1Affine
	r.Add(&a.p, &b.(bls12381G1).p)
	return bls12381G1{r}
}

func (a bls12381G1) Neg() G1 {
	var r bls12381.G1Affine
	r.Neg(&a.p)
	return bls12381G1{r}
}

func (a bls12381G1) Sub(b G1) G1 {
	var neg bls12381.G1Affine
	neg.Neg(&b.(bls12381G1).p)
	var r bls12381.G1Affine
	r.Add(&a.p, &neg)
	return bls12381G1{r}
}

func (a bls12381G1) ScalarMul(s Fr) G1 {
	var r bls12381.G1Affine
	r.ScalarMultiplication(&a.p, s.(bls12381Fr).v.BigInt(new(big.Int)))
	return bls12381G1{r}
}

func (a bls12381G1) IsOnCurve() bool    { return a.p.IsOnCurve() }
func (a bls12381G1) IsInSubGroup() bool { return a.p.IsInSubGroup() }
func (a bls12381G1) IsInfinity() bool   { return a.p.IsInfinity() }
func (a bls12381G1) Equal(b G1) bool {
	bb, ok := b.(bls12381G1)
	return ok && a.p.Equal(&bb.p)
}

func (a bls12381G1) Bytes() []byte {
	xb := a.p.X.Bytes()
	yb := a.p.Y.Bytes()
	out := make([]byte, 0, len(xb)+len(yb))
	out = append(out, xb[:]...)
	out = append(out, yb[:]...)
	return out
}

// --- G2 (opaque) ---

type bls12381G2 struct{ p bls12381.G2Affine }

func (bls12381G2) isG2() {}
