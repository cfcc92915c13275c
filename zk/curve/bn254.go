// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package curve

import (
	"errors"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr/fft"
)

type bn254Curve struct{}

func (bn254Curve) Name() string { return "bn254" }
func (bn254Curve) N8r() int     { return fr.Bytes }
func (bn254Curve) N8() int      { return fp.Bytes }

func (bn254Curve) FrZero() Fr { return bn254Fr{} }

func (bn254Curve) FrOne() Fr {
	var e fr.Element
	e.SetOne()
	return bn254Fr{e}
}

func (bn254Curve) FrFromBigInt(x *big.Int) Fr {
	reduced := new(big.Int).Mod(x, fr.Modulus())
	var e fr.Element
	e.SetBigInt(reduced)
	return bn254Fr{e}
}

func (c bn254Curve) FrFromBytes(b []byte) Fr {
	return c.FrFromBigInt(new(big.Int).SetBytes(b))
}

func (bn254Curve) RootOfUnity(power uint) (Fr, error) {
	size := uint64(1) << power
	d := fft.NewDomain(size)
	if d.Cardinality != size {
		return nil, errors.New("curve: bn254 domain too large for requested root of unity")
	}
	return bn254Fr{d.Generator}, nil
}

func (bn254Curve) G1Zero() G1 { return bn254G1{} }

func (bn254Curve) G1Generator() G1 {
	_, _, g1Aff, _ := bn254.Generators()
	return bn254G1{g1Aff}
}

func (bn254Curve) G1FromCoords(x, y *big.Int) G1 {
	var p bn254.G1Affine
	p.X.SetBigInt(x)
	p.Y.SetBigInt(y)
	return bn254G1{p}
}

func (bn254Curve) G2Generator() G2 {
	_, _, _, g2Aff := bn254.Generators()
	return bn254G2{g2Aff}
}

func (bn254Curve) G2FromCoords(x, y [2]*big.Int) G2 {
	var p bn254.G2Affine
	p.X.A0.SetBigInt(x[0])
	p.X.A1.SetBigInt(x[1])
	p.Y.A0.SetBigInt(y[0])
	p.Y.A1.SetBigInt(y[1])
	return bn254G2{p}
}

func (bn254Curve) PairingCheck(p1 G1, q1 G2, p2 G1, q2 G2) (bool, error) {
	a1, a2 := p1.(bn254G1), p2.(bn254G1)
	b1, b2 := q1.(bn254G2), q2.(bn254G2)
	return bn254.PairingCheck(
		[]bn254.G1Affine{a1.p, a2.p},
		[]bn254.G2Affine{b1.p, b2.p},
	)
}

// --- Fr ---

type bn254Fr struct{ v fr.Element }

func (a bn254Fr) Add(b Fr) Fr {
	var r fr.Element
	r.Add(&a.v, &b.(bn254Fr).v)
	return bn254Fr{r}
}

func (a bn254Fr) Sub(b Fr) Fr {
	var r fr.Element
	r.Sub(&a.v, &b.(bn254Fr).v)
	return bn254Fr{r}
}

func (a bn254Fr) Mul(b Fr) Fr {
	var r fr.Element
	r.Mul(&a.v, &b.(bn254Fr).v)
	return bn254Fr{r}
}

func (a bn254Fr) Square() Fr {
	var r fr.Element
	r.Square(&a.v)
	return bn254Fr{r}
}

func (a bn254Fr) Neg() Fr {
	var r fr.Element
	r.Neg(&a.v)
	return bn254Fr{r}
}

func (a bn254Fr) Inverse() (Fr, error) {
	if a.v.IsZero() {
		return nil, errors.New("curve: inverse of zero")
	}
	var r fr.Element
	r.Inverse(&a.v)
	return bn254Fr{r}, nil
}

func (a bn254Fr) Div(b Fr) (Fr, error) {
	inv, err := b.Inverse()
	if err != nil {
		return nil, err
	}
	return a.Mul(inv), nil
}

func (a bn254Fr) IsZero() bool  { return a.v.IsZero() }
func (a bn254Fr) Equal(b Fr) bool {
	bb, ok := b.(bn254Fr)
	return ok && a.v.Equal(&bb.v)
}

func (a bn254Fr) Bytes() []byte {
	b := a.v.Bytes()
	return b[:]
}

func (a bn254Fr) BigInt() *big.Int {
	var x big.Int
	a.v.BigInt(&x)
	return &x
}

// --- G1 ---

type bn254G1 struct{ p bn254.G1Affine }

func (a bn254G1) Add(b G1) G1 {
	var r bn254.G1Affine
	r.Add(&a.p, &b.(bn254G1).p)
	return bn254G1{r}
}

func (a bn254G1) Neg() G1 {
	var r bn254.G1Affine
	r.Neg(&a.p)
	return bn254G1{r}
}

func (a bn254G1) Sub(b G1) G1 {
	var neg bn254.G1Affine
	neg.Neg(&b.(bn254G1).p)
	var r bn254.G1Affine
	r.Add(&a.p, &neg)
	return bn254G1{r}
}

func (a bn254G1) ScalarMul(s Fr) G1 {
	var r bn254.G1Affine
	r.ScalarMultiplication(&a.p, s.(bn254Fr).v.BigInt(new(big.Int)))
	return bn254G1{r}
}

func (a bn254G1) IsOnCurve() bool    { return a.p.IsOnCurve() }
func (a bn254G1) IsInSubGroup() bool { return a.p.IsInSubGroup() }
func (a bn254G1) IsInfinity() bool   { return a.p.IsInfinity() }
func (a bn254G1) Equal(b G1) bool {
	bb, ok := b.(bn254G1)
	return ok && a.p.Equal(&bb.p)
}

func (a bn254G1) Bytes() []byte {
	xb := a.p.X.Bytes()
	yb := a.p.Y.Bytes()
	out := make([]byte, 0, len(xb)+len(yb))
	out = append(out, xb[:]...)
	out = append(out, yb[:]...)
	return out
}

// --- G2 (opaque) ---

type bn254G2 struct{ p bn254.G2Affine }

func (bn254G2) isG2() {}
