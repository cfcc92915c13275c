// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package curve wraps github.com/consensys/gnark-crypto's per-curve field
// and group arithmetic behind one small interface, so the plonk verifier in
// package zk never imports a concrete curve package directly. This is the
// "curve library contract" of the spec: Fr/G1 arithmetic, G2 as an opaque
// pairing input, and a name-based dispatcher selecting the pairing-friendly
// curve a given verification key was generated for.
package curve

import (
	"fmt"
	"math/big"
)

// Fr is an element of the scalar field associated with a curve's prime-order
// subgroups. All arithmetic is exact; there is no overflow or rounding.
type Fr interface {
	Add(Fr) Fr
	Sub(Fr) Fr
	Mul(Fr) Fr
	Square() Fr
	Neg() Fr
	// Inverse returns 1/x. err is non-nil iff x is zero.
	Inverse() (Fr, error)
	// Div returns x/y. err is non-nil iff y is zero.
	Div(Fr) (Fr, error)
	IsZero() bool
	Equal(Fr) bool
	// Bytes is the big-endian, fixed-width (Curve.N8r bytes) canonical
	// encoding used for transcript hashing. G1.Bytes does not use it: its
	// halves are base-field encodings of Curve.N8 bytes.
	Bytes() []byte
	BigInt() *big.Int
}

// G1 is a point in the curve's prime-order G1 subgroup, always handled in
// affine form (the spec requires affine, uncompressed, flag-free encoding
// for the transcript).
type G1 interface {
	Add(G1) G1
	Neg() G1
	Sub(G1) G1
	// ScalarMul computes s*P via the curve library's own scalar
	// multiplication (delegated, never reimplemented: see spec §9 "Scalar
	// multiplication and MSM").
	ScalarMul(Fr) G1
	IsOnCurve() bool
	IsInSubGroup() bool
	IsInfinity() bool
	Equal(G1) bool
	// Bytes is the uncompressed affine encoding: X (N8 bytes, big-endian)
	// followed by Y (N8 bytes, big-endian), with no infinity flag.
	Bytes() []byte
}

// G2 is a point in the curve's G2 subgroup. The spec consumes G2 only as an
// opaque pairing input (never serialized into a transcript, never
// scalar-multiplied by verifier code), so the interface carries no
// arithmetic — only curve-scoped identity, enforced by the unexported method.
type G2 interface {
	isG2()
}

// Curve is the full set of capabilities the verifier needs from a
// pairing-friendly curve implementation.
type Curve interface {
	// Name is the curve's canonical name ("bn254" or "bls12-381"), whichever
	// accepted spelling it was looked up under.
	Name() string

	// N8r is the byte width of a canonical Fr encoding.
	N8r() int
	// N8 is the byte width of a canonical base-field (G1 coordinate) encoding.
	N8() int

	FrZero() Fr
	FrOne() Fr
	FrFromBigInt(x *big.Int) Fr
	// FrFromBytes decodes a big-endian byte string of any length as an
	// integer and reduces it modulo r; it never errors, matching the
	// decoder's "numeric string or bignum inputs are reduced modulo r"
	// contract (spec §4.1).
	FrFromBytes(b []byte) Fr

	// RootOfUnity returns ω = Fr.w[power], a primitive 2^power-th root of
	// unity in Fr, for power no larger than the two-adicity of Fr.
	RootOfUnity(power uint) (Fr, error)

	G1Zero() G1
	G1Generator() G1
	// G1FromCoords builds a G1 point from raw affine coordinates without
	// any validity check; callers must run IsOnCurve/IsInSubGroup
	// themselves (spec §4.2's structural validator does this explicitly,
	// once, for every proof element).
	G1FromCoords(x, y *big.Int) G1

	G2Generator() G2
	// G2FromCoords builds an (opaque) G2 point from the two Fp2
	// coordinates, each given as a pair of base-field big integers
	// (real, imaginary).
	G2FromCoords(x [2]*big.Int, y [2]*big.Int) G2

	// PairingCheck evaluates e(p1,q1)*e(p2,q2) == 1.
	PairingCheck(p1 G1, q1 G2, p2 G1, q2 G2) (bool, error)
}

// FromName dispatches to a registered Curve by name. The accepted spellings
// mirror the ones in circulation in PlonK verification keys: "bn128",
// "bn254" and "alt_bn128" all select BN254 (the names are used
// interchangeably by different toolchains for the same curve); "bls12-381"
// and "bls12381" select BLS12-381.
func FromName(name string) (Curve, error) {
	switch name {
	case "bn128", "bn254", "alt_bn128":
		return bn254Curve{}, nil
	case "bls12-381", "bls12381":
		return bls12381Curve{}, nil
	default:
		return nil, fmt.Errorf("curve: unknown curve name %q", name)
	}
}
