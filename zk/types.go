// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package zk verifies non-interactive PlonK proofs (eprint 2019/953): given
// a verification key, a vector of public inputs and a proof, Verify reports
// whether the proof convinces the verifier that the prover knew a witness
// satisfying the circuit the verification key represents.
//
// Verification is a pure function of its three arguments: no package state
// is mutated by a call, and two calls with identical arguments derive
// byte-identical Fiat-Shamir challenges and return the same result. The
// prover, the trusted setup, circuit compilation and proof serialization
// are all out of scope; callers hand in already-decoded object forms (see
// VerificationKeyObject and ProofObject) and already-parsed public signals.
package zk

import (
	"errors"
	"math/big"

	"github.com/luxfi/plonkverify/zk/curve"
)

// Errors, keyed to the verifier's error taxonomy. Only malformed input is
// returned as an error: FromObjectVk/FromObjectProof return ErrMalformed*
// when the caller handed in something that isn't shaped like a proof or
// verification key at all, and Verify returns ErrGateCountMismatch when the
// proof's CustomGates and the key's Qk disagree in length. Every other
// failure in Verify (ill-formed points, an input-count mismatch, a failed
// pairing or custom gate, a zero Lagrange denominator) collapses to a false
// return with a diagnostic logged.
var (
	ErrMalformedVK       = errors.New("zk: malformed verification key")
	ErrMalformedProof    = errors.New("zk: malformed proof")
	ErrUnknownGate       = errors.New("zk: unknown custom gate id")
	ErrGateCountMismatch = errors.New("zk: custom gate count mismatch between proof and verification key")
	ErrUnknownCurve      = errors.New("zk: unknown curve")
)

// VerificationKey is the immutable verifying key for one circuit. It is
// only ever read during verification, never mutated.
type VerificationKey struct {
	Curve curve.Curve

	// Power is p such that the circuit's evaluation domain has size
	// n = 2^Power.
	Power uint
	// NPublic is the number of public inputs the circuit exposes.
	NPublic int

	K1, K2 curve.Fr // coset generators for the permutation argument

	Qm, Ql, Qr, Qo, Qc curve.G1 // selector commitments
	S1, S2, S3         curve.G1 // permutation commitments

	X2 curve.G2 // [x]_2, the toxic-waste commitment from the trusted setup

	// Qk holds one custom-gate selector commitment per registered custom
	// gate, in the same order Proof.CustomGates must appear in.
	Qk []curve.G1
}

// Proof is one non-interactive PlonK proof. Immutable; only ever read.
type Proof struct {
	A, B, C    curve.G1 // wire commitments
	Z          curve.G1 // grand-product commitment
	T1, T2, T3 curve.G1 // split quotient commitments
	Wxi, Wxiw  curve.G1 // KZG opening proofs at ξ and ξ·ω

	EvalA, EvalB, EvalC curve.Fr // wire polynomials at ξ
	EvalS1, EvalS2      curve.Fr // σ1, σ2 at ξ
	EvalZW              curve.Fr // Z at ξ·ω
	EvalR               curve.Fr // linearisation polynomial at ξ

	// CustomGates is an ordered list of per-gate sub-proofs, one per
	// entry in the verification key's Qk. A nil/empty slice means the
	// circuit uses no custom gates.
	CustomGates []CustomGateProof
}

// CustomGateProof pairs a registered gate with its decoded, gate-specific
// sub-proof (the concrete type is owned by the gate implementation; see
// CustomGate.Decode).
type CustomGateProof struct {
	GateID string
	Proof  any
}

// challenges are the Fiat-Shamir values derived in the transcript stage,
// carried as a struct so every later pipeline stage gets exactly what it
// needs without recomputing anything. Only exposed outside Verify via the
// optional debug logger.
type challenges struct {
	beta, gamma, alpha, xi curve.Fr
	xin, zh                curve.Fr
	v                      [7]curve.Fr // v[1]..v[6] populated; v[0] unused
	u                      curve.Fr
}

// useCustomGates fixes the contract: true iff the proof carries a
// non-empty CustomGates list, in which case the verification key's Qk
// must have exactly that many entries, in the same order. Any other
// combination is malformed.
func useCustomGates(vk *VerificationKey, proof *Proof) (bool, error) {
	if len(proof.CustomGates) == 0 {
		return false, nil
	}
	if len(vk.Qk) != len(proof.CustomGates) {
		return false, ErrGateCountMismatch
	}
	return true, nil
}

// publicSignalsToFr canonicalises a sequence of Fr-representable
// non-negative integers into the curve's scalar field by reduction modulo r.
func publicSignalsToFr(c curve.Curve, signals []*big.Int) []curve.Fr {
	out := make([]curve.Fr, len(signals))
	for i, s := range signals {
		out[i] = c.FrFromBigInt(s)
	}
	return out
}
