// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package zk

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"

	"github.com/luxfi/plonkverify/zk/curve"
)

// VerificationKeyObject is the external, serializer-produced shape of a
// verification key: nested records whose leaves are decimal big-integer
// strings (Fr) or pairs of such strings (G1 affine coordinates). Parsing
// JSON/text into this struct is the caller's job (spec places that
// serialization step out of the core's scope); FromObjectVk only handles
// the object-form -> curve-native step.
type VerificationKeyObject struct {
	Curve   string `json:"curve"`
	Power   int    `json:"power"`
	NPublic int    `json:"nPublic"`

	K1 string `json:"k1"`
	K2 string `json:"k2"`

	Qm [2]string `json:"Qm"`
	Ql [2]string `json:"Ql"`
	Qr [2]string `json:"Qr"`
	Qo [2]string `json:"Qo"`
	Qc [2]string `json:"Qc"`

	S1 [2]string `json:"S1"`
	S2 [2]string `json:"S2"`
	S3 [2]string `json:"S3"`

	// X2 is [x]_2 as [ [x0, x1], [y0, y1] ] Fp2 coordinate pairs.
	X2 [2][2]string `json:"X_2"`

	// Qk holds one G1 coordinate pair per custom-gate selector, in gate
	// order. Empty when the circuit has no custom gates.
	Qk [][2]string `json:"Qk,omitempty"`
}

// ProofObject is the external shape of a proof, mirroring
// VerificationKeyObject's leaf encoding.
type ProofObject struct {
	A [2]string `json:"A"`
	B [2]string `json:"B"`
	C [2]string `json:"C"`
	Z [2]string `json:"Z"`

	T1 [2]string `json:"T1"`
	T2 [2]string `json:"T2"`
	T3 [2]string `json:"T3"`

	Wxi  [2]string `json:"Wxi"`
	Wxiw [2]string `json:"Wxiw"`

	EvalA  string `json:"eval_a"`
	EvalB  string `json:"eval_b"`
	EvalC  string `json:"eval_c"`
	EvalS1 string `json:"eval_s1"`
	EvalS2 string `json:"eval_s2"`
	EvalZW string `json:"eval_zw"`
	EvalR  string `json:"eval_r"`

	CustomGates []CustomGateObject `json:"customGates,omitempty"`
}

// CustomGateObject is one entry of a proof's custom-gate list: the gate id
// that selects a CustomGate implementation from a GateRegistry, plus its
// gate-specific sub-proof bytes.
type CustomGateObject struct {
	GateID string `json:"gateId"`
	Data   []byte `json:"data"`
}

// decimalToBigInt parses a decimal big-integer string. G1/G2 coordinates
// can exceed 256 bits (BLS12-381's base field is 381 bits), so this path
// uses math/big directly; see parseFr for the 256-bit-safe fast path.
func decimalToBigInt(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("not a decimal integer: %q", s)
	}
	return n, nil
}

// parseFr parses a decimal string known to fit Fr (at most 256 bits for
// every curve this package supports) via uint256, which is faster than
// math/big for the common case, then reduces into the curve's scalar field.
func parseFr(c curve.Curve, s string) (curve.Fr, error) {
	var u uint256.Int
	if err := u.SetFromDecimal(s); err != nil {
		return nil, fmt.Errorf("not a decimal integer: %q: %w", s, err)
	}
	return c.FrFromBigInt(u.ToBig()), nil
}

func parseG1(c curve.Curve, coords [2]string) (curve.G1, error) {
	x, err := decimalToBigInt(coords[0])
	if err != nil {
		return nil, err
	}
	y, err := decimalToBigInt(coords[1])
	if err != nil {
		return nil, err
	}
	return c.G1FromCoords(x, y), nil
}

func parseG2(c curve.Curve, coords [2][2]string) (curve.G2, error) {
	var x, y [2]*big.Int
	for i := 0; i < 2; i++ {
		xi, err := decimalToBigInt(coords[0][i])
		if err != nil {
			return nil, err
		}
		yi, err := decimalToBigInt(coords[1][i])
		if err != nil {
			return nil, err
		}
		x[i], y[i] = xi, yi
	}
	return c.G2FromCoords(x, y), nil
}

// FromObjectVk decodes a VerificationKeyObject into a VerificationKey,
// canonicalising every coordinate into curve-native Fr/G1/G2 elements.
func FromObjectVk(obj *VerificationKeyObject) (*VerificationKey, error) {
	c, err := curve.FromName(obj.Curve)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %v", ErrMalformedVK, ErrUnknownCurve, err)
	}
	if obj.Power <= 0 || obj.NPublic < 0 {
		return nil, fmt.Errorf("%w: power=%d nPublic=%d", ErrMalformedVK, obj.Power, obj.NPublic)
	}

	vk := &VerificationKey{
		Curve:   c,
		Power:   uint(obj.Power),
		NPublic: obj.NPublic,
	}

	var parseErr error
	must := func(fr curve.Fr, err error) curve.Fr {
		if err != nil && parseErr == nil {
			parseErr = err
		}
		return fr
	}
	mustG1 := func(g curve.G1, err error) curve.G1 {
		if err != nil && parseErr == nil {
			parseErr = err
		}
		return g
	}

	vk.K1 = must(parseFr(c, obj.K1))
	vk.K2 = must(parseFr(c, obj.K2))
	vk.Qm = mustG1(parseG1(c, obj.Qm))
	vk.Ql = mustG1(parseG1(c, obj.Ql))
	vk.Qr = mustG1(parseG1(c, obj.Qr))
	vk.Qo = mustG1(parseG1(c, obj.Qo))
	vk.Qc = mustG1(parseG1(c, obj.Qc))
	vk.S1 = mustG1(parseG1(c, obj.S1))
	vk.S2 = mustG1(parseG1(c, obj.S2))
	vk.S3 = mustG1(parseG1(c, obj.S3))
	if parseErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedVK, parseErr)
	}

	x2, err := parseG2(c, obj.X2)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedVK, err)
	}
	vk.X2 = x2

	if len(obj.Qk) > 0 {
		vk.Qk = make([]curve.G1, len(obj.Qk))
		for i, coords := range obj.Qk {
			g, err := parseG1(c, coords)
			if err != nil {
				return nil, fmt.Errorf("%w: Qk[%d]: %v", ErrMalformedVK, i, err)
			}
			vk.Qk[i] = g
		}
	}

	return vk, nil
}

// FromObjectProof decodes a ProofObject into a Proof for the given curve.
// When the proof carries custom-gate entries, each sub-proof is decoded
// through the gate registered under its gate id in registry; registry may
// be nil iff the proof has no custom gates.
func FromObjectProof(c curve.Curve, obj *ProofObject, registry *GateRegistry) (*Proof, error) {
	proof := &Proof{}

	fields := []struct {
		dst  *curve.G1
		name string
		v    [2]string
	}{
		{&proof.A, "A", obj.A},
		{&proof.B, "B", obj.B},
		{&proof.C, "C", obj.C},
		{&proof.Z, "Z", obj.Z},
		{&proof.T1, "T1", obj.T1},
		{&proof.T2, "T2", obj.T2},
		{&proof.T3, "T3", obj.T3},
		{&proof.Wxi, "Wxi", obj.Wxi},
		{&proof.Wxiw, "Wxiw", obj.Wxiw},
	}
	for _, f := range fields {
		g, err := parseG1(c, f.v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedProof, f.name, err)
		}
		*f.dst = g
	}

	frFields := []struct {
		dst  *curve.Fr
		name string
		v    string
	}{
		{&proof.EvalA, "eval_a", obj.EvalA},
		{&proof.EvalB, "eval_b", obj.EvalB},
		{&proof.EvalC, "eval_c", obj.EvalC},
		{&proof.EvalS1, "eval_s1", obj.EvalS1},
		{&proof.EvalS2, "eval_s2", obj.EvalS2},
		{&proof.EvalZW, "eval_zw", obj.EvalZW},
		{&proof.EvalR, "eval_r", obj.EvalR},
	}
	for _, f := range frFields {
		fr, err := parseFr(c, f.v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedProof, f.name, err)
		}
		*f.dst = fr
	}

	if len(obj.CustomGates) == 0 {
		return proof, nil
	}

	if registry == nil {
		return nil, fmt.Errorf("%w: proof has custom gates but no registry was supplied", ErrMalformedProof)
	}

	proof.CustomGates = make([]CustomGateProof, len(obj.CustomGates))
	for i, cg := range obj.CustomGates {
		gate, err := registry.Lookup(cg.GateID)
		if err != nil {
			return nil, fmt.Errorf("%w: customGates[%d]: %v", ErrMalformedProof, i, err)
		}
		decoded, err := gate.Decode(cg.Data, c)
		if err != nil {
			return nil, fmt.Errorf("%w: customGates[%d] (%s): %v", ErrMalformedProof, i, cg.GateID, err)
		}
		proof.CustomGates[i] = CustomGateProof{GateID: cg.GateID, Proof: decoded}
	}

	return proof, nil
}
