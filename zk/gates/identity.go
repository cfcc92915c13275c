// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package gates ships concrete github.com/luxfi/plonkverify/zk.CustomGate
// implementations. Only one, Identity, lives here — a worked example of the
// tagged-union shape new gates follow, and the gate the "custom gates
// separable" property is tested against.
package gates

import (
	"github.com/luxfi/plonkverify/zk/curve"
)

// Identity is a no-op custom gate: it contributes nothing to the
// linearisation commitment and always passes its own sub-verification.
// Plugging it into a circuit that doesn't actually use custom gates must
// reproduce exactly the verifier's non-custom-gate result.
type Identity struct{}

// Decode ignores its input; the identity gate carries no sub-proof data.
func (Identity) Decode(proofBytes []byte, c curve.Curve) (any, error) {
	return struct{}{}, nil
}

// PlonkFactor always returns zero: the identity gate never perturbs D.
func (Identity) PlonkFactor(aPrime, bPrime, cPrime curve.Fr, c curve.Curve) curve.Fr {
	return c.FrZero()
}

// VerifyProof always succeeds.
func (Identity) VerifyProof(gateProof any, c curve.Curve) (bool, error) {
	return true, nil
}
