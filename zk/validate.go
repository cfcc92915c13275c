// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package zk

import (
	"fmt"
	"math/big"
)

// validateProofStructure runs the structural checks the spec requires before
// any arithmetic touches a proof: every G1 element must lie on the curve and
// in its prime-order subgroup, and the public-signal count handed to Verify
// must match the circuit the verification key was built for. Violations are
// reported, never panicked on — callers fold a false return into "reject".
// The custom-gate count contract is deliberately not checked here: §4.1/§9
// name a proof/VK whose Qk and CustomGates lengths disagree as malformed,
// not reject, so that check is Verify's job, surfaced as a Go error.
func validateProofStructure(vk *VerificationKey, publicSignals []*big.Int, proof *Proof) error {
	if len(publicSignals) != vk.NPublic {
		return fmt.Errorf("public signal count %d does not match verification key's nPublic %d", len(publicSignals), vk.NPublic)
	}

	points := []struct {
		name string
		g    interface {
			IsOnCurve() bool
			IsInSubGroup() bool
		}
	}{
		{"A", proof.A},
		{"B", proof.B},
		{"C", proof.C},
		{"Z", proof.Z},
		{"T1", proof.T1},
		{"T2", proof.T2},
		{"T3", proof.T3},
		{"Wxi", proof.Wxi},
		{"Wxiw", proof.Wxiw},
	}
	for _, p := range points {
		if !p.g.IsOnCurve() {
			return fmt.Errorf("proof element %s is not on the curve", p.name)
		}
		if !p.g.IsInSubGroup() {
			return fmt.Errorf("proof element %s is not in the prime-order subgroup", p.name)
		}
	}

	return nil
}
