// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package zk

import (
	"errors"

	"github.com/luxfi/plonkverify/zk/curve"
)

// ErrNoGateRegistry is returned when a proof carries custom gates but the
// caller supplied no registry to resolve their PlonkFactor against.
var ErrNoGateRegistry = errors.New("zk: proof has custom gates but no registry was supplied")

// evalLinearisation builds the linearisation commitment D per spec §4.7:
// a G1 multi-scalar combination of the verification key's fixed selector
// and permutation commitments plus the proof's Z commitment. When
// useCustomGates is true, one extra term per registered gate is spliced in
// at the position the spec names, using that gate's PlonkFactor.
func evalLinearisation(c curve.Curve, vk *VerificationKey, proof *Proof, ch challenges, lagrange lagrangeResult, custom bool, registry *GateRegistry) (curve.G1, error) {
	v := ch.v[1]

	aV := proof.EvalA.Mul(v)
	bV := proof.EvalB.Mul(v)
	cV := proof.EvalC.Mul(v)

	d := vk.Qm.ScalarMul(proof.EvalA.Mul(proof.EvalB).Mul(v))

	if custom {
		if registry == nil {
			return nil, ErrNoGateRegistry
		}
		for i, cg := range proof.CustomGates {
			gate, err := registry.Lookup(cg.GateID)
			if err != nil {
				return nil, err
			}
			factor := gate.PlonkFactor(aV, bV, cV, c)
			d = d.Add(vk.Qk[i].ScalarMul(factor))
		}
	}

	d = d.Add(vk.Ql.ScalarMul(aV))
	d = d.Add(vk.Qr.ScalarMul(bV))
	d = d.Add(vk.Qo.ScalarMul(cV))
	d = d.Add(vk.Qc.ScalarMul(v))

	betaXi := ch.beta.Mul(ch.xi)
	s6a := proof.EvalA.Add(betaXi).Add(ch.gamma)
	s6b := proof.EvalB.Add(betaXi.Mul(vk.K1)).Add(ch.gamma)
	s6c := proof.EvalC.Add(betaXi.Mul(vk.K2)).Add(ch.gamma)
	s6 := s6a.Mul(s6b).Mul(s6c).Mul(ch.alpha).Mul(v).Add(lagrange.l[0].Mul(ch.alpha.Square()).Mul(v)).Add(ch.u)
	d = d.Add(proof.Z.ScalarMul(s6))

	s7a := proof.EvalA.Add(ch.beta.Mul(proof.EvalS1)).Add(ch.gamma)
	s7b := proof.EvalB.Add(ch.beta.Mul(proof.EvalS2)).Add(ch.gamma)
	s7 := s7a.Mul(s7b).Mul(ch.alpha).Mul(v).Mul(ch.beta).Mul(proof.EvalZW)
	d = d.Sub(vk.S3.ScalarMul(s7))

	return d, nil
}
