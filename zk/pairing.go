// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package zk

import "github.com/luxfi/plonkverify/zk/curve"

// pairingCheck evaluates the single pairing equation of spec §4.9:
//
//	A1 := Wxi + Wxiw·u
//	B1 := Wxi·ξ + Wxiw·(u·ξ·ω) + F − E
//	accept <=> e(−A1, X2)·e(B1, g2) = 1
func pairingCheck(c curve.Curve, vk *VerificationKey, proof *Proof, ch challenges, f, e curve.G1) (bool, error) {
	omega, err := c.RootOfUnity(vk.Power)
	if err != nil {
		return false, err
	}

	a1 := proof.Wxi.Add(proof.Wxiw.ScalarMul(ch.u))

	uXiOmega := ch.u.Mul(ch.xi).Mul(omega)
	b1 := proof.Wxi.ScalarMul(ch.xi)
	b1 = b1.Add(proof.Wxiw.ScalarMul(uXiOmega))
	b1 = b1.Add(f)
	b1 = b1.Sub(e)

	g2 := c.G2Generator()
	return c.PairingCheck(a1.Neg(), vk.X2, b1, g2)
}
