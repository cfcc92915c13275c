// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package zk

import "github.com/luxfi/plonkverify/zk/curve"

// evalPublicInput computes PI(ξ) = Σ_{i=1..nPub} (−wᵢ)·Lᵢ(ξ) per spec §4.5.
// The leading negation matches the convention the linearisation step expects.
func evalPublicInput(c curve.Curve, publicSignals []curve.Fr, lagrange lagrangeResult) curve.Fr {
	pi := c.FrZero()
	for i, w := range publicSignals {
		pi = pi.Sub(w.Mul(lagrange.l[i]))
	}
	return pi
}
