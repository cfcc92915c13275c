// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package zk

import "github.com/luxfi/plonkverify/zk/curve"

// evalQuotient reconstructs t(ξ) per spec §4.6:
//
//	num = eval_r + PI(ξ) − α·(eval_a + β·eval_s1 + γ)·(eval_b + β·eval_s2 + γ)·(eval_c + γ)·eval_zw − α²·L1(ξ)
//	t   = num / zh
func evalQuotient(c curve.Curve, proof *Proof, ch challenges, pi curve.Fr, lagrange lagrangeResult) (curve.Fr, error) {
	term1 := proof.EvalA.Add(ch.beta.Mul(proof.EvalS1)).Add(ch.gamma)
	term2 := proof.EvalB.Add(ch.beta.Mul(proof.EvalS2)).Add(ch.gamma)
	term3 := proof.EvalC.Add(ch.gamma)

	e1 := ch.alpha.Mul(term1).Mul(term2).Mul(term3).Mul(proof.EvalZW)
	e2 := ch.alpha.Square().Mul(lagrange.l[0])

	num := proof.EvalR.Add(pi).Sub(e1).Sub(e2)

	return num.Div(lagrange.zh)
}
