// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package zk

import "github.com/luxfi/plonkverify/zk/curve"

// evalBatch assembles the batched commitment F and batched evaluation E of
// spec §4.8:
//
//	F := T1 + T2·xin + T3·xin² + D + A·v² + B·v³ + C·v⁴ + S1·v⁵ + S2·v⁶
//	s := t + v·eval_r + v²·eval_a + v³·eval_b + v⁴·eval_c + v⁵·eval_s1 + v⁶·eval_s2 + u·eval_zw
//	E := s · g1
func evalBatch(c curve.Curve, vk *VerificationKey, proof *Proof, ch challenges, lagrange lagrangeResult, d curve.G1, t curve.Fr) (f curve.G1, e curve.G1) {
	xin2 := lagrange.xin.Square()

	f = proof.T1
	f = f.Add(proof.T2.ScalarMul(lagrange.xin))
	f = f.Add(proof.T3.ScalarMul(xin2))
	f = f.Add(d)
	f = f.Add(proof.A.ScalarMul(ch.v[2]))
	f = f.Add(proof.B.ScalarMul(ch.v[3]))
	f = f.Add(proof.C.ScalarMul(ch.v[4]))
	f = f.Add(vk.S1.ScalarMul(ch.v[5]))
	f = f.Add(vk.S2.ScalarMul(ch.v[6]))

	v := ch.v[1]
	s := t
	s = s.Add(v.Mul(proof.EvalR))
	s = s.Add(ch.v[2].Mul(proof.EvalA))
	s = s.Add(ch.v[3].Mul(proof.EvalB))
	s = s.Add(ch.v[4].Mul(proof.EvalC))
	s = s.Add(ch.v[5].Mul(proof.EvalS1))
	s = s.Add(ch.v[6].Mul(proof.EvalS2))
	s = s.Add(ch.u.Mul(proof.EvalZW))

	e = c.G1Generator().ScalarMul(s)
	return f, e
}
