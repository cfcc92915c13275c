// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package zk

import (
	"github.com/luxfi/crypto"

	"github.com/luxfi/plonkverify/zk/curve"
)

// keccakFr hashes buf with "original" Keccak-256 (padding byte 0x01, the
// Ethereum-compatible variant, not FIPS-202 SHA3-256's 0x06) and reduces the
// big-endian digest into c's scalar field. No rejection sampling: the bias
// from reducing a 256-bit digest into Fr is negligible, matching the
// on-chain verifier contracts this scheme is interoperable with.
func keccakFr(c curve.Curve, buf []byte) curve.Fr {
	digest := crypto.Keccak256(buf)
	return c.FrFromBytes(digest)
}

// deriveChallenges runs the Fiat-Shamir transcript of spec §4.3: a fixed
// sequence of domain-separated Keccak-256 hashes, each reduced into Fr, with
// v[2..6] derived from v[1] by repeated multiplication rather than hashing.
func deriveChallenges(c curve.Curve, publicSignals []curve.Fr, proof *Proof) challenges {
	n8r, n8 := c.N8r(), c.N8()

	betaBuf := make([]byte, 0, len(publicSignals)*n8r+3*2*n8)
	for _, w := range publicSignals {
		betaBuf = append(betaBuf, w.Bytes()...)
	}
	betaBuf = append(betaBuf, proof.A.Bytes()...)
	betaBuf = append(betaBuf, proof.B.Bytes()...)
	betaBuf = append(betaBuf, proof.C.Bytes()...)
	beta := keccakFr(c, betaBuf)

	gamma := keccakFr(c, beta.Bytes())

	alpha := keccakFr(c, proof.Z.Bytes())

	xiBuf := make([]byte, 0, 3*2*n8)
	xiBuf = append(xiBuf, proof.T1.Bytes()...)
	xiBuf = append(xiBuf, proof.T2.Bytes()...)
	xiBuf = append(xiBuf, proof.T3.Bytes()...)
	xi := keccakFr(c, xiBuf)

	v1Buf := make([]byte, 0, 7*n8r)
	v1Buf = append(v1Buf, proof.EvalA.Bytes()...)
	v1Buf = append(v1Buf, proof.EvalB.Bytes()...)
	v1Buf = append(v1Buf, proof.EvalC.Bytes()...)
	v1Buf = append(v1Buf, proof.EvalS1.Bytes()...)
	v1Buf = append(v1Buf, proof.EvalS2.Bytes()...)
	v1Buf = append(v1Buf, proof.EvalZW.Bytes()...)
	v1Buf = append(v1Buf, proof.EvalR.Bytes()...)
	v1 := keccakFr(c, v1Buf)

	var v [7]curve.Fr
	v[1] = v1
	for i := 2; i <= 6; i++ {
		v[i] = v[i-1].Mul(v1)
	}

	uBuf := make([]byte, 0, 2*2*n8)
	uBuf = append(uBuf, proof.Wxi.Bytes()...)
	uBuf = append(uBuf, proof.Wxiw.Bytes()...)
	u := keccakFr(c, uBuf)

	return challenges{
		beta:  beta,
		gamma: gamma,
		alpha: alpha,
		xi:    xi,
		v:     v,
		u:     u,
	}
}
