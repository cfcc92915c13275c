// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package zk

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/luxfi/plonkverify/zk/curve"
)

// ErrZeroLagrangeDenominator is the fatal arithmetic exception raised when ξ
// happens to coincide with one of the domain's evaluation points. It is
// astronomically unlikely for an honestly sampled ξ; treated as a reject.
var ErrZeroLagrangeDenominator = errors.New("zk: lagrange denominator is zero")

// lagrangeResult carries xin, zh and the evaluated L_1..L_m values a
// verification needs downstream (m = max(1, nPub)).
type lagrangeResult struct {
	xin curve.Fr
	zh  curve.Fr
	l   []curve.Fr // l[0] is L_1(ξ), l[i] is L_{i+1}(ξ)
}

// domainSize returns n = 2^power as a big.Int.
func domainSize(power uint) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), power)
}

// frPow returns base^exp via square-and-multiply.
func frPow(c curve.Curve, base curve.Fr, exp uint64) curve.Fr {
	result := c.FrOne()
	b := base
	for exp > 0 {
		if exp&1 == 1 {
			result = result.Mul(b)
		}
		b = b.Square()
		exp >>= 1
	}
	return result
}

// evalLagrange computes xin = ξ^(2^power) by repeated squaring, zh = xin−1,
// and L_i(ξ) for i in [1, max(1,nPub)] per spec §4.4.
func evalLagrange(c curve.Curve, power uint, nPub int, xi curve.Fr) (lagrangeResult, error) {
	xin := xi
	for i := uint(0); i < power; i++ {
		xin = xin.Square()
	}
	zh := xin.Sub(c.FrOne())

	n := c.FrFromBigInt(domainSize(power))

	omega, err := c.RootOfUnity(power)
	if err != nil {
		return lagrangeResult{}, err
	}

	m := nPub
	if m < 1 {
		m = 1
	}

	l := make([]curve.Fr, m)
	for i := 0; i < m; i++ {
		w := frPow(c, omega, uint64(i))

		denom := n.Mul(xi.Sub(w))
		if denom.IsZero() {
			return lagrangeResult{}, fmt.Errorf("%w: i=%d", ErrZeroLagrangeDenominator, i+1)
		}
		li, err := w.Mul(zh).Div(denom)
		if err != nil {
			return lagrangeResult{}, fmt.Errorf("%w: i=%d: %v", ErrZeroLagrangeDenominator, i+1, err)
		}
		l[i] = li
	}

	return lagrangeResult{xin: xin, zh: zh, l: l}, nil
}
