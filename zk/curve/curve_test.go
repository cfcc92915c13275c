// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package curve

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFromName(t *testing.T) {
	for _, name := range []string{"bn128", "bn254", "alt_bn128"} {
		c, err := FromName(name)
		require.NoError(t, err)
		require.Equal(t, "bn254", c.Name())
	}
	for _, name := range []string{"bls12-381", "bls12381"} {
		c, err := FromName(name)
		require.NoError(t, err)
		require.Equal(t, "bls12-381", c.Name())
	}
	_, err := FromName("nope")
	require.Error(t, err)
}

func testCurveArithmetic(t *testing.T, c Curve) {
	one := c.FrOne()
	two := one.Add(one)
	four := two.Mul(two)
	require.True(t, four.Equal(two.Square()))

	sum := c.FrFromBigInt(big.NewInt(3)).Add(c.FrFromBigInt(big.NewInt(4)))
	require.True(t, sum.Equal(c.FrFromBigInt(big.NewInt(7))))

	neg := one.Neg()
	require.True(t, one.Add(neg).IsZero())

	inv, err := two.Inverse()
	require.NoError(t, err)
	require.True(t, two.Mul(inv).Equal(one))

	_, err = c.FrZero().Inverse()
	require.Error(t, err)

	quot, err := four.Div(two)
	require.NoError(t, err)
	require.True(t, quot.Equal(two))
}

func TestBN254Arithmetic(t *testing.T) {
	c, err := FromName("bn254")
	require.NoError(t, err)
	testCurveArithmetic(t, c)
}

func TestBLS12381Arithmetic(t *testing.T) {
	c, err := FromName("bls12-381")
	require.NoError(t, err)
	testCurveArithmetic(t, c)
}

func testG1Arithmetic(t *testing.T, c Curve) {
	g := c.G1Generator()
	require.True(t, g.IsOnCurve())
	require.True(t, g.IsInSubGroup())
	require.False(t, g.IsInfinity())

	two := c.FrOne().Add(c.FrOne())
	doubled := g.ScalarMul(two)
	require.True(t, doubled.Equal(g.Add(g)))

	diff := doubled.Sub(g)
	require.True(t, diff.Equal(g))

	zero := c.G1Zero()
	require.True(t, zero.IsInfinity())
	require.True(t, g.Add(zero).Equal(g))

	neg := g.Neg()
	require.True(t, g.Add(neg).IsInfinity())
}

func TestBN254G1(t *testing.T) {
	c, _ := FromName("bn254")
	testG1Arithmetic(t, c)
}

func TestBLS12381G1(t *testing.T) {
	c, _ := FromName("bls12-381")
	testG1Arithmetic(t, c)
}

func testPairingIdentity(t *testing.T, c Curve) {
	g1 := c.G1Generator()
	g2 := c.G2Generator()
	negG1 := g1.Neg()

	ok, err := c.PairingCheck(g1, g2, negG1, g2)
	require.NoError(t, err)
	require.True(t, ok, "e(g1,g2)*e(-g1,g2) must equal 1")

	ok, err = c.PairingCheck(g1, g2, g1, g2)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestBN254Pairing(t *testing.T) {
	c, _ := FromName("bn254")
	testPairingIdentity(t, c)
}

func TestBLS12381Pairing(t *testing.T) {
	c, _ := FromName("bls12-381")
	testPairingIdentity(t, c)
}

func TestRootOfUnityOrder(t *testing.T) {
	for _, name := range []string{"bn254", "bls12-381"} {
		c, _ := FromName(name)
		w, err := c.RootOfUnity(4)
		require.NoError(t, err)

		x := w
		for i := 0; i < 15; i++ {
			x = x.Mul(w)
		}
		// x is now w^16; must equal 1.
		require.True(t, x.Equal(c.FrOne()), "ω^16 must be 1 for %s", name)
		require.False(t, w.Equal(c.FrOne()), "ω must not itself be 1 for %s", name)
	}
}
