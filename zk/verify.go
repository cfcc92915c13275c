// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package zk

import (
	"fmt"
	"math/big"

	log "github.com/luxfi/log"
)

// Verify runs the PlonK verification pipeline of spec §4.11 on an already
// decoded key and proof (decoding is FromObjectVk/FromObjectProof):
// Validate structure -> Transcript -> Lagrange -> PI -> t -> D ->
// F -> E -> Pairing -> (Custom gates) -> Accept/Reject. The pipeline is
// linear and short-circuits to reject at the first failing stage; only a
// malformed verification key or proof produces a non-nil error — this
// includes a proof/VK pair whose CustomGates and Qk lengths disagree, which
// §4.1/§9 name as malformed rather than a plain rejection. Every other
// rejection reason is logged at debug level through logger, which may be
// nil, and folded into a false return with a nil error.
//
// registry resolves any custom-gate ids the proof references; it may be nil
// only when the circuit is known to use no custom gates — Verify rejects
// rather than panics if a populated CustomGates list shows up with no
// registry to resolve it against.
func Verify(vk *VerificationKey, publicSignals []*big.Int, proof *Proof, registry *GateRegistry, logger log.Logger) (bool, error) {
	if logger == nil {
		logger = log.Root()
	}

	custom, err := useCustomGates(vk, proof)
	if err != nil {
		logger.Debug("plonk verify: custom gate contract violated", "err", err)
		return false, err
	}

	if custom && registry == nil {
		logger.Debug("plonk verify: proof carries custom gates but no registry was supplied")
		return false, nil
	}

	if err := validateProofStructure(vk, publicSignals, proof); err != nil {
		logger.Debug("plonk verify: structural validation failed", "err", err)
		return false, nil
	}

	c := vk.Curve
	signals := publicSignalsToFr(c, publicSignals)

	ch := deriveChallenges(c, signals, proof)
	logger.Debug("plonk verify: challenges derived",
		"beta", fmt.Sprintf("%x", ch.beta.Bytes()),
		"gamma", fmt.Sprintf("%x", ch.gamma.Bytes()),
		"alpha", fmt.Sprintf("%x", ch.alpha.Bytes()),
		"xi", fmt.Sprintf("%x", ch.xi.Bytes()),
		"u", fmt.Sprintf("%x", ch.u.Bytes()),
	)

	lagrange, err := evalLagrange(c, vk.Power, vk.NPublic, ch.xi)
	if err != nil {
		logger.Debug("plonk verify: lagrange evaluation failed", "err", err)
		return false, nil
	}

	pi := evalPublicInput(c, signals, lagrange)

	t, err := evalQuotient(c, proof, ch, pi, lagrange)
	if err != nil {
		logger.Debug("plonk verify: quotient evaluation failed", "err", err)
		return false, nil
	}

	d, err := evalLinearisation(c, vk, proof, ch, lagrange, custom, registry)
	if err != nil {
		logger.Debug("plonk verify: linearisation failed", "err", err)
		return false, nil
	}

	f, e := evalBatch(c, vk, proof, ch, lagrange, d, t)

	ok, err := pairingCheck(c, vk, proof, ch, f, e)
	if err != nil {
		logger.Debug("plonk verify: pairing check errored", "err", err)
		return false, nil
	}
	if !ok {
		logger.Debug("plonk verify: pairing check failed")
		return false, nil
	}

	if custom {
		for i, cg := range proof.CustomGates {
			gate, err := registry.Lookup(cg.GateID)
			if err != nil {
				logger.Debug("plonk verify: custom gate lookup failed", "gate", cg.GateID, "err", err)
				return false, nil
			}
			gateOK, err := gate.VerifyProof(cg.Proof, c)
			if err != nil {
				logger.Debug("plonk verify: custom gate sub-verification errored", "gate", cg.GateID, "index", i, "err", err)
				return false, nil
			}
			if !gateOK {
				logger.Debug("plonk verify: custom gate rejected", "gate", cg.GateID, "index", i)
				return false, nil
			}
		}
	}

	return true, nil
}
