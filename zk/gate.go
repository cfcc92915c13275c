// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package zk

import (
	"fmt"
	"sync"

	"github.com/luxfi/plonkverify/zk/curve"
)

// CustomGate is the contract a custom-gate extension implements. Gates are
// modelled as a tagged union: each concrete gate type implements all three
// methods, and new gates are added to the registry as new types rather than
// injected at runtime.
type CustomGate interface {
	// Decode parses a gate-specific sub-proof from its external byte form.
	Decode(proofBytes []byte, c curve.Curve) (any, error)

	// PlonkFactor returns the scalar that multiplies this gate's Qk
	// commitment in the linearisation commitment D, given
	// a' = eval_a·v, b' = eval_b·v, c' = eval_c·v.
	PlonkFactor(aPrime, bPrime, cPrime curve.Fr, c curve.Curve) curve.Fr

	// VerifyProof runs the gate's own, pairing-free sub-verification.
	VerifyProof(gateProof any, c curve.Curve) (bool, error)
}

// GateRegistry is a name -> CustomGate lookup table. Gates are registered
// once at setup and looked up concurrently during verification, so reads
// never block each other; only RegisterGate takes the write lock.
type GateRegistry struct {
	mu    sync.RWMutex
	gates map[string]CustomGate
}

// NewGateRegistry returns an empty registry.
func NewGateRegistry() *GateRegistry {
	return &GateRegistry{gates: make(map[string]CustomGate)}
}

// RegisterGate adds (or replaces) the gate implementation for id.
func (r *GateRegistry) RegisterGate(id string, gate CustomGate) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.gates[id] = gate
}

// Lookup returns the gate registered for id, or ErrUnknownGate.
func (r *GateRegistry) Lookup(id string) (CustomGate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.gates[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGate, id)
	}
	return g, nil
}
