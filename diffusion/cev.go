// SPDX-License-Identifier: MIT
// Package: lvsde/diffusion
//
// cev.go — Constant Elasticity of Variance: dS = μ̄·S·dt + σ̄·S^β·dW.

package diffusion

import "math"

// CEV is the Constant Elasticity of Variance family. β = 1 is GBM, β = 0 is
// an arithmetic (Bachelier) volatility, β = 0.5 is square-root volatility.
type CEV struct {
	mu    float64
	sigma float64
	beta  float64
}

// NewCEV validates σ̄ ≥ 0 and β ≥ 0 (all finite).
func NewCEV(mu, sigma, beta float64) (*CEV, error) {
	if err := firstErr(
		validateFinite(KindCEV, param{"mu", mu}, param{"sigma", sigma}, param{"beta", beta}),
		validateNonNegative(KindCEV, param{"sigma", sigma}),
		validateNonNegative(KindCEV, param{"beta", beta}),
	); err != nil {
		return nil, err
	}

	return &CEV{mu: mu, sigma: sigma, beta: beta}, nil
}

func (m *CEV) Kind() Kind { return KindCEV }

func (m *CEV) Params() Params {
	return Params{Kind: KindCEV, Mu: m.mu, Sigma: m.sigma, Beta: m.beta}
}

// Drift returns μ̄·S.
func (m *CEV) Drift(s float64, _ int) float64 {
	return m.mu * s
}

// Volatility returns σ̄·S^β.
//
// β = 1 is computed as σ̄·S so the result is bit-identical to GBM.
// A NaN or infinite S fails with ErrDomain, as does S < 0 with a fractional β,
// which has no real power.
func (m *CEV) Volatility(s float64, _ int) (float64, error) {
	if err := validateState(KindCEV, s); err != nil {
		return 0, err
	}
	if m.beta == 1 {
		return m.sigma * s, nil
	}
	if s < 0 && m.beta != math.Trunc(m.beta) {
		return 0, &DomainError{Model: KindCEV, State: s, Rule: "S must be >= 0 for fractional beta"}
	}

	return m.sigma * math.Pow(s, m.beta), nil
}
