// SPDX-License-Identifier: MIT
// Package: lvsde/diffusion
//
// cir.go — Cox-Ingersoll-Ross: dS = κ·(θ − S)·dt + σ̄·√S·dW.

package diffusion

import "math"

// CIR is the Cox-Ingersoll-Ross square-root family. Like OU it reverts to θ
// at speed κ; μ̄ is carried in the parameter record and does not enter the
// drift.
type CIR struct {
	mu    float64
	sigma float64
	kappa float64
	theta float64
}

// NewCIR validates σ̄ ≥ 0, κ > 0 and θ ≥ 0 (all finite).
//
// The Feller condition is not enforced; see Feller.
func NewCIR(mu, sigma, kappa, theta float64) (*CIR, error) {
	if err := firstErr(
		validateFinite(KindCIR, param{"mu", mu}, param{"sigma", sigma}, param{"kappa", kappa}, param{"theta", theta}),
		validateNonNegative(KindCIR, param{"sigma", sigma}),
		validatePositive(KindCIR, param{"kappa", kappa}),
		validateNonNegative(KindCIR, param{"theta", theta}),
	); err != nil {
		return nil, err
	}

	return &CIR{mu: mu, sigma: sigma, kappa: kappa, theta: theta}, nil
}

func (m *CIR) Kind() Kind { return KindCIR }

func (m *CIR) Params() Params {
	return Params{Kind: KindCIR, Mu: m.mu, Sigma: m.sigma, Kappa: m.kappa, Theta: m.theta}
}

// Drift returns κ·(θ − S).
func (m *CIR) Drift(s float64, _ int) float64 {
	return m.kappa * (m.theta - s)
}

// Volatility returns σ̄·√S. S < 0 and non-finite S fail with ErrDomain.
func (m *CIR) Volatility(s float64, _ int) (float64, error) {
	if err := validateState(KindCIR, s); err != nil {
		return 0, err
	}
	if s < 0 {
		return 0, &DomainError{Model: KindCIR, State: s, Rule: "S must be >= 0"}
	}

	return m.sigma * math.Sqrt(s), nil
}

// Feller reports whether 2·κ·θ ≥ σ̄², under which the process started above
// zero never reaches zero.
func (m *CIR) Feller() bool {
	return 2*m.kappa*m.theta >= m.sigma*m.sigma
}
