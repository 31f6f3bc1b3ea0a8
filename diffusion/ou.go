// SPDX-License-Identifier: MIT
// Package: lvsde/diffusion
//
// ou.go — Ornstein-Uhlenbeck: dS = κ·(θ − S)·dt + σ̄·dW.

package diffusion

// OU is the Ornstein-Uhlenbeck mean-reverting family. μ̄ is carried in the
// parameter record for uniformity and does not enter the drift.
type OU struct {
	mu    float64
	sigma float64
	kappa float64
	theta float64
}

// NewOU validates σ̄ ≥ 0 and κ > 0 (all finite). θ may be any real.
func NewOU(mu, sigma, kappa, theta float64) (*OU, error) {
	if err := firstErr(
		validateFinite(KindOU, param{"mu", mu}, param{"sigma", sigma}, param{"kappa", kappa}, param{"theta", theta}),
		validateNonNegative(KindOU, param{"sigma", sigma}),
		validatePositive(KindOU, param{"kappa", kappa}),
	); err != nil {
		return nil, err
	}

	return &OU{mu: mu, sigma: sigma, kappa: kappa, theta: theta}, nil
}

func (m *OU) Kind() Kind { return KindOU }

func (m *OU) Params() Params {
	return Params{Kind: KindOU, Mu: m.mu, Sigma: m.sigma, Kappa: m.kappa, Theta: m.theta}
}

// Drift returns κ·(θ − S); zero exactly at S = θ.
func (m *OU) Drift(s float64, _ int) float64 {
	return m.kappa * (m.theta - s)
}

// Volatility returns the constant σ̄.
func (m *OU) Volatility(_ float64, _ int) (float64, error) {
	return m.sigma, nil
}
