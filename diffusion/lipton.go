// SPDX-License-Identifier: MIT
// Package: lvsde/diffusion
//
// lipton.go — quadratic local volatility: σ(S) = σ₀ + σ₁·S + σ₂·S².
//
// Validation:
//   • σ₀ ≥ 0: the curve starts non-negative at S = 0.
//   • σ₂ ≥ 0: the curve does not dive to −∞ for large S.
//   • σ₁ is free, so the curve may still dip below zero between the two;
//     NegativeVolPolicy decides what Volatility does there.

package diffusion

import "math"

// Lipton is the quadratic local-volatility family with GBM-style drift μ̄·S.
type Lipton struct {
	mu     float64
	sigma0 float64
	sigma1 float64
	sigma2 float64
	policy NegativeVolPolicy
}

// NewLipton validates σ₀ ≥ 0 and σ₂ ≥ 0 (all finite) and resolves opts.
// Only WithNegativeVolPolicy affects Lipton.
func NewLipton(mu, sigma0, sigma1, sigma2 float64, opts ...Option) (*Lipton, error) {
	if err := firstErr(
		validateFinite(KindLipton,
			param{"mu", mu}, param{"sigma0", sigma0}, param{"sigma1", sigma1}, param{"sigma2", sigma2}),
		validateNonNegative(KindLipton, param{"sigma0", sigma0}),
		validateNonNegative(KindLipton, param{"sigma2", sigma2}),
	); err != nil {
		return nil, err
	}
	cfg := newConfig(opts...)

	return &Lipton{mu: mu, sigma0: sigma0, sigma1: sigma1, sigma2: sigma2, policy: cfg.negativeVol}, nil
}

func (m *Lipton) Kind() Kind { return KindLipton }

// Params returns {Kind, Mu, Sigma0, Sigma1, Sigma2}. The policy is an option,
// not a parameter; see Policy.
func (m *Lipton) Params() Params {
	return Params{Kind: KindLipton, Mu: m.mu, Sigma0: m.sigma0, Sigma1: m.sigma1, Sigma2: m.sigma2}
}

// Policy reports the negative-volatility policy in effect.
func (m *Lipton) Policy() NegativeVolPolicy { return m.policy }

// Drift returns μ̄·S.
func (m *Lipton) Drift(s float64, _ int) float64 {
	return m.mu * s
}

// Volatility returns σ₀ + σ₁·S + σ₂·S², then applies the policy when the
// value is negative: RejectNegative → ErrDomain, ClampNegative → 0,
// PassNegative → the raw value.
func (m *Lipton) Volatility(s float64, _ int) (float64, error) {
	v := m.quadratic(s)
	if v >= 0 {
		return v, nil
	}
	switch m.policy {
	case ClampNegative:
		return 0, nil
	case PassNegative:
		return v, nil
	default:
		return 0, &DomainError{Model: KindLipton, State: s, Rule: "quadratic volatility is negative"}
	}
}

// MinVolatility locates the smallest value of the quadratic over S ≥ 0.
//
// Returns (s, v) with v = σ₀ + σ₁·s + σ₂·s². When σ₂ = 0 and σ₁ < 0 the
// curve is unbounded below and (+Inf, −Inf) is returned.
// A caller can test v >= 0 to know the policy will never trigger on S ≥ 0.
func (m *Lipton) MinVolatility() (s, v float64) {
	switch {
	case m.sigma2 > 0:
		s = math.Max(0, -m.sigma1/(2*m.sigma2))
	case m.sigma1 < 0:
		return math.Inf(1), math.Inf(-1)
	default:
		s = 0
	}

	return s, m.quadratic(s)
}

func (m *Lipton) quadratic(s float64) float64 {
	return m.sigma0 + m.sigma1*s + m.sigma2*s*s
}
