// SPDX-License-Identifier: MIT
// Package: lvsde/diffusion
//
// gbm.go — Geometric Brownian Motion: dS = μ̄·S·dt + σ̄·S·dW.

package diffusion

// GBM is Geometric Brownian Motion with drift rate μ̄ and volatility σ̄ > 0.
//
// The zero value is not a valid model; use NewGBM.
type GBM struct {
	mu    float64
	sigma float64
}

// NewGBM validates (μ̄, σ̄) and returns a ready model.
//
// Errors:
//   - *ParamError (ErrInvalidParameter) if either value is not finite or σ̄ ≤ 0.
//
// Complexity: O(1).
func NewGBM(mu, sigma float64) (*GBM, error) {
	if err := firstErr(
		validateFinite(KindGBM, param{"mu", mu}, param{"sigma", sigma}),
		validatePositive(KindGBM, param{"sigma", sigma}),
	); err != nil {
		return nil, err
	}

	return &GBM{mu: mu, sigma: sigma}, nil
}

// Kind returns KindGBM.
func (m *GBM) Kind() Kind { return KindGBM }

// Params returns {Kind, Mu, Sigma}.
func (m *GBM) Params() Params {
	return Params{Kind: KindGBM, Mu: m.mu, Sigma: m.sigma}
}

// Drift returns μ̄·S.
func (m *GBM) Drift(s float64, _ int) float64 {
	return m.mu * s
}

// Volatility returns σ̄·S. GBM imposes no domain restriction: for S < 0 the
// (negative) product is returned as is, and the error is always nil.
func (m *GBM) Volatility(s float64, _ int) (float64, error) {
	return m.sigma * s, nil
}
